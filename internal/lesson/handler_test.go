package lesson_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/language"
	"github.com/taiwoajasa245/sabbath-lesson-api/internal/lesson"
	"github.com/taiwoajasa245/sabbath-lesson-api/internal/logger"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/pagination"
)

func newRouter(t *testing.T) (http.Handler, fixture) {
	t.Helper()
	f := newFixture(t)
	h := lesson.NewLessonHandler(f.svc, logger.Nop())

	r := chi.NewRouter()
	r.Route("/lessons", func(r chi.Router) {
		r.Get("/", h.ListHandler)
		r.Post("/", h.CreateHandler)
		r.Get("/by-quarter", h.ListByQuarterHandler)
		r.Get("/years", h.ListYearsHandler)
		r.Get("/search", h.SearchHandler)
		r.Get("/{id}", h.GetByIDHandler)
		r.Put("/{id}", h.UpdateHandler)
		r.Delete("/{id}", h.DeleteHandler)
		r.Get("/{id}/sections", h.ListSectionsHandler)
		r.Post("/{id}/sections", h.AddSectionHandler)
	})
	return r, f
}

func TestLessonHandler(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		setup    func(f fixture)
		wantCode int
		check    func(t *testing.T, body []byte)
	}{
		{
			name:   "by quarter",
			method: http.MethodGet,
			path:   "/lessons/by-quarter?year=2024&quarter=Q1",
			setup: func(f fixture) {
				f.lessons.EXPECT().FindByYearAndQuarter(gomock.Any(), 2024, "Q1", lesson.IncludeAll).
					Return([]lesson.Lesson{{ID: 1, Year: 2024, Quarter: "Q1"}}, nil)
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var got []lesson.LessonDTO
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got, 1)
				assert.Equal(t, "Q1", got[0].Quarter)
			},
		},
		{
			name:     "by quarter with non numeric year",
			method:   http.MethodGet,
			path:     "/lessons/by-quarter?year=soon&quarter=Q1",
			setup:    func(f fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "filtered list passes only supplied filters",
			method: http.MethodGet,
			path:   "/lessons?year=2023&size=5",
			setup: func(f fixture) {
				year := 2023
				f.lessons.EXPECT().FindByFilter(gomock.Any(), lesson.Filter{Year: &year}, 0, 5, lesson.IncludeAll).
					Return([]lesson.Lesson{{ID: 1, Year: 2023}}, int64(1), nil)
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var got pagination.Page[lesson.LessonDTO]
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, int64(1), got.TotalElements)
				assert.Equal(t, 5, got.Size)
				assert.True(t, got.Last)
			},
		},
		{
			name:     "negative page",
			method:   http.MethodGet,
			path:     "/lessons?page=-1",
			setup:    func(f fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "page beyond addressable rows",
			method:   http.MethodGet,
			path:     "/lessons?page=4611686018427387904&size=4",
			setup:    func(f fixture) {},
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "page is out of range")
			},
		},
		{
			name:   "search",
			method: http.MethodGet,
			path:   "/lessons/search?q=faith",
			setup: func(f fixture) {
				f.lessons.EXPECT().Search(gomock.Any(), "faith", 0, 10, lesson.IncludeAll).Return(nil, int64(0), nil)
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"content":[]`)
			},
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/lessons",
			body: `{"title":"Grace","content":"Body","year":2024,"quarter":"Q1","languageId":1,
				"sections":[{"day":"Sunday","content":"a","order":3}]}`,
			setup: func(f fixture) {
				f.languages.EXPECT().FindByID(gomock.Any(), int64(1)).Return(english, nil)
				f.lessons.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *lesson.Lesson) error {
						l.ID = 10
						l.Sections[0].ID = 100
						l.Sections[0].LessonID = 10
						return nil
					})
			},
			wantCode: http.StatusCreated,
			check: func(t *testing.T, body []byte) {
				var got lesson.LessonDTO
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, int64(10), got.ID)
				require.Len(t, got.Sections, 1)
				assert.Equal(t, 3, got.Sections[0].Order)
				assert.Equal(t, int64(10), got.Sections[0].LessonID)
			},
		},
		{
			name:   "create with unknown language",
			method: http.MethodPost,
			path:   "/lessons",
			body:   `{"title":"Grace","content":"Body","year":2024,"quarter":"Q1","languageId":77}`,
			setup: func(f fixture) {
				f.languages.EXPECT().FindByID(gomock.Any(), int64(77)).Return(nil, language.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "Language not found")
			},
		},
		{
			name:   "update with null sections keeps them",
			method: http.MethodPut,
			path:   "/lessons/4",
			body:   `{"title":"Grace","content":"Body","year":2024,"quarter":"Q1","sections":null}`,
			setup: func(f fixture) {
				f.lessons.EXPECT().FindByID(gomock.Any(), int64(4), lesson.IncludeAll).
					Return(&lesson.Lesson{ID: 4, Sections: []lesson.Section{{ID: 1, LessonID: 4}}}, nil)
				f.lessons.EXPECT().Update(gomock.Any(), gomock.Any(), false).Return(nil)
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var got lesson.LessonDTO
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Len(t, got.Sections, 1)
			},
		},
		{
			name:   "update with empty sections replaces them",
			method: http.MethodPut,
			path:   "/lessons/4",
			body:   `{"title":"Grace","content":"Body","year":2024,"quarter":"Q1","sections":[]}`,
			setup: func(f fixture) {
				f.lessons.EXPECT().FindByID(gomock.Any(), int64(4), lesson.IncludeAll).
					Return(&lesson.Lesson{ID: 4, Sections: []lesson.Section{{ID: 1, LessonID: 4}}}, nil)
				f.lessons.EXPECT().Update(gomock.Any(), gomock.Any(), true).Return(nil)
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"sections":[]`)
			},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/lessons/4",
			setup: func(f fixture) {
				f.lessons.EXPECT().FindByID(gomock.Any(), int64(4), lesson.Include{}).Return(&lesson.Lesson{ID: 4}, nil)
				f.lessons.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "sections of missing lesson",
			method: http.MethodGet,
			path:   "/lessons/4/sections",
			setup: func(f fixture) {
				f.lessons.EXPECT().FindByID(gomock.Any(), int64(4), lesson.Include{}).Return(nil, lesson.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "Lesson not found")
			},
		},
		{
			name:   "add section",
			method: http.MethodPost,
			path:   "/lessons/4/sections",
			body:   `{"day":"Friday","content":"review","bibleTexts":"Psalm 23"}`,
			setup: func(f fixture) {
				f.lessons.EXPECT().FindByID(gomock.Any(), int64(4), lesson.Include{Sections: true}).
					Return(&lesson.Lesson{ID: 4, Sections: []lesson.Section{}}, nil)
				f.lessons.EXPECT().AddSection(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusCreated,
			check: func(t *testing.T, body []byte) {
				var got lesson.SectionDTO
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, "Psalm 23", got.BibleTexts)
				assert.Equal(t, int64(4), got.LessonID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, f := newRouter(t)
			tt.setup(f)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.check != nil {
				tt.check(t, rec.Body.Bytes())
			}
		})
	}
}
