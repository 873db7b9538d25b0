package language_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/language"
	"github.com/taiwoajasa245/sabbath-lesson-api/internal/logger"
	mock_language "github.com/taiwoajasa245/sabbath-lesson-api/internal/mocks/language"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/response"
)

func newRouter(t *testing.T) (http.Handler, *mock_language.MockRepository) {
	t.Helper()
	svc, repo := newService(t)
	h := language.NewLanguageHandler(svc, logger.Nop())

	r := chi.NewRouter()
	r.Get("/languages", h.ListActiveHandler)
	r.Post("/languages", h.CreateHandler)
	r.Get("/languages/code/{code}", h.GetByCodeHandler)
	r.Get("/languages/{id}", h.GetByIDHandler)
	r.Put("/languages/{id}", h.UpdateHandler)
	r.Delete("/languages/{id}", h.DeleteHandler)
	return r, repo
}

func TestLanguageHandler(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		setup    func(repo *mock_language.MockRepository)
		wantCode int
		check    func(t *testing.T, body []byte)
	}{
		{
			name:   "list active",
			method: http.MethodGet,
			path:   "/languages",
			setup: func(repo *mock_language.MockRepository) {
				repo.EXPECT().FindActive(gomock.Any()).Return([]language.Language{{ID: 1, Code: "en", IsActive: true}}, nil)
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var got []language.LanguageDTO
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got, 1)
				assert.True(t, got[0].IsActive)
			},
		},
		{
			name:   "get by code",
			method: http.MethodGet,
			path:   "/languages/code/en",
			setup: func(repo *mock_language.MockRepository) {
				repo.EXPECT().FindByCode(gomock.Any(), "en").Return(&language.Language{ID: 1, Code: "en"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			path:   "/languages/9",
			setup: func(repo *mock_language.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, language.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				var got response.APIResponse
				require.NoError(t, json.Unmarshal(body, &got))
				assert.False(t, got.Success)
				assert.Equal(t, "Language not found", got.Message)
			},
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/languages",
			body:   `{"id":500,"name":"English","code":"en","flag":"🇺🇸"}`,
			setup: func(repo *mock_language.MockRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusCreated,
			check: func(t *testing.T, body []byte) {
				var got language.LanguageDTO
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Zero(t, got.ID)
				assert.Equal(t, "🇺🇸", got.Flag)
				assert.True(t, got.IsActive)
			},
		},
		{
			name:     "create with malformed json",
			method:   http.MethodPost,
			path:     "/languages",
			body:     `{"name":`,
			setup:    func(repo *mock_language.MockRepository) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "create with missing fields",
			method:   http.MethodPost,
			path:     "/languages",
			body:     `{"flag":"x"}`,
			setup:    func(repo *mock_language.MockRepository) {},
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"name"`)
				assert.Contains(t, string(body), `"code"`)
			},
		},
		{
			name:   "update",
			method: http.MethodPut,
			path:   "/languages/2",
			body:   `{"name":"Español","code":"es","isActive":false}`,
			setup: func(repo *mock_language.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(&language.Language{ID: 2, Code: "sp"}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var got language.LanguageDTO
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, "es", got.Code)
				assert.False(t, got.IsActive)
			},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/languages/2",
			setup: func(repo *mock_language.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(&language.Language{ID: 2}, nil)
				repo.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "delete in use",
			method: http.MethodDelete,
			path:   "/languages/2",
			setup: func(repo *mock_language.MockRepository) {
				repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(&language.Language{ID: 2}, nil)
				repo.EXPECT().Delete(gomock.Any(), int64(2)).Return(language.ErrInUse)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "storage failure",
			method: http.MethodGet,
			path:   "/languages",
			setup: func(repo *mock_language.MockRepository) {
				repo.EXPECT().FindActive(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			check: func(t *testing.T, body []byte) {
				assert.NotContains(t, string(body), "connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)
			tt.setup(repo)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.check != nil {
				tt.check(t, rec.Body.Bytes())
			}
		})
	}
}
