package lesson

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/logger"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/request"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/response"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/validation"
)

type LessonHandler struct {
	service LessonService
	log     *logger.Logger
}

func NewLessonHandler(service LessonService, log *logger.Logger) LessonHandler {
	return LessonHandler{service: service, log: log}
}

func (h *LessonHandler) ListByQuarterHandler(w http.ResponseWriter, r *http.Request) {
	rawYear, err := request.RequiredQuery(r, "year")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		h.writeError(w, r, validation.New("year", "year must be an integer"))
		return
	}
	quarter, err := request.RequiredQuery(r, "quarter")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	lessons, err := h.service.ListByYearAndQuarter(r.Context(), year, quarter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, lessons)
}

func (h *LessonHandler) ListYearsHandler(w http.ResponseWriter, r *http.Request) {
	years, err := h.service.ListYears(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, years)
}

func (h *LessonHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	var (
		f   Filter
		err error
	)
	if f.Year, err = request.OptionalQueryInt(r, "year"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if f.LanguageID, err = request.OptionalQueryInt64(r, "languageId"); err != nil {
		h.writeError(w, r, err)
		return
	}
	f.Quarter = request.OptionalQueryString(r, "quarter")

	page, size, err := request.PageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.service.ListFiltered(r.Context(), f, page, size)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, result)
}

func (h *LessonHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	page, size, err := request.PageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.service.Search(r.Context(), r.URL.Query().Get("q"), page, size)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, result)
}

func (h *LessonHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt64(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	l, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, l)
}

func (h *LessonHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req LessonInput
	if err := request.DecodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	l, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, l)
}

func (h *LessonHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt64(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req LessonInput
	if err := request.DecodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	l, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, l)
}

func (h *LessonHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt64(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.NoContent(w)
}

func (h *LessonHandler) ListSectionsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt64(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	sections, err := h.service.ListSections(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, sections)
}

func (h *LessonHandler) AddSectionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt64(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req SectionInput
	if err := request.DecodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	section, err := h.service.AddSection(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, section)
}

func (h *LessonHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		response.Error(w, http.StatusBadRequest, verr.Message, verr.Fields)
	case errors.Is(err, ErrLanguageNotFound):
		response.Error(w, http.StatusNotFound, "Language not found", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(w, http.StatusNotFound, "Lesson not found", err.Error())
	default:
		h.log.Error("lesson request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}
