package language

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/logger"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/request"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/response"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/validation"
)

type LanguageHandler struct {
	service LanguageService
	log     *logger.Logger
}

func NewLanguageHandler(service LanguageService, log *logger.Logger) LanguageHandler {
	return LanguageHandler{service: service, log: log}
}

func (h *LanguageHandler) ListActiveHandler(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.ListActive(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, languages)
}

func (h *LanguageHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
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

func (h *LanguageHandler) GetByCodeHandler(w http.ResponseWriter, r *http.Request) {
	l, err := h.service.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, l)
}

func (h *LanguageHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req LanguageInput
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

func (h *LanguageHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathInt64(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req LanguageInput
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

func (h *LanguageHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
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

func (h *LanguageHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		response.Error(w, http.StatusBadRequest, verr.Message, verr.Fields)
	case errors.Is(err, ErrNotFound):
		response.Error(w, http.StatusNotFound, "Language not found", err.Error())
	case errors.Is(err, ErrInUse):
		response.Error(w, http.StatusConflict, "Language is in use", err.Error())
	default:
		h.log.Error("language request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}
