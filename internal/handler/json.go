package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/capacity"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/i18n"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/repository"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/utils"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) trans(r *http.Request) ut.Translator {
	locale, _ := r.Context().Value(LocaleCtx).(string)
	return h.translator.Get(locale)
}

func (h *Handler) message(r *http.Request, key string, params ...string) string {
	return i18n.T(h.trans(r), key, params...)
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, key string, params ...string) {
	h.writeJSON(w, r, status, Response{
		Success: false,
		Message: h.message(r, key, params...),
		Data:    nil,
	})
}

// badRequest answers 400 with the most specific message err allows.
func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErrors validator.ValidationErrors
		verr             *utils.ValidationError
		formatErr        *capacity.FormatError
	)

	switch {
	case errors.As(err, &validationErrors):
		h.writeJSON(w, r, http.StatusBadRequest, Response{
			Success: false,
			Message: validationErrors[0].Translate(h.trans(r)),
			Data:    nil,
		})
	case errors.As(err, &verr):
		h.errorResponse(w, r, http.StatusBadRequest, verr.Key, verr.Param)
	case errors.As(err, &formatErr):
		h.errorResponse(w, r, http.StatusBadRequest, i18n.MsgInvalidDailyHour, formatErr.Value)
	default:
		h.errorResponse(w, r, http.StatusBadRequest, i18n.MsgInvalidBody)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, key string) {
	h.errorResponse(w, r, http.StatusNotFound, key)
}

func (h *Handler) conflict(w http.ResponseWriter, r *http.Request, key string) {
	h.errorResponse(w, r, http.StatusConflict, key)
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.errorResponse(w, r, http.StatusInternalServerError, i18n.MsgInternalError)
}

// repositoryError maps the repository's sentinel errors to responses. notFoundKey
// names the missing entity.
func (h *Handler) repositoryError(w http.ResponseWriter, r *http.Request, err error, notFoundKey string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.notFound(w, r, notFoundKey)
	case errors.Is(err, repository.ErrAlreadyExists):
		h.conflict(w, r, i18n.MsgPersonExists)
	case errors.Is(err, repository.ErrSprintNotDeletable):
		h.conflict(w, r, i18n.MsgSprintNotDeletable)
	case errors.Is(err, repository.ErrInvalidTransition):
		h.conflict(w, r, i18n.MsgInvalidTransition)
	case errors.Is(err, repository.ErrInvalidID):
		h.errorResponse(w, r, http.StatusBadRequest, i18n.MsgInvalidID)
	default:
		h.internalServerError(w, r, err)
	}
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, key string, data any) {
	h.writeJSONWithStatus(w, r, http.StatusOK, key, data)
}

func (h *Handler) createdResponse(w http.ResponseWriter, r *http.Request, key string, data any) {
	h.writeJSONWithStatus(w, r, http.StatusCreated, key, data)
}

func (h *Handler) writeJSONWithStatus(w http.ResponseWriter, r *http.Request, status int, key string, data any) {
	h.writeJSON(w, r, status, Response{
		Success: true,
		Message: h.message(r, key),
		Data:    data,
	})
}
