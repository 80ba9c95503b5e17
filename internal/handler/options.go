package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/i18n"
)

func (h *Handler) readOptions(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	var options []string
	if err := h.readJSON(r, &options); err != nil {
		h.badRequest(w, r, err)
		return nil, false
	}
	if err := h.validate.Var(options, "dive,required"); err != nil {
		h.badRequest(w, r, err)
		return nil, false
	}
	return options, true
}

func (h *Handler) GetComponents(w http.ResponseWriter, r *http.Request) {
	components, err := h.repository.GetComponents()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgOK, components)
}

func (h *Handler) SaveComponents(w http.ResponseWriter, r *http.Request) {
	components, ok := h.readOptions(w, r)
	if !ok {
		return
	}

	if err := h.repository.SaveComponents(components); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgOptionsSaved, components)
}

func (h *Handler) GetSprintEndTargets(w http.ResponseWriter, r *http.Request) {
	targets, err := h.repository.GetSprintEndTargets()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgOK, targets)
}

func (h *Handler) SaveSprintEndTargets(w http.ResponseWriter, r *http.Request) {
	targets, ok := h.readOptions(w, r)
	if !ok {
		return
	}

	if err := h.repository.SaveSprintEndTargets(targets); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgOptionsSaved, targets)
}

// GetCurrentStatuses lists the fixed task statuses. They are not editable.
func (h *Handler) GetCurrentStatuses(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, i18n.MsgOK, domain.TaskStatuses)
}
