package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/i18n"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/report"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/utils"
)

func (h *Handler) GetPlanningTasks(w http.ResponseWriter, r *http.Request) {
	sprint := r.Context().Value(SprintCtx).(*domain.Sprint)

	data, err := h.repository.GetPlanningData(sprint.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgOK, data.Tasks)
}

// SavePlanningTasks replaces the sprint's task list. Every responsible person must be
// configured.
func (h *Handler) SavePlanningTasks(w http.ResponseWriter, r *http.Request) {
	sprint := r.Context().Value(SprintCtx).(*domain.Sprint)

	var tasks []*domain.PlanningTask
	if err := h.readJSON(r, &tasks); err != nil {
		h.badRequest(w, r, err)
		return
	}

	people, err := h.repository.GetAllPeople()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	for _, task := range tasks {
		if task.ID == "" {
			task.ID = uuid.NewString()
		}
		if task.CurrentStatus == "" {
			task.CurrentStatus = domain.TaskStatusNotStarted
		}
	}
	if err := utils.ValidatePlanningTasks(tasks, people); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.SaveTasks(sprint.ID, tasks); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgTasksSaved, tasks)
}

// InitPlanning creates an empty planning document if the sprint has none.
func (h *Handler) InitPlanning(w http.ResponseWriter, r *http.Request) {
	sprint := r.Context().Value(SprintCtx).(*domain.Sprint)

	created, err := h.repository.InitPlanning(sprint.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgPlanningInitialized, map[string]bool{"initialized": true, "created": created})
}

func (h *Handler) GetPersonLeaves(w http.ResponseWriter, r *http.Request) {
	sprint := r.Context().Value(SprintCtx).(*domain.Sprint)

	data, err := h.repository.GetPlanningData(sprint.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgOK, data.PersonLeaves)
}

type leaveRequest struct {
	ID          string  `json:"id"`
	PersonID    string  `json:"personId"`
	Type        string  `json:"type" validate:"required,oneof=İzin Eğitim"`
	Hours       float64 `json:"hours" validate:"gte=0"`
	Description string  `json:"description"`
}

func (h *Handler) SavePersonLeaves(w http.ResponseWriter, r *http.Request) {
	sprint := r.Context().Value(SprintCtx).(*domain.Sprint)

	var req []leaveRequest
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Var(req, "dive"); err != nil {
		h.badRequest(w, r, err)
		return
	}

	leaves := make([]*domain.PersonLeave, 0, len(req))
	for _, l := range req {
		leave := &domain.PersonLeave{
			ID:          l.ID,
			PersonID:    l.PersonID,
			Type:        domain.LeaveType(l.Type),
			Hours:       l.Hours,
			Description: l.Description,
		}
		if leave.ID == "" {
			leave.ID = uuid.NewString()
		}
		leaves = append(leaves, leave)
	}

	people, err := h.repository.GetAllPeople()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if err := utils.ValidatePersonLeaves(leaves, people); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.SaveLeaves(sprint.ID, leaves); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgLeavesSaved, leaves)
}

type planningSummary struct {
	*report.Data
	TaskCount int `json:"taskCount"`
}

// GetPlanningSummary returns the sprint capacity and the remaining effort of every
// configured person.
func (h *Handler) GetPlanningSummary(w http.ResponseWriter, r *http.Request) {
	sprint := r.Context().Value(SprintCtx).(*domain.Sprint)

	include, err := includeHolidays(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	data, err := report.Collect(h.repository, sprint.ID, include)
	if err != nil {
		h.capacityError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgOK, planningSummary{Data: data, TaskCount: len(data.Tasks)})
}

func (h *Handler) GetPlanningReport(w http.ResponseWriter, r *http.Request) {
	sprint := r.Context().Value(SprintCtx).(*domain.Sprint)

	include, err := includeHolidays(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	data, err := report.Collect(h.repository, sprint.ID, include)
	if err != nil {
		h.capacityError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WritePDF(&buf, data); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="sprint-%s.pdf"`, sprint.ID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logInternalServerError(r, err)
	}
}
