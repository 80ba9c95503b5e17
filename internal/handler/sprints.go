package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/calendar"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/capacity"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/i18n"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/report"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/utils"
)

type sprintWithCapacity struct {
	*domain.Sprint
	Capacity capacity.SprintCapacity `json:"capacity"`
}

type statusChange struct {
	Sprint              *domain.Sprint `json:"sprint"`
	PlanningInitialized bool           `json:"planningInitialized"`
	NotificationsQueued int            `json:"notificationsQueued"`
}

// dailyHours reads the configured daily planning hour.
func (h *Handler) dailyHours() (float64, error) {
	cfg, err := h.repository.GetConfig()
	if err != nil {
		return 0, err
	}
	return capacity.DailyHoursFromString(cfg.DailyPlanningHour)
}

// capacityError answers a failure to compute capacity: a malformed stored hour is a
// format error, anything else is internal.
func (h *Handler) capacityError(w http.ResponseWriter, r *http.Request, err error) {
	var formatErr *capacity.FormatError
	if errors.As(err, &formatErr) {
		h.badRequest(w, r, err)
		return
	}
	h.internalServerError(w, r, err)
}

func (h *Handler) GetAllSprints(w http.ResponseWriter, r *http.Request) {
	include, err := includeHolidays(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	dailyHours, err := h.dailyHours()
	if err != nil {
		h.capacityError(w, r, err)
		return
	}

	sprints, err := h.repository.GetAllSprints()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	res := make([]sprintWithCapacity, 0, len(sprints))
	for _, s := range sprints {
		res = append(res, sprintWithCapacity{
			Sprint:   s,
			Capacity: capacity.ForSprint(s, dailyHours, holidays, include),
		})
	}

	h.successResponse(w, r, i18n.MsgOK, res)
}

// UpsertSprint creates the sprint as Kaydedildi, or merges name and dates onto the
// stored sprint with the same id. Status changes go through PUT or the dedicated
// endpoints.
func (h *Handler) UpsertSprint(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID        string        `json:"id"`
		Name      string        `json:"name" validate:"required"`
		StartDate calendar.Date `json:"startDate" validate:"required"`
		EndDate   calendar.Date `json:"endDate" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	sprint := &domain.Sprint{
		ID:        req.ID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if sprint.ID == "" {
		sprint.ID = uuid.NewString()
	}
	if err := utils.ValidateSprintDates(sprint); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpsertSprint(sprint); err != nil {
		h.repositoryError(w, r, err, i18n.MsgSprintNotFound)
		return
	}

	h.createdResponse(w, r, i18n.MsgSprintSaved, sprint)
}

func (h *Handler) GetSprint(w http.ResponseWriter, r *http.Request) {
	sprint := r.Context().Value(SprintCtx).(*domain.Sprint)
	h.successResponse(w, r, i18n.MsgOK, sprint)
}

// UpdateSprint changes name and dates. A status in the body goes through the same
// transition as the dedicated endpoints.
func (h *Handler) UpdateSprint(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      *string        `json:"name" validate:"omitempty,min=1"`
		StartDate *calendar.Date `json:"startDate"`
		EndDate   *calendar.Date `json:"endDate"`
		Status    *string        `json:"status" validate:"omitempty,oneof=Kaydedildi Planlanıyor Tamamlandı"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	stored := r.Context().Value(SprintCtx).(*domain.Sprint)
	sprint := &domain.Sprint{ID: stored.ID}
	if req.Name != nil {
		sprint.Name = *req.Name
	}
	if req.StartDate != nil {
		sprint.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		sprint.EndDate = *req.EndDate
	}

	merged := *stored
	if !sprint.StartDate.IsZero() {
		merged.StartDate = sprint.StartDate
	}
	if !sprint.EndDate.IsZero() {
		merged.EndDate = sprint.EndDate
	}
	if err := utils.ValidateSprintDates(&merged); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Status != nil {
		next := domain.SprintStatus(*req.Status)
		if !stored.CanTransitionTo(next) {
			h.conflict(w, r, i18n.MsgInvalidTransition)
			return
		}
	}

	if err := h.repository.UpsertSprint(sprint); err != nil {
		h.repositoryError(w, r, err, i18n.MsgSprintNotFound)
		return
	}

	if req.Status != nil && domain.SprintStatus(*req.Status) != stored.EffectiveStatus() {
		h.changeStatus(w, r, stored, domain.SprintStatus(*req.Status))
		return
	}

	h.successResponse(w, r, i18n.MsgSprintSaved, sprint)
}

func (h *Handler) DeleteSprint(w http.ResponseWriter, r *http.Request) {
	sprint := r.Context().Value(SprintCtx).(*domain.Sprint)

	if err := h.repository.DeleteSprint(sprint.ID); err != nil {
		h.repositoryError(w, r, err, i18n.MsgSprintNotFound)
		return
	}

	h.successResponse(w, r, i18n.MsgSprintDeleted, nil)
}

func (h *Handler) GetSprintCapacity(w http.ResponseWriter, r *http.Request) {
	sprint := r.Context().Value(SprintCtx).(*domain.Sprint)

	include, err := includeHolidays(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	dailyHours, err := h.dailyHours()
	if err != nil {
		h.capacityError(w, r, err)
		return
	}

	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgOK, capacity.ForSprint(sprint, dailyHours, holidays, include))
}

func (h *Handler) StartPlanning(w http.ResponseWriter, r *http.Request) {
	sprint := r.Context().Value(SprintCtx).(*domain.Sprint)
	h.changeStatus(w, r, sprint, domain.SprintStatusPlanning)
}

func (h *Handler) CompleteSprint(w http.ResponseWriter, r *http.Request) {
	sprint := r.Context().Value(SprintCtx).(*domain.Sprint)
	h.changeStatus(w, r, sprint, domain.SprintStatusCompleted)
}

// changeStatus moves the sprint to next. Entering planning prepares the planning
// document. Notifications go out only when the status actually changes.
func (h *Handler) changeStatus(w http.ResponseWriter, r *http.Request, sprint *domain.Sprint, next domain.SprintStatus) {
	include, err := includeHolidays(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	prev := sprint.EffectiveStatus()

	updated, err := h.repository.UpdateSprintStatus(sprint.ID, next)
	if err != nil {
		h.repositoryError(w, r, err, i18n.MsgSprintNotFound)
		return
	}

	res := statusChange{Sprint: updated}

	if next == domain.SprintStatusPlanning {
		res.PlanningInitialized, err = h.repository.InitPlanning(sprint.ID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	msgKey := i18n.MsgPlanningStarted
	if next == domain.SprintStatusCompleted {
		msgKey = i18n.MsgSprintCompleted
	}

	if prev == next || h.mailChannel == nil {
		h.successResponse(w, r, msgKey, res)
		return
	}

	data, err := report.Collect(h.repository, sprint.ID, include)
	if err != nil {
		h.capacityError(w, r, err)
		return
	}
	people, err := h.repository.GetAllPeople()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if next == domain.SprintStatusPlanning {
		res.NotificationsQueued = h.queueMails(h.planningStartedMails(data, people))
	} else {
		res.NotificationsQueued = h.queueMails(h.sprintCompletedMails(data, people))
	}

	h.successResponse(w, r, msgKey, res)
}
