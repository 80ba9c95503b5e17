package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/calendar"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/i18n"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/utils"
)

func (h *Handler) GetAllHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgOK, holidays)
}

// UpsertHoliday creates the holiday or replaces the one with the same id and answers
// with the full list.
func (h *Handler) UpsertHoliday(w http.ResponseWriter, r *http.Request) {
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

	holiday := &domain.Holiday{
		ID:        req.ID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if holiday.ID == "" {
		holiday.ID = uuid.NewString()
	}
	if err := utils.ValidateHolidayDates(holiday); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpsertHoliday(holiday); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, i18n.MsgHolidaySaved, holidays)
}

func (h *Handler) GetHoliday(w http.ResponseWriter, r *http.Request) {
	holiday := r.Context().Value(HolidayCtx).(*domain.Holiday)
	h.successResponse(w, r, i18n.MsgOK, holiday)
}

func (h *Handler) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      *string        `json:"name" validate:"omitempty,min=1"`
		StartDate *calendar.Date `json:"startDate"`
		EndDate   *calendar.Date `json:"endDate"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	holiday := *r.Context().Value(HolidayCtx).(*domain.Holiday)
	if req.Name != nil {
		holiday.Name = *req.Name
	}
	if req.StartDate != nil && !req.StartDate.IsZero() {
		holiday.StartDate = *req.StartDate
	}
	if req.EndDate != nil && !req.EndDate.IsZero() {
		holiday.EndDate = *req.EndDate
	}
	if err := utils.ValidateHolidayDates(&holiday); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpsertHoliday(&holiday); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgHolidaySaved, holiday)
}

func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	holiday := r.Context().Value(HolidayCtx).(*domain.Holiday)

	if err := h.repository.DeleteHoliday(holiday.ID); err != nil {
		h.repositoryError(w, r, err, i18n.MsgHolidayNotFound)
		return
	}

	h.successResponse(w, r, i18n.MsgHolidayDeleted, nil)
}

// intQuery reads an optional integer query parameter within [lo, hi].
func intQuery(r *http.Request, name string, fallback, lo, hi int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return 0, &utils.ValidationError{Key: i18n.MsgInvalidQuery, Param: name}
	}
	return v, nil
}

type holidayTemplateResponse struct {
	Name      string        `json:"name"`
	StartDate calendar.Date `json:"startDate"`
	EndDate   calendar.Date `json:"endDate"`
	Added     bool          `json:"added"`
}

// GetHolidayTemplates lists the fixed-date national holidays of a year and marks the
// ones already stored under the same name and start date.
func (h *Handler) GetHolidayTemplates(w http.ResponseWriter, r *http.Request) {
	year, err := intQuery(r, "year", time.Now().Year(), 1900, 9999)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	templates := domain.HolidayTemplates(year)
	res := make([]holidayTemplateResponse, 0, len(templates))
	for _, t := range templates {
		added := false
		for _, stored := range holidays {
			if stored.Name == t.Name && stored.StartDate == t.StartDate {
				added = true
				break
			}
		}
		res = append(res, holidayTemplateResponse{
			Name:      t.Name,
			StartDate: t.StartDate,
			EndDate:   t.EndDate,
			Added:     added,
		})
	}

	h.successResponse(w, r, i18n.MsgOK, res)
}

type calendarDay struct {
	Date     calendar.Date `json:"date"`
	InMonth  bool          `json:"inMonth"`
	Weekend  bool          `json:"weekend"`
	Holidays []string      `json:"holidays"`
}

// GetHolidayCalendar returns the six-week grid of a month with the holidays falling on
// each day.
func (h *Handler) GetHolidayCalendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, err := intQuery(r, "year", now.Year(), 1900, 9999)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	month, err := intQuery(r, "month", int(now.Month()), 1, 12)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	grid := calendar.MonthGrid(year, time.Month(month))
	days := make([]calendarDay, 0, len(grid))
	for _, d := range grid {
		day := calendarDay{
			Date:     d,
			InMonth:  d.Month == time.Month(month),
			Weekend:  calendar.IsWeekend(d),
			Holidays: []string{},
		}
		for _, hol := range holidays {
			if calendar.Covers([]calendar.Range{hol.Range()}, d) {
				day.Holidays = append(day.Holidays, hol.Name)
			}
		}
		days = append(days, day)
	}

	h.successResponse(w, r, i18n.MsgOK, days)
}
