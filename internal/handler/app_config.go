package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/capacity"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/i18n"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/utils"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, i18n.MsgOK, map[string]any{
		"environment":   h.config.Environment,
		"storeDriver":   h.config.Store.Driver,
		"notifications": h.mailChannel != nil,
	})
}

// boolQuery reads an optional boolean query parameter.
func boolQuery(r *http.Request, name string, fallback bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &utils.ValidationError{Key: i18n.MsgInvalidQuery, Param: name}
	}
	return v, nil
}

// includeHolidays defaults to true, which keeps holidays in the business-day count.
func includeHolidays(r *http.Request) (bool, error) {
	return boolQuery(r, "includeHolidays", true)
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.repository.GetConfig()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgOK, cfg)
}

type personRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=Analist Developer"`
	LDAP      string `json:"ldap" validate:"required"`
}

func (p *personRequest) toDomain() *domain.Person {
	return &domain.Person{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Role:      domain.Role(p.Role),
		LDAP:      p.LDAP,
	}
}

func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DailyPlanningHour string           `json:"dailyPlanningHour" validate:"required"`
		People            *[]personRequest `json:"people" validate:"omitempty,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if _, err := capacity.DailyHoursFromString(req.DailyPlanningHour); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// without a people list only the hour changes
	if req.People == nil {
		cfg, err := h.repository.UpdateDailyPlanningHour(req.DailyPlanningHour)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.successResponse(w, r, i18n.MsgConfigUpdated, cfg)
		return
	}

	cfg := &domain.AppConfig{
		DailyPlanningHour: req.DailyPlanningHour,
		People:            make([]*domain.Person, 0, len(*req.People)),
	}
	seen := make(map[string]bool)
	for _, p := range *req.People {
		person := p.toDomain()
		if person.ID == "" {
			person.ID = uuid.NewString()
		}
		if seen[person.ID] {
			h.conflict(w, r, i18n.MsgPersonExists)
			return
		}
		seen[person.ID] = true
		cfg.People = append(cfg.People, person)
	}

	if err := h.repository.SaveConfig(cfg); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, i18n.MsgConfigUpdated, cfg)
}
