package handler

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/i18n"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/repository"
)

// MailPublisher is satisfied by *amqp.Channel.
type MailPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  *i18n.Translator
	mailChannel MailPublisher

	Mux *chi.Mux
}

// NewHandler wires the API. mailCh may be nil, in which case no notifications are
// queued.
func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh MailPublisher) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// messages name the JSON field the client sent
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	translator, err := i18n.New(validate, cfg.Planning.DefaultLocale)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  translator,
		mailChannel: mailCh,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(h.locale)

	h.Mux.Get("/healthz", h.Healthz)

	h.Mux.Route("/config", func(r chi.Router) {
		r.Get("/", h.GetConfig)
		r.Put("/", h.UpdateConfig)
	})

	h.Mux.Route("/people", func(r chi.Router) {
		r.Get("/", h.GetAllPeople)
		r.Post("/", h.CreatePerson)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.personInfo)
			r.Get("/", h.GetPerson)
			r.Put("/", h.UpdatePerson)
			r.Delete("/", h.DeletePerson)
		})
	})

	h.Mux.Route("/holidays", func(r chi.Router) {
		r.Get("/", h.GetAllHolidays)
		r.Post("/", h.UpsertHoliday)
		r.Get("/templates", h.GetHolidayTemplates)
		r.Get("/calendar", h.GetHolidayCalendar)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.holidayInfo)
			r.Get("/", h.GetHoliday)
			r.Put("/", h.UpdateHoliday)
			r.Delete("/", h.DeleteHoliday)
		})
	})

	h.Mux.Route("/sprints", func(r chi.Router) {
		r.Get("/", h.GetAllSprints)
		r.Post("/", h.UpsertSprint)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.sprintInfo)
			r.Get("/", h.GetSprint)
			r.Put("/", h.UpdateSprint)
			r.Delete("/", h.DeleteSprint)
			r.Get("/capacity", h.GetSprintCapacity)
			r.Post("/start-planning", h.StartPlanning)
			r.Post("/complete", h.CompleteSprint)
			r.Route("/planning", func(r chi.Router) {
				r.Get("/", h.GetPlanningTasks)
				r.Post("/", h.SavePlanningTasks)
				r.Put("/", h.InitPlanning)
				r.Get("/leaves", h.GetPersonLeaves)
				r.Post("/leaves", h.SavePersonLeaves)
				r.Get("/summary", h.GetPlanningSummary)
				r.Get("/report.pdf", h.GetPlanningReport)
			})
		})
	})

	h.Mux.Get("/components", h.GetComponents)
	h.Mux.Post("/components", h.SaveComponents)
	h.Mux.Get("/sprint-end-targets", h.GetSprintEndTargets)
	h.Mux.Post("/sprint-end-targets", h.SaveSprintEndTargets)
	h.Mux.Get("/current-statuses", h.GetCurrentStatuses)
}
