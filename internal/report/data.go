// Package report gathers a sprint's capacity and effort figures and renders them as
// a PDF.
package report

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/capacity"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/effort"
)

// Source is the part of the repository a report reads from.
type Source interface {
	GetSprintByID(id string) (*domain.Sprint, error)
	GetConfig() (*domain.AppConfig, error)
	GetAllHolidays() ([]*domain.Holiday, error)
	GetPlanningData(sprintID string) (*domain.PlanningData, error)
}

type Data struct {
	Sprint      *domain.Sprint          `json:"sprint"`
	Capacity    capacity.SprintCapacity `json:"capacity"`
	Summary     effort.Summary          `json:"summary"`
	Tasks       []*domain.PlanningTask  `json:"-"`
	GeneratedAt time.Time               `json:"generatedAt"`
}

// Collect loads everything needed for one sprint and computes its capacity and the
// per-person effort summary. includeHolidays has the capacity calculator's meaning.
func Collect(src Source, sprintID string, includeHolidays bool) (*Data, error) {
	sprint, err := src.GetSprintByID(sprintID)
	if err != nil {
		return nil, err
	}

	cfg, err := src.GetConfig()
	if err != nil {
		return nil, err
	}

	dailyHours, err := capacity.DailyHoursFromString(cfg.DailyPlanningHour)
	if err != nil {
		return nil, fmt.Errorf("daily planning hour: %w", err)
	}

	holidays, err := src.GetAllHolidays()
	if err != nil {
		return nil, err
	}

	planning, err := src.GetPlanningData(sprintID)
	if err != nil {
		return nil, err
	}

	sc := capacity.ForSprint(sprint, dailyHours, holidays, includeHolidays)

	return &Data{
		Sprint:      sprint,
		Capacity:    sc,
		Summary:     effort.Aggregate(sc.PlannedHours, planning.Tasks, planning.PersonLeaves, cfg.People),
		Tasks:       planning.Tasks,
		GeneratedAt: time.Now(),
	}, nil
}
