// Package seed loads people, holidays, sprints and option lists from a YAML fixture
// file into the repository.
package seed

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/calendar"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/capacity"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/repository"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/utils"
	"gopkg.in/yaml.v3"
)

type Person struct {
	ID        string      `yaml:"id"`
	FirstName string      `yaml:"firstName"`
	LastName  string      `yaml:"lastName"`
	Role      domain.Role `yaml:"role"`
	LDAP      string      `yaml:"ldap"`
}

type Holiday struct {
	ID        string        `yaml:"id"`
	Name      string        `yaml:"name"`
	StartDate calendar.Date `yaml:"startDate"`
	EndDate   calendar.Date `yaml:"endDate"`
}

type Sprint struct {
	ID        string              `yaml:"id"`
	Name      string              `yaml:"name"`
	StartDate calendar.Date       `yaml:"startDate"`
	EndDate   calendar.Date       `yaml:"endDate"`
	Status    domain.SprintStatus `yaml:"status"`
}

type Fixture struct {
	DailyPlanningHour string    `yaml:"dailyPlanningHour"`
	People            []Person  `yaml:"people"`
	Holidays          []Holiday `yaml:"holidays"`
	Sprints           []Sprint  `yaml:"sprints"`
	Components        []string  `yaml:"components"`
	SprintEndTargets  []string  `yaml:"sprintEndTargets"`
}

// Result counts what Apply wrote.
type Result struct {
	People   int
	Holidays int
	Sprints  int
}

func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	f := &Fixture{}
	if err := dec.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return f, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return f, nil
}

func LoadFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Load(file)
}

// Validate checks the fixture before anything is written, so a bad file leaves the
// store untouched.
func (f *Fixture) Validate() error {
	if f.DailyPlanningHour != "" {
		if _, err := capacity.DailyHoursFromString(f.DailyPlanningHour); err != nil {
			return err
		}
	}

	for i, p := range f.People {
		if p.FirstName == "" || p.LastName == "" {
			return fmt.Errorf("people[%d]: first and last name are required", i)
		}
		if p.Role != domain.RoleAnalyst && p.Role != domain.RoleDeveloper {
			return fmt.Errorf("people[%d]: unknown role %q", i, p.Role)
		}
	}
	for i, h := range f.Holidays {
		if h.StartDate.IsZero() || h.EndDate.IsZero() {
			return fmt.Errorf("holidays[%d]: start and end dates are required", i)
		}
		if err := utils.ValidateDateRange(h.StartDate, h.EndDate); err != nil {
			return fmt.Errorf("holidays[%d]: %w", i, err)
		}
	}
	for i, s := range f.Sprints {
		if s.StartDate.IsZero() || s.EndDate.IsZero() {
			return fmt.Errorf("sprints[%d]: start and end dates are required", i)
		}
		if err := utils.ValidateDateRange(s.StartDate, s.EndDate); err != nil {
			return fmt.Errorf("sprints[%d]: %w", i, err)
		}
	}

	return nil
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// Apply writes the fixture. People are created or updated by id; holidays and sprints
// are upserted. With dryRun set nothing is written and the counts are still returned.
func Apply(r *repository.Repository, f *Fixture, dryRun bool) (*Result, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		People:   len(f.People),
		Holidays: len(f.Holidays),
		Sprints:  len(f.Sprints),
	}
	if dryRun {
		return res, nil
	}

	if f.DailyPlanningHour != "" {
		if _, err := r.UpdateDailyPlanningHour(f.DailyPlanningHour); err != nil {
			return nil, err
		}
	}

	for _, p := range f.People {
		person := &domain.Person{
			ID:        idOrNew(p.ID),
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Role:      p.Role,
			LDAP:      p.LDAP,
		}
		if person.LDAP == "" {
			person.LDAP = utils.GenerateLDAP(p.FirstName, p.LastName)
		}

		err := r.UpdatePerson(person)
		if errors.Is(err, repository.ErrNotFound) {
			err = r.CreatePerson(person)
		}
		if err != nil {
			return nil, fmt.Errorf("person %s: %w", person.ID, err)
		}
		slog.Debug("seeded person", "id", person.ID, "ldap", person.LDAP)
	}

	for _, h := range f.Holidays {
		holiday := &domain.Holiday{
			ID:        idOrNew(h.ID),
			Name:      h.Name,
			StartDate: h.StartDate,
			EndDate:   h.EndDate,
		}
		if err := r.UpsertHoliday(holiday); err != nil {
			return nil, fmt.Errorf("holiday %s: %w", holiday.ID, err)
		}
	}

	for _, s := range f.Sprints {
		sprint := &domain.Sprint{
			ID:        idOrNew(s.ID),
			Name:      s.Name,
			StartDate: s.StartDate,
			EndDate:   s.EndDate,
			Status:    s.Status,
		}
		if err := r.UpsertSprint(sprint); err != nil {
			return nil, fmt.Errorf("sprint %s: %w", sprint.ID, err)
		}
	}

	if len(f.Components) > 0 {
		if err := r.SaveComponents(f.Components); err != nil {
			return nil, err
		}
	}
	if len(f.SprintEndTargets) > 0 {
		if err := r.SaveSprintEndTargets(f.SprintEndTargets); err != nil {
			return nil, err
		}
	}

	return res, nil
}
