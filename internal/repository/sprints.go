package repository

import (
	"fmt"
	"slices"

	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/docstore"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
)

func (r *Repository) getSprints() ([]*domain.Sprint, error) {
	sprints := []*domain.Sprint{}
	if _, err := r.load(keySprints, &sprints); err != nil {
		return nil, err
	}
	return sprints, nil
}

func (r *Repository) GetAllSprints() ([]*domain.Sprint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.getSprints()
}

func (r *Repository) GetSprintByID(id string) (*domain.Sprint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sprints, err := r.getSprints()
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(sprints, func(s *domain.Sprint) bool { return s.ID == id })
	if idx < 0 {
		return nil, ErrNotFound
	}
	return sprints[idx], nil
}

// UpsertSprint inserts sprint or merges it onto the stored record with the same id.
// Non-empty fields of sprint replace the stored ones; a new sprint starts as saved.
// The stored record is written back into sprint.
func (r *Repository) UpsertSprint(sprint *domain.Sprint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sprints, err := r.getSprints()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(sprints, func(s *domain.Sprint) bool { return s.ID == sprint.ID })
	if idx < 0 {
		// the id also names the sprint's planning document
		if err := docstore.ValidateKey(planningKey(sprint.ID)); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidID, sprint.ID)
		}
		if sprint.Status == "" {
			sprint.Status = domain.SprintStatusSaved
		}
		sprints = append(sprints, sprint)
		return r.save(keySprints, sprints)
	}

	stored := *sprints[idx]
	if sprint.Name != "" {
		stored.Name = sprint.Name
	}
	if !sprint.StartDate.IsZero() {
		stored.StartDate = sprint.StartDate
	}
	if !sprint.EndDate.IsZero() {
		stored.EndDate = sprint.EndDate
	}
	if sprint.Status != "" {
		if !stored.CanTransitionTo(sprint.Status) {
			return ErrInvalidTransition
		}
		stored.Status = sprint.Status
	}
	stored.Status = stored.EffectiveStatus()

	sprints[idx] = &stored
	if err := r.save(keySprints, sprints); err != nil {
		return err
	}

	*sprint = stored
	return nil
}

// UpdateSprintStatus moves the sprint to status and returns the updated record.
func (r *Repository) UpdateSprintStatus(id string, status domain.SprintStatus) (*domain.Sprint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sprints, err := r.getSprints()
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(sprints, func(s *domain.Sprint) bool { return s.ID == id })
	if idx < 0 {
		return nil, ErrNotFound
	}

	sprint := sprints[idx]
	if !sprint.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}
	sprint.Status = status

	if err := r.save(keySprints, sprints); err != nil {
		return nil, err
	}
	return sprint, nil
}

func (r *Repository) DeleteSprint(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sprints, err := r.getSprints()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(sprints, func(s *domain.Sprint) bool { return s.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	if sprints[idx].EffectiveStatus() != domain.SprintStatusSaved {
		return ErrSprintNotDeletable
	}

	return r.save(keySprints, slices.Delete(sprints, idx, idx+1))
}
