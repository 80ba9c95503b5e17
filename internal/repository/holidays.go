package repository

import (
	"slices"

	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
)

func (r *Repository) getHolidays() ([]*domain.Holiday, error) {
	holidays := []*domain.Holiday{}
	if _, err := r.load(keyHolidays, &holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *Repository) GetAllHolidays() ([]*domain.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.getHolidays()
}

func (r *Repository) GetHolidayByID(id string) (*domain.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	holidays, err := r.getHolidays()
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(holidays, func(h *domain.Holiday) bool { return h.ID == id })
	if idx < 0 {
		return nil, ErrNotFound
	}
	return holidays[idx], nil
}

// UpsertHoliday replaces the holiday with the same id or appends a new one.
func (r *Repository) UpsertHoliday(holiday *domain.Holiday) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	holidays, err := r.getHolidays()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(holidays, func(h *domain.Holiday) bool { return h.ID == holiday.ID })
	if idx < 0 {
		holidays = append(holidays, holiday)
	} else {
		holidays[idx] = holiday
	}

	return r.save(keyHolidays, holidays)
}

func (r *Repository) DeleteHoliday(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	holidays, err := r.getHolidays()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(holidays, func(h *domain.Holiday) bool { return h.ID == id })
	if idx < 0 {
		return ErrNotFound
	}

	return r.save(keyHolidays, slices.Delete(holidays, idx, idx+1))
}
