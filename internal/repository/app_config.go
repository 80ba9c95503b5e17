package repository

import (
	"slices"

	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
)

func (r *Repository) getConfig() (*domain.AppConfig, error) {
	cfg := &domain.AppConfig{}
	if _, err := r.load(keyConfig, cfg); err != nil {
		return nil, err
	}

	if cfg.DailyPlanningHour == "" {
		cfg.DailyPlanningHour = r.cfg.Planning.DefaultDailyHour
	}
	if cfg.People == nil {
		cfg.People = []*domain.Person{}
	}
	return cfg, nil
}

// GetConfig returns the stored application config, falling back to the configured
// default daily hour and an empty people list.
func (r *Repository) GetConfig() (*domain.AppConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.getConfig()
}

func (r *Repository) SaveConfig(cfg *domain.AppConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg.People == nil {
		cfg.People = []*domain.Person{}
	}
	return r.save(keyConfig, cfg)
}

// UpdateDailyPlanningHour changes the daily hour and keeps the people list.
func (r *Repository) UpdateDailyPlanningHour(hour string) (*domain.AppConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, err := r.getConfig()
	if err != nil {
		return nil, err
	}
	cfg.DailyPlanningHour = hour

	if err := r.save(keyConfig, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *Repository) GetAllPeople() ([]*domain.Person, error) {
	cfg, err := r.GetConfig()
	if err != nil {
		return nil, err
	}
	return cfg.People, nil
}

func (r *Repository) GetPersonByID(id string) (*domain.Person, error) {
	cfg, err := r.GetConfig()
	if err != nil {
		return nil, err
	}

	person, _ := cfg.FindPerson(id)
	if person == nil {
		return nil, ErrNotFound
	}
	return person, nil
}

func (r *Repository) CreatePerson(person *domain.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, err := r.getConfig()
	if err != nil {
		return err
	}

	if existing, _ := cfg.FindPerson(person.ID); existing != nil {
		return ErrAlreadyExists
	}
	cfg.People = append(cfg.People, person)

	return r.save(keyConfig, cfg)
}

func (r *Repository) UpdatePerson(person *domain.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, err := r.getConfig()
	if err != nil {
		return err
	}

	_, idx := cfg.FindPerson(person.ID)
	if idx < 0 {
		return ErrNotFound
	}
	cfg.People[idx] = person

	return r.save(keyConfig, cfg)
}

// DeletePerson removes the person from the config. Planning documents that still
// reference the id are left as they are.
func (r *Repository) DeletePerson(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, err := r.getConfig()
	if err != nil {
		return err
	}

	_, idx := cfg.FindPerson(id)
	if idx < 0 {
		return ErrNotFound
	}
	cfg.People = slices.Delete(cfg.People, idx, idx+1)

	return r.save(keyConfig, cfg)
}
