package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/docstore"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrSprintNotDeletable = errors.New("sprint can only be deleted while saved")
	ErrInvalidTransition  = errors.New("invalid sprint status transition")
	ErrInvalidID          = errors.New("invalid id")
)

const (
	keyConfig           = "config"
	keySprints          = "sprints"
	keyHolidays         = "holidays"
	keyComponents       = "components"
	keySprintEndTargets = "sprintEndTargets"
)

func planningKey(sprintID string) string {
	return "sprintPlanning" + sprintID
}

// Repository exposes typed collections over a document store. Each collection is one
// document, so every write is a read-modify-write of the whole document; mu serializes
// those within this process.
type Repository struct {
	cfg   *config.Config
	store docstore.Store
	mu    sync.Mutex
}

func NewRepository(cfg *config.Config, store docstore.Store) *Repository {
	return &Repository{
		cfg:   cfg,
		store: store,
	}
}

func (r *Repository) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Store.OperationTimeout)*time.Second)
}

// load decodes the document under key into dst. It reports false when the document
// does not exist yet.
func (r *Repository) load(key string, dst any) (bool, error) {
	ctx, cancel := r.opContext()
	defer cancel()

	data, err := r.store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *Repository) save(key string, src any) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	ctx, cancel := r.opContext()
	defer cancel()

	if err := r.store.Save(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
