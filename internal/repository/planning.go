package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
)

// planningDocument decodes both the current {tasks, personLeaves} layout and the older
// one that kept each task under its own numeric key next to personLeaves.
type planningDocument struct {
	domain.PlanningData
}

func (d *planningDocument) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	d.Tasks = []*domain.PlanningTask{}
	d.PersonLeaves = []*domain.PersonLeave{}

	if raw, ok := fields["tasks"]; ok {
		if err := json.Unmarshal(raw, &d.Tasks); err != nil {
			return fmt.Errorf("tasks: %w", err)
		}
	}
	if raw, ok := fields["personLeaves"]; ok {
		if err := json.Unmarshal(raw, &d.PersonLeaves); err != nil {
			return fmt.Errorf("personLeaves: %w", err)
		}
	}
	if d.Tasks == nil {
		d.Tasks = []*domain.PlanningTask{}
	}
	if d.PersonLeaves == nil {
		d.PersonLeaves = []*domain.PersonLeave{}
	}

	if len(d.Tasks) > 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		if key != "tasks" && key != "personLeaves" {
			keys = append(keys, key)
		}
	}
	sortLegacyKeys(keys)

	for _, key := range keys {
		raw := bytes.TrimSpace(fields[key])
		if len(raw) == 0 || raw[0] != '{' {
			continue
		}
		task := &domain.PlanningTask{}
		if err := json.Unmarshal(raw, task); err != nil {
			// one malformed entry must not hide the rest of the sprint
			slog.Warn("skipping undecodable legacy task", "key", key, "error", err)
			continue
		}
		if task.ID == "" {
			continue
		}
		d.Tasks = append(d.Tasks, task)
	}

	return nil
}

// sortLegacyKeys orders integer keys numerically ahead of the others, the way the
// documents were originally enumerated.
func sortLegacyKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
}

func (r *Repository) getPlanning(sprintID string) (*domain.PlanningData, bool, error) {
	doc := &planningDocument{}
	found, err := r.load(planningKey(sprintID), doc)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return &domain.PlanningData{
			Tasks:        []*domain.PlanningTask{},
			PersonLeaves: []*domain.PersonLeave{},
		}, false, nil
	}
	return &doc.PlanningData, true, nil
}

// GetPlanningData returns the sprint's planning document, or an empty one when the
// sprint has not been planned yet.
func (r *Repository) GetPlanningData(sprintID string) (*domain.PlanningData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, _, err := r.getPlanning(sprintID)
	return data, err
}

// InitPlanning creates an empty planning document unless one exists. It reports
// whether a document was created.
func (r *Repository) InitPlanning(sprintID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, found, err := r.getPlanning(sprintID)
	if err != nil {
		return false, err
	}
	if found {
		return false, nil
	}

	if err := r.save(planningKey(sprintID), data); err != nil {
		return false, err
	}
	return true, nil
}

// SaveTasks replaces the sprint's tasks and keeps its leaves.
func (r *Repository) SaveTasks(sprintID string, tasks []*domain.PlanningTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, _, err := r.getPlanning(sprintID)
	if err != nil {
		return err
	}

	if tasks == nil {
		tasks = []*domain.PlanningTask{}
	}
	data.Tasks = tasks

	return r.save(planningKey(sprintID), data)
}

// SaveLeaves replaces the sprint's leaves and keeps its tasks.
func (r *Repository) SaveLeaves(sprintID string, leaves []*domain.PersonLeave) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, _, err := r.getPlanning(sprintID)
	if err != nil {
		return err
	}

	if leaves == nil {
		leaves = []*domain.PersonLeave{}
	}
	data.PersonLeaves = leaves

	return r.save(planningKey(sprintID), data)
}
