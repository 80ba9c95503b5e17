package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/docstore"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/repository"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/utils"
)

func main() {
	var op int
	var n int
	var sprintID string
	var year int

	flag.IntVar(&op, "op", 0, "operation (1: random people, 2: random tasks, 3: random leaves, 4: national holidays)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.StringVar(&sprintID, "sprint", "", "sprint id for random tasks and leaves")
	flag.IntVar(&year, "year", time.Now().Year(), "year of the national holidays")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := docstore.Open(cfg)
	if err != nil {
		logger.Error("failed to open document store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	repo := repository.NewRepository(cfg, store)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("number of people must be positive")
			return
		}
		cnt := 0
		for i := 0; i < n; i++ {
			person := utils.GenerateRandomPerson(utils.GenerateRandomRole())
			if err := repo.CreatePerson(person); err != nil {
				slog.Error("failed to insert person", slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
		slog.Info("inserted people", slog.Int("count", cnt))
	case 2:
		if n <= 0 {
			slog.Error("number of tasks must be positive")
			return
		}
		if !sprintExists(repo, sprintID) {
			return
		}

		people, err := repo.GetAllPeople()
		if err != nil {
			slog.Error("failed to get people", slog.String("error", err.Error()))
			return
		}
		components, err := repo.GetComponents()
		if err != nil {
			slog.Error("failed to get components", slog.String("error", err.Error()))
			return
		}
		targets, err := repo.GetSprintEndTargets()
		if err != nil {
			slog.Error("failed to get sprint end targets", slog.String("error", err.Error()))
			return
		}

		data, err := repo.GetPlanningData(sprintID)
		if err != nil {
			slog.Error("failed to get planning data", slog.String("error", err.Error()))
			return
		}
		tasks := append(data.Tasks, utils.GenerateRandomTasks(n, people, components, targets)...)
		if err := repo.SaveTasks(sprintID, tasks); err != nil {
			slog.Error("failed to save tasks", slog.String("error", err.Error()))
			return
		}
		slog.Info("inserted tasks", slog.Int("count", n), slog.String("sprint", sprintID))
	case 3:
		if !sprintExists(repo, sprintID) {
			return
		}

		people, err := repo.GetAllPeople()
		if err != nil {
			slog.Error("failed to get people", slog.String("error", err.Error()))
			return
		}

		// one leave per person
		leaves := make([]*domain.PersonLeave, 0, len(people))
		for _, p := range people {
			leaves = append(leaves, utils.GenerateRandomLeave(p))
		}
		if err := repo.SaveLeaves(sprintID, leaves); err != nil {
			slog.Error("failed to save leaves", slog.String("error", err.Error()))
			return
		}
		slog.Info("inserted leaves", slog.Int("count", len(leaves)), slog.String("sprint", sprintID))
	case 4:
		cnt := 0
		for _, h := range domain.HolidayTemplates(year) {
			h.ID = uuid.NewString()
			if err := repo.UpsertHoliday(h); err != nil {
				slog.Error("failed to insert holiday", slog.String("name", h.Name), slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
		slog.Info("inserted holidays", slog.Int("count", cnt), slog.Int("year", year))
	default:
		slog.Error("unknown operation", slog.Int("op", op))
	}
}

func sprintExists(repo *repository.Repository, id string) bool {
	if id == "" {
		slog.Error("-sprint is required")
		return false
	}
	if _, err := repo.GetSprintByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Error("sprint does not exist", slog.String("sprint", id))
		} else {
			slog.Error("failed to get sprint", slog.String("error", err.Error()))
		}
		return false
	}
	return true
}
