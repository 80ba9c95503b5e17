package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/docstore"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/output"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/repository"
)

// setup points the package globals at a fresh file store and captures output.
func setup(t *testing.T) *bytes.Buffer {
	t.Helper()

	store, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	c := &config.Config{}
	c.Store.OperationTimeout = 5
	c.Planning.DefaultDailyHour = "08:00"

	var buf bytes.Buffer
	ui = &output.UI{Out: &buf, ErrOut: &buf}
	cfg = c
	repo = repository.NewRepository(c, store)
	includeHolidays = true
	reportOut = ""

	t.Cleanup(func() {
		ui, cfg, repo = nil, nil, nil
	})
	return &buf
}

func TestSeedAndCapacity(t *testing.T) {
	buf := setup(t)

	require.NoError(t, seedRun("../../internal/seed/data/fixtures.yaml"))
	assert.Contains(t, buf.String(), "Seeded 3 people, 2 holidays, 2 sprints")

	require.NoError(t, repo.SaveTasks("2025-22", []*domain.PlanningTask{{
		ID:                   "t1",
		TaskName:             "Login",
		ResponsibleDeveloper: domain.NewIDSet("emre-kaya", "ghost"),
		SoftwareCost:         20,
	}}))

	buf.Reset()
	require.NoError(t, sprintsRun())
	assert.Contains(t, buf.String(), "Sprint 2025-22")
	assert.Contains(t, buf.String(), "Sprint 2025-23")

	buf.Reset()
	require.NoError(t, capacityRun("2025-22"))
	out := buf.String()
	assert.Contains(t, out, "10 business days")
	assert.Contains(t, out, "Emre Kaya")
	assert.Contains(t, out, "ghost")

	assert.ErrorIs(t, capacityRun("missing"), repository.ErrNotFound)
}

func TestSeed_DryRun(t *testing.T) {
	buf := setup(t)
	ui.DryRun = true

	require.NoError(t, seedRun("../../internal/seed/data/fixtures.yaml"))
	assert.Contains(t, buf.String(), "[DRY-RUN]")

	sprints, err := repo.GetAllSprints()
	require.NoError(t, err)
	assert.Empty(t, sprints)
}

func TestReport(t *testing.T) {
	setup(t)
	require.NoError(t, seedRun("../../internal/seed/data/fixtures.yaml"))

	reportOut = filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, reportRun("2025-23"))

	data, err := os.ReadFile(reportOut)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
