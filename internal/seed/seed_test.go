package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/docstore"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/repository"
)

func newTestRepository(t *testing.T) *repository.Repository {
	t.Helper()
	store, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Store.OperationTimeout = 5
	cfg.Planning.DefaultDailyHour = "08:00"
	return repository.NewRepository(cfg, store)
}

func TestLoadFile_Sample(t *testing.T) {
	f, err := LoadFile("data/fixtures.yaml")
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	assert.Equal(t, "08:00", f.DailyPlanningHour)
	assert.Len(t, f.People, 3)
	assert.Equal(t, domain.RoleAnalyst, f.People[0].Role)
	assert.Equal(t, "2025-10-29", f.Holidays[0].StartDate.String())
	assert.Equal(t, "2025-22", f.Sprints[0].ID)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("peoples: []\n"))
	assert.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	f, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.People)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
	}{
		{"bad hour", `dailyPlanningHour: "8:00"`},
		{"bad role", "people:\n  - {firstName: A, lastName: B, role: Tester}"},
		{"missing name", "people:\n  - {firstName: A, role: Analist}"},
		{"inverted holiday", "holidays:\n  - {name: X, startDate: \"2025-10-30\", endDate: \"2025-10-29\"}"},
		{"sprint without dates", "sprints:\n  - {name: S}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Load(strings.NewReader(tt.fixture))
			require.NoError(t, err)
			assert.Error(t, f.Validate())
		})
	}
}

func TestApply(t *testing.T) {
	repo := newTestRepository(t)
	f, err := LoadFile("data/fixtures.yaml")
	require.NoError(t, err)

	res, err := Apply(repo, f, false)
	require.NoError(t, err)
	assert.Equal(t, &Result{People: 3, Holidays: 2, Sprints: 2}, res)

	people, err := repo.GetAllPeople()
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, "ayilmaz", people[0].LDAP)
	assert.Equal(t, "scaglar", people[2].LDAP)

	sprint, err := repo.GetSprintByID("2025-22")
	require.NoError(t, err)
	assert.Equal(t, domain.SprintStatusSaved, sprint.Status)

	// seeding twice updates in place
	_, err = Apply(repo, f, false)
	require.NoError(t, err)
	people, err = repo.GetAllPeople()
	require.NoError(t, err)
	assert.Len(t, people, 3)

	holidays, err := repo.GetAllHolidays()
	require.NoError(t, err)
	assert.Len(t, holidays, 2)
}

func TestApply_DryRun(t *testing.T) {
	repo := newTestRepository(t)
	f, err := LoadFile("data/fixtures.yaml")
	require.NoError(t, err)

	res, err := Apply(repo, f, true)
	require.NoError(t, err)
	assert.Equal(t, 3, res.People)

	people, err := repo.GetAllPeople()
	require.NoError(t, err)
	assert.Empty(t, people)
}
