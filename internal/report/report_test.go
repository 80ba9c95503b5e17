package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/calendar"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/capacity"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
)

var errMissing = errors.New("missing")

type fakeSource struct {
	sprint   *domain.Sprint
	config   *domain.AppConfig
	holidays []*domain.Holiday
	planning *domain.PlanningData
}

func (f *fakeSource) GetSprintByID(id string) (*domain.Sprint, error) {
	if f.sprint == nil || f.sprint.ID != id {
		return nil, errMissing
	}
	return f.sprint, nil
}

func (f *fakeSource) GetConfig() (*domain.AppConfig, error) { return f.config, nil }

func (f *fakeSource) GetAllHolidays() ([]*domain.Holiday, error) { return f.holidays, nil }

func (f *fakeSource) GetPlanningData(string) (*domain.PlanningData, error) { return f.planning, nil }

func newFakeSource() *fakeSource {
	return &fakeSource{
		sprint: &domain.Sprint{
			ID:        "s1",
			Name:      "Ekim Sprinti",
			StartDate: calendar.MustParseDate("2025-10-27"),
			EndDate:   calendar.MustParseDate("2025-10-31"),
			Status:    domain.SprintStatusPlanning,
		},
		config: &domain.AppConfig{
			DailyPlanningHour: "08:00",
			People: []*domain.Person{
				{ID: "a1", FirstName: "Ayşe", LastName: "Yılmaz", Role: domain.RoleAnalyst},
				{ID: "d1", FirstName: "Şükrü", LastName: "Çağlar", Role: domain.RoleDeveloper},
			},
		},
		holidays: []*domain.Holiday{{
			ID:        "h1",
			Name:      "Cumhuriyet Bayramı",
			StartDate: calendar.MustParseDate("2025-10-29"),
			EndDate:   calendar.MustParseDate("2025-10-29"),
		}},
		planning: &domain.PlanningData{
			Tasks: []*domain.PlanningTask{
				{ID: "t1", TaskName: "Giriş ekranı", AnalysisCost: 8, SoftwareCost: 24, ResponsibleAnalyst: domain.NewIDSet("a1"), ResponsibleDeveloper: domain.NewIDSet("d1", "ghost")},
			},
			PersonLeaves: []*domain.PersonLeave{{ID: "l1", PersonID: "d1", Type: domain.LeaveTypeLeave, Hours: 8}},
		},
	}
}

func TestCollect(t *testing.T) {
	src := newFakeSource()

	data, err := Collect(src, "s1", false)
	require.NoError(t, err)
	assert.Equal(t, 4, data.Capacity.BusinessDays)
	assert.Equal(t, 32.0, data.Summary.SprintHours)
	require.Len(t, data.Summary.People, 2)
	assert.Equal(t, 24.0, data.Summary.People[0].RemainingHours)
	assert.Equal(t, 0.0, data.Summary.People[1].RemainingHours)
	require.Len(t, data.Summary.DanglingReferences, 1)

	data, err = Collect(src, "s1", true)
	require.NoError(t, err)
	assert.Equal(t, 40.0, data.Summary.SprintHours)

	_, err = Collect(src, "nope", true)
	assert.ErrorIs(t, err, errMissing)
}

func TestCollect_BadDailyHour(t *testing.T) {
	src := newFakeSource()
	src.config.DailyPlanningHour = "8:00"

	_, err := Collect(src, "s1", true)
	var formatErr *capacity.FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestWritePDF(t *testing.T) {
	data, err := Collect(newFakeSource(), "s1", false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, data))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestWritePDF_NoTasks(t *testing.T) {
	src := newFakeSource()
	src.planning = &domain.PlanningData{}
	src.config.DailyPlanningHour = "00:00"

	data, err := Collect(src, "s1", true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, data))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
