package domain

import (
	"encoding/json"
	"slices"
)

type TaskStatus string

const (
	TaskStatusNotStarted    TaskStatus = "Başlanmadı"
	TaskStatusInDevelopment TaskStatus = "Geliştirme"
	TaskStatusHold          TaskStatus = "HOLD"
	TaskStatusDone          TaskStatus = "Tamamlandı"
)

var TaskStatuses = []TaskStatus{
	TaskStatusNotStarted,
	TaskStatusInDevelopment,
	TaskStatusHold,
	TaskStatusDone,
}

func (s TaskStatus) Valid() bool {
	return slices.Contains(TaskStatuses, s)
}

type LeaveType string

const (
	LeaveTypeLeave    LeaveType = "İzin"
	LeaveTypeTraining LeaveType = "Eğitim"
)

// IDSet is an ordered, duplicate-free list of person ids.
type IDSet []string

func NewIDSet(ids ...string) IDSet {
	set := make(IDSet, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(set, id) {
			set = append(set, id)
		}
	}
	return set
}

func (s IDSet) Contains(id string) bool {
	return slices.Contains(s, id)
}

// Missing returns the ids that are not present in people.
func (s IDSet) Missing(people map[string]*Person) []string {
	var missing []string
	for _, id := range s {
		if _, ok := people[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func (s IDSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}

type PlanningTask struct {
	ID                   string     `json:"id"`
	TaskName             string     `json:"taskName"`
	SP                   float64    `json:"sp"`
	SprintEndTarget      string     `json:"sprintEndTarget"`
	CurrentStatus        TaskStatus `json:"currentStatus"`
	ResponsibleAnalyst   IDSet      `json:"responsibleAnalyst"`
	ResponsibleDeveloper IDSet      `json:"responsibleDeveloper"`
	DelayReason          string     `json:"delayReason"`
	AnalysisCost         float64    `json:"analysisCost"`
	SoftwareCost         float64    `json:"softwareCost"`
	AnalysisTaskSP       float64    `json:"analysisTaskSP"`
	SoftwareTaskSP       float64    `json:"softwareTaskSP"`
	TestTaskSP           float64    `json:"testTaskSP"`
	Component            string     `json:"component"`
}

// EffectiveStatus treats an unset status as not started.
func (t *PlanningTask) EffectiveStatus() TaskStatus {
	if t.CurrentStatus == "" {
		return TaskStatusNotStarted
	}
	return t.CurrentStatus
}

func (t *PlanningTask) OnHold() bool {
	return t.EffectiveStatus() == TaskStatusHold
}

type PersonLeave struct {
	ID          string    `json:"id"`
	PersonID    string    `json:"personId"`
	Type        LeaveType `json:"type"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
}

type PlanningData struct {
	Tasks        []*PlanningTask `json:"tasks"`
	PersonLeaves []*PersonLeave  `json:"personLeaves"`
}
