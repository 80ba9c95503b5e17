// Package effort aggregates per-person load for one sprint.
//
// Everything here is a pure function of its inputs: nothing is cached and no argument
// is modified, so repeating a call on the same data yields the same numbers.
package effort

import "github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"

type LoadLevel string

const (
	LoadNormal  LoadLevel = "normal"
	LoadHigh    LoadLevel = "high"
	LoadOver    LoadLevel = "over"
	LoadUnknown LoadLevel = "unknown"
)

// PersonEffort is one person's line of the remaining effort panel.
type PersonEffort struct {
	PersonID       string      `json:"personId"`
	FullName       string      `json:"fullName"`
	Role           domain.Role `json:"role"`
	PlannedHours   float64     `json:"plannedHours"`
	LeaveHours     float64     `json:"leaveHours"`
	RemainingHours float64     `json:"remainingHours"`
	// UtilizationPercent is nil when the sprint has no hours.
	UtilizationPercent *float64  `json:"utilizationPercent"`
	LoadLevel          LoadLevel `json:"loadLevel"`
}

type DanglingKind string

const (
	DanglingAnalyst   DanglingKind = "analyst"
	DanglingDeveloper DanglingKind = "developer"
	DanglingLeave     DanglingKind = "leave"
)

// DanglingReference records an assignment or leave that names a person who is no
// longer configured. Such entries are left out of every sum.
type DanglingReference struct {
	Kind     DanglingKind `json:"kind"`
	PersonID string       `json:"personId"`
	SourceID string       `json:"sourceId"`
}

type Summary struct {
	SprintHours        float64             `json:"sprintHours"`
	People             []PersonEffort      `json:"people"`
	TotalPlannedHours  float64             `json:"totalPlannedHours"`
	TotalLeaveHours    float64             `json:"totalLeaveHours"`
	DanglingReferences []DanglingReference `json:"danglingReferences"`
}

// PlannedHours sums the analysis cost of tasks where the person is an analyst and the
// software cost of tasks where they are a developer. Held tasks count for nothing. A
// person holding both roles on one task carries both costs.
func PlannedHours(personID string, tasks []*domain.PlanningTask) float64 {
	total := 0.0
	for _, task := range tasks {
		if task.OnHold() {
			continue
		}
		if task.ResponsibleAnalyst.Contains(personID) {
			total += task.AnalysisCost
		}
		if task.ResponsibleDeveloper.Contains(personID) {
			total += task.SoftwareCost
		}
	}
	return total
}

func LeaveHours(personID string, leaves []*domain.PersonLeave) float64 {
	total := 0.0
	for _, leave := range leaves {
		if leave.PersonID == personID {
			total += leave.Hours
		}
	}
	return total
}

// Utilization returns (planned + leave) / sprintHours * 100, or nil for a zero-hour sprint.
func Utilization(sprintHours, plannedHours, leaveHours float64) *float64 {
	if sprintHours == 0 {
		return nil
	}
	pct := (plannedHours + leaveHours) / sprintHours * 100
	return &pct
}

func levelFor(pct *float64) LoadLevel {
	switch {
	case pct == nil:
		return LoadUnknown
	case *pct > 100:
		return LoadOver
	case *pct > 80:
		return LoadHigh
	default:
		return LoadNormal
	}
}

func ForPerson(person *domain.Person, sprintHours float64, tasks []*domain.PlanningTask, leaves []*domain.PersonLeave) PersonEffort {
	planned := PlannedHours(person.ID, tasks)
	leave := LeaveHours(person.ID, leaves)
	pct := Utilization(sprintHours, planned, leave)

	return PersonEffort{
		PersonID:           person.ID,
		FullName:           person.FullName(),
		Role:               person.Role,
		PlannedHours:       planned,
		LeaveHours:         leave,
		RemainingHours:     sprintHours - planned - leave,
		UtilizationPercent: pct,
		LoadLevel:          levelFor(pct),
	}
}

// Aggregate computes the effort line of every person, in the order given.
func Aggregate(sprintHours float64, tasks []*domain.PlanningTask, leaves []*domain.PersonLeave, people []*domain.Person) Summary {
	summary := Summary{
		SprintHours:        sprintHours,
		People:             make([]PersonEffort, 0, len(people)),
		DanglingReferences: make([]DanglingReference, 0),
	}

	for _, p := range people {
		line := ForPerson(p, sprintHours, tasks, leaves)
		summary.TotalPlannedHours += line.PlannedHours
		summary.TotalLeaveHours += line.LeaveHours
		summary.People = append(summary.People, line)
	}

	summary.DanglingReferences = append(summary.DanglingReferences, FindDangling(tasks, leaves, people)...)
	return summary
}

// FindDangling lists task assignments and leaves whose person id is not in people.
// Held tasks are included; they are still stored references.
func FindDangling(tasks []*domain.PlanningTask, leaves []*domain.PersonLeave, people []*domain.Person) []DanglingReference {
	index := domain.PersonIndex(people)

	var refs []DanglingReference
	for _, task := range tasks {
		for _, id := range task.ResponsibleAnalyst.Missing(index) {
			refs = append(refs, DanglingReference{Kind: DanglingAnalyst, PersonID: id, SourceID: task.ID})
		}
		for _, id := range task.ResponsibleDeveloper.Missing(index) {
			refs = append(refs, DanglingReference{Kind: DanglingDeveloper, PersonID: id, SourceID: task.ID})
		}
	}
	for _, leave := range leaves {
		// an unassigned leave row is a draft, not a dangling reference
		if leave.PersonID == "" {
			continue
		}
		if _, ok := index[leave.PersonID]; !ok {
			refs = append(refs, DanglingReference{Kind: DanglingLeave, PersonID: leave.PersonID, SourceID: leave.ID})
		}
	}
	return refs
}
