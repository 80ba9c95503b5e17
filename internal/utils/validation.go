package utils

import (
	"fmt"

	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/calendar"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/i18n"
)

// ValidationError carries a message key so the handler can answer in the request's
// locale.
type ValidationError struct {
	Key   string
	Param string
}

func (e *ValidationError) Error() string {
	if e.Param == "" {
		return e.Key
	}
	return fmt.Sprintf("%s: %s", e.Key, e.Param)
}

func ValidateDateRange(start, end calendar.Date) error {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return &ValidationError{Key: i18n.MsgInvalidDateRange}
	}
	return nil
}

func ValidateSprintDates(sprint *domain.Sprint) error {
	return ValidateDateRange(sprint.StartDate, sprint.EndDate)
}

func ValidateHolidayDates(holiday *domain.Holiday) error {
	return ValidateDateRange(holiday.StartDate, holiday.EndDate)
}

// ValidatePlanningTasks checks task ids are unique, statuses belong to the fixed set
// and every responsible person exists.
func ValidatePlanningTasks(tasks []*domain.PlanningTask, people []*domain.Person) error {
	index := domain.PersonIndex(people)
	seen := make(map[string]bool, len(tasks))

	for _, task := range tasks {
		if seen[task.ID] {
			return &ValidationError{Key: i18n.MsgDuplicateTaskID, Param: task.ID}
		}
		seen[task.ID] = true

		if task.CurrentStatus != "" && !task.CurrentStatus.Valid() {
			return &ValidationError{Key: i18n.MsgInvalidTaskStatus, Param: string(task.CurrentStatus)}
		}

		if missing := task.ResponsibleAnalyst.Missing(index); len(missing) > 0 {
			return &ValidationError{Key: i18n.MsgUnknownPeople, Param: missing[0]}
		}
		if missing := task.ResponsibleDeveloper.Missing(index); len(missing) > 0 {
			return &ValidationError{Key: i18n.MsgUnknownPeople, Param: missing[0]}
		}
	}

	return nil
}

// ValidatePersonLeaves rejects leaves that name an unknown person. A leave row that
// has no person yet is accepted.
func ValidatePersonLeaves(leaves []*domain.PersonLeave, people []*domain.Person) error {
	index := domain.PersonIndex(people)

	for _, leave := range leaves {
		if leave.PersonID == "" {
			continue
		}
		if _, ok := index[leave.PersonID]; !ok {
			return &ValidationError{Key: i18n.MsgUnknownLeavePerson, Param: leave.PersonID}
		}
	}

	return nil
}
