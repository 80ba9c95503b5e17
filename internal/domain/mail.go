package domain

const (
	MailTypePlanningStarted = "planning_started"
	MailTypeSprintCompleted = "sprint_completed"
)

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type PlanningStartedMailData struct {
	FullName      string  `json:"fullName"`
	SprintName    string  `json:"sprintName"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	BusinessDays  int     `json:"businessDays"`
	CapacityHours float64 `json:"capacityHours"`
}

type SprintCompletedMailData struct {
	FullName       string  `json:"fullName"`
	SprintName     string  `json:"sprintName"`
	PlannedHours   float64 `json:"plannedHours"`
	LeaveHours     float64 `json:"leaveHours"`
	RemainingHours float64 `json:"remainingHours"`
}
