package domain

import "github.com/sysu-ecnc-dev/sprint-planner/backend/internal/calendar"

type SprintStatus string

const (
	SprintStatusSaved     SprintStatus = "Kaydedildi"
	SprintStatusPlanning  SprintStatus = "Planlanıyor"
	SprintStatusCompleted SprintStatus = "Tamamlandı"
)

type Sprint struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	StartDate calendar.Date `json:"startDate"`
	EndDate   calendar.Date `json:"endDate"`
	Status    SprintStatus  `json:"status,omitempty"`
}

// EffectiveStatus treats records written without a status as Saved.
func (s *Sprint) EffectiveStatus() SprintStatus {
	if s.Status == "" {
		return SprintStatusSaved
	}
	return s.Status
}

func (s *Sprint) Range() calendar.Range {
	return calendar.Range{Start: s.StartDate, End: s.EndDate}
}

// CanTransitionTo reports whether the sprint may move to next. Repeating the current
// status is allowed.
func (s *Sprint) CanTransitionTo(next SprintStatus) bool {
	cur := s.EffectiveStatus()
	if cur == next {
		return true
	}
	switch next {
	case SprintStatusPlanning:
		return cur == SprintStatusSaved
	case SprintStatusCompleted:
		return cur == SprintStatusSaved || cur == SprintStatusPlanning
	default:
		return false
	}
}
