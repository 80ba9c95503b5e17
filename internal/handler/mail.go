package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/effort"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/report"
)

func (h *Handler) recipient(p *domain.Person) string {
	if p.LDAP == "" {
		return ""
	}
	return p.LDAP + "@" + h.config.Email.UserDomain
}

func (h *Handler) publishMail(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		h.config.RabbitMQ.Queue,
		true,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// queueMails publishes msgs and returns how many were queued. A failed publish is
// logged and does not undo the status change that triggered it.
func (h *Handler) queueMails(msgs []domain.MailMessage) int {
	if h.mailChannel == nil {
		return 0
	}

	queued := 0
	for _, msg := range msgs {
		if err := h.publishMail(msg); err != nil {
			slog.Error("failed to queue mail", "type", msg.Type, "to", msg.To, "error", err)
			continue
		}
		queued++
	}
	return queued
}

func (h *Handler) planningStartedMails(data *report.Data, people []*domain.Person) []domain.MailMessage {
	msgs := make([]domain.MailMessage, 0, len(people))
	for _, p := range people {
		to := h.recipient(p)
		if to == "" {
			continue
		}
		msgs = append(msgs, domain.MailMessage{
			Type: domain.MailTypePlanningStarted,
			To:   to,
			Data: domain.PlanningStartedMailData{
				FullName:      p.FullName(),
				SprintName:    data.Sprint.Name,
				StartDate:     data.Sprint.StartDate.String(),
				EndDate:       data.Sprint.EndDate.String(),
				BusinessDays:  data.Capacity.BusinessDays,
				CapacityHours: data.Capacity.PlannedHours,
			},
		})
	}
	return msgs
}

func (h *Handler) sprintCompletedMails(data *report.Data, people []*domain.Person) []domain.MailMessage {
	index := domain.PersonIndex(people)

	msgs := make([]domain.MailMessage, 0, len(data.Summary.People))
	for _, line := range data.Summary.People {
		p, ok := index[line.PersonID]
		if !ok {
			continue
		}
		to := h.recipient(p)
		if to == "" {
			continue
		}
		msgs = append(msgs, domain.MailMessage{
			Type: domain.MailTypeSprintCompleted,
			To:   to,
			Data: completedMailData(data.Sprint, line),
		})
	}
	return msgs
}

func completedMailData(sprint *domain.Sprint, line effort.PersonEffort) domain.SprintCompletedMailData {
	return domain.SprintCompletedMailData{
		FullName:       line.FullName,
		SprintName:     sprint.Name,
		PlannedHours:   line.PlannedHours,
		LeaveHours:     line.LeaveHours,
		RemainingHours: line.RemainingHours,
	}
}
