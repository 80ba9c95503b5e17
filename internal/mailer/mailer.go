// Package mailer turns queued notification payloads into HTML mails.
package mailer

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

var ErrUnsupportedType = errors.New("unsupported mail type")

type kind struct {
	file    string
	subject string
	data    func() any
}

var kinds = map[string]kind{
	domain.MailTypePlanningStarted: {
		file:    "planning_started_email.html",
		subject: "Sprint planlaması başladı: %s",
		data:    func() any { return &domain.PlanningStartedMailData{} },
	},
	domain.MailTypeSprintCompleted: {
		file:    "sprint_completed_email.html",
		subject: "Sprint tamamlandı: %s",
		data:    func() any { return &domain.SprintCompletedMailData{} },
	},
}

// envelope is domain.MailMessage with the payload left undecoded until the type is known.
type envelope struct {
	Type string          `json:"type"`
	To   string          `json:"to"`
	Data json.RawMessage `json:"data"`
}

type Builder struct {
	from      string
	templates map[string]*template.Template
}

// NewBuilder parses one template per mail type from dir.
func NewBuilder(from, dir string) (*Builder, error) {
	templates := make(map[string]*template.Template, len(kinds))
	for typ, k := range kinds {
		tmpl, err := template.ParseFiles(filepath.Join(dir, k.file))
		if err != nil {
			return nil, fmt.Errorf("parse template for %s: %w", typ, err)
		}
		templates[typ] = tmpl
	}
	return &Builder{from: from, templates: templates}, nil
}

// Build decodes a queued message body and renders it. Every error it returns means
// the payload can never be delivered.
func (b *Builder) Build(body []byte) (*mail.Msg, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode mail message: %w", err)
	}

	k, ok := kinds[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, env.Type)
	}

	data := k.data()
	if err := json.Unmarshal(env.Data, data); err != nil {
		return nil, fmt.Errorf("decode %s data: %w", env.Type, err)
	}

	var sprintName string
	switch d := data.(type) {
	case *domain.PlanningStartedMailData:
		sprintName = d.SprintName
	case *domain.SprintCompletedMailData:
		sprintName = d.SprintName
	}

	m := mail.NewMsg()
	if err := m.From(b.from); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := m.To(env.To); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	m.Subject(fmt.Sprintf(k.subject, sprintName))
	if err := m.SetBodyHTMLTemplate(b.templates[env.Type], data); err != nil {
		return nil, fmt.Errorf("render %s: %w", env.Type, err)
	}

	return m, nil
}
