package mailer

import (
	"bytes"
	"encoding/json"
	"mime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

func newBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder("planner@example.com", "../../templates")
	require.NoError(t, err)
	return b
}

func body(t *testing.T, msg domain.MailMessage) []byte {
	t.Helper()
	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	return raw
}

// subject decodes the RFC 2047 form go-mail stores for non-ASCII subjects.
func subject(t *testing.T, m *mail.Msg) string {
	t.Helper()
	h := m.GetGenHeader(mail.HeaderSubject)
	require.Len(t, h, 1)
	s, err := new(mime.WordDecoder).DecodeHeader(h[0])
	require.NoError(t, err)
	return s
}

func TestBuild_PlanningStarted(t *testing.T) {
	b := newBuilder(t)

	m, err := b.Build(body(t, domain.MailMessage{
		Type: domain.MailTypePlanningStarted,
		To:   "ayilmaz@example.com",
		Data: domain.PlanningStartedMailData{
			FullName:      "Ayse Yilmaz",
			SprintName:    "Sprint 22",
			StartDate:     "2025-10-06",
			EndDate:       "2025-10-17",
			BusinessDays:  10,
			CapacityHours: 80,
		},
	}))
	require.NoError(t, err)

	assert.Equal(t, "Sprint planlaması başladı: Sprint 22", subject(t, m))
	to := m.GetToString()
	require.Len(t, to, 1)
	assert.Contains(t, to[0], "ayilmaz@example.com")

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/html")
}

func TestBuild_SprintCompleted(t *testing.T) {
	b := newBuilder(t)

	m, err := b.Build(body(t, domain.MailMessage{
		Type: domain.MailTypeSprintCompleted,
		To:   "ekaya@example.com",
		Data: domain.SprintCompletedMailData{FullName: "Emre Kaya", SprintName: "Sprint 22", PlannedHours: 60},
	}))
	require.NoError(t, err)
	assert.Equal(t, "Sprint tamamlandı: Sprint 22", subject(t, m))
}

func TestBuild_Rejects(t *testing.T) {
	b := newBuilder(t)

	_, err := b.Build([]byte(`not json`))
	assert.Error(t, err)

	_, err = b.Build(body(t, domain.MailMessage{Type: "create_user", To: "x@example.com"}))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = b.Build(body(t, domain.MailMessage{Type: domain.MailTypeSprintCompleted, To: "not an address"}))
	assert.Error(t, err)

	_, err = b.Build([]byte(`{"type":"planning_started","to":"a@example.com","data":"text"}`))
	assert.Error(t, err)
}

func TestNewBuilder_MissingTemplates(t *testing.T) {
	_, err := NewBuilder("planner@example.com", t.TempDir())
	assert.Error(t, err)
}
