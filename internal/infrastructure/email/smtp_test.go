package email

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/GithubESPI/dotationsFrontend/internal/application/notification"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/template"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/services/markdown"
)

func newTestNotifier(t *testing.T) (*SMTPNotifier, *[]*gomail.Message) {
	t.Helper()

	tpl := template.NewMailTemplateLoader("", logger.NewNopLogger())
	require.NoError(t, tpl.Load())

	n := NewSMTPNotifier(SMTPConfig{FromAddress: "dotations@example.com", FromName: "Service Dotations"}, tpl, markdown.NewRenderer(), logger.NewNopLogger())
	var sent []*gomail.Message
	n.send = func(m *gomail.Message) error {
		sent = append(sent, m)
		return nil
	}
	return n, &sent
}

func TestSMTPNotifier_AllocationSigned(t *testing.T) {
	n, sent := newTestNotifier(t)

	err := n.AllocationSigned(context.Background(), notification.AllocationSigned{
		To:           "jean.dupont@example.com",
		EmployeeName: "Jean Dupont",
		Reference:    "DOT-2024-0001",
		SignerName:   "Jean Dupont",
		SignedAt:     time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC),
		Lines:        []notification.Line{{Type: "PC Portable", Brand: "Dell", Model: "Latitude", SerialNumber: "ABC123"}},
		Notes:        "**Chargeur** fourni",
	})
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	m := (*sent)[0]
	assert.Equal(t, []string{"jean.dupont@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Dotation DOT-2024-0001 signée"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/html")
}

func TestSMTPNotifier_RenderNotes(t *testing.T) {
	n, _ := newTestNotifier(t)

	var data mailData
	require.NoError(t, n.renderNotes("**Chargeur** <script>x</script>", &data))
	assert.Contains(t, string(data.NotesHTML), "<strong>Chargeur</strong>")
	assert.NotContains(t, string(data.NotesHTML), "<script>")
	assert.Contains(t, data.NotesText, "Chargeur")
}

func TestSMTPNotifier_Errors(t *testing.T) {
	n, sent := newTestNotifier(t)

	err := n.ReturnRecorded(context.Background(), notification.ReturnRecorded{Reference: "RES-1"})
	assert.ErrorIs(t, err, ErrNoRecipient)

	n.send = func(*gomail.Message) error { return errors.New("connection refused") }
	err = n.ReturnRecorded(context.Background(), notification.ReturnRecorded{To: "a@example.com", Reference: "RES-1"})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = n.AllocationSigned(ctx, notification.AllocationSigned{To: "a@example.com"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, *sent)
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier(logger.NewNopLogger())
	assert.NoError(t, n.AllocationSigned(context.Background(), notification.AllocationSigned{Reference: "DOT-1"}))
	assert.NoError(t, n.ReturnRecorded(context.Background(), notification.ReturnRecorded{Reference: "RES-1"}))
}
