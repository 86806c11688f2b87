package email

import (
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/GithubESPI/dotationsFrontend/internal/application/notification"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/template"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/biztime"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/config"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/services/markdown"
)

var ErrNoRecipient = errors.New("mail has no recipient")

const dateLayout = "02/01/2006"

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

func SMTPConfigFrom(cfg config.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

var _ notification.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier renders the workflow mails and sends them through gomail.
type SMTPNotifier struct {
	config    SMTPConfig
	send      func(m *gomail.Message) error
	templates *template.MailTemplateLoader
	markdown  markdown.Renderer
	logger    logger.Interface
}

func NewSMTPNotifier(cfg SMTPConfig, templates *template.MailTemplateLoader, md markdown.Renderer, log logger.Interface) *SMTPNotifier {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	return &SMTPNotifier{
		config:    cfg,
		send:      func(m *gomail.Message) error { return dialer.DialAndSend(m) },
		templates: templates,
		markdown:  md,
		logger:    log,
	}
}

type mailData struct {
	Reference           string
	AllocationReference string
	EmployeeName        string
	SignerName          string
	SignedAt            string
	DeliveryDate        string
	ReturnDate          string
	Lines               []notification.Line
	Accessories         []string
	RemovedSoftware     []string
	Completed           bool
	NotesHTML           htmltemplate.HTML
	NotesText           string
}

func (s *SMTPNotifier) AllocationSigned(ctx context.Context, msg notification.AllocationSigned) error {
	data := mailData{
		Reference:    msg.Reference,
		EmployeeName: msg.EmployeeName,
		SignerName:   msg.SignerName,
		SignedAt:     formatDate(msg.SignedAt),
		DeliveryDate: formatDate(msg.DeliveryDate),
		Lines:        msg.Lines,
		Accessories:  msg.Accessories,
	}
	if err := s.renderNotes(msg.Notes, &data); err != nil {
		return err
	}

	subject := fmt.Sprintf("Dotation %s signée", msg.Reference)
	return s.deliver(ctx, msg.To, subject, template.MailAllocationSigned, data)
}

func (s *SMTPNotifier) ReturnRecorded(ctx context.Context, msg notification.ReturnRecorded) error {
	data := mailData{
		Reference:           msg.Reference,
		AllocationReference: msg.AllocationReference,
		EmployeeName:        msg.EmployeeName,
		ReturnDate:          formatDate(msg.ReturnDate),
		Lines:               msg.Lines,
		RemovedSoftware:     msg.RemovedSoftware,
		Completed:           msg.Completed,
	}
	if err := s.renderNotes(msg.Notes, &data); err != nil {
		return err
	}

	subject := fmt.Sprintf("Restitution %s enregistrée", msg.Reference)
	return s.deliver(ctx, msg.To, subject, template.MailReturnRecorded, data)
}

func (s *SMTPNotifier) renderNotes(notes string, data *mailData) error {
	if notes == "" {
		return nil
	}
	html, err := s.markdown.ToHTMLSanitized(notes)
	if err != nil {
		return fmt.Errorf("failed to render notes: %w", err)
	}
	text, err := s.markdown.PlainText(notes)
	if err != nil {
		return fmt.Errorf("failed to render notes: %w", err)
	}
	// sanitized by bluemonday above
	data.NotesHTML = htmltemplate.HTML(html)
	data.NotesText = text
	return nil
}

func (s *SMTPNotifier) deliver(ctx context.Context, to, subject, templateName string, data mailData) error {
	if to == "" {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	htmlBody, textBody, err := s.templates.Render(templateName, data)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.send(m); err != nil {
		s.logger.Errorw("failed to send email", "error", err, "template", templateName)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infow("email sent", "template", templateName, "subject", subject)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(biztime.Location()).Format(dateLayout)
}
