package template

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

const (
	MailAllocationSigned = "allocation_signed"
	MailReturnRecorded   = "return_recorded"
)

var mailNames = []string{MailAllocationSigned, MailReturnRecorded}

//go:embed mail/*.html mail/*.txt
var defaultMails embed.FS

var funcs = map[string]any{
	"join": strings.Join,
}

type mailTemplate struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// MailTemplateLoader holds the HTML and plain-text body of every mail. Files named
// {name}.html or {name}.txt in the override directory replace the built-in bodies.
type MailTemplateLoader struct {
	templates map[string]mailTemplate
	path      string
	logger    logger.Interface
}

func NewMailTemplateLoader(path string, logger logger.Interface) *MailTemplateLoader {
	return &MailTemplateLoader{
		templates: make(map[string]mailTemplate),
		path:      path,
		logger:    logger,
	}
}

// Load parses the built-in templates, then the overrides found in the configured directory.
func (l *MailTemplateLoader) Load() error {
	for _, name := range mailNames {
		htmlSrc, err := defaultMails.ReadFile("mail/" + name + ".html")
		if err != nil {
			return fmt.Errorf("missing built-in template %s.html: %w", name, err)
		}
		textSrc, err := defaultMails.ReadFile("mail/" + name + ".txt")
		if err != nil {
			return fmt.Errorf("missing built-in template %s.txt: %w", name, err)
		}

		if l.path != "" {
			if content, ok := l.readOverride(name + ".html"); ok {
				htmlSrc = content
			}
			if content, ok := l.readOverride(name + ".txt"); ok {
				textSrc = content
			}
		}

		h, err := htmltemplate.New(name).Funcs(funcs).Parse(string(htmlSrc))
		if err != nil {
			return fmt.Errorf("failed to parse %s.html: %w", name, err)
		}
		t, err := texttemplate.New(name).Funcs(funcs).Parse(string(textSrc))
		if err != nil {
			return fmt.Errorf("failed to parse %s.txt: %w", name, err)
		}
		l.templates[name] = mailTemplate{html: h, text: t}
	}

	l.logger.Infow("mail templates loaded", "count", len(l.templates), "override_path", l.path)
	return nil
}

func (l *MailTemplateLoader) readOverride(filename string) ([]byte, bool) {
	filePath := filepath.Join(l.path, filename)
	content, err := os.ReadFile(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			l.logger.Warnw("failed to read mail template", "file", filePath, "error", err)
		}
		return nil, false
	}
	l.logger.Infow("loaded mail template override", "file", filePath, "size", len(content))
	return content, true
}

// Render executes both bodies of the named mail.
func (l *MailTemplateLoader) Render(name string, data any) (htmlBody, textBody string, err error) {
	tpl, ok := l.templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown mail template: %s", name)
	}

	var hb, tb bytes.Buffer
	if err := tpl.html.Execute(&hb, data); err != nil {
		return "", "", fmt.Errorf("failed to render %s.html: %w", name, err)
	}
	if err := tpl.text.Execute(&tb, data); err != nil {
		return "", "", fmt.Errorf("failed to render %s.txt: %w", name, err)
	}
	return hb.String(), strings.TrimSpace(tb.String()), nil
}
