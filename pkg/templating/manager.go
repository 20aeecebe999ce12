package templating

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"strings"
)

// ErrNoPages is returned when the filesystem holds no *.tmpl.html files.
var ErrNoPages = errors.New("no page templates found")

const (
	pagePattern    = "*.tmpl.html"
	partialPattern = "*.part.html"
)

// TemplateManager is the central controller for the templating engine.
// It owns the parsed template set, the configuration and the function map.
// The set is parsed once at construction and never changes afterwards, so
// a TemplateManager is safe for concurrent use.
type TemplateManager struct {
	logger    *slog.Logger
	config    TemplateConfig
	templates *template.Template
	pageCount int
}

// NewTemplateManager creates a TemplateManager reading templates from fsys.
// A nil config falls back to DefaultConfig.
func NewTemplateManager(logger *slog.Logger, config *TemplateConfig, fsys fs.FS) (*TemplateManager, error) {
	if config == nil {
		config = DefaultConfig()
	}
	tm := &TemplateManager{
		logger: logger,
		config: *config,
	}
	if err := tm.load(fsys); err != nil {
		return nil, err
	}

	logger.Debug("Template manager initialized", "pages", tm.pageCount)
	return tm, nil
}

func makeFuncMap() template.FuncMap {
	return template.FuncMap{
		// Dates (from funcs_dates.go)
		"longDate":  longDate,
		"isoDate":   isoDate,
		"monthYear": monthYear,
		"weekdays":  weekdays,
	}
}

// load parses every page and partial template from fsys.
func (tm *TemplateManager) load(fsys fs.FS) error {
	parsed, err := template.New("").Funcs(makeFuncMap()).ParseFS(fsys, pagePattern)
	if err != nil {
		if strings.Contains(err.Error(), "pattern matches no files") {
			return ErrNoPages
		}
		tm.logger.Error("failed to parse page templates", "error", err)
		return err
	}

	for _, t := range parsed.Templates() {
		if strings.HasSuffix(t.Name(), ".tmpl.html") {
			tm.pageCount++
		}
	}

	withPartials, err := parsed.ParseFS(fsys, partialPattern)
	if err != nil {
		if !strings.Contains(err.Error(), "pattern matches no files") {
			tm.logger.Error("failed to parse partial files", "error", err)
			return err
		}
		withPartials = parsed
	}
	tm.templates = withPartials
	return nil
}

// Execute renders the named template to w.
func (tm *TemplateManager) Execute(w io.Writer, name string, data any) error {
	if err := tm.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to execute template %q: %w", name, err)
	}
	return nil
}

// ExecuteString is Execute returning the output as a string.
func (tm *TemplateManager) ExecuteString(name string, data any) (string, error) {
	var sb strings.Builder
	if err := tm.Execute(&sb, name, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// GetConfig returns a copy of the asset configuration.
func (tm *TemplateManager) GetConfig() TemplateConfig {
	return tm.config
}
