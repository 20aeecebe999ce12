package site

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"time"

	"github.com/CTAG07/Kiln/pkg/templating"
)

//go:embed templates/*.html
var templateFiles embed.FS

// TemplateFS holds the page templates and partials of the site.
var TemplateFS fs.FS = mustSub(templateFiles, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Output file names of the four pages.
const (
	IndexPage     = "index.html"
	AboutPage     = "about.html"
	MembersPage   = "members.html"
	WorkshopsPage = "workshops.html"
)

// Page is one rendered output file.
type Page struct {
	Name string
	HTML string
}

type pageButton struct {
	Label string
	Href  string
}

type pageData struct {
	Assets templating.TemplateConfig
	Title  string
	Button *pageButton
	Body   any
}

type workshopView struct {
	Workshop
	Day              time.Time
	InstructorAnchor string
}

type workshopsBody struct {
	Workshops []workshopView
	Calendar  []MonthGrid
}

// Renderer produces the HTML of every page of the site.
type Renderer struct {
	logger *slog.Logger
	tm     *templating.TemplateManager
}

// NewRenderer creates a Renderer over the embedded site templates. A nil
// config uses templating.DefaultConfig.
func NewRenderer(logger *slog.Logger, config *templating.TemplateConfig) (*Renderer, error) {
	tm, err := templating.NewTemplateManager(logger, config, TemplateFS)
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}
	return &Renderer{logger: logger, tm: tm}, nil
}

func (r *Renderer) render(name, title string, button *pageButton, body any) (string, error) {
	return r.tm.ExecuteString(name, pageData{
		Assets: r.tm.GetConfig(),
		Title:  title,
		Button: button,
		Body:   body,
	})
}

// RenderMembers renders the members page, one section per member in input order.
func (r *Renderer) RenderMembers(members []Member) (string, error) {
	for i, m := range members {
		if err := m.validate(i); err != nil {
			return "", err
		}
	}
	apply := &pageButton{Label: "Apply Now", Href: r.tm.GetConfig().ApplyURL}
	return r.render("members.tmpl.html", "Members", apply, members)
}

// RenderWorkshops renders the workshops page. Workshops dated before today are
// dropped, the rest are listed in ascending date order (ties keep input order)
// followed by a calendar of the months they fall in. An instructor links to
// the members page only when it exactly matches one of memberNames.
func (r *Renderer) RenderWorkshops(workshops []Workshop, memberNames map[string]struct{}, today time.Time) (string, error) {
	cutoff := civilDay(today)

	var upcoming []workshopView
	for i, w := range workshops {
		day, err := w.validate(i)
		if err != nil {
			return "", err
		}
		if day.Before(cutoff) {
			continue
		}
		view := workshopView{Workshop: w, Day: day}
		if _, ok := memberNames[w.Instructor]; ok && w.Instructor != "" {
			view.InstructorAnchor = Anchor(w.Instructor)
		}
		upcoming = append(upcoming, view)
	}
	slices.SortStableFunc(upcoming, func(a, b workshopView) int {
		return a.Day.Compare(b.Day)
	})

	days := make([]time.Time, len(upcoming))
	for i, w := range upcoming {
		days[i] = w.Day
	}
	r.logger.Debug("Rendering workshops",
		"total", len(workshops),
		"upcoming", len(upcoming),
		"today", cutoff.Format(time.DateOnly))

	return r.render("workshops.tmpl.html", "Workshops", nil, workshopsBody{
		Workshops: upcoming,
		Calendar:  BuildCalendar(days),
	})
}

// RenderIndex renders the home page.
func (r *Renderer) RenderIndex() (string, error) {
	return r.render("index.tmpl.html", "", nil, nil)
}

// RenderAbout renders the about page.
func (r *Renderer) RenderAbout() (string, error) {
	return r.render("about.tmpl.html", "About", nil, nil)
}

// RenderAll renders the four pages in memory. Any error aborts the whole pass
// so callers never persist a partial site.
func (r *Renderer) RenderAll(members []Member, workshops []Workshop, today time.Time) ([]Page, error) {
	steps := []struct {
		name   string
		render func() (string, error)
	}{
		{MembersPage, func() (string, error) { return r.RenderMembers(members) }},
		{WorkshopsPage, func() (string, error) { return r.RenderWorkshops(workshops, MemberNames(members), today) }},
		{IndexPage, r.RenderIndex},
		{AboutPage, r.RenderAbout},
	}

	pages := make([]Page, 0, len(steps))
	for _, step := range steps {
		html, err := step.render()
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", step.name, err)
		}
		pages = append(pages, Page{Name: step.name, HTML: html})
	}
	return pages, nil
}
