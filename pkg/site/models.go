package site

import (
	"fmt"
	"time"
)

// Member is one co-op member as listed on the members page.
type Member struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Statement string `json:"statement"`
	Shop      string `json:"shop,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Anchor returns the fragment id of the member's section.
func (m Member) Anchor() string {
	return Anchor(m.Name)
}

func (m Member) validate(index int) error {
	for _, f := range []struct {
		name, value string
	}{
		{"name", m.Name},
		{"image", m.Image},
		{"statement", m.Statement},
	} {
		if f.value == "" {
			return &RecordError{Kind: "member", Index: index, Field: f.name, Err: ErrMissingField}
		}
	}
	return nil
}

// Workshop is one scheduled workshop.
type Workshop struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	Instructor  string `json:"instructor,omitempty"`
}

// ParseDate parses the workshop date as a UTC calendar day.
func (w Workshop) ParseDate() (time.Time, error) {
	day, err := time.Parse(time.DateOnly, w.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, w.Date)
	}
	return day, nil
}

func (w Workshop) validate(index int) (time.Time, error) {
	for _, f := range []struct {
		name, value string
	}{
		{"name", w.Name},
		{"date", w.Date},
		{"time", w.Time},
		{"image", w.Image},
		{"description", w.Description},
	} {
		if f.value == "" {
			return time.Time{}, &RecordError{Kind: "workshop", Index: index, Field: f.name, Err: ErrMissingField}
		}
	}
	day, err := w.ParseDate()
	if err != nil {
		return time.Time{}, &RecordError{Kind: "workshop", Index: index, Field: "date", Err: err}
	}
	return day, nil
}

// Validate checks every member and workshop for required fields and a
// parseable date. It returns the first *RecordError found.
func Validate(members []Member, workshops []Workshop) error {
	for i, m := range members {
		if err := m.validate(i); err != nil {
			return err
		}
	}
	for i, w := range workshops {
		if _, err := w.validate(i); err != nil {
			return err
		}
	}
	return nil
}

// MemberNames returns the set of non-empty member names, used to decide which
// workshop instructors link back to the members page.
func MemberNames(members []Member) map[string]struct{} {
	names := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m.Name != "" {
			names[m.Name] = struct{}{}
		}
	}
	return names
}

// civilDay truncates t to its calendar date in t's own location, expressed in UTC.
func civilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
