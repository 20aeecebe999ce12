package site

import (
	"slices"
	"time"
)

// DayCell is one cell of a month grid. Day is 0 for the blank cells before
// the first and after the last day of the month.
type DayCell struct {
	Day         int
	ISO         string
	Highlighted bool
}

// MonthGrid is a Sunday-first calendar table for one month.
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks [][7]DayCell
}

// BuildCalendar returns one MonthGrid per distinct (year, month) among dates,
// in chronological order. A day is highlighted iff it is one of dates.
func BuildCalendar(dates []time.Time) []MonthGrid {
	highlighted := make(map[string]struct{}, len(dates))
	var months []time.Time
	for _, d := range dates {
		highlighted[d.Format(time.DateOnly)] = struct{}{}
		first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		if !slices.ContainsFunc(months, first.Equal) {
			months = append(months, first)
		}
	}
	slices.SortFunc(months, func(a, b time.Time) int {
		return a.Compare(b)
	})

	grids := make([]MonthGrid, 0, len(months))
	for _, first := range months {
		grids = append(grids, buildMonth(first, highlighted))
	}
	return grids
}

func buildMonth(first time.Time, highlighted map[string]struct{}) MonthGrid {
	grid := MonthGrid{Year: first.Year(), Month: first.Month()}
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var week [7]DayCell
	col := int(first.Weekday()) // Sunday is 0
	for day := 1; day <= daysInMonth; day++ {
		iso := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
		_, hl := highlighted[iso]
		week[col] = DayCell{Day: day, ISO: iso, Highlighted: hl}
		col++
		if col == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = [7]DayCell{}
			col = 0
		}
	}
	if col > 0 {
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}
