package application

import "github.com/bnema/scdc-smart-cli/internal/domain"

// CalendarQuery narrows the calendar to a date range. Month (YYYY-MM) takes
// precedence over From/To; empty bounds are open.
type CalendarQuery struct {
	From  string
	To    string
	Month string
}

type CalendarView struct {
	Marking     domain.Marking
	Legend      []domain.SessionTypeInfo
	Diagnostics []Diagnostic
	Month       string
}
