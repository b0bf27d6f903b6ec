package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/scdc-smart-cli/internal/application"
	"github.com/bnema/scdc-smart-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const dotGlyph = "●"

type RenderOptions struct {
	// Plain drops colors, for output that is not a terminal.
	Plain bool
}

func renderCalendar(view application.CalendarView, s styles) string {
	dates := view.Marking.Dates()
	lines := []string{
		s.title.Render("Upcoming Sessions"),
		s.header.Render(fmt.Sprintf("days: %d", len(dates))),
	}

	if view.Month != "" {
		if grid, ok := renderMonth(view.Month, view.Marking, s); ok {
			lines = append(lines, s.section.Render(grid))
		}
	}

	if len(dates) == 0 {
		lines = append(lines, s.empty.Render("No sessions scheduled."))
	} else {
		days := make([]string, 0, len(dates))
		for _, date := range dates {
			days = append(days, renderDay(view.Marking[date], view.Legend, s))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, days...)))
	}

	if n := len(view.Diagnostics); n > 0 {
		noun := "records"
		if n == 1 {
			noun = "record"
		}
		lines = append(lines, s.warning.Render(fmt.Sprintf("skipped %d invalid session %s", n, noun)))
	}

	lines = append(lines, s.section.Render(renderLegend(view.Legend, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDay(day domain.DayMarking, legend []domain.SessionTypeInfo, s styles) string {
	dots := make([]string, 0, len(day.Dots))
	labels := make([]string, 0, len(day.Dots))
	for _, dot := range day.Dots {
		dots = append(dots, s.dot(dot.Color))
		labels = append(labels, labelFor(dot.Key, legend))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.highlight(day.PrimaryColor, day.Date),
		"  ",
		strings.Join(dots, ""),
		"  ",
		s.detail.Render(strings.Join(labels, ", ")),
	)
}

func labelFor(sessionType domain.SessionType, legend []domain.SessionTypeInfo) string {
	for _, entry := range legend {
		if entry.Type == sessionType {
			return entry.Label
		}
	}
	return string(sessionType)
}

func renderLegend(entries []domain.SessionTypeInfo, s styles) string {
	lines := []string{s.title.Render("Legend")}
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s %s %s", s.dot(entry.Color), entry.Label, s.header.Render("("+entry.Color+")")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderMonth draws a Monday-first grid for month (YYYY-MM). Marked days are
// highlighted with their primary color, or suffixed with '*' in plain mode.
func renderMonth(month string, marking domain.Marking, s styles) (string, bool) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return "", false
	}

	rows := []string{
		s.title.Render(first.Format("January 2006")),
		s.weekday.Render("Mo  Tu  We  Th  Fr  Sa  Su"),
	}

	offset := (int(first.Weekday()) + 6) % 7
	cells := make([]string, 0, 7)
	for i := 0; i < offset; i++ {
		cells = append(cells, "    ")
	}

	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		number := fmt.Sprintf("%2d", day.Day())
		cell := s.dayPlain.Render(number) + "  "
		if marked, ok := marking[day.Format(domain.DateLayout)]; ok {
			if s.plain {
				cell = number + "* "
			} else {
				cell = s.highlight(marked.PrimaryColor, number) + "  "
			}
		}
		cells = append(cells, cell)

		if len(cells) == 7 {
			rows = append(rows, strings.TrimRight(strings.Join(cells, ""), " "))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		rows = append(rows, strings.TrimRight(strings.Join(cells, ""), " "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...), true
}
