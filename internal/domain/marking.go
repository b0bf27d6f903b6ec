package domain

import "sort"

type Dot struct {
	Key   SessionType `json:"key"`
	Color string      `json:"color"`
}

// DayMarking is the visual encoding of every valid session on one date.
type DayMarking struct {
	Date         string `json:"date"`
	Dots         []Dot  `json:"dots"`
	PrimaryColor string `json:"primaryColor"`
}

// HasType reports whether the marking already carries a dot for sessionType.
func (d DayMarking) HasType(sessionType SessionType) bool {
	for _, dot := range d.Dots {
		if dot.Key == sessionType {
			return true
		}
	}
	return false
}

// Marking maps canonical YYYY-MM-DD keys to their day marking.
type Marking map[string]DayMarking

// Dates returns the marked dates in ascending order.
func (m Marking) Dates() []string {
	dates := make([]string, 0, len(m))
	for date := range m {
		dates = append(dates, date)
	}
	// Canonical keys sort lexically in calendar order.
	sort.Strings(dates)
	return dates
}

// Between returns the days within [from, to]. An empty bound is open.
func (m Marking) Between(from, to string) Marking {
	out := make(Marking, len(m))
	for date, day := range m {
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		out[date] = day
	}
	return out
}
