package domain

import (
	"fmt"
	"strings"
)

type SessionTypeInfo struct {
	Type  SessionType `json:"type"`
	Label string      `json:"label"`
	Color string      `json:"color"`
}

// Legend is the immutable session type table. The zero value is an empty legend
// that resolves nothing.
type Legend struct {
	entries []SessionTypeInfo
	index   map[SessionType]int
}

// NewLegend builds a legend whose AllTypes order is the argument order.
func NewLegend(entries ...SessionTypeInfo) (Legend, error) {
	owned := make([]SessionTypeInfo, 0, len(entries))
	index := make(map[SessionType]int, len(entries))

	for _, entry := range entries {
		if strings.TrimSpace(string(entry.Type)) == "" {
			return Legend{}, fmt.Errorf("%w: session type is required", ErrInvalidLegend)
		}
		if strings.TrimSpace(entry.Color) == "" {
			return Legend{}, fmt.Errorf("%w: color is required for %q", ErrInvalidLegend, entry.Type)
		}
		if _, ok := index[entry.Type]; ok {
			return Legend{}, fmt.Errorf("%w: duplicate session type %q", ErrInvalidLegend, entry.Type)
		}

		index[entry.Type] = len(owned)
		owned = append(owned, entry)
	}

	return Legend{entries: owned, index: index}, nil
}

// DefaultLegend returns the built-in five entry table.
func DefaultLegend() Legend {
	legend, err := NewLegend(
		SessionTypeInfo{Type: SessionTypeRoutineAvailable, Label: "ROUTINE VOLUNTEERING STILL AVAILABLE", Color: "blue"},
		SessionTypeInfo{Type: SessionTypeChangeSchedule, Label: "Change in schedule", Color: "red"},
		SessionTypeInfo{Type: SessionTypeNewCompetitions, Label: "New Competitions", Color: "green"},
		SessionTypeInfo{Type: SessionTypeOtherVolunteering, Label: "Other Volunteering", Color: "yellow"},
		SessionTypeInfo{Type: SessionTypeRoutineOverbooked, Label: "ROUTINE VOLUNTEERING OVERBOOKED", Color: "orange"},
	)
	if err != nil {
		panic(err)
	}

	return legend
}

func (l Legend) Info(sessionType SessionType) (SessionTypeInfo, error) {
	i, ok := l.index[sessionType]
	if !ok {
		return SessionTypeInfo{}, &UnknownSessionTypeError{SessionType: sessionType}
	}

	return l.entries[i], nil
}

func (l Legend) ColorOf(sessionType SessionType) (string, error) {
	info, err := l.Info(sessionType)
	if err != nil {
		return "", err
	}
	return info.Color, nil
}

func (l Legend) LabelOf(sessionType SessionType) (string, error) {
	info, err := l.Info(sessionType)
	if err != nil {
		return "", err
	}
	return info.Label, nil
}

func (l Legend) Contains(sessionType SessionType) bool {
	_, ok := l.index[sessionType]
	return ok
}

// AllTypes returns a copy of the table in declaration order.
func (l Legend) AllTypes() []SessionTypeInfo {
	out := make([]SessionTypeInfo, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l Legend) Len() int {
	return len(l.entries)
}
