package domain

import (
	"strings"
	"time"
)

// DateLayout is the canonical calendar date form used as marking key.
const DateLayout = "2006-01-02"

type SessionID string

type SessionType string

const (
	SessionTypeRoutineAvailable  SessionType = "ROUTINE_AVAILABLE"
	SessionTypeChangeSchedule    SessionType = "CHANGE_SCHEDULE"
	SessionTypeNewCompetitions   SessionType = "NEW_COMPETITIONS"
	SessionTypeOtherVolunteering SessionType = "OTHER_VOLUNTEERING"
	SessionTypeRoutineOverbooked SessionType = "ROUTINE_OVERBOOKED"
)

// SessionRecord is one scheduled volunteering event. Date is kept as stored so
// that malformed values are reported by aggregation instead of being lost on load.
type SessionRecord struct {
	ID          SessionID
	Date        string
	SessionType SessionType
	Description string
}

// ParseDate parses a strict YYYY-MM-DD date and returns it with its canonical key.
func ParseDate(raw string) (time.Time, string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, "", &MalformedDateError{Value: raw}
	}

	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, "", &MalformedDateError{Value: raw, Err: err}
	}

	return parsed, parsed.Format(DateLayout), nil
}
