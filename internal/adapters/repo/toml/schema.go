package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version       int                  `toml:"version"`
	Sessions      []sessionSchema      `toml:"sessions"`
	Announcements []announcementSchema `toml:"announcements"`
	Videos        []videoSchema        `toml:"videos"`
	Registrations []registrationSchema `toml:"registrations"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported store schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// Session dates and types are stored verbatim; they are validated when the
// calendar is aggregated, not on load.
type sessionSchema struct {
	ID          string `toml:"id"`
	Date        string `toml:"date"`
	SessionType string `toml:"session_type"`
	Description string `toml:"description,omitempty"`
}

type announcementSchema struct {
	ID        string `toml:"id"`
	Text      string `toml:"text"`
	CreatedAt string `toml:"created_at"`
}

type videoSchema struct {
	ID    string `toml:"id"`
	Sport string `toml:"sport"`
	Kind  string `toml:"kind"`
	Title string `toml:"title"`
	URL   string `toml:"url"`
}

type registrationSchema struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Email       string `toml:"email"`
	Location    string `toml:"location"`
	StartDate   string `toml:"start_date"`
	NearestMTR  string `toml:"nearest_mtr"`
	SubmittedAt string `toml:"submitted_at"`
}
