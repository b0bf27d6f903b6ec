package domain

import (
	"fmt"
	"strings"
	"time"
)

type AnnouncementID string

type Announcement struct {
	ID        AnnouncementID
	Text      string
	CreatedAt time.Time
}

type VideoID string
type VideoKind string

const (
	VideoKindHowToPlay   VideoKind = "howToPlay"
	VideoKindHowToAssist VideoKind = "howToAssist"
)

func ParseVideoKind(raw string) (VideoKind, error) {
	switch kind := VideoKind(strings.TrimSpace(raw)); kind {
	case VideoKindHowToPlay, VideoKindHowToAssist:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrVideoKindInvalid, raw)
	}
}

func (k VideoKind) Label() string {
	switch k {
	case VideoKindHowToPlay:
		return "How to Play"
	case VideoKindHowToAssist:
		return "How to Assist"
	default:
		return string(k)
	}
}

type Video struct {
	ID    VideoID
	Sport string
	Kind  VideoKind
	Title string
	URL   string
}

type RegistrationID string

// Registration is a submitted volunteer registration form, stored as entered.
type Registration struct {
	ID          RegistrationID
	Name        string
	Email       string
	Location    string
	StartDate   string
	NearestMTR  string
	SubmittedAt time.Time
}
