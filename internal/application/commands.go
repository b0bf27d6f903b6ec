package application

import "github.com/bnema/scdc-smart-cli/internal/domain"

type AddSessionCommand struct {
	Date        string
	SessionType domain.SessionType
	Description string
}

type PostAnnouncementCommand struct {
	Text string
}

type AddVideoCommand struct {
	Sport string
	Kind  domain.VideoKind
	Title string
	URL   string
}

// SubmitRegistrationCommand carries the registration form as entered. An empty
// StartDate means today.
type SubmitRegistrationCommand struct {
	Name       string
	Email      string
	Location   string
	StartDate  string
	NearestMTR string
}
