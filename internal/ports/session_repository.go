package ports

import (
	"context"

	"github.com/bnema/scdc-smart-cli/internal/domain"
)

// SessionRepository is the session-record source the calendar is built from.
type SessionRepository interface {
	List(ctx context.Context) ([]domain.SessionRecord, error)
	Save(ctx context.Context, record domain.SessionRecord) error
	Delete(ctx context.Context, id domain.SessionID) error
}
