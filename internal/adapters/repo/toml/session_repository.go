package toml

import (
	"context"

	"github.com/bnema/scdc-smart-cli/internal/domain"
	"github.com/bnema/scdc-smart-cli/internal/ports"
)

type SessionRepository struct {
	store *Store
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// List returns the session records in file order.
func (r *SessionRepository) List(ctx context.Context) ([]domain.SessionRecord, error) {
	var records []domain.SessionRecord
	err := r.store.view(ctx, func(file fileSchema) error {
		records = make([]domain.SessionRecord, 0, len(file.Sessions))
		for _, entry := range file.Sessions {
			records = append(records, fromSessionSchema(entry))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *SessionRepository) Save(ctx context.Context, record domain.SessionRecord) error {
	return r.store.update(ctx, func(file *fileSchema) error {
		encoded := toSessionSchema(record)
		for i := range file.Sessions {
			if file.Sessions[i].ID == encoded.ID {
				file.Sessions[i] = encoded
				return nil
			}
		}

		file.Sessions = append(file.Sessions, encoded)
		return nil
	})
}

func (r *SessionRepository) Delete(ctx context.Context, id domain.SessionID) error {
	return r.store.update(ctx, func(file *fileSchema) error {
		for i := range file.Sessions {
			if file.Sessions[i].ID == string(id) {
				file.Sessions = append(file.Sessions[:i], file.Sessions[i+1:]...)
				return nil
			}
		}

		return domain.ErrSessionNotFound
	})
}

func toSessionSchema(record domain.SessionRecord) sessionSchema {
	return sessionSchema{
		ID:          string(record.ID),
		Date:        record.Date,
		SessionType: string(record.SessionType),
		Description: record.Description,
	}
}

func fromSessionSchema(entry sessionSchema) domain.SessionRecord {
	return domain.SessionRecord{
		ID:          domain.SessionID(entry.ID),
		Date:        entry.Date,
		SessionType: domain.SessionType(entry.SessionType),
		Description: entry.Description,
	}
}
