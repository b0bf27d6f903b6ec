package ports

import (
	"context"

	"github.com/bnema/scdc-smart-cli/internal/domain"
)

type AnnouncementRepository interface {
	List(ctx context.Context) ([]domain.Announcement, error)
	Save(ctx context.Context, announcement domain.Announcement) error
}

type VideoRepository interface {
	Find(ctx context.Context, sport string, kind domain.VideoKind) ([]domain.Video, error)
	Save(ctx context.Context, video domain.Video) error
}

type RegistrationRepository interface {
	List(ctx context.Context) ([]domain.Registration, error)
	Save(ctx context.Context, registration domain.Registration) error
}
