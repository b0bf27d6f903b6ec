package toml

import (
	"context"

	"github.com/bnema/scdc-smart-cli/internal/domain"
	"github.com/bnema/scdc-smart-cli/internal/ports"
)

type AnnouncementRepository struct {
	store *Store
}

var _ ports.AnnouncementRepository = (*AnnouncementRepository)(nil)

func NewAnnouncementRepository(store *Store) *AnnouncementRepository {
	return &AnnouncementRepository{store: store}
}

func (r *AnnouncementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	var announcements []domain.Announcement
	err := r.store.view(ctx, func(file fileSchema) error {
		announcements = make([]domain.Announcement, 0, len(file.Announcements))
		for _, entry := range file.Announcements {
			announcements = append(announcements, domain.Announcement{
				ID:        domain.AnnouncementID(entry.ID),
				Text:      entry.Text,
				CreatedAt: parseTime(entry.CreatedAt),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return announcements, nil
}

func (r *AnnouncementRepository) Save(ctx context.Context, announcement domain.Announcement) error {
	return r.store.update(ctx, func(file *fileSchema) error {
		encoded := announcementSchema{
			ID:        string(announcement.ID),
			Text:      announcement.Text,
			CreatedAt: formatTime(announcement.CreatedAt),
		}
		for i := range file.Announcements {
			if file.Announcements[i].ID == encoded.ID {
				file.Announcements[i] = encoded
				return nil
			}
		}

		file.Announcements = append(file.Announcements, encoded)
		return nil
	})
}

type VideoRepository struct {
	store *Store
}

var _ ports.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(store *Store) *VideoRepository {
	return &VideoRepository{store: store}
}

// Find returns the videos whose sport and kind both match exactly.
func (r *VideoRepository) Find(ctx context.Context, sport string, kind domain.VideoKind) ([]domain.Video, error) {
	var videos []domain.Video
	err := r.store.view(ctx, func(file fileSchema) error {
		videos = make([]domain.Video, 0)
		for _, entry := range file.Videos {
			if entry.Sport != sport || entry.Kind != string(kind) {
				continue
			}
			videos = append(videos, domain.Video{
				ID:    domain.VideoID(entry.ID),
				Sport: entry.Sport,
				Kind:  domain.VideoKind(entry.Kind),
				Title: entry.Title,
				URL:   entry.URL,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return videos, nil
}

func (r *VideoRepository) Save(ctx context.Context, video domain.Video) error {
	return r.store.update(ctx, func(file *fileSchema) error {
		encoded := videoSchema{
			ID:    string(video.ID),
			Sport: video.Sport,
			Kind:  string(video.Kind),
			Title: video.Title,
			URL:   video.URL,
		}
		for i := range file.Videos {
			if file.Videos[i].ID == encoded.ID {
				file.Videos[i] = encoded
				return nil
			}
		}

		file.Videos = append(file.Videos, encoded)
		return nil
	})
}

type RegistrationRepository struct {
	store *Store
}

var _ ports.RegistrationRepository = (*RegistrationRepository)(nil)

func NewRegistrationRepository(store *Store) *RegistrationRepository {
	return &RegistrationRepository{store: store}
}

func (r *RegistrationRepository) List(ctx context.Context) ([]domain.Registration, error) {
	var registrations []domain.Registration
	err := r.store.view(ctx, func(file fileSchema) error {
		registrations = make([]domain.Registration, 0, len(file.Registrations))
		for _, entry := range file.Registrations {
			registrations = append(registrations, domain.Registration{
				ID:          domain.RegistrationID(entry.ID),
				Name:        entry.Name,
				Email:       entry.Email,
				Location:    entry.Location,
				StartDate:   entry.StartDate,
				NearestMTR:  entry.NearestMTR,
				SubmittedAt: parseTime(entry.SubmittedAt),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return registrations, nil
}

func (r *RegistrationRepository) Save(ctx context.Context, registration domain.Registration) error {
	return r.store.update(ctx, func(file *fileSchema) error {
		file.Registrations = append(file.Registrations, registrationSchema{
			ID:          string(registration.ID),
			Name:        registration.Name,
			Email:       registration.Email,
			Location:    registration.Location,
			StartDate:   registration.StartDate,
			NearestMTR:  registration.NearestMTR,
			SubmittedAt: formatTime(registration.SubmittedAt),
		})
		return nil
	})
}
