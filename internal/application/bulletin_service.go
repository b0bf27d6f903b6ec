package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/scdc-smart-cli/internal/domain"
	"github.com/bnema/scdc-smart-cli/internal/ports"
)

var ErrEmptyAnnouncement = errors.New("announcement text is required")

// BulletinService covers the announcement board, the sport video catalogue and
// volunteer registrations.
type BulletinService struct {
	announcements ports.AnnouncementRepository
	videos        ports.VideoRepository
	registrations ports.RegistrationRepository
	clock         ports.Clock
	ids           ports.IDGenerator
}

func NewBulletinService(
	announcements ports.AnnouncementRepository,
	videos ports.VideoRepository,
	registrations ports.RegistrationRepository,
	clock ports.Clock,
	ids ports.IDGenerator,
) *BulletinService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ids == nil {
		ids = ports.UUIDGenerator{}
	}

	return &BulletinService{
		announcements: announcements,
		videos:        videos,
		registrations: registrations,
		clock:         clock,
		ids:           ids,
	}
}

func (s *BulletinService) PostAnnouncement(ctx context.Context, cmd PostAnnouncementCommand) (domain.Announcement, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return domain.Announcement{}, ErrEmptyAnnouncement
	}

	announcement := domain.Announcement{
		ID:        domain.AnnouncementID(s.ids.NewID()),
		Text:      text,
		CreatedAt: s.clock.Now().UTC(),
	}

	if err := s.announcements.Save(ctx, announcement); err != nil {
		return domain.Announcement{}, fmt.Errorf("save announcement: %w", err)
	}

	return announcement, nil
}

// ListAnnouncements returns announcements newest first; ties keep store order.
func (s *BulletinService) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	announcements, err := s.announcements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}

	sort.SliceStable(announcements, func(i, j int) bool {
		return announcements[i].CreatedAt.After(announcements[j].CreatedAt)
	})

	return announcements, nil
}

func (s *BulletinService) AddVideo(ctx context.Context, cmd AddVideoCommand) (domain.Video, error) {
	kind, err := domain.ParseVideoKind(string(cmd.Kind))
	if err != nil {
		return domain.Video{}, err
	}

	video := domain.Video{
		Sport: strings.TrimSpace(cmd.Sport),
		Kind:  kind,
		Title: strings.TrimSpace(cmd.Title),
		URL:   strings.TrimSpace(cmd.URL),
	}
	if video.Sport == "" || video.Title == "" || video.URL == "" {
		return domain.Video{}, errors.New("sport, title and url are required")
	}
	video.ID = domain.VideoID(s.ids.NewID())

	if err := s.videos.Save(ctx, video); err != nil {
		return domain.Video{}, fmt.Errorf("save video: %w", err)
	}

	return video, nil
}

func (s *BulletinService) FindVideos(ctx context.Context, sport string, kind domain.VideoKind) ([]domain.Video, error) {
	parsed, err := domain.ParseVideoKind(string(kind))
	if err != nil {
		return nil, err
	}

	videos, err := s.videos.Find(ctx, strings.TrimSpace(sport), parsed)
	if err != nil {
		return nil, fmt.Errorf("find videos: %w", err)
	}

	return videos, nil
}

func (s *BulletinService) SubmitRegistration(ctx context.Context, cmd SubmitRegistrationCommand) (domain.Registration, error) {
	now := s.clock.Now()

	startDate := now.Format(domain.DateLayout)
	if strings.TrimSpace(cmd.StartDate) != "" {
		_, key, err := domain.ParseDate(cmd.StartDate)
		if err != nil {
			return domain.Registration{}, fmt.Errorf("parse start date: %w", err)
		}
		startDate = key
	}

	registration := domain.Registration{
		ID:          domain.RegistrationID(s.ids.NewID()),
		Name:        cmd.Name,
		Email:       cmd.Email,
		Location:    cmd.Location,
		StartDate:   startDate,
		NearestMTR:  cmd.NearestMTR,
		SubmittedAt: now.UTC(),
	}

	if err := s.registrations.Save(ctx, registration); err != nil {
		return domain.Registration{}, fmt.Errorf("save registration: %w", err)
	}

	return registration, nil
}

func (s *BulletinService) ListRegistrations(ctx context.Context) ([]domain.Registration, error) {
	registrations, err := s.registrations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return registrations, nil
}
