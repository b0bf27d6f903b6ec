package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/scdc-smart-cli/internal/domain"
	"github.com/bnema/scdc-smart-cli/internal/logging"
	"github.com/bnema/scdc-smart-cli/internal/ports"
	"github.com/rs/zerolog"
)

const monthLayout = "2006-01"

type CalendarService struct {
	sessions   ports.SessionRepository
	aggregator *Aggregator
	ids        ports.IDGenerator
	logger     zerolog.Logger
}

func NewCalendarService(sessions ports.SessionRepository, aggregator *Aggregator, ids ports.IDGenerator, logger zerolog.Logger) *CalendarService {
	if aggregator == nil {
		aggregator = NewAggregator(domain.DefaultLegend())
	}
	if ids == nil {
		ids = ports.UUIDGenerator{}
	}

	return &CalendarService{
		sessions:   sessions,
		aggregator: aggregator,
		ids:        ids,
		logger:     logger,
	}
}

func (s *CalendarService) Legend() []domain.SessionTypeInfo {
	return s.aggregator.Legend().AllTypes()
}

// Calendar loads every session record and aggregates it. Records the
// aggregator rejects are logged and returned as diagnostics.
func (s *CalendarService) Calendar(ctx context.Context, query CalendarQuery) (CalendarView, error) {
	from, to, month, err := resolveRange(query)
	if err != nil {
		return CalendarView{}, err
	}

	records, err := s.sessions.List(ctx)
	if err != nil {
		return CalendarView{}, fmt.Errorf("list sessions: %w", err)
	}

	result := s.aggregator.Aggregate(records)
	for _, d := range result.Diagnostics {
		s.logger.Warn().
			Int(logging.FieldIndex, d.Index).
			Str(logging.FieldSessionID, string(d.Record.ID)).
			Str(logging.FieldDate, d.Record.Date).
			Str(logging.FieldSessionType, string(d.Record.SessionType)).
			Err(d.Err).
			Msg("session record skipped")
	}

	marking := result.Marking
	if from != "" || to != "" {
		marking = marking.Between(from, to)
	}

	s.logger.Debug().
		Int("records", len(records)).
		Int("days", len(marking)).
		Int("skipped", len(result.Diagnostics)).
		Msg("calendar aggregated")

	return CalendarView{
		Marking:     marking,
		Legend:      s.aggregator.Legend().AllTypes(),
		Diagnostics: result.Diagnostics,
		Month:       month,
	}, nil
}

func resolveRange(query CalendarQuery) (string, string, string, error) {
	if month := strings.TrimSpace(query.Month); month != "" {
		first, err := time.Parse(monthLayout, month)
		if err != nil {
			return "", "", "", fmt.Errorf("parse month %q: %w", query.Month, domain.ErrMalformedDate)
		}
		last := first.AddDate(0, 1, -1)
		return first.Format(domain.DateLayout), last.Format(domain.DateLayout), first.Format(monthLayout), nil
	}

	from, err := optionalDate(query.From)
	if err != nil {
		return "", "", "", fmt.Errorf("parse from date: %w", err)
	}
	to, err := optionalDate(query.To)
	if err != nil {
		return "", "", "", fmt.Errorf("parse to date: %w", err)
	}
	if from != "" && to != "" && from > to {
		return "", "", "", fmt.Errorf("from date %s is after to date %s", from, to)
	}

	return from, to, "", nil
}

func optionalDate(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	_, key, err := domain.ParseDate(raw)
	return key, err
}

func (s *CalendarService) AddSession(ctx context.Context, cmd AddSessionCommand) (domain.SessionRecord, error) {
	_, date, err := domain.ParseDate(cmd.Date)
	if err != nil {
		return domain.SessionRecord{}, err
	}
	if !s.aggregator.Legend().Contains(cmd.SessionType) {
		return domain.SessionRecord{}, &domain.UnknownSessionTypeError{SessionType: cmd.SessionType}
	}

	record := domain.SessionRecord{
		ID:          domain.SessionID(s.ids.NewID()),
		Date:        date,
		SessionType: cmd.SessionType,
		Description: strings.TrimSpace(cmd.Description),
	}

	if err := s.sessions.Save(ctx, record); err != nil {
		return domain.SessionRecord{}, fmt.Errorf("save session: %w", err)
	}

	return record, nil
}

func (s *CalendarService) ListSessions(ctx context.Context) ([]domain.SessionRecord, error) {
	records, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return records, nil
}

func (s *CalendarService) RemoveSession(ctx context.Context, id domain.SessionID) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
