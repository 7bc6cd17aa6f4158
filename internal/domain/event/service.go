package event

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

const (
	// RetentionLimit — сколько последних событий храним
	RetentionLimit = 2000

	DefaultListLimit = 1000
)

type Servicer interface {
	Record(ctx context.Context, e Event) error
	ListRecent(ctx context.Context, limit int64) ([]Event, error)
	ClearAll(ctx context.Context) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() int64
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "event_service"),
		now:  func() int64 { return time.Now().UnixMilli() },
	}
}

// Record вставляет событие и подрезает журнал до RetentionLimit.
// Кап мягкий: записи с меткой, равной порогу, не удаляются.
func (s *Service) Record(ctx context.Context, e Event) error {
	e.Timestamp = s.now()
	if err := s.repo.Insert(ctx, e); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	if count <= RetentionLimit {
		return nil
	}

	cutoff, ok, err := s.repo.CutoffTimestamp(ctx, RetentionLimit)
	if err != nil {
		return fmt.Errorf("retention cutoff: %w", err)
	}
	if !ok {
		return nil
	}
	if err := s.repo.DeleteOlderThan(ctx, cutoff); err != nil {
		return fmt.Errorf("retention trim: %w", err)
	}
	return nil
}

func (s *Service) ListRecent(ctx context.Context, limit int64) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	events, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear events: %w", err)
	}
	return nil
}
