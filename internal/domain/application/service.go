package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"jobtracker/internal/domain/event"
)

type Servicer interface {
	List(ctx context.Context, owner string) ([]Application, error)
	Create(ctx context.Context, owner string, fields Fields, ip string) (Application, error)
	Update(ctx context.Context, owner string, id int64, p Patch, ip string) (Application, error)
	Delete(ctx context.Context, owner string, id int64, ip string) error
	Seed(ctx context.Context, owner, ip string) ([]Application, error)
}

type Service struct {
	repo   Repository
	seq    Sequence
	events event.Servicer
	log    *slog.Logger
	now    func() int64
}

func NewService(repo Repository, seq Sequence, events event.Servicer, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		seq:    seq,
		events: events,
		log:    log.With("component", "application_service"),
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *Service) List(ctx context.Context, owner string) ([]Application, error) {
	apps, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (s *Service) Create(ctx context.Context, owner string, fields Fields, ip string) (Application, error) {
	id, err := s.seq.NextID(ctx)
	if err != nil {
		return Application{}, fmt.Errorf("next id: %w", err)
	}

	app := Application{
		ID:        id,
		Owner:     owner,
		Company:   strings.TrimSpace(fields.Company),
		Role:      strings.TrimSpace(fields.Role),
		Link:      strings.TrimSpace(fields.Link),
		Date:      strings.TrimSpace(fields.Date),
		Status:    DefaultStatus,
		Location:  strings.TrimSpace(fields.Location),
		Notes:     strings.TrimSpace(fields.Notes),
		CreatedAt: fields.CreatedAt,
	}
	// Явно присланный статус не трогаем, даже пустой
	if fields.Status != nil {
		app.Status = *fields.Status
	}
	if app.CreatedAt == 0 {
		app.CreatedAt = s.now()
	}

	if err := s.repo.Insert(ctx, app); err != nil {
		return Application{}, fmt.Errorf("insert application: %w", err)
	}

	if err := s.events.Record(ctx, event.Event{Type: event.TypeCreate, Owner: owner, ItemID: &id, IP: ip}); err != nil {
		return Application{}, err
	}
	return app, nil
}

func (s *Service) Update(ctx context.Context, owner string, id int64, p Patch, ip string) (Application, error) {
	app, err := s.repo.Update(ctx, owner, id, p)
	if err != nil {
		return Application{}, err
	}

	if err := s.events.Record(ctx, event.Event{Type: event.TypeUpdate, Owner: owner, ItemID: &id, IP: ip}); err != nil {
		return Application{}, err
	}
	return app, nil
}

func (s *Service) Delete(ctx context.Context, owner string, id int64, ip string) error {
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		return err
	}
	return s.events.Record(ctx, event.Event{Type: event.TypeDelete, Owner: owner, ItemID: &id, IP: ip})
}

// Seed вставляет три демонстрационные заявки, но только если у владельца
// еще нет данных. Синтетические createdAt разнесены на час.
func (s *Service) Seed(ctx context.Context, owner, ip string) ([]Application, error) {
	existing, err := s.repo.CountByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	if existing > 0 {
		return nil, ErrSeedDenied
	}

	now := s.now()
	seeded := make([]Application, 0, len(sampleApplications))
	for i, sample := range sampleApplications {
		id, err := s.seq.NextID(ctx)
		if err != nil {
			return nil, fmt.Errorf("next id: %w", err)
		}
		app := sample
		app.ID = id
		app.Owner = owner
		app.CreatedAt = now - int64(i)*3600*1000
		seeded = append(seeded, app)
	}

	if err := s.repo.InsertMany(ctx, seeded); err != nil {
		return nil, fmt.Errorf("insert seed: %w", err)
	}

	count := int64(len(seeded))
	if err := s.events.Record(ctx, event.Event{Type: event.TypeSeed, Owner: owner, Count: &count, IP: ip}); err != nil {
		return nil, err
	}
	return seeded, nil
}
