package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"jobtracker/internal/domain/event"
	"jobtracker/internal/infrastructure/storage"
)

type EventRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewEventRepository(pool *pgxpool.Pool, log *slog.Logger) *EventRepository {
	return &EventRepository{
		pool: pool,
		log:  log.With("component", "event_repository"),
	}
}

func (r *EventRepository) Insert(ctx context.Context, e event.Event) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO events (type, owner, item_id, item_count, ip, ts)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.Type, e.Owner, e.ItemID, e.Count, e.IP, e.Timestamp)
	if err != nil {
		r.log.Error("failed to insert event", "type", e.Type, "error", err)
		return storage.Unavailable("insert event", err)
	}
	return nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, storage.Unavailable("count events", err)
	}
	return count, nil
}

func (r *EventRepository) CutoffTimestamp(ctx context.Context, keep int64) (int64, bool, error) {
	var cutoff int64
	err := r.pool.QueryRow(ctx,
		`SELECT ts FROM events ORDER BY ts DESC OFFSET $1 LIMIT 1`, keep).Scan(&cutoff)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, storage.Unavailable("retention cutoff", err)
	}
	return cutoff, true, nil
}

func (r *EventRepository) DeleteOlderThan(ctx context.Context, cutoff int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM events WHERE ts < $1`, cutoff)
	if err != nil {
		return storage.Unavailable("delete old events", err)
	}
	return nil
}

func (r *EventRepository) ListRecent(ctx context.Context, limit int64) ([]event.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT type, owner, item_id, item_count, ip, ts
		 FROM events ORDER BY ts DESC LIMIT $1`, limit)
	if err != nil {
		r.log.Error("failed to list events", "error", err)
		return nil, storage.Unavailable("list events", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var e event.Event
		if err := rows.Scan(&e.Type, &e.Owner, &e.ItemID, &e.Count, &e.IP, &e.Timestamp); err != nil {
			return nil, storage.Unavailable("scan event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.Unavailable("list events", err)
	}
	return events, nil
}

func (r *EventRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM events`)
	if err != nil {
		return storage.Unavailable("clear events", err)
	}
	return nil
}
