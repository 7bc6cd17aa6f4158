package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"jobtracker/internal/infrastructure/storage"
)

const applicationsCounter = "applications"

type SequenceRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSequenceRepository(pool *pgxpool.Pool, log *slog.Logger) *SequenceRepository {
	return &SequenceRepository{
		pool: pool,
		log:  log.With("component", "sequence_repository"),
	}
}

// NextID — атомарный upsert-инкремент счетчика. Два конкурентных вызова
// (в том числе из разных процессов) никогда не вернут одно значение.
func (r *SequenceRepository) NextID(ctx context.Context) (int64, error) {
	var seq int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO counters (name, seq) VALUES ($1, 1)
		 ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		 RETURNING seq`,
		applicationsCounter).Scan(&seq)
	if err != nil {
		r.log.Error("failed to advance sequence", "error", err)
		return 0, storage.Unavailable("next application id", err)
	}
	return seq, nil
}
