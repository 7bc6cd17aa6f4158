package event

import "context"

type Repository interface {
	Insert(ctx context.Context, e Event) error
	Count(ctx context.Context) (int64, error)
	// CutoffTimestamp возвращает временную метку (keep+1)-й по новизне записи.
	// Второй результат false, если записей не больше keep.
	CutoffTimestamp(ctx context.Context, keep int64) (int64, bool, error)
	DeleteOlderThan(ctx context.Context, cutoff int64) error
	ListRecent(ctx context.Context, limit int64) ([]Event, error)
	DeleteAll(ctx context.Context) error
}
