package application

import "context"

type Repository interface {
	ListByOwner(ctx context.Context, owner string) ([]Application, error)
	Insert(ctx context.Context, app Application) error
	InsertMany(ctx context.Context, apps []Application) error
	// Update применяет частичное обновление одним запросом с фильтром (id, owner).
	Update(ctx context.Context, owner string, id int64, p Patch) (Application, error)
	// Delete удаляет только при совпадении (id, owner).
	Delete(ctx context.Context, owner string, id int64) error
	CountByOwner(ctx context.Context, owner string) (int64, error)
	CountGrouped(ctx context.Context) (map[string]int64, error)
}

// Sequence выдает глобально уникальные возрастающие идентификаторы заявок.
// Инкремент атомарен на стороне хранилища, поэтому корректен и для
// нескольких процессов над одной базой.
type Sequence interface {
	NextID(ctx context.Context) (int64, error)
}
