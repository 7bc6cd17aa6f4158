package user

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	FindByName(ctx context.Context, name string) (User, error)
	FindByToken(ctx context.Context, token string) (User, error)
	List(ctx context.Context) ([]User, error)
	// SetLocation обновляет местоположение без побочных эффектов.
	SetLocation(ctx context.Context, name, location string) error
	// SetPIN заменяет хэш PIN и отзывает действующий токен.
	SetPIN(ctx context.Context, name, pinHash string) error
	// IssueToken одним запросом выставляет токен, tokenIssuedAt, lastLogin,
	// lastSeen и, если location непустой, местоположение.
	IssueToken(ctx context.Context, name, token string, now int64, location string) (User, error)
	TouchLastSeen(ctx context.Context, name string, now int64) error
	// DeleteCascade удаляет пользователя вместе с его заявками в одной транзакции.
	DeleteCascade(ctx context.Context, name string) error
}
