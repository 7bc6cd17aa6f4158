package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"jobtracker/internal/domain/user"
	"jobtracker/internal/infrastructure/storage"
)

const userColumns = `name, location, COALESCE(pin_hash, ''), COALESCE(token, ''),
	       token_issued_at, created_at, last_login, last_seen`

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (name, location, pin_hash, created_at) VALUES ($1, $2, $3, $4)`,
		u.Name, u.Location, nullIfEmpty(u.PINHash), u.CreatedAt)
	if err != nil {
		r.log.Error("failed to create user", "name", u.Name, "error", err)
		return storage.Unavailable("create user", err)
	}
	return nil
}

func (r *UserRepository) FindByName(ctx context.Context, name string) (user.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE name = $1`, name)
	return r.scanUser(row, "find user by name")
}

func (r *UserRepository) FindByToken(ctx context.Context, token string) (user.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE token = $1`, token)
	return r.scanUser(row, "find user by token")
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		r.log.Error("failed to list users", "error", err)
		return nil, storage.Unavailable("list users", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := r.scanUser(rows, "list users")
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.Unavailable("list users", err)
	}
	return users, nil
}

func (r *UserRepository) SetLocation(ctx context.Context, name, location string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET location = $2 WHERE name = $1`, name, location)
	if err != nil {
		return storage.Unavailable("set location", err)
	}
	return nil
}

// SetPIN вместе с заменой хэша снимает выданный токен: старые сессии
// после смены PIN недействительны.
func (r *UserRepository) SetPIN(ctx context.Context, name, pinHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET pin_hash = $2, token = NULL, token_issued_at = NULL WHERE name = $1`,
		name, pinHash)
	if err != nil {
		return storage.Unavailable("set pin", err)
	}
	return nil
}

func (r *UserRepository) IssueToken(ctx context.Context, name, token string, now int64, location string) (user.User, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE users
		 SET token = $2, token_issued_at = $3, last_login = $3, last_seen = $3,
		     location = CASE WHEN $4 = '' THEN location ELSE $4 END
		 WHERE name = $1
		 RETURNING `+userColumns,
		name, token, now, location)
	return r.scanUser(row, "issue token")
}

func (r *UserRepository) TouchLastSeen(ctx context.Context, name string, now int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET last_seen = $2 WHERE name = $1`, name, now)
	if err != nil {
		return storage.Unavailable("touch last seen", err)
	}
	return nil
}

func (r *UserRepository) DeleteCascade(ctx context.Context, name string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storage.Unavailable("begin delete user", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE owner = $1`, name); err != nil {
		return storage.Unavailable("delete user applications", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM users WHERE name = $1`, name)
	if err != nil {
		return storage.Unavailable("delete user", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return storage.Unavailable("commit delete user", err)
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row, op string) (user.User, error) {
	var u user.User
	err := row.Scan(&u.Name, &u.Location, &u.PINHash, &u.Token,
		&u.TokenIssuedAt, &u.CreatedAt, &u.LastLogin, &u.LastSeen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		r.log.Error("failed to scan user", "op", op, "error", err)
		return user.User{}, storage.Unavailable(op, err)
	}
	return u, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
