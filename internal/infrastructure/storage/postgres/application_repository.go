package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"jobtracker/internal/domain/application"
	"jobtracker/internal/infrastructure/storage"
)

const applicationColumns = `id, owner, company, role, link, date, status, location, notes, created_at`

type ApplicationRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewApplicationRepository(pool *pgxpool.Pool, log *slog.Logger) *ApplicationRepository {
	return &ApplicationRepository{
		pool: pool,
		log:  log.With("component", "application_repository"),
	}
}

func (r *ApplicationRepository) ListByOwner(ctx context.Context, owner string) ([]application.Application, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE owner = $1 ORDER BY id DESC`,
		owner)
	if err != nil {
		r.log.Error("failed to list applications", "owner", owner, "error", err)
		return nil, storage.Unavailable("list applications", err)
	}
	defer rows.Close()

	return r.scanApplications(rows)
}

func (r *ApplicationRepository) Insert(ctx context.Context, app application.Application) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO applications (`+applicationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		app.ID, app.Owner, app.Company, app.Role, app.Link, app.Date,
		app.Status, app.Location, app.Notes, app.CreatedAt)
	if err != nil {
		r.log.Error("failed to insert application", "id", app.ID, "owner", app.Owner, "error", err)
		return storage.Unavailable("insert application", err)
	}
	return nil
}

func (r *ApplicationRepository) InsertMany(ctx context.Context, apps []application.Application) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storage.Unavailable("begin insert applications", err)
	}
	defer tx.Rollback(ctx)

	for _, app := range apps {
		_, err := tx.Exec(ctx,
			`INSERT INTO applications (`+applicationColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			app.ID, app.Owner, app.Company, app.Role, app.Link, app.Date,
			app.Status, app.Location, app.Notes, app.CreatedAt)
		if err != nil {
			return storage.Unavailable("insert applications", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return storage.Unavailable("commit insert applications", err)
	}
	return nil
}

// Update выполняет частичное слияние одним атомарным запросом с фильтром
// (id, owner): чужую или несуществующую заявку обновить нельзя.
func (r *ApplicationRepository) Update(ctx context.Context, owner string, id int64, p application.Patch) (application.Application, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE applications SET
		     company = COALESCE($3, company),
		     role = COALESCE($4, role),
		     link = COALESCE($5, link),
		     date = COALESCE($6, date),
		     status = COALESCE($7, status),
		     location = COALESCE($8, location),
		     notes = COALESCE($9, notes),
		     created_at = COALESCE($10, created_at)
		 WHERE id = $1 AND owner = $2
		 RETURNING `+applicationColumns,
		id, owner, p.Company, p.Role, p.Link, p.Date, p.Status, p.Location, p.Notes, p.CreatedAt)

	var app application.Application
	err := row.Scan(&app.ID, &app.Owner, &app.Company, &app.Role, &app.Link,
		&app.Date, &app.Status, &app.Location, &app.Notes, &app.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		r.log.Error("failed to update application", "id", id, "owner", owner, "error", err)
		return application.Application{}, storage.Unavailable("update application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, owner string, id int64) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM applications WHERE id = $1 AND owner = $2`, id, owner)
	if err != nil {
		r.log.Error("failed to delete application", "id", id, "owner", owner, "error", err)
		return storage.Unavailable("delete application", err)
	}
	if result.RowsAffected() == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) CountByOwner(ctx context.Context, owner string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE owner = $1`, owner).Scan(&count)
	if err != nil {
		return 0, storage.Unavailable("count applications", err)
	}
	return count, nil
}

func (r *ApplicationRepository) CountGrouped(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT COALESCE(owner, ''), COUNT(*) FROM applications GROUP BY 1`)
	if err != nil {
		return nil, storage.Unavailable("count applications by owner", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var owner string
		var count int64
		if err := rows.Scan(&owner, &count); err != nil {
			return nil, storage.Unavailable("count applications by owner", err)
		}
		counts[owner] = count
	}
	if err := rows.Err(); err != nil {
		return nil, storage.Unavailable("count applications by owner", err)
	}
	return counts, nil
}

func (r *ApplicationRepository) scanApplications(rows pgx.Rows) ([]application.Application, error) {
	var apps []application.Application
	for rows.Next() {
		var app application.Application
		err := rows.Scan(&app.ID, &app.Owner, &app.Company, &app.Role, &app.Link,
			&app.Date, &app.Status, &app.Location, &app.Notes, &app.CreatedAt)
		if err != nil {
			return nil, storage.Unavailable("scan application", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, storage.Unavailable("scan applications", err)
	}
	return apps, nil
}
