package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"noteful/internal/noteful/domain/apperr"
)

// namedRecord - строка таблицы folders или tags.
type namedRecord struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// namedStore содержит общую логику для таблиц с уникальным именем.
type namedStore struct {
	pool PgxPoolInterface
	kind string
	now  func() time.Time

	listSQL   string
	getSQL    string
	createSQL string
	updateSQL string
	deleteSQL string
}

func newNamedStore(pool PgxPoolInterface, table, kind string) *namedStore {
	const columns = `id, name, created_at, updated_at`
	return &namedStore{
		pool:      pool,
		kind:      kind,
		now:       storeNow,
		listSQL:   `SELECT ` + columns + ` FROM ` + table + ` ORDER BY name ASC, id ASC`,
		getSQL:    `SELECT ` + columns + ` FROM ` + table + ` WHERE id = $1`,
		createSQL: `INSERT INTO ` + table + ` (id, name, created_at, updated_at) VALUES ($1, $2, $3, $3) RETURNING ` + columns,
		updateSQL: `UPDATE ` + table + ` SET name = $2, updated_at = GREATEST($3, updated_at + interval '1 microsecond') WHERE id = $1 RETURNING ` + columns,
		deleteSQL: `DELETE FROM ` + table + ` WHERE id = $1`,
	}
}

func scanNamed(row pgx.Row) (*namedRecord, error) {
	var rec namedRecord
	if err := row.Scan(&rec.ID, &rec.Name, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *namedStore) list(ctx context.Context) ([]*namedRecord, error) {
	rows, err := querierFrom(ctx, s.pool).Query(ctx, s.listSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", s.kind, err)
	}
	defer rows.Close()

	records := make([]*namedRecord, 0)
	for rows.Next() {
		rec, err := scanNamed(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", s.kind, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", s.kind, err)
	}
	return records, nil
}

func (s *namedStore) getByID(ctx context.Context, id string) (*namedRecord, error) {
	rec, err := scanNamed(querierFrom(ctx, s.pool).QueryRow(ctx, s.getSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", s.kind, err)
	}
	return rec, nil
}

func (s *namedStore) create(ctx context.Context, id, name string) (*namedRecord, error) {
	rec, err := scanNamed(querierFrom(ctx, s.pool).QueryRow(ctx, s.createSQL, id, name, s.now()))
	if err != nil {
		return nil, s.writeError("create", name, err)
	}
	return rec, nil
}

func (s *namedStore) update(ctx context.Context, id, name string) (*namedRecord, error) {
	rec, err := scanNamed(querierFrom(ctx, s.pool).QueryRow(ctx, s.updateSQL, id, name, s.now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, s.writeError("update", name, err)
	}
	return rec, nil
}

func (s *namedStore) delete(ctx context.Context, id string) (bool, error) {
	tag, err := querierFrom(ctx, s.pool).Exec(ctx, s.deleteSQL, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s: %w", s.kind, err)
	}
	return tag.RowsAffected() > 0, nil
}

// writeError переводит нарушение уникальности имени в apperr.
func (s *namedStore) writeError(op, name string, err error) error {
	if isUniqueViolation(err) {
		return apperr.UniquenessConflict(s.kind, name, err)
	}
	return fmt.Errorf("failed to %s %s: %w", op, s.kind, err)
}
