package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"noteful/internal/noteful/domain/entities"
	"noteful/pkg/logger"
)

// Константы для сообщений об ошибках загрузки начальных данных.
const (
	ErrTruncate   = "failed to truncate tables"
	ErrSeedFolder = "failed to seed folder"
	ErrSeedTag    = "failed to seed tag"
	ErrSeedNote   = "failed to seed note"
)

const (
	truncateSQL   = `TRUNCATE notes, folders, tags`
	seedFolderSQL = `INSERT INTO folders (id, name, created_at, updated_at) VALUES ($1, $2, $3, $3)`
	seedTagSQL    = `INSERT INTO tags (id, name, created_at, updated_at) VALUES ($1, $2, $3, $3)`
	seedNoteSQL   = `INSERT INTO notes (id, title, content, folder_id, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`
)

// Dataset - набор сущностей для начальной загрузки.
type Dataset struct {
	Folders []*entities.Folder
	Tags    []*entities.Tag
	Notes   []*entities.Note
}

// Seeder загружает начальные данные в одной транзакции.
type Seeder struct {
	pool PgxPoolInterface
	tx   *Transactor
	now  func() time.Time
}

// NewSeeder создает Seeder.
func NewSeeder(pool PgxPoolInterface) *Seeder {
	return &Seeder{pool: pool, tx: NewTransactor(pool), now: storeNow}
}

// Seed вставляет данные. При truncate таблицы предварительно очищаются.
// Заметки получают возрастающие отметки времени в порядке набора.
func (s *Seeder) Seed(ctx context.Context, data Dataset, truncate bool) error {
	log := logger.Log(ctx).With(zap.String("method", "Seeder.Seed"))

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		q := querierFrom(ctx, s.pool)
		base := s.now()

		if truncate {
			if _, err := q.Exec(ctx, truncateSQL); err != nil {
				return fmt.Errorf("%s: %w", ErrTruncate, err)
			}
		}

		for _, f := range data.Folders {
			if _, err := q.Exec(ctx, seedFolderSQL, f.ID, f.Name, base); err != nil {
				return fmt.Errorf("%s %s: %w", ErrSeedFolder, f.ID, err)
			}
		}

		for _, t := range data.Tags {
			if _, err := q.Exec(ctx, seedTagSQL, t.ID, t.Name, base); err != nil {
				return fmt.Errorf("%s %s: %w", ErrSeedTag, t.ID, err)
			}
		}

		for i, n := range data.Notes {
			at := base.Add(time.Duration(i) * time.Microsecond)
			if _, err := q.Exec(ctx, seedNoteSQL,
				n.ID, n.Title, n.Content, n.FolderID, entities.NormalizeTags(n.Tags), at,
			); err != nil {
				return fmt.Errorf("%s %s: %w", ErrSeedNote, n.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error(ctx, "seeding failed", zap.Error(err))
		return err
	}

	log.Info(ctx, "seed data loaded",
		zap.Int("folders", len(data.Folders)),
		zap.Int("tags", len(data.Tags)),
		zap.Int("notes", len(data.Notes)),
		zap.Bool("truncated", truncate))
	return nil
}
