package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"noteful/internal/noteful/domain/entities"
	"noteful/internal/noteful/domain/query"
	"noteful/internal/noteful/ports/repositories"
	"noteful/pkg/logger"
)

// Константы для сообщений об ошибках репозитория заметок.
const (
	ErrListNotes    = "failed to list notes"
	ErrScanNote     = "failed to scan note"
	ErrGetNote      = "failed to get note"
	ErrCreateNote   = "failed to create note"
	ErrUpdateNote   = "failed to update note"
	ErrDeleteNote   = "failed to delete note"
	ErrDetachFolder = "failed to detach folder from notes"
	ErrDetachTag    = "failed to detach tag from notes"
)

const noteColumns = `id, title, content, folder_id, tags, created_at, updated_at`

const (
	listNotesSQL  = `SELECT ` + noteColumns + ` FROM notes`
	orderNotesSQL = ` ORDER BY updated_at DESC, id DESC`
	getNoteSQL    = `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`
	createNoteSQL = `INSERT INTO notes (id, title, content, folder_id, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING ` + noteColumns
	// updated_at строго растет даже при совпадении часов.
	updateNoteSQL = `UPDATE notes SET title = $2, content = $3, folder_id = $4, tags = $5,
		updated_at = GREATEST($6, updated_at + interval '1 microsecond')
		WHERE id = $1 RETURNING ` + noteColumns
	deleteNoteSQL   = `DELETE FROM notes WHERE id = $1`
	detachFolderSQL = `UPDATE notes SET folder_id = NULL, updated_at = $2 WHERE folder_id = $1 RETURNING id`
	detachTagSQL    = `UPDATE notes SET tags = array_remove(tags, $1), updated_at = $2 WHERE tags @> ARRAY[$1]::text[] RETURNING id`
)

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
	now  func() time.Time
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool, now: storeNow}
}

// storeNow возвращает время с точностью, которую хранит timestamptz.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	if err := row.Scan(&note.ID, &note.Title, &note.Content, &note.FolderID, &note.Tags, &note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}
	return &note, nil
}

// List возвращает заметки, подходящие под фильтр, от недавно измененных к старым.
func (r *NoteRepository) List(ctx context.Context, filter query.NoteFilter) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.List"))

	where, args := renderNoteFilter(filter)
	log.Debug(ctx, "listing notes", zap.Int("conditions", len(args)))

	rows, err := querierFrom(ctx, r.pool).Query(ctx, listNotesSQL+where+orderNotesSQL, args...)
	if err != nil {
		log.Error(ctx, ErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, ErrScanNote, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrScanNote, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, ErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
	}

	return notes, nil
}

// GetByID получает заметку по ID.
func (r *NoteRepository) GetByID(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))

	note, err := scanNote(querierFrom(ctx, r.pool).QueryRow(ctx, getNoteSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", id))
			return nil, nil
		}
		log.Error(ctx, ErrGetNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrGetNote, err)
	}

	return note, nil
}

// Create сохраняет новую заметку. created_at и updated_at совпадают.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("noteID", note.ID))

	created, err := scanNote(querierFrom(ctx, r.pool).QueryRow(ctx, createNoteSQL,
		note.ID, note.Title, note.Content, note.FolderID, entities.NormalizeTags(note.Tags), r.now(),
	))
	if err != nil {
		log.Error(ctx, ErrCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreateNote, err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return created, nil
}

// Update заменяет изменяемые поля заметки. Отсутствие заметки - nil без ошибки.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", note.ID))

	updated, err := scanNote(querierFrom(ctx, r.pool).QueryRow(ctx, updateNoteSQL,
		note.ID, note.Title, note.Content, note.FolderID, entities.NormalizeTags(note.Tags), r.now(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", note.ID))
			return nil, nil
		}
		log.Error(ctx, ErrUpdateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrUpdateNote, err)
	}

	return updated, nil
}

// Delete удаляет заметку и сообщает, существовала ли она.
func (r *NoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))

	tag, err := querierFrom(ctx, r.pool).Exec(ctx, deleteNoteSQL, id)
	if err != nil {
		log.Error(ctx, ErrDeleteNote, zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrDeleteNote, err)
	}

	deleted := tag.RowsAffected() > 0
	log.Debug(ctx, "note delete finished", zap.String("noteID", id), zap.Bool("deleted", deleted))
	return deleted, nil
}

// DetachFolder снимает ссылку на папку со всех заметок.
func (r *NoteRepository) DetachFolder(ctx context.Context, folderID string) ([]string, error) {
	ids, err := r.detach(ctx, detachFolderSQL, folderID)
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrDetachFolder, zap.String("folderID", folderID), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrDetachFolder, err)
	}
	return ids, nil
}

// DetachTag убирает метку из наборов всех заметок.
func (r *NoteRepository) DetachTag(ctx context.Context, tagID string) ([]string, error) {
	ids, err := r.detach(ctx, detachTagSQL, tagID)
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrDetachTag, zap.String("tagID", tagID), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrDetachTag, err)
	}
	return ids, nil
}

func (r *NoteRepository) detach(ctx context.Context, sql, refID string) ([]string, error) {
	rows, err := querierFrom(ctx, r.pool).Query(ctx, sql, refID, r.now())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
