package postgres

import (
	"noteful/internal/noteful/ports/repositories"
)

// RepositoryFactory создает репозитории для работы с базой данных.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// NoteRepository возвращает репозиторий для работы с заметками.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return NewNoteRepository(f.pool)
}

// FolderRepository возвращает репозиторий для работы с папками.
func (f *RepositoryFactory) FolderRepository() repositories.FolderRepository {
	return NewFolderRepository(f.pool)
}

// TagRepository возвращает репозиторий для работы с метками.
func (f *RepositoryFactory) TagRepository() repositories.TagRepository {
	return NewTagRepository(f.pool)
}

// Transactor возвращает исполнителя транзакций над тем же пулом.
func (f *RepositoryFactory) Transactor() repositories.Transactor {
	return NewTransactor(f.pool)
}

// Seeder возвращает загрузчик начальных данных.
func (f *RepositoryFactory) Seeder() *Seeder {
	return NewSeeder(f.pool)
}
