package app_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"noteful/internal/noteful/app"
	"noteful/internal/noteful/domain/entities"
	"noteful/internal/noteful/domain/query"
)

var (
	ErrDatabaseOperation = errors.New("database error")
	ErrCacheUnavailable  = errors.New("cache unavailable")
)

const (
	noteID   = "000000000000000000001000"
	noteID2  = "000000000000000000001001"
	folderID = "000000000000000000000100"
	tagID    = "000000000000000000000200"
	tagID2   = "000000000000000000000201"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) List(ctx context.Context, filter query.NoteFilter) ([]*entities.Note, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, id string) (*entities.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockNoteRepository) DetachFolder(ctx context.Context, folderID string) ([]string, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockNoteRepository) DetachTag(ctx context.Context, tagID string) ([]string, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockFolderRepository struct {
	mock.Mock
}

func (m *mockFolderRepository) List(ctx context.Context) ([]*entities.Folder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Folder), args.Error(1)
}

func (m *mockFolderRepository) GetByID(ctx context.Context, id string) (*entities.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Folder), args.Error(1)
}

func (m *mockFolderRepository) Create(ctx context.Context, folder *entities.Folder) (*entities.Folder, error) {
	args := m.Called(ctx, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Folder), args.Error(1)
}

func (m *mockFolderRepository) Update(ctx context.Context, folder *entities.Folder) (*entities.Folder, error) {
	args := m.Called(ctx, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Folder), args.Error(1)
}

func (m *mockFolderRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockTagRepository struct {
	mock.Mock
}

func (m *mockTagRepository) List(ctx context.Context) ([]*entities.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Tag), args.Error(1)
}

func (m *mockTagRepository) GetByID(ctx context.Context, id string) (*entities.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Tag), args.Error(1)
}

func (m *mockTagRepository) Create(ctx context.Context, tag *entities.Tag) (*entities.Tag, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Tag), args.Error(1)
}

func (m *mockTagRepository) Update(ctx context.Context, tag *entities.Tag) (*entities.Tag, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Tag), args.Error(1)
}

func (m *mockTagRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// fakeTransactor выполняет fn сразу и считает транзакции.
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// memCache - кэш в памяти для проверки инвалидации.
type memCache struct {
	mu     sync.Mutex
	values map[string]string
	err    error
}

func newMemCache() *memCache {
	return &memCache{values: make(map[string]string)}
}

func (c *memCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", false, c.err
	}
	v, ok := c.values[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.values[key] = value
	return nil
}

func (c *memCache) SetNX(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false, c.err
	}
	if _, ok := c.values[key]; ok {
		return false, nil
	}
	c.values[key] = value
	return true, nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func (c *memCache) Close() error { return nil }

// has сообщает, лежит ли под ключом живое значение, а не метка инвалидации.
func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	return ok && v != app.CacheTombstone
}

func (c *memCache) invalidated(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[key] == app.CacheTombstone
}
