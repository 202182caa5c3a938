package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"noteful/internal/noteful/app/dto"
	"noteful/internal/noteful/domain/entities"
)

type mockNoteService struct {
	mock.Mock
}

func (m *mockNoteService) ListNotes(ctx context.Context, q dto.NoteQuery) ([]*entities.Note, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteService) GetNote(ctx context.Context, id string) (*entities.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteService) CreateNote(ctx context.Context, req dto.NoteRequest) (*entities.Note, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, id string, req dto.NoteRequest) (*entities.Note, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockFolderService struct {
	mock.Mock
}

func (m *mockFolderService) ListFolders(ctx context.Context) ([]*entities.Folder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Folder), args.Error(1)
}

func (m *mockFolderService) GetFolder(ctx context.Context, id string) (*entities.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Folder), args.Error(1)
}

func (m *mockFolderService) CreateFolder(ctx context.Context, req dto.NameRequest) (*entities.Folder, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Folder), args.Error(1)
}

func (m *mockFolderService) UpdateFolder(ctx context.Context, id string, req dto.NameRequest) (*entities.Folder, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Folder), args.Error(1)
}

func (m *mockFolderService) DeleteFolder(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockTagService struct {
	mock.Mock
}

func (m *mockTagService) ListTags(ctx context.Context) ([]*entities.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Tag), args.Error(1)
}

func (m *mockTagService) GetTag(ctx context.Context, id string) (*entities.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Tag), args.Error(1)
}

func (m *mockTagService) CreateTag(ctx context.Context, req dto.NameRequest) (*entities.Tag, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Tag), args.Error(1)
}

func (m *mockTagService) UpdateTag(ctx context.Context, id string, req dto.NameRequest) (*entities.Tag, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Tag), args.Error(1)
}

func (m *mockTagService) DeleteTag(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockHealthChecker struct {
	mock.Mock
}

func (m *mockHealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
