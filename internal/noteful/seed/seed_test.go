package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteful/internal/noteful/domain/entities"
	"noteful/internal/noteful/seed"
)

func TestDefault(t *testing.T) {
	data, err := seed.Default()
	require.NoError(t, err)

	assert.Len(t, data.Folders, 4)
	assert.Len(t, data.Tags, 4)
	assert.Len(t, data.Notes, 8)

	for _, note := range data.Notes {
		assert.True(t, entities.IsValidID(note.ID))
		assert.NotNil(t, note.Tags)
	}
	assert.Nil(t, data.Notes[6].FolderID)
	assert.Equal(t, []string{}, data.Notes[6].Tags)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "normalizes ids and tags",
			doc: `
folders: [{id: "AAAAAAAAAAAAAAAAAAAAAA01", name: Work}]
tags: [{id: "bbbbbbbbbbbbbbbbbbbbbb01", name: foo}]
notes:
  - id: "cccccccccccccccccccccc01"
    title: T
    folderId: "aaaaaaaaaaaaaaaaaaaaaa01"
    tags: ["BBBBBBBBBBBBBBBBBBBBBB01", "bbbbbbbbbbbbbbbbbbbbbb01"]
`,
		},
		{
			name:    "malformed id",
			doc:     `folders: [{id: "DOESNOTEXIST", name: Work}]`,
			wantErr: seed.ErrInvalidID,
		},
		{
			name: "duplicate id across kinds",
			doc: `
folders: [{id: "aaaaaaaaaaaaaaaaaaaaaa01", name: Work}]
tags: [{id: "aaaaaaaaaaaaaaaaaaaaaa01", name: foo}]
`,
			wantErr: seed.ErrDuplicateID,
		},
		{
			name:    "duplicate folder name",
			doc:     `folders: [{id: "aaaaaaaaaaaaaaaaaaaaaa01", name: Work}, {id: "aaaaaaaaaaaaaaaaaaaaaa02", name: Work}]`,
			wantErr: seed.ErrDuplicateName,
		},
		{
			name:    "missing tag name",
			doc:     `tags: [{id: "bbbbbbbbbbbbbbbbbbbbbb01"}]`,
			wantErr: seed.ErrMissingField,
		},
		{
			name:    "missing note title",
			doc:     `notes: [{id: "cccccccccccccccccccccc01", content: X}]`,
			wantErr: seed.ErrMissingField,
		},
		{
			name:    "unknown folder",
			doc:     `notes: [{id: "cccccccccccccccccccccc01", title: T, folderId: "aaaaaaaaaaaaaaaaaaaaaa09"}]`,
			wantErr: seed.ErrUnknownReference,
		},
		{
			name:    "unknown tag",
			doc:     `notes: [{id: "cccccccccccccccccccccc01", title: T, tags: ["bbbbbbbbbbbbbbbbbbbbbb09"]}]`,
			wantErr: seed.ErrUnknownReference,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := seed.Parse([]byte(tc.doc))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, data.Notes, 1)

			note := data.Notes[0]
			require.NotNil(t, note.FolderID)
			assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaa01", *note.FolderID)
			assert.Equal(t, []string{"bbbbbbbbbbbbbbbbbbbbbb01"}, note.Tags)
			assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaa01", data.Folders[0].ID)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := seed.Parse([]byte("folders: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), seed.ErrParseYAML)
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses embedded data", func(t *testing.T) {
		data, err := seed.Load("")
		require.NoError(t, err)
		assert.NotEmpty(t, data.Notes)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`tags: [{id: "bbbbbbbbbbbbbbbbbbbbbb01", name: foo}]`), 0o600))

		data, err := seed.Load(path)
		require.NoError(t, err)
		require.Len(t, data.Tags, 1)
		assert.Equal(t, "foo", data.Tags[0].Name)
		assert.Empty(t, data.Notes)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := seed.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), seed.ErrReadFile)
	})
}
