// Package seed читает начальные данные Noteful из YAML.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"noteful/internal/noteful/adapters/postgres"
	"noteful/internal/noteful/domain/entities"
)

// Константы для сообщений об ошибках.
const (
	ErrReadFile  = "failed to read seed file"
	ErrParseYAML = "failed to parse seed document"
)

// Ошибки проверки документа.
var (
	ErrInvalidID        = errors.New("invalid id")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrMissingField     = errors.New("missing required field")
	ErrUnknownReference = errors.New("unknown reference")
)

//go:embed default.yaml
var defaultDocument []byte

type namedEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type noteEntry struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	FolderID string   `yaml:"folderId"`
	Tags     []string `yaml:"tags"`
}

type document struct {
	Folders []namedEntry `yaml:"folders"`
	Tags    []namedEntry `yaml:"tags"`
	Notes   []noteEntry  `yaml:"notes"`
}

// Default возвращает встроенный набор данных.
func Default() (postgres.Dataset, error) {
	return Parse(defaultDocument)
}

// Load читает набор из файла path; пустой path означает встроенный набор.
func Load(path string) (postgres.Dataset, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return postgres.Dataset{}, fmt.Errorf("%s: %w", ErrReadFile, err)
	}
	return Parse(data)
}

// Parse разбирает YAML документ и проверяет идентификаторы, уникальность
// имен и ссылки заметок на папки и метки.
func Parse(data []byte) (postgres.Dataset, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return postgres.Dataset{}, fmt.Errorf("%s: %w", ErrParseYAML, err)
	}

	ids := make(map[string]struct{})

	folders, folderIDs, err := parseNamed(entities.KindFolder, doc.Folders, ids)
	if err != nil {
		return postgres.Dataset{}, err
	}
	tags, tagIDs, err := parseNamed(entities.KindTag, doc.Tags, ids)
	if err != nil {
		return postgres.Dataset{}, err
	}

	notes := make([]*entities.Note, 0, len(doc.Notes))
	for _, entry := range doc.Notes {
		id, err := checkID(entities.KindNote, entry.ID, ids)
		if err != nil {
			return postgres.Dataset{}, err
		}
		if entry.Title == "" {
			return postgres.Dataset{}, fmt.Errorf("%w: note %s title", ErrMissingField, id)
		}

		note := &entities.Note{ID: id, Title: entry.Title, Content: entry.Content}

		if entry.FolderID != "" {
			folderID := strings.ToLower(entry.FolderID)
			if _, ok := folderIDs[folderID]; !ok {
				return postgres.Dataset{}, fmt.Errorf("%w: note %s folder %s", ErrUnknownReference, id, entry.FolderID)
			}
			note.FolderID = &folderID
		}

		for _, tag := range entry.Tags {
			tagID := strings.ToLower(tag)
			if _, ok := tagIDs[tagID]; !ok {
				return postgres.Dataset{}, fmt.Errorf("%w: note %s tag %s", ErrUnknownReference, id, tag)
			}
			note.Tags = append(note.Tags, tagID)
		}
		note.Tags = entities.NormalizeTags(note.Tags)

		notes = append(notes, note)
	}

	return postgres.Dataset{
		Folders: toFolders(folders),
		Tags:    toTags(tags),
		Notes:   notes,
	}, nil
}

func checkID(kind, raw string, seen map[string]struct{}) (string, error) {
	if !entities.IsValidID(raw) {
		return "", fmt.Errorf("%w: %s %q", ErrInvalidID, kind, raw)
	}
	id := strings.ToLower(raw)
	if _, dup := seen[id]; dup {
		return "", fmt.Errorf("%w: %s %s", ErrDuplicateID, kind, id)
	}
	seen[id] = struct{}{}
	return id, nil
}

func parseNamed(kind string, entries []namedEntry, ids map[string]struct{}) ([]namedEntry, map[string]struct{}, error) {
	names := make(map[string]struct{}, len(entries))
	known := make(map[string]struct{}, len(entries))
	out := make([]namedEntry, 0, len(entries))

	for _, entry := range entries {
		id, err := checkID(kind, entry.ID, ids)
		if err != nil {
			return nil, nil, err
		}
		if entry.Name == "" {
			return nil, nil, fmt.Errorf("%w: %s %s name", ErrMissingField, kind, id)
		}
		if _, dup := names[entry.Name]; dup {
			return nil, nil, fmt.Errorf("%w: %s %q", ErrDuplicateName, kind, entry.Name)
		}
		names[entry.Name] = struct{}{}
		known[id] = struct{}{}
		out = append(out, namedEntry{ID: id, Name: entry.Name})
	}

	return out, known, nil
}

func toFolders(entries []namedEntry) []*entities.Folder {
	folders := make([]*entities.Folder, 0, len(entries))
	for _, e := range entries {
		folders = append(folders, &entities.Folder{ID: e.ID, Name: e.Name})
	}
	return folders
}

func toTags(entries []namedEntry) []*entities.Tag {
	tags := make([]*entities.Tag, 0, len(entries))
	for _, e := range entries {
		tags = append(tags, &entities.Tag{ID: e.ID, Name: e.Name})
	}
	return tags
}
