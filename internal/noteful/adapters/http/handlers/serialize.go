package handlers

import (
	"time"

	"noteful/internal/noteful/app/dto"
	"noteful/internal/noteful/domain/entities"
)

// TimestampLayout - RFC 3339 с миллисекундами.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func serializeNote(n *entities.Note) dto.NoteResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		FolderID:  n.FolderID,
		Tags:      tags,
		CreatedAt: formatTime(n.CreatedAt),
		UpdatedAt: formatTime(n.UpdatedAt),
	}
}

func serializeFolder(f *entities.Folder) dto.NamedResponse {
	return dto.NamedResponse{
		ID:        f.ID,
		Name:      f.Name,
		CreatedAt: formatTime(f.CreatedAt),
		UpdatedAt: formatTime(f.UpdatedAt),
	}
}

func serializeTag(t *entities.Tag) dto.NamedResponse {
	return dto.NamedResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
}

func serializeAll[T any, R any](items []T, serialize func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, serialize(item))
	}
	return out
}
