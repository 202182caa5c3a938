// Package entities defines the domain entities of the Noteful service.
package entities

import (
	"slices"
	"time"
)

// Note - заметка. FolderID == nil означает, что заметка вне папок.
type Note struct {
	ID        string
	Title     string
	Content   string
	FolderID  *string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote creates a note with a fresh identifier. Timestamps are assigned by the store.
func NewNote(title, content string, folderID *string, tags []string) (*Note, error) {
	id, err := NewID()
	if err != nil {
		return nil, err
	}
	return &Note{
		ID:       id,
		Title:    title,
		Content:  content,
		FolderID: folderID,
		Tags:     NormalizeTags(tags),
	}, nil
}

// NormalizeTags returns the tag set as a sorted slice without duplicates. Never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	out = append(out, tags...)
	slices.Sort(out)
	return slices.Compact(out)
}

// HasTag reports whether the note references tagID.
func (n *Note) HasTag(tagID string) bool {
	return slices.Contains(n.Tags, tagID)
}
