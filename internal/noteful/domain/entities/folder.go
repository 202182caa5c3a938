package entities

import "time"

// Названия сущностей в сообщениях об ошибках.
const (
	KindNote   = "note"
	KindFolder = "folder"
	KindTag    = "tag"
)

// Folder - папка заметок. Имя уникально среди папок.
type Folder struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tag - метка заметок. Имя уникально среди меток.
type Tag struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
