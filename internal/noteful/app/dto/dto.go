// Package dto описывает входные данные операций сервиса.
package dto

// NoteRequest - тело запросов создания и изменения заметки.
// Порядок полей задает порядок сообщений об ошибках валидации.
type NoteRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content"`
	FolderID string   `json:"folderId" validate:"omitempty,objectid"`
	Tags     []string `json:"tags" validate:"omitempty,dive,objectid"`
}

// NameRequest - тело запросов создания и изменения папки или метки.
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// NoteQuery - параметры выборки заметок. Пустые значения не фильтруют.
type NoteQuery struct {
	SearchTerm string
	FolderID   string
	TagID      string
}

// NoteResponse - представление заметки в ответах API.
type NoteResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	FolderID  *string  `json:"folderId"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// NamedResponse - представление папки или метки в ответах API.
type NamedResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
