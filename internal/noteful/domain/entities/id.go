package entities

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// IDLength - длина идентификатора в символах.
const IDLength = 24

const idAlphabet = "0123456789abcdef"

// NewID генерирует идентификатор из 24 шестнадцатеричных символов.
func NewID() (string, error) {
	id, err := gonanoid.Generate(idAlphabet, IDLength)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id, nil
}

// IsValidID проверяет, что строка имеет формат идентификатора.
// Регистр шестнадцатеричных цифр не важен.
func IsValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// NormalizeID приводит идентификатор к каноническому виду (нижний регистр).
func NormalizeID(id string) string {
	return strings.ToLower(id)
}
