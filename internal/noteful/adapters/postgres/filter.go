package postgres

import (
	"fmt"
	"strings"

	"noteful/internal/noteful/domain/query"
)

// renderNoteFilter переводит фильтр в WHERE с позиционными параметрами.
// Условия соединяются через AND, пустой фильтр дает пустую строку.
// Метка проверяется через @>, чтобы запрос мог использовать GIN-индекс по tags.
func renderNoteFilter(filter query.NoteFilter) (string, []any) {
	conditions := filter.Conditions()
	if len(conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(conditions))
	args := make([]any, 0, len(conditions))
	for _, c := range conditions {
		args = append(args, c.Value)
		n := len(args)
		switch c.Kind {
		case query.SearchTerm:
			clauses = append(clauses, fmt.Sprintf("(strpos(title, $%d) > 0 OR strpos(content, $%d) > 0)", n, n))
		case query.InFolder:
			clauses = append(clauses, fmt.Sprintf("folder_id = $%d", n))
		case query.HasTag:
			clauses = append(clauses, fmt.Sprintf("tags @> ARRAY[$%d]::text[]", n))
		}
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}
