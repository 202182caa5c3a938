// Package query собирает фильтр списка заметок из необязательных параметров запроса.
package query

// ConditionKind - вид условия фильтра.
type ConditionKind int

// Виды условий.
const (
	// SearchTerm - подстрока в заголовке ИЛИ в тексте заметки (с учетом регистра).
	SearchTerm ConditionKind = iota + 1
	// InFolder - ссылка на папку равна значению.
	InFolder
	// HasTag - набор меток содержит значение.
	HasTag
)

func (k ConditionKind) String() string {
	switch k {
	case SearchTerm:
		return "searchTerm"
	case InFolder:
		return "folderId"
	case HasTag:
		return "tagId"
	default:
		return "unknown"
	}
}

// Condition - одно условие фильтра.
type Condition struct {
	Kind  ConditionKind
	Value string
}

// NoteFilter - конъюнкция условий. Нулевое значение пропускает все заметки.
type NoteFilter struct {
	conditions []Condition
}

// NewNoteFilter строит фильтр. Пустая строка означает отсутствие условия.
// Идентификаторы должны быть проверены и нормализованы вызывающим.
func NewNoteFilter(searchTerm, folderID, tagID string) NoteFilter {
	var f NoteFilter
	f.add(SearchTerm, searchTerm)
	f.add(InFolder, folderID)
	f.add(HasTag, tagID)
	return f
}

func (f *NoteFilter) add(kind ConditionKind, value string) {
	if value == "" {
		return
	}
	f.conditions = append(f.conditions, Condition{Kind: kind, Value: value})
}

// Conditions возвращает условия в фиксированном порядке: поиск, папка, метка.
func (f NoteFilter) Conditions() []Condition {
	out := make([]Condition, len(f.conditions))
	copy(out, f.conditions)
	return out
}

// IsEmpty сообщает, что фильтр не накладывает ограничений.
func (f NoteFilter) IsEmpty() bool {
	return len(f.conditions) == 0
}
