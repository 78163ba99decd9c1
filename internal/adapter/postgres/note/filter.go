package note

import (
	"github.com/heartmarshall/notejam/internal/domain"
)

// orderByClauses maps every accepted sort key to fixed SQL. User input never
// reaches the ORDER BY directly. id is a tiebreaker for stable pages.
var orderByClauses = map[domain.NoteOrder][]string{
	domain.NoteOrderNameAsc:       {"name ASC", "id ASC"},
	domain.NoteOrderNameDesc:      {"name DESC", "id DESC"},
	domain.NoteOrderUpdatedAtAsc:  {"updated_at ASC", "id ASC"},
	domain.NoteOrderUpdatedAtDesc: {"updated_at DESC", "id DESC"},
}

func orderBy(o domain.NoteOrder) []string {
	if clauses, ok := orderByClauses[o]; ok {
		return clauses
	}
	return orderByClauses[domain.NoteOrderUpdatedAtDesc]
}
