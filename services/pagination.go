package services

// Page is one slice of a cursor-paginated listing. The cursor is a row
// offset, not a keyset: concurrent inserts or deletes between pages can skip
// or repeat rows.
type Page[T any] struct {
	Cursor  *uint `json:"cursor"`
	HasMore bool  `json:"has_more"`
	Items   []T   `json:"items"`
}

// BuildPage shapes the limit+1 rows fetched by a listing query: the sentinel
// row beyond limit only signals that another page exists and is trimmed off.
func BuildPage[T any](rows []T, limit int, id func(T) uint) Page[T] {
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	page := Page[T]{HasMore: hasMore, Items: rows}
	if len(rows) > 0 {
		last := id(rows[len(rows)-1])
		page.Cursor = &last
	}
	return page
}
