package repo

import (
	"fmt"
	"strings"
)

// Join assembles a query from clause fragments, skipping empty ones.
func Join(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// JoinWhere builds a WHERE clause from the given conditions.
func JoinWhere(conds ...string) string {
	if len(conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conds, " AND ")
}

func FormatLimitOffset(limit, offset int) string {
	if limit > 0 && offset > 0 {
		return fmt.Sprintf("LIMIT %d OFFSET %d", limit, offset)
	}
	if limit > 0 {
		return fmt.Sprintf("LIMIT %d", limit)
	}
	if offset > 0 {
		return fmt.Sprintf("OFFSET %d", offset)
	}
	return ""
}

// SortParams carries the raw, caller-supplied sort request. Column keys are
// resolved against a per-repository field map before they ever reach a query
// string; an unknown key falls back to the repository's default column and an
// unknown direction falls back to ascending. Requests are never rejected over
// sort parameters.
type SortParams struct {
	Field     string
	Ascending bool
}

// ResolveSortField maps an accepted sort key to a literal column identifier.
// Only values from fieldMap can end up in SQL, which rules out injection via
// the sort parameter on the inline path.
func ResolveSortField(fieldMap map[string]string, key, fallback string) string {
	if column, ok := fieldMap[key]; ok {
		return column
	}
	return fieldMap[fallback]
}

// ParseSortOrder accepts ASC/DESC case-insensitively; anything else means
// ascending.
func ParseSortOrder(order string) bool {
	return !strings.EqualFold(strings.TrimSpace(order), "DESC")
}

// OrderBy renders the ORDER BY clause for an already-resolved column.
func OrderBy(column string, ascending bool) string {
	if column == "" {
		return ""
	}
	dir := "ASC"
	if !ascending {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, dir)
}

// SortDirection renders the direction keyword for passing to a routine.
func SortDirection(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}
