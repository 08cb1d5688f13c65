package enrich

import (
	"strings"

	"marquee/internal/columns"
	"marquee/internal/tabular"
)

// Eligible reports whether a row needs a lookup for the given role. The
// role's column must be bound and currently blank, and the row must carry
// the source fields the lookup consumes: a title always, and additionally
// a director for related films. Whitespace-only cells count as blank.
func Eligible(doc *tabular.Document, binding columns.Binding, row int, role columns.Role) bool {
	if !binding.Bound(role) {
		return false
	}
	if !blank(doc.Cell(row, binding.Index(role))) {
		return false
	}
	if !binding.Bound(columns.RoleTitle) || blank(doc.Cell(row, binding.Title)) {
		return false
	}
	if role == columns.RoleRelated {
		if !binding.Bound(columns.RoleDirector) || blank(doc.Cell(row, binding.Director)) {
			return false
		}
	}
	return true
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
