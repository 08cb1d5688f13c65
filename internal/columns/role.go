package columns

// Role names the semantic purpose of a column.
type Role string

const (
	RoleTitle    Role = "title"
	RoleDirector Role = "director"
	RoleYear     Role = "year"
	RoleTrailer  Role = "trailer"
	RoleRelated  Role = "related"
)

// Unbound marks a role with no column.
const Unbound = -1

// roleOrder fixes the evaluation sequence. Earlier roles claim shared
// keywords first, so "Film" binds to title even though related keywords
// include "films".
var roleOrder = []Role{RoleTitle, RoleDirector, RoleYear, RoleTrailer, RoleRelated}

// requiredRoles must all resolve to a column or classification fails.
var requiredRoles = []Role{RoleTitle, RoleDirector, RoleYear}

var roleKeywords = map[Role][]string{
	RoleTitle:    {"title", "movie", "film", "name"},
	RoleDirector: {"director", "directed", "filmmaker"},
	RoleYear:     {"year", "date", "released"},
	RoleTrailer:  {"trailer", "link", "url", "video"},
	RoleRelated:  {"related", "films", "movies", "other", "similar"},
}

// Label returns the role's display name for diagnostics and tables.
func (r Role) Label() string {
	switch r {
	case RoleTitle:
		return "Title"
	case RoleDirector:
		return "Director"
	case RoleYear:
		return "Year"
	case RoleTrailer:
		return "Trailer"
	case RoleRelated:
		return "Related films"
	default:
		return string(r)
	}
}

// CanonicalColumnName returns the header used when a column is created for
// the role.
func CanonicalColumnName(role Role) string {
	return role.Label()
}

// Binding maps each semantic role to a column index, or Unbound.
type Binding struct {
	Title    int
	Director int
	Year     int
	Trailer  int
	Related  int
}

func unboundBinding() Binding {
	return Binding{
		Title:    Unbound,
		Director: Unbound,
		Year:     Unbound,
		Trailer:  Unbound,
		Related:  Unbound,
	}
}

// Index returns the column index bound to the role, or Unbound.
func (b Binding) Index(role Role) int {
	switch role {
	case RoleTitle:
		return b.Title
	case RoleDirector:
		return b.Director
	case RoleYear:
		return b.Year
	case RoleTrailer:
		return b.Trailer
	case RoleRelated:
		return b.Related
	default:
		return Unbound
	}
}

// Bound reports whether the role resolved to a column.
func (b Binding) Bound(role Role) bool {
	return b.Index(role) != Unbound
}

func (b Binding) with(role Role, index int) Binding {
	switch role {
	case RoleTitle:
		b.Title = index
	case RoleDirector:
		b.Director = index
	case RoleYear:
		b.Year = index
	case RoleTrailer:
		b.Trailer = index
	case RoleRelated:
		b.Related = index
	}
	return b
}
