package columns

import (
	"fmt"

	"marquee/internal/tabular"
)

// Provisioned records a column created during provisioning.
type Provisioned struct {
	Role  Role
	Name  string
	Index int
}

// Missing lists the requested roles the binding leaves without a column,
// preserving the order they were requested in.
func Missing(binding Binding, roles []Role) []Role {
	var missing []Role
	for _, role := range roles {
		if !binding.Bound(role) {
			missing = append(missing, role)
		}
	}
	return missing
}

// Provision appends a column for each requested role that classification
// left unbound, always in the order trailer then related, and returns the
// updated binding alongside the columns it created. Roles already bound are
// left alone, so re-invoking it changes nothing.
func Provision(doc *tabular.Document, binding Binding, roles []Role) (Binding, []Provisioned, error) {
	requested := make(map[Role]bool, len(roles))
	for _, role := range roles {
		requested[role] = true
	}

	var created []Provisioned
	for _, role := range []Role{RoleTrailer, RoleRelated} {
		if !requested[role] || binding.Bound(role) {
			continue
		}
		name := CanonicalColumnName(role)
		index, err := doc.AppendColumn(name)
		if err != nil {
			return binding, created, fmt.Errorf("provision %s column: %w", role, err)
		}
		binding = binding.with(role, index)
		created = append(created, Provisioned{Role: role, Name: name, Index: index})
	}
	return binding, created, nil
}
