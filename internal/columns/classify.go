package columns

import (
	"fmt"
	"strings"
	"unicode"
)

// MissingColumnsError reports required roles no header matched.
type MissingColumnsError struct {
	Missing []Role
	Headers []string
}

func (e *MissingColumnsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, role := range e.Missing {
		names[i] = string(role)
	}
	return fmt.Sprintf("could not find required columns: %s (available columns: %s)",
		strings.Join(names, ", "), strings.Join(e.Headers, ", "))
}

// Classify resolves headers to semantic roles. For each role in evaluation
// order it binds the first unclaimed header matching one of the role's
// keywords; a header claimed by an earlier role is skipped for later ones.
// Missing title, director, or year columns fail with MissingColumnsError.
// Unbound trailer or related roles are not an error; they signal that
// provisioning is needed.
func Classify(headers []string) (Binding, error) {
	binding := unboundBinding()
	claimed := make([]bool, len(headers))

	for _, role := range roleOrder {
		for i, header := range headers {
			if claimed[i] {
				continue
			}
			if headerMatchesRole(header, role) {
				binding = binding.with(role, i)
				claimed[i] = true
				break
			}
		}
	}

	var missing []Role
	for _, role := range requiredRoles {
		if !binding.Bound(role) {
			missing = append(missing, role)
		}
	}
	if len(missing) > 0 {
		return unboundBinding(), &MissingColumnsError{
			Missing: missing,
			Headers: append([]string(nil), headers...),
		}
	}
	return binding, nil
}

// headerMatchesRole reports whether the header equals, or contains as a
// whole word, any of the role's keywords. Whole-word comparison keeps
// substrings like "film" inside "filmmaker" from matching.
func headerMatchesRole(header string, role Role) bool {
	lowered := strings.ToLower(strings.TrimSpace(header))
	if lowered == "" {
		return false
	}
	var words []string
	for _, keyword := range roleKeywords[role] {
		if lowered == keyword {
			return true
		}
		if words == nil {
			words = strings.FieldsFunc(lowered, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsNumber(r)
			})
		}
		for _, word := range words {
			if word == keyword {
				return true
			}
		}
	}
	return false
}
