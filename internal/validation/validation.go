// Package validation holds the per-entity field constraint checks. Validators
// are pure: they evaluate a candidate entity and return the ordered list of
// violations, empty meaning valid. Message texts match the external contract.
package validation

import (
	"regexp"
	"strings"

	"github.com/TWhiteShadow/gamevault/internal/apperr"
	"github.com/TWhiteShadow/gamevault/internal/models"
)

const maxNameLength = 255

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateCategory checks the field constraints of a candidate category.
func ValidateCategory(c *models.Category) []apperr.Violation {
	var violations []apperr.Violation

	if strings.TrimSpace(c.Name) == "" {
		violations = append(violations, apperr.Violation{Field: "name", Message: "The name is required"})
	} else if len(c.Name) > maxNameLength {
		violations = append(violations, apperr.Violation{Field: "name", Message: "The name must not exceed 255 characters"})
	}

	return violations
}

// ValidateEditor checks the field constraints of a candidate editor.
func ValidateEditor(e *models.Editor) []apperr.Violation {
	var violations []apperr.Violation

	if strings.TrimSpace(e.Name) == "" {
		violations = append(violations, apperr.Violation{Field: "name", Message: "The name is required"})
	} else if len(e.Name) > maxNameLength {
		violations = append(violations, apperr.Violation{Field: "name", Message: "The name must not exceed 255 characters"})
	}

	if strings.TrimSpace(e.Country) == "" {
		violations = append(violations, apperr.Violation{Field: "country", Message: "The country is required"})
	} else if len(e.Country) > maxNameLength {
		violations = append(violations, apperr.Violation{Field: "country", Message: "The country must not exceed 255 characters"})
	}

	return violations
}

// ValidateVideoGame checks the field constraints of a candidate video game.
// The editor reference must already be resolved onto the model; an unresolved
// reference is a resolver failure, not a validation one.
func ValidateVideoGame(g *models.VideoGame) []apperr.Violation {
	var violations []apperr.Violation

	if g.Title == "" {
		violations = append(violations, apperr.Violation{Field: "title", Message: "The title is required"})
	}
	if g.Description == "" {
		violations = append(violations, apperr.Violation{Field: "description", Message: "The description is required"})
	}
	if g.ReleaseDate.IsZero() {
		violations = append(violations, apperr.Violation{Field: "releaseDate", Message: "The release date is required"})
	}
	if g.EditorID == 0 {
		violations = append(violations, apperr.Violation{Field: "Editor", Message: "The editor is required"})
	}

	return violations
}

// ValidateEmail checks the syntactic validity of an email address.
func ValidateEmail(email string) []apperr.Violation {
	if email == "" {
		return []apperr.Violation{{Field: "email", Message: "The email is required"}}
	}
	if !emailRegex.MatchString(email) {
		return []apperr.Violation{{Field: "email", Message: "The email is not a valid email address"}}
	}
	return nil
}
