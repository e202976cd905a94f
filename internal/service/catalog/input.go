package catalog

import (
	"strings"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// CreateItemInput holds the parameters for registering an item.
type CreateItemInput struct {
	Description string
	Categories  []string
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if len([]rune(strings.TrimSpace(i.Description))) > domain.MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}

	categories := domain.NormalizeCategories(i.Categories)
	if len(categories) == 0 {
		errs = append(errs, domain.FieldError{Field: "categories", Message: "at least one required"})
	}
	if len(categories) > domain.MaxCategories {
		errs = append(errs, domain.FieldError{Field: "categories", Message: "max 10 categories"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
