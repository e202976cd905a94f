package domain

import (
	"slices"
	"strings"
	"time"
)

const (
	MaxDescriptionLength = 1000
	MaxCategories        = 10
)

// Item is a tradable object listed by exactly one owner.
type Item struct {
	ID          string
	OwnerID     string
	Description string
	Categories  []string
	CreatedAt   time.Time
}

// NewItem builds a validated Item. Categories are normalized into a sorted set.
func NewItem(id, ownerID, description string, categories []string, now time.Time) (*Item, error) {
	var errs []FieldError

	if strings.TrimSpace(id) == "" {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(ownerID) == "" {
		errs = append(errs, FieldError{Field: "owner_id", Message: "required"})
	}

	description = strings.TrimSpace(description)
	if len([]rune(description)) > MaxDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: "max 1000 characters"})
	}

	normalized := NormalizeCategories(categories)
	if len(normalized) == 0 {
		errs = append(errs, FieldError{Field: "categories", Message: "at least one required"})
	}
	if len(normalized) > MaxCategories {
		errs = append(errs, FieldError{Field: "categories", Message: "max 10 categories"})
	}

	if len(errs) > 0 {
		return nil, NewValidationErrors(errs)
	}

	return &Item{
		ID:          id,
		OwnerID:     ownerID,
		Description: description,
		Categories:  normalized,
		CreatedAt:   now.UTC(),
	}, nil
}

// OwnedBy reports whether userID owns the item.
func (i *Item) OwnedBy(userID string) bool {
	return i.OwnerID == userID
}

// HasAnyCategory reports whether the item carries at least one of the given
// (already normalized) categories. An empty filter matches every item.
func (i *Item) HasAnyCategory(categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if slices.Contains(i.Categories, c) {
			return true
		}
	}
	return false
}
