package taxonomy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/centavo-dev/centavo/internal/model"
)

var (
	// ErrEmptyName is returned when a category or tag has no name.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrColorNotInPalette is returned when a color is not one of the fixed palette entries.
	ErrColorNotInPalette = errors.New("color is not in the palette")
	// ErrParentNotFound is returned when a subcategory references an unknown parent.
	ErrParentNotFound = errors.New("parent category not found")
	// ErrNestedParent is returned when a subcategory is itself used as a parent.
	// The tree allows exactly one level of nesting.
	ErrNestedParent = errors.New("a subcategory cannot have children")
	// ErrTypeMismatch is returned when a subcategory's type differs from its parent's.
	ErrTypeMismatch = errors.New("subcategory type must match parent type")
)

// ColorConflictError reports a color already used within the same sibling
// scope. Surfaced before save, never after a round-trip.
type ColorConflictError struct {
	Color  string
	UsedBy string // name of the sibling already holding the color
}

func (e ColorConflictError) Error() string {
	return fmt.Sprintf("color %s already used by %q", e.Color, e.UsedBy)
}

// ValidateCategory checks a category against the palette, the one-level
// nesting rule, and sibling color uniqueness. For edits, pass the category
// with its existing ID so it is not compared against itself.
func (s *Service) ValidateCategory(c model.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !paletteContains(model.CategoryPalette, c.Color) {
		return ErrColorNotInPalette
	}

	if c.ParentID != 0 {
		parent, ok := s.Category(c.ParentID)
		if !ok {
			return ErrParentNotFound
		}
		if !parent.IsRoot() {
			return ErrNestedParent
		}
		if parent.Type != c.Type {
			return ErrTypeMismatch
		}
	}

	// A category that already has children may not become a subcategory.
	if c.ParentID != 0 && len(s.Subcategories(c.ID)) > 0 {
		return ErrNestedParent
	}

	for _, sib := range s.categories {
		if sib.ID == c.ID || sib.ParentID != c.ParentID {
			continue
		}
		if strings.EqualFold(sib.Color, c.Color) {
			return ColorConflictError{Color: c.Color, UsedBy: sib.Name}
		}
	}
	return nil
}

// ValidateTag checks a tag against the palette and the flat tag color scope.
func (s *Service) ValidateTag(t model.Tag) error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if !paletteContains(model.TagPalette, t.Color) {
		return ErrColorNotInPalette
	}
	for _, other := range s.tags {
		if other.ID == t.ID {
			continue
		}
		if strings.EqualFold(other.Color, t.Color) {
			return ColorConflictError{Color: t.Color, UsedBy: other.Name}
		}
	}
	return nil
}

// FirstFreeColor returns the first palette color unused in the given sibling
// scope, or the first palette entry when all are taken.
func (s *Service) FirstFreeColor(parentID int) string {
	used := make(map[string]bool)
	for _, c := range s.categories {
		if c.ParentID == parentID {
			used[strings.ToLower(c.Color)] = true
		}
	}
	for _, color := range model.CategoryPalette {
		if !used[strings.ToLower(color)] {
			return color
		}
	}
	return model.CategoryPalette[0]
}

func paletteContains(palette []string, color string) bool {
	for _, p := range palette {
		if strings.EqualFold(p, color) {
			return true
		}
	}
	return false
}
