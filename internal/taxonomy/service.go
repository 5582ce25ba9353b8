// Package taxonomy provides in-memory lookup and validation over the user's
// category tree and tag set.
package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/centavo-dev/centavo/internal/model"
)

// Service provides in-memory lookup over categories and tags.
type Service struct {
	categories []model.Category
	tags       []model.Tag
	catByID    map[int]model.Category
	tagByID    map[int]model.Tag
}

// NewService creates a Service from category and tag slices.
func NewService(categories []model.Category, tags []model.Tag) *Service {
	catByID := make(map[int]model.Category, len(categories))
	for _, c := range categories {
		catByID[c.ID] = c
	}
	tagByID := make(map[int]model.Tag, len(tags))
	for _, t := range tags {
		tagByID[t.ID] = t
	}
	return &Service{categories: categories, tags: tags, catByID: catByID, tagByID: tagByID}
}

// Load reads categories.csv and tags.csv from a data directory.
// Missing files are treated as an empty taxonomy.
func Load(dataDir string) (*Service, error) {
	var cats []model.Category
	cf, err := os.Open(filepath.Join(dataDir, "taxonomy", "categories.csv"))
	if err == nil {
		defer cf.Close()
		cats, err = ReadCategories(cf)
		if err != nil {
			return nil, fmt.Errorf("loading categories: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("opening categories: %w", err)
	}

	var tags []model.Tag
	tf, err := os.Open(filepath.Join(dataDir, "taxonomy", "tags.csv"))
	if err == nil {
		defer tf.Close()
		tags, err = ReadTags(tf)
		if err != nil {
			return nil, fmt.Errorf("loading tags: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("opening tags: %w", err)
	}

	return NewService(cats, tags), nil
}

// Save writes categories.csv and tags.csv under <dataDir>/taxonomy/.
func (s *Service) Save(dataDir string) error {
	dir := filepath.Join(dataDir, "taxonomy")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating taxonomy dir: %w", err)
	}

	cf, err := os.Create(filepath.Join(dir, "categories.csv"))
	if err != nil {
		return fmt.Errorf("creating categories file: %w", err)
	}
	defer cf.Close()
	if err := WriteCategories(cf, s.categories); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}

	tf, err := os.Create(filepath.Join(dir, "tags.csv"))
	if err != nil {
		return fmt.Errorf("creating tags file: %w", err)
	}
	defer tf.Close()
	if err := WriteTags(tf, s.tags); err != nil {
		return fmt.Errorf("writing tags: %w", err)
	}
	return nil
}

// Categories returns all categories.
func (s *Service) Categories() []model.Category {
	return s.categories
}

// Tags returns all tags.
func (s *Service) Tags() []model.Tag {
	return s.tags
}

// Category returns a category by ID.
func (s *Service) Category(id int) (model.Category, bool) {
	c, ok := s.catByID[id]
	return c, ok
}

// Tag returns a tag by ID.
func (s *Service) Tag(id int) (model.Tag, bool) {
	t, ok := s.tagByID[id]
	return t, ok
}

// CategoryExists reports whether a category ID exists.
func (s *Service) CategoryExists(id int) bool {
	_, ok := s.catByID[id]
	return ok
}

// TagExists reports whether a tag ID exists.
func (s *Service) TagExists(id int) bool {
	_, ok := s.tagByID[id]
	return ok
}

// RootCategories returns all top-level categories of the given type.
func (s *Service) RootCategories(t model.TxType) []model.Category {
	var result []model.Category
	for _, c := range s.categories {
		if c.IsRoot() && c.Type == t {
			result = append(result, c)
		}
	}
	return result
}

// Subcategories returns the direct children of a category.
func (s *Service) Subcategories(parentID int) []model.Category {
	var result []model.Category
	for _, c := range s.categories {
		if c.ParentID == parentID {
			result = append(result, c)
		}
	}
	return result
}

// CategoryAndDescendants returns the category's ID followed by the IDs of its
// subcategories. Selecting a parent must also match its children's
// transactions; the tree is the source of truth, never a denormalized field.
func (s *Service) CategoryAndDescendants(id int) []int {
	ids := []int{id}
	for _, c := range s.Subcategories(id) {
		ids = append(ids, c.ID)
	}
	return ids
}
