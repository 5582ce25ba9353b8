package taxonomy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centavo-dev/centavo/internal/model"
)

func defaultService() *Service {
	return NewService(DefaultCategories(), DefaultTags())
}

func TestCategoriesRoundTrip(t *testing.T) {
	cats := DefaultCategories()

	var buf bytes.Buffer
	require.NoError(t, WriteCategories(&buf, cats))

	got, err := ReadCategories(&buf)
	require.NoError(t, err)
	assert.Equal(t, cats, got)
}

func TestTagsRoundTrip(t *testing.T) {
	tags := DefaultTags()

	var buf bytes.Buffer
	require.NoError(t, WriteTags(&buf, tags))

	got, err := ReadTags(&buf)
	require.NoError(t, err)
	assert.Equal(t, tags, got)
}

func TestServiceSaveLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, defaultService().Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultCategories(), loaded.Categories())
	assert.Equal(t, DefaultTags(), loaded.Tags())
}

func TestLoad_MissingFilesIsEmptyTaxonomy(t *testing.T) {
	loaded, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, loaded.Categories())
	assert.Empty(t, loaded.Tags())
}

func TestCategoryAndDescendants(t *testing.T) {
	s := defaultService()
	assert.Equal(t, []int{4, 5, 6}, s.CategoryAndDescendants(4))
	assert.Equal(t, []int{3}, s.CategoryAndDescendants(3))
}

func TestRootCategoriesAndSubcategories(t *testing.T) {
	s := defaultService()

	roots := s.RootCategories(model.TypeExpense)
	for _, c := range roots {
		assert.True(t, c.IsRoot())
		assert.Equal(t, model.TypeExpense, c.Type)
	}
	require.Len(t, roots, 6)

	subs := s.Subcategories(4)
	require.Len(t, subs, 2)
	assert.Equal(t, "Agua", subs[0].Name)
	assert.Equal(t, "Luz", subs[1].Name)
}

func TestValidateCategory_EmptyName(t *testing.T) {
	err := defaultService().ValidateCategory(model.Category{
		ID: 20, Name: "  ", Type: model.TypeExpense, Color: "#eab308",
	})
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestValidateCategory_ColorMustBeInPalette(t *testing.T) {
	err := defaultService().ValidateCategory(model.Category{
		ID: 20, Name: "Mascotas", Type: model.TypeExpense, Color: "#123456",
	})
	assert.ErrorIs(t, err, ErrColorNotInPalette)
}

func TestValidateCategory_PaletteCheckIgnoresCase(t *testing.T) {
	err := defaultService().ValidateCategory(model.Category{
		ID: 20, Name: "Mascotas", Type: model.TypeExpense, Color: "#EAB308",
	})
	assert.NoError(t, err)
}

func TestValidateCategory_SiblingColorConflict(t *testing.T) {
	err := defaultService().ValidateCategory(model.Category{
		ID: 20, Name: "Mascotas", Type: model.TypeExpense, Color: "#ef4444",
	})

	var conflict ColorConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "#ef4444", conflict.Color)
	assert.Equal(t, "Alimentación", conflict.UsedBy)
}

func TestValidateCategory_SameColorAllowedInDifferentScope(t *testing.T) {
	// #ef4444 is taken at the root, but free under Servicios.
	err := defaultService().ValidateCategory(model.Category{
		ID: 20, Name: "Internet", Type: model.TypeExpense, Color: "#ef4444", ParentID: 4,
	})
	assert.NoError(t, err)
}

func TestValidateCategory_EditDoesNotConflictWithItself(t *testing.T) {
	cats := DefaultCategories()
	edited := cats[2] // Alimentación, #ef4444
	edited.Name = "Comida"

	assert.NoError(t, NewService(cats, nil).ValidateCategory(edited))
}

func TestValidateCategory_ParentRules(t *testing.T) {
	s := defaultService()

	unknownParent := model.Category{ID: 20, Name: "X", Type: model.TypeExpense, Color: "#eab308", ParentID: 99}
	assert.ErrorIs(t, s.ValidateCategory(unknownParent), ErrParentNotFound)

	nested := model.Category{ID: 20, Name: "X", Type: model.TypeExpense, Color: "#eab308", ParentID: 5}
	assert.ErrorIs(t, s.ValidateCategory(nested), ErrNestedParent)

	typeMismatch := model.Category{ID: 20, Name: "X", Type: model.TypeIncome, Color: "#eab308", ParentID: 4}
	assert.ErrorIs(t, s.ValidateCategory(typeMismatch), ErrTypeMismatch)

	// Servicios already has children, so it cannot become a subcategory.
	demoted := model.Category{ID: 4, Name: "Servicios", Type: model.TypeExpense, Color: "#eab308", ParentID: 3}
	assert.ErrorIs(t, s.ValidateCategory(demoted), ErrNestedParent)
}

func TestValidateTag_FlatColorScope(t *testing.T) {
	s := defaultService()

	err := s.ValidateTag(model.Tag{ID: 20, Name: "Regalos", Color: "#ef4444"})
	var conflict ColorConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Supermercado", conflict.UsedBy)

	assert.NoError(t, s.ValidateTag(model.Tag{ID: 20, Name: "Regalos", Color: "#eab308"}))
	assert.ErrorIs(t, s.ValidateTag(model.Tag{ID: 20, Name: "", Color: "#eab308"}), ErrEmptyName)
	assert.ErrorIs(t, s.ValidateTag(model.Tag{ID: 20, Name: "Regalos", Color: "#zz0000"}), ErrColorNotInPalette)
}

func TestFirstFreeColor(t *testing.T) {
	s := defaultService()

	// Root scope: #ef4444 and #f97316 are taken, #f59e0b is the first free.
	assert.Equal(t, "#f59e0b", s.FirstFreeColor(0))

	// Servicios scope: only #06b6d4 and #f59e0b taken.
	assert.Equal(t, "#ef4444", s.FirstFreeColor(4))
}
