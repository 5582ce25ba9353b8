package model

// Category is a typed, user-defined label with at most one level of nesting.
// A category with ParentID set is a subcategory and may not itself be a parent;
// that invariant is enforced by taxonomy validation, not the type system.
type Category struct {
	ID       int
	Name     string
	Type     TxType
	Color    string // hex, from the category palette
	Icon     string
	ParentID int // 0 = root category
}

// IsRoot reports whether the category is a top-level category.
func (c Category) IsRoot() bool {
	return c.ParentID == 0
}

// Tag is a flat, untyped label. A tag can appear on both income and expense
// transactions, so tag rollups are computed separately per observed type.
type Tag struct {
	ID    int
	Name  string
	Color string // hex, from the tag palette
	Icon  string
}
