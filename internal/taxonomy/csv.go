package taxonomy

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/centavo-dev/centavo/internal/model"
)

const (
	catNumFields = 6
	catColID     = 0
	catColName   = 1
	catColType   = 2
	catColColor  = 3
	catColIcon   = 4
	catColParent = 5
)

const (
	tagNumFields = 4
	tagColID     = 0
	tagColName   = 1
	tagColColor  = 2
	tagColIcon   = 3
)

// ReadCategories reads categories.csv.
func ReadCategories(r io.Reader) ([]model.Category, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = catNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading categories CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var cats []model.Category
	for i, rec := range records[1:] {
		cat, err := UnmarshalCategory(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

// WriteCategories writes categories.csv (including header).
func WriteCategories(w io.Writer, cats []model.Category) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "name", "type", "color", "icon", "parent_id"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, cat := range cats {
		if err := cw.Write(MarshalCategory(cat)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalCategory converts a Category to a CSV row.
func MarshalCategory(c model.Category) []string {
	row := make([]string, catNumFields)
	row[catColID] = strconv.Itoa(c.ID)
	row[catColName] = c.Name
	row[catColType] = string(c.Type)
	row[catColColor] = c.Color
	row[catColIcon] = c.Icon
	if c.ParentID != 0 {
		row[catColParent] = strconv.Itoa(c.ParentID)
	}
	return row
}

// UnmarshalCategory converts a CSV row to a Category.
func UnmarshalCategory(record []string) (model.Category, error) {
	if len(record) != catNumFields {
		return model.Category{}, fmt.Errorf("expected %d fields, got %d", catNumFields, len(record))
	}

	id, err := strconv.Atoi(record[catColID])
	if err != nil {
		return model.Category{}, fmt.Errorf("parsing id %q: %w", record[catColID], err)
	}

	var parentID int
	if record[catColParent] != "" {
		parentID, err = strconv.Atoi(record[catColParent])
		if err != nil {
			return model.Category{}, fmt.Errorf("parsing parent_id %q: %w", record[catColParent], err)
		}
	}

	return model.Category{
		ID:       id,
		Name:     record[catColName],
		Type:     model.TxType(record[catColType]),
		Color:    record[catColColor],
		Icon:     record[catColIcon],
		ParentID: parentID,
	}, nil
}

// ReadTags reads tags.csv.
func ReadTags(r io.Reader) ([]model.Tag, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = tagNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading tags CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var tags []model.Tag
	for i, rec := range records[1:] {
		tag, err := UnmarshalTag(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// WriteTags writes tags.csv (including header).
func WriteTags(w io.Writer, tags []model.Tag) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "name", "color", "icon"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tag := range tags {
		if err := cw.Write(MarshalTag(tag)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTag converts a Tag to a CSV row.
func MarshalTag(t model.Tag) []string {
	row := make([]string, tagNumFields)
	row[tagColID] = strconv.Itoa(t.ID)
	row[tagColName] = t.Name
	row[tagColColor] = t.Color
	row[tagColIcon] = t.Icon
	return row
}

// UnmarshalTag converts a CSV row to a Tag.
func UnmarshalTag(record []string) (model.Tag, error) {
	if len(record) != tagNumFields {
		return model.Tag{}, fmt.Errorf("expected %d fields, got %d", tagNumFields, len(record))
	}

	id, err := strconv.Atoi(record[tagColID])
	if err != nil {
		return model.Tag{}, fmt.Errorf("parsing id %q: %w", record[tagColID], err)
	}

	return model.Tag{
		ID:    id,
		Name:  record[tagColName],
		Color: record[tagColColor],
		Icon:  record[tagColIcon],
	}, nil
}
