package schema

// FieldType is the declared kind of a content type field
type FieldType string

const (
	FieldTypeBoolean  FieldType = "Boolean"
	FieldTypeDate     FieldType = "Date"
	FieldTypeInteger  FieldType = "Integer"
	FieldTypeNumber   FieldType = "Number"
	FieldTypeSymbol   FieldType = "Symbol"
	FieldTypeText     FieldType = "Text"
	FieldTypeObject   FieldType = "Object"
	FieldTypeLocation FieldType = "Location"
	FieldTypeLink     FieldType = "Link"
	FieldTypeArray    FieldType = "Array"
)

// LinkType is the kind of resource a Link field points to
type LinkType string

const (
	LinkTypeAsset LinkType = "Asset"
	LinkTypeEntry LinkType = "Entry"
)

// ContentType is a content type definition as fetched from a space
type ContentType struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

// Field represents a single field inside a content type
type Field struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Disabled bool      `json:"disabled"`

	// LinkType and Validations are only meaningful for Link fields
	LinkType    LinkType     `json:"linkType,omitempty"`
	Validations []Validation `json:"validations,omitempty"`

	// Items describes the elements of an Array field, nil otherwise
	Items Items `json:"-"`
}

// Validation is a single entry of a field's validation list. Only the
// constraints needed to type a link are kept.
type Validation struct {
	LinkContentType []string `json:"linkContentType,omitempty"`
}

// Items describes the element type of an Array field. It is either
// ScalarItems or LinkItems.
type Items interface {
	isItems()
}

// ScalarItems are plain values such as symbols
type ScalarItems struct {
	Type FieldType
}

// LinkItems are links to entries or assets
type LinkItems struct {
	LinkType    LinkType
	Validations []Validation
}

func (ScalarItems) isItems() {}
func (LinkItems) isItems()   {}

// Enabled returns the fields that are not disabled, in source order
func (ct ContentType) Enabled() []Field {
	fields := make([]Field, 0, len(ct.Fields))
	for _, f := range ct.Fields {
		if f.Disabled {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}
