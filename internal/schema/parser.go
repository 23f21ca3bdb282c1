package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingID is returned when a content type payload carries no sys.id
var ErrMissingID = errors.New("content type has no id")

// Collection is one page of content types as returned by the management API
type Collection struct {
	Items []ContentType
	Total int
	Skip  int
	Limit int
}

type wireSys struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type wireItems struct {
	Type        FieldType    `json:"type"`
	LinkType    LinkType     `json:"linkType"`
	Validations []Validation `json:"validations"`
}

type wireField struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        FieldType    `json:"type"`
	Required    bool         `json:"required"`
	Disabled    bool         `json:"disabled"`
	LinkType    LinkType     `json:"linkType"`
	Validations []Validation `json:"validations"`
	Items       *wireItems   `json:"items"`
}

type wireContentType struct {
	Sys         wireSys     `json:"sys"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Fields      []wireField `json:"fields"`
}

type wireCollection struct {
	Sys   wireSys           `json:"sys"`
	Total int               `json:"total"`
	Skip  int               `json:"skip"`
	Limit int               `json:"limit"`
	Items []wireContentType `json:"items"`
}

// ParseContentType decodes a single content type resource
func ParseContentType(data []byte) (*ContentType, error) {
	var w wireContentType
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse content type: %w", err)
	}

	ct, err := w.decode()
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// ParseContentTypes decodes an array envelope of content types
func ParseContentTypes(data []byte) (*Collection, error) {
	var w wireCollection
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse content types: %w", err)
	}

	c := &Collection{
		Items: make([]ContentType, 0, len(w.Items)),
		Total: w.Total,
		Skip:  w.Skip,
		Limit: w.Limit,
	}
	for i, item := range w.Items {
		ct, err := item.decode()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		c.Items = append(c.Items, ct)
	}
	return c, nil
}

func (w wireContentType) decode() (ContentType, error) {
	if w.Sys.ID == "" {
		return ContentType{}, ErrMissingID
	}

	ct := ContentType{
		ID:          w.Sys.ID,
		Name:        w.Name,
		Description: w.Description,
		Fields:      make([]Field, 0, len(w.Fields)),
	}
	for _, f := range w.Fields {
		ct.Fields = append(ct.Fields, f.decode())
	}
	return ct, nil
}

func (w wireField) decode() Field {
	f := Field{
		ID:          w.ID,
		Name:        w.Name,
		Type:        w.Type,
		Required:    w.Required,
		Disabled:    w.Disabled,
		LinkType:    w.LinkType,
		Validations: w.Validations,
	}
	if w.Type == FieldTypeArray {
		f.Items = decodeItems(w.Items)
	}
	return f
}

// decodeItems turns the loosely typed items payload into one of the Items
// variants. Missing items are treated as plain values.
func decodeItems(w *wireItems) Items {
	if w == nil {
		return ScalarItems{}
	}
	if w.Type == FieldTypeLink {
		return LinkItems{
			LinkType:    w.LinkType,
			Validations: w.Validations,
		}
	}
	return ScalarItems{Type: w.Type}
}
