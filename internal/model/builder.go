package model

import (
	"fmt"

	"github.com/contentful-labs/contentful-generator/internal/naming"
	"github.com/contentful-labs/contentful-generator/internal/schema"
)

// ResolveNames is the naming pass. It records a type name for every named
// content type and returns the unnamed ones, in fetch order, so the caller
// can report and skip them. It must complete before any model is built.
func ResolveNames(contentTypes []schema.ContentType) (Names, []schema.ContentType, error) {
	names := make(Names, len(contentTypes))
	owners := make(map[string]string, len(contentTypes))
	var skipped []schema.ContentType

	for _, ct := range contentTypes {
		if ct.Name == "" {
			skipped = append(skipped, ct)
			continue
		}

		name := naming.Normalize(ct.Name, naming.TypeCase)
		if other, exists := owners[name]; exists && other != ct.ID {
			return nil, nil, fmt.Errorf("%w: content types %q and %q both map to %q",
				ErrNameCollision, other, ct.ID, name)
		}
		owners[name] = ct.ID
		names[ct.ID] = name
	}

	return names, skipped, nil
}

// Builder is the model building pass
type Builder struct {
	Package string
	Names   Names
}

// NewBuilder creates a builder for the given package and resolved names
func NewBuilder(pkg string, names Names) *Builder {
	if names == nil {
		names = Names{}
	}
	return &Builder{
		Package: pkg,
		Names:   names,
	}
}

// Build assembles the model for one content type. Disabled fields are left
// out; the others keep their source order.
func (b *Builder) Build(ct schema.ContentType, typeName string) (*Model, error) {
	m := &Model{
		Name:          typeName,
		Package:       b.Package,
		ContentTypeID: ct.ID,
		Description:   ct.Description,
	}

	seen := make(map[string]string)
	for _, f := range ct.Enabled() {
		name := naming.Normalize(f.ID, naming.MemberCase)
		if other, exists := seen[name]; exists {
			return nil, &FieldError{
				ContentTypeID: ct.ID,
				FieldID:       f.ID,
				Detail:        fmt.Sprintf("collides with field %q as %q", other, name),
				Err:           ErrNameCollision,
			}
		}
		seen[name] = f.ID

		typ, err := MapField(f, b.Names, ct.ID)
		if err != nil {
			return nil, err
		}

		m.Fields = append(m.Fields, Field{
			Name:     name,
			Accessor: naming.Recase(name, naming.TypeCase),
			ID:       f.ID,
			Label:    f.Name,
			Required: f.Required,
			Type:     typ,
		})
	}

	return m, nil
}

// BuildModel builds a single model without fetching or writing anything
func BuildModel(pkg string, ct schema.ContentType, typeName string, names Names) (*Model, error) {
	return NewBuilder(pkg, names).Build(ct, typeName)
}
