package model

import (
	"fmt"

	"github.com/contentful-labs/contentful-generator/internal/schema"
)

// MapField maps a field's declared type to a TypeRef. Disabled fields are
// expected to be filtered out before this is called.
func MapField(f schema.Field, names Names, parentID string) (TypeRef, error) {
	switch f.Type {
	case schema.FieldTypeBoolean:
		return Bool(), nil
	case schema.FieldTypeDate, schema.FieldTypeSymbol, schema.FieldTypeText:
		return String(), nil
	case schema.FieldTypeInteger:
		return Int64(), nil
	case schema.FieldTypeNumber:
		return Float64(), nil
	case schema.FieldTypeObject, schema.FieldTypeLocation:
		return Map(), nil
	case schema.FieldTypeLink:
		return ResolveLink(f.LinkType, f.Validations, names, parentID, f.ID)
	case schema.FieldTypeArray:
		return ResolveArray(f.Items, names, parentID, f.ID)
	default:
		return TypeRef{}, &FieldError{
			ContentTypeID: parentID,
			FieldID:       f.ID,
			Detail:        fmt.Sprintf("has invalid type %q", f.Type),
			Err:           ErrInvalidFieldType,
		}
	}
}

// ResolveLink determines the type a single link points to. Entry links must
// name exactly one content type that is present in names.
func ResolveLink(kind schema.LinkType, validations []schema.Validation, names Names, parentID, fieldID string) (TypeRef, error) {
	switch kind {
	case schema.LinkTypeAsset:
		return Asset(), nil
	case schema.LinkTypeEntry:
		target, ok := SingleLinkContentType(validations)
		if !ok {
			return TypeRef{}, missingLinkValidation(parentID, fieldID)
		}
		name, ok := names.Lookup(target)
		if !ok {
			return TypeRef{}, unknownLinkTarget(parentID, fieldID, target)
		}
		return Entry(name), nil
	default:
		return TypeRef{}, &FieldError{
			ContentTypeID: parentID,
			FieldID:       fieldID,
			Detail:        fmt.Sprintf("has invalid link type %q", kind),
			Err:           ErrInvalidLinkType,
		}
	}
}

// ResolveArray determines the element type of an array field and wraps it
// in a List. Plain items are untyped.
func ResolveArray(items schema.Items, names Names, parentID, fieldID string) (TypeRef, error) {
	switch it := items.(type) {
	case schema.LinkItems:
		elem, err := ResolveLink(it.LinkType, it.Validations, names, parentID, fieldID)
		if err != nil {
			return TypeRef{}, err
		}
		return List(elem), nil
	default:
		return List(Any()), nil
	}
}

// SingleLinkContentType returns the only content type id named by the
// linkContentType lists of validations. It reports false when none is named,
// when a single list names several, or when the lists name more than one
// distinct id between them. The same id listed by several validations is
// accepted as one target; only distinct ids make a link ambiguous.
func SingleLinkContentType(validations []schema.Validation) (string, bool) {
	var result string
	for _, v := range validations {
		switch len(v.LinkContentType) {
		case 0:
			continue
		case 1:
			id := v.LinkContentType[0]
			if result != "" && result != id {
				return "", false
			}
			result = id
		default:
			return "", false
		}
	}
	return result, result != ""
}
