// Package model builds language independent model definitions from content types
package model

import "sort"

// Kind classifies a TypeRef
type Kind int

const (
	KindBool Kind = iota + 1
	KindString
	KindInt64
	KindFloat64
	KindMap
	KindAny
	KindAsset
	KindEntry
	KindList
)

// TypeRef is the resolved type of a generated field. Emitters render it in
// their own syntax.
type TypeRef struct {
	Kind Kind
	// Name is the model type name for KindEntry
	Name string
	// Elem is the element type for KindList
	Elem *TypeRef
}

func Bool() TypeRef    { return TypeRef{Kind: KindBool} }
func String() TypeRef  { return TypeRef{Kind: KindString} }
func Int64() TypeRef   { return TypeRef{Kind: KindInt64} }
func Float64() TypeRef { return TypeRef{Kind: KindFloat64} }
func Map() TypeRef     { return TypeRef{Kind: KindMap} }
func Any() TypeRef     { return TypeRef{Kind: KindAny} }
func Asset() TypeRef   { return TypeRef{Kind: KindAsset} }

// Entry references the model generated for another content type
func Entry(name string) TypeRef {
	return TypeRef{Kind: KindEntry, Name: name}
}

// List is an ordered sequence of elem
func List(elem TypeRef) TypeRef {
	return TypeRef{Kind: KindList, Elem: &elem}
}

// String renders the type for diagnostics
func (t TypeRef) String() string {
	switch t.Kind {
	case KindBool:
		return "Boolean"
	case KindString:
		return "String"
	case KindInt64:
		return "Int64"
	case KindFloat64:
		return "Float64"
	case KindMap:
		return "Map"
	case KindAny:
		return "Any"
	case KindAsset:
		return "Asset"
	case KindEntry:
		return t.Name
	case KindList:
		if t.Elem == nil {
			return "List"
		}
		return "List<" + t.Elem.String() + ">"
	default:
		return "Unknown"
	}
}

// Names maps content type ids to generated type names for one run
type Names map[string]string

// Lookup returns the type name recorded for a content type id
func (n Names) Lookup(id string) (string, bool) {
	name, ok := n[id]
	return name, ok && name != ""
}

// Model is the generated definition of one content type
type Model struct {
	Name          string
	Package       string
	ContentTypeID string
	Description   string
	Fields        []Field
}

// Field is one member of a Model together with its accessor
type Field struct {
	// Name is the member-cased field name
	Name string
	// Accessor is Name re-cased to type case
	Accessor string
	// ID is the raw field id from the schema
	ID string
	// Label is the human readable field name from the schema
	Label    string
	Required bool
	Type     TypeRef
}

// References returns the sorted, distinct model names the fields link to
func (m *Model) References() []string {
	seen := make(map[string]bool)
	var refs []string
	for _, f := range m.Fields {
		t := f.Type
		if t.Kind == KindList && t.Elem != nil {
			t = *t.Elem
		}
		if t.Kind == KindEntry && !seen[t.Name] {
			seen[t.Name] = true
			refs = append(refs, t.Name)
		}
	}
	sort.Strings(refs)
	return refs
}

// UsesKind reports whether any field, or list element, has the given kind
func (m *Model) UsesKind(k Kind) bool {
	for _, f := range m.Fields {
		if f.Type.Kind == k {
			return true
		}
		if f.Type.Kind == KindList && f.Type.Elem != nil && f.Type.Elem.Kind == k {
			return true
		}
	}
	return false
}
