package typescript

import (
	"fmt"
	"strconv"

	"github.com/contentful-labs/contentful-generator/internal/codegen/writer"
	"github.com/contentful-labs/contentful-generator/internal/model"
)

const header = "// Code generated by contentful-generator. DO NOT EDIT."

// supportModule declares Resource and Asset
const supportModule = "Resource"

// Type names declared by the support module
var supportTypes = map[string]bool{
	"Resource": true,
	"Asset":    true,
}

// Properties every model inherits from Resource
var inherited = []string{"id", "createdAt", "updatedAt"}

// Generator generates TypeScript classes from content type models
type Generator struct{}

// NewGenerator creates a new TypeScript code generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "typescript"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".ts"
}

// Path returns the module file of a model. The destination root is the
// directory holding all generated modules.
func (g *Generator) Path(pkg, typeName string) string {
	return typeName + g.FileExtension()
}

// Generate generates a class extending Resource with a getter per field
func (g *Generator) Generate(m *model.Model) ([]byte, error) {
	if supportTypes[m.Name] {
		return nil, fmt.Errorf("%w: content type %q maps to reserved type name %q",
			model.ErrNameCollision, m.ContentTypeID, m.Name)
	}
	if err := checkMembers(m); err != nil {
		return nil, err
	}

	w := writer.NewWriter("  ") // TypeScript typically uses 2 spaces

	w.WriteLine(header)
	w.BlankLine()

	g.generateImports(w, m)
	w.BlankLine()

	doc := fmt.Sprintf("Generated from content type %q.", m.ContentTypeID)
	if m.Description != "" {
		doc = m.Description + "\n\n" + doc
	}
	w.WriteBlockDoc(doc)

	w.WriteBlock(fmt.Sprintf("export class %s extends Resource {", m.Name), "}", func() {
		w.WriteLinef("static readonly contentType = %s;", strconv.Quote(m.ContentTypeID))

		for _, f := range m.Fields {
			w.BlankLine()
			g.generateProperty(w, f)
		}

		for _, f := range m.Fields {
			w.BlankLine()
			g.generateGetter(w, f)
		}
	})

	return w.Bytes(), nil
}

// Support generates the shared Resource and Asset classes
func (g *Generator) Support(pkg string) (string, []byte, error) {
	w := writer.NewWriter("  ")

	w.WriteLine(header)
	w.BlankLine()

	w.WriteBlockDoc("System metadata shared by entries and assets.")
	w.WriteBlock("export abstract class Resource {", "}", func() {
		w.WriteLine("id?: string;")
		w.WriteLine("createdAt?: string;")
		w.WriteLine("updatedAt?: string;")
	})
	w.BlankLine()

	w.WriteBlockDoc("A binary resource such as an image or a document.")
	w.WriteBlock("export class Asset extends Resource {", "}", func() {
		w.WriteLine("url?: string;")
		w.WriteLine("mimeType?: string;")
		w.WriteLine("title?: string;")
		w.WriteLine("description?: string;")
	})

	return supportModule + g.FileExtension(), w.Bytes(), nil
}

func (g *Generator) generateImports(w *writer.Writer, m *model.Model) {
	if m.UsesKind(model.KindAsset) {
		w.WriteLinef("import { Asset, Resource } from \"./%s\";", supportModule)
	} else {
		w.WriteLinef("import { Resource } from \"./%s\";", supportModule)
	}

	for _, ref := range m.References() {
		if ref == m.Name {
			continue
		}
		w.WriteLinef("import { %s } from \"./%s\";", ref, ref)
	}
}

func (g *Generator) generateProperty(w *writer.Writer, f model.Field) {
	doc := f.Label
	if f.ID != f.Name {
		if doc != "" {
			doc += "\n\n"
		}
		doc += fmt.Sprintf("Stored as %q.", f.ID)
	}
	w.WriteBlockDoc(doc)
	if f.Required {
		w.WriteLinef("%s!: %s;", f.Name, g.mapToTSType(f.Type))
		return
	}
	w.WriteLinef("%s?: %s;", f.Name, g.mapToTSType(f.Type))
}

func (g *Generator) generateGetter(w *writer.Writer, f model.Field) {
	returnType := g.mapToTSType(f.Type)
	if !f.Required {
		returnType += " | undefined"
	}
	signature := fmt.Sprintf("get%s(): %s {", f.Accessor, returnType)
	w.WriteBlock(signature, "}", func() {
		w.WriteLinef("return this.%s;", f.Name)
	})
}

// checkMembers rejects models whose properties collide with an inherited
// property or with a getter, e.g. fields "x" and "getX"
func checkMembers(m *model.Model) error {
	owners := make(map[string]string, len(m.Fields)+len(inherited))
	for _, name := range inherited {
		owners[name] = ""
	}
	for _, f := range m.Fields {
		if _, exists := owners[f.Name]; exists {
			return &model.FieldError{
				ContentTypeID: m.ContentTypeID,
				FieldID:       f.ID,
				Detail:        fmt.Sprintf("collides with inherited property %q", f.Name),
				Err:           model.ErrNameCollision,
			}
		}
		owners[f.Name] = f.ID
	}
	for _, f := range m.Fields {
		getter := "get" + f.Accessor
		if other, exists := owners[getter]; exists {
			return &model.FieldError{
				ContentTypeID: m.ContentTypeID,
				FieldID:       f.ID,
				Detail:        fmt.Sprintf("collides with field %q as %q", other, getter),
				Err:           model.ErrNameCollision,
			}
		}
	}
	return nil
}

// mapToTSType maps a resolved type to TypeScript
func (g *Generator) mapToTSType(t model.TypeRef) string {
	switch t.Kind {
	case model.KindBool:
		return "boolean"
	case model.KindString:
		return "string"
	case model.KindInt64, model.KindFloat64:
		return "number"
	case model.KindMap:
		return "Record<string, unknown>"
	case model.KindAsset:
		return "Asset"
	case model.KindEntry:
		return t.Name
	case model.KindList:
		if t.Elem == nil {
			return "unknown[]"
		}
		return g.mapToTSType(*t.Elem) + "[]"
	default:
		return "unknown"
	}
}
