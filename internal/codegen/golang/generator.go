package golang

import (
	"fmt"
	"go/format"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ettle/strcase"

	"github.com/contentful-labs/contentful-generator/internal/codegen/writer"
	"github.com/contentful-labs/contentful-generator/internal/model"
	"github.com/contentful-labs/contentful-generator/internal/naming"
)

const header = "// Code generated by contentful-generator. DO NOT EDIT."

// supportFile holds the Resource and Asset declarations every model uses
const supportFile = "resource.go"

// Names the generated struct already uses for its own members
var reserved = map[string]bool{
	"Resource":      true,
	"ContentTypeID": true,
}

// Type names declared by the support file
var supportTypes = map[string]bool{
	"Resource": true,
	"Asset":    true,
}

// Generator generates Go structs from content type models
type Generator struct{}

// NewGenerator creates a new Go code generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "go"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".go"
}

// Path returns the file name of a model. The destination root is the
// package directory.
func (g *Generator) Path(pkg, typeName string) string {
	return strcase.ToSnake(typeName) + g.FileExtension()
}

// Generate generates a struct with a getter per field
func (g *Generator) Generate(m *model.Model) ([]byte, error) {
	if supportTypes[m.Name] {
		return nil, fmt.Errorf("%w: content type %q maps to reserved type name %q",
			model.ErrNameCollision, m.ContentTypeID, m.Name)
	}
	if err := checkMembers(m); err != nil {
		return nil, err
	}

	w := writer.NewWriter("\t")

	w.WriteLine(header)
	w.BlankLine()
	w.WriteLinef("package %s", PackageName(m.Package))
	w.BlankLine()

	g.generateStruct(w, m)
	w.BlankLine()

	w.WriteLinef("// ContentTypeID returns the id of the content type %s is generated from.", m.Name)
	w.WriteBlock(fmt.Sprintf("func (*%s) ContentTypeID() string {", m.Name), "}", func() {
		w.WriteLinef("return %q", m.ContentTypeID)
	})

	for _, f := range m.Fields {
		w.BlankLine()
		g.generateGetter(w, m.Name, f)
	}

	return formatSource(w.Bytes())
}

// Support generates the shared Resource and Asset types
func (g *Generator) Support(pkg string) (string, []byte, error) {
	w := writer.NewWriter("\t")

	w.WriteLine(header)
	w.BlankLine()
	w.WriteLinef("package %s", PackageName(pkg))
	w.BlankLine()

	w.WriteComment("Resource holds the system metadata shared by entries and assets.")
	w.WriteBlock("type Resource struct {", "}", func() {
		w.WriteLine("ID string `json:\"id\"`")
		w.WriteLine("CreatedAt string `json:\"createdAt,omitempty\"`")
		w.WriteLine("UpdatedAt string `json:\"updatedAt,omitempty\"`")
	})
	w.BlankLine()

	w.WriteComment("Asset is a binary resource such as an image or a document.")
	w.WriteBlock("type Asset struct {", "}", func() {
		w.WriteLine("Resource")
		w.BlankLine()
		w.WriteLine("URL string `json:\"url,omitempty\"`")
		w.WriteLine("MimeType string `json:\"mimeType,omitempty\"`")
		w.WriteLine("Title string `json:\"title,omitempty\"`")
		w.WriteLine("Description string `json:\"description,omitempty\"`")
	})

	content, err := formatSource(w.Bytes())
	if err != nil {
		return "", nil, err
	}
	return supportFile, content, nil
}

func (g *Generator) generateStruct(w *writer.Writer, m *model.Model) {
	doc := fmt.Sprintf("%s is generated from content type %q.", m.Name, m.ContentTypeID)
	if m.Description != "" {
		doc += "\n\n" + m.Description
	}
	w.WriteDocComment(doc)

	w.WriteBlock(fmt.Sprintf("type %s struct {", m.Name), "}", func() {
		w.WriteLine("Resource")
		if len(m.Fields) > 0 {
			w.BlankLine()
		}
		for _, f := range m.Fields {
			w.WriteLinef("%s %s `json:\"%s,omitempty\"`", fieldName(f), g.mapToGoType(f.Type), f.ID)
		}
	})
}

func (g *Generator) generateGetter(w *writer.Writer, typeName string, f model.Field) {
	name := fieldName(f)
	goType := g.mapToGoType(f.Type)

	w.WriteLinef("// Get%s returns the %s field, or its zero value when m is nil.", name, name)
	w.WriteBlock(fmt.Sprintf("func (m *%s) Get%s() %s {", typeName, name, goType), "}", func() {
		w.WriteBlock("if m == nil {", "}", func() {
			w.WriteLinef("return %s", zeroValue(f.Type))
		})
		w.WriteLinef("return m.%s", name)
	})
}

// mapToGoType maps a resolved type to Go
func (g *Generator) mapToGoType(t model.TypeRef) string {
	switch t.Kind {
	case model.KindBool:
		return "bool"
	case model.KindString:
		return "string"
	case model.KindInt64:
		return "int64"
	case model.KindFloat64:
		return "float64"
	case model.KindMap:
		return "map[string]any"
	case model.KindAsset:
		return "*Asset"
	case model.KindEntry:
		return "*" + t.Name
	case model.KindList:
		if t.Elem == nil {
			return "[]any"
		}
		return "[]" + g.mapToGoType(*t.Elem)
	default:
		return "any"
	}
}

func zeroValue(t model.TypeRef) string {
	switch t.Kind {
	case model.KindBool:
		return "false"
	case model.KindString:
		return `""`
	case model.KindInt64, model.KindFloat64:
		return "0"
	default:
		return "nil"
	}
}

// fieldName returns the exported struct field name for f
func fieldName(f model.Field) string {
	name := f.Accessor
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		name = "X" + name
	}
	if reserved[name] {
		name += "_"
	}
	return name
}

// checkMembers rejects models whose struct fields collide with each other
// or with a getter, e.g. fields "x" and "getX"
func checkMembers(m *model.Model) error {
	owners := make(map[string]string, len(m.Fields))
	for _, f := range m.Fields {
		name := fieldName(f)
		if other, exists := owners[name]; exists {
			return memberCollision(m, f, other, name)
		}
		owners[name] = f.ID
	}
	for _, f := range m.Fields {
		getter := "Get" + fieldName(f)
		if other, exists := owners[getter]; exists {
			return memberCollision(m, f, other, getter)
		}
	}
	return nil
}

func memberCollision(m *model.Model, f model.Field, otherID, name string) error {
	return &model.FieldError{
		ContentTypeID: m.ContentTypeID,
		FieldID:       f.ID,
		Detail:        fmt.Sprintf("collides with field %q as %q", otherID, name),
		Err:           model.ErrNameCollision,
	}
}

// PackageName derives a Go package name from an import path or a dotted
// package name, e.g. "github.com/acme/site/models" -> "models".
func PackageName(pkg string) string {
	name := path.Base(strings.ReplaceAll(pkg, ".", "/"))
	name = strings.ToLower(naming.Strip(name))
	if name == "" || !unicode.IsLetter([]rune(name)[0]) {
		return "models"
	}
	return name
}

func formatSource(src []byte) ([]byte, error) {
	res, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return res, nil
}
