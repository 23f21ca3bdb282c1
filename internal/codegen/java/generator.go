// Package java emits Vault model classes, one public class per content type
package java

import (
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/contentful-labs/contentful-generator/internal/codegen/writer"
	"github.com/contentful-labs/contentful-generator/internal/model"
	"github.com/contentful-labs/contentful-generator/internal/naming"
)

const vaultPackage = "com.contentful.vault"

var keywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true,
}

// Generator generates Vault model classes
type Generator struct{}

// NewGenerator creates a new Java code generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "java"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".java"
}

// Path returns the package directory path of the class file
func (g *Generator) Path(pkg, typeName string) string {
	dir := strings.ReplaceAll(pkg, ".", "/")
	return path.Join(dir, typeName+g.FileExtension())
}

// Generate renders the model as a class extending Resource
func (g *Generator) Generate(m *model.Model) ([]byte, error) {
	w := writer.NewWriter("  ")

	if m.Package != "" {
		w.WriteLinef("package %s;", m.Package)
		w.BlankLine()
	}

	for _, imp := range g.imports(m) {
		w.WriteLinef("import %s;", imp)
	}
	w.BlankLine()

	w.WriteLinef("@ContentType(%s)", quote(m.ContentTypeID))
	w.WriteLinef("public class %s extends Resource {", m.Name)
	w.Indent()

	w.WriteSeparated(len(m.Fields), func(i int) {
		g.generateField(w, m.Fields[i])
	})

	if len(m.Fields) > 0 {
		w.Newline()
	}

	w.WriteSeparated(len(m.Fields), func(i int) {
		g.generateGetter(w, m.Fields[i])
	})

	w.Dedent()
	w.WriteLine("}")

	return w.Bytes(), nil
}

func (g *Generator) generateField(w *writer.Writer, f model.Field) {
	name := fieldName(f)
	if name == f.ID {
		w.WriteLine("@Field")
	} else {
		w.WriteLinef("@Field(%s)", quote(f.ID))
	}
	w.WriteLinef("%s %s;", g.mapToJavaType(f.Type), name)
}

// generateGetter writes the accessor, named after the member-cased field
func (g *Generator) generateGetter(w *writer.Writer, f model.Field) {
	name := fieldName(f)
	getter := escape(naming.Recase(f.Accessor, naming.MemberCase))
	w.WriteBlock("public "+g.mapToJavaType(f.Type)+" "+getter+"() {", "}", func() {
		w.WriteLinef("return %s;", name)
	})
}

// imports returns the sorted imports the class needs. Classes of the model
// package and java.lang are never imported.
func (g *Generator) imports(m *model.Model) []string {
	set := map[string]bool{
		vaultPackage + ".ContentType": true,
		vaultPackage + ".Resource":    true,
	}
	if len(m.Fields) > 0 {
		set[vaultPackage+".Field"] = true
	}
	for _, f := range m.Fields {
		t := f.Type
		if t.Kind == model.KindList {
			set["java.util.List"] = true
			if t.Elem == nil {
				continue
			}
			t = *t.Elem
		}
		switch t.Kind {
		case model.KindMap:
			set["java.util.Map"] = true
		case model.KindAsset:
			set[vaultPackage+".Asset"] = true
		}
	}

	imports := make([]string, 0, len(set))
	for imp := range set {
		imports = append(imports, imp)
	}
	sort.Strings(imports)
	return imports
}

// mapToJavaType maps a resolved type to its Java spelling
func (g *Generator) mapToJavaType(t model.TypeRef) string {
	switch t.Kind {
	case model.KindBool:
		return "Boolean"
	case model.KindString:
		return "String"
	case model.KindInt64:
		return "Long"
	case model.KindFloat64:
		return "Double"
	case model.KindMap:
		return "Map"
	case model.KindAsset:
		return "Asset"
	case model.KindEntry:
		return t.Name
	case model.KindList:
		if t.Elem == nil || t.Elem.Kind == model.KindAny {
			return "List"
		}
		return "List<" + g.mapToJavaType(*t.Elem) + ">"
	default:
		return "Object"
	}
}

func fieldName(f model.Field) string {
	return escape(f.Name)
}

// escape appends an underscore to Java keywords
func escape(name string) string {
	if keywords[name] {
		return name + "_"
	}
	return name
}

func quote(s string) string {
	return strconv.Quote(s)
}
