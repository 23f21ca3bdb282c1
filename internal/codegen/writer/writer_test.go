package writer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_BasicWriting(t *testing.T) {
	// Test: Basic write operations
	w := NewWriter("\t")

	w.Write("hello")
	w.Write(" world")

	assert.Equal(t, "hello world", w.String())
	assert.Equal(t, []byte("hello world"), w.Bytes())
}

func TestWriter_NestedIndentation(t *testing.T) {
	// Test: Multiple levels of indentation with Java style indent
	w := NewWriter("  ")

	w.WriteLine("public class Foo extends Resource {")
	w.Indent()
	w.WriteLine("public String title() {")
	w.Indent()
	w.WriteLine("return title;")
	w.Dedent()
	w.WriteLine("}")
	w.Dedent()
	w.WriteLine("}")

	expected := "public class Foo extends Resource {\n  public String title() {\n    return title;\n  }\n}\n"
	assert.Equal(t, expected, w.String())
}

func TestWriter_BlankLine(t *testing.T) {
	// Test: BlankLine prevents multiple blank lines
	w := NewWriter("\t")

	w.BlankLine() // Nothing written yet, no-op
	w.WriteLine("line1")
	w.BlankLine()
	w.WriteLine("line2")
	w.BlankLine()
	w.BlankLine()
	w.WriteLine("line3")

	lines := strings.Split(w.String(), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"line1", "", "line2", "", "line3", ""}, lines)
}

func TestWriter_WriteBlock(t *testing.T) {
	w := NewWriter("\t")

	w.WriteBlock("func (m *Post) GetTitle() string {", "}", func() {
		w.WriteLine("return m.Title")
	})

	expected := "func (m *Post) GetTitle() string {\n\treturn m.Title\n}\n"
	assert.Equal(t, expected, w.String())
}

func TestWriter_WriteSeparated(t *testing.T) {
	// Test: items are separated by exactly one blank line
	w := NewWriter("  ")
	items := []string{"String a;", "String b;", "String c;"}

	w.WriteSeparated(len(items), func(i int) {
		w.WriteLine(items[i])
	})

	assert.Equal(t, "String a;\n\nString b;\n\nString c;\n", w.String())

	// Test: no items, no output
	empty := NewWriter("  ")
	empty.WriteSeparated(0, func(int) { t.Fatal("unexpected call") })
	assert.Empty(t, empty.String())
}

func TestWriter_DocComment(t *testing.T) {
	// Test: Documentation comment with multi-line string
	w := NewWriter("\t")

	w.WriteDocComment(`Post is a blog post
  with an author`)

	assert.Equal(t, "// Post is a blog post\n// with an author\n", w.String())
}

func TestWriter_DocCommentEmpty(t *testing.T) {
	// Test: Empty doc comment produces no output
	w := NewWriter("\t")

	w.WriteDocComment("   ")
	w.WriteBlockDoc("")
	w.WriteLine("type Foo struct{}")

	assert.Equal(t, "type Foo struct{}\n", w.String())
}

func TestWriter_BlockDoc(t *testing.T) {
	w := NewWriter("  ")
	w.Indent()

	w.WriteBlockDoc("Title of the post")
	w.WriteBlockDoc("First line\n\nThird line")

	expected := "  /** Title of the post */\n" +
		"  /**\n" +
		"   * First line\n" +
		"   *\n" +
		"   * Third line\n" +
		"   */\n"
	assert.Equal(t, expected, w.String())
}

func TestWriter_IndentDedentBounds(t *testing.T) {
	// Test: Dedent doesn't go below zero
	w := NewWriter("\t")

	w.Dedent()
	w.WriteLine("a")
	w.Indent()
	w.WriteLine("b")
	w.Dedent()
	w.WriteLine("c")

	assert.Equal(t, "a\n\tb\nc\n", w.String())
}

func TestWriter_WriteFormatted(t *testing.T) {
	w := NewWriter("\t")

	w.WriteLinef("package %s", "models")
	w.Indent()
	w.Writef("// %s: %v", "value", true)
	w.Newline()

	assert.Equal(t, "package models\n\t// value: true\n", w.String())
}
