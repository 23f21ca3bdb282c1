package codegen

import (
	"fmt"

	"github.com/contentful-labs/contentful-generator/internal/model"
)

// Generator is the interface that all language-specific model emitters must implement
type Generator interface {
	// Generate renders one model as the contents of a source file
	Generate(m *model.Model) ([]byte, error)

	// Language returns the name of the target language (e.g., "go", "java")
	Language() string

	// FileExtension returns the file extension for generated files (e.g., ".go", ".java")
	FileExtension() string

	// Path returns where the artifact for typeName lives, relative to the
	// destination root
	Path(pkg, typeName string) string
}

// SupportGenerator is implemented by generators whose models depend on shared
// declarations (asset and resource base types) that are emitted once per run
type SupportGenerator interface {
	// Support returns the relative path and contents of the shared file
	Support(pkg string) (string, []byte, error)
}

// Artifact is a rendered source file ready to be written
type Artifact struct {
	Path    string
	Content []byte
}

// Render generates the artifact for a single model
func Render(g Generator, m *model.Model) (Artifact, error) {
	content, err := g.Generate(m)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to generate %s model %s: %w", g.Language(), m.Name, err)
	}
	return Artifact{
		Path:    g.Path(m.Package, m.Name),
		Content: content,
	}, nil
}

// RenderSupport returns the shared artifact of g, if it has one
func RenderSupport(g Generator, pkg string) (Artifact, bool, error) {
	sg, ok := g.(SupportGenerator)
	if !ok {
		return Artifact{}, false, nil
	}
	path, content, err := sg.Support(pkg)
	if err != nil {
		return Artifact{}, false, fmt.Errorf("failed to generate %s support file: %w", g.Language(), err)
	}
	if path == "" {
		return Artifact{}, false, nil
	}
	return Artifact{Path: path, Content: content}, true, nil
}
