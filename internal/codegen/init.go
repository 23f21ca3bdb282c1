package codegen

import (
	"github.com/contentful-labs/contentful-generator/internal/codegen/golang"
	"github.com/contentful-labs/contentful-generator/internal/codegen/java"
	"github.com/contentful-labs/contentful-generator/internal/codegen/typescript"
)

// DefaultLanguage is the target used when none is configured
const DefaultLanguage = "java"

// DefaultRegistry is the global registry instance with pre-registered generators
var DefaultRegistry = NewRegistry()

func init() {
	// Register Java (Vault) generator
	DefaultRegistry.Register("java", func() Generator {
		return java.NewGenerator()
	})

	// Register Go generator
	DefaultRegistry.Register("go", func() Generator {
		return golang.NewGenerator()
	})

	// Register TypeScript generator
	DefaultRegistry.Register("typescript", func() Generator {
		return typescript.NewGenerator()
	})

	// Register ts as an alias for typescript
	DefaultRegistry.Register("ts", func() Generator {
		return typescript.NewGenerator()
	})
}
