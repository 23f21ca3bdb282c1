// Package commands contains the CLI commands for the application
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/contentful-labs/contentful-generator/internal/codegen"
	"github.com/rs/zerolog"
)

type Flags struct {
	LogLevel string
}

type Controller struct {
	Flags  *Flags
	Logger zerolog.Logger
}

// Generate fetches the content types of a space and writes their models
func (c *Controller) Generate(ctx context.Context, opts GenerateOptions) error {
	cmd := NewGenerateCommand(c.Logger)
	return cmd.Run(ctx, opts)
}

// Languages lists the target languages that can be generated
func (c *Controller) Languages(ctx context.Context) error {
	return listLanguages(os.Stdout, codegen.DefaultRegistry)
}

func listLanguages(out io.Writer, registry *codegen.Registry) error {
	for _, lang := range registry.Languages() {
		marker := ""
		if lang == codegen.DefaultLanguage {
			marker = " (default)"
		}
		if _, err := fmt.Fprintf(out, "%s%s\n", lang, marker); err != nil {
			return err
		}
	}
	return nil
}
