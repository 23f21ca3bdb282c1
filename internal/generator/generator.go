// Package generator runs one model generation: fetch the content types of a
// space, resolve their names, build and render every model, and write the
// results. A failed run deletes everything it wrote.
package generator

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/contentful-labs/contentful-generator/internal/codegen"
	"github.com/contentful-labs/contentful-generator/internal/emit"
	"github.com/contentful-labs/contentful-generator/internal/model"
	"github.com/contentful-labs/contentful-generator/internal/schema"
	"github.com/rs/zerolog"
)

// Source provides the content types of a space environment
type Source interface {
	ContentTypes(ctx context.Context, spaceID, environment string) ([]schema.ContentType, error)
}

// Request describes one generation run
type Request struct {
	SpaceID     string
	Environment string
	Package     string
	Destination string
}

// Generator generates models for every content type of a space
type Generator struct {
	source  Source
	target  codegen.Generator
	files   emit.FileHandler
	printer emit.Printer
	logger  zerolog.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithPrinter sets the diagnostics printer
func WithPrinter(p emit.Printer) Option {
	return func(g *Generator) {
		g.printer = p
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a generator reading from source, rendering with target and
// writing through files
func New(source Source, target codegen.Generator, files emit.FileHandler, opts ...Option) *Generator {
	g := &Generator{
		source:  source,
		target:  target,
		files:   files,
		printer: emit.NewPrinter(nil),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs one generation. A failing source is reported through the
// printer and is not an error. Any other failure removes the files written
// so far and is returned.
func (g *Generator) Generate(ctx context.Context, req Request) error {
	contentTypes, err := g.source.ContentTypes(ctx, req.SpaceID, req.Environment)
	if err != nil {
		g.printer.Print(fmt.Sprintf("Failed to fetch content types, reason: %s", err))
		return nil
	}
	g.logger.Debug().Int("count", len(contentTypes)).Msg("fetched content types")

	r := &run{Generator: g, req: req}
	if err := r.execute(contentTypes); err != nil {
		r.cleanup()
		return fmt.Errorf("generate models: %w", err)
	}

	g.logger.Info().Int("count", len(r.written)).Str("destination", req.Destination).Msg("generated models")
	return nil
}

// run holds the state owned by a single Generate call
type run struct {
	*Generator
	req     Request
	written []string
	support bool
	// owners maps each artifact path of this run, lower-cased, to its source
	owners map[string]string
}

func (r *run) execute(contentTypes []schema.ContentType) error {
	names, skipped, err := model.ResolveNames(contentTypes)
	if err != nil {
		return err
	}
	for _, ct := range skipped {
		r.printer.Print(fmt.Sprintf("WARNING: Ignoring Content Type (id=%q), has no name.", ct.ID))
	}

	builder := model.NewBuilder(r.req.Package, names)
	for _, ct := range contentTypes {
		typeName, ok := names.Lookup(ct.ID)
		if !ok {
			continue
		}

		m, err := builder.Build(ct, typeName)
		if err != nil {
			return err
		}

		artifact, err := codegen.Render(r.target, m)
		if err != nil {
			return err
		}

		if err := r.writeSupport(); err != nil {
			return err
		}
		if err := r.write(artifact, fmt.Sprintf("content type %q", ct.ID)); err != nil {
			return err
		}
		r.logger.Debug().Str("content_type", ct.ID).Str("model", typeName).Msg("generated model")
	}
	return nil
}

// writeSupport writes the shared declarations of the target once, right
// before the first model
func (r *run) writeSupport() error {
	if r.support {
		return nil
	}
	r.support = true

	artifact, ok, err := codegen.RenderSupport(r.target, r.req.Package)
	if err != nil || !ok {
		return err
	}
	return r.write(artifact, "shared declarations")
}

// write stores a unless another artifact of this run already went to the
// same path. Paths are compared case-insensitively.
func (r *run) write(a codegen.Artifact, owner string) error {
	key := strings.ToLower(path.Clean(a.Path))
	if other, exists := r.owners[key]; exists {
		return fmt.Errorf("%w: %s and %s both map to %s",
			model.ErrNameCollision, other, owner, a.Path)
	}

	written, err := r.files.Write(r.req.Destination, a)
	if err != nil {
		return err
	}
	if r.owners == nil {
		r.owners = make(map[string]string)
	}
	r.owners[key] = owner
	r.written = append(r.written, written)
	return nil
}

// cleanup deletes every path written by this run. Delete failures are
// logged and do not replace the original error.
func (r *run) cleanup() {
	for _, p := range r.written {
		if !r.files.Delete(p) {
			r.logger.Warn().Str("path", p).Msg("failed to remove generated file")
		}
	}
	r.written = nil
}
