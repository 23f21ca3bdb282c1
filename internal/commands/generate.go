package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/contentful-labs/contentful-generator/internal/codegen"
	"github.com/contentful-labs/contentful-generator/internal/config"
	"github.com/contentful-labs/contentful-generator/internal/contentful"
	"github.com/contentful-labs/contentful-generator/internal/emit"
	"github.com/contentful-labs/contentful-generator/internal/generator"
	"github.com/rs/zerolog"
)

// ErrMissingOption is returned when a required option has no value and
// cannot be asked for
var ErrMissingOption = errors.New("missing required option")

// GenerateOptions are the values given on the command line. Empty values
// fall back to the project config file.
type GenerateOptions struct {
	Space       string
	Environment string
	Token       string
	Package     string
	Folder      string
	Language    string
	ConfigPath  string
	NoInput     bool
}

// SourceFactory creates the content type source for a management token
type SourceFactory func(token string) generator.Source

type GenerateCommand struct {
	registry   *codegen.Registry
	newSource  SourceFactory
	files      emit.FileHandler
	printer    emit.Printer
	loadConfig func(path string) (*config.Config, string, error)
	logger     zerolog.Logger
	// For testing: if set, called instead of showing the form
	prompt func(opts *GenerateOptions, missing []string) error
}

func NewGenerateCommand(logger zerolog.Logger) *GenerateCommand {
	return &GenerateCommand{
		registry: codegen.DefaultRegistry,
		newSource: func(token string) generator.Source {
			return contentful.NewClient(token, contentful.WithLogger(logger))
		},
		files:      emit.NewOSHandler(logger),
		printer:    emit.NewPrinter(nil),
		loadConfig: loadProjectConfig,
		logger:     logger,
	}
}

func (gc *GenerateCommand) Run(ctx context.Context, opts GenerateOptions) error {
	return gc.RunWithOptions(ctx, opts)
}

func (gc *GenerateCommand) RunWithOptions(ctx context.Context, opts GenerateOptions, teaOpts ...tea.ProgramOption) error {
	resolved, err := gc.resolveOptions(opts)
	if err != nil {
		return err
	}

	if missing := missingOptions(resolved); len(missing) > 0 {
		if resolved.NoInput {
			return fmt.Errorf("%w: %s", ErrMissingOption, strings.Join(missing, ", "))
		}
		if err := gc.promptMissing(&resolved, missing, teaOpts...); err != nil {
			return fmt.Errorf("failed to get generate options: %w", err)
		}
		if missing := missingOptions(resolved); len(missing) > 0 {
			return fmt.Errorf("%w: %s", ErrMissingOption, strings.Join(missing, ", "))
		}
	}

	target, err := gc.registry.Get(resolved.Language)
	if err != nil {
		return err
	}

	gc.logger.Debug().
		Str("space", resolved.Space).
		Str("environment", resolved.Environment).
		Str("language", target.Language()).
		Str("folder", resolved.Folder).
		Msg("generating models")

	gen := generator.New(gc.newSource(resolved.Token), target, gc.files,
		generator.WithPrinter(gc.printer),
		generator.WithLogger(gc.logger),
	)
	return gen.Generate(ctx, generator.Request{
		SpaceID:     resolved.Space,
		Environment: resolved.Environment,
		Package:     resolved.Package,
		Destination: resolved.Folder,
	})
}

// resolveOptions merges the command line over the project config file.
// A folder taken from the file is relative to the file's directory.
func (gc *GenerateCommand) resolveOptions(opts GenerateOptions) (GenerateOptions, error) {
	cfg, dir, err := gc.loadConfig(opts.ConfigPath)
	switch {
	case errors.Is(err, config.ErrNotFound):
		cfg, dir = config.Default(), ""
	case err != nil:
		return opts, err
	}

	if opts.Space == "" {
		opts.Space = cfg.Space
	}
	if opts.Environment == "" {
		opts.Environment = cfg.Environment
	}
	if opts.Package == "" {
		opts.Package = cfg.Package
	}
	if opts.Language == "" {
		opts.Language = cfg.Language
	}
	if opts.Folder == "" {
		opts.Folder = cfg.Folder
		if dir != "" && !filepath.IsAbs(opts.Folder) {
			opts.Folder = filepath.Join(dir, opts.Folder)
		}
	}
	return opts, nil
}

// missingOptions lists the required options without a value. Only Java
// needs a package; the other targets derive or ignore it.
func missingOptions(opts GenerateOptions) []string {
	var missing []string
	if opts.Space == "" {
		missing = append(missing, "space")
	}
	if opts.Token == "" {
		missing = append(missing, "token")
	}
	if opts.Package == "" && opts.Language == "java" {
		missing = append(missing, "package")
	}
	return missing
}

func (gc *GenerateCommand) promptMissing(opts *GenerateOptions, missing []string, teaOpts ...tea.ProgramOption) error {
	if gc.prompt != nil {
		return gc.prompt(opts, missing)
	}

	form := createGenerateForm(opts, missing)

	if len(teaOpts) > 0 {
		// For testing: run with provided options
		program := tea.NewProgram(form, teaOpts...)
		_, err := program.Run()
		return err
	}
	return form.Run()
}

func createGenerateForm(opts *GenerateOptions, missing []string) *huh.Form {
	var fields []huh.Field
	for _, name := range missing {
		switch name {
		case "space":
			fields = append(fields, huh.NewInput().
				Title("Space ID").
				Description("Contentful space to read content types from").
				Value(&opts.Space).
				Validate(notEmpty("space id")))
		case "token":
			fields = append(fields, huh.NewInput().
				Title("Management token").
				Description("Content Management API access token").
				EchoMode(huh.EchoModePassword).
				Value(&opts.Token).
				Validate(notEmpty("token")))
		case "package":
			fields = append(fields, huh.NewInput().
				Title("Package").
				Description("Java package of the generated classes").
				Value(&opts.Package).
				Validate(notEmpty("package")))
		}
	}
	return huh.NewForm(huh.NewGroup(fields...))
}

func notEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", what)
		}
		return nil
	}
}

// loadProjectConfig loads path when given, otherwise searches the working
// directory and its parents
func loadProjectConfig(path string) (*config.Config, string, error) {
	if path == "" {
		return config.LoadConfig()
	}
	cfg, err := config.LoadConfigFromPath(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, filepath.Dir(path), nil
}
