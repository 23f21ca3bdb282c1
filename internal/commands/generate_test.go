package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/contentful-labs/contentful-generator/internal/codegen"
	"github.com/contentful-labs/contentful-generator/internal/config"
	"github.com/contentful-labs/contentful-generator/internal/emit"
	"github.com/contentful-labs/contentful-generator/internal/generator"
	"github.com/contentful-labs/contentful-generator/internal/schema"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test plan:
// 1. Flags alone drive a full run into an in-memory filesystem
// 2. Config file values fill unset flags, flags win
// 3. Missing options fail with --no-input and are prompted for otherwise
// 4. Unknown languages are rejected before fetching
// 5. Languages are listed with the default marked

type staticSource struct {
	token        string
	space        string
	environment  string
	contentTypes []schema.ContentType
	err          error
}

func (s *staticSource) ContentTypes(ctx context.Context, spaceID, environment string) ([]schema.ContentType, error) {
	s.space = spaceID
	s.environment = environment
	return s.contentTypes, s.err
}

func testContentTypes() []schema.ContentType {
	return []schema.ContentType{
		{ID: "post", Name: "Post", Fields: []schema.Field{
			{ID: "title", Type: schema.FieldTypeSymbol},
			{ID: "author", Type: schema.FieldTypeLink, LinkType: schema.LinkTypeEntry,
				Validations: []schema.Validation{{LinkContentType: []string{"person"}}}},
		}},
		{ID: "person", Name: "Person", Fields: []schema.Field{
			{ID: "name", Type: schema.FieldTypeSymbol},
		}},
	}
}

type testHarness struct {
	cmd    *GenerateCommand
	fs     billy.Filesystem
	source *staticSource
	out    *bytes.Buffer
}

func newTestHarness(cfg *config.Config, cfgErr error) *testHarness {
	fs := memfs.New()
	source := &staticSource{contentTypes: testContentTypes()}
	out := &bytes.Buffer{}

	h := &testHarness{fs: fs, source: source, out: out}
	h.cmd = &GenerateCommand{
		registry: codegen.DefaultRegistry,
		newSource: func(token string) generator.Source {
			source.token = token
			return source
		},
		files:   emit.NewBillyHandler(fs, zerolog.Nop()),
		printer: emit.NewPrinter(out),
		loadConfig: func(path string) (*config.Config, string, error) {
			if cfgErr != nil {
				return nil, "", cfgErr
			}
			return cfg, "", nil
		},
		logger: zerolog.Nop(),
	}
	return h
}

func (h *testHarness) read(t *testing.T, path string) string {
	t.Helper()
	content, err := util.ReadFile(h.fs, path)
	require.NoError(t, err)
	return string(content)
}

func TestGenerateCommand_Run_FlagsOnly(t *testing.T) {
	// Test: flags alone drive a Java run with default environment and folder
	h := newTestHarness(nil, config.ErrNotFound)

	err := h.cmd.Run(context.Background(), GenerateOptions{
		Space:   "space1",
		Token:   "secret",
		Package: "com.example",
		Folder:  "out",
		NoInput: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "secret", h.source.token)
	assert.Equal(t, "space1", h.source.space)
	assert.Equal(t, config.DefaultEnvironment, h.source.environment)

	post := h.read(t, "out/com/example/Post.java")
	assert.Contains(t, post, "package com.example;")
	assert.Contains(t, post, "Person author;")
	assert.Contains(t, h.read(t, "out/com/example/Person.java"), "public class Person extends Resource {")
	assert.Empty(t, h.out.String())
}

func TestGenerateCommand_Run_ConfigFile(t *testing.T) {
	// Test: config values fill unset flags and flags take precedence
	cfg := &config.Config{
		Space:       "from-config",
		Environment: "staging",
		Package:     "models",
		Folder:      "gen",
		Language:    "go",
	}
	h := newTestHarness(cfg, nil)

	err := h.cmd.Run(context.Background(), GenerateOptions{
		Space:   "from-flag",
		Token:   "secret",
		NoInput: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", h.source.space)
	assert.Equal(t, "staging", h.source.environment)
	assert.Contains(t, h.read(t, "gen/resource.go"), "package models")
	assert.Contains(t, h.read(t, "gen/post.go"), "Author *Person")
	assert.Contains(t, h.read(t, "gen/person.go"), "type Person struct")
}

func TestGenerateCommand_Run_FetchFailure(t *testing.T) {
	// Test: a failing source prints a diagnostic and is not an error
	h := newTestHarness(nil, config.ErrNotFound)
	h.source.err = errors.New("401 Unauthorized")

	err := h.cmd.Run(context.Background(), GenerateOptions{
		Space: "space1", Token: "bad", Package: "com.example", NoInput: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Failed to fetch content types, reason: 401 Unauthorized\n", h.out.String())
}

func TestGenerateCommand_Run_MissingOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        GenerateOptions
		errContains string
	}{
		{
			name:        "everything missing",
			opts:        GenerateOptions{NoInput: true},
			errContains: "space, token, package",
		},
		{
			name:        "package not needed for typescript",
			opts:        GenerateOptions{Language: "ts", NoInput: true},
			errContains: "space, token",
		},
		{
			name:        "token only",
			opts:        GenerateOptions{Space: "space1", Package: "p", NoInput: true},
			errContains: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(nil, config.ErrNotFound)

			err := h.cmd.Run(context.Background(), tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingOption)
			assert.True(t, strings.HasSuffix(err.Error(), tt.errContains), err.Error())
		})
	}
}

func TestGenerateCommand_Run_PromptsForMissing(t *testing.T) {
	// Test: missing values are asked for when input is allowed
	h := newTestHarness(nil, config.ErrNotFound)

	var asked []string
	h.cmd.prompt = func(opts *GenerateOptions, missing []string) error {
		asked = missing
		opts.Token = "prompted"
		return nil
	}

	err := h.cmd.Run(context.Background(), GenerateOptions{
		Space: "space1", Package: "com.example",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"token"}, asked)
	assert.Equal(t, "prompted", h.source.token)
}

func TestGenerateCommand_Run_PromptLeavesValuesMissing(t *testing.T) {
	h := newTestHarness(nil, config.ErrNotFound)
	h.cmd.prompt = func(opts *GenerateOptions, missing []string) error {
		return nil
	}

	err := h.cmd.Run(context.Background(), GenerateOptions{Space: "space1", Package: "p"})
	assert.ErrorIs(t, err, ErrMissingOption)
}

func TestGenerateCommand_Run_UnknownLanguage(t *testing.T) {
	h := newTestHarness(nil, config.ErrNotFound)

	err := h.cmd.Run(context.Background(), GenerateOptions{
		Space: "space1", Token: "secret", Language: "cobol", NoInput: true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language: cobol")
	assert.Empty(t, h.source.space, "source must not be queried")
}

func TestGenerateCommand_Run_ConfigError(t *testing.T) {
	h := newTestHarness(nil, errors.New("failed to parse config file: boom"))

	err := h.cmd.Run(context.Background(), GenerateOptions{NoInput: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestGenerateCommand_Run_MappingFailureCleansUp(t *testing.T) {
	// Test: a failing model leaves nothing behind on disk
	h := newTestHarness(nil, config.ErrNotFound)
	h.source.contentTypes = append(h.source.contentTypes, schema.ContentType{
		ID: "broken", Name: "Broken", Fields: []schema.Field{
			{ID: "link", Type: schema.FieldTypeLink, LinkType: schema.LinkTypeEntry},
		},
	})

	err := h.cmd.Run(context.Background(), GenerateOptions{
		Space: "space1", Token: "secret", Language: "typescript", Folder: "out", NoInput: true,
	})
	require.Error(t, err)

	for _, name := range []string{"Resource.ts", "Post.ts", "Person.ts"} {
		_, statErr := h.fs.Stat(filepath.Join("out", name))
		assert.True(t, os.IsNotExist(statErr), "%s should have been removed", name)
	}
}

func TestLoadProjectConfig_ExplicitPath(t *testing.T) {
	// Test: an explicit config path resolves the folder against its directory
	dir := t.TempDir()
	path := filepath.Join(dir, "contentful.yaml")
	require.NoError(t, os.WriteFile(path, []byte("space: space1\nfolder: gen\n"), 0644))

	cfg, cfgDir, err := loadProjectConfig(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfgDir)
	assert.Equal(t, "space1", cfg.Space)

	gc := &GenerateCommand{loadConfig: func(string) (*config.Config, string, error) {
		return cfg, cfgDir, nil
	}}
	opts, err := gc.resolveOptions(GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "gen"), opts.Folder)
}

func TestListLanguages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listLanguages(&buf, codegen.DefaultRegistry))

	assert.Equal(t, "go\njava (default)\nts\ntypescript\n", buf.String())
}

func TestGenerateCommand_promptMissing_Interactive(t *testing.T) {
	// Skip this test in CI as it requires a terminal
	if os.Getenv("INTERACTIVE_TEST") != "true" {
		t.Skip("Skipping interactive test. Set INTERACTIVE_TEST=true to run")
	}

	// Test: form accepts input via tea.WithInput
	gc := &GenerateCommand{}
	opts := &GenerateOptions{}

	input := strings.NewReader("space1\nsecret\n")
	err := gc.promptMissing(opts, []string{"space", "token"},
		tea.WithInput(input),
		tea.WithoutRenderer(),
	)
	require.NoError(t, err)
	assert.Equal(t, "space1", opts.Space)
	assert.Equal(t, "secret", opts.Token)
}
