// Package emit writes generated artifacts to a filesystem and reports
// diagnostics to the user.
package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/contentful-labs/contentful-generator/internal/codegen"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
)

const filePerm = 0o644

// FileHandler persists artifacts and removes them again on cleanup
type FileHandler interface {
	// Write stores the artifact below root and returns the path written
	Write(root string, a codegen.Artifact) (string, error)

	// Delete removes a previously written path, reporting success
	Delete(path string) bool
}

// Printer receives user facing diagnostics
type Printer interface {
	Print(message string)
}

// BillyHandler is a FileHandler backed by a go-billy filesystem
type BillyHandler struct {
	fs       billy.Filesystem
	absolute bool
	logger   zerolog.Logger
}

// NewBillyHandler creates a handler on top of the given filesystem
func NewBillyHandler(fs billy.Filesystem, logger zerolog.Logger) *BillyHandler {
	return &BillyHandler{fs: fs, logger: logger}
}

// NewOSHandler creates a handler that writes to the local disk. Relative
// roots are resolved against the working directory.
func NewOSHandler(logger zerolog.Logger) *BillyHandler {
	h := NewBillyHandler(osfs.New("/"), logger)
	h.absolute = true
	return h
}

// Write creates missing parent directories and writes the artifact
func (h *BillyHandler) Write(root string, a codegen.Artifact) (string, error) {
	path, err := h.resolve(root, a.Path)
	if err != nil {
		return "", err
	}

	if err := h.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := util.WriteFile(h.fs, path, a.Content, filePerm); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	h.logger.Debug().Str("path", path).Int("bytes", len(a.Content)).Msg("wrote artifact")
	return path, nil
}

// Delete removes path. Failures are logged and reported as false.
func (h *BillyHandler) Delete(path string) bool {
	if err := h.fs.Remove(path); err != nil {
		h.logger.Warn().Err(err).Str("path", path).Msg("failed to delete artifact")
		return false
	}
	h.logger.Debug().Str("path", path).Msg("deleted artifact")
	return true
}

func (h *BillyHandler) resolve(root, rel string) (string, error) {
	if root == "" {
		root = "."
	}
	path := filepath.Join(root, rel)
	if !h.absolute {
		return path, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// WriterPrinter prints one diagnostic per line
type WriterPrinter struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out, stdout when nil
func NewPrinter(out io.Writer) *WriterPrinter {
	if out == nil {
		out = os.Stdout
	}
	return &WriterPrinter{out: out}
}

// Print writes message followed by a newline
func (p *WriterPrinter) Print(message string) {
	fmt.Fprintln(p.out, message)
}
