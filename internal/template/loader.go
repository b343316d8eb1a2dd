package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-hclog"
)

// EnvTemplateDir overrides the custom template directory.
const EnvTemplateDir = "WALLHUE_TEMPLATE_DIR"

const embeddedRoot = "templates"

//go:embed templates/*
var defaultTemplates embed.FS

// ErrTemplateExists is returned by Dump when a custom template would be overwritten.
var ErrTemplateExists = errors.New("custom template already exists")

// ErrTemplateNotFound is returned when neither a custom nor an embedded template exists.
var ErrTemplateNotFound = errors.New("template not found")

// Loader resolves template names, preferring files in the custom directory
// over the embedded defaults.
type Loader struct {
	embedFS   fs.FS
	customDir string
	logger    hclog.Logger
}

// DefaultCustomDir returns $WALLHUE_TEMPLATE_DIR or ~/.config/wallhue/templates.
func DefaultCustomDir() string {
	if dir := os.Getenv(EnvTemplateDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ".config", "wallhue", "templates")
}

// NewLoader creates a loader over the embedded defaults and DefaultCustomDir.
func NewLoader() *Loader {
	sub, err := fs.Sub(defaultTemplates, embeddedRoot)
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return &Loader{
		embedFS:   sub,
		customDir: DefaultCustomDir(),
		logger:    hclog.NewNullLogger(),
	}
}

// WithCustomDir sets the directory searched before the embedded defaults.
func (l *Loader) WithCustomDir(dir string) *Loader {
	l.customDir = dir
	return l
}

// WithLogger sets the logger.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	l.logger = logger
	return l
}

// CustomDir returns the directory searched for overrides.
func (l *Loader) CustomDir() string {
	return l.customDir
}

// CustomPath returns where a custom copy of name would live.
func (l *Loader) CustomPath(name string) string {
	return filepath.Join(l.customDir, name)
}

// Load returns the template content and whether it came from the custom directory.
func (l *Loader) Load(name string) (content []byte, fromCustom bool, err error) {
	customPath := l.CustomPath(name)
	if content, err := os.ReadFile(customPath); err == nil { // #nosec G304 - template override directory
		l.logger.Debug("using custom template", "path", customPath)
		return content, true, nil
	}

	content, err = fs.ReadFile(l.embedFS, name)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	l.logger.Debug("using embedded template", "name", name)
	return content, false, nil
}

// List returns the names of the embedded templates, sorted.
func (l *Loader) List() ([]string, error) {
	entries, err := fs.ReadDir(l.embedFS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Info describes where a template would be loaded from.
type Info struct {
	Name           string
	EmbeddedExists bool
	CustomExists   bool
	CustomPath     string
}

// Source returns "custom", "embedded" or "missing".
func (i Info) Source() string {
	switch {
	case i.CustomExists:
		return "custom"
	case i.EmbeddedExists:
		return "embedded"
	default:
		return "missing"
	}
}

// Info reports the state of the named template.
func (l *Loader) Info(name string) Info {
	_, embeddedErr := fs.Stat(l.embedFS, name)
	_, customErr := os.Stat(l.CustomPath(name))

	return Info{
		Name:           name,
		EmbeddedExists: embeddedErr == nil,
		CustomExists:   customErr == nil,
		CustomPath:     l.CustomPath(name),
	}
}

// Dump copies an embedded template into the custom directory. Without force an
// existing custom file is left alone and ErrTemplateExists is returned.
func (l *Loader) Dump(name string, force bool) (string, error) {
	content, err := fs.ReadFile(l.embedFS, name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	outputPath := l.CustomPath(name)
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrTemplateExists, outputPath)
		}
	}

	if err := os.MkdirAll(l.customDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %q: %w", l.customDir, err)
	}
	if err := os.WriteFile(outputPath, content, 0o644); err != nil { // #nosec G306 - templates are not secret
		return "", fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}

	l.logger.Info("dumped template", "name", name, "path", outputPath)
	return outputPath, nil
}

// DumpAll dumps every embedded template. Existing files are skipped without force;
// the skips are joined into the returned error while the rest are still written.
func (l *Loader) DumpAll(force bool) ([]string, error) {
	names, err := l.List()
	if err != nil {
		return nil, err
	}

	var dumped []string
	var skipped []error
	for _, name := range names {
		path, err := l.Dump(name, force)
		if err != nil {
			if errors.Is(err, ErrTemplateExists) {
				skipped = append(skipped, err)
				continue
			}
			return dumped, err
		}
		dumped = append(dumped, path)
	}

	return dumped, errors.Join(skipped...)
}
