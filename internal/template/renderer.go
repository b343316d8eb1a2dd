// Package template renders configuration templates by replacing $$EXPR$$
// placeholders with colours from a generated scheme, and loads templates with
// support for user overrides.
package template

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Delimiter opens and closes a placeholder. It cannot be escaped.
const Delimiter = "$$"

// ErrUnterminatedPlaceholder is reported when a line ends inside a placeholder.
var ErrUnterminatedPlaceholder = errors.New("placeholder missing closing '$$'")

// Resolver turns a colour expression into its text form.
type Resolver interface {
	ResolveText(expr string) (string, error)
}

// RenderError locates a rendering failure.
type RenderError struct {
	Path string
	Line int    // 1-based
	Expr string // empty for unterminated placeholders
	Err  error
}

func (e *RenderError) Error() string {
	if errors.Is(e.Err, ErrUnterminatedPlaceholder) {
		return fmt.Sprintf("%v in file `%s` at line %d", e.Err, e.Path, e.Line)
	}
	return fmt.Sprintf("failed to resolve colour `%s` in file `%s` at line %d: %v", e.Expr, e.Path, e.Line, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Renderer substitutes placeholders line by line. A placeholder renders as hex
// unless its expression selects a format, so $$ACCENT$$ yields "#7aa2f7" and
// $$ACCENT.rgb$$ yields "rgb(122, 162, 247)".
type Renderer struct {
	resolver Resolver
	logger   hclog.Logger
}

// NewRenderer creates a Renderer that resolves placeholders with r.
func NewRenderer(r Resolver) *Renderer {
	return &Renderer{resolver: r, logger: hclog.NewNullLogger()}
}

// WithLogger sets the logger used for per-file debug output.
func (r *Renderer) WithLogger(logger hclog.Logger) *Renderer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	r.logger = logger
	return r
}

// RenderFile reads and renders the template at path.
func (r *Renderer) RenderFile(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 - User-specified template path, intended to be read
	if err != nil {
		return "", fmt.Errorf("failed to open template: %w", err)
	}
	defer f.Close()

	return r.Render(path, f)
}

// Render renders the template read from in; name is used in error messages.
// Every output line ends in a newline. On error nothing is returned.
func (r *Renderer) Render(name string, in io.Reader) (string, error) {
	var out strings.Builder
	reader := bufio.NewReader(in)

	lineNumber := 0
	placeholders := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return "", fmt.Errorf("failed to read template %s: %w", name, readErr)
		}
		if line == "" && readErr == io.EOF {
			break
		}
		lineNumber++

		rendered, n, err := r.renderLine(strings.TrimSuffix(line, "\n"))
		if err != nil {
			err.Path = name
			err.Line = lineNumber
			return "", err
		}
		placeholders += n
		out.WriteString(rendered)
		out.WriteByte('\n')

		if readErr == io.EOF {
			break
		}
	}

	r.logger.Debug("rendered template", "name", name, "lines", lineNumber, "placeholders", placeholders)
	return out.String(), nil
}

// renderLine scans one line, toggling on each Delimiter. It returns the number of
// placeholders replaced.
func (r *Renderer) renderLine(line string) (string, int, *RenderError) {
	var out, segment strings.Builder
	inPlaceholder := false
	count := 0

	for i := 0; i < len(line); i++ {
		if !strings.HasPrefix(line[i:], Delimiter) {
			segment.WriteByte(line[i])
			continue
		}

		if inPlaceholder {
			expr := segment.String()
			text, err := r.resolver.ResolveText(expr)
			if err != nil {
				return "", count, &RenderError{Expr: expr, Err: err}
			}
			out.WriteString(text)
			count++
		} else {
			out.WriteString(segment.String())
		}
		inPlaceholder = !inPlaceholder
		segment.Reset()
		i += len(Delimiter) - 1
	}

	if inPlaceholder {
		return "", count, &RenderError{Err: ErrUnterminatedPlaceholder}
	}
	out.WriteString(segment.String())
	return out.String(), count, nil
}
