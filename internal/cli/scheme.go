package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	fatihcolor "github.com/fatih/color"
	"github.com/jmylchreest/wallhue/internal/colour"
	"github.com/jmylchreest/wallhue/internal/scheme"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Output formats accepted by `wallhue scheme --format`.
const (
	formatXresources = "xresources"
	formatJSON       = "json"
	formatYAML       = "yaml"
)

const previewSlotWidth = 4

type schemeOptions struct {
	extract extractFlags
	format  string
	output  string
	preview bool
}

func newSchemeCmd(root *rootOptions) *cobra.Command {
	opts := &schemeOptions{}

	cmd := &cobra.Command{
		Use:   "scheme <image>",
		Short: "Generate a colour scheme from a wallpaper",
		Long: `Generate a 16-colour scheme with semantic roles from a wallpaper.

The image may be a file, a directory (a random image inside it is used) or an
HTTP(S) URL. The scheme is printed as X resources by default.`,
		Example: `  wallhue scheme ~/wallpaper.jpg
  wallhue scheme ~/wallpapers/ --format json -o scheme.json
  wallhue scheme ~/wallpaper.png --theme light --preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildScheme(cmd.Context(), root, opts.extract, args[0])
			if err != nil {
				return err
			}

			data, err := encodeScheme(s, opts.format)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd, root, opts.output, data); err != nil {
				return err
			}

			if opts.preview {
				out := cmd.OutOrStdout()
				if !isTerminal(out) {
					root.logger.Debug("output is not a terminal, preview swatches are uncoloured")
					restore := fatihcolor.NoColor
					fatihcolor.NoColor = true
					defer func() { fatihcolor.NoColor = restore }()
				}
				return writePreview(out, s)
			}
			return nil
		},
	}

	opts.extract.register(cmd)
	cmd.Flags().StringVar(&opts.format, "format", formatXresources, "output format (xresources, json, yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the scheme to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches for the scheme")
	return cmd
}

func encodeScheme(s *scheme.Scheme, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case formatXresources:
		var buf bytes.Buffer
		if err := s.WriteXresources(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatJSON:
		data, err := s.Snapshot().ToJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to encode scheme: %w", err)
		}
		return append(data, '\n'), nil
	case formatYAML:
		data, err := s.Snapshot().ToYAML()
		if err != nil {
			return nil, fmt.Errorf("failed to encode scheme: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format %q (valid: %s, %s, %s)", format, formatXresources, formatJSON, formatYAML)
	}
}

// writePreview prints one labelled swatch per role, then the normal and bright rows.
func writePreview(w io.Writer, s *scheme.Scheme) error {
	var b strings.Builder

	b.WriteString("\n")
	for _, role := range scheme.Roles() {
		b.WriteString(colour.SwatchWithLabel(s.Role(role), strings.ToLower(string(role)), 0))
		b.WriteString("\n")
	}

	colors := s.Colors()
	for row := 0; row < 2; row++ {
		b.WriteString("\n")
		for i := 0; i < scheme.Size/2; i++ {
			b.WriteString(colour.Swatch(colors[row*scheme.Size/2+i], previewSlotWidth))
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}
