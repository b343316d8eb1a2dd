// Package cli provides the command-line interface for wallhue.
package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/wallhue/internal/image"
	"github.com/jmylchreest/wallhue/internal/version"
	"github.com/spf13/cobra"
)

// Environment variables that provide flag defaults.
const (
	EnvTheme     = "WALLHUE_THEME"
	EnvAlgorithm = "WALLHUE_ALGORITHM"
)

// rootOptions carries the persistent flags and the logger built from them.
type rootOptions struct {
	theme   string
	verbose bool
	quiet   bool

	logger hclog.Logger
}

// NewRootCmd builds the wallhue command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: hclog.NewNullLogger()}

	cmd := &cobra.Command{
		Use:   "wallhue",
		Short: "Terminal colour schemes from wallpapers",
		Long: `wallhue extracts the dominant colours of a wallpaper, synthesises a readable
16-colour terminal scheme with semantic roles from them, and renders configuration
templates containing $$EXPR$$ placeholders.`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := image.ParseThemeType(opts.theme); err != nil {
				return err
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringVarP(&opts.theme, "theme", "t", envOr(EnvTheme, image.ThemeAuto.String()), "theme type (auto, dark, light)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(
		newSchemeCmd(opts),
		newRenderCmd(opts),
		newTemplatesCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Warn
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   version.Name,
		Output: w,
		Level:  level,
		Color:  hclog.AutoColor,
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
