package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/wallhue/internal/colour"
	"github.com/jmylchreest/wallhue/internal/template"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	extract extractFlags
	output  string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <image> <template>",
		Short: "Render a template with colours from a wallpaper",
		Long: fmt.Sprintf(`Render a template, replacing each $$EXPR$$ placeholder with a colour from the
scheme generated for the wallpaper.

An expression is a role (BACKGROUND, FOREGROUND, ACCENT, GOOD, WARNING, ERROR,
INFO) or COLOR0..COLOR15, followed by any of .lighten(n), .darken(n), .alpha(n)
and a format token. Colours render as hex unless a format is given.
Formats: %s.

The template is a file path or the name of a built-in template (see
'wallhue templates list'). Custom templates in the template directory take
precedence over the built-in ones.`, strings.Join(colour.FormatTokens(), ", ")),
		Example: `  wallhue render ~/wallpaper.jpg kitty.conf -o ~/.config/kitty/colors.conf
  wallhue render ~/wallpaper.jpg ./my-theme.tmpl`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildScheme(cmd.Context(), root, opts.extract, args[0])
			if err != nil {
				return err
			}

			renderer := template.NewRenderer(s).WithLogger(root.logger.Named("render"))
			rendered, err := renderTemplate(root, renderer, args[1])
			if err != nil {
				return err
			}
			return writeOutput(cmd, root, opts.output, []byte(rendered))
		},
	}

	opts.extract.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the rendered template to a file instead of stdout")
	return cmd
}

// renderTemplate renders name as a file when one exists, otherwise as a named
// template from the loader.
func renderTemplate(root *rootOptions, renderer *template.Renderer, name string) (string, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return renderer.RenderFile(name)
	}

	content, _, err := template.NewLoader().WithLogger(root.logger.Named("templates")).Load(name)
	if err != nil {
		return "", err
	}
	return renderer.Render(name, bytes.NewReader(content))
}
