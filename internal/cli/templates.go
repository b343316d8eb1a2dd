package cli

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/wallhue/internal/template"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage built-in and custom templates",
		Long: fmt.Sprintf(`List the built-in templates or copy them into the custom template directory
for editing. The directory is $%s, or ~/.config/wallhue/templates.`, template.EnvTemplateDir),
	}

	cmd.AddCommand(newTemplatesListCmd(root), newTemplatesDumpCmd(root))
	return cmd
}

func newTemplatesListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in templates and whether they are overridden",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := template.NewLoader().WithLogger(root.logger)
			names, err := loader.List()
			if err != nil {
				return err
			}

			table := NewTable("NAME", "SOURCE", "CUSTOM PATH")
			for _, name := range names {
				info := loader.Info(name)
				table.AddRow(name, info.Source(), info.CustomPath)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}
}

func newTemplatesDumpCmd(root *rootOptions) *cobra.Command {
	var (
		force    bool
		location string
	)

	cmd := &cobra.Command{
		Use:   "dump [names...]",
		Short: "Copy built-in templates into the custom template directory",
		Example: `  wallhue templates dump
  wallhue templates dump kitty.conf foot.ini --force
  wallhue templates dump -l ./templates`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := template.NewLoader().WithLogger(root.logger)
			if location != "" {
				loader = loader.WithCustomDir(location)
			}

			if len(args) == 0 {
				dumped, err := loader.DumpAll(force)
				reportDumped(cmd, dumped)
				return err
			}

			var errs []error
			for _, name := range args {
				path, err := loader.Dump(name, force)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				reportDumped(cmd, []string{path})
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing custom templates")
	cmd.Flags().StringVarP(&location, "location", "l", "", "directory to dump into (default: the custom template directory)")
	return cmd
}

func reportDumped(cmd *cobra.Command, paths []string) {
	for _, path := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "dumped %s\n", path)
	}
}
