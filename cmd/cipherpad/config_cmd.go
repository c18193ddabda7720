package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RowanDark/cipherpad/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "print",
		Short: "Print the configuration after files, environment and flags are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.File != "" {
				fmt.Fprintf(a.stderr, "# loaded from %s\n", a.cfg.File)
			}
			format := a.cfg.Format
			if format == config.FormatText {
				format = config.FormatYAML
			}
			if err := writeStructured(a.stdout, format, a.cfg); err != nil {
				return failure(err)
			}
			return nil
		},
	})
	return cmd
}
