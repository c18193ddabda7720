package main

import (
	"github.com/spf13/cobra"

	"github.com/RowanDark/cipherpad/internal/tui"
)

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start the terminal UI",
		Long: `Start the terminal UI.

Keys:
  tab / shift+tab  select the cipher
  ctrl+k           move between the text area and the key field
  ctrl+e           encode
  ctrl+d           decode
  ctrl+l           clear input and output
  esc / ctrl+c     quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := tui.New(tui.Options{
				Kind:  a.cfg.DefaultKind(),
				Audit: a.audit.WithComponent("tui"),
			})
			if err := tui.Run(cmd.Context(), m, a.stdin, a.stdout); err != nil {
				return failure(err)
			}
			return nil
		},
	}
}
