package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RowanDark/cipherpad/internal/cipher"
	"github.com/RowanDark/cipherpad/internal/config"
)

type cipherView struct {
	Cipher      string   `json:"cipher" yaml:"cipher"`
	Name        string   `json:"name" yaml:"name"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Description string   `json:"description" yaml:"description"`
	KeyRequired bool     `json:"key_required" yaml:"key_required"`
	KeyFormat   string   `json:"key_format,omitempty" yaml:"key_format,omitempty"`
	Help        string   `json:"help" yaml:"help"`
}

func newCiphersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ciphers",
		Short: "List the available ciphers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			views := make([]cipherView, 0, len(cipher.Kinds()))
			for _, c := range cipher.List() {
				spec := c.KeySpec()
				views = append(views, cipherView{
					Cipher:      string(c.Kind()),
					Name:        c.Name(),
					Aliases:     cipher.AliasesOf(c.Kind()),
					Description: c.Description(),
					KeyRequired: spec.Required,
					KeyFormat:   spec.Format,
					Help:        c.Help(),
				})
			}

			if a.cfg.Format != config.FormatText {
				if err := writeStructured(a.stdout, a.cfg.Format, views); err != nil {
					return failure(err)
				}
				return nil
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CIPHER\tALIASES\tKEY\tDESCRIPTION")
			for _, v := range views {
				key := "-"
				if v.KeyRequired {
					key = v.KeyFormat
				}
				aliases := strings.Join(v.Aliases, ",")
				if aliases == "" {
					aliases = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Cipher, aliases, key, v.Description)
			}
			if err := tw.Flush(); err != nil {
				return failure(err)
			}
			return nil
		},
	}
}
