package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RowanDark/cipherpad/internal/cipher"
	"github.com/RowanDark/cipherpad/internal/config"
	"github.com/RowanDark/cipherpad/internal/logging"
)

func newRecipeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Run named cipher pipelines from the config file",
		Long: `Recipes are named pipelines declared under "recipes" in the config file:

  recipes:
    rot13-b64:
      description: ROT13 then Base64
      steps:
        - cipher: caesar
          key: "13"
        - cipher: base64

Recipe names are matched without regard to case. Encoding runs the steps
in order; decoding runs them in reverse.`,
	}
	cmd.AddCommand(newRecipeListCmd(a))
	cmd.AddCommand(newRecipeRunCmd(a, false))
	cmd.AddCommand(newRecipeRunCmd(a, true))
	return cmd
}

type recipeView struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string      `json:"tags,omitempty" yaml:"tags,omitempty"`
	Steps       []cipher.Step `json:"steps" yaml:"steps"`
}

func newRecipeListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes := a.recipes.List()
			views := make([]recipeView, 0, len(recipes))
			for _, r := range recipes {
				views = append(views, recipeView{
					Name:        r.Name,
					Description: r.Description,
					Tags:        r.Tags,
					Steps:       r.Pipeline.Steps,
				})
			}

			if a.cfg.Format != config.FormatText {
				if err := writeStructured(a.stdout, a.cfg.Format, views); err != nil {
					return failure(err)
				}
				return nil
			}

			if len(views) == 0 {
				fmt.Fprintln(a.stdout, "no recipes configured")
				return nil
			}
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSTEPS\tDESCRIPTION")
			for _, v := range views {
				steps := make([]string, 0, len(v.Steps))
				for _, s := range v.Steps {
					steps = append(steps, string(s.Cipher))
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Name, strings.Join(steps, " > "), v.Description)
			}
			if err := tw.Flush(); err != nil {
				return failure(err)
			}
			return nil
		},
	}
}

func newRecipeRunCmd(a *app, decode bool) *cobra.Command {
	direction := cipher.DirectionOf(decode)
	return &cobra.Command{
		Use:   string(direction) + " <name> [text...]",
		Short: fmt.Sprintf("Run a recipe in the %s direction", direction),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			recipe, ok := a.recipes.Get(name)
			if !ok {
				return usageError(fmt.Errorf("unknown recipe %q", name))
			}

			text, err := readText(a.stdin, args[1:])
			if err != nil {
				return failure(err)
			}

			out, err := recipe.Pipeline.Run(text, decode)
			res := cipher.Result{Direction: direction, Output: out, Err: err}
			if err != nil {
				res.Output = ""
			}

			event := logging.TransformEvent(text, res)
			event.EventType = logging.EventRecipe
			event.Recipe = recipe.Name
			a.emit(event)

			return a.render(res, recipe.Name)
		},
	}
}
