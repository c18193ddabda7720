package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/RowanDark/cipherpad/internal/cipher"
	"github.com/RowanDark/cipherpad/internal/config"
	"github.com/RowanDark/cipherpad/internal/logging"
)

func newTransformCmd(a *app, decode bool) *cobra.Command {
	var (
		kindFlag string
		key      string
	)

	direction := cipher.DirectionOf(decode)
	verb := cases.Title(language.English).String(string(direction))
	cmd := &cobra.Command{
		Use:   string(direction) + " [text...]",
		Short: fmt.Sprintf("%s text with a cipher", verb),
		Long: fmt.Sprintf(`%s the given text with the selected cipher.

The text is the arguments joined by spaces. Without arguments it is read
from stdin and one trailing newline is dropped.

Example:
  cipherpad %s --cipher caesar --key 3 "Hello, World!"
  echo "Hello" | cipherpad %s -c base64`, verb, direction, direction),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := a.cfg.DefaultKind()
			if cmd.Flags().Changed("cipher") {
				k, err := cipher.ParseKind(kindFlag)
				if err != nil {
					return usageError(err)
				}
				kind = k
			}

			text, err := readText(a.stdin, args)
			if err != nil {
				return failure(err)
			}

			res := cipher.TransformRequest(cipher.Request{
				Kind:   kind,
				Text:   text,
				Key:    key,
				Decode: decode,
			})
			a.emit(logging.TransformEvent(text, res))
			return a.render(res, "")
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "cipher", "c", "", "cipher to apply: "+kindList())
	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key, when the cipher needs one")
	return cmd
}

func kindList() string {
	names := make([]string, 0, len(cipher.Kinds()))
	for _, k := range cipher.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

// readText joins args, or reads stdin when there are none.
func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if stdin == nil {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := string(data)
	if strings.HasSuffix(text, "\r\n") {
		return strings.TrimSuffix(text, "\r\n"), nil
	}
	return strings.TrimSuffix(text, "\n"), nil
}

// resultView is the json/yaml shape of a transformation result.
type resultView struct {
	Cipher    string  `json:"cipher,omitempty" yaml:"cipher,omitempty"`
	Recipe    string  `json:"recipe,omitempty" yaml:"recipe,omitempty"`
	Direction string  `json:"direction" yaml:"direction"`
	Output    *string `json:"output,omitempty" yaml:"output,omitempty"`
	Error     string  `json:"error,omitempty" yaml:"error,omitempty"`
}

func newResultView(res cipher.Result, recipe string) resultView {
	view := resultView{
		Cipher:    string(res.Kind),
		Recipe:    recipe,
		Direction: string(res.Direction),
	}
	if res.Err != nil {
		view.Error = res.Err.Error()
	} else {
		out := res.Output
		view.Output = &out
	}
	return view
}

// render writes res in the configured format. A failed result becomes an
// exit status of 1.
func (a *app) render(res cipher.Result, recipe string) error {
	switch a.cfg.Format {
	case config.FormatJSON, config.FormatYAML:
		if err := writeStructured(a.stdout, a.cfg.Format, newResultView(res, recipe)); err != nil {
			return failure(err)
		}
		if !res.OK() {
			return &exitError{code: exitFailure, err: res.Err, silent: true}
		}
		return nil
	default:
		if !res.OK() {
			return failure(res.Err)
		}
		fmt.Fprintln(a.stdout, res.Output)
		return nil
	}
}

func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
