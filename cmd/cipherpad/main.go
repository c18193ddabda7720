// Package main provides the cipherpad CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RowanDark/cipherpad/internal/cipher"
	"github.com/RowanDark/cipherpad/internal/config"
	"github.com/RowanDark/cipherpad/internal/logging"
)

const productName = "cipherpad"

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

// exitError carries the process exit code for an error returned by a command.
// silent errors have already been reported on stdout.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

func failure(err error) error {
	return &exitError{code: exitFailure, err: err}
}

// app holds the state shared by every command of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logJSON    bool
	format     string

	cfg     config.Config
	logger  *zap.Logger
	audit   *logging.AuditLogger
	recipes *cipher.RecipeBook
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if !ee.silent {
			fmt.Fprintln(stderr, ee.err)
		}
		return ee.code
	}
	// Flag and argument errors raised by cobra itself.
	fmt.Fprintf(stderr, "%s: %v\n", productName, err)
	fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.CommandPath())
	return exitUsage
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   productName,
		Short: "cipherpad encodes and decodes text with classical ciphers",
		Long: `cipherpad transforms text with a small set of classical ciphers:
Caesar (shift), Atbash (reciprocal), Vigenere (running-key) and Base64
(binary-text-codec). "none" passes text through unchanged.

Run "cipherpad interactive" for the terminal UI.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: ./cipherpad.yaml or ~/.cipherpad/cipherpad.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")
	flags.StringVar(&a.format, "format", "", "output format: text, json, yaml")

	root.AddCommand(newTransformCmd(a, false))
	root.AddCommand(newTransformCmd(a, true))
	root.AddCommand(newCiphersCmd(a))
	root.AddCommand(newRecipeCmd(a))
	root.AddCommand(newInteractiveCmd(a))
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// setup resolves configuration, applies flag overrides and builds the
// loggers and recipe book.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return usageError(fmt.Errorf("load config: %w", err))
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		JSON:   cfg.Log.JSON,
		Writer: a.stderr,
	})
	if err != nil {
		return usageError(err)
	}

	recipes, err := cfg.RecipeBook()
	if err != nil {
		return usageError(fmt.Errorf("load recipes: %w", err))
	}

	a.cfg = cfg
	a.logger = logger
	a.audit = logging.NewAuditLogger("cli", logger)
	a.recipes = recipes

	logger.Debug("configuration resolved",
		zap.String("file", cfg.File),
		zap.String("default_cipher", cfg.DefaultCipher),
		zap.String("format", cfg.Format),
		zap.Int("recipes", recipes.Len()))
	return nil
}

// emit records an audit event. Audit failures are logged, never fatal.
func (a *app) emit(event logging.AuditEvent) {
	if err := a.audit.Emit(event); err != nil {
		a.logger.Error("audit emit failed", zap.Error(err))
	}
}
