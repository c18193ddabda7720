package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// isolate keeps real config files and CIPHERPAD_* variables out of the run.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "CIPHERPAD_") {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	require.NoError(t, os.Chdir(dir))
	return dir
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestEncodeDecodeText(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"caesar encode", []string{"encode", "-c", "caesar", "-k", "1", "HAL"}, "IBM\n"},
		{"caesar decode", []string{"decode", "--cipher", "shift", "--key", "1", "IBM"}, "HAL\n"},
		{"negative key", []string{"encode", "-c", "caesar", "-k=-1", "abc"}, "zab\n"},
		{"atbash joins args", []string{"encode", "-c", "atbash", "Hello,", "World!"}, "Svool, Dliow!\n"},
		{"vigenere", []string{"encode", "-c", "vigenere", "-k", "LEMON", "ATTACKATDAWN"}, "LXFOPVEFRNHR\n"},
		{"base64 decode", []string{"decode", "-c", "base64", "SGVsbG8g5LiW55WM"}, "Hello 世界\n"},
		{"default cipher is none", []string{"encode", "as", "is"}, "as is\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", tt.args...)
			require.Equal(t, exitSuccess, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestEncodeReadsStdin(t *testing.T) {
	isolate(t)

	res := runCLI(t, "Hello\n", "encode", "-c", "base64")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "SGVsbG8=\n", res.stdout)

	res = runCLI(t, "two\nlines\n\n", "encode", "-c", "atbash")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "gdl\normvh\n\n", res.stdout, "only one trailing newline is dropped")
}

func TestTransformFailureExitsOne(t *testing.T) {
	isolate(t)

	res := runCLI(t, "", "encode", "-c", "vigenere", "Hi")
	assert.Equal(t, exitFailure, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "vigenere requires a key")

	res = runCLI(t, "", "decode", "-c", "base64", "not base64!")
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "base64 decode failed")
}

func TestUsageErrorsExitTwo(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown cipher", []string{"encode", "-c", "enigma", "x"}, `unknown cipher: "enigma"`},
		{"unknown flag", []string{"encode", "--nope"}, "unknown flag"},
		{"unknown command", []string{"scramble"}, "unknown command"},
		{"bad format", []string{"--format", "xml", "encode", "x"}, "format"},
		{"missing config", []string{"--config", "missing.yaml", "encode", "x"}, "load config"},
		{"version takes no args", []string{"version", "extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", tt.args...)
			assert.Equal(t, exitUsage, res.code)
			assert.Contains(t, res.stderr, tt.want)
		})
	}
}

func TestJSONOutput(t *testing.T) {
	isolate(t)

	res := runCLI(t, "", "--format", "json", "encode", "-c", "reciprocal", "abc")
	require.Equal(t, exitSuccess, res.code, res.stderr)

	var view map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &view))
	assert.Equal(t, map[string]string{
		"cipher":    "atbash",
		"direction": "encode",
		"output":    "zyx",
	}, view)

	res = runCLI(t, "", "--format", "json", "encode", "-c", "caesar", "-k", "three", "abc")
	require.Equal(t, exitFailure, res.code)
	view = nil
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &view))
	assert.Equal(t, "caesar", view["cipher"])
	assert.Equal(t, "caesar requires a numeric key (shift)", view["error"])
	_, hasOutput := view["output"]
	assert.False(t, hasOutput)
}

func TestJSONOutputKeepsEmptyResult(t *testing.T) {
	isolate(t)

	res := runCLI(t, "", "--format", "json", "encode", "-c", "base64")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"output": ""`)
}

func TestYAMLOutput(t *testing.T) {
	isolate(t)

	res := runCLI(t, "", "--format", "yaml", "decode", "-c", "vigenere", "-k", "LEMON", "LXFOPVEFRNHR")
	require.Equal(t, exitSuccess, res.code, res.stderr)

	var view resultView
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &view))
	assert.Equal(t, "vigenere", view.Cipher)
	assert.Equal(t, "decode", view.Direction)
	require.NotNil(t, view.Output)
	assert.Equal(t, "ATTACKATDAWN", *view.Output)
}

func TestConfigDefaultsAndEnv(t *testing.T) {
	dir := isolate(t)

	cfgPath := filepath.Join(dir, "cipherpad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("default_cipher: atbash\n"), 0o644))

	res := runCLI(t, "", "encode", "abc")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "zyx\n", res.stdout)

	t.Setenv("CIPHERPAD_FORMAT", "json")
	res = runCLI(t, "", "encode", "abc")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"output": "zyx"`)

	// Flags beat the environment.
	res = runCLI(t, "", "--format", "text", "encode", "abc")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "zyx\n", res.stdout)
}

func TestAuditLogReachesStderr(t *testing.T) {
	isolate(t)

	res := runCLI(t, "", "--log-level", "info", "--log-json", "encode", "-c", "caesar", "-k", "3", "secret words")
	require.Equal(t, exitSuccess, res.code, res.stderr)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(res.stderr)), &entry))
	assert.Equal(t, "cli", entry["component"])
	assert.Equal(t, "caesar", entry["cipher"])
	assert.NotContains(t, res.stderr, "secret")
}

func TestVersion(t *testing.T) {
	res := runCLI(t, "", "version")
	require.Equal(t, exitSuccess, res.code)
	assert.Equal(t, "cipherpad dev\n", res.stdout)
}

func TestVersionIgnoresBrokenConfig(t *testing.T) {
	isolate(t)
	t.Setenv("CIPHERPAD_FORMAT", "xml")

	res := runCLI(t, "", "version")
	assert.Equal(t, exitSuccess, res.code)
}
