package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RowanDark/cipherpad/internal/cipher"
)

// isolate points HOME at an empty directory and moves into a fresh working
// directory so no real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	homeDir := filepath.Join(tempDir, "home")
	require.NoError(t, os.Mkdir(homeDir, 0o755))
	t.Setenv("HOME", homeDir)

	workDir := filepath.Join(tempDir, "work")
	require.NoError(t, os.Mkdir(workDir, 0o755))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	require.NoError(t, os.Chdir(workDir))

	return tempDir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().DefaultCipher, cfg.DefaultCipher)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.Empty(t, cfg.File)
	assert.Equal(t, cipher.KindNone, cfg.DefaultKind())
}

func TestLoadPrecedence(t *testing.T) {
	tempDir := isolate(t)

	writeFile(t, filepath.Join(tempDir, "home", ".cipherpad", "cipherpad.yaml"), `
default_cipher: atbash
format: yaml
`)
	writeFile(t, filepath.Join(tempDir, "work", "cipherpad.yaml"), `
default_cipher: shift
log:
  level: info
`)
	t.Setenv("CIPHERPAD_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	// The working directory file wins over the home file.
	assert.Equal(t, "caesar", cfg.DefaultCipher)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "cipherpad.yaml", filepath.Base(cfg.File))
}

func TestLoadHomeFallback(t *testing.T) {
	tempDir := isolate(t)

	writeFile(t, filepath.Join(tempDir, "home", ".cipherpad", "cipherpad.yaml"), `
default_cipher: vigenere
format: json
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, cipher.KindVigenere, cfg.DefaultKind())
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestLoadExplicitPath(t *testing.T) {
	tempDir := isolate(t)

	path := filepath.Join(tempDir, "custom.yaml")
	writeFile(t, path, `
default_cipher: binary-text-codec
log:
  json: true
`)
	t.Setenv("CIPHERPAD_FORMAT", "YAML")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "base64", cfg.DefaultCipher)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, path, cfg.File)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	tempDir := isolate(t)

	_, err := Load(filepath.Join(tempDir, "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown cipher", map[string]string{"CIPHERPAD_DEFAULT_CIPHER": "enigma"}, "default_cipher"},
		{"unknown format", map[string]string{"CIPHERPAD_FORMAT": "xml"}, "format"},
		{"unknown level", map[string]string{"CIPHERPAD_LOG_LEVEL": "chatty"}, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadInvalidFileNamesPath(t *testing.T) {
	tempDir := isolate(t)

	path := filepath.Join(tempDir, "bad.yaml")
	writeFile(t, path, "format: csv\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestRecipeBookFromConfig(t *testing.T) {
	tempDir := isolate(t)

	path := filepath.Join(tempDir, "recipes.yaml")
	writeFile(t, path, `
recipes:
  rot13-b64:
    description: ROT13 then Base64
    tags: [classic]
    steps:
      - cipher: caesar
        key: "13"
      - cipher: base64
  lemon:
    steps:
      - cipher: running-key
        key: LEMON
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	rb, err := cfg.RecipeBook()
	require.NoError(t, err)
	require.Equal(t, 2, rb.Len())

	r, ok := rb.Get("rot13-b64")
	require.True(t, ok)
	assert.Equal(t, "ROT13 then Base64", r.Description)
	assert.Equal(t, []string{"classic"}, r.Tags)

	out, err := r.Pipeline.Encode("Hello")
	require.NoError(t, err)
	assert.Equal(t, "VXJ5eWI=", out)

	lemon, ok := rb.Get("lemon")
	require.True(t, ok)
	out, err = lemon.Pipeline.Encode("ATTACKATDAWN")
	require.NoError(t, err)
	assert.Equal(t, "LXFOPVEFRNHR", out)
}

func TestRecipeBookReportsBadRecipes(t *testing.T) {
	cfg := Default()
	cfg.Recipes = map[string]RecipeConfig{
		"empty":   {},
		"unknown": {Steps: []cipher.Step{{Cipher: "enigma"}}},
	}

	_, err := cfg.RecipeBook()
	require.Error(t, err)
	assert.ErrorIs(t, err, cipher.ErrUnknownCipher)
	assert.Contains(t, err.Error(), "empty")
}
