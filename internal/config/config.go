package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/RowanDark/cipherpad/internal/cipher"
)

const (
	// EnvPrefix prefixes every environment override, e.g. CIPHERPAD_LOG_LEVEL.
	EnvPrefix = "CIPHERPAD"

	configName = "cipherpad"
	configType = "yaml"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config captures the cipherpad configuration resolved from defaults, an
// optional file, and environment overrides.
type Config struct {
	DefaultCipher string                  `mapstructure:"default_cipher" json:"default_cipher" yaml:"default_cipher"`
	Format        string                  `mapstructure:"format" json:"format" yaml:"format"`
	Log           LogConfig               `mapstructure:"log" json:"log" yaml:"log"`
	Recipes       map[string]RecipeConfig `mapstructure:"recipes" json:"recipes,omitempty" yaml:"recipes,omitempty"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-" json:"-" yaml:"-"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `mapstructure:"level" json:"level" yaml:"level"`
	JSON  bool   `mapstructure:"json" json:"json" yaml:"json"`
}

// RecipeConfig is the file representation of a named pipeline.
type RecipeConfig struct {
	Description string        `mapstructure:"description" json:"description" yaml:"description"`
	Tags        []string      `mapstructure:"tags" json:"tags,omitempty" yaml:"tags,omitempty"`
	Steps       []cipher.Step `mapstructure:"steps" json:"steps" yaml:"steps"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultCipher: string(cipher.KindNone),
		Format:        FormatText,
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("default_cipher", def.DefaultCipher)
	v.SetDefault("format", def.Format)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.json", def.Log.JSON)
}

// Load resolves the configuration. When path is empty, cipherpad.yaml is
// looked up in the working directory and then in ~/.cipherpad; a missing
// file is not an error. An explicit path must exist.
//
// Environment variables prefixed with CIPHERPAD_ have the highest precedence.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, "."+configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		if cfg.File != "" {
			return Config{}, fmt.Errorf("config %s: %w", cfg.File, err)
		}
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.DefaultCipher = strings.TrimSpace(c.DefaultCipher)
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if k, err := cipher.ParseKind(c.DefaultCipher); err == nil {
		c.DefaultCipher = string(k)
	}
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	if _, err := cipher.ParseKind(c.DefaultCipher); err != nil {
		return fmt.Errorf("default_cipher: %w", err)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format %q not supported (want %s, %s or %s)", c.Format, FormatText, FormatJSON, FormatYAML)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// DefaultKind returns the configured default cipher.
func (c Config) DefaultKind() cipher.Kind {
	k, err := cipher.ParseKind(c.DefaultCipher)
	if err != nil {
		return cipher.KindNone
	}
	return k
}

// RecipeBook builds a recipe book from the recipes section. Recipe names are
// the map keys; viper lowercases them.
func (c Config) RecipeBook() (*cipher.RecipeBook, error) {
	names := make([]string, 0, len(c.Recipes))
	for name := range c.Recipes {
		names = append(names, name)
	}
	sort.Strings(names)

	rb := cipher.NewRecipeBook()
	var errs []error
	for _, name := range names {
		rc := c.Recipes[name]
		err := rb.Add(&cipher.Recipe{
			Name:        name,
			Description: rc.Description,
			Tags:        rc.Tags,
			Pipeline:    cipher.Pipeline{Steps: rc.Steps},
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return rb, nil
}
