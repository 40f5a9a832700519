package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ThemeFileEnv names a YAML file whose theme section overrides the config
const ThemeFileEnv = "DRAGBOARD_THEME_FILE"

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings  `yaml:"key_mappings"`
	ColorScheme ColorScheme  `yaml:"theme"`
	Board       BoardOptions `yaml:"board"`
}

// BoardOptions controls how lanes and cards are drawn
type BoardOptions struct {
	// MarkdownDescriptions renders card descriptions as markdown; nil means true
	MarkdownDescriptions *bool `yaml:"markdown_descriptions"`
	// CardHeight is the total height of a card in rows, borders included
	CardHeight int `yaml:"card_height"`
}

// Markdown reports whether descriptions are rendered as markdown
func (b BoardOptions) Markdown() bool {
	return b.MarkdownDescriptions == nil || *b.MarkdownDescriptions
}

// MinCardHeight fits the border, title and people rows
const MinCardHeight = 4

// DefaultCardHeight leaves two rows for the description
const DefaultCardHeight = 6

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	loadThemeFile(cfg)
	return cfg
}

// loadThemeFile merges the theme from DRAGBOARD_THEME_FILE, if set and readable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load reads the config at path, or at the default location when path is
// empty. A missing file yields the default config; a malformed one is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	config.applyDefaults()
	loadThemeFile(&config)

	return &config, nil
}

// Save writes the config to path, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultPath returns the config file location, honoring XDG_CONFIG_HOME
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "dragboard", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "dragboard", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.Board.MarkdownDescriptions == nil {
		markdown := true
		c.Board.MarkdownDescriptions = &markdown
	}
	if c.Board.CardHeight == 0 {
		c.Board.CardHeight = DefaultCardHeight
	}
	if c.Board.CardHeight < MinCardHeight {
		c.Board.CardHeight = MinCardHeight
	}
}
