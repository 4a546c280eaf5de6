package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the marker file that identifies a directory as a site root.
const FileName = "_site.yml"

// Config captures the site-level configuration stored in _site.yml.
type Config struct {
	Name        string     `yaml:"name"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description,omitempty"`
	BaseURL     string     `yaml:"base_url,omitempty"`
	OutputDir   string     `yaml:"output_dir"`
	Engine      string     `yaml:"engine"`
	Theme       string     `yaml:"theme,omitempty"`
	Navbar      []NavEntry `yaml:"navbar,omitempty"`
}

// NavEntry is a single navigation link rendered into the site chrome.
type NavEntry struct {
	Text string `yaml:"text"`
	Href string `yaml:"href"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Name:      "site",
		Title:     "My Site",
		OutputDir: "public",
		Engine:    "quarto",
		Theme:     "default",
	}
}

// Load reads the YAML configuration from disk.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read site config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal site config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills fields the YAML omitted.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Name == "" {
		c.Name = defaults.Name
	}
	if c.Title == "" {
		c.Title = c.Name
	}
	if c.OutputDir == "" {
		c.OutputDir = defaults.OutputDir
	}
	if c.Engine == "" {
		c.Engine = defaults.Engine
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Marshal serializes the configuration back to YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal site config: %w", err)
	}
	return data, nil
}
