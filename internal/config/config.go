package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// LocalConfigFile is picked up from the working directory before the XDG config
const LocalConfigFile = "mdsite.yaml"

// Config represents the mdsite configuration
type Config struct {
	ContentDir string        `yaml:"content_dir"`
	StaticDir  string        `yaml:"static_dir"`
	OutputDir  string        `yaml:"output_dir"`
	Template   string        `yaml:"template"`
	BasePath   string        `yaml:"base_path"`
	LogFile    string        `yaml:"log_file,omitempty"`
	Interval   time.Duration `yaml:"-"` // Custom YAML handling below
	Clean      bool          `yaml:"clean"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		ContentDir: "content",
		StaticDir:  "static",
		OutputDir:  "docs",
		Template:   "template.html",
		BasePath:   "/",
		Interval:   2 * time.Second,
		Clean:      true,
	}
}

// ConfigPath returns the path to the config file
// Prefers ./mdsite.yaml, falls back to the XDG config directory
// Can be overridden for testing
var ConfigPath = func() string {
	if _, err := os.Stat(LocalConfigFile); err == nil {
		return LocalConfigFile
	}
	return filepath.Join(xdg.ConfigHome, "mdsite", "config.yaml")
}

// StateFilePath returns the path to the build manifest
// Uses the platform-specific XDG cache directory
// Can be overridden for testing
var StateFilePath = func() string {
	return filepath.Join(xdg.CacheHome, "mdsite", "state.json")
}

// raw mirrors Config on disk with the interval as a duration string
type raw struct {
	ContentDir string `yaml:"content_dir"`
	StaticDir  string `yaml:"static_dir"`
	OutputDir  string `yaml:"output_dir"`
	Template   string `yaml:"template"`
	BasePath   string `yaml:"base_path"`
	LogFile    string `yaml:"log_file,omitempty"`
	Interval   string `yaml:"interval"`
	Clean      *bool  `yaml:"clean,omitempty"`
}

// Load reads configuration from ConfigPath
func Load() (*Config, error) {
	cfg, err := load(ConfigPath())
	if err != nil {
		return nil, err
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

func load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var r raw
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Unset keys keep their defaults
	if r.ContentDir != "" {
		cfg.ContentDir = r.ContentDir
	}
	if r.StaticDir != "" {
		cfg.StaticDir = r.StaticDir
	}
	if r.OutputDir != "" {
		cfg.OutputDir = r.OutputDir
	}
	if r.Template != "" {
		cfg.Template = r.Template
	}
	if r.BasePath != "" {
		cfg.BasePath = r.BasePath
	}
	cfg.LogFile = r.LogFile
	if r.Clean != nil {
		cfg.Clean = *r.Clean
	}

	if r.Interval != "" {
		interval, err := time.ParseDuration(r.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval format '%s': %w", r.Interval, err)
		}
		cfg.Interval = interval
	}

	return cfg, nil
}

// Save writes configuration to ConfigPath
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	clean := c.Clean
	r := raw{
		ContentDir: c.ContentDir,
		StaticDir:  c.StaticDir,
		OutputDir:  c.OutputDir,
		Template:   c.Template,
		BasePath:   c.BasePath,
		LogFile:    c.LogFile,
		Interval:   c.Interval.String(),
		Clean:      &clean,
	}

	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir cannot be empty")
	}
	if c.StaticDir == "" {
		return fmt.Errorf("static_dir cannot be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}
	if c.Template == "" {
		return fmt.Errorf("template cannot be empty")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("invalid base_path '%s': must start with /", c.BasePath)
	}

	return c.CheckOutputDir()
}

// CheckOutputDir rejects an output_dir that equals or contains the content
// dir, the static dir or the template. Output is wiped on clean builds.
func (c *Config) CheckOutputDir() error {
	out, err := expandPath(c.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to expand output_dir: %w", err)
	}

	inputs := []struct {
		name string
		path string
	}{
		{"content_dir", c.ContentDir},
		{"static_dir", c.StaticDir},
		{"template", c.Template},
	}

	for _, in := range inputs {
		if in.path == "" {
			continue
		}
		path, err := expandPath(in.path)
		if err != nil {
			return fmt.Errorf("failed to expand %s: %w", in.name, err)
		}
		if within(out, path) {
			return fmt.Errorf("output_dir '%s' must not contain %s '%s'", c.OutputDir, in.name, in.path)
		}
	}

	return nil
}

// within reports whether path is dir or lies below it
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	paths := []struct {
		name string
		path *string
	}{
		{"content_dir", &c.ContentDir},
		{"static_dir", &c.StaticDir},
		{"output_dir", &c.OutputDir},
		{"template", &c.Template},
		{"log_file", &c.LogFile},
	}

	for _, p := range paths {
		expanded, err := expandPath(*p.path)
		if err != nil {
			return fmt.Errorf("failed to expand %s: %w", p.name, err)
		}
		*p.path = expanded
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
