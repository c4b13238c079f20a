package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultConfigName is looked up when no --config flag is given.
const DefaultConfigName = "mdblog"

// userConfigSubdir is the directory under os.UserConfigDir searched for
// named configs.
const userConfigSubdir = "go-mdblog"

// Field length limits.
const (
	MaxSiteTitleLength   = 200
	MaxDescriptionLength = 500
	MaxWorkers           = 64
)

// Config holds all configuration for a site.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Paths    PathsConfig    `yaml:"paths"`
	Server   ServerConfig   `yaml:"server"`
	Build    BuildConfig    `yaml:"build"`
	Markdown MarkdownConfig `yaml:"markdown"`
}

// SiteConfig holds values exposed to templates.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// PathsConfig locates the site's source trees and build output.
type PathsConfig struct {
	Posts     string `yaml:"posts"`     // Markdown sources, one file per post
	Static    string `yaml:"static"`    // Asset tree served under /static/
	Templates string `yaml:"templates"` // Template overrides (empty = embedded only)
	Output    string `yaml:"output"`    // Batch build target, wiped on every build
}

// ServerConfig configures live mode.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// BuildConfig configures batch mode.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// MarkdownConfig configures Markdown rendering.
type MarkdownConfig struct {
	RawHTML        bool   `yaml:"rawHTML"`
	HighlightStyle string `yaml:"highlightStyle"`
}

// DefaultConfig returns the conventional site layout.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{Title: "My Blog"},
		Paths: PathsConfig{
			Posts:  "posts",
			Static: "static",
			Output: "_site",
		},
		Server:   ServerConfig{Addr: ":8000"},
		Build:    BuildConfig{Workers: 0},
		Markdown: MarkdownConfig{RawHTML: true, HighlightStyle: "monokai"},
	}
}

// Validate checks field values. Called automatically by LoadConfig, but
// available for configs assembled from flags and environment variables.
func (c *Config) Validate() error {
	if err := validateFieldLength("site.title", c.Site.Title, MaxSiteTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.description", c.Site.Description, MaxDescriptionLength); err != nil {
		return err
	}

	if strings.TrimSpace(c.Paths.Posts) == "" {
		return fmt.Errorf("%w: paths.posts: required", ErrInvalidValue)
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		return fmt.Errorf("%w: paths.output: required", ErrInvalidValue)
	}

	// The output directory is removed on every build; refuse layouts where
	// that would destroy sources.
	output := filepath.Clean(c.Paths.Output)
	if output == "." || output == string(filepath.Separator) {
		return fmt.Errorf("%w: paths.output: %q would wipe the working directory", ErrInvalidValue, c.Paths.Output)
	}
	output = absPath(output)
	for field, dir := range map[string]string{
		"paths.posts":     c.Paths.Posts,
		"paths.static":    c.Paths.Static,
		"paths.templates": c.Paths.Templates,
	} {
		if dir != "" && isSameOrParent(output, absPath(dir)) {
			return fmt.Errorf("%w: paths.output: %q contains %s %q", ErrInvalidValue, c.Paths.Output, field, dir)
		}
	}
	// The static tree is copied into the output.
	if c.Paths.Static != "" && isSameOrParent(absPath(c.Paths.Static), output) {
		return fmt.Errorf("%w: paths.output: %q is inside paths.static %q", ErrInvalidValue, c.Paths.Output, c.Paths.Static)
	}

	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr: required", ErrInvalidValue)
	}
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	return nil
}

// absPath makes p absolute, falling back to its cleaned form.
func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

// isSameOrParent reports whether dir equals parent or lies beneath it.
func isSameOrParent(parent, dir string) bool {
	if parent == dir {
		return true
	}
	rel, err := filepath.Rel(parent, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name, on top
// of DefaultConfig: keys missing from the file keep their defaults.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = ResolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, {UserConfigDir}/go-mdblog/
func ResolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, userConfigSubdir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
