package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-mdblog"
	"github.com/alnah/go-mdblog/internal/config"
	"github.com/alnah/go-mdblog/internal/pipeline"
)

// loadSettings resolves the effective configuration:
// CLI flags > MDBLOG_* env vars > config file > defaults.
// Command-specific flags are applied by the caller before Validate.
func loadSettings(f *commonFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	if !f.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	name := f.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg, err := loadConfigFile(name)
	if err != nil {
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	applyCommonFlags(f, cfg)
	return cfg, nil
}

// loadConfigFile loads the named config. Without a name, the default
// config file is optional.
func loadConfigFile(name string) (*config.Config, error) {
	if name != "" {
		return config.LoadConfig(name)
	}

	cfg, err := config.LoadConfig(config.DefaultConfigName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// applyCommonFlags overwrites path settings with the flags that were given.
func applyCommonFlags(f *commonFlags, cfg *config.Config) {
	if f.posts != "" {
		cfg.Paths.Posts = f.posts
	}
	if f.static != "" {
		cfg.Paths.Static = f.static
	}
	if f.templates != "" {
		cfg.Paths.Templates = f.templates
	}
}

// newLoader builds the post loader described by cfg.
func newLoader(cfg *config.Config, skipMalformed bool, warnings io.Writer) *mdblog.Loader {
	conv := pipeline.NewGoldmarkConverter(pipeline.GoldmarkOptions{
		RawHTML:        cfg.Markdown.RawHTML,
		HighlightStyle: cfg.Markdown.HighlightStyle,
	})

	opts := []mdblog.LoaderOption{mdblog.WithHTMLConverter(conv)}
	if skipMalformed {
		opts = append(opts, mdblog.WithSkipMalformed(warnings))
	}
	return mdblog.NewLoader(cfg.Paths.Posts, opts...)
}

// siteFrom extracts template site values from cfg.
func siteFrom(cfg *config.Config) mdblog.Site {
	return mdblog.Site{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
	}
}

// loadTemplates loads the configured template overrides on top of the
// embedded defaults.
func loadTemplates(cfg *config.Config) (*mdblog.HTMLTemplates, error) {
	tpl, err := mdblog.NewTemplatesFromDir(cfg.Paths.Templates)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	return tpl, nil
}

// displayAddr turns a listen address into a browsable URL.
func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
