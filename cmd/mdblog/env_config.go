package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdblog/internal/config"
)

// envPrefix marks environment variables read by mdblog.
const envPrefix = "MDBLOG_"

// envConfig holds configuration from environment variables.
// Provides deploy-friendly overrides without editing the YAML file.
type envConfig struct {
	ConfigPath   string // MDBLOG_CONFIG: config file name or path
	PostsDir     string // MDBLOG_POSTS_DIR: posts directory
	StaticDir    string // MDBLOG_STATIC_DIR: static directory
	TemplatesDir string // MDBLOG_TEMPLATES_DIR: template override directory
	OutputDir    string // MDBLOG_OUTPUT_DIR: build output directory
	Addr         string // MDBLOG_ADDR: serve listen address
	Workers      int    // MDBLOG_WORKERS: parallel render workers
	workersSet   bool
}

// knownEnvVars lists valid MDBLOG_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDBLOG_CONFIG":        true,
	"MDBLOG_POSTS_DIR":     true,
	"MDBLOG_STATIC_DIR":    true,
	"MDBLOG_TEMPLATES_DIR": true,
	"MDBLOG_OUTPUT_DIR":    true,
	"MDBLOG_ADDR":          true,
	"MDBLOG_WORKERS":       true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable or negative MDBLOG_WORKERS is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("MDBLOG_CONFIG"),
		PostsDir:     os.Getenv("MDBLOG_POSTS_DIR"),
		StaticDir:    os.Getenv("MDBLOG_STATIC_DIR"),
		TemplatesDir: os.Getenv("MDBLOG_TEMPLATES_DIR"),
		OutputDir:    os.Getenv("MDBLOG_OUTPUT_DIR"),
		Addr:         os.Getenv("MDBLOG_ADDR"),
	}

	if workers := os.Getenv("MDBLOG_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w >= 0 {
			cfg.Workers = w
			cfg.workersSet = true
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDBLOG_* variables.
// Helps catch typos like MDBLOG_POST_DIR instead of MDBLOG_POSTS_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overwrites config values with the environment variables
// that are set. Flags are applied afterwards by applyFlags, giving
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.PostsDir != "" {
		cfg.Paths.Posts = env.PostsDir
	}
	if env.StaticDir != "" {
		cfg.Paths.Static = env.StaticDir
	}
	if env.TemplatesDir != "" {
		cfg.Paths.Templates = env.TemplatesDir
	}
	if env.OutputDir != "" {
		cfg.Paths.Output = env.OutputDir
	}
	if env.Addr != "" {
		cfg.Server.Addr = env.Addr
	}
	if env.workersSet {
		cfg.Build.Workers = env.Workers
	}
}
