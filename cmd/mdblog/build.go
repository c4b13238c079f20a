package main

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-mdblog"
	"github.com/alnah/go-mdblog/internal/config"
)

// runBuild writes the static site, then optionally keeps rebuilding on
// source changes until ctx is cancelled.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if err := noArgs(cmdBuild, rest); err != nil {
		return err
	}

	cfg, err := loadSettings(&f.common, env)
	if err != nil {
		return err
	}
	if f.output != "" {
		cfg.Paths.Output = f.output
	}
	if f.workersSet {
		cfg.Build.Workers = f.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := buildSite(ctx, cfg, f, env); err != nil {
		return err
	}
	if !f.watch {
		return nil
	}

	return runWatch(ctx, watchDirs(cfg), cfg.Paths.Output, f.common.quiet, env, func() {
		if err := buildSite(ctx, cfg, f, env); err != nil && ctx.Err() == nil {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
		}
	})
}

// buildSite runs one full build. Templates are reloaded every time so
// watch mode picks up template edits.
func buildSite(ctx context.Context, cfg *config.Config, f *buildFlags, env *Environment) error {
	tpl, err := loadTemplates(cfg)
	if err != nil {
		return err
	}

	b := mdblog.NewBuilder(newLoader(cfg, f.skipMalformed, env.Stderr), tpl, mdblog.BuildOptions{
		OutputDir: cfg.Paths.Output,
		StaticDir: cfg.Paths.Static,
		Workers:   cfg.Build.Workers,
		Site:      siteFrom(cfg),
	})

	result, err := b.Build(ctx)
	if err != nil {
		return err
	}

	printBuildResult(result, f.common.quiet, f.common.verbose, env)
	return nil
}

// printBuildResult reports a finished build.
func printBuildResult(result *mdblog.BuildResult, quiet, verbose bool, env *Environment) {
	if quiet {
		return
	}
	if verbose {
		for _, file := range result.Files {
			fmt.Fprintf(env.Stdout, "  %s\n", file)
		}
		fmt.Fprintf(env.Stdout, "Built %d posts into %s (%v)\n", result.Posts, result.OutputDir, result.Duration.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(env.Stdout, "Built %d posts into %s\n", result.Posts, result.OutputDir)
}

// watchDirs lists the source directories whose changes trigger a rebuild.
func watchDirs(cfg *config.Config) []string {
	var dirs []string
	for _, dir := range []string{cfg.Paths.Posts, cfg.Paths.Static, cfg.Paths.Templates} {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
