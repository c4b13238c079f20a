package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdblog"
)

// runServe renders the blog on every request until ctx is cancelled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if err := noArgs(cmdServe, rest); err != nil {
		return err
	}

	cfg, err := loadSettings(&f.common, env)
	if err != nil {
		return err
	}
	if f.addr != "" {
		cfg.Server.Addr = f.addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tpl, err := loadTemplates(cfg)
	if err != nil {
		return err
	}

	opts := []mdblog.ServerOption{
		mdblog.WithSite(siteFrom(cfg)),
		mdblog.WithLogger(env.Stderr),
	}
	if cfg.Paths.Static != "" {
		opts = append(opts, mdblog.WithStaticDir(cfg.Paths.Static))
	}
	srv := mdblog.NewServer(newLoader(cfg, f.skipMalformed, env.Stderr), tpl, opts...)

	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Serving %s on %s (Ctrl+C to stop)\n", cfg.Paths.Posts, displayAddr(cfg.Server.Addr))
	}
	if err := srv.ListenAndServe(ctx, cfg.Server.Addr); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	if !f.common.quiet {
		fmt.Fprintln(env.Stdout, "Server stopped")
	}
	return nil
}
