package main

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mdblog"
)

// runNew scaffolds a post from the title given as positional arguments.
func runNew(args []string, env *Environment) error {
	f, rest, err := parseNewFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	title := strings.TrimSpace(strings.Join(rest, " "))
	if title == "" {
		printNewUsage(env.Stderr)
		return ErrNoTitle
	}

	cfg, err := loadSettings(&f.common, env)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := mdblog.NewPost(mdblog.ScaffoldOptions{
		PostsDir:  cfg.Paths.Posts,
		StaticDir: cfg.Paths.Static,
		Title:     title,
		Now:       env.Now(),
	})
	if err != nil {
		return err
	}

	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Created post: %s\n", s.PostPath)
		if s.ImageDirExisted {
			fmt.Fprintf(env.Stdout, "Image folder: %s (already existed)\n", s.ImageDir)
		} else {
			fmt.Fprintf(env.Stdout, "Image folder: %s\n", s.ImageDir)
		}
	}
	return nil
}
