package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	posts     string
	static    string
	templates string
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common        commonFlags
	addr          string
	skipMalformed bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common        commonFlags
	output        string
	workers       int
	workersSet    bool
	watch         bool
	skipMalformed bool
}

// newFlags holds all flags for the new command.
type newFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.StringVar(&f.posts, "posts", "", "posts directory")
	fs.StringVar(&f.static, "static", "", "static directory")
	fs.StringVar(&f.templates, "templates", "", "template override directory")
}

// newFlagSet creates a FlagSet that reports errors and usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseArgs runs fs.Parse, tagging parse failures as usage errors.
func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

// noArgs rejects positional arguments for commands that take none.
func noArgs(cmd string, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s takes no arguments, got %q", ErrUsage, cmd, strings.Join(args, " "))
	}
	return nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string, w io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := newFlagSet(cmdServe, w, printServeUsage)

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (e.g., :8000)")
	fs.BoolVar(&f.skipMalformed, "skip-malformed", false, "skip posts with malformed front-matter")
	addCommonFlags(fs, &f.common)

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet(cmdBuild, w, printBuildUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel render workers (0 = auto)")
	fs.BoolVar(&f.watch, "watch", false, "rebuild when sources change")
	fs.BoolVar(&f.skipMalformed, "skip-malformed", false, "skip posts with malformed front-matter")
	addCommonFlags(fs, &f.common)

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	f.workersSet = fs.Changed("workers")
	return f, fs.Args(), nil
}

// parseNewFlags parses new command flags and returns the title words.
func parseNewFlags(args []string, w io.Writer) (*newFlags, []string, error) {
	f := &newFlags{}
	fs := newFlagSet(cmdNew, w, printNewUsage)
	addCommonFlags(fs, &f.common)

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
