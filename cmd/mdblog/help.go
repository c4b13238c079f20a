package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblog <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve      Render posts on every request")
	fmt.Fprintln(w, "  build      Write the blog as static files")
	fmt.Fprintln(w, "  new        Create a new post")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdblog help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: mdblog)")
	fmt.Fprintln(w, "      --posts <dir>         Posts directory")
	fmt.Fprintln(w, "      --static <dir>        Static directory")
	fmt.Fprintln(w, "      --templates <dir>     Template override directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblog serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the blog, reading posts from disk on every request.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "  -a, --addr <addr>         Listen address (default: :8000)")
	fmt.Fprintln(w, "      --skip-malformed      Skip posts with malformed front-matter")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblog build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write index.html, blog/{slug}.html and static/ to the output directory.")
	fmt.Fprintln(w, "The output directory is removed and recreated on every build.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: _site)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel render workers (0 = auto)")
	fmt.Fprintln(w, "      --watch               Rebuild when posts, static or templates change")
	fmt.Fprintln(w, "      --skip-malformed      Skip posts with malformed front-matter")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printNewUsage prints usage for the new command.
func printNewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblog new <title> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create posts/{slug}.md and static/images/{slug}/.")
	fmt.Fprintln(w, "An existing post is never overwritten.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdServe:
		printServeUsage(env.Stdout)
	case cmdBuild:
		printBuildUsage(env.Stdout)
	case cmdNew:
		printNewUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: mdblog version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: mdblog help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
