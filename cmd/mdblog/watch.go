package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-mdblog/internal/fileutil"
)

// debounceInterval groups the burst of events a single save produces.
const debounceInterval = 250 * time.Millisecond

// runWatch calls rebuild after changes under dirs until ctx is cancelled.
// Missing directories are skipped; subdirectories created later are added.
// Nothing at or below outputDir is watched, since every build rewrites it.
func runWatch(ctx context.Context, dirs []string, outputDir string, quiet bool, env *Environment, rebuild func()) error {
	ignored, err := ignoreBelow(outputDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWatch, err)
	}


	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWatch, err)
	}
	defer watcher.Close()

	var watched []string
	for _, dir := range dirs {
		if !fileutil.DirExists(dir) {
			continue
		}
		if ignored(dir) {
			continue
		}
		if err := addRecursive(watcher, dir, ignored); err != nil {
			return fmt.Errorf("%w: %v", ErrWatch, err)
		}
		watched = append(watched, dir)
	}
	if len(watched) == 0 {
		return fmt.Errorf("%w: none of %s exist", ErrWatch, strings.Join(dirs, ", "))
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "Watching %s for changes (Ctrl+C to stop)\n", strings.Join(watched, ", "))
	}

	onCreate := func(path string) {
		if !ignored(path) && fileutil.DirExists(path) {
			if err := addRecursive(watcher, path, ignored); err != nil {
				fmt.Fprintf(env.Stderr, "warning: watching %s: %v\n", path, err)
			}
		}
	}

	watchLoop(ctx, watcher.Events, watcher.Errors, debounceInterval, ignored, onCreate, rebuild, env.Stderr)
	return nil
}

// watchLoop debounces rebuild-worthy events into rebuild calls. It returns
// when ctx is cancelled or either channel is closed. rebuild runs on the
// calling goroutine, so builds never overlap. Events on paths for which
// ignored returns true are dropped; a nil ignored drops nothing.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error,
	delay time.Duration, ignored func(string) bool, onCreate func(string), rebuild func(), log io.Writer,
) {
	timer := time.NewTimer(delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if ignored != nil && ignored(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) && onCreate != nil {
				onCreate(event.Name)
			}
			if !shouldRebuild(event.Name, event.Op) {
				continue
			}
			timer.Reset(delay)

		case <-timer.C:
			rebuild()

		case err, ok := <-errs:
			if !ok {
				return
			}
			fmt.Fprintf(log, "warning: watcher: %v\n", err)
		}
	}
}

// shouldRebuild filters out editor and OS noise.
func shouldRebuild(path string, op fsnotify.Op) bool {
	if op == fsnotify.Chmod {
		return false
	}

	base := filepath.Base(path)
	switch {
	case base == ".DS_Store":
		return false
	case base == "4913": // Vim write probe
		return false
	case strings.HasSuffix(base, "~"), strings.HasSuffix(base, ".swp"):
		return false
	case strings.HasPrefix(base, ".#"): // Emacs lock
		return false
	}
	return true
}

// ignoreBelow returns a predicate matching dir and every path under it.
// An empty dir matches nothing.
func ignoreBelow(dir string) (func(string) bool, error) {
	if dir == "" {
		return func(string) bool { return false }, nil
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return func(path string) bool {
		abs, err := filepath.Abs(path)
		if err != nil {
			return false
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil {
			return false
		}
		return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
	}, nil
}

// addRecursive watches dir and every directory below it, skipping ignored
// subtrees.
func addRecursive(watcher *fsnotify.Watcher, dir string, ignored func(string) bool) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if ignored(path) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
