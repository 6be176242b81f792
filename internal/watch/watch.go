package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch observes a source file or directory and invokes rebuild after
// filesystem events settle.
//
// Events are debounced: a burst of writes (editors often write a file
// several times per save) triggers a single rebuild once no event has
// arrived for the debounce window. Newly created subdirectories are added
// to the watch when recursive is set. Events under outDir are ignored so
// a rebuild writing into a watched root does not trigger the next rebuild.
// Watch blocks until ctx is canceled.
func Watch(ctx context.Context, root, outDir string, recursive bool, debounce time.Duration, rebuild func()) error {
	if rebuild == nil {
		return fmt.Errorf("rebuild callback must not be nil")
	}
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	var outAbs string
	if outDir != "" {
		abs, err := filepath.Abs(outDir)
		if err != nil {
			return fmt.Errorf("resolve output dir: %w", err)
		}
		outAbs = abs
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addTargets(watcher, root, outAbs, recursive); err != nil {
		return err
	}

	// The timer starts drained; events arm it.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isHidden(event.Name) || underDir(event.Name, outAbs) {
				continue
			}
			if event.Op.Has(fsnotify.Create) && recursive {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
				event.Op.Has(fsnotify.Rename) || event.Op.Has(fsnotify.Remove) {
				timer.Reset(debounce)
			}
		case <-timer.C:
			rebuild()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-ctx.Done():
			return nil
		}
	}
}

func addTargets(watcher *fsnotify.Watcher, root, outAbs string, recursive bool) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("watch target %s: %w", root, err)
	}

	if !info.IsDir() || !recursive {
		if err := watcher.Add(root); err != nil {
			return fmt.Errorf("watch %s: %w", root, err)
		}
		return nil
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if underDir(path, outAbs) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// underDir reports whether path is dir itself or inside it.
func underDir(path, dir string) bool {
	if dir == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
