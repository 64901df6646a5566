// Package fsnotify watches a corpus directory for changes.
package fsnotify

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/seolint"
)

// Ensure Watcher implements seolint.Watcher at compile time.
var _ seolint.Watcher = (*Watcher)(nil)

// DefaultDebounce is the quiet period before a batch of events is reported.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches the corpus root and its article directories. Bursts of
// events are coalesced into a single callback once no event arrived for
// Debounce.
type Watcher struct {
	Debounce time.Duration

	// Ignore lists paths whose events are dropped, such as an output
	// directory inside the corpus.
	Ignore []string
}

// NewWatcher creates a Watcher with the default debounce.
func NewWatcher(ignore ...string) *Watcher {
	return &Watcher{Debounce: DefaultDebounce, Ignore: ignore}
}

// Watch blocks until ctx is done, calling onChange after each settled batch
// of changes. Hidden files and permission changes are ignored.
func (w *Watcher) Watch(ctx context.Context, root string, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(root); err != nil {
		return err
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		path := filepath.Join(root, e.Name())
		if e.IsDir() && !w.skip(path) {
			if err := fw.Add(path); err != nil {
				return err
			}
		}
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod || w.skip(event.Name) {
				continue
			}
			// New article directories are watched too.
			if event.Has(fsnotify.Create) && filepath.Dir(event.Name) == filepath.Clean(root) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = fw.Add(event.Name)
				}
			}
			timer.Reset(debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return err

		case <-timer.C:
			onChange()
		}
	}
}

func (w *Watcher) skip(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return true
	}
	for _, ignored := range w.Ignore {
		ignored = filepath.Clean(ignored)
		if path == ignored || strings.HasPrefix(path, ignored+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
