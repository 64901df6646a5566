// Package fs provides the filesystem adapters: corpus discovery over a
// directory tree and report files written with atomic replace semantics.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/seolint"
)

// Ensure Corpus implements seolint.Corpus at compile time.
var _ seolint.Corpus = (*Corpus)(nil)

// Corpus treats each immediate subdirectory of Root that contains one of
// EntryFiles as an article keyed by the directory name.
type Corpus struct {
	Root string

	// EntryFiles are tried in order; the first regular file found wins.
	EntryFiles []string
}

// NewCorpus creates a Corpus. A nil entryFiles uses seolint.DefaultEntryFiles.
func NewCorpus(root string, entryFiles []string) *Corpus {
	if entryFiles == nil {
		entryFiles = seolint.DefaultEntryFiles
	}
	return &Corpus{Root: root, EntryFiles: entryFiles}
}

// Discover lists article sources ordered by slug. Hidden directories and
// directories without an entry file are skipped. An unreadable root is an
// error.
func (c *Corpus) Discover(ctx context.Context) ([]*seolint.Source, error) {
	entries, err := os.ReadDir(c.Root)
	if err != nil {
		return nil, fmt.Errorf("read corpus root: %w", err)
	}

	var sources []*seolint.Source
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}

		path, ok := c.entryFile(filepath.Join(c.Root, e.Name()))
		if !ok {
			continue
		}
		sources = append(sources, &seolint.Source{Slug: e.Name(), Path: path})
	}
	return sources, nil
}

func (c *Corpus) entryFile(dir string) (string, bool) {
	for _, name := range c.EntryFiles {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// Read returns the content of the source's entry file.
// Returns ENOTFOUND if the file no longer exists.
func (c *Corpus) Read(ctx context.Context, src *seolint.Source) (string, error) {
	data, err := os.ReadFile(src.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", seolint.Errorf(seolint.ENOTFOUND, "entry file %q not found", src.Path)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}
