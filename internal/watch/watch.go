// Package watch re-scans FASTA inputs when they change on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval swallows the burst of events editors fire per save.
const debounceInterval = 200 * time.Millisecond

// Watch monitors the given FASTA files and directories until ctx is
// done, invoking onChange with the path of each changed input.
// File arguments are watched via their parent directory so that
// save-by-rename editors are still seen. onChange runs on the watch
// goroutine; keep it short or hand off.
func Watch(ctx context.Context, paths []string, onChange func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		if info.IsDir() {
			dirs[abs] = true
			if err := w.Add(abs); err != nil {
				return fmt.Errorf("watch %s: %w", p, err)
			}
			continue
		}
		files[abs] = true
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
	}

	lastEvent := make(map[string]time.Time)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path := event.Name
			if !files[path] && !(dirs[filepath.Dir(path)] && isFastaPath(path)) {
				continue
			}
			now := time.Now()
			if last, seen := lastEvent[path]; seen && now.Sub(last) < debounceInterval {
				continue
			}
			lastEvent[path] = now
			onChange(path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

func isFastaPath(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, ".gz")
	return strings.HasSuffix(name, ".fa") || strings.HasSuffix(name, ".fasta") || strings.HasSuffix(name, ".fna")
}
