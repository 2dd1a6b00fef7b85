// Package watcher monitors the config file and notifies the TUI to reload.
//
// Editors rarely write a file in place: most write a temporary file and
// rename it over the original, which drops a watch on the file itself. The
// watcher therefore watches the parent directory and filters events down to
// the one file name.
package watcher

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent when the watched file has settled after a change.
type Event struct{}

// Watch monitors path and sends an Event on the returned channel once a
// burst of changes has been quiet for the debounce window.
//
// Call the returned stop function to tear down the watcher.
func Watch(path string, debounce time.Duration) (<-chan Event, func(), error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, nil, fmt.Errorf("watch %s: %w", path, err)
	}

	ch := make(chan Event, 1)
	done := make(chan struct{})

	// jitterRange spreads reloads of several segbar instances sharing one
	// config file.
	jitterRange := debounce / 2

	go func() {
		defer close(ch)
		var timer *time.Timer

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !relevant(abs, ev) {
					continue
				}
				d := debounce
				if jitterRange > 0 {
					d += time.Duration(rand.Int63n(int64(jitterRange)))
				}
				if timer == nil {
					timer = time.NewTimer(d)
				} else {
					timer.Reset(d)
				}
			case <-timerChan(timer):
				timer = nil
				select {
				case ch <- Event{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		_ = w.Close()
	}

	return ch, stop, nil
}

// timerChan returns the timer's channel, or a nil channel if timer is nil.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// relevant reports whether ev touches the watched file.
func relevant(path string, ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != path || shouldIgnore(ev.Name) {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// shouldIgnore returns true for editor scratch files.
func shouldIgnore(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swo") ||
		strings.HasSuffix(base, "~") || strings.HasPrefix(base, ".#")
}
