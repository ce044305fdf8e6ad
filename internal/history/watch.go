package history

import (
	"github.com/fsnotify/fsnotify"
)

// Notifier receives a notice when the watched history file changes. Kept
// minimal so callers can plug in shelllog.Logger without an import cycle.
type Notifier interface {
	Notice(path string)
}

// WatchExternalChanges watches path with fsnotify and calls n.Notice
// whenever the file is written or created during this session
// (SPEC_FULL.md §3.3). Writes are not told apart by origin, so this
// process's own history -a/-w and exit flush also trigger a notice. The
// watch needs path to exist when it is set up. It deliberately does not
// merge the change into the history Store — doing so would
// perturb the persistedCount bookkeeping that spec.md §4.H and §9 pin
// down. Returns a stop function; errors setting up the watch are
// swallowed and stop is a no-op, since this is a best-effort convenience,
// never load-bearing for any builtin.
func WatchExternalChanges(path string, n Notifier) (stop func()) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return func() {}
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 && n != nil {
					n.Notice(path)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}
}
