package source

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the watched diff file changed and should be reloaded.
type Event struct {
	Path string
}

const defaultDebounce = 100 * time.Millisecond

// Watch emits an Event whenever the given diff file is written. Rapid
// write bursts (editors, repeated git runs) are debounced into one event;
// debounce <= 0 uses the default delay. The watcher runs until the
// process exits; the channel is closed if the underlying notifier fails.
func Watch(path string, debounce time.Duration) (<-chan Event, error) {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: many editors replace the file on save, which
	// drops a watch registered on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	base := filepath.Base(path)
	events := make(chan Event, 8)

	go func() {
		defer watcher.Close()
		defer close(events)

		// The timer is owned by this goroutine and its firing is handled
		// in the same select that observes notifier shutdown, so a pending
		// debounce can never send on the closed channel.
		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(debounce)
				}
				fire = timer.C

			case <-fire:
				fire = nil
				select {
				case events <- Event{Path: path}:
				default:
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return events, nil
}
