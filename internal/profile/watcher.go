package profile

import (
	"context"
	"io"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Notify watches the profile content directory and sends a freshly loaded
// Profile on changes. The UI treats an update like a page load: content is
// re-rendered and section offsets are recomputed.
func Notify(ctx context.Context, dir string, changes chan<- Profile) {
	if dir == "" {
		// Embedded content cannot change underneath us.
		return
	}

	watcher, errWatcher := fsnotify.NewWatcher()
	if errWatcher != nil {
		return
	}
	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("watcher close error", slog.String("err", err.Error()))
		}
	}(watcher)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-watcher.Events:
				if event.Op != fsnotify.Rename && event.Op != fsnotify.Write && event.Op != fsnotify.Create {
					continue
				}

				updated, errLoad := Load(dir)
				if errLoad != nil {
					slog.Error("Failed to reload profile", slog.String("error", errLoad.Error()))

					continue
				}
				changes <- updated
			}
		}
	}()

	if err := watcher.Add(dir); err != nil {
		slog.Error("Error adding watch for profile dir", slog.String("error", err.Error()))
	}

	<-ctx.Done()
}
