package knowledge

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch reloads the corpus override file whenever it changes on disk and
// hands the fresh Base to onReload. It blocks until ctx is cancelled.
// A file that fails to parse is logged and skipped; the previous corpus
// stays in effect.
func Watch(ctx context.Context, path string, logger zerolog.Logger, onReload func(Base)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save and
	// the watch would be lost with a direct file watch.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target := filepath.Clean(path)

	logger.Info().Str("path", path).Msg("watching knowledge override file")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			b, err := FromFile(path)
			if err != nil {
				logger.Warn().Err(err).Str("path", path).Msg("knowledge reload failed, keeping previous corpus")
				continue
			}
			logger.Info().Str("path", path).Msg("knowledge corpus reloaded")
			onReload(b)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("knowledge watcher error")
		}
	}
}
