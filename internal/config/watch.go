package config

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file at path whenever it is written and delivers
// the result on the returned channel. The directory is watched rather than
// the file so editors that save by rename are picked up. Files that fail to
// parse are logged and skipped. The channel holds only the newest config and
// is closed when ctx is done.
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}
	log.Printf("Watching for config changes in: %s", dir)

	out := make(chan *Config, 1)
	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !relevant(event, path) {
					continue
				}
				cfg, err := LoadFile(path)
				if err != nil {
					log.Printf("Ignoring config change: %v", err)
					continue
				}
				log.Printf("Config file changed: %s", filepath.Base(path))
				deliver(out, cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("File watcher error: %v", err)
			}
		}
	}()
	return out, nil
}

func relevant(event fsnotify.Event, path string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Clean(path)
}

// deliver replaces any config the consumer has not picked up yet.
func deliver(out chan *Config, cfg *Config) {
	select {
	case <-out:
	default:
	}
	out <- cfg
}
