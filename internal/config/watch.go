package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce swallows the burst of events editors produce on save.
const reloadDebounce = 100 * time.Millisecond

// StageWatcher reports edits to stage files so a running game can reload them.
// Events carries the path of the changed file.
type StageWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchStages starts watching the given stage files. Their directories are
// watched so that editors that replace files on save are handled.
func WatchStages(paths ...string) (*StageWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	sw := &StageWatcher{
		watcher: w,
		files:   files,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (sw *StageWatcher) Close() error {
	var err error
	sw.once.Do(func() {
		close(sw.closeCh)
		err = sw.watcher.Close()
	})
	return err
}

func (sw *StageWatcher) run() {
	defer close(sw.Events)
	defer close(sw.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !sw.files[name] {
				continue
			}
			now := time.Now()
			if t, ok := last[name]; ok && now.Sub(t) < reloadDebounce {
				continue
			}
			last[name] = now
			select {
			case sw.Events <- name:
			case <-sw.closeCh:
				return
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case sw.Errors <- err:
			default:
			}
		case <-sw.closeCh:
			return
		}
	}
}
