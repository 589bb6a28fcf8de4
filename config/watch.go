package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// LevelWatcher reports edits to level files in a directory. It is only used
// when levels are loaded from disk.
type LevelWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewLevelWatcher(dirs ...string) (*LevelWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	lw := &LevelWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go lw.run()
	return lw, nil
}

func (w *LevelWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll drains pending change notifications without blocking and reports
// whether any level file changed.
func (w *LevelWatcher) Poll() (changed bool, err error) {
	for {
		select {
		case <-w.Events:
			changed = true
		case e := <-w.Errors:
			err = e
		default:
			return changed, err
		}
	}
}

func (w *LevelWatcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsLevelFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// IsLevelFile reports whether a path is a TMX map or a roster file.
func IsLevelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tmx", ".tsx", ".yaml", ".yml":
		return true
	}
	return false
}
