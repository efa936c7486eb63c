// Package watch notices backup files dropped into an import directory so
// the TUI can offer to import them.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounce = 150 * time.Millisecond

// ImportFile is one JSON file that appeared or changed in the directory.
// Err is set when the file could not be read after it settled.
type ImportFile struct {
	Path string
	Data []byte
	Err  error
}

type Watcher struct {
	Dir   string
	Files <-chan ImportFile

	files    chan ImportFile
	done     chan struct{}
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	started  bool
	stopOnce sync.Once
}

func NewWatcher(dir string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ch := make(chan ImportFile, 16)
	return &Watcher{
		Dir:     dir,
		Files:   ch,
		files:   ch,
		done:    make(chan struct{}),
		watcher: fw,
		logger:  logger,
	}, nil
}

// Start creates the directory if needed and begins watching it. On failure
// the watcher is already released and Files is closed.
func (w *Watcher) Start() error {
	if err := w.start(); err != nil {
		w.Stop()
		return err
	}
	return nil
}

func (w *Watcher) start() error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and then the Files channel. Only the first call
// does anything.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		if err := w.watcher.Close(); err != nil {
			w.logger.Debug("closing import watcher", zap.Error(err))
		}
		if w.started {
			<-w.done
		}
		close(w.files)
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !IsImportFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending[event.Name] = time.Now()
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				delete(pending, event.Name)
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("import watcher error", zap.Error(err))
		}
	}
}

// IsImportFile accepts visible *.json files.
func IsImportFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ".json")
}

func (w *Watcher) emit(file string) {
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return
	}
	f := ImportFile{Path: file, Data: data, Err: err}
	select {
	case w.files <- f:
	default:
		w.logger.Warn("import watcher queue full, dropping file", zap.String("path", file))
	}
}
