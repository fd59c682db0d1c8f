package core

import (
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const watchedOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher calls onChange whenever a watched file or directory changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func(name string)
	done     chan struct{}
}

// NewWatcher watches every existing path in paths. Paths that do not exist
// are skipped.
func NewWatcher(paths []string, onChange func(name string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}

	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := fsw.Add(p); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "watch %s", p)
		}
		logrus.WithField("path", p).Debug("watching for changes")
	}

	w := &Watcher{fsw: fsw, onChange: onChange, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&watchedOps != 0 {
				w.onChange(ev.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Warn("file watcher error")
		}
	}
}

func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
