package fswatcher

import (
	"path/filepath"
)

// Watches a single file through its directory, so the file can be replaced (ex: editors that save by renaming) or created later.
type FileWatcher struct {
	*FsnWatcher
	filename string
	events   chan any
}

func NewFileWatcher(filename string) (*FileWatcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	w0, err := NewFsnWatcher()
	if err != nil {
		return nil, err
	}
	if err := w0.Add(filepath.Dir(abs)); err != nil {
		_ = w0.Close()
		return nil, err
	}
	fw := &FileWatcher{
		FsnWatcher: w0,
		filename:   abs,
		events:     make(chan any),
	}
	go fw.filterLoop()
	return fw, nil
}

// Receives *Event values for the file, or error values. Closed after Close().
func (fw *FileWatcher) Events() <-chan any {
	return fw.events
}

func (fw *FileWatcher) filterLoop() {
	defer close(fw.events)
	for v := range fw.FsnWatcher.Events() {
		if ev, ok := v.(*Event); ok {
			name, err := filepath.Abs(ev.Name)
			if err != nil || name != fw.filename {
				continue
			}
		}
		select {
		case fw.events <- v:
		case <-fw.done:
			return
		}
	}
}
