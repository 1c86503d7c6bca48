package fswatcher

import (
	"path/filepath"
	"sync"

	fsnotify "github.com/fsnotify/fsnotify"
)

type FsnWatcher struct {
	w      *fsnotify.Watcher
	events chan any
	done   chan struct{}
	once   sync.Once

	mu     sync.Mutex
	opMask Op
}

func NewFsnWatcher() (*FsnWatcher, error) {
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &FsnWatcher{
		w:      w0,
		events: make(chan any),
		done:   make(chan struct{}),
		opMask: AllOps,
	}
	go w.eventLoop()
	return w, nil
}

//----------

func (w *FsnWatcher) Close() error {
	w.once.Do(func() { close(w.done) })
	return w.w.Close()
}

func (w *FsnWatcher) SetOpMask(op Op) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.opMask = op
}

func (w *FsnWatcher) OpMask() Op {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.opMask
}

//----------

func (w *FsnWatcher) Add(name string) error {
	return w.w.Add(name)
}
func (w *FsnWatcher) Remove(name string) error {
	return w.w.Remove(name)
}

//----------

// Receives *Event or error values. Closed after Close().
func (w *FsnWatcher) Events() <-chan any {
	return w.events
}

//----------

func (w *FsnWatcher) eventLoop() {
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			if !w.send(err) {
				return
			}
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			op := convertOp(ev.Op) & w.OpMask()
			if op == 0 {
				continue
			}
			if !w.send(&Event{Op: op, Name: filepath.Clean(ev.Name)}) {
				return
			}
		}
	}
}

func (w *FsnWatcher) send(v any) bool {
	select {
	case w.events <- v:
		return true
	case <-w.done:
		return false
	}
}

func convertOp(fop fsnotify.Op) Op {
	var op Op
	if fop.Has(fsnotify.Create) {
		op.Add(Create)
	}
	if fop.Has(fsnotify.Write) {
		op.Add(Modify)
	}
	if fop.Has(fsnotify.Remove) {
		op.Add(Remove)
	}
	if fop.Has(fsnotify.Rename) {
		op.Add(Rename)
	}
	if fop.Has(fsnotify.Chmod) {
		op.Add(Attrib)
	}
	return op
}
