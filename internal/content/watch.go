package content

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports route paths whose backing markdown file changed on disk.
type Watcher struct {
	fsw     *fsnotify.Watcher
	changes chan string
	done    chan struct{}
}

// Watch starts watching the provider's content directory. It returns nil
// when the provider has no directory to watch.
func (p *Provider) Watch() (*Watcher, error) {
	if p.dir == "" {
		return nil, nil
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(p.dir); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &Watcher{
		fsw:     fsw,
		changes: make(chan string, 8),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes delivers the route path of each changed page.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Close stops the watcher and its goroutine.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(ev.Name) != ".md" {
				continue
			}
			path := PathForFile(ev.Name)
			if path == "" {
				continue
			}
			select {
			case w.changes <- path:
			case <-w.done:
				return
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
