package calc

import (
	"sort"
	"sync"
)

// Workspace holds the open calculator documents, keyed by URI.
type Workspace struct {
	mu   sync.RWMutex
	docs map[string]string
}

func NewWorkspace() *Workspace {
	return &Workspace{
		docs: make(map[string]string),
	}
}

// Update replaces the text of a document.
func (w *Workspace) Update(uri, text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.docs[uri] = text
}

// Remove forgets a document.
func (w *Workspace) Remove(uri string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.docs, uri)
}

// Text returns the current text of a document.
func (w *Workspace) Text(uri string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	text, ok := w.docs[uri]
	return text, ok
}

// URIs returns the URIs of all documents in sorted order.
func (w *Workspace) URIs() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	uris := make([]string, 0, len(w.docs))
	for uri := range w.docs {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	return uris
}

// Diagnostics checks a document. Unknown documents have no diagnostics.
func (w *Workspace) Diagnostics(uri string) []Diagnostic {
	text, ok := w.Text(uri)
	if !ok {
		return nil
	}
	return Check(uri, text)
}
