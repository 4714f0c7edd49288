// Package memory holds the full current text of every open document.
package memory

import "sync"

// Store maps document identifiers to whole immutable text snapshots. A write
// swaps the entire value, so a reader can never observe a partially written
// document. Reads run concurrently; a write excludes all other access.
type Store struct {
	mu   sync.RWMutex
	docs map[string]string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{docs: make(map[string]string)}
}

// Replace stores text as the complete new content for uri, creating the
// entry if needed. There is no incremental patching.
func (s *Store) Replace(uri string, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = text
}

// Read returns the current text for uri, if the document is open.
func (s *Store) Read(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.docs[uri]
	return text, ok
}

// Remove drops the document for uri. Removing an unknown uri is a no-op.
func (s *Store) Remove(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Len reports the number of open documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
