// Package docstore holds the session-scoped list of uploaded documents.
// Two UI surfaces write to it (the sidebar upload widget and the Documents
// panel widget); the Documents panel reads it. The list is append-only for
// the lifetime of one session: records are never replaced, reordered, or
// removed, and each batch lands atomically.
package docstore

import (
	"sync"

	"metrodesk/internal/portal"
)

// Store accumulates uploaded-document records. The zero value is not
// usable; construct with New. All methods are safe for concurrent use,
// and AppendBatch commutes across batches: whichever of two overlapping
// uploads completes first, both batches end up in the list exactly once,
// each contiguous.
type Store struct {
	mu   sync.Mutex
	docs []portal.UploadedDocument
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// AppendBatch appends a whole upload batch as one unit. Empty batches are
// a no-op.
func (s *Store) AppendBatch(batch []portal.UploadedDocument) {
	if len(batch) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, batch...)
}

// All returns a copy of the current list in append order.
func (s *Store) All() []portal.UploadedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]portal.UploadedDocument, len(s.docs))
	copy(out, s.docs)
	return out
}

// Len returns the number of accumulated records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}
