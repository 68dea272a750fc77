package docstore

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"metrodesk/internal/portal"
)

func batch(prefix string, n int) []portal.UploadedDocument {
	docs := make([]portal.UploadedDocument, n)
	for i := range docs {
		docs[i] = portal.UploadedDocument{
			ID:   fmt.Sprintf("%s-%d", prefix, i),
			Name: fmt.Sprintf("%s-%d.pdf", prefix, i),
		}
	}
	return docs
}

func TestStore_AppendPreservesExistingOrder(t *testing.T) {
	t.Parallel()
	s := New()

	first := batch("a", 3)
	s.AppendBatch(first)
	s.AppendBatch(batch("b", 2))

	got := s.All()
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if diff := cmp.Diff(first, got[:3]); diff != "" {
		t.Errorf("earlier records changed (-want +got):\n%s", diff)
	}
}

func TestStore_EmptyBatchIsNoOp(t *testing.T) {
	t.Parallel()
	s := New()
	s.AppendBatch(nil)
	s.AppendBatch([]portal.UploadedDocument{})
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestStore_AllReturnsCopy(t *testing.T) {
	t.Parallel()
	s := New()
	s.AppendBatch(batch("a", 1))

	view := s.All()
	view[0].Name = "mutated.pdf"

	if got := s.All()[0].Name; got != "a-0.pdf" {
		t.Errorf("store record mutated through a read: %q", got)
	}
}

func TestStore_ConcurrentBatchesAllLand(t *testing.T) {
	t.Parallel()
	s := New()

	const writers = 8
	const perBatch = 5

	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AppendBatch(batch(fmt.Sprintf("w%d", w), perBatch))
		}()
	}
	wg.Wait()

	got := s.All()
	if len(got) != writers*perBatch {
		t.Fatalf("len = %d, want %d", len(got), writers*perBatch)
	}

	// No record lost or duplicated, and each batch is contiguous.
	seen := make(map[string]bool, len(got))
	for _, d := range got {
		if seen[d.ID] {
			t.Fatalf("duplicate record %s", d.ID)
		}
		seen[d.ID] = true
	}
	for i := 0; i < len(got); i += perBatch {
		prefix := got[i].ID[:2]
		for j := 1; j < perBatch; j++ {
			if got[i+j].ID[:2] != prefix {
				t.Fatalf("batch %s interleaved at index %d", prefix, i+j)
			}
		}
	}
}
