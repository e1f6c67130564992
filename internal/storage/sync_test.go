package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/verse-mate/versemate-tui/pkg/models"
)

type fakeUploader struct {
	bookmarks  []models.Bookmark
	highlights []models.Highlight
	notes      []models.Note
	failAfter  int
	calls      int
}

func (f *fakeUploader) fail() error {
	f.calls++
	if f.failAfter > 0 && f.calls > f.failAfter {
		return errors.New("server unreachable")
	}
	return nil
}

func (f *fakeUploader) PutBookmark(bm models.Bookmark) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.bookmarks = append(f.bookmarks, bm)
	return nil
}

func (f *fakeUploader) PutHighlight(h models.Highlight) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.highlights = append(f.highlights, h)
	return nil
}

func (f *fakeUploader) PutNote(n models.Note) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.notes = append(f.notes, n)
	return nil
}

type testLogger struct{ lines []string }

func (l *testLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestProcessQueueUploadsInOrder(t *testing.T) {
	s := openTestStore(t)
	bmID, err := s.AddBookmark(1, 1, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	noteID, err := s.AddNote(1, 2, "note body")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.EnqueueOp(EntityBookmark, bmID); err != nil {
		t.Fatal(err)
	}
	if err := s.EnqueueOp(EntityNote, noteID); err != nil {
		t.Fatal(err)
	}

	up := &fakeUploader{}
	synced, err := NewSyncer(s, up, &testLogger{}).ProcessQueue()
	if err != nil {
		t.Fatalf("ProcessQueue: %v", err)
	}
	if synced != 2 {
		t.Errorf("synced = %d, want 2", synced)
	}
	if len(up.bookmarks) != 1 || up.bookmarks[0].ID != bmID {
		t.Errorf("bookmarks uploaded = %+v", up.bookmarks)
	}
	if len(up.notes) != 1 || up.notes[0].Body != "note body" {
		t.Errorf("notes uploaded = %+v", up.notes)
	}

	ops, err := s.PendingOps()
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 0 {
		t.Errorf("queue not drained: %+v", ops)
	}
}

func TestProcessQueueStopsOnFailure(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 3; i++ {
		id, err := s.AddNote(1, i+1, "body")
		if err != nil {
			t.Fatal(err)
		}
		if err := s.EnqueueOp(EntityNote, id); err != nil {
			t.Fatal(err)
		}
	}

	up := &fakeUploader{failAfter: 1}
	synced, err := NewSyncer(s, up, &testLogger{}).ProcessQueue()
	if err == nil {
		t.Fatal("expected error from failing upload")
	}
	if synced != 1 {
		t.Errorf("synced = %d, want 1", synced)
	}

	ops, opsErr := s.PendingOps()
	if opsErr != nil {
		t.Fatal(opsErr)
	}
	if len(ops) != 2 {
		t.Errorf("got %d ops remaining, want 2", len(ops))
	}
}

func TestProcessQueueDropsDeletedRecords(t *testing.T) {
	s := openTestStore(t)
	id, err := s.AddBookmark(1, 1, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.EnqueueOp(EntityBookmark, id); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteBookmark(id); err != nil {
		t.Fatal(err)
	}

	up := &fakeUploader{}
	synced, err := NewSyncer(s, up, &testLogger{}).ProcessQueue()
	if err != nil {
		t.Fatalf("ProcessQueue: %v", err)
	}
	if synced != 0 {
		t.Errorf("synced = %d, want 0", synced)
	}
	if len(up.bookmarks) != 0 {
		t.Errorf("deleted bookmark was uploaded: %+v", up.bookmarks)
	}

	ops, err := s.PendingOps()
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 0 {
		t.Errorf("stale op left in queue: %+v", ops)
	}
}
