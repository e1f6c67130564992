package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/verse-mate/versemate-tui/pkg/models"
)

// Uploader is the subset of the API client the syncer needs.
type Uploader interface {
	PutBookmark(bm models.Bookmark) error
	PutHighlight(h models.Highlight) error
	PutNote(n models.Note) error
}

// Logger logs debug messages during queue processing.
type Logger interface {
	Debugf(format string, args ...any)
}

// Syncer drains the local sync queue, uploading each queued change to
// the server. Rows whose source record was deleted locally are dropped
// from the queue without an upload.
type Syncer struct {
	store    *Store
	uploader Uploader
	logger   Logger
}

func NewSyncer(store *Store, uploader Uploader, logger Logger) *Syncer {
	return &Syncer{store: store, uploader: uploader, logger: logger}
}

// ProcessQueue uploads all pending operations in queue order. It stops
// at the first upload failure so the remaining queue is retried on the
// next run.
func (sy *Syncer) ProcessQueue() (int, error) {
	ops, err := sy.store.PendingOps()
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, op := range ops {
		if err := sy.processOp(op); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				sy.logger.Debugf("sync: dropping %s %d, record deleted locally", op.Entity, op.EntityID)
				if err := sy.store.MarkSynced(op.ID); err != nil {
					return synced, err
				}
				continue
			}
			return synced, fmt.Errorf("failed to sync %s %d: %w", op.Entity, op.EntityID, err)
		}
		if err := sy.store.MarkSynced(op.ID); err != nil {
			return synced, err
		}
		synced++
	}
	return synced, nil
}

func (sy *Syncer) processOp(op PendingOp) error {
	switch op.Entity {
	case EntityBookmark:
		bm, err := sy.store.Bookmark(op.EntityID)
		if err != nil {
			return err
		}
		return sy.uploader.PutBookmark(bm)
	case EntityHighlight:
		h, err := sy.store.Highlight(op.EntityID)
		if err != nil {
			return err
		}
		return sy.uploader.PutHighlight(h)
	case EntityNote:
		n, err := sy.store.Note(op.EntityID)
		if err != nil {
			return err
		}
		return sy.uploader.PutNote(n)
	default:
		sy.logger.Debugf("sync: unknown entity %q in queue", op.Entity)
		return nil
	}
}
