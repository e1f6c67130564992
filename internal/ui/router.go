package ui

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/verse-mate/versemate-tui/internal/logging"
	"github.com/verse-mate/versemate-tui/internal/storage"
	"github.com/verse-mate/versemate-tui/pkg/models"
)

// Router persists route changes so the reading position survives a
// restart. Replace is invoked from the pager's debounced route sync
// goroutine, so writes must be safe off the UI loop.
type Router struct {
	store  *storage.Store
	logger logging.Logger
}

func NewRouter(store *storage.Store, logger logging.Logger) *Router {
	return &Router{store: store, logger: logger}
}

// Replace records the route without creating a history entry.
func (r *Router) Replace(path string) {
	if err := r.store.SaveLastRoute(path); err != nil {
		r.logger.Debugf("router: failed to save route %s: %v", path, err)
	}
}

// Push records an explicit navigation, such as a picker selection.
func (r *Router) Push(path string) {
	if err := r.store.SaveLastRoute(path); err != nil {
		r.logger.Debugf("router: failed to save route %s: %v", path, err)
	}
}

// ParseRoute decodes a persisted route. It returns the chapter
// position for /bible/{book}/{chapter} routes or the topic ID for
// /topics/{uuid} routes; ok is false for anything unrecognized.
func ParseRoute(path string) (pos models.ChapterPosition, topicID uuid.UUID, isTopic, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case len(parts) == 3 && parts[0] == "bible":
		var bookID, chapter int
		if _, err := fmt.Sscanf(parts[1]+" "+parts[2], "%d %d", &bookID, &chapter); err != nil {
			return pos, topicID, false, false
		}
		return models.ChapterPosition{BookID: bookID, ChapterNumber: chapter}, topicID, false, true
	case len(parts) == 2 && parts[0] == "topics":
		id, err := uuid.Parse(parts[1])
		if err != nil {
			return pos, topicID, false, false
		}
		return pos, id, true, true
	}
	return pos, topicID, false, false
}
