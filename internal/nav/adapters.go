package nav

import (
	"fmt"

	"github.com/verse-mate/versemate-tui/pkg/models"
)

// Adapters binding the pure domain functions to the shapes the
// generic Controller consumes.

// ChapterWindowBuilder returns a BuildWindow function over the given
// book metadata table.
func ChapterWindowBuilder(books []models.BookMetadata) func(models.ChapterPosition, int) ([]models.ChapterPosition, int) {
	return func(center models.ChapterPosition, size int) ([]models.ChapterPosition, int) {
		return BuildChapterWindow(center, books, size)
	}
}

// ChapterSteppers returns next/prev step functions over the book
// metadata table, backed by ComputeChapterNavigation.
func ChapterSteppers(books []models.BookMetadata) (next, prev func(models.ChapterPosition) (models.ChapterPosition, bool)) {
	next = func(p models.ChapterPosition) (models.ChapterPosition, bool) {
		nav := ComputeChapterNavigation(p.BookID, p.ChapterNumber, books)
		if nav.Next == nil {
			return models.ChapterPosition{}, false
		}
		return *nav.Next, true
	}
	prev = func(p models.ChapterPosition) (models.ChapterPosition, bool) {
		nav := ComputeChapterNavigation(p.BookID, p.ChapterNumber, books)
		if nav.Prev == nil {
			return models.ChapterPosition{}, false
		}
		return *nav.Prev, true
	}
	return next, prev
}

// ChapterRoutePath renders the deep-link path for a chapter position.
func ChapterRoutePath(p models.ChapterPosition) string {
	return fmt.Sprintf("/bible/%d/%d", p.BookID, p.ChapterNumber)
}

// TopicWindowBuilder returns a BuildWindow function over the
// flattened topic order.
func TopicWindowBuilder(ordered []models.TopicListItem) func(models.TopicListItem, int) ([]models.TopicListItem, int) {
	return func(center models.TopicListItem, size int) ([]models.TopicListItem, int) {
		nav := ComputeTopicNavigation(center.TopicID, ordered)
		if nav.CurrentIndex < 0 {
			return nil, -1
		}
		return BuildTopicWindow(nav.CurrentIndex, ordered, size)
	}
}

// TopicSteppers returns circular next/prev step functions over the
// flattened topic order.
func TopicSteppers(ordered []models.TopicListItem) (next, prev func(models.TopicListItem) (models.TopicListItem, bool)) {
	next = func(t models.TopicListItem) (models.TopicListItem, bool) {
		nav := ComputeTopicNavigation(t.TopicID, ordered)
		if nav.Next == nil {
			return models.TopicListItem{}, false
		}
		return *nav.Next, true
	}
	prev = func(t models.TopicListItem) (models.TopicListItem, bool) {
		nav := ComputeTopicNavigation(t.TopicID, ordered)
		if nav.Prev == nil {
			return models.TopicListItem{}, false
		}
		return *nav.Prev, true
	}
	return next, prev
}

// TopicRoutePath renders the deep-link path for a topic.
func TopicRoutePath(t models.TopicListItem) string {
	return "/topics/" + t.TopicID.String()
}
