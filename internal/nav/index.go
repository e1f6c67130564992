// Package nav implements the sliding-window pagination core: global
// index math, next/prev navigation metadata for the linear Bible and
// circular topic domains, the window builder, the navigation state
// store, and the pager controller that keeps them in sync.
package nav

import "github.com/verse-mate/versemate-tui/pkg/models"

// ChapterToGlobalIndex flattens a (bookID, chapter) pair into a
// zero-based index across all chapters of all books. Returns -1 when
// the book ID is not present in the metadata table.
func ChapterToGlobalIndex(bookID, chapter int, books []models.BookMetadata) int {
	sum := 0
	for _, b := range books {
		if b.ID == bookID {
			return sum + chapter - 1
		}
		sum += b.ChapterCount
	}
	return -1
}

// GlobalIndexToChapter is the inverse of ChapterToGlobalIndex. The
// second return value is false for out-of-range input; callers are
// expected to pre-validate, no clamping happens here.
func GlobalIndexToChapter(index int, books []models.BookMetadata) (models.ChapterPosition, bool) {
	if index < 0 {
		return models.ChapterPosition{}, false
	}
	rest := index
	for _, b := range books {
		if rest < b.ChapterCount {
			return models.ChapterPosition{BookID: b.ID, ChapterNumber: rest + 1}, true
		}
		rest -= b.ChapterCount
	}
	return models.ChapterPosition{}, false
}

// TotalChapters returns the sum of chapter counts across all books.
func TotalChapters(books []models.BookMetadata) int {
	sum := 0
	for _, b := range books {
		sum += b.ChapterCount
	}
	return sum
}

// WrapTopicIndex maps any integer onto [0, len(topics)-1] with
// modulo wraparound. All circular boundary arithmetic goes through
// here. Returns -1 when the topic list is empty.
func WrapTopicIndex(index int, topics []models.TopicListItem) int {
	n := len(topics)
	if n == 0 {
		return -1
	}
	return ((index % n) + n) % n
}
