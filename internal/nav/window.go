package nav

import "github.com/verse-mate/versemate-tui/pkg/models"

// WrapTopicIndex centralizes the circular arithmetic; the window
// builders below are the only other place window geometry lives.
// Both builders are pure: identical inputs always produce identical
// slot arrays, which the pager relies on to diff windows without
// remounting unchanged pages.

// BuildChapterWindow builds the ordered chapter slots to mount in the
// pager around center, for an odd windowSize (3, 5 or 7). The window
// is truncated at the hard boundaries (before Genesis 1, after
// Revelation 22) rather than padded. The second return value is the
// slot index of center within the returned slice; -1 when the center
// position or metadata table is invalid.
func BuildChapterWindow(center models.ChapterPosition, books []models.BookMetadata, windowSize int) ([]models.ChapterPosition, int) {
	if windowSize < 1 {
		return nil, -1
	}
	global := ChapterToGlobalIndex(center.BookID, center.ChapterNumber, books)
	if global < 0 {
		return nil, -1
	}
	total := TotalChapters(books)
	if global >= total {
		return nil, -1
	}

	half := windowSize / 2
	first := global - half
	if first < 0 {
		first = 0
	}
	last := global + half
	if last > total-1 {
		last = total - 1
	}

	slots := make([]models.ChapterPosition, 0, last-first+1)
	for i := first; i <= last; i++ {
		pos, ok := GlobalIndexToChapter(i, books)
		if !ok {
			return nil, -1
		}
		slots = append(slots, pos)
	}
	return slots, global - first
}

// BuildTopicWindow builds the ordered topic slots around the given
// center index in the flattened global order. Topic windows are
// always full length, wrapping across the ends of the list; the
// center sits at windowSize/2. Returns (nil, -1) for an empty list or
// an out-of-range center index.
func BuildTopicWindow(centerIndex int, ordered []models.TopicListItem, windowSize int) ([]models.TopicListItem, int) {
	if windowSize < 1 || len(ordered) == 0 {
		return nil, -1
	}
	if centerIndex < 0 || centerIndex >= len(ordered) {
		return nil, -1
	}

	half := windowSize / 2
	slots := make([]models.TopicListItem, 0, windowSize)
	for offset := -half; offset <= half; offset++ {
		i := WrapTopicIndex(centerIndex+offset, ordered)
		slots = append(slots, ordered[i])
	}
	return slots, half
}
