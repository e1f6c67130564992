package nav

import "github.com/verse-mate/versemate-tui/pkg/models"

// ChapterNavigation describes the next/prev targets around a chapter
// position. Bible navigation is linear: Genesis 1 has no previous,
// Revelation 22 has no next, and book transitions (including the
// testament boundary at book 39/40) are crossed transparently.
type ChapterNavigation struct {
	Next          *models.ChapterPosition
	Prev          *models.ChapterPosition
	CanGoNext     bool
	CanGoPrevious bool
}

// ComputeChapterNavigation returns navigation metadata for the given
// position. Unknown book IDs or an empty metadata table yield an
// all-disabled result. Out-of-range chapter numbers are tolerated:
// they are clamped to the nearest valid chapter before next/prev are
// computed, so a stale "chapter 53 of Genesis" route still navigates
// sensibly instead of erroring.
func ComputeChapterNavigation(bookID, chapter int, books []models.BookMetadata) ChapterNavigation {
	if len(books) == 0 {
		return ChapterNavigation{}
	}

	idx := -1
	for i, b := range books {
		if b.ID == bookID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ChapterNavigation{}
	}

	book := books[idx]
	if chapter > book.ChapterCount {
		chapter = book.ChapterCount
	}
	if chapter < 1 {
		chapter = 1
	}

	nav := ChapterNavigation{}

	if chapter < book.ChapterCount {
		nav.Next = &models.ChapterPosition{BookID: bookID, ChapterNumber: chapter + 1}
	} else if idx+1 < len(books) {
		nav.Next = &models.ChapterPosition{BookID: books[idx+1].ID, ChapterNumber: 1}
	}

	if chapter > 1 {
		nav.Prev = &models.ChapterPosition{BookID: bookID, ChapterNumber: chapter - 1}
	} else if idx > 0 {
		prev := books[idx-1]
		nav.Prev = &models.ChapterPosition{BookID: prev.ID, ChapterNumber: prev.ChapterCount}
	}

	nav.CanGoNext = nav.Next != nil
	nav.CanGoPrevious = nav.Prev != nil
	return nav
}
