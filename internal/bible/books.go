package bible

import "github.com/verse-mate/versemate-tui/pkg/models"

// Books is the canonical 66-book table in canonical order. IDs are
// contiguous 1..66; books 1-39 are the Old Testament, 40-66 the New.
// Used as offline fallback metadata when the API is unreachable.
var Books = []models.BookMetadata{
	{ID: 1, Name: "Genesis", Testament: models.TestamentOld, ChapterCount: 50, VerseCount: 1533},
	{ID: 2, Name: "Exodus", Testament: models.TestamentOld, ChapterCount: 40, VerseCount: 1213},
	{ID: 3, Name: "Leviticus", Testament: models.TestamentOld, ChapterCount: 27, VerseCount: 859},
	{ID: 4, Name: "Numbers", Testament: models.TestamentOld, ChapterCount: 36, VerseCount: 1288},
	{ID: 5, Name: "Deuteronomy", Testament: models.TestamentOld, ChapterCount: 34, VerseCount: 959},
	{ID: 6, Name: "Joshua", Testament: models.TestamentOld, ChapterCount: 24, VerseCount: 658},
	{ID: 7, Name: "Judges", Testament: models.TestamentOld, ChapterCount: 21, VerseCount: 618},
	{ID: 8, Name: "Ruth", Testament: models.TestamentOld, ChapterCount: 4, VerseCount: 85},
	{ID: 9, Name: "1 Samuel", Testament: models.TestamentOld, ChapterCount: 31, VerseCount: 810},
	{ID: 10, Name: "2 Samuel", Testament: models.TestamentOld, ChapterCount: 24, VerseCount: 695},
	{ID: 11, Name: "1 Kings", Testament: models.TestamentOld, ChapterCount: 22, VerseCount: 816},
	{ID: 12, Name: "2 Kings", Testament: models.TestamentOld, ChapterCount: 25, VerseCount: 719},
	{ID: 13, Name: "1 Chronicles", Testament: models.TestamentOld, ChapterCount: 29, VerseCount: 942},
	{ID: 14, Name: "2 Chronicles", Testament: models.TestamentOld, ChapterCount: 36, VerseCount: 822},
	{ID: 15, Name: "Ezra", Testament: models.TestamentOld, ChapterCount: 10, VerseCount: 280},
	{ID: 16, Name: "Nehemiah", Testament: models.TestamentOld, ChapterCount: 13, VerseCount: 406},
	{ID: 17, Name: "Esther", Testament: models.TestamentOld, ChapterCount: 10, VerseCount: 167},
	{ID: 18, Name: "Job", Testament: models.TestamentOld, ChapterCount: 42, VerseCount: 1070},
	{ID: 19, Name: "Psalms", Testament: models.TestamentOld, ChapterCount: 150, VerseCount: 2461},
	{ID: 20, Name: "Proverbs", Testament: models.TestamentOld, ChapterCount: 31, VerseCount: 915},
	{ID: 21, Name: "Ecclesiastes", Testament: models.TestamentOld, ChapterCount: 12, VerseCount: 222},
	{ID: 22, Name: "Song of Solomon", Testament: models.TestamentOld, ChapterCount: 8, VerseCount: 117},
	{ID: 23, Name: "Isaiah", Testament: models.TestamentOld, ChapterCount: 66, VerseCount: 1292},
	{ID: 24, Name: "Jeremiah", Testament: models.TestamentOld, ChapterCount: 52, VerseCount: 1364},
	{ID: 25, Name: "Lamentations", Testament: models.TestamentOld, ChapterCount: 5, VerseCount: 154},
	{ID: 26, Name: "Ezekiel", Testament: models.TestamentOld, ChapterCount: 48, VerseCount: 1273},
	{ID: 27, Name: "Daniel", Testament: models.TestamentOld, ChapterCount: 12, VerseCount: 357},
	{ID: 28, Name: "Hosea", Testament: models.TestamentOld, ChapterCount: 14, VerseCount: 197},
	{ID: 29, Name: "Joel", Testament: models.TestamentOld, ChapterCount: 3, VerseCount: 73},
	{ID: 30, Name: "Amos", Testament: models.TestamentOld, ChapterCount: 9, VerseCount: 146},
	{ID: 31, Name: "Obadiah", Testament: models.TestamentOld, ChapterCount: 1, VerseCount: 21},
	{ID: 32, Name: "Jonah", Testament: models.TestamentOld, ChapterCount: 4, VerseCount: 48},
	{ID: 33, Name: "Micah", Testament: models.TestamentOld, ChapterCount: 7, VerseCount: 105},
	{ID: 34, Name: "Nahum", Testament: models.TestamentOld, ChapterCount: 3, VerseCount: 47},
	{ID: 35, Name: "Habakkuk", Testament: models.TestamentOld, ChapterCount: 3, VerseCount: 56},
	{ID: 36, Name: "Zephaniah", Testament: models.TestamentOld, ChapterCount: 3, VerseCount: 53},
	{ID: 37, Name: "Haggai", Testament: models.TestamentOld, ChapterCount: 2, VerseCount: 38},
	{ID: 38, Name: "Zechariah", Testament: models.TestamentOld, ChapterCount: 14, VerseCount: 211},
	{ID: 39, Name: "Malachi", Testament: models.TestamentOld, ChapterCount: 4, VerseCount: 55},
	{ID: 40, Name: "Matthew", Testament: models.TestamentNew, ChapterCount: 28, VerseCount: 1071},
	{ID: 41, Name: "Mark", Testament: models.TestamentNew, ChapterCount: 16, VerseCount: 678},
	{ID: 42, Name: "Luke", Testament: models.TestamentNew, ChapterCount: 24, VerseCount: 1151},
	{ID: 43, Name: "John", Testament: models.TestamentNew, ChapterCount: 21, VerseCount: 879},
	{ID: 44, Name: "Acts", Testament: models.TestamentNew, ChapterCount: 28, VerseCount: 1007},
	{ID: 45, Name: "Romans", Testament: models.TestamentNew, ChapterCount: 16, VerseCount: 433},
	{ID: 46, Name: "1 Corinthians", Testament: models.TestamentNew, ChapterCount: 16, VerseCount: 437},
	{ID: 47, Name: "2 Corinthians", Testament: models.TestamentNew, ChapterCount: 13, VerseCount: 257},
	{ID: 48, Name: "Galatians", Testament: models.TestamentNew, ChapterCount: 6, VerseCount: 149},
	{ID: 49, Name: "Ephesians", Testament: models.TestamentNew, ChapterCount: 6, VerseCount: 155},
	{ID: 50, Name: "Philippians", Testament: models.TestamentNew, ChapterCount: 4, VerseCount: 104},
	{ID: 51, Name: "Colossians", Testament: models.TestamentNew, ChapterCount: 4, VerseCount: 95},
	{ID: 52, Name: "1 Thessalonians", Testament: models.TestamentNew, ChapterCount: 5, VerseCount: 89},
	{ID: 53, Name: "2 Thessalonians", Testament: models.TestamentNew, ChapterCount: 3, VerseCount: 47},
	{ID: 54, Name: "1 Timothy", Testament: models.TestamentNew, ChapterCount: 6, VerseCount: 113},
	{ID: 55, Name: "2 Timothy", Testament: models.TestamentNew, ChapterCount: 4, VerseCount: 83},
	{ID: 56, Name: "Titus", Testament: models.TestamentNew, ChapterCount: 3, VerseCount: 46},
	{ID: 57, Name: "Philemon", Testament: models.TestamentNew, ChapterCount: 1, VerseCount: 25},
	{ID: 58, Name: "Hebrews", Testament: models.TestamentNew, ChapterCount: 13, VerseCount: 303},
	{ID: 59, Name: "James", Testament: models.TestamentNew, ChapterCount: 5, VerseCount: 108},
	{ID: 60, Name: "1 Peter", Testament: models.TestamentNew, ChapterCount: 5, VerseCount: 105},
	{ID: 61, Name: "2 Peter", Testament: models.TestamentNew, ChapterCount: 3, VerseCount: 61},
	{ID: 62, Name: "1 John", Testament: models.TestamentNew, ChapterCount: 5, VerseCount: 105},
	{ID: 63, Name: "2 John", Testament: models.TestamentNew, ChapterCount: 1, VerseCount: 13},
	{ID: 64, Name: "3 John", Testament: models.TestamentNew, ChapterCount: 1, VerseCount: 14},
	{ID: 65, Name: "Jude", Testament: models.TestamentNew, ChapterCount: 1, VerseCount: 25},
	{ID: 66, Name: "Revelation", Testament: models.TestamentNew, ChapterCount: 22, VerseCount: 404},
}

// ByID returns the book with the given ID, or nil if out of range.
func ByID(id int) *models.BookMetadata {
	if id < 1 || id > len(Books) {
		return nil
	}
	return &Books[id-1]
}

// Name returns the display name for a book ID, or "" if out of range.
func Name(id int) string {
	if b := ByID(id); b != nil {
		return b.Name
	}
	return ""
}
