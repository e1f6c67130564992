package models

import (
	"time"

	"github.com/google/uuid"
)

// Testament constants
const (
	TestamentOld = "OT"
	TestamentNew = "NT"
)

// Topic category constants, in global navigation bucket order
const (
	CategoryEvent    = "EVENT"
	CategoryProphecy = "PROPHECY"
	CategoryParable  = "PARABLE"
	CategoryTheme    = "THEME"
)

// CategoryOrder is the fixed bucket order used to flatten topics into
// their global navigation order.
var CategoryOrder = []string{
	CategoryEvent,
	CategoryProphecy,
	CategoryParable,
	CategoryTheme,
}

// BookMetadata describes one book of the Bible. The full table holds
// 66 entries with contiguous IDs 1..66 in canonical order.
type BookMetadata struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Testament    string `json:"testament"`
	ChapterCount int    `json:"chapter_count"`
	VerseCount   int    `json:"verse_count"`
}

// ChapterPosition identifies a single chapter. Valid when
// 1 <= BookID <= 66 and 1 <= ChapterNumber <= the book's chapter count.
type ChapterPosition struct {
	BookID        int `json:"book_id"`
	ChapterNumber int `json:"chapter_number"`
}

// TopicListItem is one entry of the topic index. Topics are ordered
// globally by category bucket, then SortOrder within the bucket.
type TopicListItem struct {
	TopicID   uuid.UUID `json:"topic_id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	Category  string    `json:"category"`
}

// Verse is a single verse of chapter content.
type Verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// ChapterContent is the rendered body of one chapter.
type ChapterContent struct {
	BookID        int     `json:"book_id"`
	ChapterNumber int     `json:"chapter_number"`
	BookName      string  `json:"book_name"`
	Verses        []Verse `json:"verses"`
}

// TopicContent is the rendered body of one topic.
type TopicContent struct {
	TopicID  uuid.UUID `json:"topic_id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Summary  string    `json:"summary"`
	Body     string    `json:"body"`
}

// Explanation is an AI-generated explanation for a chapter or topic.
type Explanation struct {
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Bookmark marks a chapter (optionally a verse) the user saved locally.
type Bookmark struct {
	ID        int64     `json:"id"`
	BookID    int       `json:"book_id"`
	Chapter   int       `json:"chapter"`
	Verse     int       `json:"verse,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Highlight is a highlighted verse range within a chapter.
type Highlight struct {
	ID         int64     `json:"id"`
	BookID     int       `json:"book_id"`
	Chapter    int       `json:"chapter"`
	VerseStart int       `json:"verse_start"`
	VerseEnd   int       `json:"verse_end"`
	Color      string    `json:"color"`
	CreatedAt  time.Time `json:"created_at"`
}

// Note is a free-form note attached to a chapter.
type Note struct {
	ID        int64     `json:"id"`
	BookID    int       `json:"book_id"`
	Chapter   int       `json:"chapter"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// BooksResponse is the API response for the book metadata table.
type BooksResponse struct {
	Books []BookMetadata `json:"books"`
}

// TopicsResponse is the API response for the topic index.
type TopicsResponse struct {
	Topics []TopicListItem `json:"topics"`
}

// ErrorResponse is an API error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
