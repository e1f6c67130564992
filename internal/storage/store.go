// Package storage persists the user's reading data in a local sqlite
// database: bookmarks, highlights, notes, the last visited route, and
// a queue of changes awaiting upload to the server.
package storage

import (
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/verse-mate/versemate-tui/pkg/models"
)

// Sync queue entity kinds.
const (
	EntityBookmark  = "bookmark"
	EntityHighlight = "highlight"
	EntityNote      = "note"
)

// PendingOp is one queued change waiting to be uploaded.
type PendingOp struct {
	ID       int64
	Entity   string
	EntityID int64
	QueuedAt time.Time
}

type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	dsn := sqliteDSN(dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS bookmarks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	book_id INTEGER NOT NULL,
	chapter INTEGER NOT NULL,
	verse INTEGER NOT NULL DEFAULT 0,
	note TEXT DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS highlights (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	book_id INTEGER NOT NULL,
	chapter INTEGER NOT NULL,
	verse_start INTEGER NOT NULL,
	verse_end INTEGER NOT NULL,
	color TEXT NOT NULL DEFAULT 'yellow',
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS notes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	book_id INTEGER NOT NULL,
	chapter INTEGER NOT NULL,
	body TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS last_route (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	path TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS sync_queue (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	entity TEXT NOT NULL,
	entity_id INTEGER NOT NULL,
	queued_at TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *Store) AddBookmark(bookID, chapter, verse int, note string) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(`INSERT INTO bookmarks (book_id, chapter, verse, note, created_at) VALUES (?, ?, ?, ?, ?);`,
		bookID, chapter, verse, note, now)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) BookmarksForChapter(bookID, chapter int) ([]models.Bookmark, error) {
	rows, err := s.db.Query(`SELECT id, book_id, chapter, verse, note, created_at FROM bookmarks WHERE book_id = ? AND chapter = ? ORDER BY id;`,
		bookID, chapter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Bookmark
	for rows.Next() {
		var b models.Bookmark
		var createdStr string
		if err := rows.Scan(&b.ID, &b.BookID, &b.Chapter, &b.Verse, &b.Note, &createdStr); err != nil {
			return nil, err
		}
		if created, err := time.Parse(time.RFC3339, createdStr); err == nil {
			b.CreatedAt = created
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// AllBookmarks returns every bookmark, newest first.
func (s *Store) AllBookmarks() ([]models.Bookmark, error) {
	rows, err := s.db.Query(`SELECT id, book_id, chapter, verse, note, created_at FROM bookmarks ORDER BY id DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Bookmark
	for rows.Next() {
		var b models.Bookmark
		var createdStr string
		if err := rows.Scan(&b.ID, &b.BookID, &b.Chapter, &b.Verse, &b.Note, &createdStr); err != nil {
			return nil, err
		}
		if created, err := time.Parse(time.RFC3339, createdStr); err == nil {
			b.CreatedAt = created
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) Bookmark(id int64) (models.Bookmark, error) {
	var b models.Bookmark
	var createdStr string
	err := s.db.QueryRow(`SELECT id, book_id, chapter, verse, note, created_at FROM bookmarks WHERE id = ?;`, id).
		Scan(&b.ID, &b.BookID, &b.Chapter, &b.Verse, &b.Note, &createdStr)
	if err != nil {
		return b, err
	}
	if created, err := time.Parse(time.RFC3339, createdStr); err == nil {
		b.CreatedAt = created
	}
	return b, nil
}

func (s *Store) DeleteBookmark(id int64) error {
	_, err := s.db.Exec(`DELETE FROM bookmarks WHERE id = ?;`, id)
	return err
}

func (s *Store) AddHighlight(bookID, chapter, verseStart, verseEnd int, color string) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(`INSERT INTO highlights (book_id, chapter, verse_start, verse_end, color, created_at) VALUES (?, ?, ?, ?, ?, ?);`,
		bookID, chapter, verseStart, verseEnd, color, now)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) HighlightsForChapter(bookID, chapter int) ([]models.Highlight, error) {
	rows, err := s.db.Query(`SELECT id, book_id, chapter, verse_start, verse_end, color, created_at FROM highlights WHERE book_id = ? AND chapter = ? ORDER BY verse_start;`,
		bookID, chapter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Highlight
	for rows.Next() {
		var h models.Highlight
		var createdStr string
		if err := rows.Scan(&h.ID, &h.BookID, &h.Chapter, &h.VerseStart, &h.VerseEnd, &h.Color, &createdStr); err != nil {
			return nil, err
		}
		if created, err := time.Parse(time.RFC3339, createdStr); err == nil {
			h.CreatedAt = created
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (s *Store) Highlight(id int64) (models.Highlight, error) {
	var h models.Highlight
	var createdStr string
	err := s.db.QueryRow(`SELECT id, book_id, chapter, verse_start, verse_end, color, created_at FROM highlights WHERE id = ?;`, id).
		Scan(&h.ID, &h.BookID, &h.Chapter, &h.VerseStart, &h.VerseEnd, &h.Color, &createdStr)
	if err != nil {
		return h, err
	}
	if created, err := time.Parse(time.RFC3339, createdStr); err == nil {
		h.CreatedAt = created
	}
	return h, nil
}

func (s *Store) DeleteHighlight(id int64) error {
	_, err := s.db.Exec(`DELETE FROM highlights WHERE id = ?;`, id)
	return err
}

func (s *Store) AddNote(bookID, chapter int, body string) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(`INSERT INTO notes (book_id, chapter, body, created_at) VALUES (?, ?, ?, ?);`,
		bookID, chapter, body, now)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) NotesForChapter(bookID, chapter int) ([]models.Note, error) {
	rows, err := s.db.Query(`SELECT id, book_id, chapter, body, created_at FROM notes WHERE book_id = ? AND chapter = ? ORDER BY id;`,
		bookID, chapter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Note
	for rows.Next() {
		var n models.Note
		var createdStr string
		if err := rows.Scan(&n.ID, &n.BookID, &n.Chapter, &n.Body, &createdStr); err != nil {
			return nil, err
		}
		if created, err := time.Parse(time.RFC3339, createdStr); err == nil {
			n.CreatedAt = created
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Store) Note(id int64) (models.Note, error) {
	var n models.Note
	var createdStr string
	err := s.db.QueryRow(`SELECT id, book_id, chapter, body, created_at FROM notes WHERE id = ?;`, id).
		Scan(&n.ID, &n.BookID, &n.Chapter, &n.Body, &createdStr)
	if err != nil {
		return n, err
	}
	if created, err := time.Parse(time.RFC3339, createdStr); err == nil {
		n.CreatedAt = created
	}
	return n, nil
}

func (s *Store) DeleteNote(id int64) error {
	_, err := s.db.Exec(`DELETE FROM notes WHERE id = ?;`, id)
	return err
}

// SaveLastRoute records the route to restore on the next launch. The
// table holds a single row that is replaced on every write.
func (s *Store) SaveLastRoute(path string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO last_route (id, path, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET path = excluded.path, updated_at = excluded.updated_at;`, path, now)
	return err
}

// LastRoute returns the most recently saved route, or "" if none was
// ever saved.
func (s *Store) LastRoute() (string, error) {
	var path string
	err := s.db.QueryRow(`SELECT path FROM last_route WHERE id = 1;`).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) EnqueueOp(entity string, entityID int64) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO sync_queue (entity, entity_id, queued_at) VALUES (?, ?, ?);`,
		entity, entityID, now)
	return err
}

func (s *Store) PendingOps() ([]PendingOp, error) {
	rows, err := s.db.Query(`SELECT id, entity, entity_id, queued_at FROM sync_queue ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []PendingOp
	for rows.Next() {
		var op PendingOp
		var queuedStr string
		if err := rows.Scan(&op.ID, &op.Entity, &op.EntityID, &queuedStr); err != nil {
			return nil, err
		}
		if queued, err := time.Parse(time.RFC3339, queuedStr); err == nil {
			op.QueuedAt = queued
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}

func (s *Store) MarkSynced(opID int64) error {
	_, err := s.db.Exec(`DELETE FROM sync_queue WHERE id = ?;`, opID)
	return err
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
