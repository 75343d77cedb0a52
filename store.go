package folio

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested message does not exist.
var ErrNotFound = sql.ErrNoRows

// Message is a contact form submission.
type Message struct {
	ID        string
	Name      string
	Email     string
	Body      string
	Language  string
	CreatedAt time.Time
	Read      bool
}

// ProjectViews is the view counter of one project page.
type ProjectViews struct {
	Slug       string
	Views      int
	LastViewed time.Time
}

// Store wraps a SQLite database holding contact messages and project view
// counters. Project content itself is never stored here.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the view counter write while pages read; busy_timeout makes
	// writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS messages (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    body TEXT NOT NULL,
    language TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    read INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages(created_at);

CREATE TABLE IF NOT EXISTS project_views (
    slug TEXT PRIMARY KEY,
    views INTEGER NOT NULL DEFAULT 0,
    last_viewed TEXT NOT NULL
);
`)
	return err
}

// SaveMessage stores m, assigning an ID and timestamp when unset, and
// returns the stored message.
func (s *Store) SaveMessage(m Message) (Message, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	read := 0
	if m.Read {
		read = 1
	}
	_, err := s.db.Exec(`INSERT INTO messages (id, name, email, body, language, created_at, read) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Body, m.Language, m.CreatedAt.UTC().Format(time.RFC3339Nano), read)
	if err != nil {
		return Message{}, err
	}
	return m, nil
}

// GetMessage returns a message by id, or ErrNotFound.
func (s *Store) GetMessage(id string) (Message, error) {
	row := s.db.QueryRow(`SELECT id, name, email, body, language, created_at, read FROM messages WHERE id = ?`, id)
	return scanMessage(row)
}

// ListMessages returns every message, newest first.
func (s *Store) ListMessages() ([]Message, error) {
	rows, err := s.db.Query(`SELECT id, name, email, body, language, created_at, read FROM messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// UnreadCount returns the number of unread messages.
func (s *Store) UnreadCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM messages WHERE read = 0`).Scan(&n)
	return n, err
}

// MarkMessageRead flags a message as read. It returns ErrNotFound for an
// unknown id.
func (s *Store) MarkMessageRead(id string) error {
	res, err := s.db.Exec(`UPDATE messages SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMessage removes a message by id.
func (s *Store) DeleteMessage(id string) error {
	_, err := s.db.Exec(`DELETE FROM messages WHERE id = ?`, id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (Message, error) {
	var m Message
	var created string
	var read int
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Language, &created, &read); err != nil {
		return Message{}, err
	}
	m.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	m.Read = read == 1
	return m, nil
}

// RecordView increments the view counter of slug.
func (s *Store) RecordView(slug string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.Exec(`INSERT INTO project_views (slug, views, last_viewed) VALUES (?, 1, ?)
ON CONFLICT(slug) DO UPDATE SET views = views + 1, last_viewed = excluded.last_viewed`, slug, now)
	return err
}

// ListViews returns the view counters, most viewed first.
func (s *Store) ListViews() ([]ProjectViews, error) {
	rows, err := s.db.Query(`SELECT slug, views, last_viewed FROM project_views ORDER BY views DESC, slug ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProjectViews
	for rows.Next() {
		var v ProjectViews
		var last string
		if err := rows.Scan(&v.Slug, &v.Views, &last); err != nil {
			return nil, err
		}
		v.LastViewed, _ = time.Parse(time.RFC3339Nano, last)
		out = append(out, v)
	}
	return out, rows.Err()
}

// Views returns the view count of slug, zero when never viewed.
func (s *Store) Views(slug string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT views FROM project_views WHERE slug = ?`, slug).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return n, err
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
