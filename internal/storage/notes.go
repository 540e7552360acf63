// ABOUTME: Note CRUD and tag-filtered queries for SQLite storage.
// ABOUTME: Tag matching uses a LIKE pattern over the JSON-encoded column.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/coach/internal/models"
)

// CreateNote inserts a new note and assigns its id.
func (d *DB) CreateNote(n *models.Note) error {
	tags, err := encodeTags(n.Tags)
	if err != nil {
		return err
	}

	res, err := d.db.Exec(
		"INSERT INTO notes (text, tags, created_at) VALUES (?, ?, ?)",
		n.Text, tags, formatTime(n.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	n.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// UpdateNote applies a partial field update to a note by id.
func (d *DB) UpdateNote(id int64, u NoteUpdate) error {
	var sets []string
	var args []any

	if u.Text != nil {
		sets = append(sets, "text = ?")
		args = append(args, *u.Text)
	}
	if u.Tags != nil {
		tags, err := encodeTags(*u.Tags)
		if err != nil {
			return err
		}
		sets = append(sets, "tags = ?")
		args = append(args, tags)
	}

	return d.execUpdate("notes", id, sets, args)
}

// DeleteNote removes a note by id.
func (d *DB) DeleteNote(id int64) error {
	return d.execDelete("notes", id)
}

// ListNotes retrieves notes newest first, optionally filtered by tag.
func (d *DB) ListNotes(tag string) ([]*models.Note, error) {
	if tag != "" {
		return d.queryNotes(`
			SELECT id, text, tags, created_at
			FROM notes
			WHERE tags LIKE ?
			ORDER BY created_at DESC`, tagPattern(tag))
	}
	return d.queryNotes(`
		SELECT id, text, tags, created_at
		FROM notes
		ORDER BY created_at DESC`)
}

// LatestNoteWithTag retrieves the most recently created note carrying the
// tag, or nil when none exists.
func (d *DB) LatestNoteWithTag(tag string) (*models.Note, error) {
	notes, err := d.queryNotes(`
		SELECT id, text, tags, created_at
		FROM notes
		WHERE tags LIKE ?
		ORDER BY created_at DESC
		LIMIT 1`, tagPattern(tag))
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, nil
	}
	return notes[0], nil
}

// NotesCreatedSince retrieves notes created on or after the given date,
// newest first, skipping notes that carry excludeTag.
func (d *DB) NotesCreatedSince(date, excludeTag string, limit int) ([]*models.Note, error) {
	query := `
		SELECT id, text, tags, created_at
		FROM notes
		WHERE DATE(created_at) >= ?
		AND (tags IS NULL OR tags NOT LIKE ?)
		ORDER BY created_at DESC`
	args := []any{date, tagPattern(excludeTag)}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return d.queryNotes(query, args...)
}

// NotesCreatedOn retrieves notes created on the given calendar date.
func (d *DB) NotesCreatedOn(date string) ([]*models.Note, error) {
	return d.queryNotes(`
		SELECT id, text, tags, created_at
		FROM notes
		WHERE DATE(created_at) = ?
		ORDER BY created_at DESC`, date)
}

func (d *DB) queryNotes(query string, args ...any) ([]*models.Note, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		var n models.Note
		var tags sql.NullString
		var createdAt string

		if err := rows.Scan(&n.ID, &n.Text, &tags, &createdAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}

		n.Tags, err = decodeTags(tags)
		if err != nil {
			return nil, err
		}
		n.CreatedAt = parseTime(createdAt)

		notes = append(notes, &n)
	}
	return notes, rows.Err()
}
