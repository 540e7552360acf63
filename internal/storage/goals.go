// ABOUTME: Goal CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for goals.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/harperreed/coach/internal/models"
)

// CreateGoal inserts a new goal and assigns its id.
func (d *DB) CreateGoal(g *models.Goal) error {
	md, err := encodeMetadata(g.Metadata)
	if err != nil {
		return err
	}

	res, err := d.db.Exec(
		"INSERT INTO goals (text, due_date, metadata, completed, created_at) VALUES (?, ?, ?, ?, ?)",
		g.Text, g.DueDate, md, boolToInt(g.Completed), formatTime(g.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}

	g.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// UpdateGoal applies a partial field update to a goal by id.
func (d *DB) UpdateGoal(id int64, u GoalUpdate) error {
	var sets []string
	var args []any

	if u.Text != nil {
		sets = append(sets, "text = ?")
		args = append(args, *u.Text)
	}
	if u.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, *u.DueDate)
	}
	if u.Metadata != nil {
		md, err := encodeMetadata(u.Metadata)
		if err != nil {
			return err
		}
		sets = append(sets, "metadata = ?")
		args = append(args, md)
	}
	if u.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, boolToInt(*u.Completed))
	}

	return d.execUpdate("goals", id, sets, args)
}

// DeleteGoal removes a goal by id.
func (d *DB) DeleteGoal(id int64) error {
	return d.execDelete("goals", id)
}

// ListGoals retrieves all goals, newest first.
func (d *DB) ListGoals() ([]*models.Goal, error) {
	return d.queryGoals(`
		SELECT id, text, due_date, metadata, completed, created_at
		FROM goals
		ORDER BY created_at DESC`)
}

// ActiveGoals retrieves incomplete goals ordered by due date (dated items
// first), then creation time.
func (d *DB) ActiveGoals() ([]*models.Goal, error) {
	return d.queryGoals(`
		SELECT id, text, due_date, metadata, completed, created_at
		FROM goals
		WHERE completed = 0
		ORDER BY
			CASE WHEN due_date IS NOT NULL THEN DATE(due_date) END ASC,
			created_at ASC`)
}

// GoalsCreatedOn retrieves goals created on the given calendar date.
func (d *DB) GoalsCreatedOn(date string) ([]*models.Goal, error) {
	return d.queryGoals(`
		SELECT id, text, due_date, metadata, completed, created_at
		FROM goals
		WHERE DATE(created_at) = ?
		ORDER BY created_at DESC`, date)
}

func (d *DB) queryGoals(query string, args ...any) ([]*models.Goal, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		var g models.Goal
		var dueDate, metadata sql.NullString
		var completed int
		var createdAt string

		if err := rows.Scan(&g.ID, &g.Text, &dueDate, &metadata, &completed, &createdAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}

		if dueDate.Valid {
			g.DueDate = &dueDate.String
		}
		g.Metadata, err = decodeMetadata(metadata)
		if err != nil {
			return nil, err
		}
		g.Completed = completed != 0
		g.CreatedAt = parseTime(createdAt)

		goals = append(goals, &g)
	}
	return goals, rows.Err()
}

// execUpdate runs a partial UPDATE by id, translating empty field sets and
// zero-row matches into sentinel errors.
func (d *DB) execUpdate(table string, id int64, sets []string, args []any) error {
	if len(sets) == 0 {
		return ErrNoFields
	}

	query := "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	res, err := d.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// execDelete runs a DELETE by id, translating zero-row matches into
// ErrNotFound.
func (d *DB) execDelete(table string, id int64) error {
	res, err := d.db.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
