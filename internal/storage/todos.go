// ABOUTME: Todo CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for todos.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/coach/internal/models"
)

// CreateTodo inserts a new todo and assigns its id.
func (d *DB) CreateTodo(t *models.Todo) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return err
	}

	res, err := d.db.Exec(
		"INSERT INTO todos (text, due_date, tags, completed, created_at) VALUES (?, ?, ?, ?, ?)",
		t.Text, t.DueDate, tags, boolToInt(t.Completed), formatTime(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}

	t.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}
	return nil
}

// UpdateTodo applies a partial field update to a todo by id.
func (d *DB) UpdateTodo(id int64, u TodoUpdate) error {
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
	if u.Tags != nil {
		tags, err := encodeTags(*u.Tags)
		if err != nil {
			return err
		}
		sets = append(sets, "tags = ?")
		args = append(args, tags)
	}
	if u.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, boolToInt(*u.Completed))
	}

	return d.execUpdate("todos", id, sets, args)
}

// DeleteTodo removes a todo by id.
func (d *DB) DeleteTodo(id int64) error {
	return d.execDelete("todos", id)
}

// ListTodos retrieves all todos, newest first.
func (d *DB) ListTodos() ([]*models.Todo, error) {
	return d.queryTodos(`
		SELECT id, text, due_date, tags, completed, created_at
		FROM todos
		ORDER BY created_at DESC`)
}

// PendingTodos retrieves incomplete todos ordered by due date (dated items
// first), then creation time.
func (d *DB) PendingTodos() ([]*models.Todo, error) {
	return d.queryTodos(`
		SELECT id, text, due_date, tags, completed, created_at
		FROM todos
		WHERE completed = 0
		ORDER BY
			CASE WHEN due_date IS NOT NULL THEN DATE(due_date) END ASC,
			created_at ASC`)
}

// TodosCreatedOn retrieves todos created on the given calendar date.
func (d *DB) TodosCreatedOn(date string) ([]*models.Todo, error) {
	return d.queryTodos(`
		SELECT id, text, due_date, tags, completed, created_at
		FROM todos
		WHERE DATE(created_at) = ?
		ORDER BY created_at DESC`, date)
}

func (d *DB) queryTodos(query string, args ...any) ([]*models.Todo, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var todos []*models.Todo
	for rows.Next() {
		var t models.Todo
		var dueDate, tags sql.NullString
		var completed int
		var createdAt string

		if err := rows.Scan(&t.ID, &t.Text, &dueDate, &tags, &completed, &createdAt); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}

		if dueDate.Valid {
			t.DueDate = &dueDate.String
		}
		t.Tags, err = decodeTags(tags)
		if err != nil {
			return nil, err
		}
		t.Completed = completed != 0
		t.CreatedAt = parseTime(createdAt)

		todos = append(todos, &t)
	}
	return todos, rows.Err()
}
