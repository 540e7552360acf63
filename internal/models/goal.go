// ABOUTME: Goal and Todo models for the coaching assistant.
// ABOUTME: Both carry optional ISO due dates compared as strings.
package models

import "time"

// Goal is a longer-horizon objective the user is working toward.
type Goal struct {
	ID        int64
	Text      string
	DueDate   *string // YYYY-MM-DD
	Metadata  map[string]any
	Completed bool
	CreatedAt time.Time
}

// NewGoal creates a Goal with the current timestamp. The ID is assigned
// by the store on insert.
func NewGoal(text string) *Goal {
	return &Goal{
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// WithDueDate sets the due date (YYYY-MM-DD).
func (g *Goal) WithDueDate(date string) *Goal {
	g.DueDate = &date
	return g
}

// WithMetadata attaches free-form metadata.
func (g *Goal) WithMetadata(md map[string]any) *Goal {
	g.Metadata = md
	return g
}

// Todo is a short-horizon task.
type Todo struct {
	ID        int64
	Text      string
	DueDate   *string // YYYY-MM-DD
	Tags      []string
	Completed bool
	CreatedAt time.Time
}

// NewTodo creates a Todo with the current timestamp.
func NewTodo(text string) *Todo {
	return &Todo{
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// WithDueDate sets the due date (YYYY-MM-DD).
func (t *Todo) WithDueDate(date string) *Todo {
	t.DueDate = &date
	return t
}

// WithTags sets the tag list.
func (t *Todo) WithTags(tags []string) *Todo {
	t.Tags = tags
	return t
}
