// ABOUTME: MCP tool implementations for goals, todos, and notes.
// ABOUTME: Conversational confirmations; missing ids answer politely instead of erroring.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add-goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add-goal",
		Description: "Add a goal to the persistent goal list",
	}, s.handleAddGoal)

	// update-goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update-goal",
		Description: "Update the text, due date, completion, or metadata of a goal by id",
	}, s.handleUpdateGoal)

	// delete-goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete-goal",
		Description: "Delete a goal by id",
	}, s.handleDeleteGoal)

	// list-goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list-goals",
		Description: "List all goals with completion status",
	}, s.handleListGoals)

	// add-todo
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add-todo",
		Description: "Add a todo with an optional due date and tags",
	}, s.handleAddTodo)

	// update-todo
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update-todo",
		Description: "Update the text, due date, tags, or completion of a todo by id",
	}, s.handleUpdateTodo)

	// delete-todo
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete-todo",
		Description: "Delete a todo by id",
	}, s.handleDeleteTodo)

	// list-todos
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list-todos",
		Description: "List all todos with status, due dates, and tags",
	}, s.handleListTodos)

	// add-note
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add-note",
		Description: "Store a free-form note about the user, with optional tags",
	}, s.handleAddNote)

	// update-note
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update-note",
		Description: "Update the text or tags of a note by id",
	}, s.handleUpdateNote)

	// delete-note
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete-note",
		Description: "Delete a note by id",
	}, s.handleDeleteNote)

	// list-notes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list-notes",
		Description: "List notes, optionally filtered by tag",
	}, s.handleListNotes)

	// remember-convo
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remember-convo",
		Description: "Save a conversation summary as a note tagged with today's date",
	}, s.handleRememberConvo)

	// user-summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "user-summary",
		Description: "Summarize everything known about the user from goals and notes",
	}, s.handleUserSummary)
}

// Tool input/output types

type addGoalInput struct {
	Goal     string         `json:"goal" jsonschema:"The goal text"`
	DueDate  string         `json:"due_date,omitempty" jsonschema:"Optional due date (YYYY-MM-DD)"`
	Metadata map[string]any `json:"metadata,omitempty" jsonschema:"Optional structured metadata"`
}

type updateGoalInput struct {
	ID        int64           `json:"id" jsonschema:"Goal id"`
	Text      *string         `json:"text,omitempty" jsonschema:"New goal text"`
	DueDate   *string         `json:"due_date,omitempty" jsonschema:"New due date (YYYY-MM-DD)"`
	Completed *bool           `json:"completed,omitempty" jsonschema:"Completion status"`
	Metadata  *map[string]any `json:"metadata,omitempty" jsonschema:"Replacement metadata"`
}

type deleteByIDInput struct {
	ID int64 `json:"id" jsonschema:"Entity id"`
}

type emptyInput struct{}

type simpleOutput struct {
	Message string `json:"message"`
}

type addTodoInput struct {
	Todo    string   `json:"todo" jsonschema:"The todo text"`
	DueDate string   `json:"due_date,omitempty" jsonschema:"Optional due date (YYYY-MM-DD)"`
	Tags    []string `json:"tags,omitempty" jsonschema:"Optional tags"`
}

type updateTodoInput struct {
	ID        int64     `json:"id" jsonschema:"Todo id"`
	Text      *string   `json:"text,omitempty" jsonschema:"New todo text"`
	DueDate   *string   `json:"due_date,omitempty" jsonschema:"New due date (YYYY-MM-DD)"`
	Tags      *[]string `json:"tags,omitempty" jsonschema:"Replacement tag list"`
	Completed *bool     `json:"completed,omitempty" jsonschema:"Completion status"`
}

type addNoteInput struct {
	Note string   `json:"note" jsonschema:"The note text"`
	Tags []string `json:"tags,omitempty" jsonschema:"Optional tags"`
}

type updateNoteInput struct {
	ID   int64     `json:"id" jsonschema:"Note id"`
	Text *string   `json:"text,omitempty" jsonschema:"New note text"`
	Tags *[]string `json:"tags,omitempty" jsonschema:"Replacement tag list"`
}

type listNotesInput struct {
	Tag string `json:"tag,omitempty" jsonschema:"Filter notes by tag"`
}

type rememberConvoInput struct {
	ConversationSummary string   `json:"conversation_summary" jsonschema:"A summary of the conversation content to remember"`
	AdditionalTags      []string `json:"additional_tags,omitempty" jsonschema:"Optional additional tags beyond the date"`
}

const noUpdatesMessage = "No updates provided. Please specify at least one field to change."

// Tool handlers

func (s *Server) handleAddGoal(ctx context.Context, req *mcp.CallToolRequest, input addGoalInput) (*mcp.CallToolResult, simpleOutput, error) {
	g := models.NewGoal(input.Goal)
	if input.DueDate != "" {
		g.WithDueDate(input.DueDate)
	}
	if input.Metadata != nil {
		g.WithMetadata(input.Metadata)
	}

	if err := s.repo.CreateGoal(g); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create goal: %w", err)
	}

	message := fmt.Sprintf("Great! I've added %q to your goals list", input.Goal)
	if input.DueDate != "" {
		message += ", due " + input.DueDate
	}
	message += "."

	return nil, simpleOutput{Message: message}, nil
}

func (s *Server) handleUpdateGoal(ctx context.Context, req *mcp.CallToolRequest, input updateGoalInput) (*mcp.CallToolResult, simpleOutput, error) {
	update := storage.GoalUpdate{
		Text:      input.Text,
		DueDate:   input.DueDate,
		Completed: input.Completed,
	}
	if input.Metadata != nil {
		update.Metadata = *input.Metadata
	}

	err := s.repo.UpdateGoal(input.ID, update)
	switch {
	case errors.Is(err, storage.ErrNoFields):
		return nil, simpleOutput{Message: noUpdatesMessage}, nil
	case errors.Is(err, storage.ErrNotFound):
		return nil, simpleOutput{Message: fmt.Sprintf("No goal found with id %d.", input.ID)}, nil
	case err != nil:
		return nil, simpleOutput{}, fmt.Errorf("failed to update goal: %w", err)
	}

	return nil, simpleOutput{Message: fmt.Sprintf("Goal %d updated successfully.", input.ID)}, nil
}

func (s *Server) handleDeleteGoal(ctx context.Context, req *mcp.CallToolRequest, input deleteByIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	err := s.repo.DeleteGoal(input.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, simpleOutput{Message: fmt.Sprintf("No goal found with id %d.", input.ID)}, nil
	case err != nil:
		return nil, simpleOutput{}, fmt.Errorf("failed to delete goal: %w", err)
	}

	return nil, simpleOutput{Message: fmt.Sprintf("Goal %d deleted successfully.", input.ID)}, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, simpleOutput, error) {
	goals, err := s.repo.ListGoals()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to list goals: %w", err)
	}

	if len(goals) == 0 {
		return nil, simpleOutput{Message: "You have no goals yet."}, nil
	}

	lines := make([]string, 0, len(goals))
	for _, g := range goals {
		status := "✗"
		if g.Completed {
			status = "✓"
		}
		lines = append(lines, fmt.Sprintf("#%d: %s [%s]", g.ID, g.Text, status))
	}

	return nil, simpleOutput{Message: "Here are your goals:\n- " + strings.Join(lines, "\n- ")}, nil
}

func (s *Server) handleAddTodo(ctx context.Context, req *mcp.CallToolRequest, input addTodoInput) (*mcp.CallToolResult, simpleOutput, error) {
	td := models.NewTodo(input.Todo)
	if input.DueDate != "" {
		td.WithDueDate(input.DueDate)
	}
	if len(input.Tags) > 0 {
		td.WithTags(input.Tags)
	}

	if err := s.repo.CreateTodo(td); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create todo: %w", err)
	}

	message := fmt.Sprintf("Great! I've added %q to your todo list", input.Todo)
	if input.DueDate != "" {
		message += ", due " + input.DueDate
	}
	if len(input.Tags) > 0 {
		message += fmt.Sprintf(" (tags: %s)", strings.Join(input.Tags, ", "))
	}
	message += "."

	return nil, simpleOutput{Message: message}, nil
}

func (s *Server) handleUpdateTodo(ctx context.Context, req *mcp.CallToolRequest, input updateTodoInput) (*mcp.CallToolResult, simpleOutput, error) {
	err := s.repo.UpdateTodo(input.ID, storage.TodoUpdate{
		Text:      input.Text,
		DueDate:   input.DueDate,
		Tags:      input.Tags,
		Completed: input.Completed,
	})
	switch {
	case errors.Is(err, storage.ErrNoFields):
		return nil, simpleOutput{Message: noUpdatesMessage}, nil
	case errors.Is(err, storage.ErrNotFound):
		return nil, simpleOutput{Message: fmt.Sprintf("No todo found with id %d.", input.ID)}, nil
	case err != nil:
		return nil, simpleOutput{}, fmt.Errorf("failed to update todo: %w", err)
	}

	return nil, simpleOutput{Message: fmt.Sprintf("Todo %d updated successfully.", input.ID)}, nil
}

func (s *Server) handleDeleteTodo(ctx context.Context, req *mcp.CallToolRequest, input deleteByIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	err := s.repo.DeleteTodo(input.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, simpleOutput{Message: fmt.Sprintf("No todo found with id %d.", input.ID)}, nil
	case err != nil:
		return nil, simpleOutput{}, fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil, simpleOutput{Message: fmt.Sprintf("Todo %d deleted successfully.", input.ID)}, nil
}

func (s *Server) handleListTodos(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, simpleOutput, error) {
	todos, err := s.repo.ListTodos()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to list todos: %w", err)
	}

	if len(todos) == 0 {
		return nil, simpleOutput{Message: "You have no todos yet."}, nil
	}

	lines := make([]string, 0, len(todos))
	for _, t := range todos {
		status := "✗"
		if t.Completed {
			status = "✓"
		}
		line := fmt.Sprintf("#%d: %s [%s]", t.ID, t.Text, status)
		if t.DueDate != nil {
			line += fmt.Sprintf(" (due: %s)", *t.DueDate)
		}
		if len(t.Tags) > 0 {
			line += fmt.Sprintf(" (tags: %s)", strings.Join(t.Tags, ", "))
		}
		lines = append(lines, line)
	}

	return nil, simpleOutput{Message: "Here are your todos:\n- " + strings.Join(lines, "\n- ")}, nil
}

func (s *Server) handleAddNote(ctx context.Context, req *mcp.CallToolRequest, input addNoteInput) (*mcp.CallToolResult, simpleOutput, error) {
	n := models.NewNote(input.Note, input.Tags)
	if err := s.repo.CreateNote(n); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create note: %w", err)
	}

	message := fmt.Sprintf("Got it! I've made a note: %q", input.Note)
	if len(input.Tags) > 0 {
		message += fmt.Sprintf(" (tags: %s)", strings.Join(input.Tags, ", "))
	}
	message += "."

	return nil, simpleOutput{Message: message}, nil
}

func (s *Server) handleUpdateNote(ctx context.Context, req *mcp.CallToolRequest, input updateNoteInput) (*mcp.CallToolResult, simpleOutput, error) {
	err := s.repo.UpdateNote(input.ID, storage.NoteUpdate{
		Text: input.Text,
		Tags: input.Tags,
	})
	switch {
	case errors.Is(err, storage.ErrNoFields):
		return nil, simpleOutput{Message: noUpdatesMessage}, nil
	case errors.Is(err, storage.ErrNotFound):
		return nil, simpleOutput{Message: fmt.Sprintf("No note found with id %d.", input.ID)}, nil
	case err != nil:
		return nil, simpleOutput{}, fmt.Errorf("failed to update note: %w", err)
	}

	return nil, simpleOutput{Message: fmt.Sprintf("Note %d updated successfully.", input.ID)}, nil
}

func (s *Server) handleDeleteNote(ctx context.Context, req *mcp.CallToolRequest, input deleteByIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	err := s.repo.DeleteNote(input.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, simpleOutput{Message: fmt.Sprintf("No note found with id %d.", input.ID)}, nil
	case err != nil:
		return nil, simpleOutput{}, fmt.Errorf("failed to delete note: %w", err)
	}

	return nil, simpleOutput{Message: fmt.Sprintf("Note %d deleted successfully.", input.ID)}, nil
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest, input listNotesInput) (*mcp.CallToolResult, simpleOutput, error) {
	notes, err := s.repo.ListNotes(input.Tag)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to list notes: %w", err)
	}

	if len(notes) == 0 {
		if input.Tag != "" {
			return nil, simpleOutput{Message: fmt.Sprintf("No notes found with tag %q.", input.Tag)}, nil
		}
		return nil, simpleOutput{Message: "You have no notes yet."}, nil
	}

	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		line := fmt.Sprintf("#%d: %s", n.ID, n.Text)
		if len(n.Tags) > 0 {
			line += fmt.Sprintf(" (%s)", strings.Join(n.Tags, ", "))
		}
		lines = append(lines, line)
	}

	header := "Here are your notes"
	if input.Tag != "" {
		header += fmt.Sprintf(" with tag %q", input.Tag)
	}
	return nil, simpleOutput{Message: header + ":\n- " + strings.Join(lines, "\n- ")}, nil
}

func (s *Server) handleRememberConvo(ctx context.Context, req *mcp.CallToolRequest, input rememberConvoInput) (*mcp.CallToolResult, simpleOutput, error) {
	today := time.Now().UTC().Format("2006-01-02")
	tags := append([]string{models.TagConversation, models.DateTag(today)}, input.AdditionalTags...)

	noteText := fmt.Sprintf("Conversation from %s:\n\n%s", today, input.ConversationSummary)
	n := models.NewNote(noteText, tags)
	if err := s.repo.CreateNote(n); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save conversation: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("✓ Conversation saved! I've created a note with the conversation summary and tagged it with today's date (%s) and \"conversation\". You can reference this later using the recap tools or by listing notes with the \"conversation\" tag.", today),
	}, nil
}

func (s *Server) handleUserSummary(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, simpleOutput, error) {
	goals, err := s.repo.ListGoals()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to list goals: %w", err)
	}
	notes, err := s.repo.ListNotes("")
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to list notes: %w", err)
	}

	var parts []string

	if len(goals) > 0 {
		lines := make([]string, 0, len(goals))
		for _, g := range goals {
			status := "✗"
			if g.Completed {
				status = "✓"
			}
			due := ""
			if g.DueDate != nil {
				due = fmt.Sprintf(" (due %s)", *g.DueDate)
			}
			lines = append(lines, fmt.Sprintf("#%d: %s%s [%s]", g.ID, g.Text, due, status))
		}
		parts = append(parts, fmt.Sprintf("Goals (total %d):\n- %s", len(goals), strings.Join(lines, "\n- ")))
	} else {
		parts = append(parts, "No goals set.")
	}

	if len(notes) > 0 {
		lines := make([]string, 0, len(notes))
		for _, n := range notes {
			line := fmt.Sprintf("#%d: %s", n.ID, n.Text)
			if len(n.Tags) > 0 {
				line += fmt.Sprintf(" (%s)", strings.Join(n.Tags, ", "))
			}
			lines = append(lines, line)
		}
		parts = append(parts, fmt.Sprintf("Notes (total %d):\n- %s", len(notes), strings.Join(lines, "\n- ")))
	} else {
		parts = append(parts, "No notes recorded.")
	}

	return nil, simpleOutput{Message: strings.Join(parts, "\n\n")}, nil
}
