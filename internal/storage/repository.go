// ABOUTME: Repository interface for the coaching data store.
// ABOUTME: Defines the contract the engines and tool handlers consume.
package storage

import (
	"errors"

	"github.com/harperreed/coach/internal/models"
)

// ErrNotFound is returned by id-targeted operations that match zero rows.
var ErrNotFound = errors.New("not found")

// ErrNoFields is returned by update operations given nothing to change.
var ErrNoFields = errors.New("no fields to update")

// GoalUpdate holds optional field changes for a goal. Nil fields are
// left untouched.
type GoalUpdate struct {
	Text      *string
	DueDate   *string
	Metadata  map[string]any
	Completed *bool
}

// TodoUpdate holds optional field changes for a todo.
type TodoUpdate struct {
	Text      *string
	DueDate   *string
	Tags      *[]string
	Completed *bool
}

// NoteUpdate holds optional field changes for a note.
type NoteUpdate struct {
	Text *string
	Tags *[]string
}

// WorkoutUpdate holds optional field changes for a workout. A non-nil
// Exercises replaces the full exercise set atomically.
type WorkoutUpdate struct {
	Type          *models.WorkoutType
	Date          *string
	DurationMins  *int
	DistanceMiles *float64
	AvgHeartRate  *int
	RPE           *int
	Notes         *string
	Exercises     *[]models.Exercise
}

// WorkoutFilter narrows workout listings.
type WorkoutFilter struct {
	Type      *models.WorkoutType
	SinceDate string // inclusive YYYY-MM-DD lower bound; empty for all time
	Limit     int    // 0 for unlimited
}

// Repository defines the storage interface for coaching data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Goal operations
	CreateGoal(g *models.Goal) error
	UpdateGoal(id int64, u GoalUpdate) error
	DeleteGoal(id int64) error
	ListGoals() ([]*models.Goal, error)
	ActiveGoals() ([]*models.Goal, error)
	GoalsCreatedOn(date string) ([]*models.Goal, error)

	// Todo operations
	CreateTodo(t *models.Todo) error
	UpdateTodo(id int64, u TodoUpdate) error
	DeleteTodo(id int64) error
	ListTodos() ([]*models.Todo, error)
	PendingTodos() ([]*models.Todo, error)
	TodosCreatedOn(date string) ([]*models.Todo, error)

	// Note operations
	CreateNote(n *models.Note) error
	UpdateNote(id int64, u NoteUpdate) error
	DeleteNote(id int64) error
	ListNotes(tag string) ([]*models.Note, error)
	LatestNoteWithTag(tag string) (*models.Note, error)
	NotesCreatedSince(date, excludeTag string, limit int) ([]*models.Note, error)
	NotesCreatedOn(date string) ([]*models.Note, error)

	// Workout operations
	CreateWorkout(w *models.Workout) error
	GetWorkout(id int64) (*models.Workout, error)
	UpdateWorkout(id int64, u WorkoutUpdate) error
	DeleteWorkout(id int64) error
	ListWorkouts(f WorkoutFilter) ([]*models.Workout, error)
	WorkoutsOnDate(date string) ([]*models.Workout, error)
	ExercisesForWorkouts(workoutIDs []int64) (map[int64][]models.Exercise, error)

	// Lifecycle
	Close() error
}
