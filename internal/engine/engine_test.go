// ABOUTME: Shared fixtures for engine tests.
// ABOUTME: Engines run against a real SQLite store with a frozen clock.
package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
)

// testToday is what the frozen clock renders as today's date.
const testToday = "2026-08-29"

func testClock() time.Time {
	return time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
}

// testStore wraps the repository with fail-fast seeding helpers.
type testStore struct {
	t  *testing.T
	db *storage.DB
}

func (s *testStore) goal(text, dueDate string) *models.Goal {
	s.t.Helper()
	g := models.NewGoal(text)
	g.CreatedAt = testClock()
	if dueDate != "" {
		g.WithDueDate(dueDate)
	}
	if err := s.db.CreateGoal(g); err != nil {
		s.t.Fatalf("CreateGoal failed: %v", err)
	}
	return g
}

func (s *testStore) todo(text, dueDate string) *models.Todo {
	s.t.Helper()
	td := models.NewTodo(text)
	td.CreatedAt = testClock()
	if dueDate != "" {
		td.WithDueDate(dueDate)
	}
	if err := s.db.CreateTodo(td); err != nil {
		s.t.Fatalf("CreateTodo failed: %v", err)
	}
	return td
}

func (s *testStore) note(text string, tags []string) *models.Note {
	s.t.Helper()
	n := models.NewNote(text, tags)
	n.CreatedAt = testClock()
	if err := s.db.CreateNote(n); err != nil {
		s.t.Fatalf("CreateNote failed: %v", err)
	}
	return n
}

func (s *testStore) run(date string, mins int, miles float64, rpe int) *models.Workout {
	s.t.Helper()
	w := models.NewWorkout(models.WorkoutRunning, date)
	w.WithDuration(mins).WithDistance(miles).WithRPE(rpe)
	if err := s.db.CreateWorkout(w); err != nil {
		s.t.Fatalf("CreateWorkout failed: %v", err)
	}
	return w
}

func (s *testStore) notesWithTag(tag string) []*models.Note {
	s.t.Helper()
	notes, err := s.db.ListNotes(tag)
	if err != nil {
		s.t.Fatalf("ListNotes failed: %v", err)
	}
	return notes
}

func setupTestRepo(t *testing.T) *storage.DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "coach-engine-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "coach.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
