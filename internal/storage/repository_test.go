// ABOUTME: Tests for Repository interface implementations.
// ABOUTME: Verifies CRUD operations for goals, todos, notes, and workouts using SQLite.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/coach/internal/models"
)

func TestCreateAndListGoals(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	g := models.NewGoal("Run a marathon")
	g.WithDueDate("2026-10-01")

	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	if g.ID == 0 {
		t.Fatal("Expected goal ID to be assigned")
	}

	goals, err := db.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("Expected 1 goal, got %d", len(goals))
	}

	got := goals[0]
	if got.Text != "Run a marathon" {
		t.Errorf("Text mismatch: got %q", got.Text)
	}
	if got.DueDate == nil || *got.DueDate != "2026-10-01" {
		t.Errorf("DueDate mismatch: got %v", got.DueDate)
	}
	if got.Completed {
		t.Error("New goal should not be completed")
	}
}

func TestUpdateGoal(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	g := models.NewGoal("Read more")
	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	completed := true
	text := "Read 12 books"
	if err := db.UpdateGoal(g.ID, GoalUpdate{Text: &text, Completed: &completed}); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}

	goals, err := db.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if goals[0].Text != "Read 12 books" {
		t.Errorf("Text mismatch: got %q", goals[0].Text)
	}
	if !goals[0].Completed {
		t.Error("Expected goal to be completed")
	}
}

func TestUpdateGoalNoFields(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	g := models.NewGoal("Something")
	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	if err := db.UpdateGoal(g.ID, GoalUpdate{}); !errors.Is(err, ErrNoFields) {
		t.Errorf("Expected ErrNoFields, got %v", err)
	}
}

func TestUpdateGoalNotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	text := "ghost"
	err := db.UpdateGoal(9999, GoalUpdate{Text: &text})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteGoal(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	g := models.NewGoal("Temporary")
	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	if err := db.DeleteGoal(g.ID); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}
	if err := db.DeleteGoal(g.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestActiveGoalsOrdering(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	later := models.NewGoal("Due later")
	later.WithDueDate("2026-12-01")
	sooner := models.NewGoal("Due sooner")
	sooner.WithDueDate("2026-09-15")
	undated := models.NewGoal("No due date")
	done := models.NewGoal("Already done")
	done.Completed = true

	for _, g := range []*models.Goal{later, sooner, undated, done} {
		if err := db.CreateGoal(g); err != nil {
			t.Fatalf("CreateGoal failed: %v", err)
		}
	}

	active, err := db.ActiveGoals()
	if err != nil {
		t.Fatalf("ActiveGoals failed: %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("Expected 3 active goals, got %d", len(active))
	}
	if active[0].ID != sooner.ID {
		t.Errorf("Expected soonest due date first, got #%d", active[0].ID)
	}
	if active[1].ID != later.ID {
		t.Errorf("Expected later due date second, got #%d", active[1].ID)
	}
	if active[2].ID != undated.ID {
		t.Errorf("Expected undated goal last, got #%d", active[2].ID)
	}
}

func TestGoalsCreatedOn(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	old := models.NewGoal("From last week")
	old.CreatedAt = time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	fresh := models.NewGoal("From target day")
	fresh.CreatedAt = time.Date(2026, 8, 27, 18, 30, 0, 0, time.UTC)

	for _, g := range []*models.Goal{old, fresh} {
		if err := db.CreateGoal(g); err != nil {
			t.Fatalf("CreateGoal failed: %v", err)
		}
	}

	goals, err := db.GoalsCreatedOn("2026-08-27")
	if err != nil {
		t.Fatalf("GoalsCreatedOn failed: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != fresh.ID {
		t.Errorf("Expected only the target-day goal, got %d goals", len(goals))
	}
}

func TestTodoTagsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	todo := models.NewTodo("Buy groceries")
	todo.WithTags([]string{"errands", "home"})

	if err := db.CreateTodo(todo); err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}

	todos, err := db.ListTodos()
	if err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("Expected 1 todo, got %d", len(todos))
	}
	got := todos[0]
	if len(got.Tags) != 2 || got.Tags[0] != "errands" || got.Tags[1] != "home" {
		t.Errorf("Tags mismatch: got %v", got.Tags)
	}
}

func TestUpdateTodoClearsTags(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	todo := models.NewTodo("Tagged")
	todo.WithTags([]string{"a"})
	if err := db.CreateTodo(todo); err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}

	empty := []string{}
	if err := db.UpdateTodo(todo.ID, TodoUpdate{Tags: &empty}); err != nil {
		t.Fatalf("UpdateTodo failed: %v", err)
	}

	todos, err := db.ListTodos()
	if err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}
	if len(todos[0].Tags) != 0 {
		t.Errorf("Expected tags cleared, got %v", todos[0].Tags)
	}
}

func TestPendingTodos(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	pending := models.NewTodo("Still open")
	done := models.NewTodo("Finished")
	done.Completed = true

	for _, td := range []*models.Todo{pending, done} {
		if err := db.CreateTodo(td); err != nil {
			t.Fatalf("CreateTodo failed: %v", err)
		}
	}

	open, err := db.PendingTodos()
	if err != nil {
		t.Fatalf("PendingTodos failed: %v", err)
	}
	if len(open) != 1 || open[0].ID != pending.ID {
		t.Errorf("Expected only the pending todo, got %d todos", len(open))
	}
}

func TestNotesByTag(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tagged := models.NewNote("Morning reflection", []string{"journal", "morning"})
	other := models.NewNote("Shopping list", []string{"errands"})
	bare := models.NewNote("No tags", nil)

	for _, n := range []*models.Note{tagged, other, bare} {
		if err := db.CreateNote(n); err != nil {
			t.Fatalf("CreateNote failed: %v", err)
		}
	}

	notes, err := db.ListNotes("journal")
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != tagged.ID {
		t.Errorf("Expected only the journal note, got %d notes", len(notes))
	}

	all, err := db.ListNotes("")
	if err != nil {
		t.Fatalf("ListNotes without tag failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 notes, got %d", len(all))
	}
}

func TestLatestNoteWithTag(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	none, err := db.LatestNoteWithTag(models.TagRecap)
	if err != nil {
		t.Fatalf("LatestNoteWithTag failed: %v", err)
	}
	if none != nil {
		t.Errorf("Expected nil note when none match, got #%d", none.ID)
	}

	older := models.NewNote("First recap", []string{models.TagRecap})
	older.CreatedAt = time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
	newer := models.NewNote("Second recap", []string{models.TagRecap})
	newer.CreatedAt = time.Date(2026, 8, 26, 8, 0, 0, 0, time.UTC)

	for _, n := range []*models.Note{older, newer} {
		if err := db.CreateNote(n); err != nil {
			t.Fatalf("CreateNote failed: %v", err)
		}
	}

	latest, err := db.LatestNoteWithTag(models.TagRecap)
	if err != nil {
		t.Fatalf("LatestNoteWithTag failed: %v", err)
	}
	if latest == nil || latest.ID != newer.ID {
		t.Errorf("Expected most recent recap note, got %v", latest)
	}
}

func TestNotesCreatedSinceExcludesTag(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	recap := models.NewNote("Yesterday's recap", []string{models.TagRecap})
	insight := models.NewNote("An insight", []string{"idea"})
	stale := models.NewNote("Too old", nil)
	stale.CreatedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for _, n := range []*models.Note{recap, insight, stale} {
		if err := db.CreateNote(n); err != nil {
			t.Fatalf("CreateNote failed: %v", err)
		}
	}

	since := time.Now().UTC().AddDate(0, 0, -3).Format("2006-01-02")
	notes, err := db.NotesCreatedSince(since, models.TagRecap, 10)
	if err != nil {
		t.Fatalf("NotesCreatedSince failed: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != insight.ID {
		t.Errorf("Expected only the insight note, got %d notes", len(notes))
	}
}

func TestCreateAndGetWorkout(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	w := models.NewWorkout(models.WorkoutRunning, "2026-08-28")
	w.WithDuration(45)
	w.WithDistance(5.2)
	w.WithRPE(7)

	if err := db.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	got, err := db.GetWorkout(w.ID)
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	if got.Type != models.WorkoutRunning {
		t.Errorf("Type mismatch: got %v", got.Type)
	}
	if got.DurationMins == nil || *got.DurationMins != 45 {
		t.Errorf("DurationMins mismatch: got %v", got.DurationMins)
	}
	if got.DistanceMiles == nil || *got.DistanceMiles != 5.2 {
		t.Errorf("DistanceMiles mismatch: got %v", got.DistanceMiles)
	}
	if got.RPE == nil || *got.RPE != 7 {
		t.Errorf("RPE mismatch: got %v", got.RPE)
	}
}

func TestFunctionalWorkoutWithExercises(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sets := 3
	reps := "20"
	weight := 35.0
	w := models.NewWorkout(models.WorkoutFunctional, "2026-08-28")
	w.Exercises = []models.Exercise{
		{Name: "Kettlebell Swings", Sets: &sets, Reps: &reps, WeightLbs: &weight},
		{Name: "Push-ups", Sets: &sets, Reps: &reps},
	}

	if err := db.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	got, err := db.GetWorkout(w.ID)
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	if len(got.Exercises) != 2 {
		t.Fatalf("Expected 2 exercises, got %d", len(got.Exercises))
	}
	if got.Exercises[0].Name != "Kettlebell Swings" {
		t.Errorf("Exercise order mismatch: got %q first", got.Exercises[0].Name)
	}
	if got.Exercises[0].WeightLbs == nil || *got.Exercises[0].WeightLbs != 35.0 {
		t.Errorf("WeightLbs mismatch: got %v", got.Exercises[0].WeightLbs)
	}
}

func TestDeleteWorkoutCascadesExercises(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sets := 5
	reps := "5"
	w := models.NewWorkout(models.WorkoutFunctional, "2026-08-28")
	w.Exercises = []models.Exercise{{Name: "Deadlift", Sets: &sets, Reps: &reps}}

	if err := db.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	if err := db.DeleteWorkout(w.ID); err != nil {
		t.Fatalf("DeleteWorkout failed: %v", err)
	}

	byWorkout, err := db.ExercisesForWorkouts([]int64{w.ID})
	if err != nil {
		t.Fatalf("ExercisesForWorkouts failed: %v", err)
	}
	if len(byWorkout[w.ID]) != 0 {
		t.Errorf("Expected exercises to cascade on delete, got %d rows", len(byWorkout[w.ID]))
	}
}

func TestUpdateWorkoutReplacesExercises(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sets := 3
	reps := "10"
	w := models.NewWorkout(models.WorkoutFunctional, "2026-08-28")
	w.Exercises = []models.Exercise{{Name: "Squats", Sets: &sets, Reps: &reps}}
	if err := db.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	replacement := []models.Exercise{
		{Name: "Lunges", Sets: &sets, Reps: &reps},
		{Name: "Planks"},
	}
	if err := db.UpdateWorkout(w.ID, WorkoutUpdate{Exercises: &replacement}); err != nil {
		t.Fatalf("UpdateWorkout failed: %v", err)
	}

	got, err := db.GetWorkout(w.ID)
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	if len(got.Exercises) != 2 || got.Exercises[0].Name != "Lunges" {
		t.Errorf("Expected replaced exercises, got %v", got.Exercises)
	}
}

func TestListWorkoutsFilters(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	run := models.NewWorkout(models.WorkoutRunning, "2026-08-20")
	ride := models.NewWorkout(models.WorkoutCycling, "2026-08-26")
	lift := models.NewWorkout(models.WorkoutFunctional, "2026-08-28")

	for _, w := range []*models.Workout{run, ride, lift} {
		if err := db.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}
	}

	all, err := db.ListWorkouts(WorkoutFilter{})
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 workouts, got %d", len(all))
	}
	if all[0].ID != lift.ID {
		t.Errorf("Expected newest date first, got #%d", all[0].ID)
	}

	running := models.WorkoutRunning
	byType, err := db.ListWorkouts(WorkoutFilter{Type: &running})
	if err != nil {
		t.Fatalf("ListWorkouts by type failed: %v", err)
	}
	if len(byType) != 1 || byType[0].ID != run.ID {
		t.Errorf("Expected only the running workout, got %d", len(byType))
	}

	recent, err := db.ListWorkouts(WorkoutFilter{SinceDate: "2026-08-25"})
	if err != nil {
		t.Fatalf("ListWorkouts since date failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("Expected 2 recent workouts, got %d", len(recent))
	}

	limited, err := db.ListWorkouts(WorkoutFilter{Limit: 1})
	if err != nil {
		t.Fatalf("ListWorkouts with limit failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 workout with limit, got %d", len(limited))
	}
}

func TestGetWorkoutNotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetWorkout(404); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "coach-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "coach.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	return db
}
