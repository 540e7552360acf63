// ABOUTME: Recap engine behind the recap-day tool.
// ABOUTME: Summarizes one day's goals, todos, notes, conversations, and workouts.
package engine

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
)

// Recap builds the end-of-day summary. Activity-log entities are matched
// by creation day; workouts by their logged occurrence day.
type Recap struct {
	repo storage.Repository
	now  func() time.Time
}

// NewRecap creates a Recap engine over the given store.
func NewRecap(repo storage.Repository) *Recap {
	return &Recap{repo: repo, now: time.Now}
}

// RecapResult carries the persisted report and the short confirmation
// returned to the caller.
type RecapResult struct {
	Date           string
	Report         string
	Confirmation   string
	TotalItems     int
	CompletedItems int
	Conversations  int
}

// Generate builds the recap for the target date (today when empty), saves
// it as a note tagged recap even for an empty day, and returns the result.
func (r *Recap) Generate(date string) (*RecapResult, error) {
	targetDate := date
	if targetDate == "" {
		targetDate = r.now().UTC().Format(dateLayout)
	}

	goals, err := r.repo.GoalsCreatedOn(targetDate)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	todos, err := r.repo.TodosCreatedOn(targetDate)
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}
	notes, err := r.repo.NotesCreatedOn(targetDate)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	workouts, err := r.repo.WorkoutsOnDate(targetDate)
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}

	var functionalIDs []int64
	for _, w := range workouts {
		if w.Type == models.WorkoutFunctional {
			functionalIDs = append(functionalIDs, w.ID)
		}
	}
	exercisesByWorkout, err := r.repo.ExercisesForWorkouts(functionalIDs)
	if err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}

	dateTag := models.DateTag(targetDate)
	var conversations, regularNotes []*models.Note
	for _, n := range notes {
		if n.HasTag(models.TagConversation) && n.HasTag(dateTag) {
			conversations = append(conversations, n)
		} else {
			regularNotes = append(regularNotes, n)
		}
	}

	// Only items created on the target date are inspected for completion.
	// Items created earlier and finished today are not detected; see the
	// open question in DESIGN.md before changing this.
	completedItems := 0
	for _, g := range goals {
		if g.Completed {
			completedItems++
		}
	}
	for _, t := range todos {
		if t.Completed {
			completedItems++
		}
	}

	var sections []string
	sections = append(sections, fmt.Sprintf("# Daily Recap for %s", targetDate))
	sections = append(sections, fmt.Sprintf("Generated on: %s", r.now().UTC().Format(time.RFC3339)))

	if len(goals) > 0 {
		sections = append(sections, "\n## Goals")
		sections = append(sections, fmt.Sprintf("\n### New Goals Created Today (%d)", len(goals)))
		for _, g := range goals {
			status := "⏳ In Progress"
			if g.Completed {
				status = "✓ COMPLETED"
			}
			due := ""
			if g.DueDate != nil {
				due = fmt.Sprintf(" (due %s)", *g.DueDate)
			}
			sections = append(sections, fmt.Sprintf("- #%d: %s%s [%s]", g.ID, g.Text, due, status))
		}
	}

	if len(todos) > 0 {
		sections = append(sections, "\n## Tasks & Todos")
		sections = append(sections, fmt.Sprintf("\n### New Todos Created Today (%d)", len(todos)))
		for _, t := range todos {
			status := "⏳ Pending"
			if t.Completed {
				status = "✓ COMPLETED"
			}
			due := ""
			if t.DueDate != nil {
				due = fmt.Sprintf(" (due %s)", *t.DueDate)
			}
			sections = append(sections, fmt.Sprintf("- #%d: %s%s%s [%s]", t.ID, t.Text, due, tagSuffix(t.Tags), status))
		}
	}

	if len(regularNotes) > 0 {
		sections = append(sections, fmt.Sprintf("\n## Notes & Observations (%d)", len(regularNotes)))
		for _, n := range regularNotes {
			sections = append(sections, fmt.Sprintf("- #%d: %s%s", n.ID, n.Text, tagSuffix(n.Tags)))
		}
	}

	if len(workouts) > 0 {
		sections = append(sections, fmt.Sprintf("\n## Fitness & Workouts (%d)", len(workouts)))
		for _, w := range workouts {
			sections = append(sections, renderWorkoutLine(w))
			if w.Type == models.WorkoutFunctional {
				for i, ex := range exercisesByWorkout[w.ID] {
					sections = append(sections, renderExerciseLine(i+1, ex))
				}
			}
		}
	}

	if len(conversations) > 0 {
		sections = append(sections, fmt.Sprintf("\n## Conversations & Discussions (%d)", len(conversations)))
		for _, c := range conversations {
			sections = append(sections, fmt.Sprintf("- #%d: %s", c.ID, c.Text))
		}
	}

	totalItems := len(goals) + len(todos) + len(notes) + len(workouts)

	if totalItems > 0 {
		sections = append(sections, "\n## Daily Summary")
		sections = append(sections, fmt.Sprintf("- Total new items: %d", totalItems))
		sections = append(sections, fmt.Sprintf("- Items completed: %d", completedItems))
		if len(workouts) > 0 {
			totalTime := 0
			totalDistance := 0.0
			for _, w := range workouts {
				if w.DurationMins != nil {
					totalTime += *w.DurationMins
				}
				if w.DistanceMiles != nil {
					totalDistance += *w.DistanceMiles
				}
			}
			sections = append(sections, fmt.Sprintf("- Workouts completed: %d", len(workouts)))
			if totalTime > 0 {
				sections = append(sections, fmt.Sprintf("- Total workout time: %d minutes", totalTime))
			}
			if totalDistance > 0 {
				sections = append(sections, fmt.Sprintf("- Total distance: %g miles", totalDistance))
			}
		}
		sections = append(sections, fmt.Sprintf("- Productivity score: %d%%", productivityScore(completedItems, totalItems)))
	}

	report := strings.Join(sections, "\n")

	// An empty day still gets its recap note so start-day always has
	// context to pull from.
	note := models.NewNote(report, []string{models.TagRecap, dateTag, models.TagDailySummary})
	if err := r.repo.CreateNote(note); err != nil {
		return nil, fmt.Errorf("save recap note: %w", err)
	}

	result := &RecapResult{
		Date:           targetDate,
		Report:         report,
		TotalItems:     totalItems,
		CompletedItems: completedItems,
		Conversations:  len(conversations),
	}

	if totalItems == 0 {
		result.Confirmation = fmt.Sprintf("No activities found for %s. It looks like it was a quiet day! I've still created a recap note for completeness.", targetDate)
		return result, nil
	}

	workoutSummary := ""
	if len(workouts) > 0 {
		workoutSummary = fmt.Sprintf("\n- %d workouts completed", len(workouts))
	}
	result.Confirmation = fmt.Sprintf(
		"✓ Daily recap for %s complete!\n\nSummary:\n- %d total activities\n- %d items completed%s\n- %d conversations recorded\n\nI've saved a detailed recap as a note tagged with \"recap\" and \"date-%s\". You can review it anytime or use it with the start-day tool tomorrow.",
		targetDate, totalItems, completedItems, workoutSummary, len(conversations), targetDate,
	)
	return result, nil
}

// productivityScore is the completed share of the day's new items,
// rounded to a whole percentage. Zero items scores zero.
func productivityScore(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func renderWorkoutLine(w *models.Workout) string {
	var metrics []string
	if w.DurationMins != nil {
		metrics = append(metrics, fmt.Sprintf("%d minutes", *w.DurationMins))
	}
	if w.DistanceMiles != nil {
		metrics = append(metrics, fmt.Sprintf("%g miles", *w.DistanceMiles))
	}
	if w.AvgHeartRate != nil {
		metrics = append(metrics, fmt.Sprintf("%d BPM avg", *w.AvgHeartRate))
	}
	if w.RPE != nil {
		metrics = append(metrics, fmt.Sprintf("RPE %d/10", *w.RPE))
	}

	line := fmt.Sprintf("- #%d: %s", w.ID, strings.ToUpper(string(w.Type)))
	if len(metrics) > 0 {
		line += fmt.Sprintf(" (%s)", strings.Join(metrics, ", "))
	}
	if w.Notes != nil {
		line += fmt.Sprintf(" - %s", *w.Notes)
	}
	return line
}

func renderExerciseLine(n int, ex models.Exercise) string {
	line := fmt.Sprintf("    %d. %s", n, ex.Name)
	var details []string
	if ex.Sets != nil && ex.Reps != nil {
		details = append(details, fmt.Sprintf("%dx%s", *ex.Sets, *ex.Reps))
	}
	if ex.WeightLbs != nil {
		details = append(details, fmt.Sprintf("%g lbs", *ex.WeightLbs))
	}
	if len(details) > 0 {
		line += fmt.Sprintf(" - %s", strings.Join(details, ", "))
	}
	return line
}
