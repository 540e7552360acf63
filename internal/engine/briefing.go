// ABOUTME: Briefing engine behind the start-day tool.
// ABOUTME: Aggregates recap context, due items, notes, and workout activity.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
)

const (
	// DefaultLookbackDays is the briefing context window when none is given.
	DefaultLookbackDays = 3
	// MaxLookbackDays bounds the briefing context window.
	MaxLookbackDays = 7

	dueSoonWindowDays = 3
	recentNotesCap    = 10
	notesRenderCap    = 5
	recentWorkoutsCap = 5
	highlightCap      = 5
	fallbackLineCap   = 3
	notePreviewLen    = 100
)

// Briefing assembles the morning start-day report. It reads across the
// store, derives due-date buckets and a workout streak in memory, and
// persists the rendered text back as a tagged note.
type Briefing struct {
	repo storage.Repository
	now  func() time.Time
}

// NewBriefing creates a Briefing engine over the given store.
func NewBriefing(repo storage.Repository) *Briefing {
	return &Briefing{repo: repo, now: time.Now}
}

// Generate builds the briefing for today, saves it as a note tagged
// daily-briefing, and returns the rendered text with a persistence
// confirmation appended.
func (b *Briefing) Generate(lookbackDays int) (string, error) {
	if lookbackDays == 0 {
		lookbackDays = DefaultLookbackDays
	}
	if lookbackDays < 1 || lookbackDays > MaxLookbackDays {
		return "", fmt.Errorf("lookback_days must be between 1 and %d", MaxLookbackDays)
	}

	today := b.now().UTC().Format(dateLayout)
	lookbackDate := shiftDate(today, -lookbackDays)

	recentRecap, err := b.repo.LatestNoteWithTag(models.TagRecap)
	if err != nil {
		return "", fmt.Errorf("load recent recap: %w", err)
	}
	pendingTodos, err := b.repo.PendingTodos()
	if err != nil {
		return "", fmt.Errorf("load pending todos: %w", err)
	}
	activeGoals, err := b.repo.ActiveGoals()
	if err != nil {
		return "", fmt.Errorf("load active goals: %w", err)
	}
	recentNotes, err := b.repo.NotesCreatedSince(lookbackDate, models.TagRecap, recentNotesCap)
	if err != nil {
		return "", fmt.Errorf("load recent notes: %w", err)
	}
	recentWorkouts, err := b.repo.ListWorkouts(storage.WorkoutFilter{SinceDate: lookbackDate, Limit: recentWorkoutsCap})
	if err != nil {
		return "", fmt.Errorf("load recent workouts: %w", err)
	}
	// The streak window is wider than the briefing lookback.
	weekWorkouts, err := b.repo.ListWorkouts(storage.WorkoutFilter{SinceDate: shiftDate(today, -streakScanDays)})
	if err != nil {
		return "", fmt.Errorf("load workout week: %w", err)
	}

	soonDate := shiftDate(today, dueSoonWindowDays)

	var overdueTodos, todosDueToday, todosDueSoon []*models.Todo
	for _, t := range pendingTodos {
		switch bucket(t.DueDate, today, soonDate) {
		case bucketOverdue:
			overdueTodos = append(overdueTodos, t)
		case bucketToday:
			todosDueToday = append(todosDueToday, t)
		case bucketSoon:
			todosDueSoon = append(todosDueSoon, t)
		}
	}

	var overdueGoals, goalsDueToday, goalsDueSoon []*models.Goal
	for _, g := range activeGoals {
		switch bucket(g.DueDate, today, soonDate) {
		case bucketOverdue:
			overdueGoals = append(overdueGoals, g)
		case bucketToday:
			goalsDueToday = append(goalsDueToday, g)
		case bucketSoon:
			goalsDueSoon = append(goalsDueSoon, g)
		}
	}

	var sections []string
	sections = append(sections, fmt.Sprintf("# Daily Briefing for %s", today))
	sections = append(sections, "Good morning! Here's your context for starting the day:")

	if recentRecap != nil {
		recapDate := recentRecap.CreatedAt.UTC().Format(dateLayout)
		sections = append(sections, "\n## Recent Context")
		sections = append(sections, fmt.Sprintf("Your most recent recap was from %s. Here are the key highlights:", recapDate))
		if highlights := recapHighlights(recentRecap.Text); len(highlights) > 0 {
			sections = append(sections, strings.Join(highlights, "\n"))
		}
	}

	if len(overdueTodos) > 0 || len(overdueGoals) > 0 {
		sections = append(sections, "\n## ❗ OVERDUE ITEMS - Immediate Attention Needed")

		if len(overdueTodos) > 0 {
			sections = append(sections, fmt.Sprintf("\n### Overdue Todos (%d)", len(overdueTodos)))
			for _, t := range overdueTodos {
				daysPast := daysBetween(*t.DueDate, today)
				sections = append(sections, fmt.Sprintf("- #%d: %s (%d days overdue)", t.ID, t.Text, daysPast))
			}
		}
		if len(overdueGoals) > 0 {
			sections = append(sections, fmt.Sprintf("\n### Overdue Goals (%d)", len(overdueGoals)))
			for _, g := range overdueGoals {
				daysPast := daysBetween(*g.DueDate, today)
				sections = append(sections, fmt.Sprintf("- #%d: %s (%d days overdue)", g.ID, g.Text, daysPast))
			}
		}
	}

	if len(todosDueToday) > 0 || len(goalsDueToday) > 0 {
		sections = append(sections, "\n## 🎯 TODAY'S PRIORITIES")

		if len(todosDueToday) > 0 {
			sections = append(sections, fmt.Sprintf("\n### Todos Due Today (%d)", len(todosDueToday)))
			for _, t := range todosDueToday {
				sections = append(sections, fmt.Sprintf("- #%d: %s%s", t.ID, t.Text, tagSuffix(t.Tags)))
			}
		}
		if len(goalsDueToday) > 0 {
			sections = append(sections, fmt.Sprintf("\n### Goals Due Today (%d)", len(goalsDueToday)))
			for _, g := range goalsDueToday {
				sections = append(sections, fmt.Sprintf("- #%d: %s", g.ID, g.Text))
			}
		}
	}

	if len(todosDueSoon) > 0 || len(goalsDueSoon) > 0 {
		sections = append(sections, "\n## 📅 COMING UP (Next 3 Days)")

		if len(todosDueSoon) > 0 {
			sections = append(sections, fmt.Sprintf("\n### Upcoming Todos (%d)", len(todosDueSoon)))
			for _, t := range todosDueSoon {
				sections = append(sections, fmt.Sprintf("- #%d: %s (due %s)%s", t.ID, t.Text, *t.DueDate, tagSuffix(t.Tags)))
			}
		}
		if len(goalsDueSoon) > 0 {
			sections = append(sections, fmt.Sprintf("\n### Upcoming Goals (%d)", len(goalsDueSoon)))
			for _, g := range goalsDueSoon {
				sections = append(sections, fmt.Sprintf("- #%d: %s (due %s)", g.ID, g.Text, *g.DueDate))
			}
		}
	}

	if len(recentNotes) > 0 {
		sections = append(sections, fmt.Sprintf("\n## 💡 Recent Notes & Insights (Last %d Days)", lookbackDays))
		for i, n := range recentNotes {
			if i >= notesRenderCap {
				break
			}
			sections = append(sections, fmt.Sprintf("- #%d: %s%s", n.ID, truncate(n.Text, notePreviewLen), tagSuffix(n.Tags)))
		}
	}

	if len(weekWorkouts) > 0 {
		sections = append(sections, b.workoutSection(recentWorkouts, weekWorkouts, today, lookbackDays)...)
	}

	totalPending := len(pendingTodos) + len(activeGoals)
	urgentCount := len(overdueTodos) + len(overdueGoals) + len(todosDueToday) + len(goalsDueToday)

	sections = append(sections, "\n## 📊 Quick Stats")
	sections = append(sections, fmt.Sprintf("- Total pending items: %d", totalPending))
	sections = append(sections, fmt.Sprintf("- Items needing attention today: %d", urgentCount))
	sections = append(sections, fmt.Sprintf("- Recent notes for context: %d", len(recentNotes)))
	if len(weekWorkouts) > 0 {
		sections = append(sections, fmt.Sprintf("- Workouts in the last %d days: %d", streakScanDays, len(weekWorkouts)))
	}

	switch {
	case urgentCount > 0:
		sections = append(sections, "\n## 🚀 Focus for Today")
		sections = append(sections, fmt.Sprintf("You have %d priority items today. Start with the overdue items, then tackle today's priorities. You've got this!", urgentCount))
	case totalPending > 0:
		sections = append(sections, "\n## 🌟 Opportunity Ahead")
		sections = append(sections, fmt.Sprintf("Great news - no urgent items today! This is a perfect opportunity to make progress on your %d pending items or plan ahead.", totalPending))
	default:
		sections = append(sections, "\n## 🎉 Clear Horizon")
		sections = append(sections, "Excellent! You have a clean slate today. Consider setting new goals or reviewing your long-term objectives.")
	}

	briefingText := strings.Join(sections, "\n")

	note := models.NewNote(briefingText, []string{models.TagBriefing, models.DateTag(today), models.TagStartDay})
	if err := b.repo.CreateNote(note); err != nil {
		return "", fmt.Errorf("save briefing note: %w", err)
	}

	return briefingText + "\n\n---\n💾 This briefing has been saved as a note tagged with \"daily-briefing\" for your records.", nil
}

// workoutSection renders recent workout lines plus streak and recency
// commentary.
func (b *Briefing) workoutSection(recent, week []*models.Workout, today string, lookbackDays int) []string {
	lines := []string{fmt.Sprintf("\n## 🏋️ Workout Activity (Last %d Days)", lookbackDays)}

	for _, w := range recent {
		var metrics []string
		if w.DurationMins != nil {
			metrics = append(metrics, fmt.Sprintf("%d minutes", *w.DurationMins))
		}
		if w.DistanceMiles != nil {
			metrics = append(metrics, fmt.Sprintf("%.1f miles", *w.DistanceMiles))
		}
		if w.RPE != nil {
			metrics = append(metrics, fmt.Sprintf("RPE %d/10", *w.RPE))
		}
		line := fmt.Sprintf("- #%d: %s on %s", w.ID, strings.ToUpper(string(w.Type)), w.Date)
		if len(metrics) > 0 {
			line += fmt.Sprintf(" (%s)", strings.Join(metrics, ", "))
		}
		lines = append(lines, line)
	}

	dates := make(map[string]bool, len(week))
	lastDate := ""
	for _, w := range week {
		dates[w.Date] = true
		if w.Date > lastDate {
			lastDate = w.Date
		}
	}

	if streak := todayStreak(dates, today); streak > 0 {
		lines = append(lines, fmt.Sprintf("- Current streak: %d days 🔥", streak))
	}

	switch daysSince := daysBetween(lastDate, today); {
	case daysSince <= 0:
		lines = append(lines, "- You already worked out today. Nice work!")
	case daysSince == 1:
		lines = append(lines, "- Last workout was yesterday. Keep the momentum going!")
	default:
		lines = append(lines, fmt.Sprintf("- It's been %d days since your last workout. Time to move!", daysSince))
	}

	return lines
}

type dueBucket int

const (
	bucketNone dueBucket = iota
	bucketOverdue
	bucketToday
	bucketSoon
)

// bucket classifies a due date against today and the due-soon horizon.
// ISO dates compare correctly as strings.
func bucket(dueDate *string, today, soonDate string) dueBucket {
	if dueDate == nil || *dueDate == "" {
		return bucketNone
	}
	switch due := *dueDate; {
	case due < today:
		return bucketOverdue
	case due == today:
		return bucketToday
	case due <= soonDate:
		return bucketSoon
	default:
		return bucketNone
	}
}

// recapHighlights pulls up to five bullet lines from the head of a recap.
// When a recap has no bullets it falls back to the first few substantial
// lines.
func recapHighlights(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}

	var bullets []string
	for _, line := range lines {
		if strings.Contains(line, "- ") || strings.Contains(line, "•") {
			bullets = append(bullets, line)
			if len(bullets) == highlightCap {
				break
			}
		}
	}
	if len(bullets) > 0 {
		return bullets
	}

	var fallback []string
	for _, line := range lines {
		if len(strings.TrimSpace(line)) > 20 {
			fallback = append(fallback, line)
			if len(fallback) == fallbackLineCap {
				break
			}
		}
	}
	return fallback
}
