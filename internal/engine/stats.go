// ABOUTME: Stats engine behind the workout-stats tool.
// ABOUTME: Aggregates workouts over an optional window and type filter.
package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
)

// trendMinDays is the smallest analysis window that gets a half-over-half
// trend comparison.
const trendMinDays = 14

// Stats computes workout aggregates and trends.
type Stats struct {
	repo storage.Repository
	now  func() time.Time
}

// NewStats creates a Stats engine over the given store.
func NewStats(repo storage.Repository) *Stats {
	return &Stats{repo: repo, now: time.Now}
}

// Report renders workout statistics. days limits the window (0 means all
// time) and typ filters by workout type (nil means all types).
func (s *Stats) Report(days int, typ *models.WorkoutType) (string, error) {
	today := s.now().UTC().Format(dateLayout)

	filter := storage.WorkoutFilter{Type: typ}
	if days > 0 {
		filter.SinceDate = shiftDate(today, -days)
	}
	workouts, err := s.repo.ListWorkouts(filter)
	if err != nil {
		return "", fmt.Errorf("load workouts: %w", err)
	}

	if len(workouts) == 0 {
		periodDesc := ""
		if days > 0 {
			periodDesc = fmt.Sprintf(" in the last %d days", days)
		}
		typeDesc := ""
		if typ != nil {
			typeDesc = " " + string(*typ)
		}
		return fmt.Sprintf("📊 No%s workouts found%s.", typeDesc, periodDesc), nil
	}

	agg := aggregate(workouts)

	periodDesc := " (All time)"
	if days > 0 {
		periodDesc = fmt.Sprintf(" (Last %d days)", days)
	}
	typeDesc := ""
	if typ != nil {
		typeDesc = " " + strings.ToUpper(string(*typ))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏋️ **%s Workout Statistics%s**\n\n", typeDesc, periodDesc)

	b.WriteString("📊 **Overview:**\n")
	fmt.Fprintf(&b, "• Total workouts: %d\n", agg.count)
	fmt.Fprintf(&b, "• Current streak: %d days 🔥\n", latestRunStreak(distinctDatesDesc(workouts)))

	if agg.totalDistance > 0 {
		fmt.Fprintf(&b, "• Total distance: %.1f miles\n", agg.totalDistance)
		fmt.Fprintf(&b, "• Average distance: %.1f miles per workout\n", agg.totalDistance/float64(agg.count))
	}
	if agg.totalDuration > 0 {
		fmt.Fprintf(&b, "• Total time: %dh %dm\n", agg.totalDuration/60, agg.totalDuration%60)
		fmt.Fprintf(&b, "• Average duration: %d minutes\n", int(math.Round(float64(agg.totalDuration)/float64(agg.count))))
	}
	if agg.avgRPE > 0 {
		fmt.Fprintf(&b, "• Average RPE: %.1f/10\n", agg.avgRPE)
	}
	if agg.avgHeartRate > 0 {
		fmt.Fprintf(&b, "• Average heart rate: %d BPM\n", int(math.Round(agg.avgHeartRate)))
	}
	if agg.lastDate != "" {
		fmt.Fprintf(&b, "• Last workout: %s\n", agg.lastDate)
	}

	if typ == nil {
		if breakdown := typeBreakdown(workouts); len(breakdown) > 1 {
			b.WriteString("\n🎯 **Workout Types:**\n")
			for _, tc := range breakdown {
				pct := math.Round(float64(tc.count) / float64(agg.count) * 100)
				fmt.Fprintf(&b, "• %s: %d workouts (%.0f%%)\n", tc.typ, tc.count, pct)
			}
		}
	}

	if days >= trendMinDays {
		b.WriteString(trendAnalysis(workouts, today, days))
	}

	return b.String(), nil
}

type aggregates struct {
	count         int
	totalDistance float64
	totalDuration int
	avgRPE        float64
	avgHeartRate  float64
	lastDate      string
}

// aggregate computes overview totals. Averages skip workouts without the
// relevant metric rather than counting them as zero.
func aggregate(workouts []*models.Workout) aggregates {
	agg := aggregates{count: len(workouts)}
	rpeSum, rpeN := 0, 0
	hrSum, hrN := 0, 0

	for _, w := range workouts {
		if w.DistanceMiles != nil {
			agg.totalDistance += *w.DistanceMiles
		}
		if w.DurationMins != nil {
			agg.totalDuration += *w.DurationMins
		}
		if w.RPE != nil {
			rpeSum += *w.RPE
			rpeN++
		}
		if w.AvgHeartRate != nil {
			hrSum += *w.AvgHeartRate
			hrN++
		}
		if w.Date > agg.lastDate {
			agg.lastDate = w.Date
		}
	}

	if rpeN > 0 {
		agg.avgRPE = float64(rpeSum) / float64(rpeN)
	}
	if hrN > 0 {
		agg.avgHeartRate = float64(hrSum) / float64(hrN)
	}
	return agg
}

// distinctDatesDesc returns the unique workout dates sorted newest first.
func distinctDatesDesc(workouts []*models.Workout) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, w := range workouts {
		if !seen[w.Date] {
			seen[w.Date] = true
			dates = append(dates, w.Date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

type typeCount struct {
	typ   string
	count int
}

// typeBreakdown counts workouts by type, most frequent first with ties
// broken alphabetically.
func typeBreakdown(workouts []*models.Workout) []typeCount {
	counts := make(map[string]int)
	for _, w := range workouts {
		counts[string(w.Type)]++
	}

	breakdown := make([]typeCount, 0, len(counts))
	for typ, n := range counts {
		breakdown = append(breakdown, typeCount{typ: typ, count: n})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].count != breakdown[j].count {
			return breakdown[i].count > breakdown[j].count
		}
		return breakdown[i].typ < breakdown[j].typ
	})
	return breakdown
}

type halfStats struct {
	workouts    int
	avgDistance float64
	avgDuration float64
	avgRPE      float64
}

// trendAnalysis compares the recent half of the window against the older
// half and renders only the deltas large enough to matter.
func trendAnalysis(workouts []*models.Workout, today string, days int) string {
	halfPeriod := days / 2
	splitDate := shiftDate(today, -halfPeriod)

	var recent, previous []*models.Workout
	for _, w := range workouts {
		if w.Date >= splitDate {
			recent = append(recent, w)
		} else {
			previous = append(previous, w)
		}
	}

	recentStats := halfAggregates(recent)
	previousStats := halfAggregates(previous)

	var b strings.Builder
	b.WriteString("\n\n📈 **Trend Analysis:**")

	workoutChange := recentStats.workouts - previousStats.workouts
	switch {
	case workoutChange > 0:
		fmt.Fprintf(&b, "\n• Workout frequency: +%d workouts vs previous period 📈", workoutChange)
	case workoutChange < 0:
		fmt.Fprintf(&b, "\n• Workout frequency: %d workouts vs previous period 📉", workoutChange)
	default:
		b.WriteString("\n• Workout frequency: Consistent with previous period ➡️")
	}

	distanceChange := percentChange(previousStats.avgDistance, recentStats.avgDistance)
	if math.Abs(distanceChange) > 5 {
		fmt.Fprintf(&b, "\n• Average distance: %s%.1f%% %s", plusSign(distanceChange), distanceChange, trendArrow(distanceChange))
	}

	durationChange := percentChange(previousStats.avgDuration, recentStats.avgDuration)
	if math.Abs(durationChange) > 5 {
		fmt.Fprintf(&b, "\n• Average duration: %s%.1f%% %s", plusSign(durationChange), durationChange, trendArrow(durationChange))
	}

	rpeChange := recentStats.avgRPE - previousStats.avgRPE
	if math.Abs(rpeChange) > 0.5 {
		interpretation := "(feeling easier)"
		if rpeChange > 0 {
			interpretation = "(working harder)"
		}
		fmt.Fprintf(&b, "\n• Perceived effort: %s%.1f RPE %s %s", plusSign(rpeChange), rpeChange, interpretation, trendArrow(rpeChange))
	}

	return b.String()
}

func halfAggregates(workouts []*models.Workout) halfStats {
	h := halfStats{workouts: len(workouts)}
	distSum, distN := 0.0, 0
	durSum, durN := 0, 0
	rpeSum, rpeN := 0, 0

	for _, w := range workouts {
		if w.DistanceMiles != nil {
			distSum += *w.DistanceMiles
			distN++
		}
		if w.DurationMins != nil {
			durSum += *w.DurationMins
			durN++
		}
		if w.RPE != nil {
			rpeSum += *w.RPE
			rpeN++
		}
	}

	if distN > 0 {
		h.avgDistance = distSum / float64(distN)
	}
	if durN > 0 {
		h.avgDuration = float64(durSum) / float64(durN)
	}
	if rpeN > 0 {
		h.avgRPE = float64(rpeSum) / float64(rpeN)
	}
	return h
}

// percentChange guards against an empty baseline; no prior data reads as
// no change.
func percentChange(previous, recent float64) float64 {
	if previous == 0 {
		return 0
	}
	return (recent - previous) / previous * 100
}

func plusSign(v float64) string {
	if v > 0 {
		return "+"
	}
	return ""
}

func trendArrow(v float64) string {
	if v > 0 {
		return "📈"
	}
	return "📉"
}
