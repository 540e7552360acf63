// ABOUTME: The two workout streak definitions used by the report engines.
// ABOUTME: Today-anchored (briefing) and latest-date-anchored (stats) differ on purpose.
package engine

// streakScanDays bounds how far back the briefing streak looks.
const streakScanDays = 7

// todayStreak counts consecutive calendar days with at least one workout,
// walking backward from today. A day without a workout ends the count,
// except today itself: a rest day in progress leaves the scan alive so
// yesterday's run still shows as a streak.
func todayStreak(workoutDates map[string]bool, today string) int {
	streak := 0
	for i := 0; i < streakScanDays; i++ {
		day := shiftDate(today, -i)
		if workoutDates[day] {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// latestRunStreak counts the run of consecutive days ending at the most
// recent logged date, independent of today. dates must be distinct and
// sorted newest first.
func latestRunStreak(dates []string) int {
	if len(dates) == 0 {
		return 0
	}
	streak := 1
	for i := 0; i < len(dates)-1; i++ {
		if daysBetween(dates[i+1], dates[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}
