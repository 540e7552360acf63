// ABOUTME: Tests for the two streak definitions.
// ABOUTME: Pins the today-anchored and latest-date-anchored semantics separately.
package engine

import "testing"

func TestTodayStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		today string
		want  int
	}{
		{
			name:  "no workouts",
			dates: nil,
			today: "2026-08-29",
			want:  0,
		},
		{
			name:  "workout today only",
			dates: []string{"2026-08-29"},
			today: "2026-08-29",
			want:  1,
		},
		{
			name:  "three consecutive days ending today",
			dates: []string{"2026-08-27", "2026-08-28", "2026-08-29"},
			today: "2026-08-29",
			want:  3,
		},
		{
			name:  "rest day today keeps yesterday's run alive",
			dates: []string{"2026-08-27", "2026-08-28"},
			today: "2026-08-29",
			want:  2,
		},
		{
			name:  "gap before yesterday ends the run",
			dates: []string{"2026-08-26", "2026-08-28"},
			today: "2026-08-29",
			want:  1,
		},
		{
			name:  "last workout two days ago does not count",
			dates: []string{"2026-08-27"},
			today: "2026-08-29",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := make(map[string]bool, len(tt.dates))
			for _, d := range tt.dates {
				dates[d] = true
			}
			if got := todayStreak(dates, tt.today); got != tt.want {
				t.Errorf("todayStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLatestRunStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{
			name:  "empty",
			dates: nil,
			want:  0,
		},
		{
			name:  "single date",
			dates: []string{"2024-01-15"},
			want:  1,
		},
		{
			name:  "three consecutive with a gap before",
			dates: []string{"2024-01-17", "2024-01-16", "2024-01-15", "2024-01-10"},
			want:  3,
		},
		{
			name:  "gap right after the latest date",
			dates: []string{"2024-01-17", "2024-01-15", "2024-01-14"},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := latestRunStreak(tt.dates); got != tt.want {
				t.Errorf("latestRunStreak = %d, want %d", got, tt.want)
			}
		})
	}
}
