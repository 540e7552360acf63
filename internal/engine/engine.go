// ABOUTME: Shared date and text helpers for the report engines.
// ABOUTME: Dates are ISO strings throughout; comparison is lexicographic.
package engine

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// daysBetween returns the whole-day difference to - from for two ISO
// dates. Unparseable input counts as zero days.
func daysBetween(from, to string) int {
	a, err := time.Parse(dateLayout, from)
	if err != nil {
		return 0
	}
	b, err := time.Parse(dateLayout, to)
	if err != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}

// shiftDate returns the ISO date n days away from the given date.
func shiftDate(date string, n int) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(dateLayout)
}

// truncate shortens s to maxLen runes with a trailing ellipsis.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// tagSuffix renders a tag list as " [a, b]" or empty when there are none.
func tagSuffix(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return fmt.Sprintf(" [%s]", strings.Join(tags, ", "))
}
