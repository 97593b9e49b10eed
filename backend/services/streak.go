package services

import (
	"sort"
	"time"

	"habittracker/backend/models"
)

// uniqueDays parses YYYY-MM-DD strings as UTC calendar days, drops unparseable
// and repeated entries, and returns them ascending.
func uniqueDays(dates []string) []time.Time {
	seen := make(map[string]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if _, dup := seen[d]; dup {
			continue
		}
		day, err := time.ParseInLocation(models.DateLayout, d, time.UTC)
		if err != nil {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// consecutive compares calendar dates, so DST or time-of-day never matter.
func consecutive(prev, next time.Time) bool {
	return prev.AddDate(0, 0, 1).Equal(next)
}

// CurrentStreak counts the run of consecutive days that ends at the latest
// check date, and returns that date. Zero checks give (0, "").
func CurrentStreak(dates []string) (int, string) {
	days := uniqueDays(dates)
	if len(days) == 0 {
		return 0, ""
	}

	last := len(days) - 1
	streak := 1
	for i := last - 1; i >= 0; i-- {
		if !consecutive(days[i], days[i+1]) {
			break
		}
		streak++
	}
	return streak, days[last].Format(models.DateLayout)
}

// LongestStreak is the longest run of consecutive days anywhere in dates.
func LongestStreak(dates []string) int {
	days := uniqueDays(dates)
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if consecutive(days[i-1], days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
