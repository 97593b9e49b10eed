package models

type CheckResult struct {
	HabitID       string `json:"habitId"`
	Date          string `json:"date"`
	CurrentStreak int    `json:"currentStreak"`
}

type StreakResult struct {
	HabitID       string `json:"habitId"`
	CurrentStreak int    `json:"currentStreak"`
	LastCheckDate string `json:"lastCheckDate,omitempty"`
}

type Metrics struct {
	TotalHabits   int `json:"totalHabits"`
	TotalChecks   int `json:"totalChecks"`
	LongestStreak int `json:"longestStreak"`
}

// ExportRow is one (habit, check date) line of a habits export.
type ExportRow struct {
	HabitID string
	Name    string
	Date    string
}
