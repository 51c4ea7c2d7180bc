package services

import (
	"fmt"
	"math"

	"planiverse/backend/curriculum"
	"planiverse/backend/models"
)

// CalculateStats derives the dashboard counters from an already-loaded
// Progress record. Nothing is persisted; callers recompute on every read.
func CalculateStats(user *models.User, progress *models.Progress) models.Stats {
	stats := models.Stats{
		CurrentStreak: user.Streak,
		DaysRemaining: curriculum.TotalDays - (user.CurrentDay - 1),
	}

	for _, n := range progress.DayNumbers() {
		entry := progress.Day(n)
		stats.TotalDays++
		if entry.Completed {
			stats.CompletedDays++
		}
		if entry.DsaCompleted {
			stats.DsaCompleted++
		}
		if entry.DevCompleted {
			stats.DevCompleted++
		}
	}

	if stats.TotalDays > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedDays) / float64(stats.TotalDays) * 100))
	}
	return stats
}

// WeeklyChart builds the completions dataset over the last seven day
// entries.
func WeeklyChart(progress *models.Progress) models.ChartData {
	numbers := progress.DayNumbers()
	if len(numbers) > 7 {
		numbers = numbers[len(numbers)-7:]
	}

	labels := make([]string, 0, len(numbers))
	data := make([]int, 0, len(numbers))
	for _, n := range numbers {
		labels = append(labels, fmt.Sprintf("Day %d", n))
		if progress.Day(n).Completed {
			data = append(data, 1)
		} else {
			data = append(data, 0)
		}
	}

	return models.ChartData{
		Labels:   labels,
		Datasets: []models.ChartDataset{{Label: "Completed Days", Data: data}},
	}
}

// DistributionChart splits the day entries by which tracks are done.
func DistributionChart(progress *models.Progress) models.ChartData {
	var dsaOnly, devOnly, both, none int
	for _, n := range progress.DayNumbers() {
		entry := progress.Day(n)
		switch {
		case entry.DsaCompleted && entry.DevCompleted:
			both++
		case entry.DsaCompleted:
			dsaOnly++
		case entry.DevCompleted:
			devOnly++
		default:
			none++
		}
	}

	return models.ChartData{
		Labels:   []string{"DSA Only", "Dev Only", "Both Completed", "None Completed"},
		Datasets: []models.ChartDataset{{Data: []int{dsaOnly, devOnly, both, none}}},
	}
}

// BuildAnalytics bundles the stats and chart datasets for one user.
func BuildAnalytics(user *models.User, progress *models.Progress) models.Analytics {
	return models.Analytics{
		Stats:        CalculateStats(user, progress),
		Weekly:       WeeklyChart(progress),
		Distribution: DistributionChart(progress),
	}
}
