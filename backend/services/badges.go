package services

import (
	"time"

	"planiverse/backend/models"
)

// Badges earned automatically when a current day completes.
var badgeCatalog = []struct {
	ID    string
	Name  string
	Color string
	Due   func(user *models.User, day int) bool
}{
	{
		ID: "first-day", Name: "First Day", Color: "warning",
		Due: func(_ *models.User, day int) bool { return day == 1 },
	},
	{
		ID: "week-streak", Name: "7 Day Streak", Color: "info",
		Due: func(user *models.User, _ int) bool { return user.Streak >= 7 },
	},
	{
		ID: "month-journey", Name: "30 Day Journey", Color: "success",
		Due: func(user *models.User, _ int) bool { return user.Streak >= 30 },
	},
}

// awardDueBadges appends any newly earned badges to the user and reports
// whether the badge set changed. Called with the user's counters already
// advanced for the completed day.
func awardDueBadges(user *models.User, day int, now time.Time) bool {
	changed := false
	for _, b := range badgeCatalog {
		if user.HasBadge(b.ID) || !b.Due(user, day) {
			continue
		}
		user.Badges = append(user.Badges, models.Badge{
			ID:       b.ID,
			Name:     b.Name,
			Color:    b.Color,
			EarnedAt: now,
		})
		changed = true
	}
	return changed
}
