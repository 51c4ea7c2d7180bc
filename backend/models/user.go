package models

import "time"

// User is the per-user record stored at users/{uid}. Field names match the
// JSON layout of the production database, so records written by older
// clients remain readable.
type User struct {
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	CreatedAt           time.Time  `json:"createdAt"`
	StartDate           time.Time  `json:"startDate"`
	CurrentDay          int        `json:"currentDay"`
	Streak              int        `json:"streak"`
	LastCompletedDay    *time.Time `json:"lastCompletedDay"`
	TotalTasksCompleted int        `json:"totalTasksCompleted"`
	Badges              []Badge    `json:"badges"`
}

type Badge struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color,omitempty"`
	EarnedAt time.Time `json:"earnedAt"`
}

// HasBadge reports whether a badge with the given id was already earned.
func (u *User) HasBadge(id string) bool {
	for _, b := range u.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}
