package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"planiverse/backend/models"
	"planiverse/backend/services"
	"planiverse/backend/store"

	"github.com/robfig/cron/v3"
)

// SnapshotJob materializes each user's derived stats to stats/{uid} once a
// day, so dashboards can read a single small document.
type SnapshotJob struct {
	Store  store.Store
	Logger *log.Logger
}

func NewSnapshotJob(s store.Store, logger *log.Logger) *SnapshotJob {
	return &SnapshotJob{Store: s, Logger: logger}
}

// Schedule registers the job to run at midnight UTC.
func (j *SnapshotJob) Schedule(c *cron.Cron) error {
	_, err := c.AddFunc("0 0 * * *", j.Run)
	return err
}

func (j *SnapshotJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	users, err := j.Store.List(ctx, "users")
	if err != nil {
		j.Logger.Printf("stats snapshot: list users: %v", err)
		return
	}

	written := 0
	for uid, raw := range users {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			j.Logger.Printf("stats snapshot: decode user %s: %v", uid, err)
			continue
		}

		var progress models.Progress
		err := j.Store.Get(ctx, store.ProgressPath(uid), &progress)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			j.Logger.Printf("stats snapshot: load progress %s: %v", uid, err)
			continue
		}

		snapshot := models.StatsSnapshot{
			Stats:       services.CalculateStats(&user, &progress),
			GeneratedAt: time.Now().UTC(),
		}
		if err := j.Store.Set(ctx, store.StatsPath(uid), snapshot); err != nil {
			j.Logger.Printf("stats snapshot: save %s: %v", uid, err)
			continue
		}
		written++
	}

	j.Logger.Printf("stats snapshot: wrote %d of %d users", written, len(users))
}
