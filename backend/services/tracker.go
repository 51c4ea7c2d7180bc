package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"planiverse/backend/curriculum"
	"planiverse/backend/models"
	"planiverse/backend/store"
)

// Tracker owns the per-user User and Progress records and the day-completion
// state machine. Every read-modify-write runs under a per-user mutex, so the
// only real race (both categories of one day completed concurrently) is
// serialized.
type Tracker struct {
	store     store.Store
	startDate time.Time
	locks     sync.Map // uid -> *sync.Mutex
}

func NewTracker(s store.Store, startDate time.Time) *Tracker {
	return &Tracker{store: s, startDate: startDate}
}

func (t *Tracker) lock(uid string) *sync.Mutex {
	mu, _ := t.locks.LoadOrStore(uid, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// EnsureInitialized creates the User and Progress records with deterministic
// defaults on first sign-in and returns them. Existing records are returned
// untouched. This is the only place records are created; read paths report
// NotFound instead of fabricating defaults.
func (t *Tracker) EnsureInitialized(ctx context.Context, uid, name, email string) (*models.User, *models.Progress, error) {
	mu := t.lock(uid)
	mu.Lock()
	defer mu.Unlock()

	var user models.User
	err := t.store.Get(ctx, store.UserPath(uid), &user)
	switch {
	case errors.Is(err, store.ErrNotFound):
		if name == "" {
			name = "User"
		}
		user = models.User{
			Name:       name,
			Email:      email,
			CreatedAt:  time.Now().UTC(),
			StartDate:  t.startDate,
			CurrentDay: 1,
			Badges:     []models.Badge{},
		}
		if err := t.store.Set(ctx, store.UserPath(uid), user); err != nil {
			return nil, nil, fmt.Errorf("create user record: %w", err)
		}
	case err != nil:
		return nil, nil, fmt.Errorf("load user record: %w", err)
	}

	var progress models.Progress
	err = t.store.Get(ctx, store.ProgressPath(uid), &progress)
	switch {
	case errors.Is(err, store.ErrNotFound):
		progress = models.Progress{Days: map[string]*models.Day{
			"1": {Date: t.startDate},
		}}
		if err := t.store.Set(ctx, store.ProgressPath(uid), progress); err != nil {
			return nil, nil, fmt.Errorf("create progress record: %w", err)
		}
	case err != nil:
		return nil, nil, fmt.Errorf("load progress record: %w", err)
	}

	return &user, &progress, nil
}

// User loads the record at users/{uid}.
func (t *Tracker) User(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	if err := t.store.Get(ctx, store.UserPath(uid), &user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load user record: %w", err)
	}
	return &user, nil
}

// Progress loads the record at progress/{uid}.
func (t *Tracker) Progress(ctx context.Context, uid string) (*models.Progress, error) {
	var progress models.Progress
	if err := t.store.Get(ctx, store.ProgressPath(uid), &progress); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load progress record: %w", err)
	}
	return &progress, nil
}

// CompleteCategory marks one track of a day complete and stores its
// checklist. When this makes both tracks complete the day is marked
// completed, and if it is the user's current day the progress pointer,
// streak and task counter advance by one. Completing a past day out of
// order marks it complete without touching the pointer or counters.
//
// Re-completing an already complete category returns ErrAlreadyCompleted
// without mutating anything, which also guarantees at most one advancement
// per day.
func (t *Tracker) CompleteCategory(ctx context.Context, uid string, day int, category models.Category, checklist []bool) error {
	if err := validateDay(day); err != nil {
		return err
	}
	if err := validateChecklist(day, category, checklist); err != nil {
		return err
	}

	mu := t.lock(uid)
	mu.Lock()
	defer mu.Unlock()

	var progress models.Progress
	if err := t.store.Get(ctx, store.ProgressPath(uid), &progress); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return fmt.Errorf("load progress record: %w", err)
	}

	entry := progress.EnsureDay(day)
	if entry.CategoryCompleted(category) {
		return ErrAlreadyCompleted
	}

	now := time.Now().UTC()
	switch category {
	case models.CategoryDSA:
		entry.DsaChecklist = checklist
		entry.DsaCompleted = true
	case models.CategoryDev:
		entry.DevChecklist = checklist
		entry.DevCompleted = true
	}
	entry.Date = now

	if entry.DsaCompleted && entry.DevCompleted {
		entry.Completed = true
		if err := t.advanceUser(ctx, uid, day, now); err != nil {
			return err
		}
	}

	if err := t.store.Update(ctx, store.ProgressPath(uid), map[string]interface{}{"days": progress.Days}); err != nil {
		return fmt.Errorf("save progress record: %w", err)
	}
	return nil
}

// advanceUser rolls the user's pointer and counters forward when the
// completed day is the current one, and awards any badges that became due.
func (t *Tracker) advanceUser(ctx context.Context, uid string, day int, now time.Time) error {
	var user models.User
	err := t.store.Get(ctx, store.UserPath(uid), &user)
	if errors.Is(err, store.ErrNotFound) {
		// Day stays marked complete; there is no user record to advance.
		return nil
	}
	if err != nil {
		return fmt.Errorf("load user record: %w", err)
	}
	if user.CurrentDay != day {
		return nil
	}

	user.CurrentDay = day + 1
	user.Streak++
	user.LastCompletedDay = &now
	user.TotalTasksCompleted++

	fields := map[string]interface{}{
		"currentDay":          user.CurrentDay,
		"streak":              user.Streak,
		"lastCompletedDay":    now,
		"totalTasksCompleted": user.TotalTasksCompleted,
	}
	if awardDueBadges(&user, day, now) {
		fields["badges"] = user.Badges
	}

	if err := t.store.Update(ctx, store.UserPath(uid), fields); err != nil {
		return fmt.Errorf("advance user record: %w", err)
	}
	return nil
}

// SaveChecklist persists checklist state for one track without completing
// it. A day whose two flags are both already true is healed to completed
// here as well, in case the flags were ever set through divergent paths.
func (t *Tracker) SaveChecklist(ctx context.Context, uid string, day int, category models.Category, checklist []bool) error {
	if err := validateDay(day); err != nil {
		return err
	}
	if err := validateChecklist(day, category, checklist); err != nil {
		return err
	}

	mu := t.lock(uid)
	mu.Lock()
	defer mu.Unlock()

	var progress models.Progress
	if err := t.store.Get(ctx, store.ProgressPath(uid), &progress); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return fmt.Errorf("load progress record: %w", err)
	}

	entry := progress.EnsureDay(day)
	switch category {
	case models.CategoryDSA:
		entry.DsaChecklist = checklist
	case models.CategoryDev:
		entry.DevChecklist = checklist
	}
	entry.Date = time.Now().UTC()
	if entry.DsaCompleted && entry.DevCompleted {
		entry.Completed = true
	}

	if err := t.store.Update(ctx, store.ProgressPath(uid), map[string]interface{}{"days": progress.Days}); err != nil {
		return fmt.Errorf("save progress record: %w", err)
	}
	return nil
}

// AddBadge appends a badge to the user, idempotent on badge id. Reports
// whether the badge was newly added.
func (t *Tracker) AddBadge(ctx context.Context, uid string, badge models.Badge) (bool, error) {
	if badge.ID == "" {
		return false, validationErrorf("badge id is required")
	}

	mu := t.lock(uid)
	mu.Lock()
	defer mu.Unlock()

	var user models.User
	if err := t.store.Get(ctx, store.UserPath(uid), &user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("load user record: %w", err)
	}

	if user.HasBadge(badge.ID) {
		return false, nil
	}

	badge.EarnedAt = time.Now().UTC()
	user.Badges = append(user.Badges, badge)
	if err := t.store.Update(ctx, store.UserPath(uid), map[string]interface{}{"badges": user.Badges}); err != nil {
		return false, fmt.Errorf("save user record: %w", err)
	}
	return true, nil
}

func validateDay(day int) error {
	if day < 1 || day > curriculum.TotalDays {
		return validationErrorf("day number must be between 1 and %d", curriculum.TotalDays)
	}
	return nil
}

func validateChecklist(day int, category models.Category, checklist []bool) error {
	var want int
	switch category {
	case models.CategoryDSA:
		want = curriculum.DSAChecklistLen(day)
	case models.CategoryDev:
		want = curriculum.DevChecklistLen(day)
	default:
		return validationErrorf("unknown category %q", category)
	}
	if len(checklist) != want {
		return validationErrorf("checklist must have %d entries for day %d, got %d", want, day, len(checklist))
	}
	return nil
}
