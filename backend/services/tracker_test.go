package services_test

import (
	"context"
	"testing"
	"time"

	"planiverse/backend/curriculum"
	"planiverse/backend/models"
	"planiverse/backend/services"
	"planiverse/backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startDate = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

func newTracker() *services.Tracker {
	return services.NewTracker(store.NewMemoryStore(), startDate)
}

func fullChecklist(n int) []bool {
	checklist := make([]bool, n)
	for i := range checklist {
		checklist[i] = true
	}
	return checklist
}

func dsaChecklist(day int) []bool { return fullChecklist(curriculum.DSAChecklistLen(day)) }
func devChecklist(day int) []bool { return fullChecklist(curriculum.DevChecklistLen(day)) }

func TestEnsureInitializedCreatesDefaults(t *testing.T) {
	tracker := newTracker()
	ctx := context.Background()

	user, progress, err := tracker.EnsureInitialized(ctx, "u1", "Alice", "alice@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, 1, user.CurrentDay)
	assert.Equal(t, 0, user.Streak)
	assert.Equal(t, 0, user.TotalTasksCompleted)
	assert.Nil(t, user.LastCompletedDay)
	assert.Empty(t, user.Badges)
	assert.Equal(t, startDate, user.StartDate)

	day := progress.Day(1)
	require.NotNil(t, day)
	assert.False(t, day.Completed)
	assert.False(t, day.DsaCompleted)
	assert.False(t, day.DevCompleted)
}

func TestEnsureInitializedIsIdempotent(t *testing.T) {
	tracker := newTracker()
	ctx := context.Background()

	_, _, err := tracker.EnsureInitialized(ctx, "u1", "Alice", "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, tracker.CompleteCategory(ctx, "u1", 1, models.CategoryDSA, dsaChecklist(1)))

	user, progress, err := tracker.EnsureInitialized(ctx, "u1", "Someone Else", "other@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name, "existing record returned untouched")
	assert.True(t, progress.Day(1).DsaCompleted)
}

func TestCompleteBothCategoriesAdvancesUser(t *testing.T) {
	tracker := newTracker()
	ctx := context.Background()
	_, _, err := tracker.EnsureInitialized(ctx, "u1", "Alice", "")
	require.NoError(t, err)

	require.NoError(t, tracker.CompleteCategory(ctx, "u1", 1, models.CategoryDSA, dsaChecklist(1)))

	// One category alone does not complete the day or move the pointer.
	progress, err := tracker.Progress(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, progress.Day(1).Completed)
	user, err := tracker.User(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, user.CurrentDay)

	require.NoError(t, tracker.CompleteCategory(ctx, "u1", 1, models.CategoryDev, devChecklist(1)))

	progress, err = tracker.Progress(ctx, "u1")
	require.NoError(t, err)
	day := progress.Day(1)
	assert.True(t, day.Completed)
	assert.True(t, day.DsaCompleted)
	assert.True(t, day.DevCompleted)

	user, err = tracker.User(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, user.CurrentDay)
	assert.Equal(t, 1, user.Streak)
	assert.Equal(t, 1, user.TotalTasksCompleted)
	assert.NotNil(t, user.LastCompletedDay)
}

func TestCompleteCategoriesInReverseOrder(t *testing.T) {
	tracker := newTracker()
	ctx := context.Background()
	_, _, err := tracker.EnsureInitialized(ctx, "u1", "Alice", "")
	require.NoError(t, err)

	require.NoError(t, tracker.CompleteCategory(ctx, "u1", 1, models.CategoryDev, devChecklist(1)))
	require.NoError(t, tracker.CompleteCategory(ctx, "u1", 1, models.CategoryDSA, dsaChecklist(1)))

	progress, err := tracker.Progress(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, progress.Day(1).Completed)

	user, err := tracker.User(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, user.CurrentDay)
	assert.Equal(t, 1, user.Streak)
}

func TestDuplicateCompletionIsRejectedWithoutSideEffects(t *testing.T) {
	tracker := newTracker()
	ctx := context.Background()
	_, _, err := tracker.EnsureInitialized(ctx, "u1", "Alice", "")
	require.NoError(t, err)

	require.NoError(t, tracker.CompleteCategory(ctx, "u1", 1, models.CategoryDSA, dsaChecklist(1)))
	require.NoError(t, tracker.CompleteCategory(ctx, "u1", 1, models.CategoryDev, devChecklist(1)))

	err = tracker.CompleteCategory(ctx, "u1", 1, models.CategoryDSA, dsaChecklist(1))
	assert.ErrorIs(t, err, services.ErrAlreadyCompleted)

	user, err := tracker.User(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, user.CurrentDay)
	assert.Equal(t, 1, user.Streak)
	assert.Equal(t, 1, user.TotalTasksCompleted, "counter incremented at most once per day")
}

func TestCompletingPastDayDoesNotTouchCounters(t *testing.T) {
	tracker := newTracker()
	ctx := context.Background()
	_, _, err := tracker.EnsureInitialized(ctx, "u1", "Alice", "")
	require.NoError(t, err)

	// Day 3 is not the user's current day.
	require.NoError(t, tracker.CompleteCategory(ctx, "u1", 3, models.CategoryDSA, dsaChecklist(3)))
	require.NoError(t, tracker.CompleteCategory(ctx, "u1", 3, models.CategoryDev, devChecklist(3)))

	progress, err := tracker.Progress(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, progress.Day(3).Completed)

	user, err := tracker.User(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, user.CurrentDay)
	assert.Equal(t, 0, user.Streak)
	assert.Equal(t, 0, user.TotalTasksCompleted)
}

func TestCompleteCategoryValidation(t *testing.T) {
	tracker := newTracker()
	ctx := context.Background()
	_, _, err := tracker.EnsureInitialized(ctx, "u1", "Alice", "")
	require.NoError(t, err)

	var verr *services.ValidationError

	err = tracker.CompleteCategory(ctx, "u1", 0, models.CategoryDSA, dsaChecklist(1))
	assert.ErrorAs(t, err, &verr)

	err = tracker.CompleteCategory(ctx, "u1", 731, models.CategoryDSA, dsaChecklist(1))
	assert.ErrorAs(t, err, &verr)

	err = tracker.CompleteCategory(ctx, "u1", 1, models.CategoryDSA, []bool{true, true})
	assert.ErrorAs(t, err, &verr)

	err = tracker.CompleteCategory(ctx, "u1", 1, models.Category("unknown"), nil)
	assert.ErrorAs(t, err, &verr)

	// Rejected before mutating: the day entry is untouched.
	progress, err := tracker.Progress(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, progress.Day(1).DsaCompleted)
}

func TestCompleteCategoryWithoutProgressRecord(t *testing.T) {
	tracker := newTracker()
	err := tracker.CompleteCategory(context.Background(), "ghost", 1, models.CategoryDSA, dsaChecklist(1))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSaveChecklistDoesNotComplete(t *testing.T) {
	tracker := newTracker()
	ctx := context.Background()
	_, _, err := tracker.EnsureInitialized(ctx, "u1", "Alice", "")
	require.NoError(t, err)

	partial := make([]bool, curriculum.DSAChecklistLen(1))
	partial[0] = true
	require.NoError(t, tracker.SaveChecklist(ctx, "u1", 1, models.CategoryDSA, partial))

	progress, err := tracker.Progress(ctx, "u1")
	require.NoError(t, err)
	day := progress.Day(1)
	assert.Equal(t, partial, day.DsaChecklist)
	assert.False(t, day.DsaCompleted)
	assert.False(t, day.Completed)
}

func TestFirstDayBadgeAwardedOnCompletion(t *testing.T) {
	tracker := newTracker()
	ctx := context.Background()
	_, _, err := tracker.EnsureInitialized(ctx, "u1", "Alice", "")
	require.NoError(t, err)

	require.NoError(t, tracker.CompleteCategory(ctx, "u1", 1, models.CategoryDSA, dsaChecklist(1)))
	require.NoError(t, tracker.CompleteCategory(ctx, "u1", 1, models.CategoryDev, devChecklist(1)))

	user, err := tracker.User(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, user.HasBadge("first-day"))
	assert.False(t, user.HasBadge("week-streak"))
}

func TestWeekStreakBadgeAfterSevenDays(t *testing.T) {
	tracker := newTracker()
	ctx := context.Background()
	_, _, err := tracker.EnsureInitialized(ctx, "u1", "Alice", "")
	require.NoError(t, err)

	for day := 1; day <= 7; day++ {
		require.NoError(t, tracker.CompleteCategory(ctx, "u1", day, models.CategoryDSA, dsaChecklist(day)))
		require.NoError(t, tracker.CompleteCategory(ctx, "u1", day, models.CategoryDev, devChecklist(day)))
	}

	user, err := tracker.User(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 8, user.CurrentDay)
	assert.Equal(t, 7, user.Streak)
	assert.True(t, user.HasBadge("week-streak"))
	assert.False(t, user.HasBadge("month-journey"))
}

func TestAddBadgeIsIdempotent(t *testing.T) {
	tracker := newTracker()
	ctx := context.Background()
	_, _, err := tracker.EnsureInitialized(ctx, "u1", "Alice", "")
	require.NoError(t, err)

	added, err := tracker.AddBadge(ctx, "u1", models.Badge{ID: "night-owl", Name: "Night Owl"})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = tracker.AddBadge(ctx, "u1", models.Badge{ID: "night-owl", Name: "Night Owl"})
	require.NoError(t, err)
	assert.False(t, added)

	user, err := tracker.User(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, user.Badges, 1)
	assert.False(t, user.Badges[0].EarnedAt.IsZero())
}

func TestAddBadgeRequiresUserRecord(t *testing.T) {
	tracker := newTracker()
	_, err := tracker.AddBadge(context.Background(), "ghost", models.Badge{ID: "x", Name: "X"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
