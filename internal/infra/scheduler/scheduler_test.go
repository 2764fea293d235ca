package scheduler_test

import (
	"testing"
	"time"

	"apt_subscription_bot/internal/infra/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDay_MondayOnly(t *testing.T) {
	runDay, err := scheduler.NewRunDay(scheduler.MondaySpec)
	require.NoError(t, err)

	// 2024-06-03 is a Monday.
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		day := start.AddDate(0, 0, i)
		for _, hour := range []int{0, 9, 23} {
			at := day.Add(time.Duration(hour) * time.Hour)
			assert.Equal(t, day.Weekday() == time.Monday, runDay.Matches(at), "at %s", at)
		}
	}
}

func TestRunDay_UsesCallerLocation(t *testing.T) {
	runDay, err := scheduler.NewRunDay(scheduler.MondaySpec)
	require.NoError(t, err)

	seoul := time.FixedZone("KST", 9*60*60)
	// Sunday 20:00 UTC is already Monday 05:00 in Seoul.
	sundayUTC := time.Date(2024, 6, 2, 20, 0, 0, 0, time.UTC)

	assert.False(t, runDay.Matches(sundayUTC))
	assert.True(t, runDay.Matches(sundayUTC.In(seoul)))
}

func TestNewRunDay_InvalidSpec(t *testing.T) {
	_, err := scheduler.NewRunDay("not a cron spec")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid run-day spec")
}
