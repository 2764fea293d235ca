package app

import (
	"apt_subscription_bot/internal/domain/announcement"
	"time"
)

// ComputeWindow derives the provider query range and the filter threshold from today.
// Start is the Monday of the week containing today minus one calendar month, End is
// today, and Threshold is the Monday of today's week.
func ComputeWindow(today time.Time) announcement.Window {
	day := truncateToDay(today)
	return announcement.Window{
		Start:     MondayOf(MonthAgo(day)),
		End:       day,
		Threshold: MondayOf(day),
	}
}

// MondayOf returns midnight of the Monday that starts t's week (Monday = 0).
func MondayOf(t time.Time) time.Time {
	day := truncateToDay(t)
	return day.AddDate(0, 0, -weekdayIndex(day))
}

// MonthAgo subtracts one calendar month, clamping the day to the target month's
// length (Mar 31 -> Feb 28/29). time.AddDate would normalise into March instead.
func MonthAgo(t time.Time) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m-1, 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func daysIn(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
