package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// MondaySpec fires at midnight every Monday. Only its day-of-week part matters here.
const MondaySpec = "0 0 * * MON"

// RunDay answers whether a given date is a day the notification job may run.
// The trigger itself comes from outside; no cron engine is started.
type RunDay struct {
	spec     string
	schedule cron.Schedule
}

func NewRunDay(spec string) (*RunDay, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid run-day spec %q: %w", spec, err)
	}
	return &RunDay{spec: spec, schedule: schedule}, nil
}

// Matches reports whether the schedule fires at any point on t's calendar day,
// evaluated in t's location.
func (r *RunDay) Matches(t time.Time) bool {
	y, m, d := t.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	next := r.schedule.Next(startOfDay.Add(-time.Second))
	ny, nm, nd := next.Date()
	return ny == y && nm == m && nd == d
}

func (r *RunDay) String() string {
	return r.spec
}
