package announcement

import "time"

// DateLayout is the zero-padded form used both on the wire and for lexical comparison.
const DateLayout = "2006-01-02"

// Window is the query range sent to the provider plus the display/filter threshold.
// Start <= End always holds; Threshold is the Monday of the current week and is
// independent of Start.
type Window struct {
	Start     time.Time
	End       time.Time
	Threshold time.Time
}

func (w Window) StartDate() string     { return w.Start.Format(DateLayout) }
func (w Window) EndDate() string       { return w.End.Format(DateLayout) }
func (w Window) ThresholdDate() string { return w.Threshold.Format(DateLayout) }
