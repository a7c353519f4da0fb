package monitoring

import (
	"fmt"
	"math"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Duration is an uptime split into whole days, hours, minutes and seconds.
type Duration struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Split truncates seconds to a whole number and decomposes it.
// Negative and NaN input are treated as zero.
func Split(seconds float64) Duration {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int64(math.Floor(seconds))
	return Duration{
		Days:    total / secondsPerDay,
		Hours:   total % secondsPerDay / secondsPerHour,
		Minutes: total % secondsPerHour / secondsPerMinute,
		Seconds: total % secondsPerMinute,
	}
}

// Total returns the number of whole seconds d represents.
func (d Duration) Total() int64 {
	return d.Days*secondsPerDay + d.Hours*secondsPerHour + d.Minutes*secondsPerMinute + d.Seconds
}

func (d Duration) String() string {
	return fmt.Sprintf("%dd %dh %dm %ds", d.Days, d.Hours, d.Minutes, d.Seconds)
}

// Format renders seconds as "Xd Yh Zm Ws". Zero components are kept.
func Format(seconds float64) string {
	return Split(seconds).String()
}
