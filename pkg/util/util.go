package util

import (
	"fmt"
	"time"
)

// FormatClock renders d as HH:MM:SS. Sub-second precision is truncated, not
// rounded, and the hour field grows past two digits instead of wrapping.
// Negative durations are rendered as "-" followed by the magnitude.
func FormatClock(d time.Duration) string {
	sign := ""
	total := int64(d / time.Second) // truncates toward zero
	if total < 0 {
		sign = "-"
		total = -total
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
}

// Seconds returns d as fractional seconds.
func Seconds(d time.Duration) float64 {
	return d.Seconds()
}
