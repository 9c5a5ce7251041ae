package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{name: "zero", in: 0, want: "00:00:00"},
		{name: "single digits are padded", in: 1*time.Hour + 2*time.Minute + 3*time.Second, want: "01:02:03"},
		{name: "one hour one minute five seconds", in: 3665 * time.Second, want: "01:01:05"},
		{name: "fraction is truncated", in: 59*time.Second + 999*time.Millisecond, want: "00:00:59"},
		{name: "just under a second", in: 999 * time.Millisecond, want: "00:00:00"},
		{name: "hours are not truncated", in: 100 * time.Hour, want: "100:00:00"},
		{name: "large hours", in: 1234*time.Hour + 5*time.Minute + 6*time.Second, want: "1234:05:06"},
		{name: "negative", in: -(3665*time.Second + 500*time.Millisecond), want: "-01:01:05"},
		{name: "negative sub-second", in: -500 * time.Millisecond, want: "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.in))
		})
	}
}

func TestSeconds(t *testing.T) {
	assert.InDelta(t, 0.15, Seconds(150*time.Millisecond), 1e-9)
	assert.Equal(t, 3665.0, Seconds(3665*time.Second))
}
