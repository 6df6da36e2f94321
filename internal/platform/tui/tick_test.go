package tui

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tc := range tests {
		if got := TickInterval(tc.rate); got != tc.want {
			t.Errorf("TickInterval(%d) = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}
