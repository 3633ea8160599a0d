package models

import (
	"testing"
	"time"
)

func TestTickerActiveAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		ticker Ticker
		want   bool
	}{
		{
			name: "inside window",
			ticker: Ticker{
				Status:   "active",
				StartsAt: now.Add(-time.Hour),
				EndsAt:   now.Add(time.Hour),
			},
			want: true,
		},
		{
			name: "before window",
			ticker: Ticker{
				Status:   "active",
				StartsAt: now.Add(time.Hour),
			},
			want: false,
		},
		{
			name: "after window",
			ticker: Ticker{
				Status:   "active",
				StartsAt: now.Add(-2 * time.Hour),
				EndsAt:   now.Add(-time.Hour),
			},
			want: false,
		},
		{
			name: "open ended",
			ticker: Ticker{
				Status:   "active",
				StartsAt: now.Add(-time.Hour),
			},
			want: true,
		},
		{
			name: "deleted entry never displays",
			ticker: Ticker{
				Status:   "deleted",
				StartsAt: now.Add(-time.Hour),
				EndsAt:   now.Add(time.Hour),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ticker.ActiveAt(now); got != tt.want {
				t.Errorf("ActiveAt() = %v, want %v", got, tt.want)
			}
		})
	}
}
