package web

import (
	"testing"
	"time"
)

func TestDateFormatter(t *testing.T) {
	tests := map[string]struct {
		in   time.Time
		want string
	}{
		"zero time": {in: time.Time{}, want: "Never"},
		"a date":    {in: time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC), want: "2025-09-07"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := dateFormatter(tc.in); got != tc.want {
				t.Errorf("wanted %q, got %q", tc.want, got)
			}
		})
	}
}

func TestKickoffFormatter(t *testing.T) {
	in := time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC)
	want := "Sun Sep 7, 5:00 PM UTC"
	if got := kickoffFormatter(in); got != want {
		t.Errorf("wanted %q, got %q", want, got)
	}
}

func TestMoneyFormatter(t *testing.T) {
	tests := map[string]struct {
		in   float64
		want string
	}{
		"zero":     {in: 0, want: "$0.00"},
		"whole":    {in: 25, want: "$25.00"},
		"cents":    {in: 12.5, want: "$12.50"},
		"rounding": {in: 9.999, want: "$10.00"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := moneyFormatter(tc.in); got != tc.want {
				t.Errorf("wanted %q, got %q", tc.want, got)
			}
		})
	}
}

func TestInitialsFormatter(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"empty":       {in: "", want: "?"},
		"single name": {in: "alice", want: "A"},
		"full name":   {in: "Bob Borthwick", want: "BB"},
		"three names": {in: "carol de vries", want: "CV"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := initialsFormatter(tc.in); got != tc.want {
				t.Errorf("wanted %q, got %q", tc.want, got)
			}
		})
	}
}
