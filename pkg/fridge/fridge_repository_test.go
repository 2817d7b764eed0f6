package fridge

import (
	"testing"
	"time"
)

func TestExpiryWindow(t *testing.T) {
	now := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.Local)

	start, end := ExpiryWindow(now, 2)

	wantStart := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)

	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestExpiryWindow_Boundaries(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)
	start, end := ExpiryWindow(now, 2)

	cases := []struct {
		name   string
		expiry time.Time
		within bool
	}{
		{"expires today", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local), true},
		{"expires on threshold day", time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local), true},
		{"expires one day past threshold", time.Date(2025, time.March, 13, 0, 0, 0, 0, time.Local), false},
		{"already expired yesterday", time.Date(2025, time.March, 9, 0, 0, 0, 0, time.Local), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := !tc.expiry.Before(start) && !tc.expiry.After(end)
			if got != tc.within {
				t.Errorf("expiry %v within [%v, %v] = %v, want %v",
					tc.expiry, start, end, got, tc.within)
			}
		})
	}
}

func TestExpiryWindow_MonthRollover(t *testing.T) {
	now := time.Date(2025, time.January, 30, 23, 59, 0, 0, time.Local)
	_, end := ExpiryWindow(now, 3)

	want := time.Date(2025, time.February, 2, 0, 0, 0, 0, time.Local)
	if !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}
}
