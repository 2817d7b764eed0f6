package utils

import "testing"

func TestTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "")
	if got := Timezone(); got != "UTC" {
		t.Errorf("Timezone() with nothing configured = %q, want UTC", got)
	}

	t.Setenv("TIMEZONE", "Europe/Berlin")
	if got := Timezone(); got != "Europe/Berlin" {
		t.Errorf("Timezone() = %q, want Europe/Berlin", got)
	}
}
