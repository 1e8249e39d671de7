package conditions

import "testing"

func ptr(v float64) *float64 { return &v }

func TestTempFeel(t *testing.T) {
	tests := []struct {
		name      string
		temp      *float64
		feelsLike *float64
		want      string
	}{
		{"extremely hot", ptr(38), nil, "extremely hot"},
		{"both absent", nil, nil, "moderate"},
		{"warm lower bound inclusive", ptr(24), nil, "warm"},
		{"just below warm", ptr(23.9), nil, "mild"},
		{"feels-like preferred", ptr(20), ptr(35), "very hot"},
		{"falls back to temp", ptr(12), nil, "cool"},
		{"zero is cold", ptr(0), nil, "cold"},
		{"below zero freezing", ptr(-3), nil, "freezing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TempFeel(tt.temp, tt.feelsLike); got != tt.want {
				t.Errorf("TempFeel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHumidityLabel(t *testing.T) {
	tests := []struct {
		h    *float64
		want string
	}{
		{nil, "moderate"},
		{ptr(85), "very humid"},
		{ptr(80), "very humid"},
		{ptr(60), "humid"},
		{ptr(45), "normal"},
		{ptr(30), "dry"},
	}
	for _, tt := range tests {
		if got := HumidityLabel(tt.h); got != tt.want {
			t.Errorf("HumidityLabel(%v) = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestWindLabel(t *testing.T) {
	tests := []struct {
		w    *float64
		want string
	}{
		{nil, "calm"},
		{ptr(45), "very windy"},
		{ptr(40), "very windy"},
		{ptr(20), "breezy"},
		{ptr(10), "light wind"},
	}
	for _, tt := range tests {
		if got := WindLabel(tt.w); got != tt.want {
			t.Errorf("WindLabel(%v) = %q, want %q", tt.w, got, tt.want)
		}
	}
}

// TestWindMoodPartition walks the bucket boundaries: each speed maps to
// exactly one label and neighboring speeds around a boundary differ.
func TestWindMoodPartition(t *testing.T) {
	tests := []struct {
		speed float64
		want  string
	}{
		{-10, "Calm"},
		{0, "Calm"},
		{5, "Calm"},
		{5.1, "Light Breeze"},
		{15, "Light Breeze"},
		{18, "Breezy"},
		{25, "Breezy"},
		{26, "Windy"},
		{40, "Windy"},
		{41, "Very Windy"},
		{60, "Very Windy"},
		{60.1, "Storm Winds"},
		{200, "Storm Winds"},
	}
	for _, tt := range tests {
		if got := WindMood(tt.speed); got != tt.want {
			t.Errorf("WindMood(%v) = %q, want %q", tt.speed, got, tt.want)
		}
	}
}
