package scoring

import (
	"math"
	"testing"
)

func TestAggregate_Empty(t *testing.T) {
	r := Aggregate(nil)

	if r.Asked != 0 || r.Correct != 0 {
		t.Errorf("Asked/Correct = %d/%d, want 0/0", r.Asked, r.Correct)
	}
	if r.AvgTime != 0 {
		t.Errorf("AvgTime = %v, want 0", r.AvgTime)
	}
	if r.PercentCorrect != 0 {
		t.Errorf("PercentCorrect = %v, want 0", r.PercentCorrect)
	}
	if r.Perfect() {
		t.Error("empty rollup must not be perfect")
	}
	if r.Mastery() {
		t.Error("empty rollup must not be mastery")
	}
}

func TestAggregate_Mixed(t *testing.T) {
	attempts := []Attempt{
		{Correct: true, Elapsed: 1.0},
		{Correct: false, Elapsed: 3.0},
		{Correct: true, Elapsed: 2.0},
		{Correct: true, Elapsed: 4.0},
	}

	r := Aggregate(attempts)

	if r.Asked != 4 {
		t.Errorf("Asked = %d, want 4", r.Asked)
	}
	if r.Correct != 3 {
		t.Errorf("Correct = %d, want 3", r.Correct)
	}
	if math.Abs(r.AvgTime-2.5) > 1e-9 {
		t.Errorf("AvgTime = %v, want 2.5", r.AvgTime)
	}
	if math.Abs(r.PercentCorrect-75) > 1e-9 {
		t.Errorf("PercentCorrect = %v, want 75", r.PercentCorrect)
	}
	if r.Correct > r.Asked {
		t.Error("Correct exceeds Asked")
	}
	if r.Perfect() {
		t.Error("3/4 must not be perfect")
	}
}

func TestPerfectAndMastery(t *testing.T) {
	tests := []struct {
		name    string
		elapsed []float64
		perfect bool
		mastery bool
	}{
		{"fast perfect", []float64{2.0, 2.0, 2.0}, true, true},
		{"slow perfect", []float64{3.5, 4.0, 3.0}, true, false},
		{"exactly at threshold", []float64{3.0, 3.0}, true, false},
		{"just under threshold", []float64{2.9, 2.9}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts []Attempt
			for _, e := range tt.elapsed {
				attempts = append(attempts, Attempt{Correct: true, Elapsed: e})
			}
			r := Aggregate(attempts)
			if r.Perfect() != tt.perfect {
				t.Errorf("Perfect() = %v, want %v", r.Perfect(), tt.perfect)
			}
			if r.Mastery() != tt.mastery {
				t.Errorf("Mastery() = %v, want %v", r.Mastery(), tt.mastery)
			}
		})
	}
}

func TestAggregate_OneWrongBlocksMastery(t *testing.T) {
	r := Aggregate([]Attempt{
		{Correct: true, Elapsed: 1.0},
		{Correct: false, Elapsed: 1.0},
	})
	if r.Mastery() {
		t.Error("mastery requires a perfect score")
	}
	if math.Abs(r.PercentCorrect-50) > 1e-9 {
		t.Errorf("PercentCorrect = %v, want 50", r.PercentCorrect)
	}
}
