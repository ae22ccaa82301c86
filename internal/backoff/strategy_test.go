package backoff

import (
	"testing"
	"time"
)

func TestExponentialJitterStrategyDeterministicWithoutJitter(t *testing.T) {
	strategy := ExponentialJitterStrategy{}

	tests := []struct {
		name     string
		attempt  int
		expected time.Duration
	}{
		{"attempt 0", 0, 100 * time.Millisecond},
		{"attempt 1", 1, 200 * time.Millisecond},
		{"attempt 2", 2, 400 * time.Millisecond},
		{"attempt 3", 3, 800 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strategy.Calculate(tt.attempt, 100*time.Millisecond, 10*time.Second, 2.0, 0)
			if got != tt.expected {
				t.Errorf("Calculate(attempt=%d) = %v, want %v", tt.attempt, got, tt.expected)
			}
		})
	}
}

func TestExponentialJitterStrategyRepeatable(t *testing.T) {
	strategy := ExponentialJitterStrategy{}
	first := strategy.Calculate(5, 50*time.Millisecond, 30*time.Second, 2.0, 0)
	for i := 0; i < 10; i++ {
		got := strategy.Calculate(5, 50*time.Millisecond, 30*time.Second, 2.0, 0)
		if got != first {
			t.Fatalf("Calculate with zero jitter not repeatable: %v != %v", got, first)
		}
	}
}

func TestExponentialJitterStrategyCapsAtMax(t *testing.T) {
	strategy := ExponentialJitterStrategy{}
	got := strategy.Calculate(10, 100*time.Millisecond, 1*time.Second, 2.0, 0)
	if got != 1*time.Second {
		t.Errorf("Expected backoff capped at 1s, got %v", got)
	}
}

func TestExponentialJitterStrategyNegativeAttempt(t *testing.T) {
	strategy := ExponentialJitterStrategy{}
	got := strategy.Calculate(-3, 100*time.Millisecond, 10*time.Second, 2.0, 0)
	if got != 100*time.Millisecond {
		t.Errorf("Expected negative attempt treated as 0, got %v", got)
	}
}

func TestExponentialJitterStrategyLargeAttemptNoOverflow(t *testing.T) {
	strategy := ExponentialJitterStrategy{}
	got := strategy.Calculate(100, 100*time.Millisecond, 30*time.Second, 2.0, 0)
	if got != 30*time.Second {
		t.Errorf("Expected large attempt clamped to maxBackoff, got %v", got)
	}
}

func TestExponentialJitterStrategyJitterBounds(t *testing.T) {
	strategy := ExponentialJitterStrategy{}
	base := 1 * time.Second
	lower := time.Duration(float64(base) * 0.8)
	upper := time.Duration(float64(base) * 1.2)

	for i := 0; i < 200; i++ {
		got := strategy.Calculate(0, base, 10*time.Second, 2.0, 0.2)
		if got < lower || got > upper {
			t.Fatalf("Jittered backoff %v outside [%v, %v]", got, lower, upper)
		}
	}
}

func TestExponentialJitterStrategyJitterNeverExceedsMax(t *testing.T) {
	strategy := ExponentialJitterStrategy{}
	for i := 0; i < 200; i++ {
		got := strategy.Calculate(8, 100*time.Millisecond, 2*time.Second, 2.0, 0.5)
		if got > 2*time.Second {
			t.Fatalf("Jittered backoff %v exceeds maxBackoff", got)
		}
		if got < 0 {
			t.Fatalf("Jittered backoff %v is negative", got)
		}
	}
}

func TestClampJitter(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.2, 0.2},
		{1, 1},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := clampJitter(tt.input); got != tt.expected {
			t.Errorf("clampJitter(%f) = %f, want %f", tt.input, got, tt.expected)
		}
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		base     float64
		exponent int
		expected float64
	}{
		{2.0, 0, 1},
		{2.0, 1, 2},
		{2.0, 10, 1024},
		{1.5, 2, 2.25},
	}
	for _, tt := range tests {
		if got := Pow(tt.base, tt.exponent); got != tt.expected {
			t.Errorf("Pow(%f, %d) = %f, want %f", tt.base, tt.exponent, got, tt.expected)
		}
	}
}

func TestCalculatorDelegatesToStrategy(t *testing.T) {
	calc := GetExponentialJitterCalculator()
	got := calc.Calculate(2, 100*time.Millisecond, 10*time.Second, 2.0, 0)
	if got != 400*time.Millisecond {
		t.Errorf("Calculator.Calculate = %v, want 400ms", got)
	}
}
