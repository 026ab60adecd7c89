package resilience

import (
	"testing"
	"time"
)

func TestNormalizeCircuitBreakerConfig_FillsDefaults(t *testing.T) {
	t.Parallel()

	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true, FailureThreshold: 0, OpenTimeout: -time.Second})
	if got.FailureThreshold != 5 || got.OpenTimeout != 15*time.Second || got.HalfOpenMaxReq != 2 {
		t.Fatalf("unexpected normalized config: %+v", got)
	}
	if !got.Enabled {
		t.Fatalf("expected enabled flag to be kept")
	}
}

func TestNewCircuitBreakerFromConfig_OpensAtThreshold(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreakerFromConfig(CircuitBreakerConfig{Enabled: true, FailureThreshold: 3, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})
	for i := 0; i < 2; i++ {
		b.RecordFailure()
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed below threshold, got %s", state)
	}
	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open at threshold, got %s", state)
	}
}
