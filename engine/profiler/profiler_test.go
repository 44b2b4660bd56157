package profiler

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := map[string]struct {
		interval time.Duration
		wait     time.Duration
		expected bool
	}{
		"before interval": {interval: time.Hour, expected: false},
		"after interval":  {interval: time.Millisecond, wait: 5 * time.Millisecond, expected: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewProfiler(tc.interval)
			time.Sleep(tc.wait)
			if got := p.Tick(true); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestTickResetsCounters(t *testing.T) {
	p := NewProfiler(time.Millisecond)
	p.Tick(false)
	p.Tick(true)
	time.Sleep(5 * time.Millisecond)
	if !p.Tick(false) {
		t.Fatal("expected stats to be logged")
	}
	if p.frameCount != 0 || p.renderedCount != 0 {
		t.Errorf("expected counters reset, got frames %d rendered %d", p.frameCount, p.renderedCount)
	}
}

func TestDefaultInterval(t *testing.T) {
	if p := NewProfiler(); p.updateInterval != time.Second {
		t.Errorf("expected default interval 1s, got %v", p.updateInterval)
	}
}
