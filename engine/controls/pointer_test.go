package controls

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPointerRegistryCentroid(t *testing.T) {
	tests := map[string]struct {
		track    [][3]float64
		expected mgl64.Vec2
	}{
		"empty": {
			expected: mgl64.Vec2{},
		},
		"single contact": {
			track:    [][3]float64{{1, 10, 20}},
			expected: mgl64.Vec2{10, 20},
		},
		"two contacts": {
			track:    [][3]float64{{1, 0, 0}, {2, 100, 50}},
			expected: mgl64.Vec2{50, 25},
		},
		"third contact ignored": {
			track:    [][3]float64{{1, 0, 0}, {2, 100, 50}, {3, 1000, 1000}},
			expected: mgl64.Vec2{50, 25},
		},
		"retrack keeps order": {
			track:    [][3]float64{{1, 0, 0}, {2, 100, 0}, {3, 500, 500}, {1, 20, 0}},
			expected: mgl64.Vec2{60, 0},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewPointerRegistry()
			for _, p := range tc.track {
				r.Track(int(p[0]), p[1], p[2])
			}
			if got := r.Centroid(); got != tc.expected {
				t.Errorf("expected centroid %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestPointerRegistryOther(t *testing.T) {
	r := NewPointerRegistry()
	r.Track(7, 1, 1)
	r.Track(9, 5, 5)

	if got, err := r.Other(7); err != nil || got != (mgl64.Vec2{5, 5}) {
		t.Errorf("expected (5, 5), got %v (err %v)", got, err)
	}
	if got, err := r.Other(9); err != nil || got != (mgl64.Vec2{1, 1}) {
		t.Errorf("expected (1, 1), got %v (err %v)", got, err)
	}
	if _, err := r.Other(3); !errors.Is(err, ErrUnknownPointer) {
		t.Errorf("expected ErrUnknownPointer for untracked id, got %v", err)
	}

	if err := r.Remove(9); err != nil {
		t.Fatalf("unexpected remove error: %v", err)
	}
	if _, err := r.Other(7); !errors.Is(err, ErrUnknownPointer) {
		t.Errorf("expected ErrUnknownPointer without a partner, got %v", err)
	}
}

func TestPointerRegistryRemove(t *testing.T) {
	r := NewPointerRegistry()
	r.Track(1, 0, 0)
	r.Track(2, 10, 0)
	r.Track(3, 20, 0)

	if err := r.Remove(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != 2 || r.Has(2) {
		t.Fatalf("expected 2 contacts without id 2, got %d", r.Len())
	}
	if got := r.Spread(); got != 20 {
		t.Errorf("expected spread 20 between ids 1 and 3, got %v", got)
	}
	if err := r.Remove(2); !errors.Is(err, ErrUnknownPointer) {
		t.Errorf("expected ErrUnknownPointer on second remove, got %v", err)
	}
	if _, err := r.Position(2); !errors.Is(err, ErrUnknownPointer) {
		t.Errorf("expected ErrUnknownPointer on position lookup, got %v", err)
	}

	r.Clear()
	if r.Len() != 0 || r.Has(1) {
		t.Errorf("expected empty registry after Clear")
	}
}
