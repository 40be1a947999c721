package wheel

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-720, 0},
		{1e-13, 1e-13},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Normalize(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
	if got := Normalize(-1e-15); got < 0 || got >= 360 {
		t.Errorf("Normalize(-1e-15) = %v, out of [0, 360)", got)
	}
}

func TestSegmentAtRoundTrip(t *testing.T) {
	segments := segmentsForWeights(1, 1, 1, 1)
	r := NewResolver(DefaultPointerAngle)

	for i, s := range segments {
		mid := s.Start + s.Span/2
		for _, turns := range []float64{0, 1, 5, -3} {
			rotation := r.PointerAngle - mid + turns*360
			if got := r.SegmentAt(segments, rotation); got != i {
				t.Errorf("midpoint of %d at %d turns: got segment %d", i, int(turns), got)
			}
		}

		// ровно на границе - следующий сектор
		rotation := r.PointerAngle - s.Start
		if got := r.SegmentAt(segments, rotation); got != i {
			t.Errorf("boundary at %v: expected segment %d, got %d", s.Start, i, got)
		}
	}
}

func TestSegmentAtUsesPointerFrame(t *testing.T) {
	segments := segmentsForWeights(1, 1, 1, 1)

	// без поворота под указателем сверху (270°) лежит последний сектор [270, 360)
	if got := NewResolver(270).SegmentAt(segments, 0); got != 3 {
		t.Errorf("expected segment 3 under the top pointer, got %d", got)
	}
	// поворот на 90° по часовой подводит к указателю сектор [180, 270)
	if got := NewResolver(270).SegmentAt(segments, 90); got != 2 {
		t.Errorf("expected segment 2 after a 90° turn, got %d", got)
	}
	// указатель справа (0°)
	if got := NewResolver(0).SegmentAt(segments, 0); got != 0 {
		t.Errorf("expected segment 0 under the right pointer, got %d", got)
	}
}

func TestSegmentAtEmpty(t *testing.T) {
	if got := NewResolver(270).SegmentAt(nil, 10); got != -1 {
		t.Errorf("expected -1 for no segments, got %d", got)
	}
}

func TestTargetRotationLandsOnSegment(t *testing.T) {
	items := []Item{{"A", 0}, {"B", 2}, {"C", 4}, {"D", 1}, {"E", 4}}
	segments, err := BuildSegments(items, DefaultParams())
	if err != nil {
		t.Fatalf("BuildSegments failed: %v", err)
	}

	for _, pointer := range []float64{0, 90, 270} {
		r := NewResolver(pointer)
		for _, current := range []float64{0, 13.7, 359.999, 1800, 123456.789, -45} {
			for idx := range segments {
				for _, frac := range []float64{0, 0.1, 0.5, 0.9, 1} {
					target := r.TargetRotation(segments, idx, current, DefaultExtraSpins, frac)

					min := current + DefaultExtraSpins*360
					if target <= min || target > min+360 {
						t.Errorf("pointer=%v current=%v idx=%d: target %v outside (%v, %v]", pointer, current, idx, target, min, min+360)
					}
					if got := r.SegmentAt(segments, target); got != idx {
						t.Errorf("pointer=%v current=%v idx=%d frac=%v: landed on %d", pointer, current, idx, frac, got)
					}
				}
			}
		}
	}
}
