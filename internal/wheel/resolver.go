package wheel

import "math"

const (
	fullTurn = 360.0
	// DefaultPointerAngle - указатель сверху (углы на экране идут по часовой от "трёх часов")
	DefaultPointerAngle = 270.0

	minStopFraction = 0.1
	maxStopFraction = 0.9
)

// Normalize приводит угол к [0, 360)
func Normalize(angle float64) float64 {
	a := math.Mod(angle, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		a = 0
	}
	return a
}

// Resolver связывает поворот колеса с сектором под неподвижным указателем
type Resolver struct {
	PointerAngle float64
}

// NewResolver создаёт резолвер для указателя, стоящего под углом pointerAngle
func NewResolver(pointerAngle float64) Resolver {
	return Resolver{PointerAngle: Normalize(pointerAngle)}
}

// SegmentAt возвращает индекс сектора под указателем после поворота на rotation.
// Точка на границе принадлежит следующему сектору.
func (r Resolver) SegmentAt(segments []Segment, rotation float64) int {
	if len(segments) == 0 {
		return -1
	}

	wheelAngle := Normalize(r.PointerAngle - rotation)
	for i, s := range segments {
		if wheelAngle >= s.Start && wheelAngle < s.End() {
			return i
		}
	}

	return len(segments) - 1
}

// TargetRotation считает конечный поворот, при котором указатель встанет
// в сектор idx на доле frac его ширины. Результат всегда больше current+extraSpins*360.
func (r Resolver) TargetRotation(segments []Segment, idx int, current float64, extraSpins int, frac float64) float64 {
	s := segments[idx]
	frac = math.Max(minStopFraction, math.Min(maxStopFraction, frac))

	stop := s.Start + s.Span*frac
	base := Normalize(r.PointerAngle - stop)
	delta := Normalize(base - Normalize(current))
	if delta == 0 {
		delta = fullTurn
	}

	return current + delta + float64(extraSpins)*fullTurn
}
