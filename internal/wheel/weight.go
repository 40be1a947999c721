package wheel

import (
	"fmt"
	"math"
)

const (
	// DefaultCoefficient - насколько сильно отставание по голосам увеличивает вес
	DefaultCoefficient = 2.0
	// DefaultZeroVoteWeight - фиксированный вес игр без голосов
	DefaultZeroVoteWeight = 40.0
)

// Item - игра в пуле колеса
type Item struct {
	Name  string
	Votes int
}

// Params - настройки весов, снимок на один спин
type Params struct {
	Coefficient    float64
	ZeroVoteWeight float64
}

// DefaultParams возвращает настройки, которые используются, если сервис настроек недоступен
func DefaultParams() Params {
	return Params{
		Coefficient:    DefaultCoefficient,
		ZeroVoteWeight: DefaultZeroVoteWeight,
	}
}

// Validate проверяет, что любой вес получится не меньше 1
func (p Params) Validate() error {
	if math.IsNaN(p.Coefficient) || math.IsInf(p.Coefficient, 0) || p.Coefficient < 0 {
		return fmt.Errorf("%w: coefficient %v", ErrInvalidParams, p.Coefficient)
	}
	if math.IsNaN(p.ZeroVoteWeight) || math.IsInf(p.ZeroVoteWeight, 0) || p.ZeroVoteWeight < 1 {
		return fmt.Errorf("%w: zero vote weight %v", ErrInvalidParams, p.ZeroVoteWeight)
	}
	return nil
}

// Weight - вес игры для случайного выбора.
// Чем меньше голосов относительно лидера, тем больше вес.
// Для пустого пула максимума нет, вызывать нельзя.
func Weight(votes, maxVotes int, p Params) float64 {
	if votes == 0 {
		return p.ZeroVoteWeight
	}
	return 1 + float64(maxVotes-votes)*p.Coefficient
}

// Segment - сектор колеса, пропорциональный весу
type Segment struct {
	Name   string
	Votes  int
	Weight float64
	Start  float64
	Span   float64
}

// End - граница сектора, не входит в сам сектор
func (s Segment) End() float64 {
	return s.Start + s.Span
}

// BuildSegments раскладывает пул по кругу в порядке элементов, начиная с 0°
func BuildSegments(items []Item, p Params) ([]Segment, error) {
	if len(items) == 0 {
		return nil, ErrEmptyPool
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	maxVotes := 0
	for _, it := range items {
		if it.Votes < 0 {
			return nil, fmt.Errorf("%w: %q has negative votes", ErrInvalidItem, it.Name)
		}
		if it.Votes > maxVotes {
			maxVotes = it.Votes
		}
	}

	segments := make([]Segment, len(items))
	var total float64
	for i, it := range items {
		w := Weight(it.Votes, maxVotes, p)
		segments[i] = Segment{Name: it.Name, Votes: it.Votes, Weight: w}
		total += w
	}

	var acc float64
	for i := range segments {
		segments[i].Start = acc
		segments[i].Span = segments[i].Weight / total * fullTurn
		acc += segments[i].Span
	}

	return segments, nil
}
