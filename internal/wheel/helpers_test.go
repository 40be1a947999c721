package wheel

import "time"

// manualScheduler - кадры выполняются только по Step
type manualScheduler struct {
	pending []*manualFrame
}

type manualFrame struct {
	fn        func(now time.Time)
	cancelled bool
}

func (m *manualScheduler) RequestFrame(fn func(now time.Time)) func() {
	f := &manualFrame{fn: fn}
	m.pending = append(m.pending, f)
	return func() { f.cancelled = true }
}

// Step выполняет все запрошенные кадры и возвращает их число
func (m *manualScheduler) Step(now time.Time) int {
	frames := m.pending
	m.pending = nil
	n := 0
	for _, f := range frames {
		if f.cancelled {
			continue
		}
		f.fn(now)
		n++
	}
	return n
}

func (m *manualScheduler) Pending() int {
	n := 0
	for _, f := range m.pending {
		if !f.cancelled {
			n++
		}
	}
	return n
}

// runFrames крутит кадры по 16ms, пока они запрашиваются
func runFrames(m *manualScheduler, start time.Time) time.Time {
	now := start
	for i := 0; i < 10000; i++ {
		if m.Step(now) == 0 {
			break
		}
		now = now.Add(16 * time.Millisecond)
	}
	return now
}

// fixedSource по кругу отдаёт заданные значения
type fixedSource struct {
	vals []float64
	i    int
}

func (s *fixedSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}
