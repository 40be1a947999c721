package wheel

import (
	"sync"
	"time"
)

// DefaultFrameInterval - примерно 60 кадров в секунду
const DefaultFrameInterval = time.Second / 60

// FrameScheduler запрашивает следующий кадр. cancel снимает ещё не сработавший запрос.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time)) (cancel func())
}

// TickerScheduler - покадровый планировщик на time.AfterFunc.
// Каждый кадр заказывается отдельно, как requestAnimationFrame.
type TickerScheduler struct {
	Interval time.Duration
}

// NewTickerScheduler создаёт планировщик с заданным интервалом кадра
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerScheduler{Interval: interval}
}

func (s *TickerScheduler) RequestFrame(fn func(now time.Time)) func() {
	t := time.AfterFunc(s.Interval, func() {
		fn(time.Now())
	})
	return func() {
		t.Stop()
	}
}

// guardedScheduler выполняет каждый кадр под мьютексом контроллера,
// поэтому кадры и вызовы Spin/Reset не пересекаются.
type guardedScheduler struct {
	inner FrameScheduler
	mu    sync.Locker
}

func (g guardedScheduler) RequestFrame(fn func(now time.Time)) func() {
	return g.inner.RequestFrame(func(now time.Time) {
		g.mu.Lock()
		defer g.mu.Unlock()
		fn(now)
	})
}
