package wheel

import (
	"math"
	"time"
)

const (
	// DefaultSpinDuration - длительность анимации спина
	DefaultSpinDuration = 4500 * time.Millisecond
	// DefaultExtraSpins - полные обороты сверх доворота до цели
	DefaultExtraSpins = 5
)

// EaseOutCubic - быстрый старт, плавная остановка
func EaseOutCubic(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}

// Animator ведёт не больше одной анимации за раз
type Animator struct {
	sched   FrameScheduler
	current *Animation
}

func NewAnimator(sched FrameScheduler) *Animator {
	return &Animator{sched: sched}
}

// Animation - одна анимация поворота от from к to
type Animation struct {
	from, to   float64
	duration   time.Duration
	onFrame    func(angle float64)
	onComplete func()

	sched   FrameScheduler
	cancel  func()
	started bool
	start   time.Time
	done    bool
}

// Running - есть ли незавершённая анимация
func (a *Animator) Running() bool {
	return a.current != nil && !a.current.done
}

// Animate запускает анимацию. Пока предыдущая не закончилась, возвращает ErrAnimationRunning.
// onFrame вызывается на каждом кадре, начиная с нулевого, onComplete - один раз после последнего кадра.
func (a *Animator) Animate(from, to float64, duration time.Duration, onFrame func(angle float64), onComplete func()) (*Animation, error) {
	if a.Running() {
		return nil, ErrAnimationRunning
	}

	anim := &Animation{
		from:       from,
		to:         to,
		duration:   duration,
		onFrame:    onFrame,
		onComplete: onComplete,
		sched:      a.sched,
	}
	a.current = anim
	anim.cancel = a.sched.RequestFrame(anim.frame)

	return anim, nil
}

// Cancel останавливает текущую анимацию, если она есть
func (a *Animator) Cancel() {
	if a.current != nil {
		a.current.Cancel()
		a.current = nil
	}
}

// Cancel снимает запрошенный кадр. Колбэки больше не вызываются.
func (an *Animation) Cancel() {
	if an.done {
		return
	}
	an.done = true
	if an.cancel != nil {
		an.cancel()
	}
}

// Done - анимация завершена или отменена
func (an *Animation) Done() bool {
	return an.done
}

// AngleAt - угол при прошедшем времени elapsed
func (an *Animation) AngleAt(elapsed time.Duration) float64 {
	p := an.progress(elapsed)
	if p >= 1 {
		return an.to
	}
	return an.from + (an.to-an.from)*EaseOutCubic(p)
}

func (an *Animation) progress(elapsed time.Duration) float64 {
	if an.duration <= 0 {
		return 1
	}
	return math.Min(float64(elapsed)/float64(an.duration), 1)
}

func (an *Animation) frame(now time.Time) {
	// кадр мог сработать уже после отмены
	if an.done {
		return
	}
	if !an.started {
		an.started = true
		an.start = now
	}

	elapsed := now.Sub(an.start)
	p := an.progress(elapsed)
	an.onFrame(an.AngleAt(elapsed))

	if p >= 1 {
		an.done = true
		an.onComplete()
		return
	}
	an.cancel = an.sched.RequestFrame(an.frame)
}
