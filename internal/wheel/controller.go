package wheel

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Phase - фаза колеса
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseSpinning Phase = "spinning"
	PhaseLanded   Phase = "landed"
)

const frameBufferSize = 64

// Config - константы анимации, модератору не показываются
type Config struct {
	Duration     time.Duration
	ExtraSpins   int
	PointerAngle float64
}

func DefaultConfig() Config {
	return Config{
		Duration:     DefaultSpinDuration,
		ExtraSpins:   DefaultExtraSpins,
		PointerAngle: DefaultPointerAngle,
	}
}

// SpinTicket - то, что клиент получает в ответ на спин
type SpinTicket struct {
	ID       string
	From     float64
	Target   float64
	Duration time.Duration
	Segments []Segment
}

// Round - запись журнала выбывания
type Round struct {
	SpinID    string
	Name      string
	Angle     float64
	Remaining int
	At        time.Time
}

// RoundResult - итог одного спина. IsFinalWinner выставляется один раз,
// когда в пуле осталась последняя игра; она же в Winner.
type RoundResult struct {
	Round
	IsFinalWinner bool
	Winner        string
}

// Frame - кадр для отрисовки
type Frame struct {
	SpinID string
	Angle  float64
	Phase  Phase
	Item   string
}

// State - снимок состояния колеса
type State struct {
	Angle        float64
	PointerAngle float64
	Phase        Phase
	Finished     bool
	SpinID       string
	Target       float64
	Params       Params
	Segments     []Segment
	Remaining    []Item
	Log          []Round
}

// Controller собирает пул, сэмплер, резолвер и аниматор в цикл спина:
// Idle -> Spinning -> Landed -> Idle, с липким признаком Finished.
type Controller struct {
	mu       sync.Mutex
	cfg      Config
	resolver Resolver
	animator *Animator
	rng      Source
	logger   *zap.Logger
	onRound  func(RoundResult)

	pool     *Pool
	params   Params
	segments []Segment
	angle    float64
	phase    Phase
	finished bool
	spinID   string
	target   float64
	chosen   int
	log      []Round

	subs map[chan Frame]struct{}
}

// NewController создаёт колесо с пустым пулом.
// rng и logger можно не передавать.
func NewController(cfg Config, sched FrameScheduler, rng Source, logger *zap.Logger) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Controller{
		cfg:      cfg,
		resolver: NewResolver(cfg.PointerAngle),
		rng:      rng,
		logger:   logger,
		pool:     &Pool{},
		params:   DefaultParams(),
		phase:    PhaseIdle,
		subs:     make(map[chan Frame]struct{}),
	}
	c.animator = NewAnimator(guardedScheduler{inner: sched, mu: &c.mu})

	return c
}

// OnRound задаёт обработчик итогов спина. Вызывается под блокировкой колеса,
// поэтому обратно в контроллер из него ходить нельзя.
func (c *Controller) OnRound(fn func(RoundResult)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onRound = fn
}

// Reset заменяет пул свежим списком игр: отменяет анимацию, очищает журнал.
// Угол поворота сохраняется.
func (c *Controller) Reset(items []Item) error {
	pool, err := NewPool(items)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.animator.Cancel()
	c.pool = pool
	c.log = nil
	c.finished = false
	c.phase = PhaseIdle
	c.spinID = ""
	c.target = c.angle
	c.segments = c.layout()

	c.broadcast(Frame{Angle: c.angle, Phase: PhaseIdle})

	return nil
}

// UpdateVotes подтягивает свежие голоса в оставшиеся игры. Журнал, фаза и выбывшие
// игры не трогаются. Во время спина секторы заморожены, новые веса пойдут со следующего спина.
func (c *Controller) UpdateVotes(items []Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.pool.UpdateVotes(items); err != nil {
		return err
	}
	if c.phase != PhaseSpinning {
		c.segments = c.layout()
	}
	return nil
}

// SetParams меняет параметры раскладки в покое. Во время спина секторы заморожены.
func (c *Controller) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.params = p
	if c.phase != PhaseSpinning {
		c.segments = c.layout()
	}
	return nil
}

// Spin запускает один цикл: веса, выбор, целевой угол, анимация
func (c *Controller) Spin(p Params) (SpinTicket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseSpinning || c.animator.Running() {
		return SpinTicket{}, ErrSpinInProgress
	}
	if c.pool.Len() == 0 {
		return SpinTicket{}, ErrEmptyPool
	}
	if c.finished || c.pool.Len() <= 1 {
		return SpinTicket{}, ErrPoolExhausted
	}

	segments, err := BuildSegments(c.pool.Items(), p)
	if err != nil {
		return SpinTicket{}, err
	}

	idx, err := Sample(segments, c.rng)
	if err != nil {
		return SpinTicket{}, err
	}
	target := c.resolver.TargetRotation(segments, idx, c.angle, c.cfg.ExtraSpins, c.rng.Float64())

	from := c.angle
	spinID := uuid.NewString()

	// до Animate: при нулевой длительности кадр может прийти сразу
	c.params = p
	c.segments = segments
	c.chosen = idx
	c.target = target
	c.spinID = spinID
	c.phase = PhaseSpinning

	if _, err := c.animator.Animate(from, target, c.cfg.Duration, c.handleFrame, c.handleLanded); err != nil {
		c.phase = PhaseIdle
		return SpinTicket{}, ErrSpinInProgress
	}

	c.logger.Info("wheel spin started",
		zap.String("spin_id", spinID),
		zap.Int("pool", len(segments)),
		zap.Float64("from", from),
		zap.Float64("target", target),
	)

	return SpinTicket{
		ID:       spinID,
		From:     from,
		Target:   target,
		Duration: c.cfg.Duration,
		Segments: append([]Segment(nil), segments...),
	}, nil
}

// Snapshot возвращает копию текущего состояния
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Angle:        c.angle,
		PointerAngle: c.resolver.PointerAngle,
		Phase:        c.phase,
		Finished:     c.finished,
		SpinID:       c.spinID,
		Target:       c.target,
		Params:       c.params,
		Segments:     append([]Segment(nil), c.segments...),
		Remaining:    c.pool.Items(),
		Log:          append([]Round(nil), c.log...),
	}
}

// Subscribe подписывает на кадры. Медленный подписчик теряет кадры, колесо не ждёт.
func (c *Controller) Subscribe() (<-chan Frame, func()) {
	ch := make(chan Frame, frameBufferSize)

	c.mu.Lock()
	c.subs[ch] = struct{}{}
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, ch)
			c.mu.Unlock()
			close(ch)
		})
	}
}

func (c *Controller) handleFrame(angle float64) {
	c.angle = angle
	c.broadcast(Frame{SpinID: c.spinID, Angle: angle, Phase: PhaseSpinning})
}

func (c *Controller) handleLanded() {
	c.phase = PhaseLanded

	idx := c.resolver.SegmentAt(c.segments, c.angle)
	if idx != c.chosen {
		c.logger.Warn("wheel landed off the drawn segment",
			zap.String("spin_id", c.spinID),
			zap.Int("drawn", c.chosen),
			zap.Int("landed", idx),
		)
	}
	landed := c.segments[idx]
	c.broadcast(Frame{SpinID: c.spinID, Angle: c.angle, Phase: PhaseLanded, Item: landed.Name})

	err := c.pool.Remove(landed.Name)
	switch {
	case errors.Is(err, ErrItemNotFound):
		c.logger.Warn("landed item is not in the pool", zap.String("item", landed.Name))
	case err != nil:
		c.logger.Error("failed to eliminate item", zap.String("item", landed.Name), zap.Error(err))
	}

	round := Round{
		SpinID:    c.spinID,
		Name:      landed.Name,
		Angle:     c.angle,
		Remaining: c.pool.Len(),
		At:        time.Now(),
	}
	c.log = append(c.log, round)

	result := RoundResult{Round: round}
	if err == nil && c.pool.IsFinished() && !c.finished {
		c.finished = true
		result.IsFinalWinner = true
		result.Winner = c.pool.Items()[0].Name
	}

	c.phase = PhaseIdle
	c.segments = c.layout()
	c.broadcast(Frame{SpinID: c.spinID, Angle: c.angle, Phase: PhaseIdle})

	c.logger.Info("wheel round finished",
		zap.String("spin_id", round.SpinID),
		zap.String("item", round.Name),
		zap.Int("remaining", round.Remaining),
		zap.Bool("final", result.IsFinalWinner),
	)

	if c.onRound != nil {
		c.onRound(result)
	}
}

// layout - раскладка оставшихся игр для отрисовки в покое
func (c *Controller) layout() []Segment {
	segments, err := BuildSegments(c.pool.Items(), c.params)
	if err != nil {
		return nil
	}
	return segments
}

func (c *Controller) broadcast(f Frame) {
	for ch := range c.subs {
		select {
		case ch <- f:
		default:
		}
	}
}
