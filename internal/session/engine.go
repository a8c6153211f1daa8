package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/stats"
	"github.com/abhisek/numberrush/internal/store"
)

const (
	// SessionLimit is the hard ceiling on a session before it is scored
	// with no answer.
	SessionLimit = 60 * time.Second

	// FirstRevealDelay gives the UI time to switch screens before the first
	// operand appears.
	FirstRevealDelay = 500 * time.Millisecond

	// TickInterval is the countdown sampling period drivers should tick at.
	TickInterval = 100 * time.Millisecond
)

// StatsStore loads and saves the cross-session aggregate.
type StatsStore interface {
	Load(ctx context.Context) (stats.AggregateStats, error)
	Save(ctx context.Context, a stats.AggregateStats) error
}

// History receives one record per scored session.
type History interface {
	AppendGame(ctx context.Context, rec store.GameRecord) error
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures an Engine. Zero fields get working defaults.
type Options struct {
	Generator *problemgen.Generator
	Stats     StatsStore
	History   History
	Clock     Clock
	Logger    *zap.Logger
}

// Engine is the game state machine. All methods are safe for concurrent use;
// invalid calls are ignored rather than reported.
type Engine struct {
	mu sync.Mutex
	// persistMu orders writes to the stats slot and history. Taken before mu.
	persistMu sync.Mutex

	gen     *problemgen.Generator
	stats   StatsStore
	history History
	clock   Clock
	log     *zap.Logger

	settings  problemgen.Settings
	problem   *problemgen.Problem
	sessionID string
	status    Status
	index     int
	selected  *int
	score     int
	reward    int
	start     time.Time
	end       time.Time
	remaining time.Duration
	timeTaken float64
	aggregate stats.AggregateStats

	reveal    timer
	countdown timer

	observers map[int]func(GameState)
	nextObs   int
}

// NewEngine creates an engine in setup and loads the aggregate once. A load
// failure is logged and leaves the counters at zero.
func NewEngine(ctx context.Context, opts Options) *Engine {
	e := &Engine{
		gen:       opts.Generator,
		stats:     opts.Stats,
		history:   opts.History,
		clock:     opts.Clock,
		log:       opts.Logger,
		index:     -1,
		observers: make(map[int]func(GameState)),
	}
	if e.gen == nil {
		e.gen = problemgen.NewRandom()
	}
	if e.clock == nil {
		e.clock = systemClock{}
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	if e.stats != nil {
		a, err := e.stats.Load(ctx)
		if err != nil {
			e.log.Warn("load stats failed, starting from zero", zap.Error(err))
		} else {
			e.aggregate = a
		}
	}
	return e
}

// StartGame discards any current session and begins a new one. Settings are
// taken as given apart from the difficulty adjustment of the operand count.
func (e *Engine) StartGame(s problemgen.Settings) {
	e.mu.Lock()
	now := e.clock.Now()
	e.cancelTimers()

	p := e.gen.NewProblem(s)
	s.NumberCount = len(p.Operands)

	e.settings = s
	e.problem = p
	e.sessionID = uuid.NewString()
	e.status = StatusPlaying
	e.index = -1
	e.selected = nil
	e.score, e.reward = 0, 0
	e.start = now
	e.end = time.Time{}
	e.remaining = SessionLimit
	e.timeTaken = 0

	e.reveal.arm(now.Add(FirstRevealDelay), 0)
	e.countdown.arm(now.Add(TickInterval), TickInterval)

	e.log.Info("game started",
		zap.String("session_id", e.sessionID),
		zap.String("difficulty", string(s.Difficulty)),
		zap.String("operation", string(s.Operation)),
		zap.Int("operands", s.NumberCount),
		zap.Bool("automatic", s.IsAutomatic),
		zap.Int("interval_ms", s.TimeInterval),
	)
	snap := e.snapshot()
	e.mu.Unlock()
	e.notify(snap)
}

// RevealNext shows the next operand. It is a no-op outside playing or once
// every operand is visible.
func (e *Engine) RevealNext() {
	e.mu.Lock()
	changed := e.revealLocked(e.clock.Now())
	snap := e.snapshot()
	e.mu.Unlock()
	if changed {
		e.notify(snap)
	}
}

// SelectAnswer scores the session with answer. It is accepted only while
// playing with every operand visible.
func (e *Engine) SelectAnswer(answer int) {
	e.mu.Lock()
	if e.status != StatusPlaying || !e.allRevealed() {
		e.mu.Unlock()
		return
	}
	res := e.finishLocked(&answer, e.clock.Now())
	snap := e.snapshot()
	e.mu.Unlock()
	e.persist(res)
	e.notify(snap)
}

// ResetGame returns to setup, dropping the problem. The aggregate is kept.
func (e *Engine) ResetGame() {
	e.mu.Lock()
	e.cancelTimers()
	e.settings = problemgen.Settings{}
	e.problem = nil
	e.sessionID = ""
	e.status = StatusSetup
	e.index = -1
	e.selected = nil
	e.score, e.reward = 0, 0
	e.start, e.end = time.Time{}, time.Time{}
	e.remaining = 0
	e.timeTaken = 0
	snap := e.snapshot()
	e.mu.Unlock()
	e.notify(snap)
}

// Tick advances the engine's timers to now. Drivers call it every
// TickInterval; late ticks catch up on missed reveals.
func (e *Engine) Tick(now time.Time) {
	e.mu.Lock()
	if e.status != StatusPlaying {
		e.mu.Unlock()
		return
	}
	changed := false
	for e.reveal.active && !now.Before(e.reveal.due) {
		due := e.reveal.due
		e.reveal.fire(now)
		if e.revealLocked(due) {
			changed = true
		}
	}

	var res *result
	if e.countdown.fire(now) {
		remaining := SessionLimit - now.Sub(e.start)
		if remaining < 0 {
			remaining = 0
		}
		if remaining != e.remaining {
			e.remaining = remaining
			changed = true
		}
		if remaining == 0 {
			e.log.Info("game timed out", zap.String("session_id", e.sessionID))
			res = e.finishLocked(nil, now)
			changed = true
		}
	}
	snap := e.snapshot()
	e.mu.Unlock()

	if res != nil {
		e.persist(res)
	}
	if changed {
		e.notify(snap)
	}
}

// State returns a snapshot of the current state.
func (e *Engine) State() GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// Subscribe registers fn to receive a snapshot after every state change. The
// returned func removes it.
func (e *Engine) Subscribe(fn func(GameState)) (unsubscribe func()) {
	e.mu.Lock()
	id := e.nextObs
	e.nextObs++
	e.observers[id] = fn
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.observers, id)
			e.mu.Unlock()
		})
	}
}

// revealLocked advances the index at time at. An automatic session re-arms
// the reveal timer one interval later until the last operand is shown.
func (e *Engine) revealLocked(at time.Time) bool {
	if e.status != StatusPlaying || e.allRevealed() {
		return false
	}
	e.index++
	if e.settings.IsAutomatic && !e.allRevealed() {
		e.reveal.arm(at.Add(time.Duration(e.settings.TimeInterval)*time.Millisecond), 0)
	} else {
		e.reveal.cancel()
	}
	e.log.Debug("operand revealed",
		zap.String("session_id", e.sessionID),
		zap.Int("index", e.index),
	)
	return true
}

func (e *Engine) allRevealed() bool {
	return e.problem != nil && e.index == len(e.problem.Operands)-1
}

func (e *Engine) cancelTimers() {
	e.reveal.cancel()
	e.countdown.cancel()
}

// result carries what must be written out after a session is scored.
type result struct {
	record store.GameRecord
}

// finishLocked scores the session and moves it to results. A nil answer is a
// timeout.
func (e *Engine) finishLocked(answer *int, now time.Time) *result {
	e.cancelTimers()

	correct := answer != nil && *answer == e.problem.CorrectAnswer
	taken := now.Sub(e.start).Seconds()
	score, reward := Score(e.settings.Difficulty, correct, taken)

	e.aggregate.Record(e.settings, correct, taken, reward)
	e.status = StatusResults
	e.selected = answer
	e.score, e.reward = score, reward
	e.end = now
	e.timeTaken = taken

	e.log.Info("game scored",
		zap.String("session_id", e.sessionID),
		zap.Bool("correct", correct),
		zap.Bool("timeout", answer == nil),
		zap.Int("score", score),
		zap.Int("reward", reward),
		zap.Float64("time_taken", taken),
	)

	return &result{
		record: store.GameRecord{
			SessionID:      e.sessionID,
			StartedAt:      e.start,
			EndedAt:        now,
			Difficulty:     string(e.settings.Difficulty),
			Operation:      string(e.settings.Operation),
			Operands:       append([]int(nil), e.problem.Operands...),
			CorrectAnswer:  e.problem.CorrectAnswer,
			SelectedAnswer: copyInt(answer),
			Correct:        correct,
			Score:          score,
			Reward:         reward,
			TimeTaken:      taken,
		},
	}
}

// persist writes the aggregate and history outside the lock. Failures are
// logged and dropped.
func (e *Engine) persist(res *result) {
	e.persistMu.Lock()
	defer e.persistMu.Unlock()

	// A later session may have scored while this one waited; its aggregate
	// includes this one, so always write the newest.
	e.mu.Lock()
	latest := e.aggregate
	e.mu.Unlock()

	ctx := context.Background()
	if e.stats != nil {
		if err := e.stats.Save(ctx, latest); err != nil {
			e.log.Error("save stats failed",
				zap.String("session_id", res.record.SessionID),
				zap.Error(err),
			)
		}
	}
	if e.history != nil {
		if err := e.history.AppendGame(ctx, res.record); err != nil {
			e.log.Error("append game history failed",
				zap.String("session_id", res.record.SessionID),
				zap.Error(err),
			)
		}
	}
}

func (e *Engine) snapshot() GameState {
	s := GameState{
		Settings:       e.settings,
		SessionID:      e.sessionID,
		Status:         e.status,
		RevealedIndex:  e.index,
		SelectedAnswer: copyInt(e.selected),
		Score:          e.score,
		Reward:         e.reward,
		TimeRemaining:  e.remaining,
		StartTime:      e.start,
		EndTime:        e.end,
		TimeTaken:      e.timeTaken,
		Stats:          e.aggregate,
	}
	if e.problem != nil {
		s.Operands = append([]int(nil), e.problem.Operands...)
		s.Options = append([]int(nil), e.problem.Options...)
		s.CorrectAnswer = e.problem.CorrectAnswer
	}
	return s
}

func (e *Engine) notify(s GameState) {
	e.mu.Lock()
	fns := make([]func(GameState), 0, len(e.observers))
	for _, fn := range e.observers {
		fns = append(fns, fn)
	}
	e.mu.Unlock()
	for _, fn := range fns {
		fn(s)
	}
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
