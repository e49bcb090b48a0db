// Package game implements the rules engine of the falling-block puzzle:
// the authoritative board, the active piece lifecycle, line clears with
// cascading re-checks, ren combos, level progression, the hold slot, and
// the charge-gated bomb ability. All timing is measured on the pausable
// game clock; presentation windows never mutate the board directly.
package game

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/events"
)

// Config carries session construction options. Zero values select the
// defaults
type Config struct {
	Width  int
	Height int
	Rand   *rand.Rand
	Log    *zap.SugaredLogger
	Sounds SoundPlayer
}

// Session is a single game: one board, one progression, one ability
// state. It is owned by the caller; all methods are safe for concurrent
// use, with command and tick processing expected on the scheduler
// goroutine and Snapshot on the render goroutine
type Session struct {
	mu sync.Mutex

	clock  *engine.PausableClock
	rng    *rand.Rand
	log    *zap.SugaredLogger
	sounds SoundPlayer

	board  *Board
	queue  *PieceQueue
	active *Piece
	hold   *HoldManager
	combo  ComboTracker
	prog   Progression
	ult    UltimateAbility

	effects         []TimedEffect
	pending         []deferredAction
	clearWindowOpen bool

	gravityAccum time.Duration
	lastTick     time.Time

	started  bool
	gameOver bool

	// Reset generation; deferred actions stamped with an older value are
	// discarded instead of run
	gen uint64
}

// NewSession creates a session bound to the given pausable clock. The
// session starts on the title state; the Start command begins play
func NewSession(clock *engine.PausableClock, cfg Config) *Session {
	if cfg.Width < constants.MinBoardWidth || cfg.Width > constants.MaxBoardWidth {
		cfg.Width = constants.BoardWidth
	}
	if cfg.Height < constants.MinBoardHeight || cfg.Height > constants.MaxBoardHeight {
		cfg.Height = constants.BoardHeight
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop().Sugar()
	}

	s := &Session{
		clock:  clock,
		rng:    cfg.Rand,
		log:    cfg.Log,
		sounds: cfg.Sounds,
		board:  NewBoard(cfg.Width, cfg.Height),
		queue:  NewPieceQueue(cfg.Rand),
		hold:   NewHoldManager(),
		prog:   NewProgression(),
	}
	s.lastTick = clock.Now()
	return s
}

// ===== Lifecycle =====

// Start begins play, restarting from scratch if a game is already over
// or running
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked(s.clock.Now())
	s.started = true
	s.spawnNext(s.clock.Now())
}

// Reset cancels all pending windows unconditionally and reallocates
// state from scratch. A running game restarts immediately
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	s.resetLocked(now)
	if s.started {
		s.spawnNext(now)
	}
}

// TogglePause flips the game clock's pause state. No-op before the first
// start or after game over
func (s *Session) TogglePause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started || s.gameOver {
		return
	}
	if s.clock.IsPaused() {
		s.clock.Resume()
	} else {
		s.clock.Pause()
	}
}

// IsGameOver reports the terminal state
func (s *Session) IsGameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver
}

// resetLocked reallocates all per-game state. The generation bump
// invalidates every deferred action scheduled before this point
func (s *Session) resetLocked(now time.Time) {
	s.gen++
	s.pending = nil
	s.effects = nil
	s.clearWindowOpen = false

	s.board = NewBoard(s.board.W, s.board.H)
	s.queue = NewPieceQueue(s.rng)
	s.active = nil
	s.hold = NewHoldManager()
	s.combo = ComboTracker{}
	s.prog = NewProgression()
	s.ult = UltimateAbility{}

	s.gravityAccum = 0
	s.lastTick = now
	s.gameOver = false

	if s.clock.IsPaused() {
		s.clock.Resume()
	}
}

// ===== Scheduler tick =====

// Tick advances gravity, drains due deferred actions, and expires the
// ability. now is game time: while paused it does not advance, so every
// accumulator and deadline freezes without special cases
func (s *Session) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delta := now.Sub(s.lastTick)
	if delta < 0 {
		delta = 0
	}
	s.lastTick = now

	if !s.started || s.gameOver {
		s.pruneEffects(now)
		return
	}

	s.runDueActions(now)

	if s.ult.ExpireIfDue(now) {
		s.log.Debugw("ability expired")
	}

	if s.active != nil {
		s.gravityAccum += delta
		if s.gravityAccum >= s.prog.DropInterval {
			s.gravityAccum = 0
			if !TryMove(s.board, s.active, 0, 1) {
				s.lockActive(now)
			}
		}
	}

	s.pruneEffects(now)
}

// runDueActions drains the deadline-keyed queue. Actions from an older
// generation are stale-timer remnants of a reset and are dropped
func (s *Session) runDueActions(now time.Time) {
	var remaining []deferredAction
	for i := 0; i < len(s.pending); i++ {
		a := s.pending[i]
		if a.gen != s.gen {
			continue
		}
		if now.Before(a.due) {
			remaining = append(remaining, a)
			continue
		}
		a.run(now)
	}
	s.pending = remaining
}

// schedule enqueues a deferred action keyed to a game-time deadline
func (s *Session) schedule(due time.Time, run func(now time.Time)) {
	s.pending = append(s.pending, deferredAction{due: due, gen: s.gen, run: run})
}

func (s *Session) pruneEffects(now time.Time) {
	kept := s.effects[:0]
	for i := range s.effects {
		e := s.effects[i]
		// The clear window is closed by its resolve action, not by decay
		if e.Kind == EffectLineClear && s.clearWindowOpen {
			kept = append(kept, e)
			continue
		}
		if !e.Expired(now) {
			kept = append(kept, e)
		}
	}
	s.effects = kept
}

// ===== Input commands =====

// EventTypes implements events.Handler: the session consumes every
// player command
func (s *Session) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventMoveLeft,
		events.EventMoveRight,
		events.EventSoftDrop,
		events.EventRotate,
		events.EventHold,
		events.EventHardDrop,
		events.EventActivateAbility,
		events.EventTogglePause,
		events.EventReset,
		events.EventStart,
	}
}

// HandleEvent implements events.Handler. Invoked on the scheduler
// goroutine with the current game time as context
func (s *Session) HandleEvent(now time.Time, event events.GameEvent) {
	switch event.Type {
	case events.EventStart:
		s.Start()
		return
	case events.EventReset:
		s.Reset()
		return
	case events.EventTogglePause:
		s.TogglePause()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Piece commands are rejected wholesale when there is nothing to
	// act on or a hard drop is still animating
	if !s.started || s.gameOver || s.clock.IsPaused() ||
		s.active == nil || s.hardDropOpen(now) {
		s.log.Debugw("command rejected", "command", event.Type.String())
		return
	}

	switch event.Type {
	case events.EventMoveLeft:
		TryMove(s.board, s.active, -1, 0)
	case events.EventMoveRight:
		TryMove(s.board, s.active, 1, 0)
	case events.EventSoftDrop:
		if TryMove(s.board, s.active, 0, 1) {
			s.gravityAccum = 0
		}
	case events.EventRotate:
		TryRotate(s.board, s.active)
	case events.EventHold:
		s.executeHold(now)
	case events.EventHardDrop:
		s.executeHardDrop(now)
	case events.EventActivateAbility:
		s.activateUltimate(now)
	default:
		s.log.Warnw("unhandled command", "command", event.Type.String())
	}
}

func (s *Session) hardDropOpen(now time.Time) bool {
	for i := range s.effects {
		if s.effects[i].Kind == EffectHardDrop && !s.effects[i].Expired(now) {
			return true
		}
	}
	return false
}

// executeHold stores the active piece's kind, or swaps it with the held
// kind. Holding is locked out until the next successful lock
func (s *Session) executeHold(now time.Time) {
	if !s.hold.CanHold() {
		s.log.Debugw("hold rejected, already used this cycle")
		return
	}

	current := s.active.Kind
	stored, hadStored := s.hold.Exchange(current)
	if !hadStored {
		// Current piece is consumed, not returned to the board
		s.spawnNext(now)
		return
	}

	p := MustPiece(stored)
	p.X = s.board.W/2 - p.Width()/2
	p.Y = 0
	if s.board.Collides(p, 0, 0) {
		s.endGame()
		return
	}
	s.active = p
	s.gravityAccum = 0
}

// executeHardDrop teleports the piece to its projected position, awards
// the distance bonus, opens the drop animation window, and locks
func (s *Session) executeHardDrop(now time.Time) {
	fromY := s.active.Y
	toY := ProjectedDropY(s.board, s.active)
	distance := toY - fromY

	s.active.Y = toY
	s.prog.AddScore(distance * constants.HardDropScorePerRow)

	s.effects = append(s.effects, TimedEffect{
		Kind:      EffectHardDrop,
		StartedAt: now,
		Duration:  constants.HardDropWindow,
		X:         s.active.X,
		FromY:     fromY,
		ToY:       toY,
	})
	s.play(SoundHardDrop)
	s.lockActive(now)
}

// activateUltimate gates on charge and cooldown, then replaces the
// falling piece in place with a 1x1 bomb at the same column, top row
func (s *Session) activateUltimate(now time.Time) {
	if !s.ult.Activate(now) {
		s.log.Debugw("ability activation rejected",
			"charge", s.ult.Charge(),
			"active", s.ult.Active(),
			"cooldown_remaining", s.ult.CooldownRemaining(now))
		return
	}

	bomb := MustPiece(KindBomb)
	bomb.X = s.active.X
	if bomb.X < 0 {
		bomb.X = 0
	}
	if bomb.X >= s.board.W {
		bomb.X = s.board.W - 1
	}
	bomb.Y = 0

	s.active = bomb
	s.gravityAccum = 0
	s.play(SoundAbilityActivate)
	s.log.Infow("ability activated", "column", bomb.X)
}

// ===== Lock and clear engine =====

// lockActive commits the piece that can no longer descend. Bomb pieces
// resolve through the explosion path and never occupy the board as
// ordinary cells
func (s *Session) lockActive(now time.Time) {
	p := s.active
	s.active = nil

	if p.IsBomb {
		s.explode(now, p)
		s.hold.Unlock()
		s.ult.OnLock()
		s.spawnNext(now)
		return
	}

	if lost := s.board.LockPiece(p); lost > 0 {
		// A piece locked partly above the visible board loses those
		// cells; game over still waits for the next spawn collision
		s.log.Warnw("piece locked above board, cells discarded",
			"kind", p.Kind.String(), "lost", lost)
	}

	s.hold.Unlock()
	wasReady := s.ult.Ready(now)
	s.ult.OnLock()
	s.play(SoundLock)

	s.detectClears(now, false)
	s.announceAbilityReady(now, wasReady)
	s.spawnNext(now)
}

// detectClears scans for complete rows and opens the clear window. While
// a window is already open detection is skipped entirely: at most one
// clear pass may be in flight. Cascade re-checks never reset the combo
func (s *Session) detectClears(now time.Time, cascade bool) {
	if s.clearWindowOpen {
		return
	}

	rows := s.board.CompleteRows()
	if len(rows) == 0 {
		if !cascade {
			s.combo.OnNoClear()
		}
		return
	}

	ren := s.combo.OnClear()
	rowsCopy := append([]int(nil), rows...)

	s.clearWindowOpen = true
	s.effects = append(s.effects, TimedEffect{
		Kind:      EffectLineClear,
		StartedAt: now,
		Duration:  constants.LineClearWindow,
		Rows:      rowsCopy,
	})
	s.play(clearSound(len(rows)))
	if ren >= 2 {
		s.play(SoundCombo)
	}

	s.schedule(now.Add(constants.LineClearWindow), func(at time.Time) {
		s.resolveClear(at, rowsCopy, ren)
	})
}

// resolveClear runs at clear-window expiry: remove the rows, apply the
// score, close the window, and re-run detection. Removal cannot complete
// a row, so the cascade is a defensive no-op in the common case
func (s *Session) resolveClear(now time.Time, rows []int, ren int) {
	if repaired := s.board.RemoveRows(rows); repaired {
		s.log.Warnw("board height repaired after row removal", "rows", rows)
	}

	n := len(rows)
	base := s.prog.BaseScore(n)
	delta := base + s.combo.Bonus(base, ren)
	wasReady := s.ult.Ready(now)
	leveledUp := s.prog.ApplyClear(n, delta)
	s.ult.OnClear(n)

	s.clearWindowOpen = false
	s.removeEffect(EffectLineClear)

	if leveledUp {
		s.play(SoundLevelUp)
		s.log.Infow("level up", "level", s.prog.Level,
			"drop_interval", s.prog.DropInterval)
	}
	s.announceAbilityReady(now, wasReady)

	s.detectClears(now, true)
}

// explode resolves a bomb lock: empty the square region, award the flat
// bonus, and collapse the touched columns after the presentation delay
func (s *Session) explode(now time.Time, bomb *Piece) {
	removed := s.board.ClearRegion(bomb.X, bomb.Y, constants.ExplosionRange)
	s.prog.AddScore(constants.ExplosionScore)
	s.play(SoundExplosion)
	s.log.Infow("bomb exploded", "x", bomb.X, "y", bomb.Y, "cells", len(removed))

	s.effects = append(s.effects, TimedEffect{
		Kind:      EffectExplosion,
		StartedAt: now,
		Duration:  constants.ExplosionWindow,
		X:         bomb.X,
		FromY:     bomb.Y,
		ToY:       bomb.Y,
		Removed:   removed,
	})

	columns := make(map[int]bool, len(removed))
	for _, rc := range removed {
		columns[rc.X] = true
	}

	s.schedule(now.Add(constants.CollapseDelay), func(at time.Time) {
		for x := range columns {
			s.board.CollapseColumn(x)
		}
		s.detectClears(at, true)
	})
}

// spawnNext advances the queue and places the next piece at the spawn
// position. Collision at spawn is the terminal game-over transition
func (s *Session) spawnNext(now time.Time) {
	kind := s.queue.Pop()
	p := MustPiece(kind)
	p.X = s.board.W/2 - p.Width()/2
	p.Y = 0

	if s.board.Collides(p, 0, 0) {
		s.endGame()
		return
	}

	s.active = p
	s.gravityAccum = 0
}

func (s *Session) endGame() {
	s.gameOver = true
	s.active = nil
	s.play(SoundGameOver)
	s.log.Infow("game over",
		"score", s.prog.Score, "lines", s.prog.Lines, "level", s.prog.Level)
}

// announceAbilityReady fires the ready cue on the not-ready -> ready
// transition
func (s *Session) announceAbilityReady(now time.Time, wasReady bool) {
	if !wasReady && s.ult.Ready(now) {
		s.play(SoundAbilityReady)
	}
}

// play forwards a cue to the audio boundary; a nil player is silence
func (s *Session) play(sound Sound) {
	if s.sounds != nil {
		s.sounds.Play(sound)
	}
}

// ===== Snapshot =====

// Snapshot captures the complete render-facing state at the given game
// time. The returned value shares no memory with live state
func (s *Session) Snapshot(now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Grid:     s.board.Grid(),
		Width:    s.board.W,
		Height:   s.board.H,
		Upcoming: s.queue.Preview(),
		CanHold:  s.hold.CanHold(),

		Score:    s.prog.Score,
		Lines:    s.prog.Lines,
		Level:    s.prog.Level,
		RenCount: s.combo.Ren(),

		ChargeFraction:    s.ult.ChargeFraction(),
		AbilityActive:     s.ult.Active(),
		AbilityRemaining:  s.ult.ActiveRemaining(now),
		CooldownRemaining: s.ult.CooldownRemaining(now),

		Started:  s.started,
		Paused:   s.clock.IsPaused(),
		GameOver: s.gameOver,
	}

	if kind, ok := s.hold.Slot(); ok {
		k := kind
		snap.Hold = &k
	}

	if s.active != nil {
		snap.Active = &PieceView{
			Kind:   s.active.Kind,
			Shape:  copyShape(s.active.Shape),
			X:      s.active.X,
			Y:      s.active.Y,
			Color:  s.active.Color,
			IsBomb: s.active.IsBomb,
		}
		snap.GhostY = ProjectedDropY(s.board, s.active)
	}

	for i := range s.effects {
		e := &s.effects[i]
		if e.Expired(now) && e.Kind != EffectLineClear {
			continue
		}
		snap.Effects = append(snap.Effects, EffectView{
			Kind:     e.Kind,
			Progress: e.Progress(now),
			Rows:     append([]int(nil), e.Rows...),
			X:        e.X,
			FromY:    e.FromY,
			ToY:      e.ToY,
			Removed:  append([]RemovedCell(nil), e.Removed...),
		})
	}

	return snap
}

func (s *Session) removeEffect(kind EffectKind) {
	kept := s.effects[:0]
	for i := range s.effects {
		if s.effects[i].Kind != kind {
			kept = append(kept, s.effects[i])
		}
	}
	s.effects = kept
}
