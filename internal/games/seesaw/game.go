// Package seesaw implements Pumpkin Seesaw, a balancing game for children.
// Pumpkins of random weight wait in a tray on each side; placing them on the
// board tilts it toward the heavier side until the player balances it.
package seesaw

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/vovakirdan/pumpkin-seesaw/internal/config"
	"github.com/vovakirdan/pumpkin-seesaw/internal/core"
	"github.com/vovakirdan/pumpkin-seesaw/internal/locale"
	"github.com/vovakirdan/pumpkin-seesaw/internal/registry"
)

// ErrUnknownPiece is returned when toggling an ID no piece carries.
var ErrUnknownPiece = errors.New("unknown piece")

// Status is a translatable message shown above the board.
type Status struct {
	Key  string
	Args []any
}

// Game implements the Pumpkin Seesaw game.
type Game struct {
	cfg        config.SeesawConfig
	configured bool // cfg was loaded or set; Reset keeps it
	rt         core.RuntimeConfig
	rng        *rand.Rand
	layout     Layout
	tr         locale.Translator
	logger     *log.Logger
	tick       uint64

	// Round state
	pieces  []Piece
	slots   [2]*SlotRow // Indexed by Side
	weights [2]int      // Indexed by Side
	angle   float64
	status  Status
	cursor  int // Index into pieces

	// Balance and reward
	balanced      bool
	rewardShown   bool
	rewardTicks   int
	rewardActive  bool
	promptPending bool
	showPrompt    bool
	particles     []Particle
	score         int // Rounds balanced this session

	paused   bool
	tooSmall bool
}

// Package-level settings applied on Reset, set from the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	language         = "en"
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
// Unknown values clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficulty(preset)
}

// SetLanguage sets the language for messages, as a BCP 47 tag.
func SetLanguage(lang string) {
	language = lang
}

// SetLogger sets the logger new games write to.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{logger: logger}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.SeesawConfig) *Game {
	return &Game{cfg: cfg, configured: true, logger: logger}
}

func init() {
	registry.Register("seesaw", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "seesaw"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pumpkin Seesaw"
}

// Reset initializes the game and starts the first round.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.configured {
		g.cfg = g.loadConfig()
		g.configured = true
	}
	if g.logger == nil {
		g.logger = logger
	}

	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tr = locale.For(locale.Match(language))
	g.layout = NewLayout(rt.ScreenW, rt.ScreenH)
	g.tooSmall = g.layout.TooSmall()
	g.tick = 0
	g.score = 0
	g.paused = false

	g.NewRound()
}

// loadConfig reads the config file and applies the difficulty preset,
// falling back to defaults when the file is broken.
func (g *Game) loadConfig() config.SeesawConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		g.logger.Warn("using default config", "path", configPath, "error", err)
		cfg = config.DefaultSeesawConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
		if err := cfg.Validate(); err != nil {
			g.logger.Warn("difficulty preset conflicts with config", "preset", difficultyPreset, "error", err)
			cfg = config.DefaultSeesawConfig()
			config.ApplyPreset(&cfg, difficultyPreset)
		}
	}
	return cfg
}

// NewRound regenerates the pumpkins and clears the board, the balance
// state and any running celebration. The session score is kept.
func (g *Game) NewRound() {
	p := g.cfg.Pieces
	leftCount := g.between(p.LeftMin, p.LeftMax)
	rightCount := g.between(p.RightMin, p.RightMax)

	g.pieces = make([]Piece, 0, leftCount+rightCount)
	g.spawnSide(SideLeft, leftCount)
	g.spawnSide(SideRight, rightCount)

	g.slots = [2]*SlotRow{NewSlotRow(g.cfg.Board.SlotsPerSide), NewSlotRow(g.cfg.Board.SlotsPerSide)}
	g.weights = [2]int{}
	g.angle = 0
	g.cursor = 0
	g.status = Status{Key: locale.KeyStart}

	g.balanced = false
	g.rewardShown = false
	g.rewardTicks = 0
	g.rewardActive = false
	g.promptPending = false
	g.showPrompt = false
	g.particles = nil

	g.logger.Info("round started",
		"left", leftCount, "right", rightCount,
		"left_kg", g.trayWeight(SideLeft), "right_kg", g.trayWeight(SideRight),
		"lang", g.tr.Tag())
}

func (g *Game) spawnSide(side Side, count int) {
	p := g.cfg.Pieces
	for i := range count {
		x, y := g.layout.Spawn(side, i)
		g.pieces = append(g.pieces, Piece{
			ID:     len(g.pieces) + 1,
			X:      x,
			Y:      y,
			Size:   g.between(p.MinSize, p.MaxSize),
			Weight: g.between(p.MinWeight, p.MaxWeight),
			Side:   side,
			Tray:   i,
		})
	}
}

// between returns a random integer in [low, high].
func (g *Game) between(low, high int) int {
	if high <= low {
		return low
	}
	return low + g.rng.Intn(high-low+1)
}

func (g *Game) trayWeight(side Side) int {
	return lo.SumBy(lo.Filter(g.pieces, func(p Piece, _ int) bool {
		return p.Side == side
	}), func(p Piece) int {
		return p.Weight
	})
}

// Toggle places an unplaced piece on the board or returns a placed piece
// to its tray, then updates the tilt and balance state.
func (g *Game) Toggle(id int) error {
	_, idx, ok := lo.FindIndexOf(g.pieces, func(p Piece) bool {
		return p.ID == id
	})
	if !ok {
		return fmt.Errorf("toggle piece %d: %w", id, ErrUnknownPiece)
	}

	p := &g.pieces[idx]
	if p.Placed {
		g.remove(p)
	} else {
		g.place(p)
	}
	g.updateTilt()
	return nil
}

func (g *Game) place(p *Piece) {
	slot, overflow := g.slots[p.Side].Acquire(g.rng)
	p.Placed = true
	p.Placement = &Placement{
		Offset: g.layout.SlotOffset(p.Side, slot),
		Lift:   SlotLift(slot),
		Slot:   slot,
	}
	g.weights[p.Side] += p.Weight

	key := locale.KeyAddedLeft
	if p.Side == SideRight {
		key = locale.KeyAddedRight
	}
	g.status = Status{Key: key, Args: []any{p.Weight}}

	g.logger.Debug("piece placed", "id", p.ID, "side", p.Side, "kg", p.Weight, "slot", slot, "overflow", overflow)
}

func (g *Game) remove(p *Piece) {
	g.slots[p.Side].Release(p.Placement.Slot)
	p.Placed = false
	p.Placement = nil
	p.X, p.Y = g.layout.Spawn(p.Side, p.Tray)
	g.weights[p.Side] -= p.Weight

	key := locale.KeyRemovedLeft
	if p.Side == SideRight {
		key = locale.KeyRemovedRight
	}
	g.status = Status{Key: key, Args: []any{p.Weight}}

	g.logger.Debug("piece removed", "id", p.ID, "side", p.Side, "kg", p.Weight)
}

// updateTilt recomputes the angle, moves placed pieces with the board and
// checks for balance.
func (g *Game) updateTilt() {
	left, right := g.weights[SideLeft], g.weights[SideRight]
	g.angle = TiltFor(g.cfg.Board, left, right)
	if key := tiltStatus(g.cfg.Board, g.angle, left, right); key != "" {
		g.status = Status{Key: key}
	}
	g.positionPlaced()
	g.checkBalance()
}

// checkBalance fires the reward on the first transition into balance since
// the round started.
func (g *Game) checkBalance() {
	left, right := g.weights[SideLeft], g.weights[SideRight]
	now := IsBalanced(g.cfg.Board, g.angle, left, right)
	if now && !g.balanced && !g.rewardShown {
		g.rewardShown = true
		g.rewardActive = true
		g.promptPending = true
		g.rewardTicks = 0
		g.score++
		g.status = Status{Key: locale.KeyBalanced}
		g.particles = burst(g.rng, g.cfg.Reward.Particles, g.layout.PivotX, float64(g.layout.Height)/2)
		g.logger.Info("seesaw balanced", "left_kg", left, "right_kg", right, "angle", g.angle, "score", g.score)
	}
	g.balanced = now
}

// positionPlaced moves placed pieces to follow the board's rotation.
func (g *Game) positionPlaced() {
	for i := range g.pieces {
		p := &g.pieces[i]
		if !p.Placed {
			continue
		}
		p.X, p.Y = g.layout.Project(g.angle, p.Placement.Offset, p.Placement.Lift)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.updateReward()
	if in.Empty() {
		return core.StepResult{State: g.State()}
	}

	if g.showPrompt {
		switch {
		case in.Has(core.ActionConfirm), in.Has(core.ActionRestart):
			g.NewRound()
		case in.Has(core.ActionBack):
			g.Continue()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.NewRound()
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	}

	if in.Has(core.ActionConfirm) && len(g.pieces) > 0 {
		_ = g.Toggle(g.pieces[g.cursor].ID)
	}

	for _, c := range in.Clicks {
		if id := g.PieceAt(c.X, c.Y); id != 0 {
			_ = g.Toggle(id)
			g.selectID(id)
		}
	}

	return core.StepResult{State: g.State()}
}

// updateReward runs the celebration timers.
func (g *Game) updateReward() {
	if !g.rewardActive {
		return
	}
	g.rewardTicks++
	g.particles = updateParticles(g.particles)

	if g.promptPending && g.rewardTicks >= g.rt.Ticks(g.cfg.Reward.PromptDelay) {
		g.promptPending = false
		g.showPrompt = true
	}
	if g.rewardTicks >= g.rt.Ticks(g.cfg.Reward.Duration) {
		g.particles = nil
	}
	if !g.promptPending && len(g.particles) == 0 {
		g.rewardActive = false
	}
}

// Continue dismisses the prompt and keeps the current round.
func (g *Game) Continue() {
	g.showPrompt = false
	g.promptPending = false
}

// moveCursor selects the nearest piece in the given direction. Distance
// across the direction of travel counts double.
func (g *Game) moveCursor(dx, dy int) {
	if len(g.pieces) == 0 {
		return
	}
	cur := g.pieces[g.cursor]
	best, bestDist := -1, math.Inf(1)
	for i, p := range g.pieces {
		if i == g.cursor {
			continue
		}
		ddx, ddy := p.X-cur.X, (p.Y-cur.Y)/cellAspect
		along, across := ddx*float64(dx)+ddy*float64(dy), math.Abs(ddx*float64(dy))+math.Abs(ddy*float64(dx))
		if along <= 0 {
			continue
		}
		if d := along + 2*across; d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		g.cursor = best
	}
}

func (g *Game) selectID(id int) {
	if _, idx, ok := lo.FindIndexOf(g.pieces, func(p Piece) bool { return p.ID == id }); ok {
		g.cursor = idx
	}
}

// PieceAt returns the ID of the topmost piece drawn at the cell, or 0.
func (g *Game) PieceAt(x, y int) int {
	for i := len(g.pieces) - 1; i >= 0; i-- {
		if pieceRect(g.pieces[i]).Contains(x, y) {
			return g.pieces[i].ID
		}
	}
	return 0
}

// pieceRect is the cell rectangle a piece's label occupies.
func pieceRect(p Piece) core.Rect {
	w := p.Width()
	return core.NewRect(core.Round(p.X)-w/2, core.Round(p.Y), w, 1)
}

// ApplySettings validates cfg, stores it and starts a new round. Invalid
// settings change nothing.
func (g *Game) ApplySettings(cfg config.SeesawConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("apply settings: %w", err)
	}
	g.cfg = cfg
	g.configured = true
	g.logger.Info("settings applied",
		"color_preset", cfg.Appearance.ColorPreset, "seesaw_style", cfg.Appearance.SeesawStyle,
		"left", fmt.Sprintf("%d-%d", cfg.Pieces.LeftMin, cfg.Pieces.LeftMax),
		"right", fmt.Sprintf("%d-%d", cfg.Pieces.RightMin, cfg.Pieces.RightMax),
		"kg", fmt.Sprintf("%d-%d", cfg.Pieces.MinWeight, cfg.Pieces.MaxWeight))
	g.NewRound()
	return nil
}

// Resize relays out the board for a new screen size. Weights, slots and
// flags are kept.
func (g *Game) Resize(width, height int) {
	g.rt.ScreenW, g.rt.ScreenH = width, height
	g.layout = NewLayout(width, height)
	g.tooSmall = g.layout.TooSmall()

	for i := range g.pieces {
		p := &g.pieces[i]
		if p.Placed {
			p.Placement.Offset = g.layout.SlotOffset(p.Side, p.Placement.Slot)
			continue
		}
		p.X, p.Y = g.layout.Spawn(p.Side, p.Tray)
	}
	g.positionPlaced()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Paused: g.paused || g.tooSmall,
	}
}

// Config returns the active configuration.
func (g *Game) Config() config.SeesawConfig {
	return g.cfg
}

// Translator returns the translator used for messages.
func (g *Game) Translator() locale.Translator {
	return g.tr
}

// Pieces returns a copy of all pieces.
func (g *Game) Pieces() []Piece {
	return lo.Map(g.pieces, func(p Piece, _ int) Piece {
		return p.clone()
	})
}

// Weights returns the total placed weight per side.
func (g *Game) Weights() (left, right int) {
	return g.weights[SideLeft], g.weights[SideRight]
}

// Angle returns the board tilt in degrees.
func (g *Game) Angle() float64 {
	return g.angle
}

// Status returns the current message.
func (g *Game) Status() Status {
	return g.status
}

// StatusText returns the current message translated.
func (g *Game) StatusText() string {
	return g.tr.T(g.status.Key, g.status.Args...)
}

// Balanced reports whether the board is currently balanced.
func (g *Game) Balanced() bool {
	return g.balanced
}

// PromptVisible reports whether the new-game prompt is showing.
func (g *Game) PromptVisible() bool {
	return g.showPrompt
}

// Selected returns the ID of the piece under the cursor, or 0.
func (g *Game) Selected() int {
	if len(g.pieces) == 0 {
		return 0
	}
	return g.pieces[g.cursor].ID
}
