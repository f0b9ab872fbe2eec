package seesaw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pumpkin-seesaw/internal/config"
	"github.com/vovakirdan/pumpkin-seesaw/internal/core"
	"github.com/vovakirdan/pumpkin-seesaw/internal/locale"
)

var testRuntime = core.RuntimeConfig{
	Seed:     42,
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultSeesawConfig())
	g.Reset(testRuntime)
	return g
}

// setWeights replaces the round's pieces with pumpkins of known weights.
func setWeights(g *Game, left, right []int) {
	g.pieces = nil
	add := func(side Side, weights []int) {
		for i, w := range weights {
			x, y := g.layout.Spawn(side, i)
			g.pieces = append(g.pieces, Piece{
				ID: len(g.pieces) + 1, X: x, Y: y, Size: 1, Weight: w, Side: side, Tray: i,
			})
		}
	}
	add(SideLeft, left)
	add(SideRight, right)

	g.slots = [2]*SlotRow{NewSlotRow(g.cfg.Board.SlotsPerSide), NewSlotRow(g.cfg.Board.SlotsPerSide)}
	g.weights = [2]int{}
	g.angle = 0
	g.cursor = 0
}

func step(g *Game, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	g.Step(in)
}

func TestResetGeneratesPiecesWithinBounds(t *testing.T) {
	g := newTestGame(t)
	b := g.Config().Pieces

	var left, right int
	for i, p := range g.Pieces() {
		assert.Equal(t, i+1, p.ID)
		assert.False(t, p.Placed)
		assert.Nil(t, p.Placement)
		assert.GreaterOrEqual(t, p.Weight, b.MinWeight)
		assert.LessOrEqual(t, p.Weight, b.MaxWeight)
		assert.GreaterOrEqual(t, p.Size, b.MinSize)
		assert.LessOrEqual(t, p.Size, b.MaxSize)

		if p.Side == SideLeft {
			assert.Zero(t, right, "left pieces come first")
			left++
		} else {
			right++
		}
	}
	assert.GreaterOrEqual(t, left, b.LeftMin)
	assert.LessOrEqual(t, left, b.LeftMax)
	assert.GreaterOrEqual(t, right, b.RightMin)
	assert.LessOrEqual(t, right, b.RightMax)

	snap := g.Snapshot()
	assert.Equal(t, locale.KeyStart, snap.StatusKey)
	assert.Zero(t, snap.LeftWeight)
	assert.Zero(t, snap.RightWeight)
	assert.Zero(t, snap.Angle)
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t)
	g2 := newTestGame(t)

	for i := 0; i < 50; i++ {
		var actions []core.Action
		switch i % 5 {
		case 0:
			actions = append(actions, core.ActionRight)
		case 2:
			actions = append(actions, core.ActionConfirm)
		case 4:
			actions = append(actions, core.ActionDown)
		}
		step(g1, actions...)
		step(g2, actions...)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Equal(t, g1.Pieces(), g2.Pieces())
}

func TestPlaceThenRemoveRestoresState(t *testing.T) {
	g := newTestGame(t)
	before := g.Pieces()

	for _, p := range before {
		require.NoError(t, g.Toggle(p.ID))
	}
	left, right := g.Weights()
	assert.Positive(t, left)
	assert.Positive(t, right)

	for _, p := range before {
		require.NoError(t, g.Toggle(p.ID))
	}

	snap := g.Snapshot()
	assert.Zero(t, snap.LeftWeight)
	assert.Zero(t, snap.RightWeight)
	assert.Zero(t, snap.PlacedCount)
	assert.NotContains(t, snap.LeftSlots, true)
	assert.NotContains(t, snap.RightSlots, true)
	assert.Equal(t, before, g.Pieces(), "pieces return to their trays")
}

func TestPlaceAndRemoveSingle(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{4}, []int{3})

	require.NoError(t, g.Toggle(1))
	snap := g.Snapshot()
	assert.Equal(t, 4, snap.LeftWeight)
	assert.Equal(t, []bool{true, false, false, false, false, false, false, false}, snap.LeftSlots)

	p := g.Pieces()[0]
	require.NotNil(t, p.Placement)
	assert.Equal(t, 0, p.Placement.Slot)
	assert.InDelta(t, -0.85*g.layout.HalfLength, p.Placement.Offset, 1e-9)
	assert.Equal(t, -2.0, p.Placement.Lift)

	require.NoError(t, g.Toggle(1))
	snap = g.Snapshot()
	assert.Zero(t, snap.LeftWeight)
	assert.NotContains(t, snap.LeftSlots, true)
	assert.Equal(t, locale.KeyRemovedLeft, snap.StatusKey)
}

func TestToggleUnknownPiece(t *testing.T) {
	g := newTestGame(t)
	err := g.Toggle(999)
	require.ErrorIs(t, err, ErrUnknownPiece)
	assert.Zero(t, g.Snapshot().PlacedCount)
}

func TestPlacementMessage(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{10}, []int{2})

	require.NoError(t, g.Toggle(1))
	assert.Equal(t, 20.0, g.Angle())
	assert.Equal(t, Status{Key: locale.KeyAddedLeft, Args: []any{10}}, g.Status())
	assert.Equal(t, "Added 10 kg on the left!", g.StatusText())
	assert.False(t, g.Balanced())

	require.NoError(t, g.Toggle(2))
	assert.Equal(t, "Added 2 kg on the right!", g.StatusText())
}

func TestLeftTooHeavy(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{20}, []int{5})

	require.NoError(t, g.Toggle(2))
	require.NoError(t, g.Toggle(1))

	assert.Equal(t, 30.0, g.Angle())
	assert.Equal(t, locale.KeyLeftHeavy, g.Status().Key)
	assert.False(t, g.Balanced())
}

func TestRightTooHeavy(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{1}, []int{12, 12})

	require.NoError(t, g.Toggle(2))
	require.NoError(t, g.Toggle(3))

	assert.Equal(t, -30.0, g.Angle())
	assert.Equal(t, locale.KeyRightHeavy, g.Status().Key)
}

func TestBalanceFiresOncePerRound(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{5}, []int{5})

	require.NoError(t, g.Toggle(1))
	assert.False(t, g.Balanced())

	require.NoError(t, g.Toggle(2))
	snap := g.Snapshot()
	assert.Zero(t, snap.Angle)
	assert.True(t, snap.Balanced)
	assert.True(t, snap.RewardShown)
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, locale.KeyBalanced, snap.StatusKey)
	assert.Equal(t, g.cfg.Reward.Particles, snap.Particles)

	// Leave and re-enter balance: no second reward.
	require.NoError(t, g.Toggle(2))
	assert.False(t, g.Balanced())
	require.NoError(t, g.Toggle(2))

	snap = g.Snapshot()
	assert.True(t, snap.Balanced)
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, locale.KeyNearBalance, snap.StatusKey)
}

func TestEmptyBoardIsNotBalanced(t *testing.T) {
	g := newTestGame(t)
	step(g)
	assert.False(t, g.Balanced())
	assert.False(t, g.Snapshot().RewardShown)
}

func TestNinthPieceOverflow(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{1, 1, 1, 1, 1, 1, 1, 1, 1}, []int{1})

	for id := 1; id <= 9; id++ {
		require.NoError(t, g.Toggle(id))
	}

	snap := g.Snapshot()
	assert.Equal(t, 9, snap.LeftWeight)
	assert.NotContains(t, snap.LeftSlots, false)
	assert.Equal(t, 8, snap.LeftOccupied)
	assert.Zero(t, snap.RightOccupied)
	assert.Equal(t, 9, g.slots[SideLeft].Pieces())

	ninth := g.Pieces()[8]
	require.NotNil(t, ninth.Placement)
	assert.GreaterOrEqual(t, ninth.Placement.Slot, 0)
	assert.Less(t, ninth.Placement.Slot, 8)

	// Removing the ninth piece keeps its shared slot occupied.
	require.NoError(t, g.Toggle(9))
	assert.Equal(t, 8, g.Snapshot().LeftOccupied)
	assert.Equal(t, 8, g.slots[SideLeft].Pieces())

	for id := 1; id <= 8; id++ {
		require.NoError(t, g.Toggle(id))
	}
	assert.NotContains(t, g.Snapshot().LeftSlots, true)
	assert.Zero(t, g.Snapshot().LeftOccupied)
	assert.Zero(t, g.slots[SideLeft].Pieces())
}

func TestPromptAppearsAfterDelay(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{5}, []int{5})
	require.NoError(t, g.Toggle(1))
	require.NoError(t, g.Toggle(2))

	delay := testRuntime.Ticks(g.cfg.Reward.PromptDelay)
	for range delay - 1 {
		step(g)
	}
	assert.False(t, g.PromptVisible())

	step(g)
	assert.True(t, g.PromptVisible())

	// Keep playing: the prompt goes away and stays away.
	step(g, core.ActionBack)
	assert.False(t, g.PromptVisible())
	for range testRuntime.Ticks(g.cfg.Reward.Duration) {
		step(g)
	}
	assert.False(t, g.PromptVisible())
	assert.Zero(t, g.Snapshot().Particles)
	assert.Equal(t, 10, g.Snapshot().LeftWeight+g.Snapshot().RightWeight)
}

func TestPromptConfirmStartsNewRound(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{5}, []int{5})
	require.NoError(t, g.Toggle(1))
	require.NoError(t, g.Toggle(2))

	for range testRuntime.Ticks(g.cfg.Reward.PromptDelay) {
		step(g)
	}
	require.True(t, g.PromptVisible())

	step(g, core.ActionConfirm)
	snap := g.Snapshot()
	assert.False(t, snap.PromptVisible)
	assert.False(t, snap.RewardShown)
	assert.False(t, snap.Balanced)
	assert.Zero(t, snap.PlacedCount)
	assert.Zero(t, snap.Particles)
	assert.Equal(t, 1, snap.Score, "session score survives the new round")
	assert.Equal(t, locale.KeyStart, snap.StatusKey)
}

func TestPromptBlocksBoardInput(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{5, 3}, []int{5})
	require.NoError(t, g.Toggle(1))
	require.NoError(t, g.Toggle(3))
	for range testRuntime.Ticks(g.cfg.Reward.PromptDelay) {
		step(g)
	}
	require.True(t, g.PromptVisible())

	r := pieceRect(g.pieces[1])
	in := core.NewInputFrame()
	in.Click(r.X, r.Y)
	g.Step(in)
	assert.False(t, g.pieces[1].Placed)
}

func TestRestartClearsRound(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{5}, []int{5})
	require.NoError(t, g.Toggle(1))
	require.NoError(t, g.Toggle(2))

	step(g, core.ActionRestart)

	snap := g.Snapshot()
	assert.Zero(t, snap.PlacedCount)
	assert.Zero(t, snap.LeftWeight)
	assert.Zero(t, snap.RightWeight)
	assert.Zero(t, snap.Angle)
	assert.False(t, snap.Balanced)
	assert.False(t, snap.RewardShown)
	assert.Zero(t, snap.Particles)
	assert.Equal(t, locale.KeyStart, snap.StatusKey)
	assert.GreaterOrEqual(t, snap.PieceCount, g.cfg.Pieces.LeftMin+g.cfg.Pieces.RightMin)
}

func TestApplySettingsRejectsInvalid(t *testing.T) {
	g := newTestGame(t)
	before := g.Pieces()
	beforeCfg := g.Config()

	cfg := config.DefaultSeesawConfig()
	cfg.Pieces.LeftMin, cfg.Pieces.LeftMax = 5, 2
	cfg.Pieces.MinWeight = 0

	err := g.ApplySettings(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLeftRange)
	assert.ErrorIs(t, err, config.ErrBelowOne)
	assert.Equal(t, before, g.Pieces())
	assert.Equal(t, beforeCfg, g.Config())
}

func TestApplySettingsRejectsOversizedRound(t *testing.T) {
	g := newTestGame(t)
	cfg := config.DefaultSeesawConfig()
	cfg.Pieces.LeftMin, cfg.Pieces.LeftMax = 200, 200
	cfg.Pieces.MinWeight, cfg.Pieces.MaxWeight = 999, 999

	err := g.ApplySettings(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrTooMany)
	assert.ErrorIs(t, err, config.ErrTooHeavy)
	assert.LessOrEqual(t, len(g.Pieces()), 2*config.MaxPiecesPerSide)
}

func TestLargestRoundFitsSmallestScreen(t *testing.T) {
	g := newTestGame(t)
	g.Resize(MinWidth, MinHeight)

	cfg := config.DefaultSeesawConfig()
	cfg.Pieces.LeftMin, cfg.Pieces.LeftMax = config.MaxPiecesPerSide, config.MaxPiecesPerSide
	cfg.Pieces.RightMin, cfg.Pieces.RightMax = config.MaxPiecesPerSide, config.MaxPiecesPerSide
	cfg.Pieces.MinWeight, cfg.Pieces.MaxWeight = config.MaxPieceWeight, config.MaxPieceWeight
	cfg.Pieces.MinSize = cfg.Pieces.MaxSize
	require.NoError(t, g.ApplySettings(cfg))

	pieces := g.Pieces()
	require.Len(t, pieces, 2*config.MaxPiecesPerSide)
	for _, p := range pieces {
		r := pieceRect(p)
		assert.GreaterOrEqual(t, r.X, 0, "piece %d", p.ID)
		assert.LessOrEqual(t, r.Right(), MinWidth, "piece %d", p.ID)
		assert.GreaterOrEqual(t, r.Y, 0, "piece %d", p.ID)
		assert.Less(t, r.Y, MinHeight, "piece %d", p.ID)
		assert.Equal(t, p.ID, g.PieceAt(r.X+r.W/2, r.Y), "piece %d is clickable", p.ID)
	}

	for i, a := range pieces {
		for _, b := range pieces[i+1:] {
			ra, rb := pieceRect(a), pieceRect(b)
			if ra.Y != rb.Y {
				continue
			}
			assert.True(t, ra.Right() <= rb.X || rb.Right() <= ra.X, "pieces %d and %d overlap", a.ID, b.ID)
		}
	}
}

func TestApplySettingsStartsNewRound(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Toggle(1))

	cfg := config.DefaultSeesawConfig()
	cfg.Pieces.LeftMin, cfg.Pieces.LeftMax = 2, 2
	cfg.Pieces.RightMin, cfg.Pieces.RightMax = 3, 3
	cfg.Appearance.ColorPreset = config.ColorPastel
	require.NoError(t, g.ApplySettings(cfg))

	assert.Equal(t, cfg, g.Config())
	pieces := g.Pieces()
	require.Len(t, pieces, 5)
	assert.Equal(t, SideLeft, pieces[1].Side)
	assert.Equal(t, SideRight, pieces[2].Side)
	assert.Zero(t, g.Snapshot().PlacedCount)
}

func TestResizeKeepsState(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{5, 2}, []int{3})
	require.NoError(t, g.Toggle(1))
	require.NoError(t, g.Toggle(3))
	before := g.Snapshot()
	oldX := g.pieces[0].X

	g.Resize(120, 40)

	after := g.Snapshot()
	assert.Equal(t, before.LeftWeight, after.LeftWeight)
	assert.Equal(t, before.RightWeight, after.RightWeight)
	assert.Equal(t, before.LeftSlots, after.LeftSlots)
	assert.Equal(t, before.Angle, after.Angle)
	assert.Equal(t, before.StatusKey, after.StatusKey)
	assert.NotEqual(t, oldX, g.pieces[0].X, "placed piece follows the wider board")

	x, y := g.layout.Spawn(SideLeft, 1)
	assert.Equal(t, x, g.pieces[1].X)
	assert.Equal(t, y, g.pieces[1].Y)
}

func TestTooSmallPauses(t *testing.T) {
	g := NewWithConfig(config.DefaultSeesawConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 12, TickRate: 60})
	assert.True(t, g.State().Paused)

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	assert.Zero(t, g.Snapshot().PlacedCount)

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 24)
	assert.False(t, g.State().Paused)
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t)
	step(g, core.ActionPause)
	assert.True(t, g.State().Paused)

	step(g, core.ActionConfirm)
	assert.Zero(t, g.Snapshot().PlacedCount, "input ignored while paused")

	step(g, core.ActionPause)
	assert.False(t, g.State().Paused)
}

func TestClickTogglesPiece(t *testing.T) {
	g := newTestGame(t)
	p := g.Pieces()[0]
	r := pieceRect(p)

	in := core.NewInputFrame()
	in.Click(r.X+r.W-1, r.Y)
	g.Step(in)

	assert.True(t, g.pieces[0].Placed)
	assert.Equal(t, p.ID, g.Selected())
	assert.Equal(t, 0, g.PieceAt(0, 0))
}

func TestCursorMovesToNeighbour(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{1, 2, 3, 4}, []int{5})
	require.Equal(t, 1, g.Selected())

	step(g, core.ActionRight)
	assert.Equal(t, 2, g.Selected())

	step(g, core.ActionDown)
	assert.Equal(t, 4, g.Selected(), "second tray row")

	step(g, core.ActionUp)
	step(g, core.ActionLeft)
	assert.Equal(t, 1, g.Selected())

	step(g, core.ActionLeft)
	assert.Equal(t, 1, g.Selected(), "nothing further left")

	step(g, core.ActionConfirm)
	assert.True(t, g.pieces[0].Placed)
}

func TestRenderShowsHUD(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{7}, []int{3})
	require.NoError(t, g.Toggle(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Pumpkin Seesaw")
	assert.Contains(t, out, "Balanced: 0")
	assert.Contains(t, out, "Added 7 kg on the left!")
	assert.Contains(t, out, "7 kg")
	assert.Contains(t, out, "0 kg")
	assert.Contains(t, out, "(7)")
	assert.Contains(t, out, "(3)")
}

func TestRenderKeepsWeightLabelsOnScreen(t *testing.T) {
	g := newTestGame(t)
	g.Resize(MinWidth, MinHeight)
	setWeights(g, []int{12345}, []int{12345})
	require.NoError(t, g.Toggle(1))
	require.NoError(t, g.Toggle(2))
	require.Zero(t, g.Angle())

	screen := core.NewScreen(MinWidth, MinHeight)
	g.Render(screen)

	row := screen.Row(int(g.layout.PivotY))
	assert.True(t, strings.HasPrefix(row, "12345 kg"), "left label clamped to column 0: %q", row)
	assert.True(t, strings.HasSuffix(row, "12345 kg"), "right label clamped to the last column: %q", row)
	assert.Equal(t, strings.Repeat("─", MinWidth), screen.Row(g.layout.GroundY()))
}

func TestRenderPrompt(t *testing.T) {
	g := newTestGame(t)
	setWeights(g, []int{5}, []int{5})
	require.NoError(t, g.Toggle(1))
	require.NoError(t, g.Toggle(2))
	for range testRuntime.Ticks(g.cfg.Reward.PromptDelay) {
		step(g)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Congratulations!")
}

func TestChineseMessages(t *testing.T) {
	SetLanguage("zh-CN")
	t.Cleanup(func() { SetLanguage("en") })

	g := newTestGame(t)
	assert.Equal(t, "点击南瓜将它们放在跷跷板上！", g.StatusText())

	setWeights(g, []int{3}, []int{1})
	require.NoError(t, g.Toggle(1))
	assert.Equal(t, "在左侧添加了 3公斤!", g.StatusText())
}

func TestRegistered(t *testing.T) {
	g := New()
	assert.Equal(t, "seesaw", g.ID())
	assert.Equal(t, "Pumpkin Seesaw", g.Title())
}
