package seesaw

// Snapshot contains the observable game state for tests and debugging.
// Uses primitive types only.
type Snapshot struct {
	Tick          uint64
	LeftWeight    int
	RightWeight   int
	Angle         float64
	LeftSlots     []bool
	RightSlots    []bool
	LeftOccupied  int
	RightOccupied int
	PlacedCount   int
	PieceCount    int
	Balanced      bool
	RewardShown   bool
	PromptVisible bool
	Particles     int
	Score         int
	StatusKey     string
	Paused        bool
	TooSmall      bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	placed := 0
	for _, p := range g.pieces {
		if p.Placed {
			placed++
		}
	}
	return Snapshot{
		Tick:          g.tick,
		LeftWeight:    g.weights[SideLeft],
		RightWeight:   g.weights[SideRight],
		Angle:         g.angle,
		LeftSlots:     g.slots[SideLeft].Occupancy(),
		RightSlots:    g.slots[SideRight].Occupancy(),
		LeftOccupied:  g.slots[SideLeft].OccupiedCount(),
		RightOccupied: g.slots[SideRight].OccupiedCount(),
		PlacedCount:   placed,
		PieceCount:    len(g.pieces),
		Balanced:      g.balanced,
		RewardShown:   g.rewardShown,
		PromptVisible: g.showPrompt,
		Particles:     len(g.particles),
		Score:         g.score,
		StatusKey:     g.status.Key,
		Paused:        g.paused,
		TooSmall:      g.tooSmall,
	}
}
