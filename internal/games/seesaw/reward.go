package seesaw

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/pumpkin-seesaw/internal/core"
)

// Particle motion constants, per tick.
const (
	particleDrag    = 0.98
	particleGravity = 0.01
	particleShrink  = 0.99
	particleMinSize = 0.5
)

var particleGlyphs = []rune{'*', '+', 'o', '.'}

var particleColors = []core.Color{
	core.ColorOrange,
	core.ColorDarkOrange,
	core.ColorAmber,
	core.ColorGold,
	core.ColorBrightYellow,
}

// Particle is one piece of the balance celebration.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Glyph  rune
	Color  core.Color
}

// burst creates n particles at (x, y) flying in random directions.
func burst(rng *rand.Rand, n int, x, y float64) []Particle {
	out := make([]Particle, 0, n)
	for range n {
		angle := rng.Float64() * 2 * math.Pi
		speed := 0.2 + rng.Float64()*0.4
		out = append(out, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed * cellAspect,
			Size:  10 + rng.Float64()*20,
			Glyph: particleGlyphs[rng.Intn(len(particleGlyphs))],
			Color: particleColors[rng.Intn(len(particleColors))],
		})
	}
	return out
}

// updateParticles advances every particle one tick and drops the ones that
// have shrunk away. The slice is filtered in place.
func updateParticles(ps []Particle) []Particle {
	kept := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= particleDrag
		p.VY = p.VY*particleDrag + particleGravity
		p.Size *= particleShrink
		if p.Size > particleMinSize {
			kept = append(kept, p)
		}
	}
	return kept
}
