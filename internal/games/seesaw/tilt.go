package seesaw

import (
	"math"

	"github.com/vovakirdan/pumpkin-seesaw/internal/config"
	"github.com/vovakirdan/pumpkin-seesaw/internal/core"
	"github.com/vovakirdan/pumpkin-seesaw/internal/locale"
)

// Tilt returns the board angle in degrees for the default board tuning.
// Positive means the left side is heavier.
func Tilt(left, right int) float64 {
	return TiltFor(config.DefaultSeesawConfig().Board, left, right)
}

// TiltFor returns the board angle for the given tuning, clamped to ±MaxAngle.
func TiltFor(b config.BoardConfig, left, right int) float64 {
	return core.ClampF(b.AnglePerUnit*float64(left-right), -b.MaxAngle, b.MaxAngle)
}

// IsBalanced reports whether an angle counts as balanced. An empty side
// never balances.
func IsBalanced(b config.BoardConfig, angle float64, left, right int) bool {
	return math.Abs(angle) < b.BalanceThreshold && left > 0 && right > 0
}

// tiltStatus returns the message key describing the tilt, or "" when the
// angle is unremarkable.
func tiltStatus(b config.BoardConfig, angle float64, left, right int) string {
	switch {
	case math.Abs(angle) < b.NearBalanceThreshold && left > 0 && right > 0:
		return locale.KeyNearBalance
	case angle == b.MaxAngle:
		return locale.KeyLeftHeavy
	case angle == -b.MaxAngle:
		return locale.KeyRightHeavy
	default:
		return ""
	}
}
