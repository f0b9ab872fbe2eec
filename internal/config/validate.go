package config

import (
	"errors"
	"fmt"
	"slices"
)

// Upper bounds for the spawn settings. Larger rounds do not fit the trays.
const (
	MaxPiecesPerSide = 10
	MaxPieceWeight   = 20
)

// Validation errors. Validate joins every violation it finds, so callers
// can test for each one with errors.Is.
var (
	ErrLeftRange    = errors.New("left pumpkin count: min exceeds max")
	ErrRightRange   = errors.New("right pumpkin count: min exceeds max")
	ErrWeightRange  = errors.New("pumpkin weight: min exceeds max")
	ErrSizeRange    = errors.New("pumpkin size: min exceeds max")
	ErrBelowOne     = errors.New("minimum values must be at least 1")
	ErrTooMany      = fmt.Errorf("pumpkin count exceeds %d per side", MaxPiecesPerSide)
	ErrTooHeavy     = fmt.Errorf("pumpkin weight exceeds %d kg", MaxPieceWeight)
	ErrSlots        = errors.New("board needs at least one slot per side")
	ErrAngle        = errors.New("board angles must be positive")
	ErrColorPreset  = errors.New("unknown color preset")
	ErrSeesawStyle  = errors.New("unknown seesaw style")
	ErrRewardTiming = errors.New("reward timings must not be negative")
)

// Validate checks the configuration and returns all violations joined,
// or nil when the configuration is usable.
func (c SeesawConfig) Validate() error {
	return errors.Join(c.Pieces.Validate(), c.Board.validate(), c.Reward.validate(), c.Appearance.validate())
}

// Validate checks the spawn bounds: every min <= max, every minimum >= 1,
// counts at most MaxPiecesPerSide and weights at most MaxPieceWeight.
func (p PieceBounds) Validate() error {
	var errs []error
	if p.LeftMin > p.LeftMax {
		errs = append(errs, ErrLeftRange)
	}
	if p.RightMin > p.RightMax {
		errs = append(errs, ErrRightRange)
	}
	if p.MinWeight > p.MaxWeight {
		errs = append(errs, ErrWeightRange)
	}
	if p.MinSize > p.MaxSize {
		errs = append(errs, ErrSizeRange)
	}
	if p.LeftMin < 1 || p.RightMin < 1 || p.MinWeight < 1 || p.MinSize < 1 {
		errs = append(errs, ErrBelowOne)
	}
	if p.LeftMax > MaxPiecesPerSide || p.RightMax > MaxPiecesPerSide {
		errs = append(errs, ErrTooMany)
	}
	if p.MaxWeight > MaxPieceWeight {
		errs = append(errs, ErrTooHeavy)
	}
	return errors.Join(errs...)
}

func (b BoardConfig) validate() error {
	var errs []error
	if b.SlotsPerSide < 1 {
		errs = append(errs, ErrSlots)
	}
	if b.AnglePerUnit <= 0 || b.MaxAngle <= 0 || b.BalanceThreshold <= 0 || b.NearBalanceThreshold <= 0 {
		errs = append(errs, ErrAngle)
	}
	return errors.Join(errs...)
}

func (r RewardConfig) validate() error {
	if r.PromptDelay < 0 || r.Duration < 0 || r.Particles < 0 {
		return ErrRewardTiming
	}
	return nil
}

func (a AppearanceConfig) validate() error {
	var errs []error
	if !slices.Contains(ColorPresets, a.ColorPreset) {
		errs = append(errs, fmt.Errorf("%w %q", ErrColorPreset, a.ColorPreset))
	}
	if !slices.Contains(SeesawStyles, a.SeesawStyle) {
		errs = append(errs, fmt.Errorf("%w %q", ErrSeesawStyle, a.SeesawStyle))
	}
	return errors.Join(errs...)
}
