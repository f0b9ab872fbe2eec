package config

import (
	_ "embed"
)

//go:embed defaults/seesaw.yaml
var defaultSeesawYAML []byte

// DefaultSeesawConfig returns the default Pumpkin Seesaw configuration.
func DefaultSeesawConfig() SeesawConfig {
	return SeesawConfig{
		Pieces: PieceBounds{
			LeftMin:   4,
			LeftMax:   8,
			RightMin:  4,
			RightMax:  8,
			MinWeight: 1,
			MaxWeight: 12,
			MinSize:   1,
			MaxSize:   3,
		},
		Board: BoardConfig{
			SlotsPerSide:         8,
			AnglePerUnit:         2,
			MaxAngle:             30,
			BalanceThreshold:     3,
			NearBalanceThreshold: 5,
		},
		Reward: RewardConfig{
			PromptDelay: 3,
			Duration:    5,
			Particles:   50,
		},
		Appearance: AppearanceConfig{
			ColorPreset: ColorDefault,
			SeesawStyle: StyleClassic,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSeesawYAML
}
