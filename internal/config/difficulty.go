package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. Unknown values yield ""
// which leaves the loaded config untouched.
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the spawn bounds based on a difficulty preset.
// Easy rounds have few light pumpkins, hard rounds many heavy ones.
func ApplyPreset(cfg *SeesawConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Pieces.LeftMin, cfg.Pieces.LeftMax = 2, 4
		cfg.Pieces.RightMin, cfg.Pieces.RightMax = 2, 4
		cfg.Pieces.MinWeight, cfg.Pieces.MaxWeight = 1, 5
	case DifficultyNormal:
		def := DefaultSeesawConfig().Pieces
		def.MinSize, def.MaxSize = cfg.Pieces.MinSize, cfg.Pieces.MaxSize
		cfg.Pieces = def
	case DifficultyHard:
		cfg.Pieces.LeftMin, cfg.Pieces.LeftMax = 6, 10
		cfg.Pieces.RightMin, cfg.Pieces.RightMax = 6, 10
		cfg.Pieces.MinWeight, cfg.Pieces.MaxWeight = 3, 20
	}
}
