// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the seesaw game.
package config

// SeesawConfig contains all configuration for the Pumpkin Seesaw game.
type SeesawConfig struct {
	Pieces     PieceBounds      `yaml:"pieces"`
	Board      BoardConfig      `yaml:"board"`
	Reward     RewardConfig     `yaml:"reward"`
	Appearance AppearanceConfig `yaml:"appearance"`
}

// PieceBounds bounds how many pumpkins spawn per side and how heavy they are.
type PieceBounds struct {
	LeftMin   int `yaml:"left_min"`
	LeftMax   int `yaml:"left_max"`
	RightMin  int `yaml:"right_min"`
	RightMax  int `yaml:"right_max"`
	MinWeight int `yaml:"min_weight"`
	MaxWeight int `yaml:"max_weight"`
	MinSize   int `yaml:"min_size"`
	MaxSize   int `yaml:"max_size"`
}

// BoardConfig tunes the seesaw itself.
type BoardConfig struct {
	SlotsPerSide         int     `yaml:"slots_per_side"`
	AnglePerUnit         float64 `yaml:"angle_per_unit"`
	MaxAngle             float64 `yaml:"max_angle"`
	BalanceThreshold     float64 `yaml:"balance_threshold"`
	NearBalanceThreshold float64 `yaml:"near_balance_threshold"`
}

// RewardConfig controls the balance celebration. Durations are in seconds.
type RewardConfig struct {
	PromptDelay float64 `yaml:"prompt_delay"`
	Duration    float64 `yaml:"duration"`
	Particles   int     `yaml:"particles"`
}

// AppearanceConfig selects color schemes.
type AppearanceConfig struct {
	ColorPreset ColorPreset `yaml:"color_preset"`
	SeesawStyle SeesawStyle `yaml:"seesaw_style"`
}

// ColorPreset names a pumpkin color scheme.
type ColorPreset string

const (
	ColorDefault    ColorPreset = "default"
	ColorAutumn     ColorPreset = "autumn"
	ColorPastel     ColorPreset = "pastel"
	ColorVibrant    ColorPreset = "vibrant"
	ColorMonochrome ColorPreset = "monochrome"
)

// ColorPresets lists presets in display order.
var ColorPresets = []ColorPreset{ColorDefault, ColorAutumn, ColorPastel, ColorVibrant, ColorMonochrome}

// SeesawStyle names a board color scheme.
type SeesawStyle string

const (
	StyleClassic SeesawStyle = "classic"
	StyleModern  SeesawStyle = "modern"
	StylePlayful SeesawStyle = "playful"
)

// SeesawStyles lists styles in display order.
var SeesawStyles = []SeesawStyle{StyleClassic, StyleModern, StylePlayful}
