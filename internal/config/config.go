// Package config provides YAML/TOML game configuration loading and
// difficulty management for the invaders game.
package config

// Movement variants of the swarm.
const (
	MovementStateMachine = "state_machine"
	MovementCurve        = "curve"
)

// Splash timer kinds.
const (
	SplashCountdown = "countdown" // elapses unconditionally
	SplashPresence  = "presence"  // elapses only while an input device is present
)

// InvadersConfig contains all configuration for the invaders game.
type InvadersConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Aliens     AliensConfig     `yaml:"aliens" toml:"aliens"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Effects    EffectsConfig    `yaml:"effects" toml:"effects"`
	Timing     TimingConfig     `yaml:"timing" toml:"timing"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Sprites    SpritesConfig    `yaml:"sprites" toml:"sprites"`
	Sounds     SoundsConfig     `yaml:"sounds" toml:"sounds"`
	Messages   MessagesConfig   `yaml:"messages" toml:"messages"`
}

// FieldConfig defines the world rectangle. The origin is the centre, y points up.
type FieldConfig struct {
	HalfWidth  float64 `yaml:"half_width" toml:"half_width"`
	HalfHeight float64 `yaml:"half_height" toml:"half_height"`
	Padding    float64 `yaml:"padding" toml:"padding"`
}

// AliensConfig defines the swarm grid and its motion.
type AliensConfig struct {
	Rows     int     `yaml:"rows" toml:"rows"`
	Columns  int     `yaml:"columns" toml:"columns"`
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
	Gap      float64 `yaml:"gap" toml:"gap"`
	Speed    float64 `yaml:"speed" toml:"speed"`       // world units per second
	Movement string  `yaml:"movement" toml:"movement"` // "state_machine" or "curve"
	Points   int     `yaml:"points" toml:"points"`     // score per destroyed alien
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
	MaxSpeed float64 `yaml:"max_speed" toml:"max_speed"`
	DeadZone float64 `yaml:"dead_zone" toml:"dead_zone"`

	// LossHeightFactor scales the player height in the loss threshold.
	LossHeightFactor float64 `yaml:"loss_height_factor" toml:"loss_height_factor"`
}

// ProjectileConfig defines player projectiles.
type ProjectileConfig struct {
	Speed             float64 `yaml:"speed" toml:"speed"`
	CollisionDistance float64 `yaml:"collision_distance" toml:"collision_distance"`
}

// EffectsConfig defines the randomised destruction effect.
type EffectsConfig struct {
	Variants int     `yaml:"variants" toml:"variants"`
	Duration float64 `yaml:"duration" toml:"duration"` // seconds an explosion stays visible
}

// TimingConfig defines phase timers, all in seconds.
type TimingConfig struct {
	SplashWait  float64 `yaml:"splash_wait" toml:"splash_wait"`
	SplashTimer string  `yaml:"splash_timer" toml:"splash_timer"` // "countdown" or "presence"
	EndStep     float64 `yaml:"end_step" toml:"end_step"`
	EndSteps    int     `yaml:"end_steps" toml:"end_steps"`
}

// InputConfig defines terminal input emulation.
type InputConfig struct {
	// HoldWindow is how long a key counts as held after its last press or repeat.
	HoldWindow float64 `yaml:"hold_window" toml:"hold_window"`
}

// SpriteConfig is a glyph with a named color.
type SpriteConfig struct {
	Glyph string `yaml:"glyph" toml:"glyph"`
	Color string `yaml:"color" toml:"color"`
}

// SpritesConfig lists the glyph sprites the asset loader builds.
type SpritesConfig struct {
	Alien        SpriteConfig `yaml:"alien" toml:"alien"`
	AlienDamaged SpriteConfig `yaml:"alien_damaged" toml:"alien_damaged"`
	Player       SpriteConfig `yaml:"player" toml:"player"`
	Projectile   SpriteConfig `yaml:"projectile" toml:"projectile"`
}

// ToneConfig is a generated sound: frequency in Hz and length in seconds.
type ToneConfig struct {
	Frequency float64 `yaml:"frequency" toml:"frequency"`
	Length    float64 `yaml:"length" toml:"length"`
}

// SoundsConfig lists the tones played for sound intents.
type SoundsConfig struct {
	Shot      ToneConfig `yaml:"shot" toml:"shot"`
	Explosion ToneConfig `yaml:"explosion" toml:"explosion"`
	Win       ToneConfig `yaml:"win" toml:"win"`
	GameOver  ToneConfig `yaml:"game_over" toml:"game_over"`
}

// MessagesConfig holds every literal string shown to the player.
type MessagesConfig struct {
	WaitForDevice string `yaml:"wait_for_device" toml:"wait_for_device"`
	Title         string `yaml:"title" toml:"title"`
	Move          string `yaml:"move" toml:"move"`
	Shoot         string `yaml:"shoot" toml:"shoot"`
	PressFire     string `yaml:"press_fire" toml:"press_fire"`
	Win           string `yaml:"win" toml:"win"`
	Lose          string `yaml:"lose" toml:"lose"`
	Retry         string `yaml:"retry" toml:"retry"`
	Paused        string `yaml:"paused" toml:"paused"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "round" or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // round at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty and unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// RowStep is the vertical distance between alien rows.
func (c InvadersConfig) RowStep() float64 {
	return c.Aliens.Height + c.Aliens.Gap
}

// CellStep is the horizontal distance between alien columns.
func (c InvadersConfig) CellStep() float64 {
	return c.Aliens.Width + c.Aliens.Gap
}

// DefenseLine is the y at or below which the swarm stops descending.
func (c InvadersConfig) DefenseLine() float64 {
	return -c.Field.HalfHeight + c.Aliens.Gap + c.Field.Padding
}

// LossLine is the y at or below which any alien ends the match in a loss.
func (c InvadersConfig) LossLine() float64 {
	return -c.Field.HalfHeight + c.Aliens.Height/2 + c.Player.Height*c.Player.LossHeightFactor + c.Field.Padding
}

// FireOriginY is the y at which projectiles spawn.
func (c InvadersConfig) FireOriginY() float64 {
	return -c.Field.HalfHeight + c.Field.Padding + c.Player.Height/2
}
