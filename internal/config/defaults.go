package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			HalfWidth:  128,
			HalfHeight: 128,
			Padding:    32,
		},
		Aliens: AliensConfig{
			Rows:     3,
			Columns:  8,
			Width:    8,
			Height:   8,
			Gap:      8,
			Speed:    64,
			Movement: MovementStateMachine,
			Points:   10,
		},
		Player: PlayerConfig{
			Width:            13.125, // 210x256 ship image scaled to height 16
			Height:           16,
			MaxSpeed:         128,
			DeadZone:         0.2,
			LossHeightFactor: 1.0,
		},
		Projectile: ProjectileConfig{
			Speed:             256,
			CollisionDistance: 6,
		},
		Effects: EffectsConfig{
			Variants: 4,
			Duration: 0.25,
		},
		Timing: TimingConfig{
			SplashWait:  8,
			SplashTimer: SplashCountdown,
			EndStep:     1,
			EndSteps:    3,
		},
		Input: InputConfig{
			HoldWindow: 0.15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "round",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
		Sprites: SpritesConfig{
			Alien:        SpriteConfig{Glyph: "▛▜", Color: "bright_green"},
			AlienDamaged: SpriteConfig{Glyph: "✶✶", Color: "orange"},
			Player:       SpriteConfig{Glyph: "▲", Color: "bright_cyan"},
			Projectile:   SpriteConfig{Glyph: "│", Color: "bright_yellow"},
		},
		Sounds: SoundsConfig{
			Shot:      ToneConfig{Frequency: 880, Length: 0.05},
			Explosion: ToneConfig{Frequency: 110, Length: 0.15},
			Win:       ToneConfig{Frequency: 660, Length: 0.4},
			GameOver:  ToneConfig{Frequency: 165, Length: 0.6},
		},
		Messages: MessagesConfig{
			WaitForDevice: "Connect a controller or press any key",
			Title:         "INVADERS",
			Move:          "Move",
			Shoot:         "Shoot",
			PressFire:     "press fire to continue",
			Win:           "You won!",
			Lose:          "Game over",
			Retry:         "Press fire to try again",
			Paused:        "PAUSED",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders", "invaders_curve":
		return defaultInvadersYAML
	default:
		return nil
	}
}
