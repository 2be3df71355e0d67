package invaders

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Sound labels carried by sound intents.
const (
	SoundShot      = "shot"
	SoundExplosion = "explosion"
	SoundWin       = "win"
	SoundGameOver  = "game_over"
)

// Sprite is a glyph drawn centred on an entity's screen cell.
type Sprite struct {
	Glyph string
	Color core.Color
	Width int // in runes
}

// Assets is everything presentation needs, built once on Startup entry.
type Assets struct {
	Alien        Sprite
	AlienDamaged Sprite
	Player       Sprite
	Projectile   Sprite
	Messages     config.MessagesConfig
}

// LoadAssets builds the sprite set from configuration.
// Unknown color names fall back to the default color; empty glyphs to '?'.
func LoadAssets(cfg config.InvadersConfig) *Assets {
	return &Assets{
		Alien:        newSprite(cfg.Sprites.Alien),
		AlienDamaged: newSprite(cfg.Sprites.AlienDamaged),
		Player:       newSprite(cfg.Sprites.Player),
		Projectile:   newSprite(cfg.Sprites.Projectile),
		Messages:     cfg.Messages,
	}
}

func newSprite(sc config.SpriteConfig) Sprite {
	glyph := sc.Glyph
	if glyph == "" {
		glyph = "?"
	}
	color, ok := core.ParseColor(sc.Color)
	if !ok {
		color = core.ColorDefault
	}
	return Sprite{Glyph: glyph, Color: color, Width: utf8.RuneCountInString(glyph)}
}

// SpriteFor returns the sprite drawn for an entity kind.
func (a *Assets) SpriteFor(kind core.EntityKind) (Sprite, bool) {
	switch kind {
	case core.KindAlien:
		return a.Alien, true
	case core.KindExplosion:
		return a.AlienDamaged, true
	case core.KindPlayer:
		return a.Player, true
	case core.KindProjectile:
		return a.Projectile, true
	default:
		return Sprite{}, false
	}
}
