// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	WindowTitle  = "Draconis"
	ScreenWidth  = 1200
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	RowHeight       = 90
	CreatureWidth   = 120
	CreatureSpacing = 12
	LifeBarHeight   = 6
	TextLineHeight  = 16
	MessageLines    = 12

	// MaxMessages bounds the narration log.
	MaxMessages = 50
)

// Rows
const (
	PartyRows      = 2
	OppositionRows = 3
	RowCapacity    = 6 // sum of creature sizes a row can hold
)

// Damage and heal formula tuning.
const (
	RandomizeRange    = 0.2 // final amount is multiplied by [1-range/2, 1+range/2]
	DefendReduction   = 0.2
	AttackModifier    = 0.2
	DefenseModifier   = 0.2
	SpecialtyModifier = 0.2
	ReflectRatio      = 0.2
	CriticalBonus     = 1.5
)

// Fight tuning.
const (
	ChampionMultiplier = 1.5
	ManaRestoreRatio   = 0.1 // mana gained per point of max life of fallen enemies
	ReviveLifeRatio    = 0.3
	DifficultyStep     = 10.0
)

// Pacing presets.
const (
	ShortPause = 200 * time.Millisecond
	LongPause  = 1000 * time.Millisecond
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{140, 140, 150, 255}
	ActiveColor     = color.RGBA{255, 215, 0, 255}
	TargetColor     = color.RGBA{220, 60, 60, 255}
	HoverColor      = color.RGBA{70, 130, 180, 255}
	LifeColor       = color.RGBA{50, 205, 50, 255}
	EnergyColor     = color.RGBA{50, 100, 255, 255}
	ManaColor       = color.RGBA{180, 50, 230, 255}
	BarBackColor    = color.RGBA{60, 60, 70, 255}
	BuffColor       = color.RGBA{120, 200, 120, 255}
	DebuffColor     = color.RGBA{230, 120, 80, 255}
)
