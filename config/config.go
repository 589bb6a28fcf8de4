package config

import (
	"image/color"
	"os"
)

// Default is the ECS layer every entity and renderer lives on.
const Default = 0

// PhysicsConfig contains the movement constants shared by all actors.
type PhysicsConfig struct {
	Gravity          float64 // added to vertical speed each frame
	TerminalVelocity float64 // maximum falling speed
	JumpSpeed        float64 // upward speed set by a jump
	ClimbSpeed       float64 // vertical speed while holding up/down on a ladder
	FallMargin       float64 // pixels below the level bounds before an actor counts as fallen
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width, Height    float64
	Health           int
	RunSpeed         float64 // horizontal intent while a move key is held
	JumpAirTime      int     // frames airborne before the jump action shows
	ShurikenCooldown int     // frames between throws
	SpriteOffsetX    float64
	SpriteOffsetY    float64
}

// EnemyTypeConfig contains configuration for one enemy kind
type EnemyTypeConfig struct {
	Name          string
	Width, Height float64
	Health        int
	Speed         float64
	LedgeAvoid    bool
	MinGround     int // solid tiles required around the enemy for it to keep walking

	ContactDamage     int
	ContactKnockbackX float64
	ContactKnockbackY float64
	ContactCooldown   int

	// Ranged attack and dodge, used by the boss
	Throws         bool
	AttackCooldown int
	DodgeCooldown  int
	DodgeRange     float64
	DodgeSpeed     float64

	SpriteOffsetX float64
	SpriteOffsetY float64
}

// EnemyConfig groups the enemy kinds by entity type key.
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

// ProjectileTypeConfig describes one projectile kind.
type ProjectileTypeConfig struct {
	Speed        float64
	Damage       int
	KnockbackX   float64 // knockback for a rightward throw; mirrored for leftward
	KnockbackY   float64
	HitboxW      float64
	HitboxH      float64
	AnimationKey string
}

// ProjectileConfig holds the player and boss projectiles.
type ProjectileConfig struct {
	Shuriken    ProjectileTypeConfig
	RedShuriken ProjectileTypeConfig
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowDivisor float64 // scroll closes 1/FollowDivisor of the gap each frame
}

// LeafConfig contains ambient leaf particle settings.
type LeafConfig struct {
	SpawnerWidth   float64
	SpawnerHeight  float64
	SpawnThreshold float64 // a leaf spawns when rand*threshold < spawner area
	VelocityX      float64
	VelocityY      float64
	SwayRate       float64
	SwayAmplitude  float64
	MaxStartFrame  int
}

// CloudConfig contains parallax cloud settings.
type CloudConfig struct {
	Count    int
	MinSpeed float64
	MaxSpeed float64
	MinDepth float64
	MaxDepth float64
}

// IrisConfig contains the death transition settings.
type IrisConfig struct {
	StartRadius float64
	Step        float64 // radius shrink per frame
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	HUDBarX, HUDBarY     float64
	HUDBarWidth          float64
	HUDBarHeight         float64
	HUDBarBorder         float64
	EntityBarWidth       float64
	EntityBarHeight      float64
	EntityBarGap         float64
	HealthBarBgColor     color.RGBA
	HealthBarFgColor     color.RGBA
	HealthBarBorderColor color.RGBA
	DebugHitboxColor     color.RGBA
	DebugProjectileColor color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	PanelColor   color.RGBA
	BorderColor  color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// MenuConfig contains start screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	Prompt          string
	TitleY          float64
	PromptY         float64
	BlinkFrames     int // prompt is shown and hidden for this many frames each
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor  color.RGBA
	TitleColor    color.RGBA
	Title         string
	DisplayFrames int
}

// Config holds general game configuration
type Config struct {
	Width         int // window size
	Height        int
	DisplayWidth  int // logical render size
	DisplayHeight int
	TileSize      int
	Title         string
}

// DebugConfig contains developer switches read from the environment.
type DebugConfig struct {
	DrawHitboxes bool   // NINJA_DEBUG=1
	LevelDir     string // NINJA_LEVEL_DIR, load levels from disk and watch them
	LogLevel     string // NINJA_LOG_LEVEL
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Projectile ProjectileConfig
var Camera CameraConfig
var Leaf LeafConfig
var Cloud CloudConfig
var Iris IrisConfig
var UI UIConfig
var Pause PauseConfig
var Menu MenuConfig
var LevelComplete LevelCompleteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Entity type keys used for animations and enemy configuration.
const (
	TypePlayer = "player"
	TypeEnemy  = "enemy"
	TypeBoss   = "boss"
)

func init() {
	C = &Config{
		Width:         640,
		Height:        480,
		DisplayWidth:  320,
		DisplayHeight: 240,
		TileSize:      16,
		Title:         "Ninja Platformer",
	}

	Physics = PhysicsConfig{
		Gravity:          0.1,
		TerminalVelocity: 5.0,
		JumpSpeed:        3.0,
		ClimbSpeed:       1.0,
		FallMargin:       64,
	}

	Player = PlayerConfig{
		Width:            6,
		Height:           16,
		Health:           100,
		RunSpeed:         1.0,
		JumpAirTime:      4,
		ShurikenCooldown: 20,
		SpriteOffsetX:    -5,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			TypeEnemy: {
				Name:              "Ninja",
				Width:             6,
				Height:            16,
				Health:            50,
				Speed:             0.5,
				LedgeAvoid:        true,
				MinGround:         3,
				ContactDamage:     10,
				ContactKnockbackX: 3,
				ContactKnockbackY: -2,
				ContactCooldown:   30,
				SpriteOffsetX:     -5,
			},
			TypeBoss: {
				Name:              "Boss",
				Width:             14,
				Height:            31,
				Health:            200,
				Speed:             0.4,
				LedgeAvoid:        true,
				MinGround:         3,
				ContactDamage:     20,
				ContactKnockbackX: 4,
				ContactKnockbackY: -2.5,
				ContactCooldown:   45,
				Throws:            true,
				AttackCooldown:    90,
				DodgeCooldown:     120,
				DodgeRange:        48,
				DodgeSpeed:        3,
				SpriteOffsetX:     -1,
				SpriteOffsetY:     1,
			},
		},
	}

	Projectile = ProjectileConfig{
		Shuriken: ProjectileTypeConfig{
			Speed:        2,
			Damage:       10,
			KnockbackX:   5,
			KnockbackY:   -2,
			HitboxW:      8,
			HitboxH:      8,
			AnimationKey: "projectiles/shuriken",
		},
		RedShuriken: ProjectileTypeConfig{
			Speed:        2,
			Damage:       10,
			KnockbackX:   3,
			KnockbackY:   -2,
			HitboxW:      8,
			HitboxH:      8,
			AnimationKey: "projectiles/red_shuriken",
		},
	}

	Camera = CameraConfig{
		FollowDivisor: 30,
	}

	Leaf = LeafConfig{
		SpawnerWidth:   23,
		SpawnerHeight:  13,
		SpawnThreshold: 49999,
		VelocityX:      -0.15,
		VelocityY:      0.3,
		SwayRate:       0.035,
		SwayAmplitude:  0.3,
		MaxStartFrame:  10,
	}

	Cloud = CloudConfig{
		Count:    16,
		MinSpeed: 0.05,
		MaxSpeed: 0.1,
		MinDepth: 0.2,
		MaxDepth: 0.8,
	}

	Iris = IrisConfig{
		StartRadius: 400,
		Step:        12,
	}

	UI = UIConfig{
		HUDBarX:              10,
		HUDBarY:              10,
		HUDBarWidth:          100,
		HUDBarHeight:         10,
		HUDBarBorder:         2,
		EntityBarWidth:       16,
		EntityBarHeight:      2,
		EntityBarGap:         4,
		HealthBarBgColor:     Red,
		HealthBarFgColor:     Green,
		HealthBarBorderColor: Black,
		DebugHitboxColor:     color.RGBA{R: 255, G: 0, B: 0, A: 120},
		DebugProjectileColor: color.RGBA{R: 255, G: 255, B: 0, A: 160},
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 150, G: 150, B: 150, A: 90},
		PanelColor:   White,
		BorderColor:  Black,
		TextColor:    Black,
		Title:        "Paused",
		Hint:         "ESC resume   Q level select",
	}

	Menu = MenuConfig{
		BackgroundColor: Black,
		TitleColor:      White,
		TextColor:       White,
		Title:           "Ninja Platformer",
		Prompt:          "Click to Start",
		TitleY:          90,
		PromptY:         160,
		BlinkFrames:     30,
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor:  BlackOverlay,
		TitleColor:    Yellow,
		Title:         "LEVEL COMPLETE",
		DisplayFrames: 90,
	}

	Debug = DebugConfig{
		DrawHitboxes: os.Getenv("NINJA_DEBUG") == "1",
		LevelDir:     os.Getenv("NINJA_LEVEL_DIR"),
		LogLevel:     os.Getenv("NINJA_LOG_LEVEL"),
	}
}
