package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all entities and renderers live on.
const Default ecs.LayerID = 0

// GameConfig contains the window and timing configuration
type GameConfig struct {
	Title  string
	Width  int
	Height int

	// LevelsDir, when set, loads maps from disk instead of the embedded
	// filesystem and enables live reload through fsnotify.
	LevelsDir string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration float64
	MaxSpeed     float64
	JumpSpeed    float64
	ClimbSpeed   float64

	// Physics
	Gravity  float64
	Friction float64

	// Combat
	Health float64
	// InvulnTicks is the grace period after a hazard hit, in update
	// ticks.
	InvulnTicks int

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int

	// Animation: synthetic walk cycle over the sprite sheet
	WalkFrameCount int
	WalkFrameMs    int
}

// CameraConfig controls the smoothed follow behavior
type CameraConfig struct {
	FollowSmoothing float64
}

// LevelConfig names the reserved parts of the map document
type LevelConfig struct {
	// SolidLayerName is the tile layer whose cells become static colliders.
	SolidLayerName string
	// HazardColliderClass is the class a tileset collision object must
	// declare to become a damage sensor.
	HazardColliderClass string

	// Collision space cell size
	CellWidth  int
	CellHeight int
}

// HUDConfig controls the health bar drawing
type HUDConfig struct {
	BarX, BarY          float32
	BarWidth, BarHeight float32
	BarBorder           float32
	// EaseSeconds is how long the displayed bar takes to settle on the
	// real health value after a change.
	EaseSeconds float32

	BorderColor color.RGBA
	BackColor   color.RGBA
	FillColor   color.RGBA
}

// MenuConfig controls the main menu drawing
type MenuConfig struct {
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

// DebugConfig toggles development helpers
type DebugConfig struct {
	Verbose  bool
	SkipMenu bool
}

var C = &GameConfig{
	Title:  "Timewheel",
	Width:  960,
	Height: 720,
}

var Player = &PlayerConfig{
	Acceleration:    0.55,
	MaxSpeed:        2.8,
	JumpSpeed:       6.4,
	ClimbSpeed:      1.6,
	Gravity:         0.25,
	Friction:        0.35,
	Health:          20,
	InvulnTicks:     30,
	FrameWidth:      16,
	FrameHeight:     16,
	CollisionWidth:  14,
	CollisionHeight: 14,
	WalkFrameCount:  2,
	WalkFrameMs:     100,
}

var Camera = &CameraConfig{
	FollowSmoothing: 0.12,
}

var Level = &LevelConfig{
	SolidLayerName:      "Walls",
	HazardColliderClass: "collider",
	CellWidth:           16,
	CellHeight:          16,
}

var HUD = &HUDConfig{
	BarX:        10,
	BarY:        10,
	BarWidth:    150,
	BarHeight:   16,
	BarBorder:   2,
	EaseSeconds: 0.3,
	BorderColor: color.RGBA{255, 255, 255, 255},
	BackColor:   color.RGBA{0, 0, 0, 255},
	FillColor:   color.RGBA{220, 30, 30, 255},
}

var Menu = &MenuConfig{
	TitleY:            160,
	MenuStartY:        300,
	MenuItemHeight:    32,
	MenuItemGap:       24,
	BackgroundColor:   color.RGBA{0x3b, 0x69, 0xba, 255},
	TitleColor:        color.RGBA{255, 255, 255, 255},
	TextColorNormal:   color.RGBA{180, 180, 180, 255},
	TextColorSelected: color.RGBA{255, 255, 120, 255},
}

var Debug = &DebugConfig{}
