package game

import "time"

// Play field (pixels)
const (
	TileSize    = 40
	FieldWidth  = 900
	FieldHeight = 600
	GridCols    = FieldWidth / TileSize
	GridRows    = FieldHeight / TileSize
)

// Progression
const (
	MaxLevel      = 5
	StartingLives = 3
)

// Player movement (pixels per frame)
const (
	PlayerSize       = 30.0
	PlayerSpawnInset = 6.0
	PlayerBaseSpeed  = 4.0
	PlayerMaxSpeed   = 8.0
)

// Pursuer movement (pixels per frame)
const (
	PursuerSize           = 34.0
	PursuerBaseSpeed      = 1.0
	PursuerLevelIncrement = 0.15
	PursuerFallbackGap    = 2.5
	PursuerMinSpeed       = 0.5
)

// Respawn anchors after a catch, in field pixels: the player goes near
// (RespawnInset, RespawnInset), the pursuer near the far corner pulled in by
// RespawnCornerOffset on both axes.
const (
	RespawnInset        = 10.0
	RespawnCornerOffset = 80.0
)

// Notes and boost
const (
	NoteSize      = TileSize / 2
	NoteBaseCount = 6
	NotesPerLevel = 2
	NoteScore     = 100
	BoostAmount   = 2.0
	BoostFrames   = 240
)

// Gate bonus
const (
	ClearBonus     = 1000
	ClearBonusLost = 500
)

// Frame timing
const (
	TickRate     = 60 // frames per second
	TickInterval = time.Second / TickRate
)

// Profile limits
const (
	DefaultPlayerName = "Player"
	MaxNameLength     = 12
)
