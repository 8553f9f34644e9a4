package constants

import "time"

// Byte Runner field geometry, in logical field units
const (
	RunnerFieldWidth  = 360.0
	RunnerFieldHeight = 560.0
	RunnerLanes       = 3

	// RunnerPlayerSize is the side of the square player hitbox
	RunnerPlayerSize = 28.0
	// RunnerPlayerBottomOffset is the distance from the field bottom to the player's top edge
	RunnerPlayerBottomOffset = 84.0

	RunnerObstacleWidth     = 36.0
	RunnerObstacleMinHeight = 18.0
	RunnerObstacleMaxHeight = 36.0

	// RunnerCullMargin is how far past the field bottom an obstacle survives
	RunnerCullMargin = 60.0
)

// RunnerLaneFractions are lane centers as fractions of field width
var RunnerLaneFractions = [RunnerLanes]float64{0.20, 0.50, 0.80}

// Byte Runner simulation tuning
const (
	RunnerStartSpeed = 110.0
	RunnerStartLane  = 1
	// RunnerSpeedGain is the per-second speed increase
	RunnerSpeedGain = 6.0

	RunnerSpawnMax       = 0.85
	RunnerSpawnMin       = 0.35
	RunnerSpawnDistScale = 80000.0

	RunnerScoreBase      = 12.0
	RunnerScoreSpeedRate = 0.05

	// RunnerDoubleSpawnChance applies only past RunnerDoubleSpawnDistance
	RunnerDoubleSpawnChance   = 0.10
	RunnerDoubleSpawnDistance = 2000.0
)

// Byte Runner swipe gesture
const (
	RunnerSwipeThreshold = 30.0
	RunnerSwipeMaxTime   = 400 * time.Millisecond
)
