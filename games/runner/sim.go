package runner

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/neon-arcade/constants"
)

// Obstacle is a falling block; Y is its top edge in field units
type Obstacle struct {
	Lane int
	Y    float64
	H    float64
}

// Box is an axis-aligned rectangle in field units
type Box struct {
	X, Y, W, H float64
}

// Intersects reports strict overlap; touching edges do not collide
func (b Box) Intersects(o Box) bool {
	if b.X >= o.X+o.W || o.X >= b.X+b.W {
		return false
	}
	if b.Y >= o.Y+o.H || o.Y >= b.Y+b.H {
		return false
	}
	return true
}

// LaneX returns the horizontal center of lane
func LaneX(lane int) float64 {
	return constants.RunnerLaneFractions[lane] * constants.RunnerFieldWidth
}

// PlayerTop is the fixed top edge of the player hitbox
func PlayerTop() float64 {
	return constants.RunnerFieldHeight - constants.RunnerPlayerBottomOffset
}

// PlayerBox returns the player hitbox in lane
func PlayerBox(lane int) Box {
	size := constants.RunnerPlayerSize
	return Box{X: LaneX(lane) - size/2, Y: PlayerTop(), W: size, H: size}
}

// Box returns the obstacle hitbox
func (o Obstacle) Box() Box {
	w := constants.RunnerObstacleWidth
	return Box{X: LaneX(o.Lane) - w/2, Y: o.Y, W: w, H: o.H}
}

// SpawnInterval is the seconds between spawns at the given distance
func SpawnInterval(distance float64) float64 {
	v := constants.RunnerSpawnMax - distance/constants.RunnerSpawnDistScale
	return math.Max(constants.RunnerSpawnMin, math.Min(constants.RunnerSpawnMax, v))
}

// Session is the transient state of one run
type Session struct {
	PlayerLane int
	Obstacles  []Obstacle
	Distance   float64
	Speed      float64
	Score      float64
	SpawnTimer float64
	SpawnEvery float64
	Alive      bool
	Paused     bool

	rng *rand.Rand
}

// NewSession creates a session in its initial state
func NewSession(rng *rand.Rand) *Session {
	s := &Session{rng: rng}
	s.Reset()
	return s
}

// Reset restores initial constants and clears obstacles
func (s *Session) Reset() {
	s.PlayerLane = constants.RunnerStartLane
	s.Obstacles = s.Obstacles[:0]
	s.Distance = 0
	s.Speed = constants.RunnerStartSpeed
	s.Score = 0
	s.SpawnTimer = 0
	s.SpawnEvery = constants.RunnerSpawnMax
	s.Alive = true
	s.Paused = false
}

// Running reports whether the simulation advances this frame
func (s *Session) Running() bool {
	return s.Alive && !s.Paused
}

// Shift moves the player one lane left (-1) or right (+1), clamped to the field
// Returns true if the lane changed
func (s *Session) Shift(dir int) bool {
	if !s.Running() || dir == 0 {
		return false
	}
	lane := s.PlayerLane + dir
	if lane < 0 {
		lane = 0
	}
	if lane > constants.RunnerLanes-1 {
		lane = constants.RunnerLanes - 1
	}
	if lane == s.PlayerLane {
		return false
	}
	s.PlayerLane = lane
	return true
}

// Update advances the run by dt seconds; returns true on the frame the player crashes
func (s *Session) Update(dt float64) bool {
	if !s.Running() {
		return false
	}

	s.Distance += s.Speed * dt
	s.Speed += constants.RunnerSpeedGain * dt
	s.SpawnEvery = SpawnInterval(s.Distance)
	s.Score += (constants.RunnerScoreBase + s.Speed*constants.RunnerScoreSpeedRate) * dt

	s.SpawnTimer += dt
	if s.SpawnTimer >= s.SpawnEvery {
		s.SpawnTimer = 0
		s.spawn()
	}

	limit := constants.RunnerFieldHeight + constants.RunnerCullMargin
	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		o.Y += s.Speed * dt
		if o.Y <= limit {
			kept = append(kept, o)
		}
	}
	s.Obstacles = kept

	player := PlayerBox(s.PlayerLane)
	for _, o := range s.Obstacles {
		if player.Intersects(o.Box()) {
			s.Alive = false
			return true
		}
	}
	return false
}

// spawn drops one obstacle, plus a second in another lane on a spike roll
func (s *Session) spawn() {
	lane := s.rng.Intn(constants.RunnerLanes)
	s.Obstacles = append(s.Obstacles, s.newObstacle(lane))

	if s.Distance > constants.RunnerDoubleSpawnDistance && s.rng.Float64() < constants.RunnerDoubleSpawnChance {
		other := (lane + 1 + s.rng.Intn(constants.RunnerLanes-1)) % constants.RunnerLanes
		s.Obstacles = append(s.Obstacles, s.newObstacle(other))
	}
}

func (s *Session) newObstacle(lane int) Obstacle {
	span := constants.RunnerObstacleMaxHeight - constants.RunnerObstacleMinHeight
	h := constants.RunnerObstacleMinHeight + s.rng.Float64()*span
	return Obstacle{Lane: lane, Y: -h, H: h}
}

// Place inserts an obstacle directly, bypassing the spawner
func (s *Session) Place(o Obstacle) {
	s.Obstacles = append(s.Obstacles, o)
}
