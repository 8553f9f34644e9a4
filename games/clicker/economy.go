package clicker

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/neon-arcade/constants"
)

// Levels is the persisted upgrade level per upgrade ID
type Levels struct {
	Core int `json:"core"`
	Drip int `json:"drip"`
	Crit int `json:"crit"`
}

// State is the persisted clicker_state record
type State struct {
	Bits          float64 `json:"bits"`
	Total         float64 `json:"total"`
	BitsPerClick  int     `json:"bitsPerClick"`
	BitsPerSecond int     `json:"bitsPerSecond"`
	UpgradeLevels Levels  `json:"upgradeLevels"`
}

// DefaultState is a fresh save
func DefaultState() State {
	return State{BitsPerClick: constants.ClickerStartBitsPerClick}
}

// Normalize repairs records damaged on disk
// Rates are derived from levels since every upgrade adds exactly one per level
func (s State) Normalize() State {
	clean := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0
		}
		return v
	}
	s.Bits = clean(s.Bits)
	s.Total = clean(s.Total)
	if s.Total < s.Bits {
		s.Total = s.Bits
	}
	s.UpgradeLevels.Core = max(0, s.UpgradeLevels.Core)
	s.UpgradeLevels.Drip = max(0, s.UpgradeLevels.Drip)
	s.UpgradeLevels.Crit = max(0, s.UpgradeLevels.Crit)
	s.BitsPerClick = constants.ClickerStartBitsPerClick + s.UpgradeLevels.Core
	s.BitsPerSecond = s.UpgradeLevels.Drip
	return s
}

// Upgrade is a static purchasable definition
type Upgrade struct {
	ID          string
	Title       string
	Description string
	BaseCost    float64
	Growth      float64
	Key         rune

	level func(*Levels) *int
	apply func(*State)
}

// Cost returns floor(BaseCost * Growth^level)
func (u Upgrade) Cost(level int) int {
	return int(math.Floor(u.BaseCost * math.Pow(u.Growth, float64(level))))
}

// Level returns the current level of u in s
func (u Upgrade) Level(s *State) int {
	return *u.level(&s.UpgradeLevels)
}

// Upgrades in shop order
var Upgrades = []Upgrade{
	{
		ID:          constants.UpgradeCore,
		Title:       "Overclock Core",
		Description: "+1 bit per click",
		BaseCost:    constants.UpgradeCoreBaseCost,
		Growth:      constants.UpgradeCoreGrowth,
		Key:         '1',
		level:       func(l *Levels) *int { return &l.Core },
		apply:       func(s *State) { s.BitsPerClick++ },
	},
	{
		ID:          constants.UpgradeDrip,
		Title:       "Packet Drip",
		Description: "+1 bit per second",
		BaseCost:    constants.UpgradeDripBaseCost,
		Growth:      constants.UpgradeDripGrowth,
		Key:         '2',
		level:       func(l *Levels) *int { return &l.Drip },
		apply:       func(s *State) { s.BitsPerSecond++ },
	},
	{
		ID:          constants.UpgradeCrit,
		Title:       "Glitch Amplifier",
		Description: "better critical clicks",
		BaseCost:    constants.UpgradeCritBaseCost,
		Growth:      constants.UpgradeCritGrowth,
		Key:         '3',
		level:       func(l *Levels) *int { return &l.Crit },
		apply:       func(*State) {},
	},
}

// FindUpgrade looks up an upgrade by ID
func FindUpgrade(id string) (Upgrade, bool) {
	for _, u := range Upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}

// CritChance is the probability a click is critical at the given crit level
func CritChance(level int) float64 {
	c := constants.ClickerBaseCritChance + constants.ClickerCritChanceStep*float64(level)
	return math.Max(constants.ClickerBaseCritChance, math.Min(constants.ClickerMaxCritChance, c))
}

// CritMultiplier is the gain multiplier of a critical click
func CritMultiplier(level int) int {
	return constants.ClickerBaseCritMult + min(constants.ClickerMaxCritBonus, max(0, level))
}

// Economy applies clicks, passive income and purchases to a State
type Economy struct {
	State  State
	buffer float64
	rng    *rand.Rand
}

// NewEconomy wraps s with its own passive buffer
func NewEconomy(s State, rng *rand.Rand) *Economy {
	return &Economy{State: s, rng: rng}
}

// Click applies one active click and returns the gain and whether it crit
func (e *Economy) Click() (float64, bool) {
	crit := e.rng.Float64() < CritChance(e.State.UpgradeLevels.Crit)
	mult := 1
	if crit {
		mult = CritMultiplier(e.State.UpgradeLevels.Crit)
	}
	gain := float64(e.State.BitsPerClick * mult)
	e.State.Bits += gain
	e.State.Total += gain
	return gain, crit
}

// Tick buffers dt and discharges passive income in whole quanta
// Returns the number of quanta discharged
func (e *Economy) Tick(dt float64) int {
	if dt > 0 {
		e.buffer += dt
	}
	n := 0
	for e.buffer >= constants.ClickerQuantum-constants.ClickerQuantumEpsilon {
		e.buffer -= constants.ClickerQuantum
		if e.buffer < 0 {
			e.buffer = 0
		}
		gain := float64(e.State.BitsPerSecond) * constants.ClickerQuantum
		e.State.Bits += gain
		e.State.Total += gain
		n++
	}
	return n
}

// Buffered returns undischarged passive time in seconds
func (e *Economy) Buffered() float64 {
	return e.buffer
}

// Buy purchases the upgrade with id if affordable
func (e *Economy) Buy(id string) bool {
	u, ok := FindUpgrade(id)
	if !ok {
		return false
	}
	level := u.level(&e.State.UpgradeLevels)
	cost := float64(u.Cost(*level))
	if e.State.Bits < cost {
		return false
	}
	e.State.Bits -= cost
	*level++
	u.apply(&e.State)
	return true
}

// Reset discards all progress
func (e *Economy) Reset() {
	e.State = DefaultState()
	e.buffer = 0
}
