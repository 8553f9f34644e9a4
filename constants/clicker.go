package constants

import "time"

// Neon Clicker economy tuning
const (
	// ClickerQuantum is the passive income discharge step in seconds
	ClickerQuantum = 0.2
	// ClickerQuantumEpsilon absorbs float drift when the buffer sits on a quantum boundary
	ClickerQuantumEpsilon = 1e-9

	ClickerBaseCritChance = 0.08
	ClickerCritChanceStep = 0.02
	ClickerMaxCritChance  = 0.40
	ClickerBaseCritMult   = 3
	ClickerMaxCritBonus   = 4

	ClickerStartBitsPerClick = 1
)

// Upgrade identifiers and pricing
const (
	UpgradeCore = "core"
	UpgradeDrip = "drip"
	UpgradeCrit = "crit"

	UpgradeCoreBaseCost = 25.0
	UpgradeCoreGrowth   = 1.22
	UpgradeDripBaseCost = 60.0
	UpgradeDripGrowth   = 1.25
	UpgradeCritBaseCost = 150.0
	UpgradeCritGrowth   = 1.35
)

// ClickerCritFlash is how long the crit banner stays on screen
const ClickerCritFlash = 600 * time.Millisecond
