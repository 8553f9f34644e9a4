package constants

// Glitch React tuning
const (
	ReactTargets = 4

	ReactWindowMax  = 1.55
	ReactWindowMin  = 0.55
	ReactWindowStep = 0.03
)
