package constants

// UI layout
const (
	// HUDRows is the number of rows reserved above every play field
	HUDRows = 1

	// MenuTop is the first row of the game list
	MenuTop = 3

	// MenuEntryHeight is rows per game entry (title, subtitle, gap)
	MenuEntryHeight = 3
)

// Overlay text
const (
	TextPaused  = " PAUSED - p to resume "
	TextCrashed = " CRASHED - Enter or r to retry "
	TextHelp    = "p pause  r restart  esc menu  m mute"
)
