package constants

// Persistence keys, one owner engine each
const (
	KeyBestRunner   = "best_runner"
	KeyClickerState = "clicker_state"
	KeyBestReact    = "best_react"
)

// Game identifiers used by the router and the badge registry
const (
	GameRunner  = "runner"
	GameClicker = "clicker"
	GameReact   = "react"
)
