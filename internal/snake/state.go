package snake

// State is the controller's game state.
type State int

const (
	StateInMenu State = iota
	StatePreMatch
	StateInProgress
	StatePaused
	StatePostMatch
)

func (s State) String() string {
	switch s {
	case StateInMenu:
		return "in_menu"
	case StatePreMatch:
		return "pre_match"
	case StateInProgress:
		return "in_progress"
	case StatePaused:
		return "paused"
	case StatePostMatch:
		return "post_match"
	default:
		return "unknown"
	}
}

// EndReason records why a match ended.
type EndReason string

const (
	EndNone      EndReason = ""
	EndCollision EndReason = "collision"  // Wall or self
	EndBoardFull EndReason = "board_full" // No free cell left for the apple
)
