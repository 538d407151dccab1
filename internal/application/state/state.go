package state

// GameState represents the current state of a play session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateWon
	StateLost
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Outcome is the terminal signal a frame can raise
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeWin:
		return "Win"
	case OutcomeLoss:
		return "Loss"
	default:
		return "Unknown"
	}
}

// Terminal returns true if the outcome ends the session
func (o Outcome) Terminal() bool {
	return o == OutcomeWin || o == OutcomeLoss
}

// State returns the game state the outcome leads to
func (o Outcome) State() GameState {
	switch o {
	case OutcomeWin:
		return StateWon
	case OutcomeLoss:
		return StateLost
	default:
		return StatePlaying
	}
}
