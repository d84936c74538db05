package constants

import "time"

// Round Constants
const (
	// OptionCount is the number of color buttons offered each round
	OptionCount = 6

	// RevealDelay is how long a correct guess stays on screen before the next round
	RevealDelay = 1500 * time.Millisecond

	// MaxRevealDelay bounds the configurable reveal delay
	MaxRevealDelay = 10 * time.Second
)

// Status Messages
const (
	// MessageCorrect is shown after selecting the target color
	MessageCorrect = "Correct! 🎉"

	// MessageWrong is shown after selecting any other color
	MessageWrong = "Wrong! Try again 😢"
)
