package game

import "github.com/lixenwraith/color-guess/constants"

// Status is the outcome of the latest selection in the current round
type Status uint8

const (
	StatusEmpty Status = iota
	StatusCorrect
	StatusIncorrect
)

// String returns the style class name
func (s Status) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	default:
		return "empty"
	}
}

// Message returns the text shown in the status line
func (s Status) Message() string {
	switch s {
	case StatusCorrect:
		return constants.MessageCorrect
	case StatusIncorrect:
		return constants.MessageWrong
	default:
		return ""
	}
}
