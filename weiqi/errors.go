package weiqi

import (
	"errors"
	"fmt"
)

// ErrInvalidSize means that a board was requested with a size outside [1, MaxSize]
var ErrInvalidSize error = errors.New("invalid board size")

// ErrInvalidStone means that a move carries neither Black nor White
var ErrInvalidStone error = errors.New("invalid stone")

// ErrWrongPlayer means that it is the other player's turn
var ErrWrongPlayer error = errors.New("wrong player")

// ErrOutOfBounds means that the intersection exceeds the size of the board
var ErrOutOfBounds error = errors.New("out of bounds")

// ErrRuleViolation is wrapped by every rule-based rejection
var ErrRuleViolation error = errors.New("rule violation")

// ErrSuicide means that the move would leave its own chain without liberties
var ErrSuicide error = fmt.Errorf("%w: suicide", ErrRuleViolation)

// ErrRepeatMove means that there is already a stone at the intersection
var ErrRepeatMove error = fmt.Errorf("%w: repeat move", ErrRuleViolation)

// GameError wraps an error with additional information about the attempted move
type GameError struct {
	err       error
	attempted Move
}

func (e GameError) Error() string {
	return fmt.Sprintf("move %q invalid: %s", e.attempted, e.err)
}

func (e GameError) Unwrap() error {
	return e.err
}

// Attempted returns the rejected move
func (e GameError) Attempted() Move {
	return e.attempted
}
