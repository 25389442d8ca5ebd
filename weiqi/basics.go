package weiqi

import "fmt"

// Stone is the color of a stone: Black (1) or White (-1)
type Stone int8

// Stone colors
const (
	Black Stone = 1
	White Stone = -1
)

// Opponent returns the other color
func (s Stone) Opponent() Stone {
	return -s
}

func (s Stone) valid() bool {
	return s == Black || s == White
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "B"
	case White:
		return "W"
	}
	return "?"
}

// Intersection is a point on the board, 1-indexed on both axes
type Intersection struct {
	X, Y int
}

func (i Intersection) String() string {
	colLetter, err1 := coordinateToLetter(i.X)
	rowLetter, err2 := coordinateToLetter(i.Y)
	if err1 != nil {
		colLetter = "?"
	}
	if err2 != nil {
		rowLetter = "?"
	}
	return colLetter + rowLetter
}

// less orders intersections row by row, used for deterministic output
func (i Intersection) less(j Intersection) bool {
	if i.Y != j.Y {
		return i.Y < j.Y
	}
	return i.X < j.X
}

// Move stores the color and intersection of a move
type Move struct {
	Stone        Stone
	Intersection Intersection
	pass         bool
}

// NewMove creates a Move with coordinates
func NewMove(stone Stone, x, y int) Move {
	return Move{Stone: stone, Intersection: Intersection{x, y}}
}

// NewMovePass creates a pass Move
func NewMovePass(stone Stone) Move {
	return Move{Stone: stone, pass: true}
}

// Pass reports whether the move is a pass
func (m Move) Pass() bool {
	return m.pass
}

// NewMoveFromString parses a string like "Bcd" (column c, row d). A lone
// color letter such as "W" is a pass.
func NewMoveFromString(moveString string) (Move, error) {

	// Check length of string
	pass := false
	switch len(moveString) {
	case 1:
		pass = true
	case 3:
	default:
		return Move{}, fmt.Errorf("invalid move string: %q", moveString)
	}

	// Parse color
	var stone Stone
	switch moveString[0] {
	case 'B':
		stone = Black
	case 'W':
		stone = White
	default:
		return Move{}, fmt.Errorf("invalid color in move: %q", moveString)
	}

	if pass {
		return NewMovePass(stone), nil
	}
	x, err1 := letterToCoordinate(moveString[1])
	y, err2 := letterToCoordinate(moveString[2])
	if (err1 != nil) || (err2 != nil) {
		return Move{}, fmt.Errorf("invalid coordinates in move: %q", moveString)
	}
	return NewMove(stone, x, y), nil
}

func (m Move) String() string {
	if m.pass {
		return m.Stone.String()
	}
	return m.Stone.String() + m.Intersection.String()
}

// letterToCoordinate maps a..z to 1..26 and A..Z to 27..52
func letterToCoordinate(letter byte) (int, error) {
	switch {
	case letter >= 'a' && letter <= 'z':
		return int(letter-'a') + 1, nil
	case letter >= 'A' && letter <= 'Z':
		return int(letter-'A') + 27, nil
	}
	return 0, fmt.Errorf("invalid letter: %q", letter)
}

func coordinateToLetter(coordinate int) (string, error) {
	if (coordinate < 1) || (coordinate > MaxSize) {
		return "", fmt.Errorf("invalid coordinate: %d", coordinate)
	}
	if coordinate <= 26 {
		return string(rune('a' + coordinate - 1)), nil
	}
	return string(rune('A' + coordinate - 27)), nil
}
