/*
Package weiqi implements the rules of Go on a square board.

A Board tracks stones and the chains they form. Moves are checked in a
fixed order (bounds, repeat move, suicide) and an accepted move merges
chains and captures opponent chains left without liberties. Suicide is
always forbidden and is judged after captures. A repeat move is any
move onto an occupied intersection; there is no ko or superko rule.

Game adds turn order and passes on top of a Board.

Scoring is not supported.*/
package weiqi

// Game stores Go game information and its methods allow for game control
type Game struct {
	// game state
	turn  Stone
	board *Board

	// game history
	prevMoves []Move
}

// NewGame starts a new game with Black to play
func NewGame(size int) (*Game, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &Game{turn: Black, board: b}, nil
}

// Reset returns the game to its starting state
func (g *Game) Reset() {
	b, _ := NewBoard(g.board.size)
	g.turn = Black
	g.board = b
	g.prevMoves = g.prevMoves[:0]
}

// handles "play", "check", "setup" play modes
func (g *Game) playWithMode(m Move, playMode string) error {

	if !m.Stone.valid() {
		return GameError{ErrInvalidStone, m}
	}

	// Wrong player
	if m.Stone != g.turn {
		if playMode != "setup" {
			return GameError{ErrWrongPlayer, m}
		}
	}

	// Pass is always legal (if correct player)
	if m.pass {
		if playMode == "play" {
			g.turn = -m.Stone
			g.prevMoves = append(g.prevMoves, m)
		}
		return nil
	}

	var o Outcome
	if playMode == "check" {
		o = g.board.Check(m)
	} else {
		o = g.board.Update(m)
	}
	if !o.IsLegal() {
		return GameError{o.Err(), m}
	}

	if playMode != "check" {
		g.prevMoves = append(g.prevMoves, m)
	}
	if playMode == "play" {
		g.turn = -m.Stone
	}
	return nil
}

// Play plays a move if it is legal
func (g *Game) Play(m Move) error {
	return g.playWithMode(m, "play")
}

// Check checks move legality but does not alter the game state
func (g *Game) Check(m Move) error {
	return g.playWithMode(m, "check")
}

// Setup places a stone regardless of whose turn it is and without
// passing the turn. Board rules still apply and setup passes are ignored.
func (g *Game) Setup(m Move) error {
	return g.playWithMode(m, "setup")
}

// Turn returns the color to play
func (g *Game) Turn() Stone {
	return g.turn
}

// Board returns the board of the game
func (g *Game) Board() *Board {
	return g.board
}

// History returns the accepted moves, passes included
func (g *Game) History() []Move {
	moves := make([]Move, len(g.prevMoves))
	copy(moves, g.prevMoves)
	return moves
}

func (g Game) String() string {
	return g.board.String()
}
