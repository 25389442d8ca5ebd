package main

import (
	"errors"
	"strconv"

	"github.com/dodgebc/goban/weiqi"
)

// Record is the JSON line written for every replayed script
type Record struct {
	Name     string         `json:"name"`
	Size     int            `json:"size"`
	Moves    int            `json:"moves"`
	Accepted int            `json:"accepted"`
	Rejected []Rejection    `json:"rejected,omitempty"`
	Captures map[string]int `json:"captures"`
	Hash     string         `json:"hash"`
	Board    string         `json:"board,omitempty"`
}

// Rejection describes a move the rules did not accept
type Rejection struct {
	Index  int    `json:"index"`
	Move   string `json:"move"`
	Reason string `json:"reason"`
}

type replayOptions struct {
	size      int  // used when the script has no size line
	strict    bool // stop at the first rejected move
	freeOrder bool // ignore turn order
	board     bool // include a diagram of the final position
}

// replay plays a script on a fresh game and summarizes the result
func replay(s script, opts replayOptions) (Record, *weiqi.Board, error) {
	g, err := weiqi.NewGame(s.size)
	if err != nil {
		return Record{}, nil, err
	}
	rec := Record{Name: s.name, Size: s.size, Moves: len(s.moves)}
	for i, m := range s.moves {
		if opts.freeOrder {
			err = g.Setup(m)
		} else {
			err = g.Play(m)
		}
		if err != nil {
			rec.Rejected = append(rec.Rejected, Rejection{Index: i, Move: m.String(), Reason: reason(err)})
			if opts.strict {
				break
			}
			continue
		}
		rec.Accepted++
	}

	b := g.Board()
	rec.Captures = map[string]int{
		weiqi.Black.String(): b.Captures(weiqi.Black),
		weiqi.White.String(): b.Captures(weiqi.White),
	}
	rec.Hash = strconv.FormatUint(b.Hash(), 16)
	if opts.board {
		rec.Board = b.String()
	}
	return rec, b, nil
}

func reason(err error) string {
	var ge weiqi.GameError
	if errors.As(err, &ge) {
		return ge.Unwrap().Error()
	}
	return err.Error()
}
