package weiqi

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// maximum precomputed hash table size
const preMaxSize = 19

// This avoids rebuilding the hash table for every board
// of a common size.
var preHashTable []uint64

func init() {
	preHashTable = newHashTable(preMaxSize, 1)
}

func newHashTable(size int, seed int64) []uint64 {
	r := rand.New(rand.NewSource(seed))
	table := make([]uint64, size*size*2)
	for i := range table {
		table[i] = r.Uint64()
	}
	return table
}

// Cell is the state of an intersection as seen by Read
type Cell int8

// Cell states. BlackStone and WhiteStone share the values of the stones.
const (
	Vacant     Cell = 0
	BlackStone Cell = Cell(Black)
	WhiteStone Cell = Cell(White)
	OutOfRange Cell = 2
)

// Stone returns the stone occupying the cell, if any
func (c Cell) Stone() (Stone, bool) {
	if c == BlackStone || c == WhiteStone {
		return Stone(c), true
	}
	return 0, false
}

func (c Cell) String() string {
	switch c {
	case Vacant:
		return "vacant"
	case BlackStone:
		return "black"
	case WhiteStone:
		return "white"
	}
	return "out of range"
}

// Neighbor pairs an adjacent intersection with its state
type Neighbor struct {
	Cell         Cell
	Intersection Intersection
}

// Board holds the stones of a square Go board and their chains. It is not
// safe for concurrent use.
type Board struct {
	size   int
	states map[Intersection]Stone

	// chain arena, owner maps each occupied intersection to its chain id
	chains map[int]*chain
	owner  map[Intersection]int
	nextID int

	hash      uint64
	hashTable []uint64 // Zobrist hashing

	capturedBlack, capturedWhite int
}

// NewBoard creates an empty board, failing for sizes outside [1, MaxSize]
func NewBoard(size int) (*Board, error) {
	if (size < 1) || (size > MaxSize) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	b := &Board{
		size:   size,
		states: make(map[Intersection]Stone),
		chains: make(map[int]*chain),
		owner:  make(map[Intersection]int),
	}
	if size <= preMaxSize {
		b.hashTable = preHashTable
	} else {
		b.hashTable = newHashTable(size, int64(size))
	}
	return b, nil
}

// Size returns the length of a side of the board
func (b *Board) Size() int {
	return b.size
}

// Read returns the state of an intersection
func (b *Board) Read(i Intersection) Cell {
	if !InBounds(i, b.size) {
		return OutOfRange
	}
	if s, ok := b.states[i]; ok {
		return Cell(s)
	}
	return Vacant
}

// Neighbors returns the four orthogonal neighbors of i in the order
// (x-1, y), (x, y-1), (x+1, y), (x, y+1). Points off the board are
// tagged OutOfRange.
func (b *Board) Neighbors(i Intersection) []Neighbor {
	adj := make([]Neighbor, 0, 4)
	for _, d := range [2]int{-1, 1} {
		for _, v := range [2]Intersection{{i.X + d, i.Y}, {i.X, i.Y + d}} {
			adj = append(adj, Neighbor{Cell: b.Read(v), Intersection: v})
		}
	}
	return adj
}

// Check evaluates a move against the current position without changing
// it. Rules are applied in order: bounds, repeat move, suicide. Suicide
// takes into account the opponent chains the move would capture.
func (b *Board) Check(m Move) Outcome {
	if !m.Stone.valid() {
		panic(fmt.Sprintf("weiqi: invalid stone %d", m.Stone))
	}
	p := m.Intersection
	if !InBounds(p, b.size) {
		return outOfBounds
	}
	if _, occupied := b.states[p]; occupied {
		return broken(RepeatMove)
	}
	for _, adj := range adjacent(p, b.size) {
		s, occupied := b.states[adj]
		if !occupied {
			return Legal
		}
		c := b.chains[b.owner[adj]]
		if s == m.Stone {
			// joining a chain that keeps another liberty
			if c.hasLibertyExcept(b, p) {
				return Legal
			}
		} else if !c.hasLibertyExcept(b, p) {
			// the move captures this chain and frees its points
			return Legal
		}
	}
	return broken(Suicide)
}

// Update applies a move if it is legal. A rejected move leaves the board
// unchanged. An accepted move is placed, merged with every adjacent chain
// of its color, and captures adjacent opponent chains left without
// liberties. Pass moves are out of bounds here and are handled by Game.
func (b *Board) Update(m Move) Outcome {
	if o := b.Check(m); !o.IsLegal() {
		return o
	}
	p := m.Intersection
	b.place(p, m.Stone)
	id := b.merge(p, m.Stone)
	b.capture(p, m.Stone.Opponent())
	if !b.chains[id].hasLiberty(b) {
		panic("weiqi: bug: chain without liberties survived update at " + p.String())
	}
	return Legal
}

func (b *Board) hashIndex(i Intersection, s Stone) int {
	return ((i.Y-1)*b.size+(i.X-1))*2 + int(1-s)/2
}

// place puts a stone on the board and updates the board hash
func (b *Board) place(i Intersection, s Stone) {
	b.states[i] = s
	b.hash ^= b.hashTable[b.hashIndex(i, s)]
}

// merge attaches the stone at p to its adjacent chains of the same color,
// bridging all of them into the largest one, and returns the chain id
func (b *Board) merge(p Intersection, s Stone) int {
	var ids []int
	for _, adj := range adjacent(p, b.size) {
		if b.states[adj] != s {
			continue
		}
		id := b.owner[adj]
		seen := false
		for _, already := range ids {
			if already == id {
				seen = true
			}
		}
		if !seen {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		id := b.nextID
		b.nextID++
		b.chains[id] = newChain(s, p)
		b.owner[p] = id
		return id
	}

	target := ids[0]
	for _, id := range ids[1:] {
		if len(b.chains[id].members) > len(b.chains[target].members) {
			target = id
		}
	}
	c := b.chains[target]
	for _, id := range ids {
		if id == target {
			continue
		}
		c.absorb(b.chains[id], target, b.owner)
		delete(b.chains, id)
	}
	c.members[p] = struct{}{}
	b.owner[p] = target
	return target
}

// capture removes every chain of color s adjacent to p that has no liberties
func (b *Board) capture(p Intersection, s Stone) {
	for _, adj := range adjacent(p, b.size) {
		if b.states[adj] != s {
			continue
		}
		id := b.owner[adj]
		if !b.chains[id].hasLiberty(b) {
			b.remove(id)
		}
	}
}

// remove takes a chain off the board and updates the board hash
func (b *Board) remove(id int) {
	c := b.chains[id]
	for v := range c.members {
		b.hash ^= b.hashTable[b.hashIndex(v, c.stone)]
		delete(b.states, v)
		delete(b.owner, v)
	}
	if c.stone == Black {
		b.capturedBlack += len(c.members)
	} else {
		b.capturedWhite += len(c.members)
	}
	delete(b.chains, id)
}

// Chains returns a snapshot of every chain ordered by its first member
func (b *Board) Chains() []Chain {
	chains := make([]Chain, 0, len(b.chains))
	for _, c := range b.chains {
		chains = append(chains, c.snapshot(b))
	}
	sort.Slice(chains, func(i, j int) bool {
		return chains[i].Members[0].less(chains[j].Members[0])
	})
	return chains
}

// ChainAt returns the chain occupying an intersection
func (b *Board) ChainAt(i Intersection) (Chain, bool) {
	if _, occupied := b.states[i]; !occupied {
		return Chain{}, false
	}
	return b.chains[b.owner[i]].snapshot(b), true
}

// Liberties counts the liberties of the chain at i, 0 when i is vacant
func (b *Board) Liberties(i Intersection) int {
	if _, occupied := b.states[i]; !occupied {
		return 0
	}
	return len(b.chains[b.owner[i]].liberties(b))
}

// Captures returns how many stones of color s have been captured
func (b *Board) Captures(s Stone) int {
	if s == Black {
		return b.capturedBlack
	}
	return b.capturedWhite
}

// Hash returns the Zobrist hash of the current position
func (b *Board) Hash() uint64 {
	return b.hash
}

// Copy returns a deep copy of the board
func (b *Board) Copy() *Board {
	b2 := &Board{
		size:          b.size,
		states:        make(map[Intersection]Stone, len(b.states)),
		chains:        make(map[int]*chain, len(b.chains)),
		owner:         make(map[Intersection]int, len(b.owner)),
		nextID:        b.nextID,
		hash:          b.hash,
		hashTable:     b.hashTable,
		capturedBlack: b.capturedBlack,
		capturedWhite: b.capturedWhite,
	}
	for v, s := range b.states {
		b2.states[v] = s
	}
	for v, id := range b.owner {
		b2.owner[v] = id
	}
	for id, c := range b.chains {
		c2 := &chain{stone: c.stone, members: make(map[Intersection]struct{}, len(c.members))}
		for v := range c.members {
			c2.members[v] = struct{}{}
		}
		b2.chains[id] = c2
	}
	return b2
}

// Equals compares the stones on two boards
func (b *Board) Equals(b2 *Board) bool {
	if (b.size != b2.size) || (len(b.states) != len(b2.states)) {
		return false
	}
	for v, s := range b.states {
		if b2.states[v] != s {
			return false
		}
	}
	return true
}

// isStar marks the handicap points drawn on 9x9, 13x13 and 19x19 boards
func (b *Board) isStar(i Intersection) bool {
	var lines []int
	switch b.size {
	case 9:
		if i.X == 5 && i.Y == 5 {
			return true
		}
		lines = []int{3, 7}
	case 13:
		lines = []int{4, 7, 10}
	case 19:
		lines = []int{4, 10, 16}
	}
	onX, onY := false, false
	for _, l := range lines {
		onX = onX || (i.X == l)
		onY = onY || (i.Y == l)
	}
	return onX && onY
}

func (b *Board) String() string {
	stringRows := make([]string, b.size+1)
	stringRows[0] = "  "
	for y := 1; y <= b.size; y++ {
		rowLetter, _ := coordinateToLetter(y)
		stringRows[y] = rowLetter + " "
		for x := 1; x <= b.size; x++ {
			if y == 1 {
				colLetter, _ := coordinateToLetter(x)
				stringRows[0] += colLetter + " "
			}
			v := Intersection{x, y}
			switch b.Read(v) {
			case BlackStone:
				stringRows[y] += "X "
			case WhiteStone:
				stringRows[y] += "O "
			default:
				if b.isStar(v) {
					stringRows[y] += "+ "
				} else {
					stringRows[y] += ". "
				}
			}
		}
	}
	return strings.Join(stringRows, "\n") + "\n"
}
