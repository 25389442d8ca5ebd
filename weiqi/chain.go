package weiqi

import "sort"

// chain tracks a maximal group of connected stones of one color. Members
// are keys into the board state, never references to moves.
type chain struct {
	stone   Stone
	members map[Intersection]struct{}
}

func newChain(stone Stone, first Intersection) *chain {
	return &chain{stone: stone, members: map[Intersection]struct{}{first: {}}}
}

// hasLibertyExcept stops at the first vacant neighbor other than skip
func (c *chain) hasLibertyExcept(b *Board, skip Intersection) bool {
	for v := range c.members {
		for _, adj := range adjacent(v, b.size) {
			if adj == skip {
				continue
			}
			if _, occupied := b.states[adj]; !occupied {
				return true
			}
		}
	}
	return false
}

func (c *chain) hasLiberty(b *Board) bool {
	return c.hasLibertyExcept(b, Intersection{})
}

func (c *chain) liberties(b *Board) []Intersection {
	seen := make(map[Intersection]struct{})
	for v := range c.members {
		for _, adj := range adjacent(v, b.size) {
			if _, occupied := b.states[adj]; !occupied {
				seen[adj] = struct{}{}
			}
		}
	}
	return sortedKeys(seen)
}

// absorb moves every member of other into c and repoints the owner index
func (c *chain) absorb(other *chain, id int, owner map[Intersection]int) {
	for v := range other.members {
		c.members[v] = struct{}{}
		owner[v] = id
	}
}

// Chain is a read-only snapshot of a chain on the board
type Chain struct {
	Stone     Stone
	Members   []Intersection
	Liberties []Intersection
}

func (c *chain) snapshot(b *Board) Chain {
	return Chain{
		Stone:     c.stone,
		Members:   sortedKeys(c.members),
		Liberties: c.liberties(b),
	}
}

func sortedKeys(set map[Intersection]struct{}) []Intersection {
	keys := make([]Intersection, 0, len(set))
	for v := range set {
		keys = append(keys, v)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}
