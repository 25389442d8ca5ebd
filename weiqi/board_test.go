package weiqi

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBoard places every move and fails the test on any rejection
func newTestBoard(t testing.TB, size int, moves ...string) *Board {
	t.Helper()
	b, err := NewBoard(size)
	require.NoError(t, err)
	for _, s := range moves {
		m, err := NewMoveFromString(s)
		require.NoError(t, err)
		require.Equal(t, Legal, b.Update(m), "setup move %s", s)
	}
	return b
}

func TestNewBoardSize(t *testing.T) {
	for _, size := range []int{0, -1, MaxSize + 1} {
		_, err := NewBoard(size)
		assert.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
	}
	for _, size := range []int{1, 9, 19, MaxSize} {
		b, err := NewBoard(size)
		require.NoError(t, err)
		assert.Equal(t, size, b.Size())
		assert.Empty(t, b.Chains())
	}
}

func TestBoardUpdateAndRead(t *testing.T) {
	b := newTestBoard(t, 9)

	assert.Equal(t, Legal, b.Update(NewMove(Black, 3, 3)))
	assert.Equal(t, BlackStone, b.Read(Intersection{3, 3}))
	assert.Equal(t, Vacant, b.Read(Intersection{4, 4}))
	assert.Equal(t, OutOfRange, b.Read(Intersection{0, 3}))
	assert.Equal(t, OutOfRange, b.Read(Intersection{3, 10}))

	s, ok := b.Read(Intersection{3, 3}).Stone()
	assert.True(t, ok)
	assert.Equal(t, Black, s)
	_, ok = b.Read(Intersection{4, 4}).Stone()
	assert.False(t, ok)
}

func TestBoardNeighbors(t *testing.T) {
	b := newTestBoard(t, 9, "Wdd")

	n := b.Neighbors(Intersection{4, 5})
	require.Len(t, n, 4)
	assert.Equal(t, Neighbor{WhiteStone, Intersection{4, 4}}, n[1])

	assert.Equal(t, []Neighbor{
		{OutOfRange, Intersection{0, 1}},
		{OutOfRange, Intersection{1, 0}},
		{Vacant, Intersection{2, 1}},
		{Vacant, Intersection{1, 2}},
	}, b.Neighbors(Intersection{1, 1}))
}

func TestOutOfBounds(t *testing.T) {
	b := newTestBoard(t, 9, "Bcc", "Wdd")
	before := b.Copy()

	for _, v := range []Intersection{{0, 1}, {1, 0}, {10, 10}, {9, 10}, {-1, 5}, {0, 0}} {
		for _, s := range []Stone{Black, White} {
			o := b.Update(Move{Stone: s, Intersection: v})
			assert.Equal(t, Outcome{Illegal: OutOfBounds}, o, "%v", v)
			assert.ErrorIs(t, o.Err(), ErrOutOfBounds)
		}
	}
	assert.True(t, b.Equals(before))
	assert.Equal(t, before.Hash(), b.Hash())
}

func TestRepeatMove(t *testing.T) {
	b := newTestBoard(t, 9, "Waa")
	before := b.Copy()

	for _, s := range []Stone{White, Black} {
		o := b.Update(NewMove(s, 1, 1))
		assert.Equal(t, Outcome{Illegal: RuleViolation, Rule: RepeatMove}, o)
		assert.ErrorIs(t, o.Err(), ErrRepeatMove)
		assert.ErrorIs(t, o.Err(), ErrRuleViolation)
	}
	assert.True(t, b.Equals(before))
	assert.Len(t, b.Chains(), 1)
}

func TestSuicide(t *testing.T) {
	testTable := []struct {
		name  string
		setup []string
		move  Move
	}{
		{
			// four lone white stones around an empty point
			name:  "ring",
			setup: []string{"Wcb", "Wdc", "Wcd", "Wbc"},
			move:  NewMove(Black, 3, 3),
		},
		{
			name:  "corner",
			setup: []string{"Wab", "Wba"},
			move:  NewMove(Black, 1, 1),
		},
		{
			// joining a chain removes its last liberty
			name:  "chain",
			setup: []string{"Baa", "Wba", "Wbb", "Wac"},
			move:  NewMove(Black, 1, 2),
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBoard(t, 9, tc.setup...)
			before := b.Copy()

			assert.Equal(t, Outcome{Illegal: RuleViolation, Rule: Suicide}, b.Check(tc.move))
			o := b.Update(tc.move)
			assert.Equal(t, Outcome{Illegal: RuleViolation, Rule: Suicide}, o)
			assert.ErrorIs(t, o.Err(), ErrSuicide)
			assert.Equal(t, "illegal: rule: suicide", o.String())

			assert.True(t, b.Equals(before), "board changed after rejected move")
			assert.Equal(t, before.Hash(), b.Hash())
			assert.Equal(t, before.Chains(), b.Chains())
		})
	}
}

func TestCaptureIsNotSuicide(t *testing.T) {
	// . O X
	// O X .
	// X . .
	b := newTestBoard(t, 9, "Bca", "Bbb", "Bac", "Wba", "Wab")

	m := NewMove(Black, 1, 1)
	assert.Equal(t, Legal, b.Check(m))
	assert.Equal(t, Legal, b.Update(m))

	assert.Equal(t, Vacant, b.Read(Intersection{2, 1}))
	assert.Equal(t, Vacant, b.Read(Intersection{1, 2}))
	assert.Equal(t, BlackStone, b.Read(Intersection{1, 1}))
	assert.Equal(t, 2, b.Captures(White))
	assert.Equal(t, 0, b.Captures(Black))
	assert.Equal(t, 2, b.Liberties(Intersection{1, 1}))

	// same stones placed directly give the same position
	direct := newTestBoard(t, 9, "Bca", "Bbb", "Bac", "Baa")
	assert.True(t, b.Equals(direct))
	assert.Equal(t, direct.Hash(), b.Hash())
}

func TestCaptureChain(t *testing.T) {
	b := newTestBoard(t, 9, "Baa", "Bba", "Wab", "Wbb", "Wca")

	assert.Equal(t, Vacant, b.Read(Intersection{1, 1}))
	assert.Equal(t, Vacant, b.Read(Intersection{2, 1}))
	assert.Equal(t, 2, b.Captures(Black))
	assert.Len(t, b.Chains(), 2)
}

func TestCaptureRing(t *testing.T) {
	// white ring around (3, 3) with every outer liberty filled by black
	b := newTestBoard(t, 9,
		"Wcb", "Wdc", "Wcd", "Wbc",
		"Bbb", "Bdb", "Bca", "Bec", "Bdd", "Bbd", "Bce", "Bac",
	)
	for _, v := range []Intersection{{3, 2}, {4, 3}, {3, 4}, {2, 3}} {
		require.Equal(t, 1, b.Liberties(v))
	}

	assert.Equal(t, Legal, b.Update(NewMove(Black, 3, 3)))
	for _, v := range []Intersection{{3, 2}, {4, 3}, {3, 4}, {2, 3}} {
		assert.Equal(t, Vacant, b.Read(v), "%v", v)
	}
	assert.Equal(t, 4, b.Captures(White))
	assert.Equal(t, 4, b.Liberties(Intersection{3, 3}))
	for _, c := range b.Chains() {
		assert.Equal(t, Black, c.Stone)
	}
}

func TestMakeChain(t *testing.T) {
	b := newTestBoard(t, 9, "Baa", "Bba", "Bgg")

	chains := b.Chains()
	require.Len(t, chains, 2)
	assert.Equal(t, []Intersection{{1, 1}, {2, 1}}, chains[0].Members)
	assert.Equal(t, []Intersection{{7, 7}}, chains[1].Members)
	assert.Equal(t, []Intersection{{3, 1}, {1, 2}, {2, 2}}, chains[0].Liberties)
}

func TestMakeMultipleChains(t *testing.T) {
	b := newTestBoard(t, 9, "Baa", "Bba", "Wbb", "Wbc")

	chains := b.Chains()
	require.Len(t, chains, 2)
	assert.Equal(t, Black, chains[0].Stone)
	assert.Equal(t, White, chains[1].Stone)
	assert.Len(t, chains[1].Members, 2)
}

func TestMergeBridgesChains(t *testing.T) {
	// four separate stones around (2, 2)
	b := newTestBoard(t, 9, "Bab", "Bcb", "Bba", "Bbc")
	require.Len(t, b.Chains(), 4)

	assert.Equal(t, Legal, b.Update(NewMove(Black, 2, 2)))
	chains := b.Chains()
	require.Len(t, chains, 1)
	assert.Len(t, chains[0].Members, 5)

	c, ok := b.ChainAt(Intersection{1, 2})
	require.True(t, ok)
	assert.Equal(t, chains[0], c)
	_, ok = b.ChainAt(Intersection{5, 5})
	assert.False(t, ok)
}

func TestBoardCopy(t *testing.T) {
	b1 := newTestBoard(t, 5, "Bbb")
	b2 := b1.Copy()
	require.True(t, b1.Equals(b2))

	// Make sure copy was deep
	b1.Update(NewMove(Black, 2, 3))
	assert.Equal(t, Vacant, b2.Read(Intersection{2, 3}))
	assert.Len(t, b2.Chains()[0].Members, 1)
	assert.False(t, b1.Equals(b2))

	b2.Update(NewMove(Black, 2, 3))
	assert.True(t, b1.Equals(b2))
	assert.Equal(t, b1.Hash(), b2.Hash())
}

func TestBoardHashOrder(t *testing.T) {
	b1 := newTestBoard(t, 9, "Bcc", "Wdd", "Bee")
	b2 := newTestBoard(t, 9, "Bee", "Bcc", "Wdd")
	assert.Equal(t, b1.Hash(), b2.Hash())

	b3 := newTestBoard(t, 9, "Wcc", "Bdd", "Wee")
	assert.NotEqual(t, b1.Hash(), b3.Hash())

	empty := newTestBoard(t, 9)
	assert.Zero(t, empty.Hash())

	// boards larger than the precomputed table
	big := newTestBoard(t, 25, "Bxy", "Wyy")
	assert.NotZero(t, big.Hash())
}

func TestBoardString(t *testing.T) {
	b := newTestBoard(t, 3, "Baa", "Wba")
	assert.Equal(t, "  a b c \na X O . \nb . . . \nc . . . \n", b.String())

	b = newTestBoard(t, 9)
	assert.Contains(t, b.String(), "e . . . . + . . . . ")
}

// checkInvariants verifies that chains partition the stones, are maximal
// and that none of them is left without liberties
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	owner := make(map[Intersection]int)
	for i, c := range b.Chains() {
		require.NotEmpty(t, c.Liberties, "chain %v has no liberties", c.Members)
		for _, v := range c.Members {
			_, dup := owner[v]
			require.False(t, dup, "%v in two chains", v)
			owner[v] = i
			require.Equal(t, Cell(c.Stone), b.Read(v))
		}
	}
	for y := 1; y <= b.Size(); y++ {
		for x := 1; x <= b.Size(); x++ {
			v := Intersection{x, y}
			s, ok := b.Read(v).Stone()
			if !ok {
				continue
			}
			require.Contains(t, owner, v)
			for _, n := range b.Neighbors(v) {
				if ns, ok := n.Cell.Stone(); ok && ns == s {
					require.Equal(t, owner[v], owner[n.Intersection], "%v and %v not merged", v, n.Intersection)
				}
			}
		}
	}
}

func TestRandomGameInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	b := newTestBoard(t, 9)
	stone := Black
	accepted := 0
	for j := 0; j < 400; j++ {
		m := NewMove(stone, r.Intn(11), r.Intn(11))
		before := b.Copy()
		o := b.Update(m)
		if o.IsLegal() {
			accepted++
			stone = stone.Opponent()
		} else {
			require.True(t, b.Equals(before), "rejected %s changed the board", m)
			require.Equal(t, before.Hash(), b.Hash())
		}
		checkInvariants(t, b)
	}
	assert.NotZero(t, accepted)
}

func BenchmarkRandomGame(b *testing.B) {
	for i := 0; i < b.N; i++ {
		board, _ := NewBoard(19)
		r := rand.New(rand.NewSource(1))
		stone := Black
		for j := 0; j < 300; j++ {
			if board.Update(NewMove(stone, r.Intn(19)+1, r.Intn(19)+1)).IsLegal() {
				stone = stone.Opponent()
			}
		}
	}
}
