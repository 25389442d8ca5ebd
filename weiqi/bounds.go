package weiqi

// MaxSize is the largest board the letter notation can address
const MaxSize = 52

// InBounds reports whether both coordinates lie in [1, size]
func InBounds(i Intersection, size int) bool {
	return (i.X >= 1) && (i.X <= size) && (i.Y >= 1) && (i.Y <= size)
}

// adjacent returns the in-bounds orthogonal neighbors of i in the order
// (x-1, y), (x, y-1), (x+1, y), (x, y+1)
func adjacent(i Intersection, size int) []Intersection {
	adj := make([]Intersection, 0, 4)
	for _, d := range [2]int{-1, 1} {
		if v := (Intersection{i.X + d, i.Y}); InBounds(v, size) {
			adj = append(adj, v)
		}
		if v := (Intersection{i.X, i.Y + d}); InBounds(v, size) {
			adj = append(adj, v)
		}
	}
	return adj
}
