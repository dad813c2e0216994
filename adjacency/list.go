package adjacency

// List is a Collection backed by one hash set per node — the right choice
// for large, sparse graphs (neighbor sets where each node typically has
// few neighbors relative to N).
type List struct {
	n    int
	sets []map[int]struct{}
}

// NewList constructs a List for n nodes, each starting with no neighbors.
// Returns ErrInvalidSize if n <= 0.
func NewList(n int) (*List, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	sets := make([]map[int]struct{}, n)
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}

	return &List{n: n, sets: sets}, nil
}

// Size implements Collection.
func (l *List) Size() int { return l.n }

// Set implements Collection.
func (l *List) Set(i, j int) error {
	if !inRange(i, l.n) || !inRange(j, l.n) {
		return ErrIndexOutOfRange
	}
	l.sets[i][j] = struct{}{}

	return nil
}

// Erase implements Collection.
func (l *List) Erase(i, j int) error {
	if !inRange(i, l.n) || !inRange(j, l.n) {
		return ErrIndexOutOfRange
	}
	delete(l.sets[i], j)

	return nil
}

// Has implements Collection.
func (l *List) Has(i, j int) bool {
	if !inRange(i, l.n) || !inRange(j, l.n) {
		return false
	}
	_, ok := l.sets[i][j]

	return ok
}

// Neighbors implements Collection. The returned slice is freshly allocated
// and unordered (hash-set iteration order), unlike BitMatrix/DenseMatrix's
// ascending order — callers that need a stable order should sort it.
func (l *List) Neighbors(i int) []int {
	if !inRange(i, l.n) {
		return nil
	}
	out := make([]int, 0, len(l.sets[i]))
	for j := range l.sets[i] {
		out = append(out, j)
	}

	return out
}

// Degree implements Collection.
func (l *List) Degree(i int) int {
	if !inRange(i, l.n) {
		return 0
	}

	return len(l.sets[i])
}
