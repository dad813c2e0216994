package adjacency

// Collection is an undirected-or-directed edge set over the node indices
// [0, Size()). Set/Erase act on the ordered pair (i,j) only; callers that
// want a symmetric (undirected) edge call SetSymmetric/EraseSymmetric, or
// use Set/Erase twice.
type Collection interface {
	// Size returns the number of nodes the collection was built for.
	Size() int

	// Set records an edge i -> j. Returns ErrIndexOutOfRange if either
	// index is invalid.
	Set(i, j int) error

	// Erase removes an edge i -> j, if present. Returns
	// ErrIndexOutOfRange if either index is invalid.
	Erase(i, j int) error

	// Has reports whether edge i -> j is present. Returns false (not an
	// error) for out-of-range indices, matching the "empty-structure
	// queries never fail" policy used throughout this module (kdtree,
	// et al.).
	Has(i, j int) bool

	// Neighbors returns every j with an edge i -> j. BitMatrix and
	// DenseMatrix return them in ascending order; List's order is
	// unspecified. Returns nil for an out-of-range i.
	Neighbors(i int) []int

	// Degree returns len(Neighbors(i)) without allocating a slice.
	Degree(i int) int
}

// SetSymmetric records edges i->j and j->i.
func SetSymmetric(c Collection, i, j int) error {
	if err := c.Set(i, j); err != nil {
		return err
	}

	return c.Set(j, i)
}

// EraseSymmetric removes edges i->j and j->i.
func EraseSymmetric(c Collection, i, j int) error {
	if err := c.Erase(i, j); err != nil {
		return err
	}

	return c.Erase(j, i)
}

func inRange(i, n int) bool { return i >= 0 && i < n }
