// Package kdtree implements a balanced k-d tree over lvcluster.Point data,
// used by several algorithms (K-Means assignment, DBSCAN/OPTICS
// neighborhood queries) for exact nearest-neighbor and radius queries.
//
// Construction builds a tree of depth ceil(log2 N): at depth h the
// discriminator dimension is h mod d, and for a slice sorted by that
// dimension the root is the *leftmost* element equal to the
// discriminator-value of the median — the tie-break the spec calls out as
// essential so duplicate coordinate values on the split axis land
// deterministically on the correct side.
//
// Nodes are arena-indexed: Tree owns a single []node slice, and
// Left/Right/Parent are indices into it (-1 for "none"). This sidesteps the
// parent-back-pointer lifetime questions the reference engine's raw
// pointers raise, and gives good cache locality as a side effect — the
// arena form the spec's Design Notes recommend over a pointer-linked tree
// with weak back-references.
package kdtree
