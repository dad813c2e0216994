// Package workerpool provides a bounded worker pool and a ParallelFor helper
// used opportunistically by the clustering algorithms (per-point assignment
// in K-Means and K-Medians, via their WithPool options).
//
// A Pool is an explicit value, never a process-wide singleton: callers
// construct one, pass it (or nil, meaning "run sequentially") into algorithm
// entry points, and Close it when done. This keeps algorithm results
// reproducible under test without any hidden global state.
//
// Ordering: parallel reductions performed on top of ParallelFor must use
// commutative combination (sum, min, component-wise add) so that chunk
// order never affects the final result, only (by at most one ulp) its
// floating-point rounding.
package workerpool
