// Package initcenters implements the two center-initialization strategies
// shared by every partitional algorithm: uniform random selection and
// k-means++.
//
// Both expose a whole-dataset entry point and a subset entry point (used by
// PAM-style algorithms to seed from a candidate index set), and both accept
// an explicit *rand.Rand so results are reproducible — no algorithm in this
// module ever reaches for a time-seeded generator (see internal/rng).
package initcenters
