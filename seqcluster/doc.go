// Package seqcluster implements the sequential threshold family: BSAS
// (single-pass), MBSAS (two-pass) and TTSAS (two-threshold), grouped in one
// package because they share representative bookkeeping the way the
// teacher's flow package hosts Dinic, Edmonds-Karp and Ford-Fulkerson
// together under one maximum-flow concern.
//
// All three grow a set of cluster representatives greedily as points
// arrive, comparing each point's distance to the nearest representative
// against one or two thresholds, and folding accepted points into their
// cluster's representative with a running mean.
package seqcluster
