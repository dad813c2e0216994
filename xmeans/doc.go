// Package xmeans implements X-Means: X-Means starts K-Means from an
// initial center set and repeatedly tries to split each resulting cluster
// into two (via a local 2-Means fit from perturbed seeds), accepting a
// split only when the Bayesian Information Criterion of the two-center
// model exceeds that of the one-center model. The search stops when a
// round accepts no split, or the center count reaches kmax.
package xmeans
