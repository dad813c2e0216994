// Package fcm implements Fuzzy C-Means: alternating optimization of a
// soft N×k membership matrix and k center points, stopping once the
// maximum center displacement drops to or below a tolerance. Unlike the
// hard partitional algorithms, every point belongs to every cluster with a
// graded degree; HardLabels on the resulting lvcluster.Membership recovers
// a conventional partition when one is needed.
package fcm
