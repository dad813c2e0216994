// Package kmedians implements K-Medians: the K-Means loop with centers
// recomputed as the component-wise median of their members instead of the
// mean, which trades a smoother objective for robustness against outliers.
// Unlike K-Means, an empty cluster is dropped from the output rather than
// kept with its stale center.
package kmedians
