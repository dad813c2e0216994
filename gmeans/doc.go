// Package gmeans implements G-Means: the same split/refit outer loop as
// X-Means, but a candidate 2-split is accepted when the Anderson-Darling
// statistic, computed on the cluster's points projected onto the line
// through the two child centers, rejects the null hypothesis that the
// projection is normally distributed — rather than X-Means's BIC
// comparison. A cluster whose points already look Gaussian along every
// split direction is left alone.
package gmeans
