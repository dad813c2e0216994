package clique

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcluster"
)

// BlockInfo describes one non-empty grid block of a Run: its logical grid
// coordinate, its spatial bounding corners, and the dataset points that
// fell inside it.
type BlockInfo struct {
	LogicalLocation []int
	MinCorner       lvcluster.Point
	MaxCorner       lvcluster.Point
	Points          []int
}

// Result is the outcome of Run.
type Result struct {
	Clusters lvcluster.ClusterSet
	Noise    []int
	Blocks   []BlockInfo
}

// block is the internal working representation of one non-empty grid
// cell during Run, before Result.Blocks is assembled.
type block struct {
	location []int
	points   []int
}

// Run performs CLIQUE clustering: dataset's bounding box is cut into an
// intervals-per-dimension grid, a block is dense once it holds at least
// threshold points, and dense blocks adjacent along any single axis merge
// into one cluster via BFS over that adjacency.
//
// Returns lvcluster.ErrEmptyDataset, ErrInvalidIntervals (intervals <= 0),
// or ErrInvalidThreshold (threshold <= 0).
func Run(dataset lvcluster.Dataset, intervals, threshold int) (*Result, error) {
	if err := lvcluster.ValidateDataset(dataset); err != nil {
		return nil, err
	}
	if intervals <= 0 {
		return nil, ErrInvalidIntervals
	}
	if threshold <= 0 {
		return nil, ErrInvalidThreshold
	}

	dim := dataset.Dim()
	minCorner := append(lvcluster.Point(nil), dataset[0]...)
	maxCorner := append(lvcluster.Point(nil), dataset[0]...)
	for _, p := range dataset[1:] {
		for d := 0; d < dim; d++ {
			if p[d] < minCorner[d] {
				minCorner[d] = p[d]
			}
			if p[d] > maxCorner[d] {
				maxCorner[d] = p[d]
			}
		}
	}

	cellSize := make([]float64, dim)
	for d := 0; d < dim; d++ {
		cellSize[d] = (maxCorner[d] - minCorner[d]) / float64(intervals)
	}

	blocks := make(map[string]*block)
	order := make([]string, 0)
	for i, p := range dataset {
		loc := logicalLocation(p, minCorner, cellSize, intervals)
		key := locationKey(loc)
		b, ok := blocks[key]
		if !ok {
			b = &block{location: loc}
			blocks[key] = b
			order = append(order, key)
		}
		b.points = append(b.points, i)
	}

	dense := make(map[string]bool, len(blocks))
	for key, b := range blocks {
		dense[key] = len(b.points) >= threshold
	}

	visited := make(map[string]bool, len(blocks))
	var clusters lvcluster.ClusterSet
	var noise []int

	for _, key := range order {
		if !dense[key] || visited[key] {
			continue
		}

		var members []int
		queue := []string{key}
		visited[key] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			b := blocks[cur]
			members = append(members, b.points...)

			for _, nk := range axisNeighborKeys(b.location, intervals) {
				if dense[nk] && !visited[nk] {
					visited[nk] = true
					queue = append(queue, nk)
				}
			}
		}

		clusters = append(clusters, lvcluster.Cluster(members))
	}

	for _, key := range order {
		if !dense[key] {
			noise = append(noise, blocks[key].points...)
		}
	}

	resultBlocks := make([]BlockInfo, 0, len(order))
	for _, key := range order {
		b := blocks[key]
		lo, hi := blockCorners(b.location, minCorner, cellSize)
		resultBlocks = append(resultBlocks, BlockInfo{
			LogicalLocation: b.location,
			MinCorner:       lo,
			MaxCorner:       hi,
			Points:          b.points,
		})
	}

	return &Result{Clusters: clusters, Noise: noise, Blocks: resultBlocks}, nil
}

// logicalLocation computes p's clamped per-dimension cell coordinate. A
// degenerate dimension (min == max, cellSize 0) always maps to cell 0.
func logicalLocation(p, minCorner lvcluster.Point, cellSize []float64, intervals int) []int {
	loc := make([]int, len(p))
	for d := range p {
		if cellSize[d] == 0 {
			continue
		}
		idx := int((p[d] - minCorner[d]) / cellSize[d])
		if idx >= intervals {
			idx = intervals - 1
		}
		if idx < 0 {
			idx = 0
		}
		loc[d] = idx
	}

	return loc
}

func locationKey(loc []int) string {
	parts := make([]string, len(loc))
	for i, v := range loc {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// axisNeighborKeys returns the location keys of every block reachable from
// loc by moving ±1 along exactly one dimension, staying within [0, I-1].
func axisNeighborKeys(loc []int, intervals int) []string {
	var keys []string
	for d := range loc {
		if loc[d]+1 < intervals {
			next := append([]int(nil), loc...)
			next[d]++
			keys = append(keys, locationKey(next))
		}
		if loc[d] > 0 {
			prev := append([]int(nil), loc...)
			prev[d]--
			keys = append(keys, locationKey(prev))
		}
	}

	return keys
}

func blockCorners(loc []int, minCorner lvcluster.Point, cellSize []float64) (lvcluster.Point, lvcluster.Point) {
	lo := make(lvcluster.Point, len(loc))
	hi := make(lvcluster.Point, len(loc))
	for d, v := range loc {
		lo[d] = minCorner[d] + float64(v)*cellSize[d]
		hi[d] = minCorner[d] + float64(v+1)*cellSize[d]
	}

	return lo, hi
}
