package analysis

import (
	"math"

	"github.com/jbeda/geom"
)

// Orbits decomposes the functional graph of i -> i*k mod n into its
// cycles, each listed in traversal order from the node where the walk
// first entered it. Indices on tails leading into a cycle are not part
// of any orbit.
func Orbits(n, k int) [][]int {
	if n <= 0 {
		return nil
	}
	const (
		unvisited = 0
		onPath    = 1
		done      = 2
	)
	state := make([]int, n)
	mark := make([]int, n) // position of each index on the current walk
	var cycles [][]int

	for start := 0; start < n; start++ {
		if state[start] != unvisited {
			continue
		}
		path := []int{}
		i := start
		for state[i] == unvisited {
			state[i] = onPath
			mark[i] = len(path)
			path = append(path, i)
			i = i * k % n
		}
		if state[i] == onPath {
			// The walk closed on itself: everything from the first
			// visit of i onward is a cycle, the prefix is tail.
			cycles = append(cycles, append([]int(nil), path[mark[i]:]...))
		}
		for _, j := range path {
			state[j] = done
		}
	}
	return cycles
}

// TailCount returns how many of the n indices never recur under
// i -> i*k mod n. Zero exactly when the map is a permutation.
func TailCount(n, k int) int {
	inCycle := 0
	for _, c := range Orbits(n, k) {
		inCycle += len(c)
	}
	return n - inCycle
}

// OrbitSizes lists cycle lengths largest first as a plottable series.
func OrbitSizes(orbits [][]int) []float64 {
	sizes := make([]float64, len(orbits))
	for i, c := range orbits {
		sizes[i] = float64(len(c))
	}
	for i := 0; i < len(sizes); i++ {
		for j := i + 1; j < len(sizes); j++ {
			if sizes[j] > sizes[i] {
				sizes[i], sizes[j] = sizes[j], sizes[i]
			}
		}
	}
	return sizes
}

// ChordLengths measures every connection chord, in start-index order.
func ChordLengths(points []geom.Coord, pairs [][2]int) []float64 {
	lengths := make([]float64, len(pairs))
	for i, pair := range pairs {
		a, b := points[pair[0]], points[pair[1]]
		lengths[i] = math.Hypot(b.X-a.X, b.Y-a.Y)
	}
	return lengths
}
