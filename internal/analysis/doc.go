// Package analysis characterizes multiplication graphs.
//
//   - [Orbits]: cycle decomposition of the map i -> i*k mod n
//   - [ChordLengths]: Euclidean length of every drawn chord
//
// The map is a permutation only when k and n are coprime; otherwise
// some indices lie on tails that feed into the cycles and never recur.
package analysis
