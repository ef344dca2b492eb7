// Package grouping partitions a sorted list of filenames into disjoint merge
// groups using pairwise similarity scores.
//
// The algorithm is anchor-based and deliberately not a transitive-closure
// clustering: the first unplaced filename in sort order seeds a group and
// every later unplaced filename is compared against that anchor only. Two
// members of the same group may therefore be dissimilar to each other as long
// as both match the anchor. This keeps the result a single deterministic pass
// over the sorted input with no graph bookkeeping.
package grouping
