// Package layer composes resolution-changing grid stages into pipelines.
//
// A pipeline is a Source followed by an ordered Chain of Filters. Each
// Filter declares which input window it needs for a requested output
// window, so the window the Source must fill is found by folding the
// stages from last to first. Values are then produced first to last, each
// stage consuming the grid the previous one wrote.
//
// Stages draw randomness from rng.Rand re-initialized at each absolute
// output coordinate, which makes every cell a function of its position
// alone: overlapping or disjoint windows agree wherever they meet.
package layer
