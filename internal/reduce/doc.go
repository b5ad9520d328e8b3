// Package reduce implements the descent/ascent core of the
// single-multiplication scaling algorithm.
//
// Descent (Down) repeatedly sorts a vector of aligned values, groups
// duplicates, takes first differences of the distinct values, and
// re-aligns, until a single element remains. Each round records a
// Level: for every distinct value, the positions it occupied and the
// trailing-zero shifts stripped by alignment. Ascent (Up) reverses
// the process for a scaled carry: prefix-summing inverts the first
// differences and the recorded positions scatter each value (shifted
// back) into place.
//
// Because the one true multiplication happens only on the single
// element left at the bottom, and addition and shifts distribute over
// it, the ascent reproduces the whole vector scaled.
package reduce
