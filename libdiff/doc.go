// Package libdiff computes line oriented diffs between two renderings of a
// document.
package libdiff
