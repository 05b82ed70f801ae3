// Package solve drives package rules to quiescence over a whole puzzle.
//
// It maintains a two-level worklist: an outer FIFO of every unsolved
// vertex and cell, and, each time a node is popped, an inner LIFO closure
// around just that node and whatever it newly affects. When local
// deduction alone cannot make progress anywhere, it falls back to
// trial-by-elimination at the edge level: tentatively draw a diagonal,
// see whether propagating from it leads to a contradiction, and if so
// commit the opposite.
//
// Solve is the package's single public entry point.
package solve
