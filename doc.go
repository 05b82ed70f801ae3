// Package slant is your in-memory solver for the Slant (Gokigen Naname)
// pencil puzzle: fill every cell of a grid with a diagonal line so that
// the number of lines meeting at each clued lattice point matches its
// clue, and no closed loop ever forms.
//
// A small, dependency-light constraint propagation engine that brings
// together:
//
//	  • Board primitives: an arena-backed grid of vertices and diagonal
//	    edges, with assignment, rollback, and cycle queries
//	  • Deduction rules: the local inference rules a human solver applies
//	    by hand (forced corners, parallel runs, diagonal exclusion, chain
//	    walking)
//	  • A worklist engine: drives those rules to quiescence, falling back
//	    to guess-and-check-by-elimination only when local deduction stalls
//
// Under the hood, everything is organized under a handful of subpackages:
//
//	board/ — grid topology, edge/vertex storage, degree bookkeeping, cycle queries
//	rules/ — the local deduction rules (R1–R6)
//	solve/ — the worklist scheduler, trial-by-elimination, and the public Solve entry point
//	desc/  — parsing and formatting of the run-length puzzle description format
//
// Quick ASCII example, a solved 2x2 puzzle:
//
//	1 . 0
//	 \ \
//	. 2 .
//	 \ \
//	0 . 1
//
// Each "." is a lattice point, each clue is the number of diagonals that
// must touch it, and the drawn diagonals never form a loop.
//
//	go get github.com/katalvlaran/slant
package slant
