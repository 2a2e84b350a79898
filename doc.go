// Package surd is an exact toolkit for quadratic surds: continued fractions
// of √n and the Pell equations built on them.
//
// 🚀 What is in the box?
//
//	• numeric/ : the Arithmetic[T] capability set (add, multiply, construct)
//	              with *big.Int and overflow-checked uint64/int64 back ends
//	• contfrac/: lazy periodic expansion of √n with exact cycle detection,
//	              and continuant folding of partial quotients into convergents
//	• pell/    : fundamental solutions of x² − d·y² = ±1 and infinite,
//	              ascending solution streams
//	• cmd/pell : a command-line front end printing decimal results
//
// ✨ Guarantees:
//
//   - Exact – integer state machines only; no floating point anywhere
//   - Generic – the same algorithms over big or machine integers
//   - Loud – fixed-width overflow is an error, never a wrapped value
//   - Pure – no globals, no I/O in the library packages
//
// Quick example:
//
//	√7 = [2; (1,1,1,4)]
//	fold [2, 1, 1, 1] → 8/3   and   8² − 7·3² = 1
//
//	go get github.com/katalvlaran/surd
package surd
