// Package flatrix lets a flat, contiguous buffer be addressed and mutated
// as a two-dimensional matrix — without copying the data and without two
// live mutable views ever touching the same element.
//
// 🚀 What is flatrix?
//
//	A small, focused library that brings together:
//		• Layout policies: row-major and column-major memory interpretation,
//		  selected at compile time via a type parameter
//		• Three ownership regimes: heap-owned (Dense), copy-owned (Fixed)
//		  and borrowed (Ref) — all sharing one operation set
//		• Row / column / cell views, contiguous or strided, bounds-checked
//		• Disjoint mutable splits: iterate all rows (or columns) mutably at
//		  once, each view provably touching its own elements
//
// ✨ Why choose flatrix?
//
//   - Predictable – every offset is a pure function of (row, col, shape)
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Generic – works over any element type with value semantics
//
// Everything is organized under two subpackages:
//
//	layout/ — coordinate→offset policies (RowMajor, ColMajor) and Shape
//	matrix/ — views, disjoint splits and the Dense/Fixed/Ref containers
//
// Quick ASCII example — the buffer [1,1,1,1,2,2,2,2,...] seen two ways:
//
//	row-major            column-major
//	1 1 1 1              1 2 3 4
//	2 2 2 2              1 2 3 4
//	3 3 3 3              1 2 3 4
//	4 4 4 4              1 2 3 4
//
// flatrix is not a math library: it is the layout/view primitive that
// arithmetic, codecs or solvers build on top of.
//
//	go get github.com/katalvlaran/flatrix
package flatrix
