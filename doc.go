// Package volcanium is an in-memory toolkit for the valve-opening
// pressure-maximization problem: given a network of pressure valves
// joined by tunnels, find the most pressure one or two agents can
// release within a fixed time budget.
//
// 🌋 What is volcanium?
//
//	A small, focused library that brings together:
//		• Core primitives: parse valve records, build an immutable valve network
//		• Graph reduction: BFS-compress the network into a table of useful hops
//		• Search: memoized recursive pressure maximization, solo or paired
//
// ✨ Why choose volcanium?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs always yield identical tables and scores
//   - Pure Go – no cgo; only testify (tests) and x/sync (optional parallelism)
//   - Tunable – functional options for budgets, pruning and parallel fan-out
//
// Under the hood, everything is organized under three subpackages:
//
//	core/     — Valve, Record and Network types; record parsing and network construction
//	distance/ — compression of the full network into a destination table (BFS)
//	pressure/ — memoized maximum-release search, single agent or agent pair
//
// Quick ASCII example:
//
//	    AA───BB(13)
//	    │       │
//	    DD(20)──CC(2)
//
//	represents a source AA and three valves with their flow rates.
//
// Dive into the per-package docs for complexity notes, the full option
// surface, and worked examples reproducing the canonical sample scores.
//
//	go get github.com/katalvlaran/volcanium
package volcanium
