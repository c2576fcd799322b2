// Package lexorank generates and manipulates string-based fractional
// indices ("lexicographic ranks") that keep mutable collections (Kanban
// columns, playlists, outline trees) ordered without ever rewriting the
// neighbours of an inserted item.
//
// 🚀 What is lexorank?
//
//	A small, pure-Go library that treats short strings over a fixed
//	alphabet as base-N fractional values and gives you:
//		• Midpoint insertion: mint a rank strictly between any two ranks
//		• Edge insertion: derive a rank just before or just after one rank
//		• Bulk generation: seed an empty collection or spread n ranks
//		  evenly between two bounds
//		• Strict validation: malformed ranks are rejected, never repaired
//
// ✨ Why choose lexorank?
//
//   - No reindexing – neighbours keep their ranks forever; only the new
//     item gets a fresh string
//   - No floats – ordering is plain string data, immune to precision drift,
//     readable by humans and databases alike
//   - Pure Go – no cgo, no hidden deps, safe for concurrent use
//   - Configurable – bring your own ordered symbol set; A–Z by default
//
// Under the hood, everything is organized under two subpackages:
//
//	alphabet/ : symbol ⇄ ordinal codec (boundaries, midpoint, lookups)
//	rank/     : the index algebra (Between, Before, After, Spread & friends)
//
// Quick ASCII example:
//
//	    "B"        "C"
//	     └── "BN" ──┘
//
//	inserting between "B" and "C" mints "BN"; inserting between "B" and
//	"BN" mints "BG"; neighbours never move.
//
// Dive into examples/ for full Kanban-style walkthroughs.
//
//	go get github.com/katalvlaran/lexorank/rank
package lexorank
