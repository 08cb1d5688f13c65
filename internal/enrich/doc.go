// Package enrich drives the per-row lookup and merge pipeline over a loaded
// document.
//
// Rows are visited in file order. The eligibility filter is the sole gate
// for writes: a cell that already holds a value is never touched, whatever
// the lookup providers return. Lookup failures are counted and the run moves
// on; only cancellation stops it early, and even then the merges completed
// so far stay in the document. Pacing between lookup rows is delegated to an
// injectable sleep so tests run instantly.
package enrich
