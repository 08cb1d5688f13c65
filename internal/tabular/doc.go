// Package tabular models a delimited text file as an ordered column set plus
// rows, and gets it back onto disk without disturbing what it did not touch.
//
// Loading infers the field separator when none is given, tolerates ragged
// rows by padding or truncating them to the header width, and rejects files
// whose structure cannot support enrichment (no header, colliding column
// names). Serialization preserves the original delimiter and column order and
// only quotes cells that need it, so every untouched cell value survives a
// rewrite unchanged. Saves go through a temp file rename so a crash never
// leaves a half-written document behind.
package tabular
