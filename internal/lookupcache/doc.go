// Package lookupcache persists successful lookup results in a SQLite
// database so reruns over the same movie list skip the network.
//
// Only positive results are cached. A trailer that was not found yesterday
// may be published today, so misses and failures always go back to the
// provider. Keys are accent- and case-folded, which makes "Almodóvar" and
// "almodovar" the same director. Wrap the real clients with WrapTrailer and
// WrapRelated; cache trouble is logged and degrades to a plain lookup, never
// to a failed run.
package lookupcache
