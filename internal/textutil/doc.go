// Package textutil provides text normalization helpers shared by the lookup
// layers.
//
// Fold produces a canonical form of free-text search terms (lowercased,
// diacritics stripped, whitespace collapsed) so that cache keys remain stable
// across cosmetic variations of the same title or name.
package textutil
