// Package columns maps a document's header names onto the semantic roles the
// enrichment run needs, and creates the columns that are missing.
//
// Classification walks a fixed role order over the headers in file order, so
// a header that could serve several roles always lands on the earliest one.
// Matching is keyword based and whole-word, which keeps "Filmmaker" away
// from the title role. Files lacking title, director, or year columns are
// rejected up front with the full header list so the user can fix the file.
package columns
