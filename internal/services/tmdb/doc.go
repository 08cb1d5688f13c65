// Package tmdb looks up a director's most popular films through The Movie
// Database API: a person search resolves the name to an identifier, then the
// movie credits endpoint supplies directing credits ranked by popularity.
package tmdb
