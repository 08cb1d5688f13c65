// Package youtube finds trailer videos by scraping the public YouTube
// results page. The page embeds watch links for every hit, so the first
// eleven-character video identifier in the response body is the top result.
// A browser user agent is required or YouTube serves a script-only shell
// with no parseable links.
package youtube
