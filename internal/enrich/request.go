package enrich

import (
	"fmt"
	"strconv"
	"strings"

	"marquee/internal/columns"
	"marquee/internal/tabular"
)

// youtubeWatchPrefix turns a bare video identifier into the canonical URL
// written to trailer cells.
const youtubeWatchPrefix = "https://www.youtube.com/watch?v="

// lookupRequest carries the row fields the lookup providers consume. A zero
// year means the row had no usable year.
type lookupRequest struct {
	title    string
	director string
	year     int
}

func buildRequest(doc *tabular.Document, binding columns.Binding, row int) lookupRequest {
	req := lookupRequest{
		title: strings.TrimSpace(doc.Cell(row, binding.Title)),
	}
	if binding.Bound(columns.RoleDirector) {
		req.director = strings.TrimSpace(doc.Cell(row, binding.Director))
	}
	if binding.Bound(columns.RoleYear) {
		raw := strings.TrimSpace(doc.Cell(row, binding.Year))
		if year, err := strconv.Atoi(raw); err == nil && year > 0 {
			req.year = year
		}
	}
	return req
}

// buildTrailerQuery assembles the video search string. Clauses whose source
// fields are absent are dropped rather than left as empty placeholders, so
// a row without a year still produces a clean query.
func buildTrailerQuery(req lookupRequest) string {
	parts := make([]string, 0, 4)
	parts = append(parts, req.title, "+movie +trailer")
	if req.director != "" {
		parts = append(parts, req.director)
	}
	if req.year > 0 {
		parts = append(parts, fmt.Sprintf("after:%d-01-01", req.year-1))
	}
	return strings.Join(parts, " ")
}

func watchURL(videoID string) string {
	return youtubeWatchPrefix + videoID
}
