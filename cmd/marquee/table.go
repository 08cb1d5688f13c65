package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"marquee/internal/columns"
	"marquee/internal/enrich"
	"marquee/internal/tabular"
)

// renderTable draws a rounded table. Column indexes listed in rightAlign
// are right-aligned; everything else stays left-aligned.
func renderTable(headers []string, rows [][]string, rightAlign ...int) string {
	if len(headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	right := make(map[int]bool, len(rightAlign))
	for _, idx := range rightAlign {
		right[idx] = true
	}
	configs := make([]table.ColumnConfig, 0, len(headers))
	for i := range headers {
		align := text.AlignLeft
		if right[i] {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// columnMappingTable shows which file column serves each field, marking
// columns this run appended.
func columnMappingTable(doc *tabular.Document, binding columns.Binding, created []columns.Provisioned) string {
	newRoles := make(map[columns.Role]bool, len(created))
	for _, p := range created {
		newRoles[p.Role] = true
	}

	order := []columns.Role{
		columns.RoleTitle,
		columns.RoleDirector,
		columns.RoleYear,
		columns.RoleTrailer,
		columns.RoleRelated,
	}
	rows := make([][]string, 0, len(order))
	for _, role := range order {
		idx := binding.Index(role)
		if idx == columns.Unbound {
			continue
		}
		name := doc.Columns()[idx]
		if newRoles[role] {
			name += " (new)"
		}
		rows = append(rows, []string{role.Label(), name, strconv.Itoa(idx + 1)})
	}
	return renderTable([]string{"Field", "Column", "Position"}, rows, 2)
}

func summaryTable(summary enrich.Summary, withRelated bool) string {
	rows := [][]string{
		{"Total movies", strconv.Itoa(summary.Total)},
		{"Processed", strconv.Itoa(summary.Processed)},
		{"Skipped", strconv.Itoa(summary.Skipped)},
		{"Trailers found", strconv.Itoa(summary.TrailersFound)},
		{"Trailers not found", strconv.Itoa(summary.TrailersNotFound)},
	}
	if withRelated {
		rows = append(rows,
			[]string{"Related films found", strconv.Itoa(summary.RelatedFound)},
			[]string{"Related films not found", strconv.Itoa(summary.RelatedNotFound)},
		)
	}
	if summary.Errors > 0 {
		rows = append(rows, []string{"Lookup errors", strconv.Itoa(summary.Errors)})
	}
	return renderTable([]string{"Metric", "Count"}, rows, 1)
}
