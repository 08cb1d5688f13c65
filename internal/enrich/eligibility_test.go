package enrich_test

import (
	"testing"

	"marquee/internal/columns"
	"marquee/internal/enrich"
	"marquee/internal/tabular"
)

func TestEligible(t *testing.T) {
	doc, binding := buildDoc(t, "Title,Director,Year,Trailer,Related films\n"+
		"Dune,Denis Villeneuve,2021,,\n"+
		"Heat,Michael Mann,1995,https://keep.example/v,\n"+
		",Ridley Scott,1979,,\n"+
		"Alien,,1979,,\n"+
		"Tenet,Christopher Nolan,2020,   ,\n")

	cases := []struct {
		name string
		row  int
		role columns.Role
		want bool
	}{
		{"blank trailer cell", 0, columns.RoleTrailer, true},
		{"blank related cell", 0, columns.RoleRelated, true},
		{"trailer already present", 1, columns.RoleTrailer, false},
		{"related open when trailer present", 1, columns.RoleRelated, true},
		{"missing title blocks trailer", 2, columns.RoleTrailer, false},
		{"missing title blocks related", 2, columns.RoleRelated, false},
		{"missing director allows trailer", 3, columns.RoleTrailer, true},
		{"missing director blocks related", 3, columns.RoleRelated, false},
		{"whitespace cell counts as blank", 4, columns.RoleTrailer, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := enrich.Eligible(doc, binding, tc.row, tc.role); got != tc.want {
				t.Fatalf("Eligible(row %d, %s) = %v, want %v", tc.row, tc.role, got, tc.want)
			}
		})
	}
}

func TestEligibleUnboundRole(t *testing.T) {
	doc, err := tabular.Load("Title,Director,Year\nDune,Denis Villeneuve,2021\n", ',')
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	binding, err := columns.Classify(doc.Columns())
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if enrich.Eligible(doc, binding, 0, columns.RoleTrailer) {
		t.Fatal("expected unbound trailer role to be ineligible")
	}
	if enrich.Eligible(doc, binding, 0, columns.RoleRelated) {
		t.Fatal("expected unbound related role to be ineligible")
	}
}
