package dossier

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-dossier/internal/tabular"
)

// rosterHeader is the full column set in canonical order.
var rosterHeader = []string{
	"Name", "Looks", "Anomaly_Contact", "Agency_Contact", "Power_Visual",
	"Annual_Salary", "Coffee", "Collaboration", "Work_Experience",
	"Primary_Contact", "First_Connection", "Second_Connection",
	"Third_Connection", "Anomaly", "Reality", "Competency",
}

// rosterRow returns a fully populated row; overrides patch columns by name.
func rosterRow(t *testing.T, overrides map[string]string) []string {
	t.Helper()

	values := map[string]string{
		"Name":              "Alice Chen",
		"Looks":             "tall",
		"Anomaly_Contact":   "flood",
		"Agency_Contact":    "mail",
		"Power_Visual":      "shadows",
		"Annual_Salary":     "$48,000",
		"Coffee":            "black",
		"Collaboration":     "alone",
		"Work_Experience":   "adjuster",
		"Primary_Contact":   "Handler Nine",
		"First_Connection":  "Bob",
		"Second_Connection": "Carol",
		"Third_Connection":  "Dave",
		"Anomaly":           "A-3",
		"Reality":           "R-2",
		"Competency":        "C-5",
	}
	for col, v := range overrides {
		if _, ok := values[col]; !ok {
			t.Fatalf("unknown column override %q", col)
		}
		values[col] = v
	}

	row := make([]string, len(rosterHeader))
	for i, col := range rosterHeader {
		row[i] = values[col]
	}
	return row
}

func TestParseTableValidRow(t *testing.T) {
	t.Parallel()

	table := &tabular.Table{
		Header: rosterHeader,
		Rows:   [][]string{rosterRow(t, nil)},
	}

	result := ParseTable(table)

	if len(result.Invalid) != 0 {
		t.Fatalf("unexpected invalid records: %+v", result.Invalid)
	}
	if len(result.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(result.Records))
	}

	rec := result.Records[0]
	if rec.Name != "Alice Chen" {
		t.Errorf("Name = %q, want %q", rec.Name, "Alice Chen")
	}
	if rec.Coffee != "black" {
		t.Errorf("Coffee = %q, want %q", rec.Coffee, "black")
	}
	if rec.Competency != "C-5" {
		t.Errorf("Competency = %q, want %q", rec.Competency, "C-5")
	}
	if rec.Row != 1 {
		t.Errorf("Row = %d, want 1", rec.Row)
	}
}

func TestParseTableMissingRequiredField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		overrides   map[string]string
		wantMissing []string
	}{
		{
			name:        "missing Coffee",
			overrides:   map[string]string{"Coffee": ""},
			wantMissing: []string{"Coffee"},
		},
		{
			name:        "blank is missing",
			overrides:   map[string]string{"Looks": "   "},
			wantMissing: []string{"Looks"},
		},
		{
			name:        "multiple missing reported in column order",
			overrides:   map[string]string{"Coffee": "", "Looks": ""},
			wantMissing: []string{"Looks", "Coffee"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := &tabular.Table{
				Header: rosterHeader,
				Rows:   [][]string{rosterRow(t, tt.overrides)},
			}

			result := ParseTable(table)

			if len(result.Records) != 0 {
				t.Fatalf("invalid row was accepted: %+v", result.Records)
			}
			if len(result.Invalid) != 1 {
				t.Fatalf("got %d invalid records, want 1", len(result.Invalid))
			}

			inv := result.Invalid[0]
			if len(inv.Missing) != len(tt.wantMissing) {
				t.Fatalf("Missing = %v, want %v", inv.Missing, tt.wantMissing)
			}
			for i, col := range tt.wantMissing {
				if inv.Missing[i] != col {
					t.Errorf("Missing[%d] = %q, want %q", i, inv.Missing[i], col)
				}
			}
			if !strings.HasPrefix(inv.Reason(), "missing ") {
				t.Errorf("Reason = %q, want missing-prefixed reason", inv.Reason())
			}
		})
	}
}

func TestParseTableOptionalFieldsMayBeAbsent(t *testing.T) {
	t.Parallel()

	// Header without the optional columns at all.
	header := rosterHeader[:13]
	row := rosterRow(t, nil)[:13]

	result := ParseTable(&tabular.Table{Header: header, Rows: [][]string{row}})

	if len(result.Invalid) != 0 {
		t.Fatalf("row rejected despite all required fields: %+v", result.Invalid)
	}
	if got := result.Records[0].Anomaly; got != "" {
		t.Errorf("Anomaly = %q, want empty", got)
	}
}

func TestParseTablePreservesRowOrder(t *testing.T) {
	t.Parallel()

	table := &tabular.Table{
		Header: rosterHeader,
		Rows: [][]string{
			rosterRow(t, map[string]string{"Name": "First"}),
			rosterRow(t, map[string]string{"Name": "Second", "Coffee": ""}),
			rosterRow(t, map[string]string{"Name": "Third"}),
		},
	}

	result := ParseTable(table)

	if len(result.Records) != 2 || len(result.Invalid) != 1 {
		t.Fatalf("got %d records, %d invalid; want 2 and 1", len(result.Records), len(result.Invalid))
	}
	if result.Records[0].Name != "First" || result.Records[1].Name != "Third" {
		t.Errorf("record order = %q, %q; want First, Third", result.Records[0].Name, result.Records[1].Name)
	}
	if result.Invalid[0].Row != 2 || result.Invalid[0].Name != "Second" {
		t.Errorf("invalid = row %d name %q, want row 2 name Second", result.Invalid[0].Row, result.Invalid[0].Name)
	}
}

func TestParseTableTruncationWarning(t *testing.T) {
	t.Parallel()

	table := &tabular.Table{
		Header: rosterHeader,
		Rows: [][]string{
			rosterRow(t, map[string]string{"Looks": strings.Repeat("x", 256)}),
		},
	}

	result := ParseTable(table)

	if len(result.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(result.Warnings), result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "Looks") {
		t.Errorf("warning does not name the field: %q", result.Warnings[0])
	}
}

func TestValidateNamesMissingFields(t *testing.T) {
	t.Parallel()

	rec := fullRecord()
	rec.Coffee = ""

	err := rec.Validate()
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("Validate error = %v, want ErrMissingField", err)
	}
	if !strings.Contains(err.Error(), "Coffee") {
		t.Errorf("error does not name the missing field: %v", err)
	}
}

func TestValidateFullRecord(t *testing.T) {
	t.Parallel()

	rec := fullRecord()
	if err := rec.Validate(); err != nil {
		t.Errorf("Validate unexpected error: %v", err)
	}
}
