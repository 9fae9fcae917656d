package dossier

import (
	"fmt"
	"strings"

	"github.com/alnah/go-dossier/internal/tabular"
)

// Cells of exactly this length usually mean the source spreadsheet was saved
// as .xls, which truncates cells at 256 characters.
const xlsCellLimit = 256

// Column names matched exactly (case-sensitive) against the input header.
var (
	optionalColumns = []string{"Anomaly", "Reality", "Competency"}
	allColumns      = append(append([]string{}, requiredColumns...), optionalColumns...)
)

var requiredColumns = []string{
	"Name",
	"Looks",
	"Anomaly_Contact",
	"Agency_Contact",
	"Power_Visual",
	"Annual_Salary",
	"Coffee",
	"Collaboration",
	"Work_Experience",
	"Primary_Contact",
	"First_Connection",
	"Second_Connection",
	"Third_Connection",
}

// AgentRecord is one agent's roster row, validated once at load time.
// Required fields must be non-blank; optional fields may be empty and
// resolve to placeholder text at render time.
type AgentRecord struct {
	// Row is the 1-based data row this record came from (header excluded).
	// Set by ParseTable; used only for diagnostics.
	Row int

	Name             string
	Looks            string
	AnomalyContact   string
	AgencyContact    string
	PowerVisual      string
	AnnualSalary     string
	Coffee           string
	Collaboration    string
	WorkExperience   string
	PrimaryContact   string
	FirstConnection  string
	SecondConnection string
	ThirdConnection  string

	// Optional fields.
	Anomaly    string
	Reality    string
	Competency string
}

// fieldTargets maps input column names to their struct destinations.
func (r *AgentRecord) fieldTargets() map[string]*string {
	return map[string]*string{
		"Name":              &r.Name,
		"Looks":             &r.Looks,
		"Anomaly_Contact":   &r.AnomalyContact,
		"Agency_Contact":    &r.AgencyContact,
		"Power_Visual":      &r.PowerVisual,
		"Annual_Salary":     &r.AnnualSalary,
		"Coffee":            &r.Coffee,
		"Collaboration":     &r.Collaboration,
		"Work_Experience":   &r.WorkExperience,
		"Primary_Contact":   &r.PrimaryContact,
		"First_Connection":  &r.FirstConnection,
		"Second_Connection": &r.SecondConnection,
		"Third_Connection":  &r.ThirdConnection,
		"Anomaly":           &r.Anomaly,
		"Reality":           &r.Reality,
		"Competency":        &r.Competency,
	}
}

// missingRequired returns the required column names that are blank,
// in canonical column order.
func (r *AgentRecord) missingRequired() []string {
	targets := r.fieldTargets()
	var missing []string
	for _, col := range requiredColumns {
		if strings.TrimSpace(*targets[col]) == "" {
			missing = append(missing, col)
		}
	}
	return missing
}

// Validate checks that all required fields are present and non-blank.
// The error names every missing field and matches ErrMissingField via
// errors.Is.
func (r *AgentRecord) Validate() error {
	missing := r.missingRequired()
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
}

// InvalidRecord describes a row rejected at load time.
type InvalidRecord struct {
	Row     int      // 1-based data row number (header excluded)
	Name    string   // best-effort agent name for diagnostics, may be empty
	Missing []string // required columns missing or blank
}

// Reason returns a human-readable rejection reason, e.g. "missing Coffee".
func (ir InvalidRecord) Reason() string {
	return "missing " + strings.Join(ir.Missing, ", ")
}

// LoadResult holds valid records, rejected rows, and loader warnings.
// Row order is preserved across Records and Invalid.
type LoadResult struct {
	Records  []AgentRecord
	Invalid  []InvalidRecord
	Warnings []string
}

// LoadRecords reads a tabular file (CSV or XLSX by extension) into typed
// agent records. Rows failing required-field validation are collected in
// Invalid rather than aborting the load.
func LoadRecords(path string) (*LoadResult, error) {
	table, err := tabular.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return ParseTable(table), nil
}

// ParseTable converts a raw table into typed records, validating each row.
func ParseTable(t *tabular.Table) *LoadResult {
	colIndex := make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		colIndex[name] = i
	}

	result := &LoadResult{}
	for i, row := range t.Rows {
		rowNum := i + 1

		rec := AgentRecord{Row: rowNum}
		targets := rec.fieldTargets()
		for _, col := range allColumns {
			idx, ok := colIndex[col]
			if !ok || idx >= len(row) {
				continue
			}
			*targets[col] = row[idx]
			if len(row[idx]) == xlsCellLimit {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"row %d: field %q is exactly %d characters; value may be truncated",
					rowNum, col, xlsCellLimit))
			}
		}

		if missing := rec.missingRequired(); len(missing) > 0 {
			result.Invalid = append(result.Invalid, InvalidRecord{
				Row:     rowNum,
				Name:    rec.Name,
				Missing: missing,
			})
			continue
		}

		result.Records = append(result.Records, rec)
	}
	return result
}
