package dossier

import (
	"fmt"
	"strings"
	"time"
)

// TimestampFormat is the generation timestamp layout substituted for
// {timestamp}.
const TimestampFormat = "2006-01-02 15:04:05"

// Placeholder text for fields with no value.
const (
	MissingFieldText      = "[DATA NOT PROVIDED]"
	MissingAnomalyText    = "[ANOMALY TYPE]"
	MissingRealityText    = "[REALITY LEVEL]"
	MissingCompetencyText = "[COMPETENCY LEVEL]"

	// PhotoPendingHTML replaces {photo} when no usable photo exists.
	PhotoPendingHTML = "PHOTO<br>[PENDING]"
)

// photoIMGFormat wraps a data URI in the markup the template slot expects.
const photoIMGFormat = `<img src="%s" alt="Agent Photo" style="width: 150px; height: 200px; object-fit: cover;">`

// Render substitutes record fields into the template and returns the final
// document text.
//
// Every recognized {token} is replaced in a single pass; tokens the renderer
// does not know are left verbatim. Optional fields with no value resolve to
// their placeholder text. photoURI is the inline data URI from LoadPhoto, or
// empty to render the pending-photo markup. The timestamp is fixed at now
// for the whole document.
//
// Substitution is raw: values are not HTML-escaped.
func Render(template string, rec AgentRecord, photoURI string, now time.Time) string {
	photoHTML := PhotoPendingHTML
	if photoURI != "" {
		photoHTML = fmt.Sprintf(photoIMGFormat, photoURI)
	}

	replacer := strings.NewReplacer(
		"{name}", orDefault(rec.Name, MissingFieldText),
		"{looks}", orDefault(rec.Looks, MissingFieldText),
		"{anomaly}", orDefault(rec.Anomaly, MissingAnomalyText),
		"{reality}", orDefault(rec.Reality, MissingRealityText),
		"{competency}", orDefault(rec.Competency, MissingCompetencyText),
		"{anomaly_contact}", orDefault(rec.AnomalyContact, MissingFieldText),
		"{agency_contact}", orDefault(rec.AgencyContact, MissingFieldText),
		"{power_visual}", orDefault(rec.PowerVisual, MissingFieldText),
		"{annual_salary}", orDefault(rec.AnnualSalary, MissingFieldText),
		"{coffee}", orDefault(rec.Coffee, MissingFieldText),
		"{collaboration}", orDefault(rec.Collaboration, MissingFieldText),
		"{work_experience}", orDefault(rec.WorkExperience, MissingFieldText),
		"{primary_contact}", orDefault(rec.PrimaryContact, MissingFieldText),
		"{first_connection}", orDefault(rec.FirstConnection, MissingFieldText),
		"{second_connection}", orDefault(rec.SecondConnection, MissingFieldText),
		"{third_connection}", orDefault(rec.ThirdConnection, MissingFieldText),
		"{timestamp}", now.Format(TimestampFormat),
		"{photo}", photoHTML,
	)

	return replacer.Replace(template)
}

// orDefault returns value, or fallback if value is blank.
func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
