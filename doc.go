// Package dossier renders HTML dossier documents for field agents from
// tabular roster data.
//
// # Quick Start
//
// Load records, create a service, and generate one document per agent:
//
//	tmpl, err := dossier.ResolveTemplate("default")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	loaded, err := dossier.LoadRecords("roster.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc := dossier.New(
//	    dossier.WithTemplate(tmpl),
//	    dossier.WithPhotoDir("photos"),
//	)
//
//	for _, rec := range loaded.Records {
//	    result, err := svc.Generate(ctx, rec)
//	    if err != nil {
//	        log.Printf("%s: %v", rec.Name, err)
//	        continue
//	    }
//	    name := dossier.Sanitize(rec.Name) + ".html"
//	    os.WriteFile(filepath.Join("dossiers", name), result.HTML, 0o644)
//	}
//
// # Pipeline
//
// Each record flows through these stages:
//
//  1. Record loading and validation (CSV or XLSX, typed AgentRecord)
//  2. Photo normalization (center crop to 3:4, resize to 150x200, inline
//     base64 data URI)
//  3. Optional Markdown rendering of narrative fields via Goldmark
//  4. Placeholder substitution into the HTML template
//
// # Templates
//
// Templates are plain HTML containing {token} placeholders such as {name},
// {photo}, and {timestamp}. Recognized tokens are substituted with field
// values; unrecognized tokens are left verbatim. Substitution is raw: field
// values are NOT HTML-escaped. Do not feed untrusted roster data to the
// renderer; alternatively, enable Markdown field rendering, which escapes
// raw HTML in narrative field values.
//
// A built-in template ships embedded; override it with ResolveTemplate and a
// file path.
//
// # Photos
//
// Photos are looked up as <photos-dir>/<Sanitized_Name>.jpg. A missing or
// undecodable photo is not an error at the batch level: the document is
// rendered with a pending-photo placeholder instead.
package dossier
