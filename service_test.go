package dossier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func testClock() func() time.Time {
	fixed := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	return func() time.Time { return fixed }
}

func TestServiceGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestJPEG(t, dir, "Alice Chen", 300, 300)

	svc := New(
		WithTemplate("<p>{name}</p>{photo}<p>{timestamp}</p>"),
		WithPhotoDir(dir),
		WithNow(testClock()),
	)

	result, err := svc.Generate(context.Background(), fullRecord())
	if err != nil {
		t.Fatalf("Generate unexpected error: %v", err)
	}

	html := string(result.HTML)
	if !strings.Contains(html, "Alice Chen") {
		t.Error("output missing agent name")
	}
	if !strings.Contains(html, "data:image/jpeg;base64,") {
		t.Error("output missing inline photo data")
	}
	if !strings.Contains(html, "2024-03-15 10:30:00") {
		t.Error("output missing generation timestamp")
	}
	if !result.PhotoFound {
		t.Error("PhotoFound = false, want true")
	}
}

func TestServiceGenerateMissingPhoto(t *testing.T) {
	t.Parallel()

	svc := New(
		WithTemplate("{photo}"),
		WithPhotoDir(t.TempDir()),
		WithNow(testClock()),
	)

	result, err := svc.Generate(context.Background(), fullRecord())
	if err != nil {
		t.Fatalf("Generate unexpected error: %v", err)
	}

	if result.PhotoFound {
		t.Error("PhotoFound = true, want false")
	}
	if !errors.Is(result.PhotoErr, ErrPhotoNotFound) {
		t.Errorf("PhotoErr = %v, want ErrPhotoNotFound", result.PhotoErr)
	}
	if !strings.Contains(string(result.HTML), PhotoPendingHTML) {
		t.Error("output missing pending-photo placeholder")
	}
}

func TestServiceGenerateEmptyTemplate(t *testing.T) {
	t.Parallel()

	svc := New(WithPhotoDir(t.TempDir()))

	_, err := svc.Generate(context.Background(), fullRecord())
	if !errors.Is(err, ErrEmptyTemplate) {
		t.Errorf("Generate error = %v, want ErrEmptyTemplate", err)
	}
}

func TestServiceGenerateInvalidRecord(t *testing.T) {
	t.Parallel()

	svc := New(
		WithTemplate("{name}"),
		WithPhotoDir(t.TempDir()),
	)

	rec := fullRecord()
	rec.Coffee = ""

	_, err := svc.Generate(context.Background(), rec)
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("Generate error = %v, want ErrMissingField", err)
	}
}

func TestServiceGenerateCanceledContext(t *testing.T) {
	t.Parallel()

	svc := New(
		WithTemplate("{name}"),
		WithPhotoDir(t.TempDir()),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, fullRecord())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate error = %v, want context.Canceled", err)
	}
}

func TestServiceGenerateMarkdownFields(t *testing.T) {
	t.Parallel()

	svc := New(
		WithTemplate("{work_experience}|{name}"),
		WithPhotoDir(t.TempDir()),
		WithMarkdownFields(),
		WithNow(testClock()),
	)

	rec := fullRecord()
	rec.WorkExperience = "**ten years** of filing"

	result, err := svc.Generate(context.Background(), rec)
	if err != nil {
		t.Fatalf("Generate unexpected error: %v", err)
	}

	html := string(result.HTML)
	if !strings.Contains(html, "<strong>ten years</strong>") {
		t.Errorf("markdown not rendered: %q", html)
	}
	// Name is not a narrative field and must stay untouched.
	if !strings.Contains(html, "Alice Chen") {
		t.Errorf("name field altered: %q", html)
	}
}

func TestWithNowNilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithNow(nil) did not panic")
		}
	}()
	WithNow(nil)
}
