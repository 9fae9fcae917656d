package dossier

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestJPEG writes a solid-color JPEG of the given size to dir using the
// sanitized agent name convention.
func writeTestJPEG(t *testing.T, dir, agentName string, width, height int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 90, B: 60, A: 255})
		}
	}

	path := filepath.Join(dir, Sanitize(agentName)+".jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test photo: %v", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding test photo: %v", err)
	}
}

// decodeDataURI decodes a data:image/jpeg;base64 URI back into an image.
func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()

	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("data URI missing prefix: %.40q", uri)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("decoding base64 payload: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decoding JPEG payload: %v", err)
	}
	return img
}

func TestLoadPhotoNormalizesDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		width  int
		height int
	}{
		{name: "wide source cropped at sides", width: 400, height: 200},
		{name: "tall source cropped at top and bottom", width: 200, height: 400},
		{name: "square source", width: 300, height: 300},
		{name: "small source upscaled", width: 60, height: 80},
		{name: "exact aspect ratio resized only", width: 300, height: 400},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeTestJPEG(t, dir, "Alice Chen", tt.width, tt.height)

			uri, err := LoadPhoto(dir, "Alice Chen")
			if err != nil {
				t.Fatalf("LoadPhoto unexpected error: %v", err)
			}

			img := decodeDataURI(t, uri)
			bounds := img.Bounds()
			if bounds.Dx() != PhotoWidth || bounds.Dy() != PhotoHeight {
				t.Errorf("normalized photo is %dx%d, want %dx%d",
					bounds.Dx(), bounds.Dy(), PhotoWidth, PhotoHeight)
			}
		})
	}
}

func TestLoadPhotoMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadPhoto(t.TempDir(), "Nobody Here")
	if !errors.Is(err, ErrPhotoNotFound) {
		t.Errorf("LoadPhoto error = %v, want ErrPhotoNotFound", err)
	}
}

func TestLoadPhotoUndecodableFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, Sanitize("Bad Photo")+".jpg")
	if err := os.WriteFile(path, []byte("not a jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadPhoto(dir, "Bad Photo")
	if !errors.Is(err, ErrPhotoDecode) {
		t.Errorf("LoadPhoto error = %v, want ErrPhotoDecode", err)
	}
}

func TestPhotoPath(t *testing.T) {
	t.Parallel()

	got := PhotoPath("photos", "Alice Chen")
	want := filepath.Join("photos", "Alice_Chen.jpg")
	if got != want {
		t.Errorf("PhotoPath = %q, want %q", got, want)
	}
}
