package dossier

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/alnah/go-dossier/internal/fileutil"
)

// Normalized photo dimensions, matching the 3:4 portrait slot in the
// default template.
const (
	PhotoWidth  = 150
	PhotoHeight = 200

	photoJPEGQuality = 85
)

// PhotoPath returns the expected photo location for an agent name:
// <dir>/<Sanitized_Name>.jpg.
func PhotoPath(dir, name string) string {
	return filepath.Join(dir, Sanitize(name)+".jpg")
}

// LoadPhoto locates, normalizes, and inlines an agent photo.
//
// The source image is center-cropped to a 3:4 aspect ratio and resized to
// exactly 150x200 pixels (Lanczos resampling, upscaling allowed), then
// re-encoded as JPEG and returned as a data:image/jpeg;base64 URI.
// When width or height differs by an odd pixel count, the extra pixel is
// trimmed from the bottom/right edge.
//
// Returns ErrPhotoNotFound if no file exists at PhotoPath(dir, name), and
// ErrPhotoDecode if the file cannot be decoded as an image. Both are
// recoverable: callers substitute a placeholder and continue.
func LoadPhoto(dir, name string) (string, error) {
	path := PhotoPath(dir, name)
	if !fileutil.FileExists(path) {
		return "", fmt.Errorf("%w: %s", ErrPhotoNotFound, path)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPhotoDecode, path, err)
	}

	// Fill crops to the target aspect ratio around the center, then resizes
	// to the exact output dimensions.
	normalized := imaging.Fill(img, PhotoWidth, PhotoHeight, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, normalized, imaging.JPEG, imaging.JPEGQuality(photoJPEGQuality)); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPhotoEncode, path, err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
