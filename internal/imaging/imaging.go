// Package imaging validates uploaded image payloads. The service stores
// the client's bytes verbatim (no re-encoding), so validation is limited
// to sniffing the real format from the bytes and checking the payload
// actually decodes as an image of that format.
package imaging

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"net/http"

	"golang.org/x/image/webp"
)

// Validate sniffs the MIME type from the payload bytes (not trusting the
// client's Content-Type header), checks it against the allow-set of
// JPEG, PNG and WebP, and verifies the image header decodes. Returns the
// detected MIME type, which is what gets stored and later served.
func Validate(data []byte) (string, error) {
	mime := http.DetectContentType(data)

	var err error
	switch mime {
	case "image/jpeg":
		_, err = jpeg.DecodeConfig(bytes.NewReader(data))
	case "image/png":
		_, err = png.DecodeConfig(bytes.NewReader(data))
	case "image/webp":
		_, err = webp.DecodeConfig(bytes.NewReader(data))
	default:
		return "", fmt.Errorf("unsupported image format %s (only JPEG, PNG and WebP accepted)", mime)
	}
	if err != nil {
		return "", fmt.Errorf("decoding %s image: %w", mime, err)
	}

	return mime, nil
}
