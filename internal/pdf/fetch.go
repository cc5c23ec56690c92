package pdf

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"
)

// Image payloads are capped; anything larger is treated as unusable.
const maxImageBytes = 5 << 20

var fetchClient = &http.Client{Timeout: 10 * time.Second}

// FetchImage pulls image bytes for embedding. Any failure returns nil so the
// document degrades to its placeholder instead of failing outright.
func FetchImage(url string) []byte {
	if url == "" {
		return nil
	}
	resp, err := fetchClient.Get(url)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil
	}
	if len(b) > maxImageBytes {
		return nil
	}
	return b
}

// imageType maps sniffed content to the format names the painter understands.
// Empty means "don't embed"; the caller falls back to the placeholder.
func imageType(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var t string
	switch http.DetectContentType(b) {
	case "image/png":
		t = "PNG"
	case "image/jpeg":
		t = "JPG"
	case "image/gif":
		t = "GIF"
	default:
		return ""
	}
	// A payload with a valid magic header can still be truncated or corrupt,
	// and the painter fails the whole document on those. Decode first.
	if _, _, err := image.Decode(bytes.NewReader(b)); err != nil {
		return ""
	}
	return t
}
