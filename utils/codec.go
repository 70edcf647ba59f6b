// Package utils is the image I/O side of skinresolver: it fetches and
// decodes skin atlases, writes results, and extracts color palettes.
package utils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	sr "github.com/setanarut/skinresolver"
)

// MaxSkinBytes caps the size of a downloaded skin.
const MaxSkinBytes = 4 << 20

// HTTPClient is used by LoadURL.
var HTTPClient = &http.Client{Timeout: 30 * time.Second}

// LoadBytes decodes an in-memory image.
func LoadBytes(b []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode skin: %w", err)
	}
	return img, nil
}

// LoadFile reads and decodes the image at path. A missing or unreadable
// file yields an error matching both sr.ErrSourceNotFound and the
// underlying fs error.
func LoadFile(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", path, sr.ErrSourceNotFound, err)
	}
	return LoadBytes(b)
}

// LoadURL downloads and decodes the image at rawURL.
func LoadURL(ctx context.Context, rawURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	resp, err := HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w: %w", rawURL, sr.ErrSourceNotFound, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: %s: %w", rawURL, resp.Status, sr.ErrSourceNotFound)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxSkinBytes))
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	return LoadBytes(b)
}

// Load dispatches to LoadURL for http(s) sources and LoadFile otherwise.
func Load(ctx context.Context, src string) (image.Image, error) {
	if isURL(src) {
		return LoadURL(ctx, src)
	}
	return LoadFile(src)
}

// isURL reports whether s is an absolute http(s) URL. url.Parse lowercases
// the scheme.
func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
