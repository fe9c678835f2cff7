package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/logging"
	"tableflip.dev/allergy/pkg/theme"
)

// Default capture parameters. The viewport only needs to fit #screen.
const (
	DefaultWidth   = 880
	DefaultHeight  = 1000
	DefaultTimeout = 30 * time.Second
	DefaultQuality = 92

	// ScreenSelector is the root element captured into the image.
	ScreenSelector = `#screen[data-ready="true"]`
)

// FileName is the name an exported month is saved under.
func FileName(month time.Month) string {
	return fmt.Sprintf("alergia-captura-%s.jpg", day.MonthName(month))
}

// CaptureFunc turns a rendered page into a PNG of its root screen element.
type CaptureFunc func(ctx context.Context, page []byte) ([]byte, error)

// Exporter writes month images.
type Exporter struct {
	// Dir is where images are written; the working directory when empty.
	Dir     string
	Palette theme.Palette

	Width   int
	Height  int
	Timeout time.Duration
	Quality int

	// Capture defaults to a headless Chromium screenshot.
	Capture CaptureFunc
}

// Month renders the month, captures it and writes the JPEG. It returns the
// path written.
func (e *Exporter) Month(ctx context.Context, src MonthSource, year int, month time.Month) (string, error) {
	var page bytes.Buffer
	if err := RenderMonth(&page, src, year, month, e.Palette); err != nil {
		return "", err
	}

	capture := e.Capture
	if capture == nil {
		capture = e.chromium
	}
	png, err := capture(ctx, page.Bytes())
	if err != nil {
		return "", err
	}

	quality := e.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}
	jpg, err := ToJPEG(png, quality)
	if err != nil {
		return "", err
	}

	out := filepath.Join(e.Dir, FileName(month))
	if err := os.WriteFile(out, jpg, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", out, err)
	}
	logging.Info("exported month", "path", out, "bytes", len(jpg))
	return out, nil
}

// chromium loads the page from a temporary file in headless Chromium and
// screenshots the screen element.
func (e *Exporter) chromium(parent context.Context, page []byte) ([]byte, error) {
	width, height, timeout := e.Width, e.Height, e.Timeout
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	dir, err := os.MkdirTemp("", "allergy-export-")
	if err != nil {
		return nil, fmt.Errorf("export: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, page, 0o600); err != nil {
		return nil, fmt.Errorf("export: write page: %w", err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}

	ctx, cancel := chromedp.NewContext(parent)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, timeout)
	defer timeoutCancel()

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(u.String()),
		chromedp.WaitVisible(ScreenSelector, chromedp.ByQuery),
		chromedp.Screenshot(ScreenSelector, &png, chromedp.NodeVisible, chromedp.ByQuery),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("export: chromedp run failed: %w", err)
	}
	return png, nil
}

// ToJPEG re-encodes a PNG screenshot.
func ToJPEG(png []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(png))
	if err != nil {
		return nil, fmt.Errorf("export: decode screenshot: %w", err)
	}
	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("export: encode jpeg: %w", err)
	}
	return out.Bytes(), nil
}
