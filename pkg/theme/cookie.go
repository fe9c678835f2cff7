package theme

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CookieMaxAge is how long a written cookie stays valid: one year.
const CookieMaxAge = 60 * 60 * 24 * 365

// CookieName is the cookie the theme is mirrored into.
const CookieName = "theme"

// Cookie mirrors the theme into a small Set-Cookie formatted file so the next
// start can pick it up before anything else is loaded.
type Cookie struct {
	Path string
	Now  func() time.Time
}

// NewCookie returns a cookie stored at dir/theme.cookie.
func NewCookie(dir string) *Cookie {
	return &Cookie{Path: filepath.Join(dir, "theme.cookie"), Now: time.Now}
}

func (c *Cookie) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Read returns the mirrored theme. Missing, malformed and expired cookies
// read as absent.
func (c *Cookie) Read() (Theme, bool) {
	b, err := os.ReadFile(c.Path)
	if err != nil {
		return "", false
	}
	ck, err := http.ParseSetCookie(strings.TrimSpace(string(b)))
	if err != nil || ck.Name != CookieName {
		return "", false
	}
	if !ck.Expires.IsZero() && !c.now().Before(ck.Expires) {
		return "", false
	}
	return Parse(ck.Value)
}

// Write stores t with a fresh one year expiry.
func (c *Cookie) Write(t Theme) error {
	ck := &http.Cookie{
		Name:    CookieName,
		Value:   string(t),
		Path:    "/",
		MaxAge:  CookieMaxAge,
		Expires: c.now().Add(CookieMaxAge * time.Second).UTC(),
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return fmt.Errorf("theme: cookie dir: %w", err)
	}
	if err := os.WriteFile(c.Path, []byte(ck.String()+"\n"), 0o644); err != nil {
		return fmt.Errorf("theme: write cookie: %w", err)
	}
	return nil
}
