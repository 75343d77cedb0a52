package folio

import (
	"io/fs"
	"time"

	"github.com/eringen/folio/i18n"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/folio.db")

	AdminPassword     string // Plain admin password; ignored when AdminPasswordHash is set
	AdminPasswordHash string // bcrypt hash of the admin password
	SessionSecret     string // Required: session encryption secret
	CookieSecure      bool   // Set true for HTTPS

	FeaturedCount      int           // Projects on the home page (default 4)
	PreviewInterval    time.Duration // Card preview rotation (default 2s)
	PreviewMaxDuration time.Duration // Cap on one preview stream (default 2m)
	LogLevel           string        // debug, info, warn, error, off (default "info")

	SMTP      SMTPConfig
	ContactTo string // Recipient of contact notifications (default: profile email)
}

// SMTPConfig configures outgoing contact notifications. An empty Host
// disables mail.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/folio.db"
	}
	if c.FeaturedCount <= 0 {
		c.FeaturedCount = 4
	}
	if c.PreviewInterval <= 0 {
		c.PreviewInterval = 2 * time.Second
	}
	if c.PreviewMaxDuration <= 0 {
		c.PreviewMaxDuration = 2 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir serves /public from dir instead of the embedded assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithContent loads projects.yaml and developer.yaml from fsys instead of
// the bundled content.
func WithContent(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}

// WithBundle replaces the bundled translation tables.
func WithBundle(b *i18n.Bundle) Option {
	return func(a *App) {
		a.Bundle = b
	}
}

// WithNotifier sets the contact notifier. Without it an SMTP notifier is
// built from SiteConfig.SMTP when a host is configured.
func WithNotifier(n Notifier) Option {
	return func(a *App) {
		a.notifier = n
	}
}
