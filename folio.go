// Package folio is a bilingual developer portfolio site built with Go, Echo,
// and templ. It serves a project catalog, an about page and a contact form,
// with an admin dashboard for contact messages and project view counts.
//
// Callers provide the page templates via the ViewFuncs struct; folio owns the
// handlers, middleware, content loading, localization and storage.
package folio

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/eringen/folio/i18n"
	"github.com/eringen/folio/widget"
)

// ViewFuncs holds the templ components the framework calls when rendering
// pages. Every component receives the per-request Page, which carries the
// single Localizer the whole response is rendered with.
type ViewFuncs struct {
	Home           func(p Page, featured []Project) templ.Component
	Portfolio      func(p Page, bar widget.FilterBar, projects []Project) templ.Component
	ProjectGrid    func(p Page, bar widget.FilterBar, projects []Project) templ.Component
	Project        func(p Page, project Project) templ.Component
	About          func(p Page) templ.Component
	Contact        func(p Page, form ContactForm) templ.Component
	ContactForm    func(p Page, form ContactForm) templ.Component
	AdminLogin     func(p Page, showError bool) templ.Component
	AdminDashboard func(p Page, dash Dashboard) templ.Component
	NotFound       func(p Page) templ.Component
	ServerError    func(p Page) templ.Component
}

// App is the central folio application. It wires together the content,
// translations, store, handlers, middleware, and page templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Content Content
	Bundle  *i18n.Bundle
	Views   ViewFuncs

	loginLimiter   *RateLimiter
	contactLimiter *RateLimiter
	notifier       Notifier
	customRoutes   []func(*App)
	staticDir      string
	contentFS      fs.FS
	initialized    bool
	closing        chan struct{}
	closeOnce      sync.Once
}

// New creates a folio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:  cfg,
		Echo:    echo.New(),
		Views:   views,
		closing: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init validates the configuration, loads content and translations, opens
// the store, and registers middleware and routes. Start calls it; tests call
// it directly and drive a.Echo with httptest.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if a.Config.AdminPassword == "" && a.Config.AdminPasswordHash == "" {
		return fmt.Errorf("folio: AdminPassword or AdminPasswordHash is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	a.Echo.Logger.SetLevel(ParseLogLevel(a.Config.LogLevel))

	if a.contentFS == nil {
		a.contentFS = DefaultContentFS()
	}
	content, err := LoadContent(a.contentFS)
	if err != nil {
		return err
	}
	a.Content = content

	if a.Bundle == nil {
		b, err := i18n.DefaultBundle()
		if err != nil {
			return fmt.Errorf("folio: load translations: %w", err)
		}
		a.Bundle = b
	}
	for lang, keys := range a.Bundle.Missing() {
		a.Echo.Logger.Warnf("translations: %s is missing %d keys: %s", lang, len(keys), strings.Join(keys, ", "))
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store

	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.contactLimiter = NewRateLimiter(5, 10*time.Minute)

	if a.notifier == nil {
		a.notifier = newNotifier(a.Config, a.Content.Profile)
	}

	a.Echo.Validator = newFormValidator()

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

// Start initializes the app and serves until Shutdown is called.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully, closing open preview streams.
func (a *App) Shutdown(ctx context.Context) error {
	a.closeOnce.Do(func() { close(a.closing) })
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Static assets: embedded unless a directory was configured.
	if a.staticDir != "" {
		e.Static("/public", a.staticDir)
	} else {
		assets, _ := fs.Sub(EmbeddedAssets, "public")
		e.StaticFS("/public", assets)
	}
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Pages
	e.GET("/", a.handleHome)
	e.GET("/portfolio/", a.handlePortfolio)
	e.POST("/portfolio/snap/", a.handleSnap)
	e.GET("/project/:slug/", a.handleProject)
	e.GET("/about/", a.handleAbout)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)

	// Preferences
	e.POST("/prefs/language/", a.handleSetLanguage)
	e.POST("/prefs/theme/", a.handleSetTheme)

	// Live card preview
	e.GET("/preview/:slug", a.handlePreview)

	// JSON API
	api := e.Group("/api")
	api.GET("/health", a.handleHealth)
	api.GET("/projects", a.handleAPIProjects)
	api.GET("/projects/:slug", a.handleAPIProject)

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	admin := e.Group("/admin", a.requireAdmin)
	admin.POST("/messages/:id/read/", a.handleAdminMarkRead)
	admin.DELETE("/messages/:id/", a.handleAdminDelete)

	// Anything else renders the localized not-found page.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.ErrNotFound
	})
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.contactLimiter != nil {
		a.contactLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// ParseLogLevel maps a level name to the Echo logger level. Unknown names
// map to INFO.
func ParseLogLevel(s string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
