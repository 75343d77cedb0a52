package folio

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/i18n"
	"github.com/eringen/folio/widget"
)

func (a *App) handleHome(c echo.Context) error {
	p := a.newPage(c, "", a.Content.Profile.Introduction)
	featured := a.Content.Catalog.Featured(a.Config.FeaturedCount)
	return Render(c, a.Views.Home(p, featured))
}

func (a *App) filterBar(p Page, active string) widget.FilterBar {
	cats := a.Content.Catalog.Categories()
	ids := make([]string, len(cats))
	for i, cat := range cats {
		ids[i] = string(cat)
	}
	return widget.NewFilterBar(active, ids, p.CategoryLabel)
}

func (a *App) handlePortfolio(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		category = CategoryAll
	}
	p := a.newPage(c, "", "")
	p.Meta.Title = p.T("portfolio.title") + " | " + a.Config.Name
	p.Meta.Description = p.T("portfolio.description")

	bar := a.filterBar(p, category)
	projects := a.Content.Catalog.ByCategory(bar.Active())
	if isPartial(c) {
		return Render(c, a.Views.ProjectGrid(p, bar, projects))
	}
	return Render(c, a.Views.Portfolio(p, bar, projects))
}

type snapRequest struct {
	Active string        `json:"active"`
	Center widget.Point  `json:"center"`
	Pills  []widget.Rect `json:"pills"`
}

// handleSnap resolves a released drag of the filter indicator to the nearest
// pill and returns the grid for that category. An incomplete measurement
// keeps the current category.
func (a *App) handleSnap(c echo.Context) error {
	var req snapRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid snap request")
	}
	p := a.newPage(c, "", "")
	bar := a.filterBar(p, req.Active)
	category, _ := bar.Snap(req.Center, req.Pills)

	c.Response().Header().Set("X-Category", category)
	c.Response().Header().Set("HX-Push-Url", "/portfolio/?category="+category)
	return Render(c, a.Views.ProjectGrid(p, bar, a.Content.Catalog.ByCategory(category)))
}

func (a *App) handleProject(c echo.Context) error {
	slug := c.Param("slug")
	project, ok := a.Content.Catalog.BySlug(slug)
	if !ok {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.newPage(c, "", "")))
	}
	if !isBot(c.Request().UserAgent()) {
		if err := a.Store.RecordView(slug); err != nil {
			c.Logger().Warnf("record view %s: %v", slug, err)
		}
	}
	p := a.newPage(c, "", "")
	p.Meta.Title = project.TitleIn(p.Lang) + " | " + a.Config.Name
	p.Meta.Description = project.DescriptionIn(p.Lang)
	p.Meta.Image = project.CoverImage
	return Render(c, a.Views.Project(p, project))
}

func (a *App) handleAbout(c echo.Context) error {
	p := a.newPage(c, "", a.Content.Profile.Lead())
	p.Meta.Title = p.T("about.title") + " | " + a.Config.Name
	return Render(c, a.Views.About(p))
}

var botMarkers = []string{"bot", "crawler", "spider", "slurp", "curl", "wget", "headless"}

func isBot(ua string) bool {
	if ua == "" {
		return true
	}
	ua = strings.ToLower(ua)
	for _, m := range botMarkers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}

func (a *App) handleSetLanguage(c echo.Context) error {
	if lang, ok := i18n.Parse(c.FormValue("lang")); ok {
		if err := savePreference(c, "lang", lang.String(), a.Config.CookieSecure); err != nil {
			return err
		}
	}
	return c.Redirect(http.StatusSeeOther, backTo(c))
}

func (a *App) handleSetTheme(c echo.Context) error {
	theme, ok := ParseTheme(c.FormValue("theme"))
	if !ok {
		_, current := a.preferences(c)
		theme = current.Toggle()
	}
	if err := savePreference(c, "theme", string(theme), a.Config.CookieSecure); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, backTo(c))
}

// backTo returns the page a preference form was posted from.
func backTo(c echo.Context) string {
	if next := c.FormValue("next"); next != "" {
		return safeRedirect(next, "/")
	}
	return safeRedirect(c.Request().Referer(), "/")
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Content.Catalog.All())
}

func (a *App) handleFeed(c echo.Context) error {
	lang, _ := a.preferences(c)
	if l, ok := i18n.Parse(c.QueryParam("lang")); ok {
		lang = l
	}
	return a.renderRSS(c, a.Content.Catalog.All(), lang)
}

func (a *App) handleFavicon(c echo.Context) error {
	if a.staticDir != "" {
		return c.File(a.staticDir + "/favicon.svg")
	}
	data, err := fs.ReadFile(EmbeddedAssets, "public/favicon.svg")
	if err != nil {
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nDisallow: /admin/\nDisallow: /api/\nDisallow: /preview/\n\nSitemap: " +
		strings.TrimRight(a.Config.URL, "/") + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && !strings.HasPrefix(c.Request().URL.Path, "/api/") {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.newPage(c, "", "")))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		if !strings.HasPrefix(c.Request().URL.Path, "/api/") {
			_ = RenderStatus(c, code, a.Views.ServerError(a.newPage(c, "", "")))
			return
		}
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
