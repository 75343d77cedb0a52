package folio

import (
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/i18n"
)

// Page is the per-request view context. It is built once per response with
// one Localizer, so a rendered page never mixes languages.
type Page struct {
	SiteName  string
	SiteURL   string
	Path      string
	Lang      i18n.Language
	Theme     Theme
	Languages []i18n.Language
	CSRF      string
	Meta      PageMeta
	Profile   DeveloperProfile
	Admin     bool

	loc *i18n.Localizer
}

// T returns the translation of key in the page language.
func (p Page) T(key string) string {
	if p.loc == nil {
		return key
	}
	return p.loc.T(key)
}

// Tf formats the translation of key with args.
func (p Page) Tf(key string, args ...any) string {
	if p.loc == nil {
		return key
	}
	return p.loc.Tf(key, args...)
}

// Title returns the project title in the page language.
func (p Page) Title(pr Project) string { return pr.TitleIn(p.Lang) }

// Description returns the project description in the page language.
func (p Page) Description(pr Project) string { return pr.DescriptionIn(p.Lang) }

// CategoryLabel returns the localized name of a category id, including "all".
func (p Page) CategoryLabel(id string) string {
	return p.T("category." + id)
}

// IsActive reports whether path is the current section, for nav highlighting.
func (p Page) IsActive(path string) bool {
	if path == "/" {
		return p.Path == "/"
	}
	return len(p.Path) >= len(path) && p.Path[:len(path)] == path
}

// newPage builds the view context for c from the visitor's preferences.
func (a *App) newPage(c echo.Context, title, description string) Page {
	lang, theme := a.preferences(c)
	loc := a.Bundle.Localizer(lang)
	path := c.Request().URL.Path
	if title == "" {
		title = a.Config.Name
	} else {
		title = title + " | " + a.Config.Name
	}
	if description == "" {
		description = a.Config.Description
	}
	return Page{
		SiteName:  a.Config.Name,
		SiteURL:   a.Config.URL,
		Path:      path,
		Lang:      loc.Language(),
		Theme:     theme,
		Languages: i18n.Supported,
		CSRF:      CsrfToken(c),
		Meta: PageMeta{
			Title:       title,
			Description: description,
			URL:         BuildURL(a.Config.URL, path),
			Image:       a.Content.Profile.Portrait,
		},
		Profile: a.Content.Profile,
		Admin:   IsAdmin(c),
		loc:     loc,
	}
}
