package folio

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/i18n"
)

// ProjectJSON is the API representation of a project, localized to one
// language.
type ProjectJSON struct {
	ID           string            `json:"id"`
	Slug         string            `json:"slug"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Category     Category          `json:"category"`
	Technologies []string          `json:"technologies"`
	CoverImage   string            `json:"cover_image"`
	HoverImages  []string          `json:"hover_images,omitempty"`
	AspectRatio  AspectRatio       `json:"aspect_ratio"`
	Links        map[string]string `json:"links,omitempty"`
	URL          string            `json:"url"`
	Language     i18n.Language     `json:"language"`
}

func (a *App) projectJSON(p Project, lang i18n.Language) ProjectJSON {
	var links map[string]string
	for _, l := range p.Links() {
		if links == nil {
			links = make(map[string]string)
		}
		links[l.Kind] = l.URL
	}
	return ProjectJSON{
		ID:           p.ID,
		Slug:         p.Slug,
		Title:        p.TitleIn(lang),
		Description:  p.DescriptionIn(lang),
		Category:     p.Category,
		Technologies: p.Technologies,
		CoverImage:   p.CoverImage,
		HoverImages:  p.HoverImages,
		AspectRatio:  p.AspectRatio.OrDefault(),
		Links:        links,
		URL:          BuildURL(a.Config.URL, "project", p.Slug),
		Language:     lang,
	}
}

// apiLanguage returns the ?lang= value when supported, else the visitor's
// preference.
func (a *App) apiLanguage(c echo.Context) i18n.Language {
	if lang, ok := i18n.Parse(c.QueryParam("lang")); ok {
		return lang
	}
	lang, _ := a.preferences(c)
	return lang
}

func (a *App) handleAPIProjects(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		category = CategoryAll
	}
	if category != CategoryAll {
		parsed, ok := ParseCategory(category)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown category")
		}
		category = string(parsed)
	}
	lang := a.apiLanguage(c)
	projects := a.Content.Catalog.ByCategory(category)
	out := make([]ProjectJSON, 0, len(projects))
	for _, p := range projects {
		out = append(out, a.projectJSON(p, lang))
	}
	return c.JSON(http.StatusOK, out)
}

func (a *App) handleAPIProject(c echo.Context) error {
	p, ok := a.Content.Catalog.BySlug(c.Param("slug"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	return c.JSON(http.StatusOK, a.projectJSON(p, a.apiLanguage(c)))
}

func (a *App) handleHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := a.Store.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"projects": a.Content.Catalog.Len(),
	})
}
