package folio

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// staticPages are the fixed sections listed before the projects.
var staticPages = []string{"portfolio", "about", "contact"}

func (a *App) renderSitemap(c echo.Context, projects []Project) error {
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: BuildURL(base, "/"), ChangeFreq: "monthly", Priority: "1.0"},
	}
	for _, page := range staticPages {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, page), ChangeFreq: "monthly", Priority: "0.8"})
	}
	for _, p := range projects {
		urls = append(urls, sitemapURL{
			Loc:      BuildURL(base, "project", p.Slug),
			Priority: "0.6",
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
