package folio

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/i18n"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Categories  []string `xml:"category"`
	GUID        string   `xml:"guid"`
}

// renderRSS writes the project catalog as an RSS 2.0 feed in lang. Projects
// carry no dates, so items have no pubDate.
func (a *App) renderRSS(c echo.Context, projects []Project, lang i18n.Language) error {
	base := a.Config.URL
	loc := a.Bundle.Localizer(lang)
	items := make([]rssItem, 0, len(projects))
	for _, p := range projects {
		link := BuildURL(base, "project", p.Slug)
		cats := append([]string{loc.T(p.Category.LabelKey())}, p.Technologies...)
		items = append(items, rssItem{
			Title:       p.TitleIn(lang),
			Link:        link,
			Description: p.DescriptionIn(lang),
			Categories:  cats,
			GUID:        link,
		})
	}
	description := a.Config.Description
	if description == "" {
		description = a.Content.Profile.Introduction
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        strings.TrimRight(base, "/") + "/",
			Description: description,
			Language:    loc.Language().String(),
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
