package folio

import (
	"sort"
	"strings"

	"github.com/eringen/folio/i18n"
)

// Category classifies a Project. Only the constants below are valid.
type Category string

const (
	CategoryVideoGames Category = "videogames"
	CategoryWeb        Category = "web"
	CategoryWellness   Category = "wellness"
	CategoryIoT        Category = "iot"
)

// CategoryAll is the filter value that selects every project.
const CategoryAll = "all"

// Categories lists the closed category set.
var Categories = []Category{CategoryVideoGames, CategoryWeb, CategoryWellness, CategoryIoT}

// ParseCategory returns the Category named s.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// Valid reports whether c belongs to the closed set.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// LabelKey is the localization key of the category's display name.
func (c Category) LabelKey() string {
	return "category." + string(c)
}

// AspectRatio hints how a cover image should be framed.
type AspectRatio string

const (
	Portrait  AspectRatio = "portrait"
	Landscape AspectRatio = "landscape"
	Square    AspectRatio = "square"
)

// Valid reports whether r is empty or one of the known ratios.
func (r AspectRatio) Valid() bool {
	switch r {
	case "", Portrait, Landscape, Square:
		return true
	}
	return false
}

// OrDefault returns r, or Landscape when r is unset.
func (r AspectRatio) OrDefault() AspectRatio {
	if r == "" {
		return Landscape
	}
	return r
}

// Project is one portfolio entry. Projects are loaded once at startup and
// never mutated afterwards.
type Project struct {
	ID           string                   `yaml:"id" json:"id"`
	Slug         string                   `yaml:"slug" json:"slug"`
	Title        string                   `yaml:"title" json:"title"`
	Titles       map[i18n.Language]string `yaml:"titles,omitempty" json:"titles,omitempty"`
	Description  string                   `yaml:"description" json:"description"`
	Descriptions map[i18n.Language]string `yaml:"descriptions,omitempty" json:"descriptions,omitempty"`
	Category     Category                 `yaml:"category" json:"category"`
	Technologies []string                 `yaml:"technologies" json:"technologies"`
	CoverImage   string                   `yaml:"cover_image" json:"cover_image"`
	HoverImages  []string                 `yaml:"hover_images,omitempty" json:"hover_images,omitempty"`
	AspectRatio  AspectRatio              `yaml:"aspect_ratio,omitempty" json:"aspect_ratio,omitempty"`
	RepoURL      string                   `yaml:"repo_url,omitempty" json:"repo_url,omitempty"`
	LiveURL      string                   `yaml:"live_url,omitempty" json:"live_url,omitempty"`
	PlayStoreURL string                   `yaml:"play_store_url,omitempty" json:"play_store_url,omitempty"`
	ItchURL      string                   `yaml:"itch_url,omitempty" json:"itch_url,omitempty"`
}

// TitleIn returns the title for lang, falling back to the base title.
func (p Project) TitleIn(lang i18n.Language) string {
	if t := p.Titles[lang]; t != "" {
		return t
	}
	return p.Title
}

// DescriptionIn returns the description for lang, falling back to the base
// description.
func (p Project) DescriptionIn(lang i18n.Language) string {
	if d := p.Descriptions[lang]; d != "" {
		return d
	}
	return p.Description
}

// Link returns the project's detail page path.
func (p Project) Link() string {
	return "/project/" + p.Slug + "/"
}

// HasCarousel reports whether hovering the card rotates preview images.
func (p Project) HasCarousel() bool {
	return len(p.HoverImages) > 1
}

// ExternalLink is an outbound link of a project.
type ExternalLink struct {
	Kind string // "repo", "live", "playStore", "itch"
	URL  string
}

// Links returns the project's outbound links in display order, skipping
// the ones that are not set.
func (p Project) Links() []ExternalLink {
	all := []ExternalLink{
		{Kind: "repo", URL: p.RepoURL},
		{Kind: "live", URL: p.LiveURL},
		{Kind: "playStore", URL: p.PlayStoreURL},
		{Kind: "itch", URL: p.ItchURL},
	}
	out := all[:0]
	for _, l := range all {
		if l.URL != "" {
			out = append(out, l)
		}
	}
	return out
}

// Education is the profile's degree line.
type Education struct {
	University string `yaml:"university" json:"university"`
	Degree     string `yaml:"degree" json:"degree"`
}

// DeveloperProfile describes the site owner.
type DeveloperProfile struct {
	Name         string            `yaml:"name" json:"name"`
	Title        string            `yaml:"title" json:"title"`
	Tagline      string            `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	Introduction string            `yaml:"introduction,omitempty" json:"introduction,omitempty"`
	Education    Education         `yaml:"education" json:"education"`
	Biography    string            `yaml:"biography" json:"biography"`
	Skills       []string          `yaml:"skills" json:"skills"`
	Technologies []string          `yaml:"technologies" json:"technologies"`
	Location     string            `yaml:"location" json:"location"`
	Email        string            `yaml:"email" json:"email"`
	Social       map[string]string `yaml:"social,omitempty" json:"social,omitempty"`
	CVURL        string            `yaml:"cv_url,omitempty" json:"cv_url,omitempty"`
	Portrait     string            `yaml:"portrait" json:"portrait"`
}

// Paragraphs splits the biography on blank lines.
func (d DeveloperProfile) Paragraphs() []string {
	return Paragraphs(d.Biography)
}

// Lead returns the first biography paragraph.
func (d DeveloperProfile) Lead() string {
	if ps := d.Paragraphs(); len(ps) > 0 {
		return ps[0]
	}
	return ""
}

// SocialLink is one entry of the profile's social map.
type SocialLink struct {
	Platform string
	URL      string
}

var socialOrder = []string{"github", "linkedin", "googleplay", "itchio", "linktree"}

// SocialLinks returns the non-empty social links, known platforms first in a
// fixed order, then the rest alphabetically.
func (d DeveloperProfile) SocialLinks() []SocialLink {
	var out []SocialLink
	seen := make(map[string]bool)
	for _, name := range socialOrder {
		if u := d.Social[name]; u != "" {
			out = append(out, SocialLink{Platform: name, URL: u})
		}
		seen[name] = true
	}
	var rest []string
	for name, u := range d.Social {
		if !seen[name] && u != "" {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, SocialLink{Platform: name, URL: d.Social[name]})
	}
	return out
}

// Theme is the colour scheme chosen by the visitor.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme returns the Theme named s.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	}
	return "", false
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// PageMeta carries the per-page title and description into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical
	Image       string
}
