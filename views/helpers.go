package views

import (
	"encoding/json"
	"html/template"
	"sort"

	"github.com/eringen/folio"
)

// PersonJsonLD produces a Schema.org Person JSON-LD block for the site owner.
func PersonJsonLD(p folio.Page) template.JS {
	prof := p.Profile
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     prof.Name,
		"jobTitle": prof.Title,
		"url":      folio.BuildURL(p.SiteURL),
	}
	if prof.Portrait != "" {
		data["image"] = prof.Portrait
	}
	if prof.Education.University != "" {
		data["alumniOf"] = map[string]string{
			"@type": "CollegeOrUniversity",
			"name":  prof.Education.University,
		}
	}
	if links := prof.SocialLinks(); len(links) > 0 {
		sameAs := make([]string, len(links))
		for i, l := range links {
			sameAs[i] = l.URL
		}
		data["sameAs"] = sameAs
	}
	return marshalLD(data)
}

// ProjectJsonLD produces a Schema.org CreativeWork JSON-LD block for a project.
func ProjectJsonLD(p folio.Page, project folio.Project) template.JS {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "CreativeWork",
		"name":        project.TitleIn(p.Lang),
		"description": project.DescriptionIn(p.Lang),
		"image":       project.CoverImage,
		"url":         folio.BuildURL(p.SiteURL, "project", project.Slug),
		"inLanguage":  p.Lang.String(),
		"author": map[string]string{
			"@type": "Person",
			"name":  p.Profile.Name,
		},
	}
	if len(project.Technologies) > 0 {
		keywords := append([]string(nil), project.Technologies...)
		sort.Strings(keywords)
		data["keywords"] = keywords
	}
	return marshalLD(data)
}

func marshalLD(data map[string]interface{}) template.JS {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return template.JS(b)
}

// platformLabels are the display names of the social platforms.
var platformLabels = map[string]string{
	"github":     "GitHub",
	"linkedin":   "LinkedIn",
	"googleplay": "Google Play",
	"itchio":     "itch.io",
	"linktree":   "Linktree",
}

// PlatformLabel returns the display name of a social platform key.
func PlatformLabel(platform string) string {
	if l, ok := platformLabels[platform]; ok {
		return l
	}
	return platform
}
