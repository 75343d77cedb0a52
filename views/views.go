// Package views holds the site's page templates. Pages are html/template
// files embedded in the binary and exposed to folio as templ components.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
	"github.com/eringen/folio/widget"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists the templates that render a full page inside the layout.
var pageNames = []string{
	"home", "portfolio", "project", "about", "contact",
	"admin_login", "admin_dashboard", "not_found", "server_error",
}

// Views is the parsed template set.
type Views struct {
	base  *template.Template
	pages map[string]*template.Template
}

// data is what every template receives. Pages use the fields they need.
type data struct {
	Page      folio.Page
	Cards     []Card
	Bar       widget.FilterBar
	Project   folio.Project
	Form      folio.ContactForm
	Dashboard folio.Dashboard
	ShowError bool
}

var funcs = template.FuncMap{
	"richText":      RichText,
	"badge":         func(label string, variant BadgeVariant) Badge { return NewBadge(label, BadgeOptions{Variant: variant}) },
	"badges":        badges,
	"statusBadge":   statusBadge,
	"platformLabel": PlatformLabel,
	"personLD":      PersonJsonLD,
	"projectLD":     ProjectJsonLD,
	"year":          func() int { return time.Now().Year() },
	"date":          func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}

// New parses the layout, the shared partials and every page.
func New() (*Views, error) {
	base, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("views: parse layout: %w", err)
	}
	v := &Views{base: base, pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("views: clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

func (v *Views) page(name string, d data) templ.Component {
	return templ.FromGoHTML(v.pages[name].Lookup("layout"), d)
}

func (v *Views) partial(name string, d data) templ.Component {
	return templ.FromGoHTML(v.base.Lookup(name), d)
}

// Funcs returns the folio.ViewFuncs backed by v.
func Funcs(v *Views) folio.ViewFuncs {
	return folio.ViewFuncs{
		Home: func(p folio.Page, featured []folio.Project) templ.Component {
			return v.page("home", data{Page: p, Cards: NewCards(p, featured, FeaturedCard)})
		},
		Portfolio: func(p folio.Page, bar widget.FilterBar, projects []folio.Project) templ.Component {
			return v.page("portfolio", data{Page: p, Bar: bar, Cards: NewCards(p, projects, PortfolioCard)})
		},
		ProjectGrid: func(p folio.Page, bar widget.FilterBar, projects []folio.Project) templ.Component {
			return v.partial("project-grid", data{Page: p, Bar: bar, Cards: NewCards(p, projects, PortfolioCard)})
		},
		Project: func(p folio.Page, project folio.Project) templ.Component {
			return v.page("project", data{Page: p, Project: project})
		},
		About: func(p folio.Page) templ.Component {
			return v.page("about", data{Page: p})
		},
		Contact: func(p folio.Page, form folio.ContactForm) templ.Component {
			return v.page("contact", data{Page: p, Form: form})
		},
		ContactForm: func(p folio.Page, form folio.ContactForm) templ.Component {
			return v.partial("contact-form", data{Page: p, Form: form})
		},
		AdminLogin: func(p folio.Page, showError bool) templ.Component {
			return v.page("admin_login", data{Page: p, ShowError: showError})
		},
		AdminDashboard: func(p folio.Page, dash folio.Dashboard) templ.Component {
			return v.page("admin_dashboard", data{Page: p, Dashboard: dash})
		},
		NotFound: func(p folio.Page) templ.Component {
			return v.page("not_found", data{Page: p})
		},
		ServerError: func(p folio.Page) templ.Component {
			return v.page("server_error", data{Page: p})
		},
	}
}
