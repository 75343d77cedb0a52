package folio

import (
	"errors"
	"fmt"
)

// Catalog is the read-only project collection. All lookups are pure reads
// over the slice given to NewCatalog, in declaration order.
type Catalog struct {
	projects   []Project
	bySlug     map[string]int
	categories []Category
}

// NewCatalog validates projects and indexes them. Every slug and id must be
// unique and non-empty, every category must be one of Categories, and every
// project needs a title and a cover image.
func NewCatalog(projects []Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, len(projects)),
		bySlug:   make(map[string]int, len(projects)),
	}
	copy(c.projects, projects)

	var errs []error
	ids := make(map[string]bool, len(projects))
	seenCategory := make(map[Category]bool)
	for i, p := range c.projects {
		where := fmt.Sprintf("project %d (%q)", i, p.Slug)
		switch {
		case p.Slug == "":
			errs = append(errs, fmt.Errorf("%s: empty slug", where))
		case Slugify(p.Slug) != p.Slug:
			errs = append(errs, fmt.Errorf("%s: slug is not URL-safe", where))
		default:
			if _, dup := c.bySlug[p.Slug]; dup {
				errs = append(errs, fmt.Errorf("%s: duplicate slug", where))
			} else {
				c.bySlug[p.Slug] = i
			}
		}
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s: empty id", where))
		} else if ids[p.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", where, p.ID))
		}
		ids[p.ID] = true
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("%s: empty title", where))
		}
		if p.CoverImage == "" {
			errs = append(errs, fmt.Errorf("%s: missing cover image", where))
		}
		if !p.Category.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown category %q", where, p.Category))
		} else if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			c.categories = append(c.categories, p.Category)
		}
		for lang := range p.Titles {
			if !lang.Valid() {
				errs = append(errs, fmt.Errorf("%s: title for unsupported language %q", where, lang))
			}
		}
		for lang := range p.Descriptions {
			if !lang.Valid() {
				errs = append(errs, fmt.Errorf("%s: description for unsupported language %q", where, lang))
			}
		}
		if !p.AspectRatio.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown aspect ratio %q", where, p.AspectRatio))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("folio: invalid catalog: %w", err)
	}
	return c, nil
}

// Len returns the number of projects.
func (c *Catalog) Len() int { return len(c.projects) }

// All returns every project in declaration order.
func (c *Catalog) All() []Project {
	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// BySlug returns the project with the given slug. ok is false when no
// project matches; callers render the not-found page.
func (c *Catalog) BySlug(slug string) (Project, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Project{}, false
	}
	return c.projects[i], true
}

// ByCategory returns the projects whose category equals category exactly,
// in declaration order. CategoryAll returns the whole collection.
func (c *Catalog) ByCategory(category string) []Project {
	if category == CategoryAll {
		return c.All()
	}
	out := []Project{}
	for _, p := range c.projects {
		if string(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the first n projects in declaration order.
func (c *Catalog) Featured(n int) []Project {
	if n < 0 {
		n = 0
	}
	if n > len(c.projects) {
		n = len(c.projects)
	}
	out := make([]Project, n)
	copy(out, c.projects[:n])
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}
