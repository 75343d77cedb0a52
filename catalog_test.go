package folio

import (
	"strings"
	"testing"

	"github.com/eringen/folio/i18n"
)

func loadSeedCatalog(t *testing.T) *Catalog {
	t.Helper()
	content, err := LoadContent(DefaultContentFS())
	if err != nil {
		t.Fatalf("LoadContent failed: %v", err)
	}
	return content.Catalog
}

func TestSeedCatalogShape(t *testing.T) {
	c := loadSeedCatalog(t)
	if c.Len() != 9 {
		t.Fatalf("Len() = %d, want 9", c.Len())
	}
	cats := c.Categories()
	if len(cats) != 4 {
		t.Fatalf("Categories() = %v, want 4 distinct", cats)
	}
	want := []Category{CategoryWeb, CategoryVideoGames, CategoryWellness, CategoryIoT}
	for i, w := range want {
		if cats[i] != w {
			t.Errorf("Categories()[%d] = %q, want %q (first-seen order)", i, cats[i], w)
		}
	}
}

func TestByCategoryReturnsOnlyThatCategory(t *testing.T) {
	c := loadSeedCatalog(t)
	for _, cat := range c.Categories() {
		got := c.ByCategory(string(cat))
		if len(got) == 0 {
			t.Errorf("ByCategory(%q) is empty", cat)
		}
		for _, p := range got {
			if p.Category != cat {
				t.Errorf("ByCategory(%q) returned %q with category %q", cat, p.Slug, p.Category)
			}
		}
	}
}

func TestByCategoryVideoGames(t *testing.T) {
	c := loadSeedCatalog(t)
	got := c.ByCategory("videogames")
	if len(got) != 5 {
		t.Fatalf("ByCategory(videogames) returned %d projects, want 5", len(got))
	}
	want := 0
	for _, p := range c.All() {
		if p.Category == CategoryVideoGames {
			if got[want].Slug != p.Slug {
				t.Errorf("position %d = %q, want %q", want, got[want].Slug, p.Slug)
			}
			want++
		}
	}
}

func TestByCategoryAllPreservesOrder(t *testing.T) {
	c := loadSeedCatalog(t)
	all := c.All()
	got := c.ByCategory(CategoryAll)
	if len(got) != len(all) {
		t.Fatalf("ByCategory(all) = %d projects, want %d", len(got), len(all))
	}
	for i := range all {
		if got[i].Slug != all[i].Slug {
			t.Errorf("ByCategory(all)[%d] = %q, want %q", i, got[i].Slug, all[i].Slug)
		}
	}
}

func TestByCategoryUnknownIsEmpty(t *testing.T) {
	c := loadSeedCatalog(t)
	got := c.ByCategory("music")
	if got == nil || len(got) != 0 {
		t.Errorf("ByCategory(music) = %v, want empty non-nil slice", got)
	}
}

func TestBySlugRoundTrip(t *testing.T) {
	c := loadSeedCatalog(t)
	for _, p := range c.All() {
		got, ok := c.BySlug(p.Slug)
		if !ok {
			t.Fatalf("BySlug(%q) not found", p.Slug)
		}
		if got.ID != p.ID || got.Title != p.Title {
			t.Errorf("BySlug(%q) = %+v, want %+v", p.Slug, got, p)
		}
	}
	if _, ok := c.BySlug("does-not-exist"); ok {
		t.Error("BySlug(does-not-exist) should report not found")
	}
}

func TestFeaturedIsPrefix(t *testing.T) {
	c := loadSeedCatalog(t)
	all := c.All()
	for _, n := range []int{-1, 0, 1, 4, 9, 20} {
		got := c.Featured(n)
		want := n
		if want < 0 {
			want = 0
		}
		if want > len(all) {
			want = len(all)
		}
		if len(got) != want {
			t.Errorf("Featured(%d) returned %d, want %d", n, len(got), want)
			continue
		}
		for i := range got {
			if got[i].Slug != all[i].Slug {
				t.Errorf("Featured(%d)[%d] = %q, want %q", n, i, got[i].Slug, all[i].Slug)
			}
		}
	}
}

func TestCatalogReadsDoNotAlias(t *testing.T) {
	c := loadSeedCatalog(t)
	all := c.All()
	all[0].Slug = "mutated"
	cats := c.Categories()
	cats[0] = "mutated"
	if c.All()[0].Slug == "mutated" {
		t.Error("All() exposed internal storage")
	}
	if c.Categories()[0] == "mutated" {
		t.Error("Categories() exposed internal storage")
	}
}

func TestNewCatalogValidation(t *testing.T) {
	valid := Project{ID: "1", Slug: "a", Title: "A", Category: CategoryWeb, CoverImage: "a.png"}
	tests := []struct {
		name     string
		projects []Project
		wantErr  string
	}{
		{"duplicate slug", []Project{valid, {ID: "2", Slug: "a", Title: "B", Category: CategoryWeb, CoverImage: "b.png"}}, "duplicate slug"},
		{"duplicate id", []Project{valid, {ID: "1", Slug: "b", Title: "B", Category: CategoryWeb, CoverImage: "b.png"}}, "duplicate id"},
		{"empty slug", []Project{{ID: "1", Title: "A", Category: CategoryWeb, CoverImage: "a.png"}}, "empty slug"},
		{"unsafe slug", []Project{{ID: "1", Slug: "Hello World", Title: "A", Category: CategoryWeb, CoverImage: "a.png"}}, "not URL-safe"},
		{"unknown category", []Project{{ID: "1", Slug: "a", Title: "A", Category: "music", CoverImage: "a.png"}}, "unknown category"},
		{"missing cover", []Project{{ID: "1", Slug: "a", Title: "A", Category: CategoryWeb}}, "missing cover"},
		{"bad aspect", []Project{{ID: "1", Slug: "a", Title: "A", Category: CategoryWeb, CoverImage: "a.png", AspectRatio: "wide"}}, "aspect ratio"},
		{"unsupported title language", []Project{{ID: "1", Slug: "a", Title: "A", Category: CategoryWeb, CoverImage: "a.png", Titles: map[i18n.Language]string{"fr": "Le A"}}}, "unsupported language"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.projects)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}

	if _, err := NewCatalog([]Project{valid}); err != nil {
		t.Errorf("valid catalog rejected: %v", err)
	}
}

func TestLocalizedTitleFallsBack(t *testing.T) {
	p := Project{
		Title:        "Schedule Generator",
		Titles:       map[i18n.Language]string{i18n.Spanish: "Generador de Horarios"},
		Description:  "Builds schedules.",
		Descriptions: map[i18n.Language]string{},
	}
	if got := p.TitleIn(i18n.Spanish); got != "Generador de Horarios" {
		t.Errorf("TitleIn(es) = %q", got)
	}
	if got := p.TitleIn(i18n.English); got != "Schedule Generator" {
		t.Errorf("TitleIn(en) = %q", got)
	}
	if got := p.DescriptionIn(i18n.Spanish); got != "Builds schedules." {
		t.Errorf("DescriptionIn(es) = %q, want base fallback", got)
	}
}

func TestProjectLinksOmitEmpty(t *testing.T) {
	p := Project{RepoURL: "https://github.com/x/y", ItchURL: "https://x.itch.io/y"}
	links := p.Links()
	if len(links) != 2 {
		t.Fatalf("Links() = %v, want 2", links)
	}
	if links[0].Kind != "repo" || links[1].Kind != "itch" {
		t.Errorf("Links() order = %v", links)
	}
}

func TestCategoryLabelKeysAreTranslated(t *testing.T) {
	b, err := i18n.DefaultBundle()
	if err != nil {
		t.Fatal(err)
	}
	keys := []string{"category." + CategoryAll}
	for _, c := range Categories {
		keys = append(keys, c.LabelKey())
	}
	for _, lang := range i18n.Supported {
		for _, k := range keys {
			if !b.Has(lang, k) {
				t.Errorf("%s lacks %s", lang, k)
			}
		}
	}
}
