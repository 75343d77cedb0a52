package views

import (
	"github.com/eringen/folio"
)

// CardSize selects the card layout.
type CardSize string

const (
	CardRegular  CardSize = "regular"
	CardFeatured CardSize = "featured"
)

// CardOptions configures the project card. One card component serves the
// home page, the portfolio grid and related lists.
type CardOptions struct {
	Size            CardSize
	ShowCategory    bool
	ShowDescription bool
	MaxTech         int // 0 hides technologies
	Preview         bool
}

var (
	FeaturedCard  = CardOptions{Size: CardFeatured, ShowCategory: true, MaxTech: 3, Preview: true}
	PortfolioCard = CardOptions{Size: CardRegular, ShowCategory: true, ShowDescription: true, MaxTech: 4, Preview: true}
)

// BadgeVariant selects the badge style.
type BadgeVariant string

const (
	BadgeTech     BadgeVariant = "tech"
	BadgeCategory BadgeVariant = "category"
	BadgeSkill    BadgeVariant = "skill"
	BadgeStatus   BadgeVariant = "status"
)

// BadgeOptions configures a badge.
type BadgeOptions struct {
	Variant BadgeVariant
	Active  bool
}

// Badge is a small label.
type Badge struct {
	Label string
	BadgeOptions
}

// NewBadge returns a badge with opts; an empty variant is a tech badge.
func NewBadge(label string, opts BadgeOptions) Badge {
	if opts.Variant == "" {
		opts.Variant = BadgeTech
	}
	return Badge{Label: label, BadgeOptions: opts}
}

// statusBadge marks a message on the dashboard; unread messages are active.
func statusBadge(label string, unread bool) Badge {
	return NewBadge(label, BadgeOptions{Variant: BadgeStatus, Active: unread})
}

func badges(labels []string, variant BadgeVariant) []Badge {
	out := make([]Badge, len(labels))
	for i, l := range labels {
		out[i] = NewBadge(l, BadgeOptions{Variant: variant})
	}
	return out
}

// Card is the resolved view of one project card.
type Card struct {
	Opts        CardOptions
	Link        string
	Title       string
	Description string
	Cover       string
	Aspect      folio.AspectRatio
	Category    Badge
	Tech        []Badge
	MoreTech    int
	Preview     string // websocket path, empty when the card does not rotate
}

// NewCard resolves project for display in the page language.
func NewCard(p folio.Page, project folio.Project, opts CardOptions) Card {
	if opts.Size == "" {
		opts.Size = CardRegular
	}
	c := Card{
		Opts:        opts,
		Link:        project.Link(),
		Title:       project.TitleIn(p.Lang),
		Description: project.DescriptionIn(p.Lang),
		Cover:       project.CoverImage,
		Aspect:      project.AspectRatio.OrDefault(),
		Category:    NewBadge(p.T(project.Category.LabelKey()), BadgeOptions{Variant: BadgeCategory}),
	}
	if opts.MaxTech > 0 {
		tech := project.Technologies
		if len(tech) > opts.MaxTech {
			c.MoreTech = len(tech) - opts.MaxTech
			tech = tech[:opts.MaxTech]
		}
		c.Tech = badges(tech, BadgeTech)
	}
	if opts.Preview && project.HasCarousel() {
		c.Preview = "/preview/" + project.Slug
	}
	return c
}

// NewCards resolves every project with the same options.
func NewCards(p folio.Page, projects []folio.Project, opts CardOptions) []Card {
	out := make([]Card, len(projects))
	for i, pr := range projects {
		out[i] = NewCard(p, pr, opts)
	}
	return out
}
