// Package widget models the interactive pieces of the portfolio pages: the
// category filter bar with its draggable indicator and the hover image
// carousel. The HTTP layer drives them; they know nothing about HTML.
package widget

// AllID is the pill that selects every category.
const AllID = "all"

// Pill is one selectable entry of a FilterBar.
type Pill struct {
	ID     string
	Label  string
	Active bool
}

// FilterBar is the category filter: "all" followed by one pill per
// category. Exactly one pill is active at a time.
type FilterBar struct {
	Pills []Pill
}

// NewFilterBar builds a bar for ids, labelled by label. The pill matching
// active is selected; an unknown active value selects "all".
func NewFilterBar(active string, ids []string, label func(id string) string) FilterBar {
	pills := make([]Pill, 0, len(ids)+1)
	pills = append(pills, Pill{ID: AllID, Label: label(AllID)})
	for _, id := range ids {
		if id == AllID {
			continue
		}
		pills = append(pills, Pill{ID: id, Label: label(id)})
	}
	f := FilterBar{Pills: pills}
	if !f.Select(active) {
		f.Pills[0].Active = true
	}
	return f
}

// Active returns the id of the selected pill.
func (f FilterBar) Active() string {
	for _, p := range f.Pills {
		if p.Active {
			return p.ID
		}
	}
	return AllID
}

// ActiveIndex returns the position of the selected pill.
func (f FilterBar) ActiveIndex() int {
	for i, p := range f.Pills {
		if p.Active {
			return i
		}
	}
	return 0
}

// Select makes id the active pill. It returns false, leaving the selection
// unchanged, when no pill has that id.
func (f *FilterBar) Select(id string) bool {
	idx := -1
	for i, p := range f.Pills {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	for i := range f.Pills {
		f.Pills[i].Active = i == idx
	}
	return true
}

// Point is a position in CSS pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a measured pill box in CSS pixels.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Nearest returns the index of the rect whose center is closest to p.
// Equidistant rects resolve to the lower index. ok is false for no rects.
func Nearest(p Point, rects []Rect) (idx int, ok bool) {
	best := -1.0
	for i, r := range rects {
		c := r.Center()
		dx, dy := c.X-p.X, c.Y-p.Y
		d := dx*dx + dy*dy
		if best < 0 || d < best {
			best = d
			idx = i
		}
	}
	return idx, best >= 0
}

// Measured reports whether rects describe every pill of the bar. Layout
// that has not been measured yet (first paint) yields false.
func (f FilterBar) Measured(rects []Rect) bool {
	return len(rects) > 0 && len(rects) == len(f.Pills)
}

// Indicator returns the box the sliding indicator should occupy, which is
// the active pill's rect. ok is false until layout is measured, in which
// case the bar is rendered without an indicator.
func (f FilterBar) Indicator(rects []Rect) (Rect, bool) {
	if !f.Measured(rects) {
		return Rect{}, false
	}
	return rects[f.ActiveIndex()], true
}

// Snap selects the pill nearest to the dragged indicator's center and
// returns its id. Unmeasured layout leaves the selection as it was and
// returns false.
func (f *FilterBar) Snap(center Point, rects []Rect) (string, bool) {
	if !f.Measured(rects) {
		return f.Active(), false
	}
	idx, ok := Nearest(center, rects)
	if !ok {
		return f.Active(), false
	}
	id := f.Pills[idx].ID
	f.Select(id)
	return id, true
}
