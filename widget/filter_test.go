package widget

import "testing"

func label(id string) string { return "label:" + id }

func TestNewFilterBar(t *testing.T) {
	f := NewFilterBar("web", []string{"videogames", "web", "iot"}, label)
	if len(f.Pills) != 4 {
		t.Fatalf("pill count = %d, want 4", len(f.Pills))
	}
	if f.Pills[0].ID != AllID || f.Pills[0].Label != "label:all" {
		t.Errorf("first pill = %+v, want all", f.Pills[0])
	}
	if f.Active() != "web" || f.ActiveIndex() != 2 {
		t.Errorf("active = %q at %d, want web at 2", f.Active(), f.ActiveIndex())
	}
}

func TestNewFilterBarUnknownActiveSelectsAll(t *testing.T) {
	f := NewFilterBar("cooking", []string{"web"}, label)
	if f.Active() != AllID {
		t.Errorf("active = %q, want all", f.Active())
	}
}

func TestExactlyOneActive(t *testing.T) {
	f := NewFilterBar("", []string{"videogames", "web", "wellness", "iot"}, label)
	for _, id := range []string{"iot", "web", AllID, "wellness"} {
		if !f.Select(id) {
			t.Fatalf("Select(%q) returned false", id)
		}
		active := 0
		for _, p := range f.Pills {
			if p.Active {
				active++
			}
		}
		if active != 1 {
			t.Fatalf("after Select(%q) %d pills are active", id, active)
		}
		if f.Active() != id {
			t.Errorf("Active() = %q, want %q", f.Active(), id)
		}
	}
}

func TestSelectUnknownKeepsSelection(t *testing.T) {
	f := NewFilterBar("web", []string{"web", "iot"}, label)
	if f.Select("nope") {
		t.Fatal("Select(nope) should report false")
	}
	if f.Active() != "web" {
		t.Errorf("Active() = %q, want web", f.Active())
	}
}

func row(n int) []Rect {
	rects := make([]Rect, n)
	for i := range rects {
		rects[i] = Rect{X: float64(i) * 100, Y: 0, W: 80, H: 40}
	}
	return rects
}

func TestNearest(t *testing.T) {
	rects := row(4) // centers at x = 40, 140, 240, 340
	tests := []struct {
		p    Point
		want int
	}{
		{Point{X: 0, Y: 20}, 0},
		{Point{X: 150, Y: 20}, 1},
		{Point{X: 330, Y: 90}, 3},
		{Point{X: 90, Y: 20}, 0},  // equidistant between 0 and 1
		{Point{X: 290, Y: 20}, 2}, // equidistant between 2 and 3
	}
	for _, tt := range tests {
		got, ok := Nearest(tt.p, rects)
		if !ok || got != tt.want {
			t.Errorf("Nearest(%v) = %d, %v; want %d", tt.p, got, ok, tt.want)
		}
	}
	if _, ok := Nearest(Point{}, nil); ok {
		t.Error("Nearest with no rects should report false")
	}
}

func TestNearestWrappedRows(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, W: 100, H: 40},
		{X: 110, Y: 0, W: 100, H: 40},
		{X: 0, Y: 50, W: 100, H: 40},
	}
	got, _ := Nearest(Point{X: 40, Y: 80}, rects)
	if got != 2 {
		t.Errorf("Nearest = %d, want 2 (second row)", got)
	}
}

func TestSnap(t *testing.T) {
	f := NewFilterBar(AllID, []string{"videogames", "web", "iot"}, label)
	id, ok := f.Snap(Point{X: 245, Y: 10}, row(4))
	if !ok || id != "web" {
		t.Fatalf("Snap = %q, %v; want web", id, ok)
	}
	if f.Active() != "web" {
		t.Errorf("Active() = %q after snap, want web", f.Active())
	}
}

func TestSnapUnmeasuredKeepsSelection(t *testing.T) {
	f := NewFilterBar("iot", []string{"videogames", "web", "iot"}, label)
	for _, rects := range [][]Rect{nil, row(2)} {
		id, ok := f.Snap(Point{X: 0}, rects)
		if ok || id != "iot" {
			t.Errorf("Snap with %d rects = %q, %v; want iot, false", len(rects), id, ok)
		}
	}
}

func TestIndicator(t *testing.T) {
	f := NewFilterBar("web", []string{"videogames", "web"}, label)
	if _, ok := f.Indicator(nil); ok {
		t.Error("indicator should be hidden before measurement")
	}
	rects := row(3)
	r, ok := f.Indicator(rects)
	if !ok || r != rects[2] {
		t.Errorf("Indicator = %v, %v; want %v", r, ok, rects[2])
	}
}
