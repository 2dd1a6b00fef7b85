package segment

import "testing"

// sizes is a TextMeasurer with canned answers.
type sizes map[string]Size

func (s sizes) MeasureText(v string) Size { return s[v] }

var testMeasurer = sizes{
	"Label": {Width: 5, Height: 1},
	"IC":    {Width: 2, Height: 3},
}

func content(g Gravity) Content {
	return Content{
		Text: &Text{Value: "Label"},
		Icon: &Icon{Glyph: "IC", Gravity: g, Padding: 1},
	}
}

func TestLayoutContentHorizontal(t *testing.T) {
	pad := Insets{Left: 1, Right: 1}
	tests := []struct {
		gravity        Gravity
		textAt, iconAt Point
	}{
		// content = 5 + 1 + 2 = 8, inner width 18, margin 5, block starts at 6
		{GravityStart, Point{X: 9, Y: 1}, Point{X: 6, Y: 0}},
		{GravityEnd, Point{X: 6, Y: 1}, Point{X: 12, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.gravity.String(), func(t *testing.T) {
			got := LayoutContent(Size{Width: 20, Height: 3}, content(tt.gravity), pad, testMeasurer)
			if !got.Valid {
				t.Fatal("LayoutContent().Valid = false, want true")
			}
			if p := (Point{X: got.Text.MinX, Y: got.Text.MinY}); p != tt.textAt {
				t.Errorf("text origin = %+v, want %+v", p, tt.textAt)
			}
			if p := (Point{X: got.Icon.MinX, Y: got.Icon.MinY}); p != tt.iconAt {
				t.Errorf("icon origin = %+v, want %+v", p, tt.iconAt)
			}
		})
	}
}

func TestLayoutContentVertical(t *testing.T) {
	pad := Insets{Top: 1, Bottom: 1}
	tests := []struct {
		gravity        Gravity
		textAt, iconAt Point
	}{
		// content = 1 + 1 + 3 = 5, inner height 8, margin 1.5, block starts at 2.5
		{GravityTop, Point{X: 0, Y: 6.5}, Point{X: 1.5, Y: 2.5}},
		{GravityBottom, Point{X: 0, Y: 2.5}, Point{X: 1.5, Y: 4.5}},
	}
	for _, tt := range tests {
		t.Run(tt.gravity.String(), func(t *testing.T) {
			got := LayoutContent(Size{Width: 10, Height: 10}, content(tt.gravity), pad, testMeasurer)
			if p := (Point{X: got.Text.MinX, Y: got.Text.MinY}); p != tt.textAt {
				t.Errorf("text origin = %+v, want %+v", p, tt.textAt)
			}
			if p := (Point{X: got.Icon.MinX, Y: got.Icon.MinY}); p != tt.iconAt {
				t.Errorf("icon origin = %+v, want %+v", p, tt.iconAt)
			}
		})
	}
}

func TestLayoutContentMirrors(t *testing.T) {
	cell := Size{Width: 23, Height: 3}
	pad := Insets{Left: 2, Right: 1}
	start := LayoutContent(cell, content(GravityStart), pad, testMeasurer)
	end := LayoutContent(cell, content(GravityEnd), pad, testMeasurer)

	leftGap := start.Icon.MinX - pad.Left
	rightGap := (cell.Width - pad.Right) - end.Icon.MaxX
	if leftGap != rightGap {
		t.Errorf("icon gap from its edge: start %v, end %v", leftGap, rightGap)
	}
}

func TestLayoutContentTooSmall(t *testing.T) {
	got := LayoutContent(Size{Width: 1, Height: 5}, content(GravityStart), Insets{Left: 1, Right: 1}, testMeasurer)
	if got != (ContentLayout{}) {
		t.Errorf("LayoutContent() = %+v, want zero layout", got)
	}
}

func TestLayoutContentOverflowStartsAtPadding(t *testing.T) {
	got := LayoutContent(Size{Width: 4, Height: 3}, content(GravityEnd), Insets{Left: 1, Right: 1}, testMeasurer)
	if !got.Valid {
		t.Fatal("LayoutContent().Valid = false, want true")
	}
	if got.Text.MinX != 1 {
		t.Errorf("text x = %v, want 1", got.Text.MinX)
	}
}

func TestLayoutContentIconPaddingNeedsText(t *testing.T) {
	c := Content{Icon: &Icon{Glyph: "IC", Padding: 4}}
	got := LayoutContent(Size{Width: 10, Height: 3}, c, Insets{}, testMeasurer)
	if got.Icon.MinX != 4 {
		t.Errorf("icon x = %v, want 4", got.Icon.MinX)
	}
}

func TestMeasureContent(t *testing.T) {
	pad := Insets{Top: 1, Right: 2, Bottom: 1, Left: 2}
	tests := []struct {
		name    string
		gravity Gravity
		cons    Constraints
		want    Size
	}{
		{"horizontal unspecified", GravityStart, Constraints{}, Size{Width: 12, Height: 5}},
		{"vertical unspecified", GravityTop, Constraints{}, Size{Width: 9, Height: 7}},
		{"exact ignores content", GravityStart, ExactSize(3, 40), Size{Width: 3, Height: 40}},
		{"at most shrinks", GravityStart, Loose(10, 2), Size{Width: 10, Height: 2}},
		{"at most keeps desired", GravityStart, Loose(100, 100), Size{Width: 12, Height: 5}},
		{"negative constraint", GravityStart, ExactSize(-5, -1), Size{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeasureContent(tt.cons, content(tt.gravity), pad, testMeasurer)
			if got != tt.want {
				t.Errorf("MeasureContent() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMeasureAtMostNeverExceeds(t *testing.T) {
	for limit := 0.0; limit < 20; limit++ {
		got := MeasureContent(Loose(limit, limit), content(GravityBottom), Insets{Left: 1, Right: 1}, testMeasurer)
		if got.Width > limit || got.Height > limit {
			t.Errorf("MeasureContent(at most %v) = %+v, exceeds constraint", limit, got)
		}
	}
}

func TestParseGravity(t *testing.T) {
	tests := []struct {
		in   string
		want Gravity
		ok   bool
	}{
		{"start", GravityStart, true},
		{"RIGHT", GravityEnd, true},
		{" top ", GravityTop, true},
		{"bottom", GravityBottom, true},
		{"sideways", GravityStart, false},
	}
	for _, tt := range tests {
		got, ok := ParseGravity(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseGravity(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
