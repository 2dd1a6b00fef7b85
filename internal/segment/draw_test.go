package segment

import (
	"testing"

	"github.com/golang/mock/gomock"
)

func TestRowDrawClipsAndTranslatesIndicator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sel := Paint{Color: "#89b4fa"}
	r := newTestRow(Style{Selector: sel.Color}, equalCells(2)...)
	r.Layout(Size{Width: 20, Height: 1})
	r.SetPosition(0.5)

	s := NewMockSurface(ctrl)
	full := Rect{MaxX: 10, MaxY: 1}
	gomock.InOrder(
		s.EXPECT().Save(),

		// cell 0 keeps the right half, fill pushed right by half a cell
		s.EXPECT().Save(),
		s.EXPECT().Translate(0.0, 0.0),
		s.EXPECT().Save(),
		s.EXPECT().ClipRect(Rect{MinX: 5, MaxX: 10, MaxY: 1}),
		s.EXPECT().Translate(5.0, 0.0),
		s.EXPECT().FillRect(full, 0.0, sel),
		s.EXPECT().Restore(),
		s.EXPECT().Save(),
		s.EXPECT().ClipRect(Rect{MinX: 5, MaxX: 10, MaxY: 1}),
		s.EXPECT().Restore(),
		s.EXPECT().Restore(),

		// cell 1 shows the left half, fill pulled left by half a cell
		s.EXPECT().Save(),
		s.EXPECT().Translate(10.0, 0.0),
		s.EXPECT().Save(),
		s.EXPECT().ClipRect(Rect{MinX: 0, MaxX: 5, MaxY: 1}),
		s.EXPECT().Translate(-5.0, 0.0),
		s.EXPECT().FillRect(full, 0.0, sel),
		s.EXPECT().Restore(),
		s.EXPECT().Save(),
		s.EXPECT().ClipRect(Rect{MinX: 0, MaxX: 5, MaxY: 1}),
		s.EXPECT().Restore(),
		s.EXPECT().Restore(),

		s.EXPECT().Restore(),
	)

	r.Draw(s)
}

func TestRowDrawAtRestSkipsHiddenCells(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	text := Content{Text: &Text{Value: "Label", Color: "#cdd6f4", SelectedColor: "#1e1e2e"}}
	style := Style{
		Selector:     "#89b4fa",
		Background:   "#282840",
		BorderWidth:  1,
		BorderColor:  "#3b3b5c",
		DividerWidth: 1,
		DividerColor: "#3b3b5c",
	}
	r := newTestRow(style, CellSpec{Content: text}, CellSpec{Content: text}, CellSpec{Content: text})
	r.Layout(Size{Width: 33, Height: 3})
	r.SetPosition(1)

	s := NewMockSurface(ctrl)
	s.EXPECT().Save().AnyTimes()
	s.EXPECT().Restore().AnyTimes()
	s.EXPECT().Translate(gomock.Any(), gomock.Any()).AnyTimes()

	// only the selected cell gets a clip window and a selector fill
	s.EXPECT().ClipRect(gomock.Any()).Times(2)
	s.EXPECT().FillRect(gomock.Any(), 0.0, Paint{Color: "#89b4fa"}).Times(1)

	s.EXPECT().FillRect(Rect{MinX: 1, MinY: 1, MaxX: 32, MaxY: 2}, 0.0, Paint{Color: "#282840"}).Times(1)
	s.EXPECT().FillRect(gomock.Any(), 0.0, Paint{Color: "#3b3b5c", Pattern: "│"}).Times(2)
	s.EXPECT().StrokeRect(Rect{MaxX: 33, MaxY: 3}, 1.0, 0.0, Paint{Color: "#3b3b5c"}).Times(1)

	// three normal labels plus one selected label
	s.EXPECT().DrawText(gomock.Any(), "Label", Paint{Color: "#cdd6f4"}).Times(3)
	s.EXPECT().DrawText(gomock.Any(), "Label", Paint{Color: "#1e1e2e"}).Times(1)

	r.Draw(s)
}

func TestRowDrawWithoutLayoutDrawsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newTestRow(Style{}, equalCells(2)...)
	r.Draw(NewMockSurface(ctrl))
}
