package segment

import (
	"math"
	"strings"
	"testing"
	"time"
)

func newTestController(n int) (*Row, *Controller) {
	r := newTestRow(Style{}, equalCells(n)...)
	c := NewController(r, 100*time.Millisecond)
	c.Easing = Linear
	return r, c
}

func fractions(r *Row) []float64 {
	out := make([]float64, r.Len())
	for i, c := range r.Cells() {
		out[i] = c.Clip().Fraction
	}
	return out
}

func TestSelectRoundTrip(t *testing.T) {
	_, c := newTestController(5)
	for k := 0; k < 5; k++ {
		c.Select(k, false)
		if got := c.Position(); got != float64(k) {
			t.Errorf("Select(%d, false) then Position() = %v", k, got)
		}
		if c.State() != StateIdle {
			t.Errorf("State() = %v, want idle", c.State())
		}
	}
}

func TestSelectClamps(t *testing.T) {
	tests := []struct {
		target, want int
	}{
		{-1, 0},
		{-40, 0},
		{3, 2},
		{99, 2},
	}
	for _, tt := range tests {
		r, c := newTestController(3)
		c.Select(1, false)
		c.Select(tt.target, false)
		if c.Position() != float64(tt.want) || c.Target() != tt.want {
			t.Errorf("Select(%d): position %v target %d, want %d", tt.target, c.Position(), c.Target(), tt.want)
		}
		ref, rc := newTestController(3)
		rc.Select(1, false)
		rc.Select(tt.want, false)
		got, want := fractions(r), fractions(ref)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Select(%d) cell %d fraction %v, Select(%d) gives %v", tt.target, i, got[i], tt.want, want[i])
			}
		}
	}
}

func TestSelectOnEmptyRowIsIgnored(t *testing.T) {
	r := NewRow(Style{})
	c := NewController(r, time.Second)
	c.Select(3, true)
	c.DragStart()
	if c.State() != StateIdle || c.Position() != 0 {
		t.Errorf("empty row: state %v position %v, want idle at 0", c.State(), c.Position())
	}
}

// Three cells, 300 wide: jump 0 -> 2 without animation never shows a
// partial cell.
func TestMultiCellJumpWithoutAnimation(t *testing.T) {
	r, c := newTestController(3)
	r.Layout(Size{Width: 300, Height: 1})

	c.Select(0, false)
	if got := r.Cell(0).Clip(); got != (ClipState{Edge: EdgeRight, Fraction: 1}) {
		t.Errorf("after Select(0): cell 0 = %+v, want {right 1}", got)
	}
	for i := 1; i < 3; i++ {
		if f := r.Cell(i).Clip().Fraction; f != 0 {
			t.Errorf("after Select(0): cell %d fraction = %v, want 0", i, f)
		}
	}

	c.Select(2, false)
	want := []float64{0, 0, 1}
	for i, f := range fractions(r) {
		if f != want[i] {
			t.Errorf("after Select(2): cell %d fraction = %v, want %v", i, f, want[i])
		}
	}
}

func TestDragHalfway(t *testing.T) {
	r, c := newTestController(3)
	c.DragStart()
	c.DragUpdate(0.5)

	if got := r.Cell(0).Clip(); got != (ClipState{Edge: EdgeRight, Fraction: 0.5}) {
		t.Errorf("cell 0 = %+v, want {right 0.5}", got)
	}
	if got := r.Cell(1).Clip(); got != (ClipState{Edge: EdgeLeft, Fraction: 0.5}) {
		t.Errorf("cell 1 = %+v, want {left 0.5}", got)
	}
	if f := r.Cell(2).Clip().Fraction; f != 0 {
		t.Errorf("cell 2 fraction = %v, want 0", f)
	}
}

func TestDragMonotonicEnteringFraction(t *testing.T) {
	r, c := newTestController(4)
	c.DragStart()
	prev := 0.0
	for raw := 1.05; raw < 2; raw += 0.1 {
		c.DragUpdate(raw)
		f := r.Cell(2).Clip().Fraction
		if f < prev {
			t.Errorf("DragUpdate(%.2f): entering fraction %v dropped below %v", raw, f, prev)
		}
		prev = f
	}
}

func TestDragClampsAndSnaps(t *testing.T) {
	r, c := newTestController(3)
	var settled []int
	c.OnPositionChanged(func(i int) { settled = append(settled, i) })

	c.DragStart()
	c.DragUpdate(-4)
	if r.Position() != 0 {
		t.Errorf("DragUpdate(-4) position = %v, want 0", r.Position())
	}
	c.DragUpdate(9)
	if r.Position() != 2 {
		t.Errorf("DragUpdate(9) position = %v, want 2", r.Position())
	}

	c.DragUpdate(1.4)
	c.DragEnd(true)
	if c.State() != StateAnimating || c.Target() != 1 {
		t.Fatalf("DragEnd(true): state %v target %d, want animating to 1", c.State(), c.Target())
	}
	c.Tick(50 * time.Millisecond)
	if got := c.Position(); got < 1.19 || got > 1.21 {
		t.Errorf("halfway back position = %v, want 1.2", got)
	}
	if running := c.Tick(100 * time.Millisecond); running {
		t.Error("Tick(duration) reported still running")
	}
	if c.State() != StateIdle || c.Position() != 1 {
		t.Errorf("after snap: state %v position %v, want idle at 1", c.State(), c.Position())
	}
	if len(settled) != 1 || settled[0] != 1 {
		t.Errorf("position changed events = %v, want [1]", settled)
	}
}

func TestDragEndWithoutSnapJumps(t *testing.T) {
	_, c := newTestController(3)
	c.DragStart()
	c.DragUpdate(1.6)
	c.DragEnd(false)
	if c.State() != StateIdle || c.Position() != 2 {
		t.Errorf("DragEnd(false): state %v position %v, want idle at 2", c.State(), c.Position())
	}
}

func TestDragUpdateNaNKeepsPosition(t *testing.T) {
	r, c := newTestController(3)
	c.DragStart()
	c.DragUpdate(0.5)
	c.DragUpdate(math.NaN())
	if c.Position() != 0.5 || r.Position() != 0.5 {
		t.Errorf("Position() after NaN = %v, want 0.5", c.Position())
	}
	c.DragEnd(false)
	if c.State() != StateIdle || c.Selected() != 1 {
		t.Errorf("DragEnd: state %v selected %d, want idle on 1", c.State(), c.Selected())
	}
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	_, c := newTestController(3)
	var order []string
	for _, name := range []string{"a", "b", "c", "d"} {
		name := name
		c.OnPositionChanged(func(int) { order = append(order, name) })
	}
	c.Select(1, false)
	if got := strings.Join(order, ""); got != "abcd" {
		t.Errorf("listener order = %q, want abcd", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	_, c := newTestController(3)
	var order []string
	c.OnPositionChanged(func(int) { order = append(order, "a") })
	var stopB func()
	stopB = c.OnPositionChanged(func(int) {
		order = append(order, "b")
		stopB()
	})
	c.OnPositionChanged(func(int) { order = append(order, "c") })

	c.Select(1, false)
	c.Select(2, false)
	if got := strings.Join(order, ""); got != "abcac" {
		t.Errorf("listener calls = %q, want abcac", got)
	}
}

func TestDragUpdateOutsideDragIsIgnored(t *testing.T) {
	_, c := newTestController(3)
	c.DragUpdate(1.5)
	c.DragEnd(true)
	if c.Position() != 0 || c.State() != StateIdle {
		t.Errorf("position %v state %v, want idle at 0", c.Position(), c.State())
	}
}

func TestAnimationTicks(t *testing.T) {
	_, c := newTestController(3)
	var settled []int
	c.OnPositionChanged(func(i int) { settled = append(settled, i) })

	c.Select(2, true)
	if c.State() != StateAnimating {
		t.Fatalf("State() = %v, want animating", c.State())
	}

	c.Tick(10 * time.Millisecond)
	c.Tick(50 * time.Millisecond)
	if got := c.Position(); got != 1 {
		t.Errorf("Position() at 50ms = %v, want 1", got)
	}
	// a late, out-of-order tick changes nothing
	c.Tick(30 * time.Millisecond)
	if got := c.Position(); got != 1 {
		t.Errorf("Position() after stale tick = %v, want 1", got)
	}
	if len(settled) != 0 {
		t.Errorf("position changed fired mid-animation: %v", settled)
	}

	c.Tick(250 * time.Millisecond)
	if c.Position() != 2 || c.State() != StateIdle {
		t.Errorf("after completion: position %v state %v, want idle at 2", c.Position(), c.State())
	}
	if len(settled) != 1 || settled[0] != 2 {
		t.Errorf("position changed events = %v, want [2]", settled)
	}
	if c.Tick(300 * time.Millisecond) {
		t.Error("Tick() while idle reported running")
	}
}

func TestSelectRestartsFromCurrentPosition(t *testing.T) {
	_, c := newTestController(3)
	c.Select(2, true)
	c.Tick(50 * time.Millisecond)

	c.Select(0, true)
	if c.State() != StateAnimating {
		t.Fatalf("State() = %v, want animating", c.State())
	}
	c.Tick(50 * time.Millisecond)
	if got := c.Position(); got != 0.5 {
		t.Errorf("Position() = %v, want 0.5", got)
	}
}

func TestSelectDuringDragCancelsDrag(t *testing.T) {
	_, c := newTestController(3)
	c.DragStart()
	c.DragUpdate(0.7)
	c.Select(2, true)
	if c.State() != StateAnimating {
		t.Errorf("State() = %v, want animating", c.State())
	}
	c.DragUpdate(0.1)
	if c.Position() != 0.7 {
		t.Errorf("DragUpdate after cancel moved position to %v", c.Position())
	}
}

func TestZeroDurationCompletesOnFirstTick(t *testing.T) {
	_, c := newTestController(3)
	c.Duration = 0
	c.Select(1, true)
	c.Tick(0)
	if c.State() != StateIdle || c.Position() != 1 {
		t.Errorf("state %v position %v, want idle at 1", c.State(), c.Position())
	}
}

func TestTapFiresClickAndSelects(t *testing.T) {
	_, c := newTestController(3)
	c.AnimateOnTap = false

	var clicked []int
	unsubscribe := c.OnCellClicked(func(i int) { clicked = append(clicked, i) })

	c.Tap(2)
	c.Tap(7)
	if len(clicked) != 1 || clicked[0] != 2 {
		t.Errorf("clicked = %v, want [2]", clicked)
	}
	if c.Position() != 2 {
		t.Errorf("Position() = %v, want 2", c.Position())
	}

	unsubscribe()
	c.Tap(0)
	if len(clicked) != 1 {
		t.Errorf("listener still called after unsubscribe: %v", clicked)
	}
}

func TestCancelSnapsToNearest(t *testing.T) {
	_, c := newTestController(4)
	c.Select(3, true)
	c.Tick(40 * time.Millisecond)
	c.Cancel()
	if c.State() != StateIdle || c.Position() != 1 {
		t.Errorf("Cancel(): state %v position %v, want idle at 1", c.State(), c.Position())
	}
}
