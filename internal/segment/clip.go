package segment

import "math"

// ClipEdge is the cell edge a reveal window is anchored to.
type ClipEdge int

const (
	EdgeRight ClipEdge = iota
	EdgeLeft
)

func (e ClipEdge) String() string {
	if e == EdgeLeft {
		return "left"
	}
	return "right"
}

// ClipState is how much of a cell's copy of the indicator is visible, and
// from which edge.
type ClipState struct {
	Edge     ClipEdge
	Fraction float64
}

// Partial reports whether the cell shows only part of the indicator.
func (s ClipState) Partial() bool { return s.Fraction > 0 && s.Fraction < 1 }

// Direction of travel between two successive positions.
type Direction int

const (
	Stationary Direction = iota
	Forward
	Backward
)

// snapEpsilon absorbs float noise from interpolation so a position that is
// "basically 2" is treated as resting on cell 2.
const snapEpsilon = 1e-9

// ClipModel turns a continuous row position into per-cell clip states.
//
// The indicator is one cell wide and spans [p, p+1) in cell units. For
// p = i + f the cell being left (i) keeps the right-hand 1-f of the
// indicator and the cell being entered (i+1) shows the left-hand f. No other
// cell ever shows a partial indicator; cells the indicator jumps over are
// snapped to hidden.
//
// The zero value is ready to use.
type ClipModel struct {
	states    []ClipState
	committed float64
	dir       Direction
	primed    bool
}

// Update recomputes the clip state of every cell for position and returns
// it, indexed by cell. The returned slice is owned by the model and is
// overwritten by the next call.
func (m *ClipModel) Update(position float64, n int) []ClipState {
	if n <= 0 {
		m.states = m.states[:0]
		m.primed = false
		return m.states
	}
	m.resize(n)

	if math.IsNaN(position) {
		// Not a position; stay where we are.
		position = m.committed
	}
	p := clamp(position, 0, float64(n-1))
	if r := math.Round(p); math.Abs(p-r) < snapEpsilon {
		p = r
	}

	switch {
	case !m.primed || p == m.committed:
		m.dir = Stationary
	case p > m.committed:
		m.dir = Forward
	default:
		m.dir = Backward
	}
	m.committed = p
	m.primed = true

	i := int(math.Floor(p))
	f := p - float64(i)

	if f == 0 {
		// At rest every cell shares one orientation.
		for k := range m.states {
			m.states[k] = ClipState{Edge: EdgeRight}
		}
		m.states[i].Fraction = 1
		return m.states
	}

	// Moving: everything off the boundary pair is hidden but keeps the edge
	// it last had, including cells skipped by a multi-cell jump.
	for k := range m.states {
		if k != i && k != i+1 {
			m.states[k].Fraction = 0
		}
	}
	m.states[i] = ClipState{Edge: EdgeRight, Fraction: 1 - f}
	m.states[i+1] = ClipState{Edge: EdgeLeft, Fraction: f}
	return m.states
}

// Direction reports which way the last Update moved.
func (m *ClipModel) Direction() Direction { return m.dir }

// Committed is the (clamped) position passed to the last Update.
func (m *ClipModel) Committed() float64 { return m.committed }

// Boundary returns the cells that are being left and entered, following the
// direction of travel. ok is false when the row is at rest on a cell.
func (m *ClipModel) Boundary() (leaving, entering int, ok bool) {
	i := int(math.Floor(m.committed))
	if !m.primed || float64(i) == m.committed {
		return i, i, false
	}
	if m.dir == Backward {
		return i + 1, i, true
	}
	return i, i + 1, true
}

func (m *ClipModel) resize(n int) {
	if cap(m.states) < n {
		grown := make([]ClipState, n)
		copy(grown, m.states)
		m.states = grown
		return
	}
	m.states = m.states[:n]
}

// ClipRect is the visible window of the indicator within a cell of the
// given width, in cell coordinates.
func ClipRect(s ClipState, width, height float64) Rect {
	w := clamp(s.Fraction, 0, 1) * width
	if s.Edge == EdgeLeft {
		return Rect{MinX: 0, MinY: 0, MaxX: w, MaxY: height}
	}
	return Rect{MinX: width - w, MinY: 0, MaxX: width, MaxY: height}
}

// Translation is the horizontal offset applied to a cell's copy of the
// indicator fill so the visible sliver sits where the single sliding
// indicator would be, rather than simply being wiped in place.
func Translation(s ClipState, width float64) float64 {
	d := (1 - clamp(s.Fraction, 0, 1)) * width
	if s.Edge == EdgeLeft {
		return -d
	}
	return d
}
