package components

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/Akashdeep-Patra/segbar/internal/common"
	"github.com/Akashdeep-Patra/segbar/internal/segment"
	"github.com/Akashdeep-Patra/segbar/internal/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultFrameRate = 60
	// dragThreshold is how far, in columns, a press has to move before it
	// becomes a drag instead of a tap.
	dragThreshold = 1
)

var lastID int64

func nextID() int { return int(atomic.AddInt64(&lastID, 1)) }

// SegmentedKeyMap holds the keybindings a focused row responds to.
type SegmentedKeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding
	Jump     key.Binding
}

// DefaultSegmentedKeyMap returns the default row keybindings.
func DefaultSegmentedKeyMap() SegmentedKeyMap {
	return SegmentedKeyMap{
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/←", "previous segment")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/→", "next segment")),
		First:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first segment")),
		Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last segment")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "click segment")),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to segment"),
		),
	}
}

// SegmentedOptions configures a Segmented row.
type SegmentedOptions struct {
	Name         string
	Duration     time.Duration
	Easing       segment.Easing
	FrameRate    int
	Snap         bool
	AnimateOnTap bool
	// Fill stretches the row over the width it is given. Otherwise the row
	// takes its natural width, capped by Width when that is positive.
	Fill     bool
	Width    int
	Selected int
}

// frameMsg drives one animation frame. Frames carrying an old tag belong to
// an animation that has since been restarted and are dropped.
type frameMsg struct {
	id  int
	tag int
	at  time.Time
}

type press struct {
	x        int
	cell     int
	dragging bool
}

// eventQueue collects controller callbacks until Update turns them into
// commands. It is shared by every copy of a Segmented.
type eventQueue struct{ msgs []tea.Msg }

func (q *eventQueue) push(m tea.Msg) { q.msgs = append(q.msgs, m) }

func (q *eventQueue) drain() []tea.Msg {
	msgs := q.msgs
	q.msgs = nil
	return msgs
}

// Segmented is a Bubbletea component that shows one segmented row and
// turns keys, mouse input and animation frames into controller calls.
type Segmented struct {
	id   int
	name string
	row  *segment.Row
	ctrl *segment.Controller
	keys SegmentedKeyMap

	fill     bool
	maxWidth int
	snap     bool
	interval time.Duration
	renderer *lipgloss.Renderer

	width   int
	x, y    int
	focused bool

	tag     int
	started time.Time
	now     func() time.Time

	press  *press
	events *eventQueue
}

// NewSegmented wraps row in a component. The row must already hold its
// cells; the controller starts resting on opts.Selected.
func NewSegmented(row *segment.Row, opts SegmentedOptions) Segmented {
	ctrl := segment.NewController(row, opts.Duration)
	if opts.Easing != nil {
		ctrl.Easing = opts.Easing
	}
	ctrl.AnimateOnTap = opts.AnimateOnTap
	ctrl.Select(opts.Selected, false)

	rate := opts.FrameRate
	if rate <= 0 {
		rate = defaultFrameRate
	}

	s := Segmented{
		id:       nextID(),
		name:     opts.Name,
		row:      row,
		ctrl:     ctrl,
		keys:     DefaultSegmentedKeyMap(),
		fill:     opts.Fill,
		maxWidth: opts.Width,
		snap:     opts.Snap,
		interval: time.Second / time.Duration(rate),
		renderer: lipgloss.DefaultRenderer(),
		now:      time.Now,
		events:   &eventQueue{},
	}

	name, q := s.name, s.events
	ctrl.OnPositionChanged(func(i int) {
		log.Printf("row %q settled on segment %d", name, i)
		q.push(common.PositionChangedMsg{Row: name, Index: i})
	})
	ctrl.OnCellClicked(func(i int) {
		log.Printf("row %q segment %d clicked", name, i)
		q.push(common.CellClickedMsg{Row: name, Index: i})
	})

	s.relayout()
	return s
}

// Name is the row name used in emitted messages.
func (s Segmented) Name() string { return s.name }

// Row returns the underlying row.
func (s Segmented) Row() *segment.Row { return s.row }

// Selected is the last settled segment.
func (s Segmented) Selected() int { return s.ctrl.Selected() }

// Target is the segment the row rests on or is heading for.
func (s Segmented) Target() int { return s.ctrl.Target() }

// Position is the continuous indicator position.
func (s Segmented) Position() float64 { return s.ctrl.Position() }

// State is the controller state.
func (s Segmented) State() segment.State { return s.ctrl.State() }

// Focus makes the row respond to keys.
func (s *Segmented) Focus() { s.focused = true }

// Blur stops the row responding to keys.
func (s *Segmented) Blur() { s.focused = false }

// Focused reports whether the row has keyboard focus.
func (s Segmented) Focused() bool { return s.focused }

// SetRenderer sets the lipgloss renderer used by View.
func (s *Segmented) SetRenderer(r *lipgloss.Renderer) {
	if r != nil {
		s.renderer = r
	}
}

// SetSize sets the width available to the row and lays it out again.
func (s *Segmented) SetSize(width int) {
	s.width = width
	s.relayout()
}

// SetOrigin records where the row is drawn on screen, for mouse hit testing.
func (s *Segmented) SetOrigin(x, y int) {
	s.x, s.y = x, y
}

// Width is the laid-out width in columns.
func (s Segmented) Width() int { return int(s.row.Size().Width) }

// Height is the laid-out height in rows.
func (s Segmented) Height() int { return int(s.row.Size().Height) }

// Contains reports whether the screen cell (x, y) is inside the row.
func (s Segmented) Contains(x, y int) bool {
	lx, ly := x-s.x, y-s.y
	return lx >= 0 && ly >= 0 && lx < s.Width() && ly < s.Height()
}

func (s *Segmented) relayout() {
	limit := s.width
	if s.maxWidth > 0 && (limit <= 0 || s.maxWidth < limit) {
		limit = s.maxWidth
	}
	var c segment.Constraints
	if limit > 0 {
		c.Width = segment.AxisConstraint{Size: float64(limit), Mode: segment.AtMost}
		if s.fill {
			c.Width.Mode = segment.Exact
		}
	}
	size := s.row.Measure(c)
	size.Width = math.Ceil(size.Width)
	if c.Width.Mode != segment.Unspecified {
		size.Width = math.Min(size.Width, c.Width.Size)
	}
	size.Height = math.Ceil(size.Height)
	s.row.Layout(size)
}

// Select moves the row to index, animated or not.
func (s Segmented) Select(index int, animate bool) (Segmented, tea.Cmd) {
	s.ctrl.Select(index, animate)
	cmd := s.startAnimation()
	return s, tea.Batch(cmd, s.flush())
}

// Update handles keys (when focused), mouse input and animation frames.
func (s Segmented) Update(msg tea.Msg) (Segmented, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		s, cmd = s.handleKey(msg)
	case tea.MouseMsg:
		s, cmd = s.handleMouse(msg)
	case frameMsg:
		if msg.id != s.id || msg.tag != s.tag {
			return s, nil
		}
		if s.ctrl.Tick(msg.at.Sub(s.started)) {
			cmd = s.nextFrame()
		}
	default:
		return s, nil
	}
	return s, tea.Batch(cmd, s.flush())
}

func (s Segmented) handleKey(msg tea.KeyMsg) (Segmented, tea.Cmd) {
	target := s.ctrl.Target()
	switch {
	case key.Matches(msg, s.keys.Prev):
		s.ctrl.Select(target-1, true)
	case key.Matches(msg, s.keys.Next):
		s.ctrl.Select(target+1, true)
	case key.Matches(msg, s.keys.First):
		s.ctrl.Select(0, false)
	case key.Matches(msg, s.keys.Last):
		s.ctrl.Select(s.row.Len()-1, false)
	case key.Matches(msg, s.keys.Jump):
		s.ctrl.Select(int(msg.String()[0]-'1'), false)
	case key.Matches(msg, s.keys.Activate):
		s.ctrl.Tap(target)
	default:
		return s, nil
	}
	cmd := s.startAnimation()
	return s, cmd
}

func (s Segmented) handleMouse(msg tea.MouseMsg) (Segmented, tea.Cmd) {
	lx := msg.X - s.x
	at := float64(lx) + 0.5

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !s.Contains(msg.X, msg.Y) {
			return s, nil
		}
		cell, ok := s.row.CellAt(at)
		if !ok {
			return s, nil
		}
		s.press = &press{x: lx, cell: cell}

	case tea.MouseActionMotion:
		p := s.press
		if p == nil {
			return s, nil
		}
		if !p.dragging {
			if abs(lx-p.x) < dragThreshold {
				return s, nil
			}
			p.dragging = true
			s.ctrl.DragStart()
		}
		s.ctrl.DragUpdate(s.row.PositionAt(at))

	case tea.MouseActionRelease:
		p := s.press
		s.press = nil
		if p == nil {
			return s, nil
		}
		if p.dragging {
			s.ctrl.DragEnd(s.snap)
			cmd := s.startAnimation()
			return s, cmd
		}
		if cell, ok := s.row.CellAt(at); ok && cell == p.cell {
			s.ctrl.Tap(cell)
			cmd := s.startAnimation()
			return s, cmd
		}
	}
	return s, nil
}

// startAnimation begins a new frame sequence when the controller has just
// started animating. Every call that can start an animation restarts it
// from the current position, so the clock is reset too.
func (s *Segmented) startAnimation() tea.Cmd {
	if s.ctrl.State() != segment.StateAnimating {
		return nil
	}
	s.tag++
	s.started = s.now()
	return s.nextFrame()
}

func (s Segmented) nextFrame() tea.Cmd {
	id, tag := s.id, s.tag
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return frameMsg{id: id, tag: tag, at: t}
	})
}

func (s Segmented) flush() tea.Cmd {
	msgs := s.events.drain()
	if len(msgs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(msgs))
	for i, m := range msgs {
		cmds[i] = common.CmdMsg(m)
	}
	return tea.Batch(cmds...)
}

// View draws the row at its current position.
func (s Segmented) View() string {
	c := ui.NewCanvas(s.Width(), s.Height()).WithRenderer(s.renderer)
	s.row.Draw(c)
	return c.Render()
}

// ShortHelp returns help entries for the row keybindings.
func (s Segmented) ShortHelp() []HelpEntry {
	bindings := []key.Binding{s.keys.Prev, s.keys.Next, s.keys.First, s.keys.Last, s.keys.Jump, s.keys.Activate}
	entries := make([]HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		entries = append(entries, HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return entries
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
