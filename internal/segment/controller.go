package segment

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// State is the controller's position state.
//
//	           select(animate)                tick: progress >= 1
//	IDLE ─────────────────────────► ANIMATING ───────────────────► IDLE
//	  │ ▲                              ▲
//	  │ │ dragEnd(no snap)             │ dragEnd(snap)
//	  ▼ │                              │
//	DRAGGING ──────────────────────────┘
//
// select() from any state cancels what is running and starts over from the
// current position.
type State int

const (
	StateIdle State = iota
	StateAnimating
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	case StateDragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Track is what a Controller moves. *Row implements it.
type Track interface {
	Len() int
	Position() float64
	SetPosition(p float64)
}

// Controller turns discrete selection requests and continuous drag input
// into the track position. Animation is driven from outside: the host calls
// Tick with the absolute time elapsed since the animation started, so
// irregular frame intervals are harmless.
type Controller struct {
	// Duration is how long an animated transition takes.
	Duration time.Duration
	// Easing shapes animated transitions. Nil means Linear.
	Easing Easing
	// AnimateOnTap animates the selection change caused by Tap.
	AnimateOnTap bool

	track  Track
	state  State
	start  float64
	target int
	last   time.Duration

	settled   int
	listeners listeners
}

// NewController returns an idle controller for track, resting on the
// track's current position rounded to a cell.
func NewController(track Track, duration time.Duration) *Controller {
	c := &Controller{
		Duration:     duration,
		Easing:       EaseInOut,
		AnimateOnTap: true,
		track:        track,
	}
	c.target = c.nearest(track.Position())
	c.settled = c.target
	if track.Len() > 0 {
		track.SetPosition(float64(c.target))
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Position returns the track position.
func (c *Controller) Position() float64 { return c.track.Position() }

// Target is the cell the controller is resting on or heading for.
func (c *Controller) Target() int { return c.target }

// Selected is the index of the last settled selection.
func (c *Controller) Selected() int { return c.settled }

// OnPositionChanged registers fn to run whenever the controller settles on
// a new cell. It does not fire for intermediate frames. The returned
// function unregisters fn.
func (c *Controller) OnPositionChanged(fn func(index int)) func() {
	return c.listeners.add(&c.listeners.changed, fn)
}

// OnCellClicked registers fn to run when a cell is tapped.
func (c *Controller) OnCellClicked(fn func(index int)) func() {
	return c.listeners.add(&c.listeners.clicked, fn)
}

// Select moves to target, clamped to the track. An empty track ignores it.
func (c *Controller) Select(target int, animate bool) {
	n := c.track.Len()
	if n == 0 {
		return
	}
	target = min(max(target, 0), n-1)
	c.target = target

	if !animate || float64(target) == c.track.Position() {
		c.settle(target)
		return
	}
	c.state = StateAnimating
	c.start = c.track.Position()
	c.last = 0
}

// Tick advances an animation to elapsed time since it started. It returns
// true while the animation is still running.
func (c *Controller) Tick(elapsed time.Duration) bool {
	if c.state != StateAnimating {
		return false
	}
	if elapsed < c.last {
		return true
	}
	c.last = elapsed

	progress := 1.0
	if c.Duration > 0 {
		progress = float64(elapsed) / float64(c.Duration)
	}
	if progress >= 1 {
		c.settle(c.target)
		return false
	}

	eased := progress
	if c.Easing != nil {
		eased = c.Easing(math.Max(progress, 0))
	}
	c.track.SetPosition(c.start + (float64(c.target)-c.start)*eased)
	return true
}

// DragStart hands the position over to continuous input, cancelling any
// running animation.
func (c *Controller) DragStart() {
	if c.track.Len() == 0 {
		return
	}
	c.state = StateDragging
}

// DragUpdate follows raw input 1:1, clamped to the track.
func (c *Controller) DragUpdate(raw float64) {
	if c.state != StateDragging {
		return
	}
	c.track.SetPosition(raw)
}

// DragEnd releases the drag. With snap the position animates to the nearest
// cell; without it the position jumps there.
func (c *Controller) DragEnd(snap bool) {
	if c.state != StateDragging {
		return
	}
	c.state = StateIdle
	c.Select(c.nearest(c.track.Position()), snap)
}

// Tap reports a click on cell index and selects it.
func (c *Controller) Tap(index int) {
	n := c.track.Len()
	if index < 0 || index >= n {
		return
	}
	notify(c.listeners.clicked, index)
	c.Select(index, c.AnimateOnTap)
}

// Cancel stops an animation or drag where it is and snaps to the nearest
// cell without animating.
func (c *Controller) Cancel() {
	if c.state == StateIdle || c.track.Len() == 0 {
		return
	}
	c.settle(c.nearest(c.track.Position()))
}

func (c *Controller) settle(target int) {
	c.state = StateIdle
	c.target = target
	c.track.SetPosition(float64(target))
	if target == c.settled {
		return
	}
	c.settled = target
	notify(c.listeners.changed, target)
}

func (c *Controller) nearest(p float64) int {
	n := c.track.Len()
	if n == 0 {
		return 0
	}
	return min(max(int(math.Round(p)), 0), n-1)
}

type listener struct {
	id int
	fn func(int)
}

// listeners run in registration order.
type listeners struct {
	nextID  int
	changed []listener
	clicked []listener
}

func (l *listeners) add(set *[]listener, fn func(int)) func() {
	id := l.nextID
	l.nextID++
	*set = append(*set, listener{id: id, fn: fn})
	return func() {
		*set = slices.DeleteFunc(*set, func(e listener) bool { return e.id == id })
	}
}

// notify iterates a copy so a listener may unsubscribe while it runs.
func notify(set []listener, index int) {
	for _, e := range slices.Clone(set) {
		e.fn(index)
	}
}
