// Package viewer models the expandable image viewer: a two-state zoom machine and
// the window scroll subscription a zoomed viewer holds until it leaves the zoom.
package viewer

import (
	"strings"
	"sync"
)

// State is the zoom state of one viewer instance.
type State int

const (
	Normal State = iota
	Zoomed
)

func (s State) String() string {
	if s == Zoomed {
		return "zoomed"
	}
	return "normal"
}

// Event is a user interaction delivered to a viewer.
type Event int

const (
	EventNone Event = iota
	EventClick
	EventScroll
)

// ParseEvent maps a query value onto an Event. Unknown values are EventNone.
func ParseEvent(raw string) Event {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "click":
		return EventClick
	case "scroll":
		return EventScroll
	default:
		return EventNone
	}
}

// Next returns the state after ev. A non-expandable viewer is always Normal.
func Next(s State, ev Event, expandable bool) State {
	if !expandable {
		return Normal
	}
	switch ev {
	case EventClick:
		if s == Zoomed {
			return Normal
		}
		return Zoomed
	case EventScroll:
		return Normal
	default:
		return s
	}
}

// Window is a scroll event source shared by every viewer on a page.
type Window struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]func()
}

// NewWindow returns a Window with no listeners.
func NewWindow() *Window {
	return &Window{subs: make(map[uint64]func())}
}

// OnScroll registers fn and returns a release func. Calling release more than once is a no-op.
func (w *Window) OnScroll(fn func()) (release func()) {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	w.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.subs, id)
			w.mu.Unlock()
		})
	}
}

// Scroll dispatches one scroll event to a snapshot of the current listeners.
// Listeners may release themselves during dispatch.
func (w *Window) Scroll() {
	w.mu.Lock()
	fns := make([]func(), 0, len(w.subs))
	for _, fn := range w.subs {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Listeners returns the number of registered scroll listeners.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}

// Viewer is one image viewer instance. It holds a scroll subscription only while it is
// mounted, expandable and zoomed.
type Viewer struct {
	win *Window

	mu         sync.Mutex
	state      State
	expandable bool
	mounted    bool
	release    func()
}

// New returns an unmounted viewer in the Normal state.
func New(win *Window, expandable bool) *Viewer {
	return &Viewer{win: win, expandable: expandable}
}

// State returns the current zoom state.
func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Expandable reports whether clicks may zoom the viewer.
func (v *Viewer) Expandable() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.expandable
}

// Subscribed reports whether the viewer currently holds a scroll subscription.
func (v *Viewer) Subscribed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.release != nil
}

// Mount attaches the viewer. Mounting again drops any subscription from the previous mount first.
func (v *Viewer) Mount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.unsubscribeLocked()
	v.mounted = true
	v.syncLocked()
}

// Unmount detaches the viewer and releases its subscription.
func (v *Viewer) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mounted = false
	v.unsubscribeLocked()
}

// SetExpandable changes the expandable flag. Clearing it resets the viewer to Normal.
func (v *Viewer) SetExpandable(expandable bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.expandable = expandable
	if !expandable {
		v.state = Normal
	}
	v.syncLocked()
}

// Click delivers a click and returns the resulting state.
func (v *Viewer) Click() State {
	return v.apply(EventClick)
}

func (v *Viewer) onScroll() {
	v.apply(EventScroll)
}

func (v *Viewer) apply(ev Event) State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = Next(v.state, ev, v.expandable)
	v.syncLocked()
	return v.state
}

// syncLocked makes the subscription match the current state.
func (v *Viewer) syncLocked() {
	want := v.mounted && v.expandable && v.state == Zoomed
	switch {
	case want && v.release == nil:
		v.release = v.win.OnScroll(v.onScroll)
	case !want:
		v.unsubscribeLocked()
	}
}

func (v *Viewer) unsubscribeLocked() {
	if v.release != nil {
		v.release()
		v.release = nil
	}
}
