// Package screen hosts entity trees as navigable menu pages: a title, one
// content entity, a fixed Back control and a navigator that keeps the
// history of shown screens.
package screen

import (
	"fmt"

	"github.com/atomicstack/menunav/internal/element"
	"github.com/atomicstack/menunav/internal/logging"
	"github.com/atomicstack/menunav/internal/logging/events"
	"github.com/atomicstack/menunav/internal/signal"
	"github.com/atomicstack/menunav/internal/visibility"
)

// maxFlushPasses bounds how often one Flush re-runs layout while layout
// itself keeps dirtying the screen.
const maxFlushPasses = 4

// NavigationType tells show and hide hooks which way the history moved.
type NavigationType int

const (
	Forwards NavigationType = iota
	Backwards
)

func (n NavigationType) String() string {
	if n == Backwards {
		return "backwards"
	}
	return "forwards"
}

// SelectOnShow decides which control receives focus when a screen is shown.
type SelectOnShow int

const (
	// AlwaysForget focuses the default control every time.
	AlwaysForget SelectOnShow = iota
	// ForgetBackwards focuses the default control when navigating forwards
	// and the last focused control when coming back.
	ForgetBackwards
	// NeverForget always returns to the last focused control.
	NeverForget
)

// ParseSelectOnShow converts the names used in layout documents.
func ParseSelectOnShow(s string) (SelectOnShow, error) {
	switch s {
	case "", "forget_backwards":
		return ForgetBackwards, nil
	case "always_forget":
		return AlwaysForget, nil
	case "never_forget":
		return NeverForget, nil
	}
	return 0, fmt.Errorf("unknown select_on_show %q", s)
}

// Screen is a page the navigator can show.
type Screen interface {
	element.Parent

	Title() string
	Back() *element.Button
	// Elements returns every leaf on the screen, Back included.
	Elements() []*element.Element
	SetSurface(s element.Surface) error
	// Dirty reports whether layout is pending.
	Dirty() bool
	// Flush runs pending layout and reports whether any pass ran.
	Flush() bool
	// Selection returns the control to focus when the screen is shown.
	Selection(nav NavigationType) *element.Selectable
	// RequestBack runs the go-back hooks and, unless vetoed, returns to the
	// previous screen.
	RequestBack()

	base() *Base
}

// content is implemented by every concrete screen.
type content interface {
	layout()
	elements() []*element.Element
	defaultSelectable() (*element.Selectable, bool)
}

// Base carries everything concrete screens share.
type Base struct {
	impl    content
	title   string
	vis     *visibility.Manager
	back    *element.Button
	surface element.Surface
	nav     *Navigator

	dirty    bool
	flushing bool

	last      *element.Selectable
	focusSubs map[*element.Selectable]signal.Subscription

	onShow   signal.Signal[NavigationType]
	onHide   signal.Signal[NavigationType]
	onGoBack []func() error

	// Anchor is the top-centre point content is laid out from.
	Anchor element.Point
	// SelectOnShow picks the focus target on show.
	SelectOnShow SelectOnShow
	// AllowGoBack lets Back return to the previous screen. When false, only
	// the OnGoBack hooks run.
	AllowGoBack bool
}

func newBase(title string, impl content) *Base {
	b := &Base{
		impl:         impl,
		title:        title,
		vis:          visibility.New(true),
		back:         element.NewButton("Back"),
		focusSubs:    make(map[*element.Selectable]signal.Subscription),
		dirty:        true,
		Anchor:       element.TopCenterAnchor,
		SelectOnShow: ForgetBackwards,
		AllowGoBack:  true,
	}
	b.vis.SetVisibleSelf(false)
	b.back.OnSubmit = b.RequestBack
	// attaching a fresh button to a fresh screen cannot fail
	_ = b.adopt(b.back)
	return b
}

func (b *Base) base() *Base {
	return b
}

// Visibility is hidden until the navigator shows the screen.
func (b *Base) Visibility() *visibility.Manager {
	return b.vis
}

// Title returns the screen title.
func (b *Base) Title() string {
	return b.title
}

// SetTitle replaces the screen title.
func (b *Base) SetTitle(title string) {
	b.title = title
}

// Back returns the screen's Back control.
func (b *Base) Back() *element.Button {
	return b.back
}

// Shown reports whether the screen is the navigator's current screen.
func (b *Base) Shown() bool {
	return b.vis.VisibleSelf()
}

// Elements returns every leaf on the screen, Back last.
func (b *Base) Elements() []*element.Element {
	return append(b.impl.elements(), b.back.Element)
}

// SetSurface creates widgets for every element on s.
func (b *Base) SetSurface(s element.Surface) error {
	if b.surface != nil {
		return fmt.Errorf("screen %q: %w", b.title, element.ErrAlreadyAttached)
	}
	b.surface = s
	if err := b.back.SetSurface(s); err != nil {
		return err
	}
	for _, e := range b.entities() {
		if err := e.SetSurface(s); err != nil {
			return err
		}
	}
	return nil
}

// entities lists the top-level entities attached to the screen besides Back.
func (b *Base) entities() []element.Entity {
	if lister, ok := b.impl.(interface{ entities() []element.Entity }); ok {
		return lister.entities()
	}
	return nil
}

// adopt attaches an entity directly below the screen and tracks its changes.
func (b *Base) adopt(e element.Entity) error {
	if err := e.AttachTo(b); err != nil {
		return err
	}
	if b.surface != nil {
		if err := e.SetSurface(b.surface); err != nil {
			e.Detach()
			return err
		}
	}
	e.OnChange(b.MarkDirty)
	b.MarkDirty()
	return nil
}

// MarkDirty schedules a layout pass for the next Flush.
func (b *Base) MarkDirty() {
	b.dirty = true
}

// Dirty reports whether layout is pending.
func (b *Base) Dirty() bool {
	return b.dirty
}

// Flush lays the screen out while it is dirty, at most maxFlushPasses times.
// Calls made while a flush is running are ignored.
func (b *Base) Flush() bool {
	if b.flushing || !b.dirty {
		return false
	}
	b.flushing = true
	defer func() { b.flushing = false }()

	passes := 0
	for b.dirty && passes < maxFlushPasses {
		b.dirty = false
		b.impl.layout()
		passes++
	}
	if b.dirty {
		events.Layout.Unsettled(b.title, passes)
	}
	b.trackFocus()
	events.Layout.Flush(b.title, passes)
	return true
}

// controlsAnchor returns the point one large row below the lowest visible
// element of elems, or below Anchor when none is visible.
func (b *Base) controlsAnchor(elems []*element.Element) element.Point {
	y := b.Anchor.Y
	for _, e := range elems {
		if e.Visible() && e.Anchor().Y < y {
			y = e.Anchor().Y
		}
	}
	return element.Point{X: b.Anchor.X, Y: y - element.VSpaceLarge}
}

// trackFocus remembers the last focused control among the current elements.
func (b *Base) trackFocus() {
	present := make(map[*element.Selectable]bool)
	for _, e := range b.Elements() {
		c := e.Control()
		if c == nil {
			continue
		}
		sel := c.Selectable()
		present[sel] = true
		if _, ok := b.focusSubs[sel]; ok {
			continue
		}
		b.focusSubs[sel] = sel.OnFocus(func(focused bool) {
			if focused {
				b.last = sel
			}
		})
	}
	for sel, id := range b.focusSubs {
		if !present[sel] {
			sel.RemoveOnFocus(id)
			delete(b.focusSubs, sel)
			if b.last == sel {
				b.last = nil
			}
		}
	}
}

// Selection returns the control to focus on show.
func (b *Base) Selection(nav NavigationType) *element.Selectable {
	switch b.SelectOnShow {
	case ForgetBackwards:
		if nav == Forwards {
			return b.defaultSelection()
		}
		return b.lastOrDefault()
	case NeverForget:
		return b.lastOrDefault()
	}
	return b.defaultSelection()
}

func (b *Base) defaultSelection() *element.Selectable {
	if s, ok := b.impl.defaultSelectable(); ok && usable(s) {
		return s
	}
	return b.back.Selectable()
}

func (b *Base) lastOrDefault() *element.Selectable {
	if b.last != nil && usable(b.last) {
		return b.last
	}
	return b.defaultSelection()
}

// usable reports whether s can take focus right now.
func usable(s *element.Selectable) bool {
	return s.Interactable() && s.Control().Visible()
}

// OnShow registers fn to run each time the screen is shown.
func (b *Base) OnShow(fn func(NavigationType)) signal.Subscription {
	return b.onShow.Subscribe(fn)
}

// OnHide registers fn to run each time the screen is hidden.
func (b *Base) OnHide(fn func(NavigationType)) signal.Subscription {
	return b.onHide.Subscribe(fn)
}

// OnGoBack registers fn to run when Back is activated, before navigating.
// A failing hook logs its error and forces navigation even when
// AllowGoBack is false.
func (b *Base) OnGoBack(fn func() error) {
	b.onGoBack = append(b.onGoBack, fn)
}

// RequestBack runs the go-back hooks and navigates back when allowed.
func (b *Base) RequestBack() {
	failed := false
	for _, fn := range b.onGoBack {
		if err := fn(); err != nil {
			failed = true
			events.Screen.HookError(b.title, err)
			logging.Error(fmt.Errorf("screen %q go-back hook: %w", b.title, err))
		}
	}
	if (failed || b.AllowGoBack) && b.nav != nil {
		b.nav.GoBack(1)
	}
}

func (b *Base) show(nav NavigationType, n *Navigator) {
	b.nav = n
	b.vis.SetVisibleSelf(true)
	b.Flush()
	b.onShow.Emit(nav)
}

func (b *Base) hide(nav NavigationType) {
	b.vis.SetVisibleSelf(false)
	b.onHide.Emit(nav)
}
