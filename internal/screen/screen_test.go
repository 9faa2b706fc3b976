package screen

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/atomicstack/menunav/internal/element"
	"github.com/atomicstack/menunav/internal/logging"
)

func simpleWith(t *testing.T, title string, names ...string) (*Simple, []*element.Button) {
	t.Helper()
	s := NewSimple(title)
	bs := make([]*element.Button, len(names))
	for i, name := range names {
		bs[i] = element.NewButton(name)
		if err := s.Add(bs[i]); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	return s, bs
}

func expectLink(t *testing.T, from *element.Selectable, d element.Direction, want *element.Selectable) {
	t.Helper()
	if got := from.Neighbor(d); got != want {
		t.Fatalf("%s %v: expected %v, got %v", from, d, want, got)
	}
}

func TestBasicLinksContentToBack(t *testing.T) {
	s, bs := simpleWith(t, "Options", "a", "b", "c")
	nav := NewNavigator()
	nav.Show(s, Add)

	back := s.Back().Selectable()
	expectLink(t, bs[0].Selectable(), element.Up, back)
	expectLink(t, bs[2].Selectable(), element.Down, back)
	expectLink(t, back, element.Down, bs[0].Selectable())
	expectLink(t, back, element.Up, bs[2].Selectable())
	expectLink(t, bs[0].Selectable(), element.Down, bs[1].Selectable())

	wantY := element.TopCenterAnchor.Y - 2*element.VSpaceMedium - element.VSpaceLarge
	if got := s.Back().Anchor().Y; got != wantY {
		t.Fatalf("expected Back below content at %v, got %v", wantY, got)
	}
	if nav.Focus() != bs[0].Selectable() {
		t.Fatalf("expected first control focused, got %v", nav.Focus())
	}
}

func TestBasicRejectsAttachedContent(t *testing.T) {
	column := element.NewVerticalGroup()
	if _, err := NewBasic("one", column); err != nil {
		t.Fatalf("first screen: %v", err)
	}
	if _, err := NewBasic("two", column); !errors.Is(err, element.ErrAlreadyAttached) {
		t.Fatalf("expected ErrAlreadyAttached, got %v", err)
	}
	if _, err := NewBasic("nil", nil); !errors.Is(err, element.ErrNilEntity) {
		t.Fatalf("expected ErrNilEntity, got %v", err)
	}
}

func TestFlushRunsOnlyWhenDirty(t *testing.T) {
	s, bs := simpleWith(t, "Options", "a", "b")
	if !s.Dirty() {
		t.Fatalf("expected new screen to be dirty")
	}
	if !s.Flush() {
		t.Fatalf("expected first flush to run layout")
	}
	if s.Flush() {
		t.Fatalf("expected clean screen to skip layout")
	}
	bs[1].SetVisibleSelf(false)
	if !s.Dirty() {
		t.Fatalf("expected hiding a child to dirty the screen")
	}
	s.Flush()
	expectLink(t, bs[0].Selectable(), element.Down, s.Back().Selectable())
}

type loopContent struct {
	b      *Base
	passes int
	nested bool
}

func (l *loopContent) layout() {
	l.passes++
	l.nested = l.b.Flush()
	l.b.MarkDirty()
}

func (l *loopContent) elements() []*element.Element { return nil }

func (l *loopContent) defaultSelectable() (*element.Selectable, bool) { return nil, false }

func TestFlushIsBoundedAndGuarded(t *testing.T) {
	impl := &loopContent{}
	impl.b = newBase("loop", impl)
	if !impl.b.Flush() {
		t.Fatalf("expected flush to run")
	}
	if impl.passes != maxFlushPasses {
		t.Fatalf("expected %d passes, got %d", maxFlushPasses, impl.passes)
	}
	if impl.nested {
		t.Fatalf("expected re-entrant flush to be ignored")
	}
	if !impl.b.Dirty() {
		t.Fatalf("expected screen to stay dirty after an unsettled flush")
	}
}

func TestScreenVisibilityGatesActivation(t *testing.T) {
	s, bs := simpleWith(t, "Options", "a")
	submitted := 0
	bs[0].OnSubmit = func() { submitted++ }
	if bs[0].Activate() {
		t.Fatalf("expected controls of an unshown screen to ignore activation")
	}
	nav := NewNavigator()
	nav.Show(s, Add)
	if !bs[0].Activate() || submitted != 1 {
		t.Fatalf("expected activation once shown")
	}
}

func TestSelectOnShow(t *testing.T) {
	cases := []struct {
		name     string
		behavior SelectOnShow
		back     int
		forward  int
	}{
		{"always forget", AlwaysForget, 0, 0},
		{"forget backwards", ForgetBackwards, 1, 0},
		{"never forget", NeverForget, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, bs := simpleWith(t, "A", "x", "y")
			a.SelectOnShow = tc.behavior
			other, _ := simpleWith(t, "B", "z")
			nav := NewNavigator()

			nav.Show(a, Add)
			if !nav.Move(element.Down) || nav.Focus() != bs[1].Selectable() {
				t.Fatalf("expected to move to y")
			}
			nav.Show(other, Add)
			nav.GoBack(1)
			if nav.Focus() != bs[tc.back].Selectable() {
				t.Fatalf("going back: expected %s, got %v", bs[tc.back].Text(), nav.Focus())
			}

			nav.Select(bs[1].Selectable())
			nav.Show(other, Replace)
			nav.Show(a, Replace)
			if nav.Focus() != bs[tc.forward].Selectable() {
				t.Fatalf("going forwards: expected %s, got %v", bs[tc.forward].Text(), nav.Focus())
			}
		})
	}
}

func TestSelectionFallsBackToBack(t *testing.T) {
	s, bs := simpleWith(t, "A", "x")
	bs[0].SetInteractable(false)
	nav := NewNavigator()
	nav.Show(s, Add)
	if nav.Focus() != s.Back().Selectable() {
		t.Fatalf("expected Back when the default control is disabled, got %v", nav.Focus())
	}
}

func TestNavigatorFlushMovesFocusOffHiddenControl(t *testing.T) {
	s, bs := simpleWith(t, "A", "x", "y")
	nav := NewNavigator()
	nav.Show(s, Add)
	nav.Move(element.Down)
	bs[1].SetVisibleSelf(false)
	if !nav.Flush() {
		t.Fatalf("expected flush to run")
	}
	if nav.Focus() != bs[0].Selectable() {
		t.Fatalf("expected focus to return to x, got %v", nav.Focus())
	}
	if nav.Move(element.Down) && nav.Focus() != s.Back().Selectable() {
		t.Fatalf("expected x to link to Back once y is hidden")
	}
}

func TestRequestBackHooks(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "menunav.log"))
	t.Cleanup(func() { logging.Configure("") })
	root, _ := simpleWith(t, "root", "a")
	child, _ := simpleWith(t, "child", "b")
	nav := NewNavigator()
	nav.Show(root, Add)
	nav.Show(child, Add)

	hooks := 0
	child.AllowGoBack = false
	child.OnGoBack(func() error { hooks++; return nil })
	child.Back().Activate()
	if cur, _ := nav.Current(); cur != Screen(child) || hooks != 1 {
		t.Fatalf("expected vetoed go-back to stay on child, hooks=%d", hooks)
	}

	child.OnGoBack(func() error { return errors.New("save failed") })
	child.RequestBack()
	if cur, _ := nav.Current(); cur != Screen(root) {
		t.Fatalf("expected failing hook to force navigation back")
	}
}

func TestNavigatorHistory(t *testing.T) {
	a, _ := simpleWith(t, "a", "1")
	b, _ := simpleWith(t, "b", "2")
	c, _ := simpleWith(t, "c", "3")
	d, _ := simpleWith(t, "d", "4")
	nav := NewNavigator()

	var shown, hidden []string
	for _, s := range []*Simple{a, b, c, d} {
		s := s
		s.OnShow(func(n NavigationType) { shown = append(shown, s.Title()+":"+n.String()) })
		s.OnHide(func(n NavigationType) { hidden = append(hidden, s.Title()+":"+n.String()) })
	}

	nav.Show(a, Add)
	nav.Show(a, Add)
	nav.Show(b, Add)
	nav.Show(c, Replace)
	nav.Show(d, Add)
	if nav.Depth() != 3 {
		t.Fatalf("expected [a c d], got depth %d", nav.Depth())
	}
	if len(shown) != 4 {
		t.Fatalf("expected showing the current screen to be a no-op, got %v", shown)
	}

	if !nav.GoBackTo(a) {
		t.Fatalf("expected GoBackTo to pop")
	}
	if cur, _ := nav.Current(); cur != Screen(a) || nav.Depth() != 1 {
		t.Fatalf("expected a to be current")
	}
	if got := shown[len(shown)-1]; got != "a:backwards" {
		t.Fatalf("expected a shown backwards, got %s", got)
	}
	if got := hidden[len(hidden)-1]; got != "d:backwards" {
		t.Fatalf("expected d hidden backwards, got %s", got)
	}
	if d.Shown() || !a.Shown() {
		t.Fatalf("expected only the current screen to be shown")
	}

	if nav.GoBackWhile(func(Screen) bool { return false }) {
		t.Fatalf("expected GoBackWhile without pops to report false")
	}

	emptied := false
	nav.OnEmpty(func() { emptied = true })
	nav.Show(b, Add)
	if !nav.GoBack(5) || !emptied || nav.Depth() != 0 {
		t.Fatalf("expected GoBack past the root to empty the history")
	}
	if nav.Focus() != nil {
		t.Fatalf("expected no focus with an empty history")
	}
	if nav.GoBack(1) {
		t.Fatalf("expected GoBack on an empty history to report false")
	}
}

func TestParseSelectOnShow(t *testing.T) {
	for in, want := range map[string]SelectOnShow{
		"":                 ForgetBackwards,
		"always_forget":    AlwaysForget,
		"forget_backwards": ForgetBackwards,
		"never_forget":     NeverForget,
	} {
		got, err := ParseSelectOnShow(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %v, got %v %v", in, want, got, err)
		}
	}
	if _, err := ParseSelectOnShow("sometimes"); err == nil {
		t.Fatalf("expected unknown behaviour to fail")
	}
}
