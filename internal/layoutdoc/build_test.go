package layoutdoc

import (
	"testing"

	"github.com/atomicstack/menunav/internal/element"
	"github.com/atomicstack/menunav/internal/screen"
)

func buildDemo(t *testing.T) *Menu {
	t.Helper()
	doc, err := Load("testdata/demo.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	m, err := Build(doc, screen.NewNavigator())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return m
}

func control(t *testing.T, m *Menu, id string) *element.Control {
	t.Helper()
	c, ok := m.Control(id)
	if !ok {
		t.Fatalf("no control %q", id)
	}
	return c
}

func current(t *testing.T, m *Menu) screen.Screen {
	t.Helper()
	cur, ok := m.Navigator().Current()
	if !ok {
		t.Fatal("no current screen")
	}
	return cur
}

func TestBuildScreens(t *testing.T) {
	m := buildDemo(t)
	ids := m.ScreenIDs()
	want := []string{"main", "options", "levels", "arena"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
	if m.Start().Title() != "Main Menu" {
		t.Fatalf("unexpected start %q", m.Start().Title())
	}
	levels, _ := m.Screen("levels")
	p, ok := levels.(*screen.Paginated)
	if !ok {
		t.Fatalf("expected paginated levels, got %T", levels)
	}
	if p.PageCount() != 3 {
		t.Fatalf("expected 3 pages, got %d", p.PageCount())
	}
}

func TestShowFocusesFirstButton(t *testing.T) {
	m := buildDemo(t)
	m.Show()
	if got := m.Navigator().Focus(); got != control(t, m, "play").Selectable() {
		t.Fatalf("expected Play focused, got %v", got)
	}
	m.Navigator().Move(element.Down)
	if got := m.Navigator().Focus(); got != control(t, m, "options").Selectable() {
		t.Fatalf("expected Options focused, got %v", got)
	}
}

func TestGotoAndBackActions(t *testing.T) {
	m := buildDemo(t)
	m.Show()

	if !control(t, m, "options").Activate() {
		t.Fatal("options refused activation")
	}
	if got := current(t, m).Title(); got != "Options" {
		t.Fatalf("expected Options screen, got %q", got)
	}
	if got := m.Navigator().Focus(); got != control(t, m, "sound").Selectable() {
		t.Fatalf("expected Sound focused, got %v", got)
	}

	// Done is the last visible control before the screen's own Back.
	done := control(t, m, "name").Selectable().Neighbor(element.Down)
	if done == nil || done.Name() != "Done" {
		t.Fatalf("expected Done below Name, got %v", done)
	}
	done.Control().Activate()
	if got := current(t, m).Title(); got != "Main Menu" {
		t.Fatalf("expected back on Main Menu, got %q", got)
	}
}

func TestMainRefusesGoBack(t *testing.T) {
	m := buildDemo(t)
	m.Show()
	current(t, m).RequestBack()
	if m.Navigator().Depth() != 1 {
		t.Fatalf("expected main to stay, depth %d", m.Navigator().Depth())
	}
}

func TestQuitAction(t *testing.T) {
	m := buildDemo(t)
	quit := false
	m.OnQuit = func() { quit = true }
	m.Show()
	control(t, m, "quit").Activate()
	if !quit {
		t.Fatal("expected OnQuit")
	}
}

func TestHiddenAndDisabled(t *testing.T) {
	m := buildDemo(t)
	opts, _ := m.Screen("options")
	m.Navigator().Show(opts, screen.Add)

	if control(t, m, "debug").Visible() {
		t.Fatal("expected debug hidden")
	}
	if got := control(t, m, "name").Selectable().Neighbor(element.Down); got == control(t, m, "debug").Selectable() {
		t.Fatal("hidden control linked")
	}

	levels, _ := m.Screen("levels")
	p := levels.(*screen.Paginated)
	m.Navigator().Show(p, screen.Add)
	p.SetPageNumber(1)
	m.Navigator().Flush()
	var disabled *element.Element
	for _, e := range p.Elements() {
		if e.Text() == "Level 6" {
			disabled = e
		}
	}
	if disabled == nil {
		t.Fatal("Level 6 not found")
	}
	if disabled.Control().Interactable() || disabled.Control().Activate() {
		t.Fatal("expected Level 6 disabled")
	}
}

func TestValues(t *testing.T) {
	m := buildDemo(t)
	want := map[string]string{
		"sound":      "on",
		"difficulty": "Normal",
		"volume":     "5",
		"name":       "Player",
		"debug":      "off",
	}
	got := m.Values()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s: expected %q, got %q", k, v, got[k])
		}
	}

	opts, _ := m.Screen("options")
	m.Navigator().Show(opts, screen.Add)
	if !control(t, m, "difficulty").Adjust(1) || !control(t, m, "volume").Adjust(-1) {
		t.Fatal("adjust refused")
	}
	if got := m.Values(); got["difficulty"] != "Hard" || got["volume"] != "4" {
		t.Fatalf("unexpected values after adjust %v", got)
	}
}

func TestInputPattern(t *testing.T) {
	m := buildDemo(t)
	in := control(t, m, "name").Owner().(*element.TextInput)
	if err := in.SetValue("Bob 2"); err == nil {
		t.Fatal("expected pattern rejection")
	}
	if err := in.SetValue("Bob"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if in.Value() != "Bob" {
		t.Fatalf("expected Bob, got %q", in.Value())
	}
}

func TestArenaLinks(t *testing.T) {
	m := buildDemo(t)
	arena, _ := m.Screen("arena")
	m.Navigator().Show(arena, screen.Add)

	sel := func(id string) *element.Selectable { return control(t, m, id).Selectable() }
	checks := []struct {
		from string
		d    element.Direction
		to   string
	}{
		{"a1", element.Right, "a3"},
		{"a3", element.Right, "a1"},
		{"a1", element.Down, "b2"},
		{"b2", element.Up, "a1"},
		{"b2", element.Down, "west"},
		{"west", element.Right, "east"},
		{"east", element.Left, "west"},
	}
	for _, c := range checks {
		if got := sel(c.from).Neighbor(c.d); got != sel(c.to) {
			t.Fatalf("%s %v: expected %s, got %v", c.from, c.d, c.to, got)
		}
	}
}

func TestBuildRejectsInvalid(t *testing.T) {
	doc := &Document{Screens: []Screen{{ID: "s", Content: Node{Type: "slider"}}}}
	if _, err := Build(doc, screen.NewNavigator()); err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildRejectsOccupiedCell(t *testing.T) {
	doc, err := Parse([]byte(`
screens:
  - id: s
    title: S
    content:
      type: grid
      columns: 2
      children:
        - {type: button, text: A, cell: [0, 0]}
        - {type: button, text: B, cell: [0, 0]}
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := Build(doc, screen.NewNavigator()); err == nil {
		t.Fatal("expected occupied cell error")
	}
}

type countingSurface struct{ widgets int }

func (s *countingSurface) NewWidget(*element.Element) element.Widget {
	s.widgets++
	return nil
}

func TestSetSurfaceAndDispose(t *testing.T) {
	m := buildDemo(t)
	surface := &countingSurface{}
	if err := m.SetSurface(surface); err != nil {
		t.Fatalf("set surface: %v", err)
	}
	want := 0
	for _, id := range m.ScreenIDs() {
		s, _ := m.Screen(id)
		want += len(s.Elements())
		if got, ok := m.IDOf(s); !ok || got != id {
			t.Fatalf("IDOf(%s) = %q, %v", id, got, ok)
		}
	}
	if surface.widgets != want {
		t.Fatalf("expected %d widgets, got %d", want, surface.widgets)
	}

	m.Dispose()
	play := control(t, m, "play")
	if !play.Disposed() {
		t.Fatal("expected elements disposed")
	}
}
