// Package navgraph checks the focus graph of a laid-out screen: which
// controls focus can reach from the start control, where it gets stuck and
// which links have no way back.
package navgraph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/atomicstack/menunav/internal/element"
	"github.com/atomicstack/menunav/internal/format/table"
)

// Link is one directed neighbour relation.
type Link struct {
	From      string
	Direction element.Direction
	To        string
}

func (l Link) String() string {
	return fmt.Sprintf("%s -%s-> %s", l.From, l.Direction, l.To)
}

// Graph is the directed focus graph over visible controls.
type Graph struct {
	g     *simple.DirectedGraph
	sels  []*element.Selectable
	ids   map[*element.Selectable]int64
	links []Link
	// asymmetric collects links whose target does not lead back.
	asymmetric []Link
}

// New builds the graph of every visible control in elems. Links into hidden
// controls are dropped since focus can never follow them.
func New(elems []*element.Element) *Graph {
	g := &Graph{
		g:   simple.NewDirectedGraph(),
		ids: make(map[*element.Selectable]int64),
	}
	for _, e := range elems {
		c := e.Control()
		if c == nil || !c.Visible() {
			continue
		}
		id := int64(len(g.sels))
		g.sels = append(g.sels, c.Selectable())
		g.ids[c.Selectable()] = id
		g.g.AddNode(simple.Node(id))
	}
	for _, from := range g.sels {
		for _, d := range element.Directions {
			to := from.Neighbor(d)
			toID, ok := g.ids[to]
			if !ok {
				continue
			}
			link := Link{From: from.Name(), Direction: d, To: to.Name()}
			g.links = append(g.links, link)
			if to.Neighbor(d.Opposite()) != from {
				g.asymmetric = append(g.asymmetric, link)
			}
			if to == from {
				continue
			}
			g.g.SetEdge(g.g.NewEdge(g.g.Node(g.ids[from]), g.g.Node(toID)))
		}
	}
	return g
}

// Len returns the number of visible controls.
func (g *Graph) Len() int {
	return len(g.sels)
}

// Links returns every link between visible controls.
func (g *Graph) Links() []Link {
	return g.links
}

// Reachable returns the controls focus can reach from start, start included.
func (g *Graph) Reachable(start *element.Selectable) []*element.Selectable {
	id, ok := g.ids[start]
	if !ok {
		return nil
	}
	var out []*element.Selectable
	bf := traverse.BreadthFirst{
		Visit: func(n graph.Node) {
			out = append(out, g.sels[n.ID()])
		},
	}
	bf.Walk(g.g, g.g.Node(id), nil)
	return out
}

// Traps returns groups of controls that focus can enter but never leave.
// A screen whose graph is one strongly connected component has none.
func (g *Graph) Traps() [][]*element.Selectable {
	sccs := topo.TarjanSCC(g.g)
	if len(sccs) < 2 {
		return nil
	}
	component := make(map[int64]int, len(g.sels))
	for i, scc := range sccs {
		for _, n := range scc {
			component[n.ID()] = i
		}
	}
	var traps [][]*element.Selectable
	for i, scc := range sccs {
		if g.leaves(scc, component, i) {
			continue
		}
		group := make([]*element.Selectable, 0, len(scc))
		for _, n := range scc {
			group = append(group, g.sels[n.ID()])
		}
		sort.Slice(group, func(a, b int) bool { return g.ids[group[a]] < g.ids[group[b]] })
		traps = append(traps, group)
	}
	sort.Slice(traps, func(a, b int) bool { return g.ids[traps[a][0]] < g.ids[traps[b][0]] })
	return traps
}

func (g *Graph) leaves(scc []graph.Node, component map[int64]int, self int) bool {
	for _, n := range scc {
		to := g.g.From(n.ID())
		for to.Next() {
			if component[to.Node().ID()] != self {
				return true
			}
		}
	}
	return false
}

// DeadEnds returns controls with no outgoing link at all.
func (g *Graph) DeadEnds() []*element.Selectable {
	var out []*element.Selectable
	for _, s := range g.sels {
		linked := false
		for _, d := range element.Directions {
			if _, ok := g.ids[s.Neighbor(d)]; ok {
				linked = true
				break
			}
		}
		if !linked && len(g.sels) > 1 {
			out = append(out, s)
		}
	}
	return out
}

// Report summarises a screen's focus graph.
type Report struct {
	Screen      string
	Controls    int
	Links       int
	Unreachable []string
	DeadEnds    []string
	Traps       [][]string
	Asymmetric  []Link
}

// Analyze builds the report for a screen whose layout has been flushed.
func Analyze(title string, elems []*element.Element, start *element.Selectable) Report {
	g := New(elems)
	r := Report{Screen: title, Controls: g.Len(), Links: len(g.links), Asymmetric: g.asymmetric}

	reached := make(map[*element.Selectable]bool)
	for _, s := range g.Reachable(start) {
		reached[s] = true
	}
	for _, s := range g.sels {
		if !reached[s] {
			r.Unreachable = append(r.Unreachable, s.Name())
		}
	}
	r.DeadEnds = names(g.DeadEnds())
	for _, trap := range g.Traps() {
		r.Traps = append(r.Traps, names(trap))
	}
	return r
}

func names(sels []*element.Selectable) []string {
	out := make([]string, len(sels))
	for i, s := range sels {
		out[i] = s.Name()
	}
	return out
}

// OK reports whether every control is reachable and focus cannot get stuck.
// One-way links are allowed.
func (r Report) OK() bool {
	return len(r.Unreachable) == 0 && len(r.DeadEnds) == 0 && len(r.Traps) == 0
}

// Lines renders the report as an aligned table.
func (r Report) Lines() []string {
	status := "ok"
	if !r.OK() {
		status = "problems"
	}
	rows := [][]string{
		{"screen", r.Screen},
		{"status", status},
		{"controls", fmt.Sprint(r.Controls)},
		{"links", fmt.Sprint(r.Links)},
	}
	for _, name := range r.Unreachable {
		rows = append(rows, []string{"unreachable", name})
	}
	for _, name := range r.DeadEnds {
		rows = append(rows, []string{"dead end", name})
	}
	for _, trap := range r.Traps {
		rows = append(rows, []string{"trap", fmt.Sprint(trap)})
	}
	for _, link := range r.Asymmetric {
		rows = append(rows, []string{"one-way", link.String()})
	}
	return table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft})
}
