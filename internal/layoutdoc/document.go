// Package layoutdoc reads declarative YAML menu documents and builds them
// into screens.
//
// A document lists screens, each with a title and a content tree:
//
//	start: main
//	screens:
//	  - id: main
//	    title: Main Menu
//	    content:
//	      type: vertical
//	      children:
//	        - {type: button, text: Play, goto: play}
//	        - {type: toggle, id: sound, text: Sound, on: true}
package layoutdoc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/menunav/internal/logging/events"
	"github.com/atomicstack/menunav/internal/screen"
)

// Node types.
const (
	TypeVertical = "vertical"
	TypeGrid     = "grid"
	TypeFree     = "free"
	TypeLabel    = "label"
	TypeButton   = "button"
	TypeToggle   = "toggle"
	TypeChoice   = "choice"
	TypeInput    = "input"
)

// Button actions besides goto.
const (
	ActionBack = "back"
	ActionQuit = "quit"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid layout document")

// Document is a parsed layout file.
type Document struct {
	// Start names the first screen. Empty means the first listed.
	Start   string   `yaml:"start,omitempty"`
	Screens []Screen `yaml:"screens"`
}

// Screen describes one menu page.
type Screen struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	SelectOnShow string `yaml:"select_on_show,omitempty"`
	AllowGoBack  *bool  `yaml:"allow_go_back,omitempty"`
	// PageSize splits a vertical content node into pages of that many
	// children.
	PageSize int    `yaml:"page_size,omitempty"`
	Anchor   *Point `yaml:"anchor,omitempty"`
	Content  Node   `yaml:"content"`
}

// Node is one entity in a content tree. Which fields apply depends on Type.
type Node struct {
	Type        string `yaml:"type"`
	ID          string `yaml:"id,omitempty"`
	Text        string `yaml:"text,omitempty"`
	Description string `yaml:"description,omitempty"`
	Hidden      bool   `yaml:"hidden,omitempty"`
	Disabled    bool   `yaml:"disabled,omitempty"`

	// groups
	Children     []Node  `yaml:"children,omitempty"`
	Spacing      float64 `yaml:"spacing,omitempty"`
	HSpacing     float64 `yaml:"h_spacing,omitempty"`
	Columns      int     `yaml:"columns,omitempty"`
	Wrap         bool    `yaml:"wrap,omitempty"`
	HideInactive *bool   `yaml:"hide_inactive,omitempty"`
	LinkChildren bool    `yaml:"link_children,omitempty"`

	// placement inside the parent
	Offset *Point `yaml:"offset,omitempty"`
	Cell   *Cell  `yaml:"cell,omitempty"`

	// controls
	Goto     string   `yaml:"goto,omitempty"`
	Action   string   `yaml:"action,omitempty"`
	On       bool     `yaml:"on,omitempty"`
	Values   []string `yaml:"values,omitempty"`
	Index    int      `yaml:"index,omitempty"`
	Min      *int     `yaml:"min,omitempty"`
	Max      *int     `yaml:"max,omitempty"`
	Circular *bool    `yaml:"circular,omitempty"`
	Value    string   `yaml:"value,omitempty"`
	Pattern  string   `yaml:"pattern,omitempty"`
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		events.Doc.Error(path, err)
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	events.Doc.Load(path, len(doc.Screens))
	return doc, nil
}

// Parse decodes and validates a document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// StartScreen returns the id of the first screen to show.
func (d *Document) StartScreen() string {
	if d.Start != "" {
		return d.Start
	}
	if len(d.Screens) > 0 {
		return d.Screens[0].ID
	}
	return ""
}

// Validate reports every problem in the document at once.
func (d *Document) Validate() error {
	v := &validator{ids: make(map[string]string)}
	if len(d.Screens) == 0 {
		v.fail("screens", "at least one screen is required")
	}
	screens := make(map[string]bool, len(d.Screens))
	for i, s := range d.Screens {
		path := fmt.Sprintf("screens[%d]", i)
		switch {
		case strings.TrimSpace(s.ID) == "":
			v.fail(path, "id is required")
		case screens[s.ID]:
			v.fail(path, "duplicate screen id %q", s.ID)
		}
		screens[s.ID] = true
	}
	if d.Start != "" && !screens[d.Start] {
		v.fail("start", "unknown screen %q", d.Start)
	}
	for i, s := range d.Screens {
		path := fmt.Sprintf("screens[%d]", i)
		if _, err := screen.ParseSelectOnShow(s.SelectOnShow); err != nil {
			v.fail(path, "%v", err)
		}
		if s.PageSize < 0 {
			v.fail(path, "page_size must be >= 0")
		}
		if s.PageSize > 0 && s.Content.Type != TypeVertical {
			v.fail(path, "page_size needs vertical content, got %q", s.Content.Type)
		}
		v.node(path+".content", s.Content, "", screens)
	}
	return v.err()
}

type validator struct {
	problems []string
	ids      map[string]string
}

func (v *validator) fail(path, format string, args ...interface{}) {
	v.problems = append(v.problems, path+": "+fmt.Sprintf(format, args...))
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w:\n  %s", ErrInvalid, strings.Join(v.problems, "\n  "))
}

func (v *validator) node(path string, n Node, parent string, screens map[string]bool) {
	if n.ID != "" {
		if prev, ok := v.ids[n.ID]; ok {
			v.fail(path, "duplicate id %q (first used at %s)", n.ID, prev)
		} else {
			v.ids[n.ID] = path
		}
	}
	if n.Offset != nil && parent != TypeFree {
		v.fail(path, "offset only applies inside a free group")
	}
	if n.Cell != nil && parent != TypeGrid {
		v.fail(path, "cell only applies inside a grid")
	}
	if parent == TypeFree && n.Offset == nil {
		v.fail(path, "free group children need an offset")
	}

	switch n.Type {
	case TypeVertical, TypeFree:
	case TypeGrid:
		if n.Columns <= 0 {
			v.fail(path, "grid columns must be > 0")
		}
		for i, c := range n.Children {
			if c.Cell != nil && (c.Cell.Row < 0 || c.Cell.Column < 0 || c.Cell.Column >= n.Columns) {
				v.fail(fmt.Sprintf("%s.children[%d]", path, i), "cell [%d, %d] outside %d columns", c.Cell.Row, c.Cell.Column, n.Columns)
			}
		}
	case TypeLabel, TypeToggle:
	case TypeButton:
		if n.Goto != "" && !screens[n.Goto] {
			v.fail(path, "goto names unknown screen %q", n.Goto)
		}
		if n.Goto != "" && n.Action != "" {
			v.fail(path, "goto and action are exclusive")
		}
		switch n.Action {
		case "", ActionBack, ActionQuit:
		default:
			v.fail(path, "unknown action %q", n.Action)
		}
	case TypeChoice:
		ranged := n.Min != nil || n.Max != nil
		switch {
		case ranged && len(n.Values) > 0:
			v.fail(path, "choice takes either values or min/max")
		case ranged && (n.Min == nil || n.Max == nil):
			v.fail(path, "choice range needs both min and max")
		case ranged && *n.Min > *n.Max:
			v.fail(path, "choice min %d > max %d", *n.Min, *n.Max)
		case !ranged && len(n.Values) == 0:
			v.fail(path, "choice needs values")
		case !ranged && (n.Index < 0 || n.Index >= len(n.Values)):
			v.fail(path, "choice index %d outside %d values", n.Index, len(n.Values))
		}
	case TypeInput:
		if n.Pattern != "" {
			if _, err := compilePattern(n.Pattern); err != nil {
				v.fail(path, "pattern: %v", err)
			}
		}
	case "":
		v.fail(path, "type is required")
	default:
		v.fail(path, "unknown type %q", n.Type)
	}

	if len(n.Children) > 0 && !isGroup(n.Type) {
		v.fail(path, "%s cannot have children", n.Type)
	}
	for i, c := range n.Children {
		v.node(fmt.Sprintf("%s.children[%d]", path, i), c, n.Type, screens)
	}
}

func isGroup(t string) bool {
	return t == TypeVertical || t == TypeGrid || t == TypeFree
}
