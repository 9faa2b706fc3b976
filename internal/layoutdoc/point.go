package layoutdoc

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/menunav/internal/element"
)

// Point is written as a two-element flow sequence: [x, y].
type Point struct {
	X, Y float64
}

// UnmarshalYAML accepts [x, y] or {x: .., y: ..}.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := value.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: point needs 2 values, got %d", value.Line, len(xy))
		}
		p.X, p.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		p.X, p.Y = m.X, m.Y
		return nil
	}
	return fmt.Errorf("line %d: point must be [x, y]", value.Line)
}

func (p Point) element() element.Point {
	return element.Point{X: p.X, Y: p.Y}
}

// Cell is written as [row, column].
type Cell struct {
	Row, Column int
}

// UnmarshalYAML accepts [row, column].
func (c *Cell) UnmarshalYAML(value *yaml.Node) error {
	var rc []int
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: cell must be [row, column]", value.Line)
	}
	if err := value.Decode(&rc); err != nil {
		return err
	}
	if len(rc) != 2 {
		return fmt.Errorf("line %d: cell needs 2 values, got %d", value.Line, len(rc))
	}
	c.Row, c.Column = rc[0], rc[1]
	return nil
}

func compilePattern(p string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + p + ")$")
}
