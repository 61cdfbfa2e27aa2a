package gen

import (
	"errors"
	"fmt"
	"io"

	"github.com/dlclark/regcomb"
	"gopkg.in/yaml.v3"
)

// Config describes one generated file.
type Config struct {
	Package  string
	Patterns []Pattern
}

// Pattern is a named pattern tree. Generate emits New<Name> for it.
type Pattern struct {
	Name string
	Tree *regcomb.Tree
}

// Node is the YAML form of a pattern tree. Exactly one field is set.
// Seq and Alt take any number of items and nest to the right.
type Node struct {
	Empty bool   `yaml:"empty,omitempty"`
	Dot   bool   `yaml:"dot,omitempty"`
	Char  string `yaml:"char,omitempty"`
	Range string `yaml:"range,omitempty"` // "lo-hi", e.g. "0-9"
	Seq   []Node `yaml:"seq,omitempty"`
	Alt   []Node `yaml:"alt,omitempty"`
	Star  *Node  `yaml:"star,omitempty"`
	Maybe *Node  `yaml:"maybe,omitempty"`
}

type fileConfig struct {
	Package  string `yaml:"package"`
	Patterns []struct {
		Name    string `yaml:"name"`
		Pattern Node   `yaml:"pattern"`
	} `yaml:"patterns"`
}

// LoadConfig reads a YAML document of the form
//
//	package: patterns
//	patterns:
//	  - name: Binary
//	    pattern:
//	      star: {range: "0-1"}
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fc fileConfig
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("gen: decoding config: %w", err)
	}

	cfg := &Config{Package: fc.Package}
	for i, p := range fc.Patterns {
		t, err := p.Pattern.Tree()
		if err != nil {
			return nil, fmt.Errorf("gen: pattern %d (%s): %w", i, p.Name, err)
		}
		cfg.Patterns = append(cfg.Patterns, Pattern{Name: p.Name, Tree: t})
	}
	return cfg, nil
}

// Tree converts n to a pattern tree.
func (n *Node) Tree() (*regcomb.Tree, error) {
	set := 0
	for _, b := range []bool{n.Empty, n.Dot, n.Char != "", n.Range != "", n.Seq != nil, n.Alt != nil, n.Star != nil, n.Maybe != nil} {
		if b {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("node must set exactly one kind, has %d", set)
	}

	switch {
	case n.Empty:
		return &regcomb.Tree{Op: regcomb.OpEmpty}, nil
	case n.Dot:
		return &regcomb.Tree{Op: regcomb.OpDot}, nil
	case n.Char != "":
		r := []rune(n.Char)
		if len(r) != 1 {
			return nil, fmt.Errorf("char %q is not a single rune", n.Char)
		}
		return &regcomb.Tree{Op: regcomb.OpChar, Lo: r[0]}, nil
	case n.Range != "":
		r := []rune(n.Range)
		if len(r) != 3 || r[1] != '-' {
			return nil, fmt.Errorf("range %q is not of the form lo-hi", n.Range)
		}
		return &regcomb.Tree{Op: regcomb.OpRange, Lo: r[0], Hi: r[2]}, nil
	case n.Seq != nil:
		return fold(regcomb.OpSeq, n.Seq, &regcomb.Tree{Op: regcomb.OpEmpty})
	case n.Alt != nil:
		return fold(regcomb.OpAlt, n.Alt, nil)
	case n.Star != nil:
		return unary(regcomb.OpStar, n.Star)
	default:
		return unary(regcomb.OpMaybe, n.Maybe)
	}
}

func unary(op regcomb.Op, n *Node) (*regcomb.Tree, error) {
	sub, err := n.Tree()
	if err != nil {
		return nil, err
	}
	return &regcomb.Tree{Op: op, Sub: []*regcomb.Tree{sub}}, nil
}

// fold nests items to the right under op. zero is used for an empty list.
func fold(op regcomb.Op, items []Node, zero *regcomb.Tree) (*regcomb.Tree, error) {
	if len(items) == 0 {
		if zero == nil {
			return nil, fmt.Errorf("%v needs at least one item", op)
		}
		return zero, nil
	}
	out, err := items[len(items)-1].Tree()
	if err != nil {
		return nil, err
	}
	for i := len(items) - 2; i >= 0; i-- {
		t, err := items[i].Tree()
		if err != nil {
			return nil, err
		}
		out = &regcomb.Tree{Op: op, Sub: []*regcomb.Tree{t, out}}
	}
	return out, nil
}

var errNoPackage = errors.New("gen: config has no package name")
