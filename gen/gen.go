// Package gen writes Go source that rebuilds regcomb patterns.
//
// The generated file has one constructor per pattern, so a pattern kept in a
// YAML config can be compiled into a program with a go:generate line running
// cmd/regcomb-gen.
package gen

import (
	"bytes"
	"fmt"
	"go/token"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"
	"github.com/dlclark/regcomb"
)

const regcombPath = "github.com/dlclark/regcomb"

// Generate returns the gofmt'd source for cfg.
func Generate(cfg *Config) ([]byte, error) {
	if cfg.Package == "" {
		return nil, errNoPackage
	}
	f := jen.NewFile(cfg.Package)
	f.HeaderComment("Code generated by regcomb/gen. DO NOT EDIT.")

	seen := make(map[string]bool)
	for _, p := range cfg.Patterns {
		name := "New" + upperFirst(p.Name)
		if !token.IsIdentifier(name) {
			return nil, fmt.Errorf("gen: %q is not a valid pattern name", p.Name)
		}
		if seen[name] {
			return nil, fmt.Errorf("gen: duplicate pattern name %q", p.Name)
		}
		seen[name] = true

		body, err := build(p.Tree)
		if err != nil {
			return nil, fmt.Errorf("gen: pattern %s: %w", p.Name, err)
		}

		f.Commentf("%s returns a fresh matcher for %s.", name, p.Tree)
		f.Func().Id(name).Params().Qual(regcombPath, "Regex").Block(
			jen.Return(body),
		)
		f.Line()
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("gen: rendering: %w", err)
	}
	return buf.Bytes(), nil
}

// build returns the constructor call expression for t.
func build(t *regcomb.Tree) (*jen.Statement, error) {
	// validates arity and ops once for the whole tree
	if _, err := regcomb.Compile(t); err != nil {
		return nil, err
	}
	if err := checkRunes(t); err != nil {
		return nil, err
	}
	return call(t), nil
}

// checkRunes rejects runes that have no rune literal; LitRune would print
// them as U+FFFD and change what the generated pattern matches.
func checkRunes(t *regcomb.Tree) error {
	var rs []rune
	switch t.Op {
	case regcomb.OpChar:
		rs = []rune{t.Lo}
	case regcomb.OpRange:
		rs = []rune{t.Lo, t.Hi}
	}
	for _, r := range rs {
		if !utf8.ValidRune(r) {
			return fmt.Errorf("invalid rune %#x in %v node", r, t.Op)
		}
	}
	for _, sub := range t.Sub {
		if err := checkRunes(sub); err != nil {
			return err
		}
	}
	return nil
}

func call(t *regcomb.Tree) *jen.Statement {
	switch t.Op {
	case regcomb.OpEmpty:
		return jen.Qual(regcombPath, "Empty").Call()
	case regcomb.OpDot:
		return jen.Qual(regcombPath, "Dot").Call()
	case regcomb.OpChar:
		return jen.Qual(regcombPath, "Char").Call(jen.LitRune(t.Lo))
	case regcomb.OpRange:
		return jen.Qual(regcombPath, "CharRange").Call(jen.LitRune(t.Lo), jen.LitRune(t.Hi))
	case regcomb.OpSeq:
		return jen.Qual(regcombPath, "Seq").Call(call(t.Sub[0]), call(t.Sub[1]))
	case regcomb.OpAlt:
		return jen.Qual(regcombPath, "Alt").Call(call(t.Sub[0]), call(t.Sub[1]))
	case regcomb.OpStar:
		return jen.Qual(regcombPath, "Star").Call(call(t.Sub[0]))
	default:
		return jen.Qual(regcombPath, "Maybe").Call(call(t.Sub[0]))
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
