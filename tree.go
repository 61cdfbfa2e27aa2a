package regcomb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Op is the kind of a Tree node.
type Op uint8

const (
	OpEmpty Op = iota + 1 // matches ""
	OpDot                 // any rune
	OpChar                // the rune Lo
	OpRange               // a rune in [Lo, Hi]
	OpSeq                 // Sub[0] then Sub[1]
	OpAlt                 // Sub[0] or Sub[1]
	OpStar                // zero or more Sub[0]
	OpMaybe               // zero or one Sub[0]
)

var opNames = map[Op]string{
	OpEmpty: "empty",
	OpDot:   "dot",
	OpChar:  "char",
	OpRange: "range",
	OpSeq:   "seq",
	OpAlt:   "alt",
	OpStar:  "star",
	OpMaybe: "maybe",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// arity is the number of sub-trees a node of this kind has, or -1 for an
// unknown kind.
func (op Op) arity() int {
	switch op {
	case OpEmpty, OpDot, OpChar, OpRange:
		return 0
	case OpStar, OpMaybe:
		return 1
	case OpSeq, OpAlt:
		return 2
	}
	return -1
}

// Tree is the shape of a pattern as plain data. Unlike a Regex it holds no
// match state, so it can be inspected, printed and compiled any number of
// times.
type Tree struct {
	Op     Op
	Lo, Hi rune
	Sub    []*Tree
}

// ErrNotDescribable is returned by Describe for a pattern containing a Regex
// implemented outside this package.
var ErrNotDescribable = errors.New("regcomb: pattern contains a Regex with no tree form")

type describer interface {
	describe() *Tree
}

// Describe returns the Tree of a pattern built with this package's
// constructors. It does not look at or change the match state.
func Describe(re Regex) (*Tree, error) {
	t := describe(re)
	if t == nil {
		return nil, ErrNotDescribable
	}
	return t, nil
}

func describe(re Regex) *Tree {
	d, ok := re.(describer)
	if !ok {
		return nil
	}
	return d.describe()
}

func unaryTree(op Op, sub Regex) *Tree {
	s := describe(sub)
	if s == nil {
		return nil
	}
	return &Tree{Op: op, Sub: []*Tree{s}}
}

func binaryTree(op Op, left, right Regex) *Tree {
	l, r := describe(left), describe(right)
	if l == nil || r == nil {
		return nil
	}
	return &Tree{Op: op, Sub: []*Tree{l, r}}
}

// Compile builds a fresh pattern from t.
func Compile(t *Tree) (Regex, error) {
	if t == nil {
		return nil, errors.New("regcomb: nil tree")
	}
	want := t.Op.arity()
	if want < 0 {
		return nil, fmt.Errorf("regcomb: unknown op %v", t.Op)
	}
	if len(t.Sub) != want {
		return nil, fmt.Errorf("regcomb: %v node has %d sub-trees, want %d", t.Op, len(t.Sub), want)
	}

	subs := make([]Regex, len(t.Sub))
	for i, s := range t.Sub {
		re, err := Compile(s)
		if err != nil {
			return nil, err
		}
		subs[i] = re
	}

	switch t.Op {
	case OpEmpty:
		return Empty(), nil
	case OpDot:
		return Dot(), nil
	case OpChar:
		return Char(t.Lo), nil
	case OpRange:
		return CharRange(t.Lo, t.Hi), nil
	case OpSeq:
		return Seq(subs[0], subs[1]), nil
	case OpAlt:
		return Alt(subs[0], subs[1]), nil
	case OpStar:
		return Star(subs[0]), nil
	default:
		return Maybe(subs[0]), nil
	}
}

// MustCompile is like Compile but panics if the tree is malformed.
func MustCompile(t *Tree) Regex {
	re, err := Compile(t)
	if err != nil {
		panic(`regcomb: Compile(` + t.String() + `): ` + err.Error())
	}
	return re
}

// precedence levels for String
const (
	precAlt = iota
	precSeq
	precUnary
	precAtom
)

// String renders t in Go regexp syntax, adding (?:) groups only where
// precedence requires them.
func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b, precAlt)
	return b.String()
}

func (t *Tree) write(b *strings.Builder, prec int) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}
	var own int
	switch t.Op {
	case OpAlt:
		own = precAlt
	case OpSeq:
		own = precSeq
	case OpStar, OpMaybe:
		own = precUnary
	default:
		own = precAtom
	}
	if own < prec {
		b.WriteString("(?:")
		defer b.WriteString(")")
	}

	switch t.Op {
	case OpEmpty:
		b.WriteString("(?:)")
	case OpDot:
		b.WriteString("(?s:.)")
	case OpChar:
		if !utf8.ValidRune(t.Lo) {
			b.WriteString(matchNothing)
			return
		}
		writeRune(b, t.Lo, false)
	case OpRange:
		lo, hi := clampRange(t.Lo, t.Hi)
		if lo > hi {
			b.WriteString(matchNothing)
			return
		}
		b.WriteByte('[')
		writeRune(b, lo, true)
		b.WriteByte('-')
		writeRune(b, hi, true)
		b.WriteByte(']')
	case OpSeq, OpAlt:
		if len(t.Sub) != 2 {
			fmt.Fprintf(b, "<bad %v>", t.Op)
			return
		}
		t.Sub[0].write(b, own)
		if t.Op == OpAlt {
			b.WriteByte('|')
		}
		t.Sub[1].write(b, own)
	case OpStar, OpMaybe:
		if len(t.Sub) != 1 {
			fmt.Fprintf(b, "<bad %v>", t.Op)
			return
		}
		t.Sub[0].write(b, precAtom)
		if t.Op == OpStar {
			b.WriteByte('*')
		} else {
			b.WriteByte('?')
		}
	default:
		fmt.Fprintf(b, "<%v>", t.Op)
	}
}

// matchNothing is an empty class; it renders patterns no text can match.
const matchNothing = `[^\x00-\x{10FFFF}]`

// clampRange narrows [lo, hi] to the Unicode scalar values it holds, which
// are the only runes text can decode to. The result is inverted if there are
// none.
func clampRange(lo, hi rune) (rune, rune) {
	switch {
	case lo < 0:
		lo = 0
	case lo >= surrogateMin && lo <= surrogateMax:
		lo = surrogateMax + 1
	}
	switch {
	case hi > unicode.MaxRune:
		hi = unicode.MaxRune
	case hi >= surrogateMin && hi <= surrogateMax:
		hi = surrogateMin - 1
	}
	return lo, hi
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

func writeRune(b *strings.Builder, r rune, inClass bool) {
	special := `\.+*?()|[]{}^$`
	if inClass {
		special = `\[]^-`
	}
	switch {
	case strings.ContainsRune(special, r):
		b.WriteByte('\\')
		b.WriteRune(r)
	case unicode.IsPrint(r):
		b.WriteRune(r)
	default:
		fmt.Fprintf(b, `\x{%X}`, r)
	}
}
