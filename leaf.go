package regcomb

// leafState is how much of a single-rune match is being tracked: the empty
// string, a just-consumed matching rune, both, or neither.
type leafState uint8

const (
	leafNeither leafState = iota
	leafStart
	leafEnd
	leafBoth
)

// leaf matches exactly one rune satisfying its predicate. The predicate is
// selected by op (OpDot, OpChar or OpRange); OpChar compares against lo.
type leaf struct {
	op     Op
	lo, hi rune
	state  leafState
}

func (l *leaf) matches(ch rune) bool {
	switch l.op {
	case OpDot:
		return true
	case OpChar:
		return ch == l.lo
	case OpRange:
		return isBetween(ch, l.lo, l.hi)
	}
	return false
}

// isBetween reports first <= val <= last. An inverted range holds nothing.
func isBetween(val, first, last rune) bool {
	if val > last {
		return false
	}
	return val >= first
}

func (l *leaf) Initialize() {
	l.state = leafNeither
}

func (l *leaf) Start() {
	switch l.state {
	case leafNeither, leafStart:
		l.state = leafStart
	case leafEnd, leafBoth:
		l.state = leafBoth
	}
}

func (l *leaf) Advance(ch rune) {
	if !l.matches(ch) {
		l.state = leafNeither
		return
	}
	// only a tracked empty string can grow into a one-rune match
	switch l.state {
	case leafStart, leafBoth:
		l.state = leafEnd
	default:
		l.state = leafNeither
	}
}

func (l *leaf) Accepts() bool {
	return l.state == leafEnd || l.state == leafBoth
}

func (l *leaf) IsDead() bool {
	return l.state == leafNeither
}

func (l *leaf) Clone() Regex {
	c := *l
	return &c
}

func (l *leaf) describe() *Tree {
	return &Tree{Op: l.op, Lo: l.lo, Hi: l.hi}
}
