package regcomb

import "unicode/utf8"

// Empty matches only the empty string.
func Empty() Regex {
	return &empty{}
}

// Dot matches any single rune.
func Dot() Regex {
	return &leaf{op: OpDot}
}

// Char matches the single rune ch.
func Char(ch rune) Regex {
	return &leaf{op: OpChar, lo: ch}
}

// CharRange matches a single rune in [lo, hi], in code point order.
// If lo > hi it matches nothing.
func CharRange(lo, hi rune) Regex {
	return &leaf{op: OpRange, lo: lo, hi: hi}
}

// Seq matches a string that splits into a prefix matched by first and a
// suffix matched by second.
func Seq(first, second Regex) Regex {
	return &seq{first: first, second: second}
}

// Alt matches a string matched by left or right (or both).
func Alt(left, right Regex) Regex {
	return &alt{left: left, right: right}
}

// Star matches zero or more occurrences of re.
func Star(re Regex) Regex {
	return &star{sub: re}
}

// Maybe matches zero or one occurrence of re.
func Maybe(re Regex) Regex {
	return &maybe{sub: re}
}

// SeqOf matches its arguments in order. With no arguments it is Empty.
func SeqOf(res ...Regex) Regex {
	if len(res) == 0 {
		return Empty()
	}
	out := res[len(res)-1]
	for i := len(res) - 2; i >= 0; i-- {
		out = Seq(res[i], out)
	}
	return out
}

// AltOf matches what any of its arguments matches. With no arguments it
// matches nothing.
func AltOf(res ...Regex) Regex {
	if len(res) == 0 {
		return CharRange(utf8.MaxRune, 0)
	}
	out := res[len(res)-1]
	for i := len(res) - 2; i >= 0; i-- {
		out = Alt(res[i], out)
	}
	return out
}

// Plus matches one or more occurrences of re.
func Plus(re Regex) Regex {
	return Seq(re, Star(re.Clone()))
}

// Literal matches exactly the string s.
func Literal(s string) Regex {
	var res []Regex
	for _, ch := range s {
		res = append(res, Char(ch))
	}
	return SeqOf(res...)
}
