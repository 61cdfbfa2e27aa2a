/*
Package regcomb matches whole strings against patterns built from regular
expression combinators.

Matching is linear in the length of the input: a pattern is a tree of small
state machines that together simulate an NFA without ever materializing its
state set, so there is no backtracking and no exponential blowup. Patterns are
built by calling the combinator constructors directly; there is no textual
syntax to parse.

Only whole-string acceptance is decided. There are no capture groups and no
substring search.
*/
package regcomb

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Regex is the state protocol shared by every combinator.
//
// At any time a Regex tracks a set of strings. Initialize resets that set to
// empty, Start adds the empty string to it, and Advance appends a rune to
// every string in it. Accepts reports whether any tracked string is in the
// pattern's language.
//
// A Regex mutates in place and must not be driven by two matches at once;
// use Clone to get an independent copy.
type Regex interface {
	// Initialize resets the tracked set to empty.
	Initialize()
	// Start adds the empty string to the tracked set.
	Start()
	// Advance appends ch to every tracked string.
	Advance(ch rune)
	// Accepts reports whether a tracked string is accepted.
	Accepts() bool
	// IsDead reports that Accepts is false and stays false whatever
	// further runes are advanced. It may miss dead states but never
	// reports a live one.
	IsDead() bool
	// Clone returns a deep copy sharing no state with the receiver.
	Clone() Regex
}

// IsMatch reports whether the entire input is accepted by re.
// Invalid UTF-8 is decoded as utf8.RuneError, like a range loop.
func IsMatch(re Regex, input string) bool {
	// a strings.Reader never fails
	ok, _ := run(re, strings.NewReader(input), 0, nil)
	return ok
}

// IsMatchRunes is like IsMatch but takes the input as runes.
func IsMatchRunes(re Regex, input []rune) bool {
	ok, _ := run(re, &runeSlice{runes: input}, 0, nil)
	return ok
}

// IsMatchReader is like IsMatch but consumes runes from r until io.EOF.
// Reading stops as soon as the pattern can no longer match, so r may be
// left partially consumed.
func IsMatchReader(re Regex, r io.RuneReader) (bool, error) {
	return run(re, r, 0, nil)
}

// run drives re over the runes of r. Every entry point, including Regexp,
// matches through it.
func run(re Regex, r io.RuneReader, opt Options, log *Logger) (bool, error) {
	shortCircuit := opt&NoShortCircuit == 0

	re.Initialize()
	re.Start()
	for pos := 0; ; pos++ {
		ch, _, err := r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return false, fmt.Errorf("regcomb: reading rune %d: %w", pos, err)
		}
		re.Advance(ch)
		dead := re.IsDead()
		if log.Enabled() {
			log.Log("advance %d %q accepts=%v dead=%v", pos, ch, re.Accepts(), dead)
		}
		if dead && shortCircuit {
			return false, nil
		}
	}
	return re.Accepts(), nil
}
