package regcomb

import (
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

// Options change how a Regexp drives its pattern.
type Options int32

const (
	Debug          Options = 0x0001 // trace every step through the Regexp's Logger
	NoShortCircuit Options = 0x0002 // consume all input even after the pattern is dead
)

// Regexp is a pattern prepared for repeated use.
// A Regexp is safe for concurrent use by multiple goroutines: each match runs
// on a private clone of the pattern.
type Regexp struct {
	// read-only after New
	options Options
	proto   Regex
	desc    string
	log     *Logger

	// cache of clones for running matches
	mu     sync.Mutex
	runner []Regex
}

// New prepares re for matching. The Regexp takes ownership of re; the caller
// must not drive it afterwards.
func New(re Regex, opt Options) *Regexp {
	desc := "<opaque>"
	if t, err := Describe(re); err == nil {
		desc = t.String()
	}
	return &Regexp{
		options: opt,
		proto:   re,
		desc:    desc,
		log:     NewLogger(opt&Debug != 0),
	}
}

// String returns the pattern in Go regexp syntax, or "<opaque>" if it
// contains a Regex implemented outside this package.
func (re *Regexp) String() string {
	return re.desc
}

// Options returns the options the Regexp was created with.
func (re *Regexp) Options() Options {
	return re.options
}

// Logger returns the logger used for Debug tracing.
func (re *Regexp) Logger() *Logger {
	return re.log
}

// MatchString reports whether the whole of s matches.
func (re *Regexp) MatchString(s string) bool {
	ok, _ := re.MatchReader(strings.NewReader(s))
	return ok
}

// MatchRunes reports whether the whole of r matches.
func (re *Regexp) MatchRunes(r []rune) bool {
	ok, _ := re.MatchReader(&runeSlice{runes: r})
	return ok
}

// MatchReader reports whether the runes read from r, up to io.EOF, match.
// Any other read error is returned.
func (re *Regexp) MatchReader(r io.RuneReader) (bool, error) {
	m := re.getRunner()
	defer re.putRunner(m)

	re.log.Log("match %s", re.desc)
	ok, err := run(m, r, re.options, re.log)
	re.log.Log("result %v err=%v", ok, err)
	return ok, err
}

func (re *Regexp) getRunner() Regex {
	re.mu.Lock()
	defer re.mu.Unlock()
	if n := len(re.runner); n > 0 {
		m := re.runner[n-1]
		re.runner = re.runner[:n-1]
		return m
	}
	return re.proto.Clone()
}

func (re *Regexp) putRunner(m Regex) {
	re.mu.Lock()
	re.runner = append(re.runner, m)
	re.mu.Unlock()
}

// runeSlice reads runes from a slice.
type runeSlice struct {
	runes []rune
	pos   int
}

func (r *runeSlice) ReadRune() (rune, int, error) {
	if r.pos >= len(r.runes) {
		return 0, 0, io.EOF
	}
	ch := r.runes[r.pos]
	r.pos++
	size := utf8.RuneLen(ch)
	if size < 0 {
		size = utf8.RuneLen(utf8.RuneError)
	}
	return ch, size, nil
}
