package regcomb

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMatch_Scenarios(t *testing.T) {
	tests := map[string]struct {
		re  func() Regex
		yes []string
		no  []string
	}{
		"empty": {
			re:  Empty,
			yes: []string{""},
			no:  []string{"a", "0", "00"},
		},
		"char": {
			re:  func() Regex { return Char('0') },
			yes: []string{"0"},
			no:  []string{"", "1", "00", "01", "10"},
		},
		"range": {
			re:  func() Regex { return CharRange('0', '1') },
			yes: []string{"0", "1"},
			no:  []string{"", "2", "01", "00"},
		},
		"inverted-range": {
			re: func() Regex { return CharRange('z', 'a') },
			no: []string{"", "a", "m", "z", "za"},
		},
		"dot": {
			re:  Dot,
			yes: []string{"a", "\n", "é", "😀"},
			no:  []string{"", "ab"},
		},
		"star": {
			re:  func() Regex { return Star(Char('0')) },
			yes: []string{"", "0", "00"},
			no:  []string{"1", "01", "0010"},
		},
		"seq": {
			re:  func() Regex { return Seq(Char('0'), Char('1')) },
			yes: []string{"01"},
			no:  []string{"", "0", "10", "011"},
		},
		"maybe": {
			re:  func() Regex { return Maybe(Char('a')) },
			yes: []string{"", "a"},
			no:  []string{"aa", "b"},
		},
		"integer": {
			re: func() Regex {
				return Alt(Char('0'), Seq(Char('1'), Star(CharRange('0', '1'))))
			},
			yes: []string{"0", "10", "1", "1101001"},
			no:  []string{"", "2", "01", "0101001", "1101021"},
		},
		"star-of-seq": {
			re:  func() Regex { return Star(Seq(Char('a'), Char('b'))) },
			yes: []string{"", "ab", "abab"},
			no:  []string{"a", "aba", "ba", "abb"},
		},
		"seq-with-nullable-first": {
			re:  func() Regex { return Seq(Star(Char('a')), Char('b')) },
			yes: []string{"b", "ab", "aaab"},
			no:  []string{"", "a", "ba", "abb"},
		},
		"seq-with-nullable-second": {
			re:  func() Regex { return Seq(Char('a'), Maybe(Char('b'))) },
			yes: []string{"a", "ab"},
			no:  []string{"", "b", "abb"},
		},
		"star-of-nullable": {
			re:  func() Regex { return Star(Maybe(Char('a'))) },
			yes: []string{"", "a", "aaa"},
			no:  []string{"b", "ab"},
		},
		"star-overlapping-pieces": {
			re: func() Regex {
				return Star(Alt(Char('a'), Seq(Char('a'), Char('b'))))
			},
			yes: []string{"", "a", "ab", "aab", "abab", "aba"},
			no:  []string{"b", "abb", "ba"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			re := tt.re()
			for _, in := range tt.yes {
				require.True(t, IsMatch(re, in), "%q should match", in)
				require.True(t, IsMatchRunes(re, []rune(in)), "%q should match as runes", in)
			}
			for _, in := range tt.no {
				require.False(t, IsMatch(re, in), "%q should not match", in)
				require.False(t, IsMatchRunes(re, []rune(in)), "%q should not match as runes", in)
			}
		})
	}
}

func TestIsMatch_Reusable(t *testing.T) {
	re := Seq(Char('0'), Char('1'))
	if !IsMatch(re, "01") {
		t.Fatal("expected match")
	}
	if IsMatch(re, "0") {
		t.Fatal("stale state leaked into second run")
	}
	if !IsMatch(re, "01") {
		t.Fatal("expected match after reuse")
	}
}

func TestIsMatch_InvalidUTF8(t *testing.T) {
	// a lone continuation byte decodes to utf8.RuneError
	if !IsMatch(Char('\uFFFD'), "\x80") {
		t.Fatal("expected invalid byte to match U+FFFD")
	}
	if !IsMatch(Dot(), "\xff") {
		t.Fatal("expected dot to match an invalid byte")
	}
}

func TestIsMatchReader(t *testing.T) {
	re := Plus(CharRange('a', 'z'))
	ok, err := IsMatchReader(re, strings.NewReader("hello"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = IsMatchReader(re, strings.NewReader("hello world"))
	require.NoError(t, err)
	require.False(t, ok)
}

type failingReader struct {
	r   io.RuneReader
	err error
}

func (f *failingReader) ReadRune() (rune, int, error) {
	ch, size, err := f.r.ReadRune()
	if err == io.EOF {
		return 0, 0, f.err
	}
	return ch, size, err
}

var errBroken = errors.New("broken pipe")

func TestIsMatchReader_Error(t *testing.T) {
	re := Star(Char('a'))
	ok, err := IsMatchReader(re, &failingReader{r: strings.NewReader("aaa"), err: errBroken})
	require.ErrorIs(t, err, errBroken)
	require.False(t, ok)
	require.Contains(t, err.Error(), "reading rune 3")
}

func TestIsMatchReader_StopsWhenDead(t *testing.T) {
	// the reader fails after "ab", but the pattern dies on 'b'
	re := Star(Char('a'))
	ok, err := IsMatchReader(re, &failingReader{r: strings.NewReader("ab"), err: errBroken})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBuilders(t *testing.T) {
	tests := map[string]struct {
		re  Regex
		yes []string
		no  []string
	}{
		"seqof-empty": {
			re:  SeqOf(),
			yes: []string{""},
			no:  []string{"a"},
		},
		"seqof": {
			re:  SeqOf(Char('a'), Char('b'), Char('c')),
			yes: []string{"abc"},
			no:  []string{"", "ab", "abcd", "acb"},
		},
		"altof-empty": {
			re: AltOf(),
			no: []string{"", "a", "\x00"},
		},
		"altof": {
			re:  AltOf(Char('a'), Char('b'), Literal("cd")),
			yes: []string{"a", "b", "cd"},
			no:  []string{"", "c", "ab"},
		},
		"plus": {
			re:  Plus(Char('x')),
			yes: []string{"x", "xx", "xxxx"},
			no:  []string{"", "xy"},
		},
		"literal": {
			re:  Literal("héllo"),
			yes: []string{"héllo"},
			no:  []string{"hello", "héll", ""},
		},
		"literal-empty": {
			re:  Literal(""),
			yes: []string{""},
			no:  []string{" "},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for _, in := range tt.yes {
				require.True(t, IsMatch(tt.re, in), "%q should match", in)
			}
			for _, in := range tt.no {
				require.False(t, IsMatch(tt.re, in), "%q should not match", in)
			}
		})
	}
}

func TestClone_Independent(t *testing.T) {
	re := Seq(Char('a'), Star(Char('b')))
	re.Initialize()
	re.Start()
	re.Advance('a')

	c := re.Clone()
	require.True(t, c.Accepts())

	c.Advance('x')
	require.True(t, c.IsDead())
	require.False(t, re.IsDead(), "advancing the clone changed the original")
	require.True(t, re.Accepts())

	re.Advance('b')
	require.True(t, re.Accepts())
	require.False(t, c.Accepts())
}

// countingRegex records how many runes reach the wrapped pattern.
type countingRegex struct {
	Regex
	advances int
}

func (c *countingRegex) Advance(ch rune) {
	c.advances++
	c.Regex.Advance(ch)
}

func TestIsMatch_StopsWhenDead(t *testing.T) {
	tests := map[string]func(Regex) (bool, error){
		"string": func(re Regex) (bool, error) { return IsMatch(re, "xyz"), nil },
		"runes":  func(re Regex) (bool, error) { return IsMatchRunes(re, []rune("xyz")), nil },
		"reader": func(re Regex) (bool, error) { return IsMatchReader(re, strings.NewReader("xyz")) },
	}

	for name, match := range tests {
		t.Run(name, func(t *testing.T) {
			re := &countingRegex{Regex: Char('a')}
			ok, err := match(re)
			require.NoError(t, err)
			require.False(t, ok)
			if want, got := 1, re.advances; want != got {
				t.Fatalf("wanted %v advances, got %v", want, got)
			}
		})
	}
}
