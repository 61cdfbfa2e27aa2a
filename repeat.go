package regcomb

// star matches zero or more repetitions of sub.
//
// init records that the empty suffix is tracked at this level. It stands both
// for "no repetitions yet" and for "a new repetition may begin here", which
// are the same tracked string.
type star struct {
	init bool
	sub  Regex
}

func (s *star) Initialize() {
	s.init = false
	s.sub.Initialize()
}

func (s *star) Start() {
	s.init = true
	s.sub.Start()
}

func (s *star) Advance(ch rune) {
	s.init = false
	s.sub.Advance(ch)
	if s.sub.Accepts() {
		// a repetition just completed; fold in the next one
		s.init = true
		s.sub.Start()
	}
}

func (s *star) Accepts() bool {
	return s.init || s.sub.Accepts()
}

func (s *star) IsDead() bool {
	return !s.init && s.sub.IsDead()
}

func (s *star) Clone() Regex {
	return &star{init: s.init, sub: s.sub.Clone()}
}

func (s *star) describe() *Tree {
	return unaryTree(OpStar, s.sub)
}

// maybe matches zero or one occurrence of sub. Unlike star it never
// restarts sub after the first rune.
type maybe struct {
	init bool
	sub  Regex
}

func (m *maybe) Initialize() {
	m.init = false
	m.sub.Initialize()
}

func (m *maybe) Start() {
	m.init = true
	m.sub.Start()
}

func (m *maybe) Advance(ch rune) {
	m.init = false
	m.sub.Advance(ch)
}

func (m *maybe) Accepts() bool {
	return m.init || m.sub.Accepts()
}

func (m *maybe) IsDead() bool {
	return !m.init && m.sub.IsDead()
}

func (m *maybe) Clone() Regex {
	return &maybe{init: m.init, sub: m.sub.Clone()}
}

func (m *maybe) describe() *Tree {
	return unaryTree(OpMaybe, m.sub)
}
