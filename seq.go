package regcomb

// seq matches first followed by second.
//
// A string is tracked when it splits into a prefix tracked by first and a
// suffix tracked by second. Every split point is tracked at once: whenever
// first accepts, second is started at that position.
type seq struct {
	first, second Regex
}

func (s *seq) Initialize() {
	s.first.Initialize()
	s.second.Initialize()
}

func (s *seq) Start() {
	s.first.Start()
	if s.first.Accepts() {
		s.second.Start()
	}
}

// Advance must move second before first: the existing split points consume
// ch, while a split point created by first consuming ch begins after it.
func (s *seq) Advance(ch rune) {
	s.second.Advance(ch)
	s.first.Advance(ch)
	if s.first.Accepts() {
		s.second.Start()
	}
}

func (s *seq) Accepts() bool {
	return s.second.Accepts()
}

// IsDead needs both halves dead: a dead first can never open a new split
// point, and a dead second can never accept one already open.
func (s *seq) IsDead() bool {
	return s.first.IsDead() && s.second.IsDead()
}

func (s *seq) Clone() Regex {
	return &seq{first: s.first.Clone(), second: s.second.Clone()}
}

func (s *seq) describe() *Tree {
	return binaryTree(OpSeq, s.first, s.second)
}
