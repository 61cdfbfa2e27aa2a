package regcomb

// empty matches only the empty string.
type empty struct {
	tracked bool
}

func (e *empty) Initialize()   { e.tracked = false }
func (e *empty) Start()        { e.tracked = true }
func (e *empty) Advance(rune)  { e.tracked = false }
func (e *empty) Accepts() bool { return e.tracked }
func (e *empty) IsDead() bool  { return !e.tracked }

func (e *empty) Clone() Regex {
	c := *e
	return &c
}

func (e *empty) describe() *Tree {
	return &Tree{Op: OpEmpty}
}
