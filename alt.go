package regcomb

// alt matches what either branch matches. Both branches are driven in
// lock-step.
type alt struct {
	left, right Regex
}

func (a *alt) Initialize() {
	a.left.Initialize()
	a.right.Initialize()
}

func (a *alt) Start() {
	a.left.Start()
	a.right.Start()
}

func (a *alt) Advance(ch rune) {
	a.left.Advance(ch)
	a.right.Advance(ch)
}

func (a *alt) Accepts() bool {
	return a.left.Accepts() || a.right.Accepts()
}

func (a *alt) IsDead() bool {
	return a.left.IsDead() && a.right.IsDead()
}

func (a *alt) Clone() Regex {
	return &alt{left: a.left.Clone(), right: a.right.Clone()}
}

func (a *alt) describe() *Tree {
	return binaryTree(OpAlt, a.left, a.right)
}
