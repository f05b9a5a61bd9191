package lsystem

// frame is one unit of pending work: a subsequence being walked and the
// rewrite depth still to apply to each of its symbols.
type frame struct {
	seq   []rune
	pos   int
	depth int
}

// Expander produces the fully expanded generation-N sequence one symbol at
// a time, without materializing intermediate generations. Memory cost is
// O(N) stack frames; each Next call does O(1) amortized work per symbol.
//
// An Expander is single-use: once drained (or abandoned early, which is
// fine) a fresh one must be built to walk the same generation again, and
// the expansion cost is paid again. Known limitation, not a defect.
type Expander struct {
	rs    *RuleSet
	stack []frame
}

// NewExpander builds a lazy expander for depth rewrite generations. A
// negative depth is treated as 0 (the bare axiom).
func NewExpander(rs *RuleSet, depth int) *Expander {
	if depth < 0 {
		depth = 0
	}
	return &Expander{
		rs:    rs,
		stack: []frame{{seq: rs.axiom, depth: depth}},
	}
}

// Next yields the next symbol of the expanded sequence. The second return
// is false once the sequence is exhausted.
func (e *Expander) Next() (rune, bool) {
	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]
		if top.pos >= len(top.seq) {
			e.stack = e.stack[:len(e.stack)-1]
			continue
		}
		sym := top.seq[top.pos]
		top.pos++
		// Identity symbols survive every remaining generation unchanged,
		// so they can be yielded without descending.
		repl, ok := e.rs.Replacement(sym)
		if top.depth == 0 || !ok {
			return sym, true
		}
		e.stack = append(e.stack, frame{seq: repl, depth: top.depth - 1})
	}
	return 0, false
}

// Drain consumes the remaining stream into a string. Intended for shallow
// expansions and tests; deep generations should stay on Next.
func (e *Expander) Drain() string {
	var out []rune
	for {
		sym, ok := e.Next()
		if !ok {
			return string(out)
		}
		out = append(out, sym)
	}
}
