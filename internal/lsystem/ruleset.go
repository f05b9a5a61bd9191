package lsystem

import "fmt"

// RuleSet holds an axiom and a substitution map. A symbol absent from the
// map is its own replacement (identity rule). Immutable after construction.
type RuleSet struct {
	axiom []rune
	rules map[rune][]rune
}

// New builds a rule set from an axiom string and a symbol -> replacement
// map. The rules map may be nil or empty; replacements may be empty strings
// (deletion rules).
func New(axiom string, rules map[rune]string) (*RuleSet, error) {
	if axiom == "" {
		return nil, ErrEmptyAxiom
	}
	rs := &RuleSet{
		axiom: []rune(axiom),
		rules: make(map[rune][]rune, len(rules)),
	}
	for sym, repl := range rules {
		rs.rules[sym] = []rune(repl)
	}
	return rs, nil
}

// Axiom returns the generation-0 sequence.
func (rs *RuleSet) Axiom() string { return string(rs.axiom) }

// AxiomLen returns the symbol count of the axiom.
func (rs *RuleSet) AxiomLen() int { return len(rs.axiom) }

// Replacement returns the right-hand side for sym and whether an explicit
// rule exists. Without a rule the symbol maps to itself.
func (rs *RuleSet) Replacement(sym rune) ([]rune, bool) {
	repl, ok := rs.rules[sym]
	if !ok {
		return nil, false
	}
	return repl, true
}

// Rewriter applies a rule set eagerly, one full generation at a time. It
// owns its sequence and generation counter; instances are not shared.
type Rewriter struct {
	rs  *RuleSet
	seq []rune
	gen int
}

// NewRewriter starts a rewriter at generation 0 with the axiom sequence.
func NewRewriter(rs *RuleSet) *Rewriter {
	r := &Rewriter{rs: rs}
	r.Reset()
	return r
}

// Iterate replaces every symbol in the current sequence with its rule's
// right-hand side, in original order, and increments the generation counter.
// Growth is unbounded here; deep iteration counts belong to the Expander.
func (r *Rewriter) Iterate() string {
	var next []rune
	for _, sym := range r.seq {
		if repl, ok := r.rs.Replacement(sym); ok {
			next = append(next, repl...)
		} else {
			next = append(next, sym)
		}
	}
	r.seq = next
	r.gen++
	return string(r.seq)
}

// IterateN applies Iterate n times. n = 0 is a no-op.
func (r *Rewriter) IterateN(n int) string {
	for i := 0; i < n; i++ {
		r.Iterate()
	}
	return string(r.seq)
}

// Reset restores the axiom and sets the generation counter back to 0.
func (r *Rewriter) Reset() {
	r.seq = append(r.seq[:0:0], r.rs.axiom...)
	r.gen = 0
}

// Sequence returns the current symbol sequence.
func (r *Rewriter) Sequence() string { return string(r.seq) }

// Generation returns the number of rewrite passes applied since Reset.
func (r *Rewriter) Generation() int { return r.gen }

// Len returns the symbol count of the current sequence.
func (r *Rewriter) Len() int { return len(r.seq) }

func (r *Rewriter) String() string {
	return fmt.Sprintf("gen %d: %s", r.gen, string(r.seq))
}
