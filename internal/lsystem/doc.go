// Package lsystem implements string-rewriting for Lindenmayer systems.
//
// The package provides three ways of working with a rule set:
//
//   - [Rewriter]: eager generation-by-generation rewriting
//   - [Expander]: lazy symbol-by-symbol expansion of generation N
//   - [EstimateLength]: cheap growth extrapolation for planning
//
// # Growth
//
// Sequence length grows exponentially for most rule sets. The Rewriter
// enforces no bounds; callers that need a pre-flight cost check should use
// EstimateLength and the Expander for deep iteration counts:
//
//	rs, _ := lsystem.New("F", map[rune]string{'F': "F+F-F-F+F"})
//	if lsystem.EstimateLength(rs, n) > budget {
//	    // warn before expanding
//	}
//	exp := lsystem.NewExpander(rs, n)
//	for sym, ok := exp.Next(); ok; sym, ok = exp.Next() {
//	    // one symbol at a time, O(n) memory in depth only
//	}
package lsystem
