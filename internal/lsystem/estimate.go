package lsystem

import "math"

// maxSampleSteps bounds the eager iterations used to sample growth.
const maxSampleSteps = 3

// EstimateLength approximates the symbol count of generation n. It samples
// up to min(3, n) eager iterations from the axiom; when the sample covers n
// the result is exact, otherwise the short-run growth factor is
// extrapolated as len(axiom) * g^(n/s) and rounded to nearest.
//
// The estimate is a planning hint only. Rules with non-uniform per-symbol
// growth drift further from the true length the deeper n goes past the
// sample window. The result is always finite and non-negative; values past
// int64 range saturate at math.MaxInt64.
func EstimateLength(rs *RuleSet, n int) int64 {
	axLen := rs.AxiomLen()
	if n <= 0 || axLen == 0 {
		return int64(axLen)
	}

	steps := maxSampleSteps
	if n < steps {
		steps = n
	}
	rw := NewRewriter(rs)
	rw.IterateN(steps)
	sampleLen := rw.Len()
	if steps == n {
		return int64(sampleLen)
	}

	g := float64(sampleLen) / float64(axLen)
	est := float64(axLen) * math.Pow(g, float64(n)/float64(steps))
	if math.IsNaN(est) || est < 0 {
		return int64(axLen)
	}
	if est >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Round(est))
}
