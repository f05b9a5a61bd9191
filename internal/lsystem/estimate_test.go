package lsystem

import (
	"math"
	"testing"
)

func TestEstimateExactWithinSample(t *testing.T) {
	rs, _ := New("F", kochRules())
	rw := NewRewriter(rs)

	for n := 0; n <= 3; n++ {
		rw.Reset()
		rw.IterateN(n)
		if got := EstimateLength(rs, n); got != int64(rw.Len()) {
			t.Errorf("n=%d: expected exact %d, got %d", n, rw.Len(), got)
		}
	}
}

func TestEstimateUniformGrowthExact(t *testing.T) {
	// Every symbol triples, so length is exactly 2*3^n and the
	// extrapolation has no error to make.
	rs, _ := New("FG", map[rune]string{'F': "FFF", 'G': "GGG"})

	for _, n := range []int{4, 6, 10, 15} {
		want := int64(2 * math.Pow(3, float64(n)))
		if got := EstimateLength(rs, n); got != want {
			t.Errorf("n=%d: expected %d, got %d", n, want, got)
		}
	}
}

func TestEstimateApproximateBeyondSample(t *testing.T) {
	// Koch growth is non-uniform (+/- stay single symbols); past the
	// sample window the estimate is a hint, but it must stay sane.
	rs, _ := New("F", kochRules())

	prev := int64(0)
	for _, n := range []int{4, 6, 8, 10} {
		est := EstimateLength(rs, n)
		if est < prev {
			t.Errorf("n=%d: estimate %d shrank below %d", n, est, prev)
		}
		prev = est
	}
}

func TestEstimateDegradesGracefully(t *testing.T) {
	tests := []struct {
		name  string
		axiom string
		rules map[rune]string
		n     int
	}{
		{"deep plant", "X", map[rune]string{'X': "F+[[X]-X]-F[-FX]+X", 'F': "FF"}, 50},
		{"huge n saturates", "F", map[rune]string{'F': "FFFFFFFF"}, 1000},
		{"shrinking rules", "FFFF", map[rune]string{'F': ""}, 10},
		{"no rules", "F+F", nil, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := New(tt.axiom, tt.rules)
			if err != nil {
				t.Fatal(err)
			}
			est := EstimateLength(rs, tt.n)
			if est < 0 {
				t.Errorf("negative estimate %d", est)
			}
		})
	}
}

func TestEstimateNoRulesExact(t *testing.T) {
	rs, _ := New("F+F-F", nil)
	if got := EstimateLength(rs, 25); got != 5 {
		t.Errorf("identity-only system should stay at axiom length, got %d", got)
	}
}
