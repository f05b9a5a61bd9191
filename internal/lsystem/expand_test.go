package lsystem

import "testing"

func TestExpanderMatchesEager(t *testing.T) {
	tests := []struct {
		name  string
		axiom string
		rules map[rune]string
		depth int
	}{
		{"koch gen 0", "F", kochRules(), 0},
		{"koch gen 1", "F", kochRules(), 1},
		{"koch gen 3", "F", kochRules(), 3},
		{"sierpinski gen 4", "F-G-G", sierpinskiRules(), 4},
		{"dragon gen 6", "F", map[rune]string{'F': "F+G", 'G': "F-G"}, 6},
		{"plant gen 3", "X", map[rune]string{'X': "F+[[X]-X]-F[-FX]+X", 'F': "FF"}, 3},
		{"identity only", "+-[]", nil, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := New(tt.axiom, tt.rules)
			if err != nil {
				t.Fatal(err)
			}

			rw := NewRewriter(rs)
			want := rw.IterateN(tt.depth)

			got := NewExpander(rs, tt.depth).Drain()
			if got != want {
				t.Errorf("lazy expansion diverged from eager at depth %d:\nlazy:  %.60s\neager: %.60s",
					tt.depth, got, want)
			}
		})
	}
}

func TestExpanderEarlyTermination(t *testing.T) {
	rs, _ := New("F", kochRules())
	exp := NewExpander(rs, 6)

	// Pull a handful of symbols and walk away; nothing should block or panic.
	for i := 0; i < 5; i++ {
		if _, ok := exp.Next(); !ok {
			t.Fatalf("stream ended after %d symbols, expected more", i)
		}
	}
}

func TestExpanderExhaustion(t *testing.T) {
	rs, _ := New("F", kochRules())
	exp := NewExpander(rs, 1)

	n := 0
	for _, ok := exp.Next(); ok; _, ok = exp.Next() {
		n++
	}
	if n != 9 {
		t.Errorf("expected 9 symbols, got %d", n)
	}

	// Exhausted streams keep reporting done.
	if _, ok := exp.Next(); ok {
		t.Error("expected Next to stay false after exhaustion")
	}
}

func TestExpanderNegativeDepth(t *testing.T) {
	rs, _ := New("F+F", kochRules())
	if got := NewExpander(rs, -3).Drain(); got != "F+F" {
		t.Errorf("expected bare axiom for negative depth, got %s", got)
	}
}
