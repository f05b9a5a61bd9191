package lsystem

import (
	"errors"
	"testing"
)

func kochRules() map[rune]string {
	return map[rune]string{'F': "F+F-F-F+F"}
}

func sierpinskiRules() map[rune]string {
	return map[rune]string{'F': "F-G+F+G-F", 'G': "GG"}
}

func TestNewEmptyAxiom(t *testing.T) {
	_, err := New("", kochRules())
	if !errors.Is(err, ErrEmptyAxiom) {
		t.Fatalf("expected ErrEmptyAxiom, got %v", err)
	}
}

func TestIterateKoch(t *testing.T) {
	rs, err := New("F", kochRules())
	if err != nil {
		t.Fatal(err)
	}
	rw := NewRewriter(rs)

	got := rw.Iterate()
	if got != "F+F-F-F+F" {
		t.Errorf("expected F+F-F-F+F, got %s", got)
	}
	if rw.Generation() != 1 {
		t.Errorf("expected generation 1, got %d", rw.Generation())
	}
	if rw.Len() != 9 {
		t.Errorf("expected length 9, got %d", rw.Len())
	}
}

func TestIterateSierpinski(t *testing.T) {
	rs, err := New("F-G-G", sierpinskiRules())
	if err != nil {
		t.Fatal(err)
	}
	rw := NewRewriter(rs)

	got := rw.Iterate()
	if got != "F-G+F+G-F-GG-GG" {
		t.Errorf("expected F-G+F+G-F-GG-GG, got %s", got)
	}
}

func TestUnmappedSymbolsPassThrough(t *testing.T) {
	rs, err := New("A+B", map[rune]string{'A': "AB"})
	if err != nil {
		t.Fatal(err)
	}
	rw := NewRewriter(rs)

	if got := rw.Iterate(); got != "AB+B" {
		t.Errorf("expected AB+B, got %s", got)
	}
}

func TestIterateNZero(t *testing.T) {
	rs, _ := New("F", kochRules())
	rw := NewRewriter(rs)
	if got := rw.IterateN(0); got != "F" {
		t.Errorf("expected axiom unchanged, got %s", got)
	}
	if rw.Generation() != 0 {
		t.Errorf("expected generation 0, got %d", rw.Generation())
	}
}

func TestIterateNAdditive(t *testing.T) {
	tests := []struct {
		name string
		n, m int
	}{
		{"0+0", 0, 0},
		{"0+3", 0, 3},
		{"1+1", 1, 1},
		{"2+1", 2, 1},
		{"1+3", 1, 3},
	}

	rs, _ := New("F-G-G", sierpinskiRules())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := NewRewriter(rs)
			split.IterateN(tt.n)
			split.IterateN(tt.m)

			whole := NewRewriter(rs)
			whole.IterateN(tt.n + tt.m)

			if split.Sequence() != whole.Sequence() {
				t.Errorf("iterateN(%d)+iterateN(%d) != iterateN(%d)", tt.n, tt.m, tt.n+tt.m)
			}
			if split.Generation() != tt.n+tt.m {
				t.Errorf("expected generation %d, got %d", tt.n+tt.m, split.Generation())
			}
		})
	}
}

func TestReset(t *testing.T) {
	rs, _ := New("F-G-G", sierpinskiRules())
	rw := NewRewriter(rs)
	rw.IterateN(4)
	rw.Reset()

	if rw.Sequence() != "F-G-G" {
		t.Errorf("expected axiom after reset, got %s", rw.Sequence())
	}
	if rw.Generation() != 0 {
		t.Errorf("expected generation 0 after reset, got %d", rw.Generation())
	}
}

func TestDeletionRule(t *testing.T) {
	rs, _ := New("FXF", map[rune]string{'X': ""})
	rw := NewRewriter(rs)
	if got := rw.Iterate(); got != "FF" {
		t.Errorf("expected FF, got %s", got)
	}
}

func TestRuleSetImmutable(t *testing.T) {
	rules := kochRules()
	rs, _ := New("F", rules)
	rules['F'] = "FF"

	rw := NewRewriter(rs)
	if got := rw.Iterate(); got != "F+F-F-F+F" {
		t.Errorf("rule set mutated by caller map change: %s", got)
	}
}
