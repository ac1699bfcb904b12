package graphisomorphism_test

import (
	"testing"

	"github.com/TimelessP/graphisomorphism"
)

func TestIsConditionalBranch(t *testing.T) {
	tests := []struct {
		mnemonic string
		want     bool
	}{
		{"je", true},
		{"jne", true},
		{"jg", true},
		{"jle", true},
		{"JNE", true},
		{"  jz  ", true},
		{"jmp", false},
		{"JMP", false},
		// Only the bare "jmp" mnemonic is excluded per §3; unlike some
		// disassemblers' unconditional-jump sets, "jmpq" still begins
		// with "j" and isn't exactly "jmp", so the predicate admits it.
		{"jmpq", true},
		{"ljmp", false}, // doesn't start with "j" at all
		{"loop", true},
		{"loope", true},
		{"loopne", true},
		{"loopz", true},
		{"loopnz", true},
		{"LOOP", true},
		{"call", false},
		{"mov", false},
		{"push", false},
		{"ret", false},
		{"", false},
		{"jmps", true}, // starts with "j", not exactly "jmp"
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			if got := graphisomorphism.IsConditionalBranch(tt.mnemonic); got != tt.want {
				t.Errorf("IsConditionalBranch(%q) = %v, want %v", tt.mnemonic, got, tt.want)
			}
		})
	}
}
