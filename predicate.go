package graphisomorphism

import "strings"

// loopMnemonics holds the loop-conditional mnemonics that count as
// conditional branches alongside the "j*" family.
var loopMnemonics = map[string]bool{
	"loop":   true,
	"loope":  true,
	"loopne": true,
	"loopz":  true,
	"loopnz": true,
}

// IsConditionalBranch reports whether mnemonic denotes a conditional
// branch instruction: any "j*" mnemonic other than the unconditional
// "jmp", or one of the loop-conditional forms. Matching is
// case-insensitive; this is the sole predicate that turns an instruction
// into a graph node.
func IsConditionalBranch(mnemonic string) bool {
	m := strings.ToLower(strings.TrimSpace(mnemonic))
	if m == "" {
		return false
	}
	if loopMnemonics[m] {
		return true
	}
	return strings.HasPrefix(m, "j") && m != "jmp"
}
