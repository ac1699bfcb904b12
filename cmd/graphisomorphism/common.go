package main

import (
	"fmt"

	"github.com/TimelessP/graphisomorphism"
	"github.com/TimelessP/graphisomorphism/internal/disasmrun"
)

// extractGraph disassembles binary and builds its conditional-jump
// graph, either natively (x86asm over .text) or by shelling out to an
// external disassembler and parsing its textual output, per §6.1/§6.4.
func extractGraph(binary string, native bool, disassembler string) (*graphisomorphism.Graph, error) {
	if native {
		g, err := graphisomorphism.ExtractNative(binary)
		if err != nil {
			return nil, fmt.Errorf("native extraction: %w", err)
		}
		return g, nil
	}

	if !disasmrun.IsELF(binary) {
		return nil, fmt.Errorf("%s is not an ELF executable", binary)
	}

	out, err := disasmrun.Run(disassembler, binary)
	if err != nil {
		return nil, fmt.Errorf("disassembly failed: %w", err)
	}

	insts, err := graphisomorphism.ParseString(string(out))
	if err != nil {
		return nil, fmt.Errorf("parse disassembly: %w", err)
	}

	return graphisomorphism.Build(binary, insts), nil
}
