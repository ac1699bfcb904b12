package graphisomorphism

import (
	"debug/elf"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/arch/x86/x86asm"
)

// ExtractNative builds a Graph directly from an ELF binary's .text
// section, decoding amd64 machine code with x86asm instead of shelling
// out to an external disassembler. It exists for hosts that don't have
// objdump installed; the textual path via internal/disasmrun remains
// the default (§6.1's --native flag selects this one instead). The
// conditional-branch predicate in §3 is an x86 mnemonic shape, so this
// path only supports amd64 ELF binaries.
func ExtractNative(path string) (*Graph, error) {
	raw, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer raw.Close()

	f, err := elf.NewFile(raw)
	if err != nil {
		return nil, fmt.Errorf("parse ELF file %s: %w", path, err)
	}
	defer f.Close()

	if f.Machine != elf.EM_X86_64 {
		return nil, fmt.Errorf("native extraction only supports amd64 ELF binaries, got %s", f.Machine)
	}

	text := f.Section(".text")
	if text == nil {
		return nil, fmt.Errorf("no .text section found in %s", path)
	}
	code, err := text.Data()
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read .text section of %s: %w", path, err)
	}

	insts := decodeAMD64(code, text.Addr)
	return Build(path, insts), nil
}

// decodeAMD64 walks code with x86asm.Decode exactly the way a
// disassembler's main loop does: undecodable bytes are skipped one at a
// time rather than aborting the whole scan, since a single misaligned
// or data-embedded-in-.text byte shouldn't take down extraction.
// Each decoded instruction is rendered with x86asm.GNUSyntax and split
// into mnemonic/operands, the same shape Parse produces from textual
// objdump output, so both paths feed the same Build function.
func decodeAMD64(code []byte, baseAddr uint64) []Instruction {
	var out []Instruction

	offset := 0
	addr := baseAddr
	for offset < len(code) {
		inst, err := x86asm.Decode(code[offset:], 64)
		if err != nil || inst.Len == 0 {
			offset++
			addr++
			continue
		}

		if mnemonic, operands, ok := formatInstruction(inst, addr); ok {
			out = append(out, Instruction{Address: addr, Mnemonic: mnemonic, Operands: operands})
		}

		offset += inst.Len
		addr += uint64(inst.Len)
	}

	return out
}

func formatInstruction(inst x86asm.Inst, pc uint64) (mnemonic, operands string, ok bool) {
	text := strings.TrimSpace(x86asm.GNUSyntax(inst, pc, nil))
	if text == "" {
		return "", "", false
	}
	fields := strings.SplitN(text, " ", 2)
	mnemonic = fields[0]
	if len(fields) > 1 {
		operands = strings.TrimSpace(fields[1])
	}
	return mnemonic, operands, true
}
