package graphisomorphism

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Instruction is a single disassembled line: a virtual address, the
// opcode mnemonic, and the raw operand text. Instructions are produced
// by Parse and are immutable afterward.
type Instruction struct {
	Address  uint64
	Mnemonic string
	Operands string
}

var hexRunPattern = regexp.MustCompile(`^[0-9a-fA-F]{2}$`)

// Parse tokenizes the textual output of an objdump-style disassembler
// into an ordered sequence of instructions. Lines that are not
// instruction lines (section headers, "<symbol>:" labels, blank lines)
// are ignored. A line that looks instruction-like but carries an
// unparseable address is skipped rather than treated as an error:
// disassembler quirks are tolerated, not rejected. An input that yields
// no instruction lines at all produces an empty, non-error result.
func Parse(r io.Reader) ([]Instruction, error) {
	var out []Instruction
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if inst, ok := parseLine(scanner.Text()); ok {
			out = append(out, inst)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseString is a convenience wrapper around Parse for callers that
// already hold the disassembly text in memory.
func ParseString(text string) ([]Instruction, error) {
	return Parse(strings.NewReader(text))
}

// parseLine attempts to read a single instruction record from line. It
// returns ok=false for anything that is not an instruction line. An
// instruction line is a hex address and a colon, then an optional column
// of two-digit hex byte tokens, a mnemonic, and optional operands; any
// trailing "#" comment is dropped from the operands.
func parseLine(line string) (Instruction, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Instruction{}, false
	}

	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return Instruction{}, false
	}

	left := strings.TrimSpace(line[:colon])
	if left == "" || !isHexDigits(left) {
		return Instruction{}, false
	}

	address, err := strconv.ParseUint(left, 16, 64)
	if err != nil {
		return Instruction{}, false
	}

	rest := strings.TrimSpace(line[colon+1:])
	if rest == "" {
		return Instruction{}, false
	}
	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return Instruction{}, false
	}

	i := 0
	for i < len(tokens) && hexRunPattern.MatchString(tokens[i]) {
		i++
	}
	if i >= len(tokens) {
		// Nothing but a byte-listing column: no mnemonic to read.
		return Instruction{}, false
	}

	mnemonic := tokens[i]
	operands := strings.Join(tokens[i+1:], " ")
	if hash := strings.IndexByte(operands, '#'); hash >= 0 {
		operands = strings.TrimSpace(operands[:hash])
	}

	return Instruction{Address: address, Mnemonic: mnemonic, Operands: operands}, true
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
