// Package disasmrun invokes an external disassembler and does the
// minimal file-type sniffing needed before doing so. It is glue: the
// graphisomorphism engine treats disassembly as a pre-provided byte
// stream and never shells out itself.
package disasmrun

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// elfMagic is the four-byte ELF file magic.
var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// IsELF reports whether the file at path begins with the ELF magic
// number. It returns false, not an error, for files it cannot read:
// callers use this as a pre-flight check before invoking the
// disassembler, not as a validity guarantee.
func IsELF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var header [4]byte
	n, err := f.Read(header[:])
	if err != nil || n < 4 {
		return false
	}
	return bytes.Equal(header[:], elfMagic)
}

// Run invokes `<disassembler> -d <binary>` and returns its stdout. A
// non-zero exit surfaces the tool's stderr in the returned error, per
// §7's "disassembly failure" category. disassembler is typically
// "objdump"; callers may override it (e.g. for a cross-architecture
// objdump wrapper).
func Run(disassembler, binary string) ([]byte, error) {
	cmd := exec.Command(disassembler, "-d", binary)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := stderr.String()
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%s -d %s: %s", disassembler, binary, msg)
	}

	return stdout.Bytes(), nil
}
