// Package graphisomorphism performs structural fingerprinting of ELF
// executables for malware triage. It reduces each binary to a directed
// graph of its conditional-branch instructions and finds the largest,
// or all, contiguous subgraph windows that are structurally identical
// between two such graphs, even when the binaries differ byte-for-byte.
//
// # Pipeline
//
// Four stages run leaves-first:
//
//   - Parse tokenizes an objdump-style disassembly listing into
//     [Instruction] records. ExtractNative offers an alternate entry
//     point that decodes an ELF .text section directly with x86asm,
//     for hosts without an external disassembler.
//   - Build filters instructions to conditional branches
//     (IsConditionalBranch) and assembles a [Graph]: sequence edges
//     between consecutive nodes, plus jmp edges wherever a branch's
//     target address lands on another branch.
//   - [Graph.Fingerprint] computes the canonical structural key of a
//     contiguous window of nodes, used to bucket windows for matching.
//   - Compare enumerates window pairs between two graphs whose
//     fingerprints agree, in either best-size or all-sizes mode, and
//     returns a [Comparison].
//
// Graphs are immutable after Build or LoadGraph return them and may be
// persisted as JSON ([Graph.Save], LoadGraph) to be matched against
// later as a prior graph. The matcher never mutates its inputs.
package graphisomorphism
