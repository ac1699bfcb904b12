// Command graphisomorphism extracts conditional-jump fingerprint graphs
// from ELF binaries and compares the shared subgraph structure between
// two of them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	var exitCode int
	switch os.Args[1] {
	case "extract":
		err, exitCode = cmdExtract(os.Args[2:])
	case "compare":
		err, exitCode = cmdCompare(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "graphisomorphism: %v\n", err)
		os.Exit(exitCode)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: graphisomorphism <command> [flags]

commands:
  extract  --binary <path> --output <path> [--native] [--objdump <path>]
  compare  --binary <path> --prior-graph <path> --output <path>
           [--extracted-output <path>] [--collect-all-sizes]
           [--min-size <n>] [--size-filter <n>] [--max-report <n>]
           [--native] [--objdump <path>]`)
}
