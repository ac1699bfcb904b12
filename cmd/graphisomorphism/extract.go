package main

import (
	"flag"
	"fmt"
	"os"
)

func cmdExtract(args []string) (error, int) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	binary := fs.String("binary", "", "path to target ELF binary")
	output := fs.String("output", "", "path to graph JSON output")
	native := fs.Bool("native", false, "decode the ELF .text section directly instead of invoking an external disassembler")
	objdump := fs.String("objdump", "objdump", "disassembler executable to invoke")

	if err := fs.Parse(args); err != nil {
		return err, 2
	}
	if *binary == "" || *output == "" {
		return fmt.Errorf("--binary and --output are required"), 2
	}

	g, err := extractGraph(*binary, *native, *objdump)
	if err != nil {
		return err, 1
	}

	if err := g.Save(*output); err != nil {
		return fmt.Errorf("write %s: %w", *output, err), 1
	}

	fmt.Fprintf(os.Stderr, "wrote graph with %d nodes to %s\n", g.NodeCount(), *output)
	return nil, 0
}
