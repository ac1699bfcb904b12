package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/TimelessP/graphisomorphism"
)

func cmdCompare(args []string) (error, int) {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	binary := fs.String("binary", "", "path to new target ELF binary")
	priorGraphPath := fs.String("prior-graph", "", "path to previously extracted graph JSON")
	output := fs.String("output", "", "path to comparison JSON output")
	extractedOutput := fs.String("extracted-output", "", "optional path to also save the newly extracted graph JSON")
	collectAllSizes := fs.Bool("collect-all-sizes", false, "accumulate matches across all sizes down to --min-size instead of only the best size")
	minSize := fs.Uint("min-size", graphisomorphism.DefaultMinSize, "minimum subgraph window size to consider")
	sizeFilter := fs.Uint("size-filter", 0, "report only matches of exactly this window size (0 = unset)")
	maxReport := fs.Uint("max-report", 0, "maximum number of matches to report (0 = mode default)")
	native := fs.Bool("native", false, "decode ELF .text sections directly instead of invoking an external disassembler")
	objdump := fs.String("objdump", "objdump", "disassembler executable to invoke")

	if err := fs.Parse(args); err != nil {
		return err, 2
	}
	if *binary == "" || *priorGraphPath == "" || *output == "" {
		return fmt.Errorf("--binary, --prior-graph and --output are required"), 2
	}

	mode := graphisomorphism.BestSize
	if *collectAllSizes {
		mode = graphisomorphism.AllSizes
	}

	opts := graphisomorphism.Options{
		Mode:    mode,
		MinSize: int(*minSize),
	}
	if *sizeFilter > 0 {
		f := int(*sizeFilter)
		opts.SizeFilter = &f
	}
	if *maxReport > 0 {
		opts.MaxReport = int(*maxReport)
	}

	newGraph, err := extractGraph(*binary, *native, *objdump)
	if err != nil {
		return err, 1
	}

	priorGraph, err := graphisomorphism.LoadGraph(*priorGraphPath)
	if err != nil {
		return fmt.Errorf("load prior graph: %w", err), 1
	}

	if *extractedOutput != "" {
		if err := newGraph.Save(*extractedOutput); err != nil {
			return fmt.Errorf("write %s: %w", *extractedOutput, err), 1
		}
	}

	comparison := graphisomorphism.Compare(priorGraph, newGraph, opts)
	report := graphisomorphism.BuildReport(*priorGraphPath, priorGraph, *binary, newGraph, opts, comparison)

	if err := report.Save(*output); err != nil {
		return fmt.Errorf("write %s: %w", *output, err), 1
	}

	fmt.Fprintf(os.Stderr, "best match size %d (%.2f%% of min node count), reported matches: %d\n",
		comparison.BestMatchSize, comparison.FitRatioAgainstMinNodes*100, comparison.MatchCountReported)
	fmt.Fprintf(os.Stderr, "wrote comparison report to %s\n", *output)
	return nil, 0
}
