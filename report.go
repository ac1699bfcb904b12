package graphisomorphism

import "encoding/json"

// Report is the top-level "compare" command output (§6.3).
type Report struct {
	PriorGraph GraphRef   `json:"prior_graph"`
	NewGraph   GraphRef   `json:"new_graph"`
	Params     Params     `json:"params"`
	Comparison Comparison `json:"comparison"`
}

// GraphRef identifies one side of a comparison by source path and node
// count.
type GraphRef struct {
	Path      string `json:"path"`
	NodeCount int    `json:"node_count"`
}

// Params records the matcher options a Report was produced with.
type Params struct {
	Mode       string `json:"mode"`
	MinSize    int    `json:"min_size"`
	SizeFilter *int   `json:"size_filter"`
	MaxReport  int    `json:"max_report"`
}

// matchJSON is the wire shape of one Match entry; Match itself keeps
// Go-idiomatic field names, so the report marshals through this type
// rather than tagging Match directly.
type matchJSON struct {
	PriorStart int `json:"prior_start"`
	NewStart   int `json:"new_start"`
	Size       int `json:"size"`
}

// comparisonJSON is the wire shape of the "comparison" object.
type comparisonJSON struct {
	BestMatchSize           int         `json:"best_match_size"`
	FitRatioAgainstMinNodes float64     `json:"fit_ratio_against_min_nodes"`
	MatchCountReported      int         `json:"match_count_reported"`
	Matches                 []matchJSON `json:"matches"`
}

// MarshalJSON encodes the comparison per the §6.3 schema.
func (c Comparison) MarshalJSON() ([]byte, error) {
	cj := comparisonJSON{
		BestMatchSize:           c.BestMatchSize,
		FitRatioAgainstMinNodes: c.FitRatioAgainstMinNodes,
		MatchCountReported:      c.MatchCountReported,
		Matches:                 make([]matchJSON, len(c.Matches)),
	}
	for i, m := range c.Matches {
		cj.Matches[i] = matchJSON{PriorStart: m.PriorStart, NewStart: m.NewStart, Size: m.Size}
	}
	return json.Marshal(cj)
}

// BuildReport assembles a Report from a completed comparison plus the
// provenance and parameters that produced it.
func BuildReport(priorPath string, prior *Graph, newPath string, next *Graph, opts Options, comparison Comparison) Report {
	return Report{
		PriorGraph: GraphRef{Path: priorPath, NodeCount: prior.NodeCount()},
		NewGraph:   GraphRef{Path: newPath, NodeCount: next.NodeCount()},
		Params: Params{
			Mode:       opts.withDefaults().Mode.String(),
			MinSize:    opts.withDefaults().MinSize,
			SizeFilter: opts.SizeFilter,
			MaxReport:  opts.withDefaults().MaxReport,
		},
		Comparison: comparison,
	}
}

// Save writes the report's JSON encoding to path atomically, exactly as
// Graph.Save does for graphs.
func (r Report) Save(path string) error {
	return atomicWriteJSON(path, r)
}
