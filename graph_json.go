package graphisomorphism

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// graphMetaJSON is the "meta" object of the graph JSON schema (§6.2).
type graphMetaJSON struct {
	Binary    string `json:"binary"`
	NodeCount int    `json:"node_count"`
}

// nodeJSON is one entry of the "nodes" array of the graph JSON schema.
type nodeJSON struct {
	Index         int     `json:"index"`
	Address       string  `json:"address"`
	TargetAddress *string `json:"target_address"`
}

// graphEdgesJSON is the "edges" object of the graph JSON schema.
type graphEdgesJSON struct {
	Seq [][2]int `json:"seq"`
	Jmp [][2]int `json:"jmp"`
}

// graphJSON is the top-level graph JSON schema (§6.2).
type graphJSON struct {
	Meta  graphMetaJSON  `json:"meta"`
	Nodes []nodeJSON     `json:"nodes"`
	Edges graphEdgesJSON `json:"edges"`
}

func formatHex(addr uint64) string {
	return "0x" + strconv.FormatUint(addr, 16)
}

func parseHex(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return strconv.ParseUint(s, 16, 64)
}

func (g *Graph) toJSON() graphJSON {
	out := graphJSON{
		Meta: graphMetaJSON{Binary: g.Binary, NodeCount: g.NodeCount()},
	}
	out.Nodes = make([]nodeJSON, 0, g.NodeCount())
	for _, n := range g.Nodes {
		nj := nodeJSON{Index: n.Index, Address: formatHex(n.Address)}
		if n.HasTarget {
			s := formatHex(n.TargetAddress)
			nj.TargetAddress = &s
		}
		out.Nodes = append(out.Nodes, nj)
	}
	for _, e := range g.SeqEdges() {
		out.Edges.Seq = append(out.Edges.Seq, [2]int{e.Src, e.Dst})
	}
	for _, e := range g.JmpEdges() {
		out.Edges.Jmp = append(out.Edges.Jmp, [2]int{e.Src, e.Dst})
	}
	return out
}

// MarshalJSON encodes the graph per the §6.2 schema, always emitting
// seq edges for human inspection even though they are reconstructible
// from node_count alone.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.toJSON())
}

// Save writes the graph's JSON encoding to path atomically: the file is
// written to a temporary path in the same directory and renamed into
// place, so a crash mid-write leaves either the previous file or
// nothing at path, never a partially written one.
func (g *Graph) Save(path string) error {
	return atomicWriteJSON(path, g.toJSON())
}

// LoadGraph reads and validates a graph JSON file, reconstructing seq
// edges from node_count when the file omits them (permitted by §6.2)
// and rejecting structurally invalid files with a *SchemaError.
func LoadGraph(path string) (*Graph, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseGraphJSON(data)
}

// ParseGraphJSON decodes a graph from its JSON representation, as
// produced by Graph.MarshalJSON / Graph.Save.
func ParseGraphJSON(data []byte) (*Graph, error) {
	var gj graphJSON
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&gj); err != nil {
		return nil, &SchemaError{Field: "<root>", Err: err}
	}

	if gj.Meta.NodeCount != len(gj.Nodes) {
		return nil, &SchemaError{Field: "meta.node_count", Err: fmt.Errorf("declared %d, found %d nodes", gj.Meta.NodeCount, len(gj.Nodes))}
	}

	g := &Graph{
		Binary:   gj.Meta.Binary,
		Nodes:    make([]Node, len(gj.Nodes)),
		jmpBySrc: make(map[int]int),
		fpCache:  make(map[fpKey]Fingerprint),
	}

	seen := make(map[int]bool, len(gj.Nodes))
	for i, nj := range gj.Nodes {
		if nj.Index != i {
			return nil, &SchemaError{Field: "nodes[].index", Err: fmt.Errorf("expected %d, got %d", i, nj.Index)}
		}
		if seen[nj.Index] {
			return nil, &SchemaError{Field: "nodes[].index", Err: fmt.Errorf("duplicate index %d", nj.Index)}
		}
		seen[nj.Index] = true

		addr, err := parseHex(nj.Address)
		if err != nil {
			return nil, &SchemaError{Field: "nodes[].address", Err: err}
		}
		node := Node{Index: i, Address: addr}
		if nj.TargetAddress != nil {
			target, err := parseHex(*nj.TargetAddress)
			if err != nil {
				return nil, &SchemaError{Field: "nodes[].target_address", Err: err}
			}
			node.TargetAddress = target
			node.HasTarget = true
		}
		g.Nodes[i] = node
	}

	for _, pair := range gj.Edges.Jmp {
		src, dst := pair[0], pair[1]
		if src < 0 || src >= len(g.Nodes) || dst < 0 || dst >= len(g.Nodes) {
			return nil, &SchemaError{Field: "edges.jmp", Err: fmt.Errorf("edge (%d,%d) out of range [0,%d)", src, dst, len(g.Nodes))}
		}
		if existing, ok := g.jmpBySrc[src]; ok && existing != dst {
			return nil, &SchemaError{Field: "edges.jmp", Err: fmt.Errorf("node %d has more than one jmp edge", src)}
		}
		g.jmpBySrc[src] = dst
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}
