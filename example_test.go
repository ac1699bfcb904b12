package graphisomorphism_test

import (
	"fmt"

	"github.com/TimelessP/graphisomorphism"
)

func ExampleBuild() {
	text := `
1000: 74 00 je  1004
1002: 75 00 jne 1000
1004: 76 00 jle 1002
`
	insts, err := graphisomorphism.ParseString(text)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g := graphisomorphism.Build("demo", insts)
	fmt.Printf("nodes: %d, jmp edges: %d\n", g.NodeCount(), len(g.JmpEdges()))
	// Output:
	// nodes: 3, jmp edges: 3
}

func ExampleCompare() {
	text := `
1000: 74 00 je  1004
1002: 75 00 jne 1000
1004: 76 00 jle 1002
`
	insts, _ := graphisomorphism.ParseString(text)
	g := graphisomorphism.Build("demo", insts)

	cmp := graphisomorphism.Compare(g, g, graphisomorphism.Options{Mode: graphisomorphism.BestSize, MinSize: 1})
	fmt.Printf("best match size: %d\n", cmp.BestMatchSize)
	// Output:
	// best match size: 3
}
