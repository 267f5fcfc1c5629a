package mst_test

import (
	"fmt"

	"github.com/katalvlaran/mstquant/colorspace"
	"github.com/katalvlaran/mstquant/mst"
)

// ExamplePrim builds the tree over black and three dark primaries.
// Black is 10 away from each primary while the primaries are √200 apart,
// so the MST is a star around black with total weight 30.
func ExamplePrim() {
	verts := []colorspace.Color{
		colorspace.RGB(0, 0, 0),
		colorspace.RGB(10, 0, 0),
		colorspace.RGB(0, 10, 0),
		colorspace.RGB(0, 0, 10),
	}

	tree, err := mst.Prim(verts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %.0f, Edges:", tree.Total)
	for _, e := range tree.Edges {
		fmt.Printf(" %v-%v", tree.Source(e), tree.Dest(e))
	}
	fmt.Println()
	// Output: Total: 30, Edges: (10,0,0)-(0,0,0) (0,10,0)-(0,0,0) (0,0,10)-(0,0,0)
}

func ExamplePrim_emptyVertexSet() {
	_, err := mst.Prim(nil)
	fmt.Println(err)
	// Output: mst: pixgrid: image must have at least one row and one column
}
