package citymap_test

import (
	"fmt"

	"github.com/katalvlaran/tsplab/citymap"
)

// ExampleNew builds a three-city asymmetric graph with one missing edge and
// inspects it.
func ExampleNew() {
	g, err := citymap.New([][]float64{
		{0, 2, 9},
		{3, 0, 4},
		{0, 5, 0}, // 2→0 is absent
	}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	minEdge, _ := g.MinEdge()
	fmt.Println("order:", g.Order())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("has 2→0:", g.HasEdge(2, 0))
	fmt.Println("min edge:", minEdge)
	fmt.Println("symmetric:", g.IsSymmetric(0))
	// Output:
	// order: 3
	// edges: 5
	// has 2→0: false
	// min edge: 2
	// symmetric: false
}
