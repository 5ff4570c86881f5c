package distmat_test

import (
	"fmt"

	"github.com/katalvlaran/tollgrid/distmat"
)

// ExampleBuild demonstrates the three-station chain: the only route from
// station 1 to station 3 runs through station 2, so its cumulative
// distance is the sum of both hops.
func ExampleBuild() {
	m, err := distmat.Build([]distmat.Edge{
		{IDStart: 1, IDEnd: 2, Distance: 10},
		{IDStart: 2, IDEnd: 3, Distance: 5},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	d13, _ := m.At(1, 3)
	d31, _ := m.At(3, 1)
	fmt.Printf("stations=%d\ndist(1,3)=%.1f\ndist(3,1)=%.1f\n", m.Order(), d13, d31)
	// Output:
	// stations=3
	// dist(1,3)=15.0
	// dist(3,1)=15.0
}

// ExampleDistanceMatrix_Unroll shows the ordered-pair edge list derived
// from the matrix: N·(N−1) rows, no self-pairs, ascending station order.
func ExampleDistanceMatrix_Unroll() {
	rows, err := distmat.UnrollEdges([]distmat.Edge{
		{IDStart: 1, IDEnd: 2, Distance: 10},
		{IDStart: 2, IDEnd: 3, Distance: 5},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, r := range rows {
		fmt.Printf("%d → %d : %.1f\n", r.IDStart, r.IDEnd, r.Distance)
	}
	// Output:
	// 1 → 2 : 10.0
	// 1 → 3 : 15.0
	// 2 → 1 : 10.0
	// 2 → 3 : 5.0
	// 3 → 1 : 15.0
	// 3 → 2 : 5.0
}

// ExampleWithinThreshold selects rows within ±10% of station 5's average
// outgoing distance; both band ends are inclusive.
func ExampleWithinThreshold() {
	rows, err := distmat.WithinThreshold([]distmat.Edge{
		{IDStart: 5, IDEnd: 1, Distance: 90},
		{IDStart: 5, IDEnd: 2, Distance: 100},
		{IDStart: 5, IDEnd: 3, Distance: 110},
		{IDStart: 6, IDEnd: 1, Distance: 140},
	}, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("selected=%d\n", len(rows))
	// Output:
	// selected=3
}
