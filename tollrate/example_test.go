package tollrate_test

import (
	"fmt"

	"github.com/katalvlaran/tollgrid/distmat"
	"github.com/katalvlaran/tollgrid/tollrate"
)

// ExampleCalculate prices a single 10 km pair for all five vehicle
// classes.
func ExampleCalculate() {
	rows := tollrate.Calculate([]distmat.Edge{{IDStart: 1, IDEnd: 2, Distance: 10}})

	r := rows[0]
	fmt.Printf("moto=%.1f car=%.1f rv=%.1f bus=%.1f truck=%.1f\n",
		r.Moto, r.Car, r.RV, r.Bus, r.Truck)
	// Output:
	// moto=8.0 car=12.0 rv=15.0 bus=22.0 truck=36.0
}

// ExampleAdjustTimeBased shows the full-week stamp and the compounded
// weekday discount (0.8 × 1.2 × 0.8 = 0.768) applied to every record
// surviving the threshold filter around station 7.
func ExampleAdjustTimeBased() {
	edges := []distmat.Edge{
		{IDStart: 7, IDEnd: 8, Distance: 100},
		{IDStart: 8, IDEnd: 7, Distance: 100},
	}

	rows, err := tollrate.AdjustTimeBased(edges, tollrate.WithReference(7))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, r := range rows {
		fmt.Printf("%d → %d %s %s – %s %s : %.1f\n",
			r.IDStart, r.IDEnd, r.StartDay, r.StartTime, r.EndDay, r.EndTime, r.Distance)
	}
	// Output:
	// 7 → 8 Monday 00:00:00 – Sunday 23:59:59 : 76.8
	// 8 → 7 Monday 00:00:00 – Sunday 23:59:59 : 76.8
}
