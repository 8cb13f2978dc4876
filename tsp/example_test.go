// Package tsp_test provides runnable, deterministic examples of driving the
// route optimizer the way a caller with a redraw loop would.
package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/tsp"
	"github.com/paulmach/orb"
)

// ExampleOptimizer drives three triangle edges supplied in a poor order and
// reports progress every 50 iterations.
func ExampleOptimizer() {
	origin := orb.Point{0, 0}
	points := []tsp.Visitable{
		{Entry: origin, Exit: origin}, // tool start
		{Entry: orb.Point{4, 9}, Exit: orb.Point{0, 1}},
		{Entry: orb.Point{1, 0}, Exit: orb.Point{10, 0}},
		{Entry: orb.Point{10, 1}, Exit: orb.Point{5, 9}},
		{Entry: origin, Exit: origin}, // tool end
	}

	opt, err := tsp.New(points, nil, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	budget := 3 * 50
	for it := 0; it < budget; it++ {
		opt.AdvanceIteration()
		if it%50 == 0 {
			fmt.Printf("it=%d converged=%t\n", it, opt.Converged())
		}
	}
	fmt.Println("route:", opt.CurrentRoute())
	fmt.Printf("cost: %.3f\n", opt.Cost())
	// Output:
	// it=0 converged=false
	// it=50 converged=true
	// it=100 converged=true
	// route: [2 3 1]
	// cost: 4.000
}

// ExampleNew_invalidInput shows the construction-time failure a caller should
// answer by keeping its input order.
func ExampleNew_invalidInput() {
	origin := orb.Point{0, 0}
	points := []tsp.Visitable{{Entry: origin, Exit: origin}, {Entry: origin, Exit: origin}}

	_, err := tsp.New(points, []int{5}, tsp.DefaultOptions())
	fmt.Println(err)
	// Output:
	// fixed[0]: tsp: fixed-order index out of range
}
