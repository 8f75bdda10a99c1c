// Package search_test provides examples demonstrating how to drive the engine
// with a concrete layout. Each example is runnable via “go test -run Example”,
// showing both code and expected output.
package search_test

import (
	"fmt" // fmt is used to print results in examples

	"github.com/katalvlaran/statesearch/permsort"
	"github.com/katalvlaran/statesearch/search"
)

// ExampleSolve demonstrates a uniform-cost search over the weighted sorting
// domain: exchanging 9 and 7 directly costs 20, but routing both odd values
// through the even 8 costs 11+11.
func ExampleSolve() {
	// 1) Parse the initial and goal encodings.
	initial, _ := permsort.New("9 7 8")
	goal, _ := permsort.New("7 8 9")

	// 2) Run with the default options (uniform-cost, no cost cap).
	res, err := search.Solve(initial, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print every layout on the cheapest path, root first.
	for _, n := range res.Path {
		fmt.Println(n.Layout().Key())
	}
	fmt.Printf("cost=%v\n", res.Cost)
	// Output:
	// 9 7 8
	// 8 7 9
	// 7 8 9
	// cost=22
}

// ExampleSolve_aStar selects the informed strategy; the layout's admissible
// heuristic prunes the frontier without changing the optimal cost.
func ExampleSolve_aStar() {
	initial, _ := permsort.New("-2 4 0 -1 3 5 1")
	goal, _ := permsort.New("-2 -1 0 1 3 4 5")

	// 1) WithStrategy switches the frontier ordering to g+h.
	res, err := search.Solve(initial, goal, search.WithStrategy(search.AStar))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) The informed and uninformed strategies agree on the total cost.
	fmt.Printf("found=%v cost=%v moves=%d\n", res.Found, res.Cost, len(res.Path)-1)
	// Output: found=true cost=33 moves=3
}

// ExampleSolve_noSolution shows the exhausted-frontier outcome: Found is
// false and no error is reported.
func ExampleSolve_noSolution() {
	initial, _ := permsort.New("1 2 3")
	goal, _ := permsort.New("4 5 6")

	res, err := search.Solve(initial, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("found=%v path=%v\n", res.Found, res.Path)
	// Output: found=false path=[]
}

// ExampleWithMaxCost caps the explored cost: paths whose accumulated cost
// exceeds the cap are never enqueued.
func ExampleWithMaxCost() {
	initial, _ := permsort.New("9 7 8")
	goal, _ := permsort.New("7 8 9")

	// 1) The optimal solution costs 22; a cap of 10 makes it unreachable.
	res, err := search.Solve(initial, goal, search.WithMaxCost(10))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("found=%v\n", res.Found)
	// Output: found=false
}
