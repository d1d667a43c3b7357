package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleRun finds a shortest route across a small open grid with BFS.
func ExampleRun() {
	g, err := grid.New(3, 3, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	res, err := search.Run(g, search.BFS)
	if err != nil {
		fmt.Println("search:", err)
		return
	}

	fmt.Println("found:", res.Found)
	fmt.Println("cost:", res.Cost)
	fmt.Println("path:", res.Path)
	// Output:
	// found: true
	// cost: 4
	// path: [0,0 0,1 0,2 1,2 2,2]
}

// ExampleRun_aStarVersusBFS contrasts how much of the map each search has
// to finalize before reaching the far corner of an empty 5×5 grid.
func ExampleRun_aStarVersusBFS() {
	g, err := grid.New(5, 5, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 4})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	for _, a := range []search.Algorithm{search.BFS, search.AStar} {
		res, err := search.Run(g, a)
		if err != nil {
			fmt.Println("search:", err)
			return
		}
		fmt.Printf("%s: expanded %d cells, path cost %.0f\n",
			a, len(res.Trace), res.Cost)
	}
	// Output:
	// bfs: expanded 25 cells, path cost 8
	// astar: expanded 9 cells, path cost 8
}

// ExampleRun_noPath shows the negative answer: a walled-off target yields
// Found=false, not an error.
func ExampleRun_noPath() {
	g, err := grid.New(5, 5, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	walls := []grid.Cell{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
		{Row: 2, Col: 1}, {Row: 2, Col: 3},
		{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	}
	for _, w := range walls {
		g.SetTraversable(w, false)
	}

	res, err := search.Run(g, search.Dijkstra)
	if err != nil {
		fmt.Println("search:", err)
		return
	}

	fmt.Println("found:", res.Found)
	fmt.Println("path cells:", len(res.Path))
	// Output:
	// found: false
	// path cells: 0
}
