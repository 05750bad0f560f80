package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/lixenwraith/pathfinder/core"
	"github.com/lixenwraith/pathfinder/grid"
	"github.com/lixenwraith/pathfinder/navigation"
	"github.com/lixenwraith/pathfinder/render"
)

// runRow is one algorithm's outcome on the scenario route
type runRow struct {
	result    navigation.Result
	waypoints []core.Vec2
	optimal   int // Weighted optimum from the cost field, -1 if unreachable
}

// compare runs each algorithm through the selector; every Select rebuilds the grid
func compare(sel *navigation.Selector, start, target core.Vec2, algos []navigation.Algorithm) []runRow {
	rows := make([]runRow, 0, len(algos))
	for _, a := range algos {
		// a comes from Algorithms() or a validated scenario
		_ = sel.Select(a)
		res, wps := sel.FindPath(start, target)

		optimal := -1
		sel.View(func(g *grid.Grid) {
			sx, sy := g.Size()
			field := navigation.NewCostField(sx, sy)
			field.Compute(g, res.Target, navigation.Distance)
			optimal = field.CostFrom(res.Start)
		})
		rows = append(rows, runRow{result: res, waypoints: wps, optimal: optimal})
	}
	return rows
}

func writeTable(w io.Writer, rows []runRow) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "algorithm\tfound\tvisited\thops\tcost\toptimal\telapsed")
	for _, r := range rows {
		res := r.result
		optimal := "-"
		if r.optimal >= 0 {
			optimal = fmt.Sprint(r.optimal)
		}
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%d\t%s\t%s\n",
			res.Algorithm.Label(), res.Found, len(res.Order), res.Hops(), res.Cost, optimal,
			res.Elapsed.Round(time.Microsecond))
	}
	tw.Flush()
}

// writeDetail prints the status line, waypoints and an ASCII map of one run
func writeDetail(w io.Writer, sel *navigation.Selector, r runRow) {
	fmt.Fprintln(w, render.StatusLine(r.result))
	if len(r.waypoints) == 0 {
		fmt.Fprintln(w, "no route between start and target")
	} else {
		fmt.Fprintf(w, "waypoints (%d):", len(r.waypoints))
		for _, p := range r.waypoints {
			fmt.Fprintf(w, " (%.2f,%.2f)", p.X, p.Y)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
	sel.View(func(g *grid.Grid) {
		fmt.Fprint(w, render.ASCII(g, r.result))
	})
}

func snapshot(path string, sel *navigation.Selector, res navigation.Result, scale int) error {
	var err error
	sel.View(func(g *grid.Grid) {
		err = render.SavePNG(path, g, res, scale)
	})
	return err
}
