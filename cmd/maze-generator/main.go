package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/pathfinder/core"
	"github.com/lixenwraith/pathfinder/grid"
	"github.com/lixenwraith/pathfinder/maze"
	"github.com/lixenwraith/pathfinder/navigation"
	"github.com/lixenwraith/pathfinder/render"
)

func main() {
	w := flag.Int("w", 35, "Width in cells (odd)")
	h := flag.Int("h", 19, "Height in cells (odd)")
	braid := flag.Float64("braid", 0.2, "Braiding factor [0.0 - 1.0]")
	seed := flag.Int64("seed", 0, "Layout seed, 0 picks one from the clock")
	once := flag.Bool("once", false, "Print one maze from the flags and exit")
	flag.Parse()

	cfg := maze.Config{Width: *w, Height: *h, Braiding: clamp01(*braid), Seed: *seed}
	if *once {
		generate(os.Stdout, cfg)
		return
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\n=== MAZE GENERATOR ===")

		cfg.Width = getInt(reader, fmt.Sprintf("Width [odd preferred] (default %d): ", cfg.Width), cfg.Width)
		cfg.Height = getInt(reader, fmt.Sprintf("Height [odd preferred] (default %d): ", cfg.Height), cfg.Height)
		cfg.Braiding = getFloat(reader, fmt.Sprintf("Braiding factor [0.0 - 1.0] (default %.2f): ", cfg.Braiding), cfg.Braiding)
		cfg.Seed = int64(getInt(reader, "Seed (default random): ", 0))

		generate(os.Stdout, cfg)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// generate builds one layout, solves it on a matching grid and prints the map
func generate(w io.Writer, cfg maze.Config) {
	startT := time.Now()
	layout := maze.Generate(cfg)
	genDur := time.Since(startT)

	gcfg := layout.GridConfig(core.V(0, 0), 0.5)
	g, err := grid.New(gcfg, layout.ObstacleFunc(gcfg))
	if err != nil {
		fmt.Fprintf(w, "grid: %v\n", err)
		return
	}
	start := g.Cell(layout.Start.X, layout.Start.Y)
	end := g.Cell(layout.End.X, layout.End.Y)
	res := navigation.BFSSearch{}.FindPath(g, start, end)

	fmt.Fprintf(w, "Done in %v (seed %d)\n", genDur, layout.Seed)
	fmt.Fprintf(w, "Grid Dimensions: %dx%d, dead ends: %d\n", layout.Width, layout.Height, layout.DeadEnds())
	if res.Found {
		fmt.Fprintf(w, "Solution Path Length: %d steps, %d cells explored\n", res.Hops(), len(res.Order))
	} else {
		fmt.Fprintln(w, "Status: Unsolvable (Isolated Start/End)")
	}
	fmt.Fprint(w, render.ASCII(g, res))
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
