package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/pathfinder/audio"
	"github.com/lixenwraith/pathfinder/navigation"
	"github.com/lixenwraith/pathfinder/scenario"
	"github.com/lixenwraith/pathfinder/status"
)

type options struct {
	scenarioPath string
	algo         string
	compare      bool
	pngPath      string
	scale        int
	interactive  bool
	sound        bool
	delay        time.Duration
	debug        bool
	dump         bool
	stats        bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("pathfinder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.scenarioPath, "scenario", "", "TOML scenario file (built-in scenario when empty)")
	fs.StringVar(&o.algo, "algo", "", "Algorithm: astar, dijkstra, bfs, dfs (overrides scenario)")
	fs.BoolVar(&o.compare, "compare", false, "Run every algorithm and print a comparison table")
	fs.StringVar(&o.pngPath, "png", "", "Write a PNG snapshot of the route")
	fs.IntVar(&o.scale, "scale", 16, "PNG pixels per cell")
	fs.BoolVar(&o.interactive, "interactive", false, "Open the terminal visualizer")
	fs.BoolVar(&o.sound, "sound", false, "Play reveal tones")
	fs.DurationVar(&o.delay, "delay", 15*time.Millisecond, "Interval between revealed cells")
	fs.BoolVar(&o.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&o.dump, "dump", false, "Print the effective scenario as TOML and exit")
	fs.BoolVar(&o.stats, "stats", false, "Print search counters on exit")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.scale < 1 {
		return o, fmt.Errorf("scale %d must be positive", o.scale)
	}
	return o, nil
}

// loadScenario resolves file, environment and flag layers in that order
func loadScenario(o options) (*scenario.Scenario, error) {
	sc := scenario.Default()
	if o.scenarioPath != "" {
		loaded, err := scenario.Load(o.scenarioPath)
		if err != nil {
			return nil, err
		}
		sc = loaded
	}
	sc.ApplyEnv()
	if o.algo != "" {
		sc.Algorithm = o.algo
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func main() {
	o, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "pathfinder: %v\n", err)
		os.Exit(2)
	}

	os.Exit(execute(o, os.Stderr))
}

// execute runs with logging set up and returns the exit code
// The log file is closed before returning since os.Exit skips defers
func execute(o options, stderr io.Writer) int {
	logFile := setupLogging(o.debug)
	err := run(o)
	if err != nil {
		log.Printf("pathfinder: %v", err)
	}
	if logFile != nil {
		log.SetOutput(io.Discard)
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(stderr, "pathfinder: %v\n", err)
		return 1
	}
	return 0
}

func run(o options) error {
	sc, err := loadScenario(o)
	if err != nil {
		return err
	}
	if o.dump {
		return sc.Encode(os.Stdout)
	}

	algo, err := sc.AlgorithmValue()
	if err != nil {
		return err
	}
	g, err := sc.Build()
	if err != nil {
		return err
	}
	sel, err := navigation.NewSelector(g, algo)
	if err != nil {
		return err
	}
	metrics := status.NewRegistry()
	sel.SetMetrics(metrics)
	defer reportMetrics(metrics, o.stats)

	var sound *audio.Sonifier
	if o.sound {
		sound = audio.NewSonifier(audio.LoadConfig())
		if err := sound.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
		}
		defer sound.Cleanup()
	}

	if o.interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("interactive mode needs a terminal on stdout")
		}
		return runInteractive(sel, sc, sound, o.delay)
	}

	algos := []navigation.Algorithm{algo}
	if o.compare {
		algos = navigation.Algorithms()
	}
	rows := compare(sel, sc.StartPos(), sc.TargetPos(), algos)
	writeTable(os.Stdout, rows)

	// The last run is left selected for detail output
	last := rows[len(rows)-1]
	fmt.Println()
	writeDetail(os.Stdout, sel, last)

	if o.pngPath != "" {
		if err := snapshot(o.pngPath, sel, last.result, o.scale); err != nil {
			return err
		}
		fmt.Printf("\nsnapshot written to %s\n", o.pngPath)
	}

	if sound != nil && sound.Active() {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := navigation.Play(ctx, last.result.Reveal(), o.delay, sound.PlayReveal); err != nil {
			log.Printf("pathfinder: replay stopped: %v", err)
			return nil
		}
		sound.PlayResult(last.result)
		// Let the final chime ring out
		time.Sleep(300 * time.Millisecond)
	}
	return nil
}

// reportMetrics logs the search counters and prints them when asked
func reportMetrics(metrics *status.Registry, show bool) {
	lines := metrics.Lines()
	for _, line := range lines {
		log.Printf("metrics: %s", line)
	}
	if show {
		fmt.Println()
		for _, line := range lines {
			fmt.Println(line)
		}
	}
}
