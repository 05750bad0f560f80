package navigation

import (
	"context"
	"iter"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/pathfinder/grid"
)

// RevealKind tells a visualizer how to paint one revealed cell
type RevealKind uint8

const (
	RevealVisited RevealKind = iota
	RevealPath
	RevealEndpoint
)

func (k RevealKind) String() string {
	switch k {
	case RevealPath:
		return "path"
	case RevealEndpoint:
		return "endpoint"
	default:
		return "visited"
	}
}

// RevealEvent is one "reveal this cell" step of a visitation replay
type RevealEvent struct {
	Step  int // 0-based position in the visitation order
	Total int
	Cell  *grid.Cell
	Kind  RevealKind
}

// Reveal replays the visitation order as a finite sequence
// Each range over the sequence starts from the first step; stopping early has no effect on r
func (r Result) Reveal() iter.Seq[RevealEvent] {
	onPath := mapset.New[*grid.Cell]()
	if r.Found {
		for _, c := range r.Path {
			onPath.Put(c)
		}
	}
	order := r.Order

	return func(yield func(RevealEvent) bool) {
		for i, c := range order {
			kind := RevealVisited
			switch {
			case r.Found && (c == r.Start || c == r.Target):
				kind = RevealEndpoint
			case onPath.Has(c):
				kind = RevealPath
			}
			if !yield(RevealEvent{Step: i, Total: len(order), Cell: c, Kind: kind}) {
				return
			}
		}
	}
}

// Play feeds events to fn, one per interval tick
// Returns ctx.Err() if canceled before the sequence is exhausted; interval <= 0 plays without pacing
func Play(ctx context.Context, events iter.Seq[RevealEvent], interval time.Duration, fn func(RevealEvent)) error {
	if interval <= 0 {
		for ev := range events {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(ev)
		}
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for ev := range events {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		// A tick and a cancel can be ready together
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(ev)
	}
	return nil
}
