package main

import (
	"fmt"
	"iter"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathfinder/audio"
	"github.com/lixenwraith/pathfinder/core"
	"github.com/lixenwraith/pathfinder/grid"
	"github.com/lixenwraith/pathfinder/navigation"
	"github.com/lixenwraith/pathfinder/render"
	"github.com/lixenwraith/pathfinder/scenario"
)

const helpText = "arrows/hjkl move  space wall  s start  e end  1-4 algorithm  r run  c clear  q quit"

// replay is an in-flight paced reveal
type replay struct {
	result navigation.Result
	next   func() (navigation.RevealEvent, bool)
	stop   func()
}

// session owns the interactive loop state; all grid access goes through the selector
type session struct {
	screen tcell.Screen
	sel    *navigation.Selector
	board  *render.Board
	sound  *audio.Sonifier // nil when sound is off

	cursor core.Point
	active *replay
}

func newSession(screen tcell.Screen, sel *navigation.Selector, sound *audio.Sonifier) *session {
	s := &session{
		screen: screen,
		sel:    sel,
		board:  render.NewBoard(screen),
		sound:  sound,
	}
	s.board.SetHelp(helpText)
	s.board.SetStatus(fmt.Sprintf("%s | mark start and end, then r", sel.Active().Label()))

	sel.View(func(g *grid.Grid) {
		if start := g.Start(); start != nil {
			s.cursor = start.Pos
		}
	})
	s.board.SetCursor(s.cursor)
	return s
}

func runInteractive(sel *navigation.Selector, sc *scenario.Scenario, sound *audio.Sonifier, delay time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.EnableMouse()

	// Seed the flags from the scenario route
	sel.Update(func(g *grid.Grid) {
		g.MarkStart(g.CellAt(sc.StartPos()))
		g.MarkEnd(g.CellAt(sc.TargetPos()))
	})

	s := newSession(screen, sel, sound)
	s.draw()

	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			eventChan <- ev
		}
	})

	if delay <= 0 {
		delay = time.Millisecond
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				s.cancelReplay()
				return nil
			}
			s.draw()
		case <-ticker.C:
			if s.active != nil {
				s.tick()
				s.draw()
			}
		}
	}
}

func (s *session) draw() {
	s.sel.View(s.board.Draw)
}

// handleEvent applies one input event, false means quit
func (s *session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			s.click(ev.Position())
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *session) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.move(0, 1)
	case tcell.KeyDown:
		s.move(0, -1)
	case tcell.KeyLeft:
		s.move(-1, 0)
	case tcell.KeyRight:
		s.move(1, 0)
	case tcell.KeyEnter:
		s.run()
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'k':
			s.move(0, 1)
		case 'j':
			s.move(0, -1)
		case 'h':
			s.move(-1, 0)
		case 'l':
			s.move(1, 0)
		case ' ', 'x':
			s.toggleWall()
		case 's':
			s.mark(true)
		case 'e':
			s.mark(false)
		case 'r':
			s.run()
		case 'c':
			s.cancelReplay()
			s.sel.Update(func(g *grid.Grid) { g.ResetFlags() })
			s.board.SetStatus("flags cleared")
		case '1', '2', '3', '4':
			s.selectAlgorithm(navigation.Algorithm(r - '1'))
		}
	}
	return true
}

// click moves the cursor to the cell under the pointer and toggles it
func (s *session) click(x, y int) {
	var p core.Point
	var ok bool
	s.sel.View(func(g *grid.Grid) { p, ok = s.board.GridPos(g, x, y) })
	if ok {
		s.moveTo(p)
		s.toggleWall()
	}
}

func (s *session) move(dx, dy int) {
	s.moveTo(core.Point{X: s.cursor.X + dx, Y: s.cursor.Y + dy})
}

func (s *session) moveTo(p core.Point) {
	s.sel.View(func(g *grid.Grid) {
		if g.InBounds(p.X, p.Y) {
			s.cursor = p
		}
	})
	s.board.SetCursor(s.cursor)
}

// Grid edits invalidate any reveal in progress

func (s *session) toggleWall() {
	s.cancelReplay()
	s.sel.Update(func(g *grid.Grid) {
		g.Toggle(g.Cell(s.cursor.X, s.cursor.Y))
	})
}

func (s *session) mark(start bool) {
	s.cancelReplay()
	var ok bool
	s.sel.Update(func(g *grid.Grid) {
		c := g.Cell(s.cursor.X, s.cursor.Y)
		if start {
			ok = g.MarkStart(c)
		} else {
			ok = g.MarkEnd(c)
		}
	})
	if !ok {
		s.board.SetStatus("cell cannot be marked")
	}
}

func (s *session) selectAlgorithm(a navigation.Algorithm) {
	s.cancelReplay()
	if err := s.sel.Select(a); err != nil {
		s.board.SetStatus(err.Error())
		return
	}
	s.board.SetStatus(fmt.Sprintf("%s selected", a.Label()))
}

// run searches between the marked cells and starts a paced reveal
func (s *session) run() {
	s.cancelReplay()
	res, _, ok := s.sel.FindMarked()
	if !ok {
		s.board.SetStatus("mark start (s) and end (e) first")
		return
	}
	next, stop := iter.Pull(res.Reveal())
	s.active = &replay{result: res, next: next, stop: stop}
	s.board.SetStatus(fmt.Sprintf("%s | revealing %d cells", res.Algorithm.Label(), len(res.Order)))
	log.Printf("interactive: replay of %d cells started", len(res.Order))
}

// tick reveals the next cell of the active replay, finishing it when exhausted
func (s *session) tick() {
	r := s.active
	if r == nil {
		return
	}
	ev, ok := r.next()
	if !ok {
		r.stop()
		s.active = nil
		s.board.SetStatus(render.StatusLine(r.result))
		if s.sound != nil {
			s.sound.PlayResult(r.result)
		}
		return
	}
	s.board.Reveal(ev)
	if s.sound != nil {
		s.sound.PlayReveal(ev)
	}
}

// cancelReplay stops a reveal in progress and clears the overlay
func (s *session) cancelReplay() {
	if s.active != nil {
		s.active.stop()
		s.active = nil
		log.Printf("interactive: replay canceled")
	}
	s.board.Reset()
}
