package view

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"ratgol/src/engine"
)

//keyBinding couples a gocui key with the engine intent it produces
type keyBinding struct {
	key    interface{}
	name   string
	descr  string
	intent engine.Intent
}

//ConsoleUI is the terminal rendering and input collaborator
//raw gocui events are translated into engine events, drawing happens
//only from snapshots handed over by the engine loop
type ConsoleUI struct {
	g *gocui.Gui
	e *engine.Engine
	k []keyBinding

	mu       sync.Mutex
	snapshot engine.Snapshot

	lastWidth  int
	lastHeight int

	liveFiller string
	deadFiller string
}

//NewConsoleUI initializes the terminal
//on failure the terminal is left untouched and the error is returned,
//no simulation state exists yet at that point
func NewConsoleUI() (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	t := &ConsoleUI{
		g:          g,
		lastWidth:  -1,
		lastHeight: -1,
		liveFiller: aurora.Green("█").String(),
		deadFiller: " ",
	}
	t.k = []keyBinding{
		{gocui.KeyEsc,
			"ESC",
			"Quit",
			engine.IntentQuit},
		{'q',
			"Q",
			"Quit",
			engine.IntentQuit},
		{gocui.KeySpace,
			"SPACE",
			"Pause/Resume",
			engine.IntentTogglePause},
		{gocui.KeyArrowUp,
			"↑",
			"Faster",
			engine.IntentSpeedUp},
		{'k',
			"K",
			"Faster",
			engine.IntentSpeedUp},
		{gocui.KeyArrowDown,
			"↓",
			"Slower",
			engine.IntentSlowDown},
		{'j',
			"J",
			"Slower",
			engine.IntentSlowDown},
		{'r',
			"R",
			"Randomize",
			engine.IntentRandomize},
		{'c',
			"C",
			"Clear",
			engine.IntentClear},
		{gocui.KeyCtrlC,
			"^C",
			"Quit",
			engine.IntentQuit},
	}
	g.SetManagerFunc(t.layout)
	return t, nil
}

//Attach wires the UI to the engine and installs the keybindings
//every recognized key emits exactly one event into the engine stream,
//anything else is ignored by gocui itself
func (t *ConsoleUI) Attach(e *engine.Engine) {
	t.e = e
	for _, kb := range t.k {
		intent := kb.intent
		if err := t.g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
			t.e.Send(engine.KeyEvent{Intent: intent})
			return nil
		}); err != nil {
			log.Panicln(err)
		}
	}
}

//Negotiate implements engine.Surface using the UI's layout convention
func (t *ConsoleUI) Negotiate(reportedWidth int, reportedHeight int) (int, int) {
	return Negotiate(reportedWidth, reportedHeight)
}

//Start runs the terminal main loop until quit
//the terminal is restored before returning, also on error
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

//Render stores the snapshot and schedules a redraw
//called from the engine goroutine, never blocks on drawing
func (t *ConsoleUI) Render(s engine.Snapshot) {
	t.mu.Lock()
	t.snapshot = s
	t.mu.Unlock()
	t.g.Update(func(g *gocui.Gui) error {
		t.drawBoard(g)
		t.drawStatus(g)
		return nil
	})
}

//Quit ends the terminal main loop
func (t *ConsoleUI) Quit() {
	t.g.Update(func(*gocui.Gui) error {
		return gocui.ErrQuit
	})
}

//layout is called by gocui on every cycle including terminal resizes
//size changes are reported to the engine, the first call reports the
//initial surface size
func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxX != t.lastWidth || maxY != t.lastHeight {
		t.lastWidth, t.lastHeight = maxX, maxY
		if t.e != nil {
			t.e.Send(engine.ResizeEvent{Width: maxX, Height: maxY})
		}
	}

	//not enough room for the chrome, drop the views until the window grows
	if maxX < 2*boardBorder+1 || maxY < 2*boardBorder+statusHeight+1 {
		_ = g.DeleteView("board")
		_ = g.DeleteView("status")
		return nil
	}

	if v, err := g.SetView("board", 0, 0, maxX-1, maxY-1-statusHeight); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Game of Life"
		v.Frame = true
	}
	if v, err := g.SetView("status", 0, maxY-statusHeight, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = true
	}
	t.drawBoard(g)
	t.drawStatus(g)
	return nil
}

//drawBoard redraws the cell field from the latest snapshot
//the entire field is redrawn at once, gocui repaints only changed chars
func (t *ConsoleUI) drawBoard(g *gocui.Gui) {
	v, err := g.View("board")
	if err != nil {
		return
	}
	t.mu.Lock()
	s := t.snapshot
	t.mu.Unlock()

	v.Clear()
	maxW, maxH := v.Size()

	var b bytes.Buffer
	for y := 0; y < s.Height && y < maxH; y++ {
		//line feed char
		if y != 0 {
			b.WriteByte(10)
		}
		for x := 0; x < s.Width && x < maxW; x++ {
			if bool(s.Cells[y][x]) {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

//drawStatus redraws the status line from the latest snapshot
func (t *ConsoleUI) drawStatus(g *gocui.Gui) {
	v, err := g.View("status")
	if err != nil {
		return
	}
	t.mu.Lock()
	s := t.snapshot
	t.mu.Unlock()

	v.Clear()
	mode := aurora.Colorize("RUNNING", aurora.GreenFg).String()
	if s.Paused {
		mode = aurora.Colorize("PAUSED", aurora.RedFg).String()
	}
	_, _ = fmt.Fprintf(v, " %s │ gen: %v │ pop: %v │ %vx%v │ %v │%s",
		mode, s.Generation, s.Population, s.Width, s.Height, s.Interval, t.helpLine())
}

//helpLine builds the keybinding help from the binding table
func (t *ConsoleUI) helpLine() string {
	var b bytes.Buffer
	seen := map[string]bool{}
	for _, kb := range t.k {
		if seen[kb.descr] {
			continue
		}
		seen[kb.descr] = true
		b.WriteString(" ")
		b.WriteString(aurora.Colorize(kb.name, aurora.GreenFg).String())
		b.WriteString(": ")
		b.WriteString(kb.descr)
	}
	return b.String()
}
