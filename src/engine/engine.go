package engine

import (
	"math/rand"
	"sync"
	"time"

	"ratgol/src/grid"
)

//default options
const (
	DefFillDensity = 0.5
	DefEventBuffer = 32
)

//Options represents the engine's configurable parameters
type Options struct {
	Interval    time.Duration
	FillDensity float64
	Rand        *rand.Rand //optional, a time-seeded source is used when nil
}

var DefaultOptions = Options{
	Interval:    DefInterval,
	FillDensity: DefFillDensity,
}

//Snapshot is the read-only view of the simulation state handed to the
//rendering collaborator once per processed event
type Snapshot struct {
	Cells      [][]grid.Cell
	Width      int
	Height     int
	Paused     bool
	Interval   time.Duration
	Generation int
	Population int
}

//Viewer is the rendering collaborator
//it receives state snapshots and a quit notification, nothing else
type Viewer interface {
	Render(s Snapshot)
	Quit()
}

//Surface negotiates usable grid dimensions from a reported terminal size
//the mapping must be pure: the same report always yields the same result
type Surface interface {
	Negotiate(reportedWidth int, reportedHeight int) (gridWidth int, gridHeight int)
}

//Engine owns the simulation state and is its only mutator
//all event producers funnel into a single channel consumed by Run
type Engine struct {
	grid       *grid.Grid
	clock      Clock
	generation int
	running    bool
	seeded     bool

	opts    Options
	rng     *rand.Rand
	events  chan Event
	ticker  *Ticker
	viewer  Viewer
	surface Surface

	done     chan struct{}
	downOnce sync.Once
}

//New creates the engine and starts the background ticker
//the grid starts at 0x0 until the first surface report arrives
func New(o Options, v Viewer, s Surface) *Engine {
	if o.Interval <= 0 {
		o.Interval = DefInterval
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{
		grid:    grid.New(0, 0),
		clock:   Clock{Interval: o.Interval},
		running: true,
		opts:    o,
		rng:     rng,
		events:  make(chan Event, DefEventBuffer),
		viewer:  v,
		surface: s,
		done:    make(chan struct{}),
	}
	e.ticker = NewTicker(e.events, e.clock.Interval, e.clock.Paused)
	return e
}

//Send queues an event for the engine loop
//it never blocks after the engine has terminated
func (e *Engine) Send(ev Event) {
	select {
	case e.events <- ev:
	case <-e.done:
	}
}

//Run consumes the merged event stream until a quit intent arrives
//it must be the only goroutine touching the grid or the clock
func (e *Engine) Run() {
	for e.running {
		e.apply(<-e.events)
		if e.running && e.viewer != nil {
			e.viewer.Render(e.Snapshot())
		}
	}
	e.shutdown()
}

//Close requests termination from outside the event stream
//safe to call after Run has already returned
func (e *Engine) Close() {
	select {
	case e.events <- KeyEvent{Intent: IntentQuit}:
	case <-e.done:
	}
}

func (e *Engine) shutdown() {
	e.downOnce.Do(func() {
		e.ticker.Stop()
		close(e.done)
		if e.viewer != nil {
			e.viewer.Quit()
		}
	})
}

//apply executes exactly one state transition per event
func (e *Engine) apply(ev Event) {
	switch ev := ev.(type) {
	case TickEvent:
		//ticks that raced with a pause are dropped here
		if !e.clock.Paused {
			e.grid.Step()
			e.generation++
		}
	case KeyEvent:
		e.applyIntent(ev.Intent)
	case ResizeEvent:
		e.applyResize(ev.Width, ev.Height)
	}
}

func (e *Engine) applyIntent(intent Intent) {
	switch intent {
	case IntentQuit:
		e.running = false
	case IntentTogglePause:
		e.ticker.SetPaused(e.clock.TogglePause())
	case IntentSpeedUp:
		e.ticker.SetInterval(e.clock.SpeedUp())
	case IntentSlowDown:
		e.ticker.SetInterval(e.clock.SlowDown())
	case IntentRandomize:
		e.grid.Randomize(e.rng, e.opts.FillDensity)
		e.generation = 0
	case IntentClear:
		e.grid.Clear()
		e.generation = 0
	default:
		//unrecognized input is dropped, never an error
	}
}

//applyResize renegotiates grid dimensions from the reported terminal size
//the grid is reallocated only when the negotiated size actually changes
func (e *Engine) applyResize(reportedWidth int, reportedHeight int) {
	w, h := reportedWidth, reportedHeight
	if e.surface != nil {
		w, h = e.surface.Negotiate(reportedWidth, reportedHeight)
	}
	if w == e.grid.Width && h == e.grid.Height {
		return
	}
	e.grid.Resize(w, h)
	e.generation = 0
	//the first usable surface report seeds the board
	if !e.seeded && w > 0 && h > 0 {
		e.seeded = true
		e.grid.Randomize(e.rng, e.opts.FillDensity)
	}
}

//Snapshot builds a read-only copy of the current simulation state
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Cells:      e.grid.Copy(),
		Width:      e.grid.Width,
		Height:     e.grid.Height,
		Paused:     e.clock.Paused,
		Interval:   e.clock.Interval,
		Generation: e.generation,
		Population: e.grid.Population(),
	}
}
