package engine

import (
	"sync"
	"time"
)

type tickerMsgKind int

const (
	setIntervalMsg tickerMsgKind = iota
	setPausedMsg
)

//tickerMsg is a control message for the ticking goroutine
type tickerMsg struct {
	kind     tickerMsgKind
	interval time.Duration
	paused   bool
}

//Ticker emits TickEvent values into the engine's event stream at a
//runtime-adjustable cadence; while paused no ticks are produced
//the ticking goroutine never touches simulation state, it only signals
type Ticker struct {
	out      chan<- Event
	ctrl     chan tickerMsg
	done     chan struct{}
	stopOnce sync.Once
}

//NewTicker starts the ticking goroutine with the given cadence
func NewTicker(out chan<- Event, interval time.Duration, paused bool) *Ticker {
	t := &Ticker{
		out:  out,
		ctrl: make(chan tickerMsg, 4),
		done: make(chan struct{}),
	}
	go t.run(interval, paused)
	return t
}

//SetInterval updates the tick cadence
//the new value re-arms the timer and is never silently reverted
func (t *Ticker) SetInterval(d time.Duration) {
	t.send(tickerMsg{kind: setIntervalMsg, interval: d})
}

//SetPaused suspends or resumes tick production
//on resume the next tick fires a full interval from the moment of resume,
//missed ticks are not caught up
func (t *Ticker) SetPaused(paused bool) {
	t.send(tickerMsg{kind: setPausedMsg, paused: paused})
}

//Stop tears the ticking goroutine down, safe to call more than once
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.done)
	})
}

func (t *Ticker) send(m tickerMsg) {
	select {
	case t.ctrl <- m:
	case <-t.done:
	}
}

func (t *Ticker) run(interval time.Duration, paused bool) {
	timer := time.NewTimer(interval)
	if paused {
		stopTimer(timer)
	}
	defer timer.Stop()
	for {
		select {
		case <-t.done:
			return
		case m := <-t.ctrl:
			switch m.kind {
			case setIntervalMsg:
				if m.interval <= 0 || m.interval == interval {
					break
				}
				interval = m.interval
				if !paused {
					stopTimer(timer)
					timer.Reset(interval)
				}
			case setPausedMsg:
				if m.paused == paused {
					break
				}
				paused = m.paused
				if paused {
					stopTimer(timer)
				} else {
					timer.Reset(interval)
				}
			}
		case <-timer.C:
			//a fire raced with a pause message, drop it
			if paused {
				break
			}
			select {
			case t.out <- TickEvent{}:
			case <-t.done:
				return
			}
			timer.Reset(interval)
		}
	}
}

//stopTimer stops the timer and drains a pending fire if any
func stopTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
