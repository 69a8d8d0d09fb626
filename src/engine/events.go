package engine

//Event is a value produced by one of the event sources (input, ticker, surface)
//and consumed exactly once by the engine loop; events carry no mutable state
type Event interface {
	event()
}

//TickEvent signals that the simulation should advance one generation
type TickEvent struct{}

//KeyEvent carries a recognized user intent decoded from raw input
type KeyEvent struct {
	Intent Intent
}

//ResizeEvent reports a new terminal size as seen by the rendering collaborator
type ResizeEvent struct {
	Width  int
	Height int
}

func (TickEvent) event()   {}
func (KeyEvent) event()    {}
func (ResizeEvent) event() {}

//Intent is a discrete user action
type Intent int

const (
	IntentNone Intent = iota
	IntentQuit
	IntentTogglePause
	IntentSpeedUp
	IntentSlowDown
	IntentRandomize
	IntentClear
)
