package core

// Key identifies a control in the simulation's input vocabulary. Front ends
// translate platform key codes into these values; simulations never see raw
// ebiten or terminal input.
type Key int

const (
	KeyNone Key = iota
	// KeyPause toggles Running/Paused (space).
	KeyPause
	// KeyRain toggles the rain source ('r').
	KeyRain
	// KeyClear zeroes the grid and restores parameter defaults ('c').
	KeyClear
	// KeySpeedUp / KeySpeedDown nudge the propagation speed (up/down arrows).
	KeySpeedUp
	KeySpeedDown
	// KeyRainUp / KeyRainDown nudge the rain intensity (right/left arrows).
	KeyRainUp
	KeyRainDown
	// KeyWindRight / KeyWindLeft / KeyWindCalm adjust the wind ('w'/'a'/'s').
	KeyWindRight
	KeyWindLeft
	KeyWindCalm
)

// EventKind discriminates input event payloads.
type EventKind int

const (
	// EventClick carries grid-cell coordinates of a pointer press.
	EventClick EventKind = iota
	// EventKey carries one semantic key press.
	EventKey
)

// Event is one discrete input sample handed to a simulation within a tick.
type Event struct {
	Kind EventKind
	X, Y int
	Key  Key
}

// Click builds a pointer-press event at grid coordinates (x, y).
func Click(x, y int) Event { return Event{Kind: EventClick, X: x, Y: y} }

// Press builds a key event.
func Press(k Key) Event { return Event{Kind: EventKey, Key: k} }

// EventHandler is implemented by simulations that react to input events.
// Unrecognized events must be ignored, never an error.
type EventHandler interface {
	Handle(Event)
}
