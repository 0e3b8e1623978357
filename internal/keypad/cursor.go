package keypad

import "github.com/govalues/fixed/internal/calc"

// Direction is a joystick deflection.
type Direction uint8

const (
	Center Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "center"
	}
}

const (
	axisMid      = 512
	axisDeadZone = 200
)

// ReadDirection converts a pair of 10-bit axis readings to a direction.
// Readings within the dead zone around the centre are ignored and the
// X axis takes priority over the Y axis. Y grows downwards.
func ReadDirection(x, y uint16) Direction {
	switch {
	case x > axisMid+axisDeadZone:
		return Right
	case x < axisMid-axisDeadZone:
		return Left
	case y > axisMid+axisDeadZone:
		return Down
	case y < axisMid-axisDeadZone:
		return Up
	default:
		return Center
	}
}

// Cursor is a position on a layout.
type Cursor struct {
	layout   Layout
	row, col int
}

// NewCursor returns a cursor placed on the home key of l.
// The layout must be valid.
func NewCursor(l Layout) *Cursor {
	c := &Cursor{layout: l}
	c.Reset()
	return c
}

// Move shifts the cursor one key in the given direction.
// The cursor stays put at the edges of the grid.
func (c *Cursor) Move(d Direction) {
	rows, cols := c.layout.Size()
	switch d {
	case Up:
		c.row = max(c.row-1, 0)
	case Down:
		c.row = min(c.row+1, rows-1)
	case Left:
		c.col = max(c.col-1, 0)
	case Right:
		c.col = min(c.col+1, cols-1)
	}
}

// Position returns the current row and column.
func (c *Cursor) Position() (row, col int) {
	return c.row, c.col
}

// Key returns the key under the cursor.
func (c *Cursor) Key() calc.Key {
	return c.layout.At(c.row, c.col)
}

// Reset moves the cursor back to the home key.
func (c *Cursor) Reset() {
	c.row, c.col = c.layout.Home[0], c.layout.Home[1]
}

// Event is a change in joystick input worth acting on.
type Event struct {
	Move  Direction // Center if the joystick did not move
	Press bool
}

// Input turns continuous joystick samples into discrete events.
// A direction counts once until the joystick returns to the centre or
// turns elsewhere, and a press counts once until the button is released.
type Input struct {
	last    Direction
	pressed bool
}

// Update feeds one sample and reports the resulting event, if any.
func (in *Input) Update(d Direction, pressed bool) (Event, bool) {
	var ev Event
	if d != in.last && d != Center {
		ev.Move = d
	}
	in.last = d
	switch {
	case pressed && !in.pressed:
		in.pressed = true
		ev.Press = true
	case !pressed:
		in.pressed = false
	}
	return ev, ev.Move != Center || ev.Press
}
