package keypad

import (
	"github.com/govalues/fixed"
	"github.com/govalues/fixed/internal/calc"
)

// Outcome is what a single joystick sample did.
type Outcome[P fixed.Precision] struct {
	Event Event
	Key   calc.Key // key pressed, None if the button was not pressed
	Value fixed.Num[P]
	Shown bool // Value was produced and should be displayed
}

// Session drives a calculator from joystick samples.
// After a press the cursor returns home, unless the press produced a
// value to display.
type Session[P fixed.Precision] struct {
	input  Input
	cursor *Cursor
	calc   *calc.Calculator[P]
}

// NewSession returns a session on layout l feeding calculator c.
func NewSession[P fixed.Precision](l Layout, c *calc.Calculator[P]) *Session[P] {
	return &Session[P]{cursor: NewCursor(l), calc: c}
}

// Cursor returns the cursor of the session.
func (s *Session[P]) Cursor() *Cursor {
	return s.cursor
}

// Sample feeds a raw joystick reading and button state.
// Errors come from the calculator; the cursor is reset after them.
func (s *Session[P]) Sample(x, y uint16, pressed bool) (Outcome[P], error) {
	return s.Step(ReadDirection(x, y), pressed)
}

// Step is like [Session.Sample] but takes an already decoded direction.
func (s *Session[P]) Step(d Direction, pressed bool) (Outcome[P], error) {
	ev, ok := s.input.Update(d, pressed)
	out := Outcome[P]{Event: ev}
	if !ok {
		return out, nil
	}
	if !pressed {
		s.cursor.Move(ev.Move)
		return out, nil
	}
	if !ev.Press {
		// Held button while moving: the move is swallowed.
		return out, nil
	}
	out.Key = s.cursor.Key()
	z, shown, err := s.calc.Press(out.Key)
	if err != nil {
		s.cursor.Reset()
		return out, err
	}
	if shown {
		out.Value, out.Shown = z, true
		return out, nil
	}
	s.cursor.Reset()
	return out, nil
}
