// Package calc implements the key-driven state machine of a pocket
// calculator on top of fixed-point numbers.
package calc

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/govalues/fixed"
)

// ErrNoOperation is returned when the result key is pressed while no
// binary operation is pending.
var ErrNoOperation = errors.New("no pending operation")

type options struct {
	logger *log.Logger
}

// Option configures a [Calculator].
type Option func(*options)

// WithLogger sets the logger that traces every evaluation.
// By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Calculator accumulates key presses into operands and evaluates
// operations on them with precision P.
//
// The first operand is entered until a binary operation key is pressed,
// then the second operand is entered until the result key is pressed.
// Unary operations apply immediately to the operand being entered.
// A failed operation leaves the calculator unchanged.
//
// Calculator is not safe for concurrent use.
type Calculator[P fixed.Precision] struct {
	a, b    fixed.Num[P]
	op      Key  // pending binary operation, None if there is none
	entered bool // b has received input since op was pressed
	frac    bool // digits go after the decimal point
	digits  int  // digits entered after the decimal point
	fresh   bool // a holds a result, the next digit starts a new number
	logger  *log.Logger
}

// New returns a cleared calculator.
func New[P fixed.Precision](opts ...Option) *Calculator[P] {
	o := options{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(&o)
	}
	return &Calculator[P]{logger: o.logger}
}

// Display returns the operand currently being entered, or the last result.
func (c *Calculator[P]) Display() fixed.Num[P] {
	if c.pending() && c.entered {
		return c.b
	}
	return c.a
}

// Pending returns the pending binary operation key, or [None].
func (c *Calculator[P]) Pending() Key {
	return c.op
}

// Reset clears all state except for the logger.
func (c *Calculator[P]) Reset() {
	*c = Calculator[P]{logger: c.logger}
}

func (c *Calculator[P]) pending() bool {
	return c.op.kind == kindBinary
}

// operand returns the operand that receives input.
func (c *Calculator[P]) operand() *fixed.Num[P] {
	if c.pending() {
		c.entered = true
		return &c.b
	}
	if c.fresh {
		c.a, c.fresh = fixed.Num[P]{}, false
	}
	return &c.a
}

// Press handles a single key press.
// When the key produces a value, such as a unary operation, a chained
// binary operation or the result key, Press returns it with ok set to true.
//
// Press returns an error if:
//   - the result key is pressed with no pending operation;
//   - the operation fails, for example on division by zero.
func (c *Calculator[P]) Press(k Key) (result fixed.Num[P], ok bool, err error) {
	switch k.kind {
	case kindDigit:
		c.enterDigit(int64(k.digit))
	case kindDot:
		c.operand()
		c.frac, c.digits = true, 0
	case kindConst:
		*c.operand() = constant[P](k.c)
		c.frac, c.digits = false, 0
	case kindBinary:
		if c.pending() && c.entered {
			z, err := c.evaluate()
			if err != nil {
				return fixed.Num[P]{}, false, err
			}
			c.op = k
			return z, true, nil
		}
		c.op, c.entered = k, false
		c.frac, c.digits, c.fresh = false, 0, false
	case kindUnary:
		x := c.Display()
		z, err := unary(k.un, x)
		if err != nil {
			return fixed.Num[P]{}, false, fmt.Errorf("pressing %q: %w", k, err)
		}
		c.logger.Printf("%v(%v) = %v", k, x, z)
		if c.pending() && c.entered {
			c.b = z
		} else {
			c.a, c.fresh = z, true
		}
		c.frac, c.digits = false, 0
		return z, true, nil
	case kindResult:
		if !c.pending() {
			return fixed.Num[P]{}, false, fmt.Errorf("pressing %q: %w", k, ErrNoOperation)
		}
		z, err := c.evaluate()
		if err != nil {
			return fixed.Num[P]{}, false, err
		}
		return z, true, nil
	case kindClear:
		c.Reset()
	}
	return fixed.Num[P]{}, false, nil
}

// enterDigit appends a digit to the operand being entered.
// Digits after the decimal point beyond the precision are ignored, and so
// are digits that would take the operand out of range.
func (c *Calculator[P]) enterDigit(d int64) {
	x := c.operand()
	if x.IsNeg() {
		d = -d
	}
	if !c.frac {
		raw := x.Raw()
		if raw > math.MaxInt64/10 || raw < math.MinInt64/10 {
			return
		}
		if z, ok := addRaw(raw*10, d*x.Scale()); ok {
			*x = fixed.NewFromRaw[P](z)
		}
		return
	}
	if c.digits >= x.Frac() {
		return
	}
	unit := x.Scale()
	for i := 0; i <= c.digits; i++ {
		unit /= 10
	}
	if z, ok := addRaw(x.Raw(), d*unit); ok {
		*x = fixed.NewFromRaw[P](z)
	}
	c.digits++
}

// addRaw calculates x + y and reports whether the sum fits int64.
func addRaw(x, y int64) (int64, bool) {
	if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < math.MinInt64-y) {
		return 0, false
	}
	return x + y, true
}

// evaluate applies the pending binary operation and stores the result in
// the first operand.
func (c *Calculator[P]) evaluate() (fixed.Num[P], error) {
	z, err := binary(c.op.bin, c.a, c.b)
	if err != nil {
		return fixed.Num[P]{}, fmt.Errorf("pressing %q: %w", c.op, err)
	}
	c.logger.Printf("a = %v; op = %v; b = %v; result = %v", c.a, c.op, c.b, z)
	c.a, c.b = z, fixed.Num[P]{}
	c.op, c.entered = None, false
	c.frac, c.digits, c.fresh = false, 0, true
	return z, nil
}

func binary[P fixed.Precision](op BinaryOp, x, y fixed.Num[P]) (fixed.Num[P], error) {
	switch op {
	case Add:
		return x.Add(y), nil
	case Sub:
		return x.Sub(y), nil
	case Mul:
		return x.Mul(y), nil
	case Quo:
		return x.Quo(y)
	case Rem:
		return x.Rem(y)
	}
	return fixed.Num[P]{}, fmt.Errorf("binary operation %v: %w", op, ErrUnknownKey)
}

func unary[P fixed.Precision](op UnaryOp, x fixed.Num[P]) (fixed.Num[P], error) {
	switch op {
	case Sqrt:
		return x.Sqrt()
	case Square:
		return x.Mul(x), nil
	case Neg:
		return x.Neg(), nil
	case Abs:
		return x.Abs(), nil
	case Sin:
		return x.Sin(), nil
	case Cos:
		return x.Cos(), nil
	case Tan:
		return x.Tan()
	case Cot:
		return x.Cot()
	case Sinh:
		return x.Sinh(), nil
	case Cosh:
		return x.Cosh(), nil
	case Tanh:
		return x.Tanh(), nil
	case Coth:
		return x.Coth()
	case Ln:
		return x.Ln()
	case Arcsinh:
		return x.Arcsinh(), nil
	case Arccosh:
		return x.Arccosh()
	case Arctanh:
		return x.Arctanh()
	case Arccoth:
		return x.Arccoth()
	case Factorial:
		return x.Factorial()
	case Normalize:
		return x.NormalizeAngle(), nil
	}
	return fixed.Num[P]{}, fmt.Errorf("unary operation %v: %w", op, ErrUnknownKey)
}

func constant[P fixed.Precision](c Const) fixed.Num[P] {
	switch c {
	case Pi:
		return fixed.Pi[P]()
	case Tau:
		return fixed.Tau[P]()
	case Phi:
		return fixed.Phi[P]()
	case EGamma:
		return fixed.EGamma[P]()
	case Sqrt2:
		return fixed.Sqrt2[P]()
	case E:
		return fixed.E[P]()
	case Ln2:
		return fixed.Ln2[P]()
	}
	return fixed.Num[P]{}
}

// Apply evaluates a single unary operation on x.
// It is the non-interactive counterpart of pressing a unary key.
func Apply[P fixed.Precision](op UnaryOp, x fixed.Num[P]) (fixed.Num[P], error) {
	return unary(op, x)
}

// Combine evaluates a single binary operation on x and y.
// It is the non-interactive counterpart of entering x, op, y and the result key.
func Combine[P fixed.Precision](op BinaryOp, x, y fixed.Num[P]) (fixed.Num[P], error) {
	return binary(op, x, y)
}

// Value returns the value of the constant c with precision P.
func Value[P fixed.Precision](c Const) fixed.Num[P] {
	return constant[P](c)
}
