package calc

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned when a token does not name any key.
var ErrUnknownKey = errors.New("unknown key")

// kind is the class of a key.
type kind uint8

const (
	kindNone kind = iota
	kindDigit
	kindDot
	kindBinary
	kindUnary
	kindConst
	kindResult
	kindClear
)

// BinaryOp is an operation of two operands.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Sub
	Mul
	Quo
	Rem
)

// UnaryOp is an operation of one operand, applied as soon as it is pressed.
type UnaryOp uint8

const (
	Sqrt UnaryOp = iota
	Square
	Neg
	Abs
	Sin
	Cos
	Tan
	Cot
	Sinh
	Cosh
	Tanh
	Coth
	Ln
	Arcsinh
	Arccosh
	Arctanh
	Arccoth
	Factorial
	Normalize
)

// Const is a predefined mathematical constant.
type Const uint8

const (
	Pi Const = iota
	Tau
	Phi
	EGamma
	Sqrt2
	E
	Ln2
)

// Constants returns every predefined constant.
func Constants() []Const {
	return []Const{Pi, Tau, Phi, EGamma, Sqrt2, E, Ln2}
}

// Key is a single key of the calculator keypad.
// The zero value is an inert key that does nothing when pressed.
type Key struct {
	kind  kind
	digit uint8
	bin   BinaryOp
	un    UnaryOp
	c     Const
}

var (
	None   = Key{}
	Dot    = Key{kind: kindDot}
	Result = Key{kind: kindResult}
	Clear  = Key{kind: kindClear}
)

// Digit returns the key for the decimal digit d.
// Digit panics if d is not within [0, 9].
func Digit(d int) Key {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("Digit(%v) failed: digit out of range", d))
	}
	return Key{kind: kindDigit, digit: uint8(d)}
}

// Binary returns the key for the binary operation op.
func Binary(op BinaryOp) Key {
	return Key{kind: kindBinary, bin: op}
}

// Unary returns the key for the unary operation op.
func Unary(op UnaryOp) Key {
	return Key{kind: kindUnary, un: op}
}

// Constant returns the key for the constant c.
func Constant(c Const) Key {
	return Key{kind: kindConst, c: c}
}

// tokens maps every key token to its key.
var tokens = map[string]Key{
	"_": None,
	".": Dot,
	"=": Result,
	"c": Clear,

	"+": Binary(Add),
	"-": Binary(Sub),
	"*": Binary(Mul),
	"/": Binary(Quo),
	"%": Binary(Rem),

	"sqrt":  Unary(Sqrt),
	"sq":    Unary(Square),
	"neg":   Unary(Neg),
	"abs":   Unary(Abs),
	"sin":   Unary(Sin),
	"cos":   Unary(Cos),
	"tan":   Unary(Tan),
	"cot":   Unary(Cot),
	"sinh":  Unary(Sinh),
	"cosh":  Unary(Cosh),
	"tanh":  Unary(Tanh),
	"coth":  Unary(Coth),
	"ln":    Unary(Ln),
	"asinh": Unary(Arcsinh),
	"acosh": Unary(Arccosh),
	"atanh": Unary(Arctanh),
	"acoth": Unary(Arccoth),
	"!":     Unary(Factorial),
	"norm":  Unary(Normalize),

	"pi":    Constant(Pi),
	"tau":   Constant(Tau),
	"phi":   Constant(Phi),
	"gamma": Constant(EGamma),
	"sqrt2": Constant(Sqrt2),
	"e":     Constant(E),
	"ln2":   Constant(Ln2),
}

// names is the inverse of tokens.
var names = func() map[Key]string {
	m := make(map[Key]string, len(tokens))
	for s, k := range tokens {
		m[k] = s
	}
	return m
}()

func init() {
	for d := 0; d <= 9; d++ {
		s := string(rune('0' + d))
		tokens[s] = Digit(d)
		names[Digit(d)] = s
	}
}

// ParseKey converts a token such as "7", ".", "+", "sqrt" or "pi" to a key.
func ParseKey(s string) (Key, error) {
	k, ok := tokens[s]
	if !ok {
		return Key{}, fmt.Errorf("parsing %q: %w", s, ErrUnknownKey)
	}
	return k, nil
}

// MustParseKey is like [ParseKey] but panics if the token is unknown.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseKey(%q) failed: %v", s, err))
	}
	return k
}

// ParseKeys converts a sequence of tokens to keys.
func ParseKeys(ss []string) ([]Key, error) {
	keys := make([]Key, 0, len(ss))
	for _, s := range ss {
		k, err := ParseKey(s)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// String returns the token of the key, the inverse of [ParseKey].
func (k Key) String() string {
	return names[k]
}

// Op returns the binary operation of k and whether k is a binary key.
func (k Key) Op() (BinaryOp, bool) {
	return k.bin, k.kind == kindBinary
}

// Func returns the unary operation of k and whether k is a unary key.
func (k Key) Func() (UnaryOp, bool) {
	return k.un, k.kind == kindUnary
}

// Const returns the constant of k and whether k is a constant key.
func (k Key) Const() (Const, bool) {
	return k.c, k.kind == kindConst
}

// IsNone reports whether k is the inert key.
func (k Key) IsNone() bool {
	return k == None
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface,
// so that keys can be read directly from layout files.
func (k *Key) UnmarshalText(text []byte) error {
	var err error
	*k, err = ParseKey(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
