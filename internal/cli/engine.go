package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/govalues/fixed"
	"github.com/govalues/fixed/internal/calc"
	"github.com/govalues/fixed/internal/keypad"
	"golang.org/x/sync/errgroup"
)

// maxRows bounds the size of a table.
const maxRows = 10_000

var (
	errNotBinary   = errors.New("not a binary operation")
	errNotUnary    = errors.New("not a unary operation")
	errInvalidStep = errors.New("step must be positive")
	errTooManyRows = errors.New("too many rows")
)

// value is a number stripped of its precision type.
type value struct {
	Text string
	Raw  int64
	Frac int
}

func valueOf[P fixed.Precision](x fixed.Num[P]) value {
	return value{Text: x.String(), Raw: x.Raw(), Frac: x.Frac()}
}

// named is a value with a label, such as a constant or a table row.
type named struct {
	Name  string
	Value value
	Err   error
}

// press is the result of one key press during navigation.
type press struct {
	Key   string
	Value value
	Shown bool
	Err   error
}

// engine runs commands with a fixed precision.
type engine interface {
	eval(x, op, y string) (value, error)
	fn(name, x string) (value, error)
	consts() []named
	keys(tokens []string, logger *log.Logger) ([]value, error)
	nav(l keypad.Layout, moves []move, logger *log.Logger) []press
	table(ctx context.Context, name, from, to, step string, workers int) ([]named, error)
}

var engines = map[string]engine{
	"0x0":  runner[fixed.Prec0x0]{},
	"2x4":  runner[fixed.Prec2x4]{},
	"4x6":  runner[fixed.Prec4x6]{},
	"6x8":  runner[fixed.Prec6x8]{},
	"8x8":  runner[fixed.Prec8x8]{},
	"8x10": runner[fixed.Prec8x10]{},
	"9x12": runner[fixed.Prec9x12]{},
}

type runner[P fixed.Precision] struct{}

func (runner[P]) eval(xs, ops, ys string) (value, error) {
	x, err := fixed.Parse[P](xs)
	if err != nil {
		return value{}, err
	}
	y, err := fixed.Parse[P](ys)
	if err != nil {
		return value{}, err
	}
	k, err := calc.ParseKey(ops)
	if err != nil {
		return value{}, err
	}
	op, ok := k.Op()
	if !ok {
		return value{}, fmt.Errorf("%q: %w", ops, errNotBinary)
	}
	z, err := calc.Combine(op, x, y)
	if err != nil {
		return value{}, err
	}
	return valueOf(z), nil
}

func unaryOp(name string) (calc.UnaryOp, error) {
	k, err := calc.ParseKey(name)
	if err != nil {
		return 0, err
	}
	op, ok := k.Func()
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, errNotUnary)
	}
	return op, nil
}

func (runner[P]) fn(name, xs string) (value, error) {
	op, err := unaryOp(name)
	if err != nil {
		return value{}, err
	}
	x, err := fixed.Parse[P](xs)
	if err != nil {
		return value{}, err
	}
	z, err := calc.Apply(op, x)
	if err != nil {
		return value{}, err
	}
	return valueOf(z), nil
}

func (runner[P]) consts() []named {
	cs := calc.Constants()
	list := make([]named, len(cs))
	for i, c := range cs {
		list[i] = named{Name: calc.Constant(c).String(), Value: valueOf(calc.Value[P](c))}
	}
	return list
}

func (runner[P]) keys(tokens []string, logger *log.Logger) ([]value, error) {
	keys, err := calc.ParseKeys(tokens)
	if err != nil {
		return nil, err
	}
	c := calc.New[P](calc.WithLogger(logger))
	var out []value
	for _, k := range keys {
		z, ok, err := c.Press(k)
		if err != nil {
			return out, err
		}
		if ok {
			out = append(out, valueOf(z))
		}
	}
	if len(out) == 0 {
		out = append(out, valueOf(c.Display()))
	}
	return out, nil
}

func (runner[P]) nav(l keypad.Layout, moves []move, logger *log.Logger) []press {
	s := keypad.NewSession(l, calc.New[P](calc.WithLogger(logger)))
	var out []press
	for _, m := range moves {
		o, err := s.Step(m.dir, m.press)
		if m.press {
			p := press{Key: o.Key.String(), Err: err}
			if o.Shown {
				p.Value, p.Shown = valueOf(o.Value), true
			}
			out = append(out, p)
		}
		// Back to rest before the next move.
		s.Step(keypad.Center, false)
	}
	return out
}

func (runner[P]) table(ctx context.Context, name, from, to, step string, workers int) ([]named, error) {
	op, err := unaryOp(name)
	if err != nil {
		return nil, err
	}
	lo, err := fixed.Parse[P](from)
	if err != nil {
		return nil, err
	}
	hi, err := fixed.Parse[P](to)
	if err != nil {
		return nil, err
	}
	st, err := fixed.Parse[P](step)
	if err != nil {
		return nil, err
	}
	if !st.IsPos() {
		return nil, fmt.Errorf("step %v: %w", st, errInvalidStep)
	}

	var xs []fixed.Num[P]
	for x := lo; x.Cmp(hi) <= 0; x = x.Add(st) {
		if len(xs) == maxRows {
			return nil, fmt.Errorf("more than %d rows: %w", maxRows, errTooManyRows)
		}
		xs = append(xs, x)
		if x.Add(st).Cmp(x) < 0 {
			break
		}
	}

	rows := make([]named, len(xs))
	g, gCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, x := range xs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			z, err := calc.Apply(op, x)
			rows[i] = named{Name: x.String(), Value: valueOf(z), Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
