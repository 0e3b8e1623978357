// Package blink encodes fixed-point values as pulses of a single LED.
//
// A value is shown one symbol at a time, most significant digit first:
//
//	digit d   d pulses of 250ms
//	digit 0   2 pulses of 150ms
//	point     5 pulses of 50ms
//	minus     1 pulse of 1s, before the digits
//
// Zero is shown as a single digit 0. Trailing fractional zeros are not
// shown, so 1.50 reads as "1.5" and 2.00 reads as "2", while 120.00
// still reads as "120".
package blink

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Group is a run of identical pulses standing for one symbol.
type Group struct {
	Symbol   byte // '0'..'9', '.', '-' or '!'
	Count    int
	Duration time.Duration // on time of each pulse; the off time is equal
}

// Sequence is the pulse groups of a whole value.
type Sequence []Group

const (
	digitPulse = 250 * time.Millisecond
	zeroPulse  = 150 * time.Millisecond
	pointPulse = 50 * time.Millisecond
	minusPulse = time.Second

	// Gap is the pause between groups.
	Gap = 1500 * time.Millisecond
)

func digit(d byte) Group {
	if d == 0 {
		return Group{Symbol: '0', Count: 2, Duration: zeroPulse}
	}
	return Group{Symbol: '0' + d, Count: int(d), Duration: digitPulse}
}

var (
	point = Group{Symbol: '.', Count: 5, Duration: pointPulse}
	minus = Group{Symbol: '-', Count: 1, Duration: minusPulse}
)

// Error returns the sequence signalling a failed operation.
func Error() Sequence {
	return Sequence{{Symbol: '!', Count: 5, Duration: pointPulse}}
}

// Encode returns the sequence for the raw value of a number with frac
// digits after the decimal point.
func Encode(raw int64, frac int) Sequence {
	if raw == 0 {
		return Sequence{digit(0)}
	}
	n := uint64(raw)
	if raw < 0 {
		n = -n
	}

	// Collected least significant first.
	var rev Sequence
	started := false
	for i := 0; n > 0 || i < frac; i++ {
		d := byte(n % 10)
		n /= 10
		if d != 0 || started || i >= frac {
			rev = append(rev, digit(d))
			started = true
		}
		if i == frac-1 && started {
			rev = append(rev, point)
		}
	}

	seq := make(Sequence, 0, len(rev)+1)
	if raw < 0 {
		seq = append(seq, minus)
	}
	for i := len(rev) - 1; i >= 0; i-- {
		seq = append(seq, rev[i])
	}
	return seq
}

// Symbols returns the symbols of the sequence, such as "-1.05".
func (s Sequence) Symbols() string {
	b := make([]byte, len(s))
	for i, g := range s {
		b[i] = g.Symbol
	}
	return string(b)
}

// Duration returns the total time needed to play the sequence,
// including the gaps after every group.
func (s Sequence) Duration() time.Duration {
	var total time.Duration
	for _, g := range s {
		total += 2*time.Duration(g.Count)*g.Duration + Gap
	}
	return total
}

// String renders every group as symbol, count and pulse length,
// for example "1:1x250ms .:5x50ms 5:5x250ms".
func (s Sequence) String() string {
	var b strings.Builder
	for i, g := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%c:%dx%v", g.Symbol, g.Count, g.Duration)
	}
	return b.String()
}

// LED is a light that can be switched on and off.
type LED interface {
	Set(on bool)
}

// Play drives led through the sequence.
// It returns early with the context error if ctx is done; the LED is
// left off in that case.
func Play(ctx context.Context, led LED, s Sequence) error {
	for _, g := range s {
		for range g.Count {
			led.Set(true)
			if err := sleep(ctx, g.Duration); err != nil {
				led.Set(false)
				return err
			}
			led.Set(false)
			if err := sleep(ctx, g.Duration); err != nil {
				return err
			}
		}
		if err := sleep(ctx, Gap); err != nil {
			return err
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
