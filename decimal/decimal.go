// Package decimal implements an exact fixed-point decimal number.
//
// A Decimal is a signed integer magnitude together with a scale, the number of
// digits after the decimal point. Addition and subtraction are exact. Results
// of arithmetic are always packed, i.e. written with the smallest scale that
// represents them, so that 0.25 + 0.75 is 1 rather than 1.00.
package decimal

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Decimal is the number mag × 10^-scale. The zero value is 0.
type Decimal struct {
	mag   int64
	scale uint8
}

// ErrOverflow is returned when a result needs a magnitude outside the range
// of int64.
var ErrOverflow = errors.New("decimal: magnitude overflow")

// New returns the decimal mag × 10^-scale. The result is not packed, so
// New(10, 1) and New(1, 0) are equal numbers with different representations.
func New(mag int64, scale uint8) Decimal {
	return Decimal{mag: mag, scale: scale}
}

// Mag returns the unscaled magnitude of d.
func (d Decimal) Mag() int64 {
	return d.mag
}

// Scale returns the number of digits after the decimal point in d.
func (d Decimal) Scale() uint8 {
	return d.scale
}

// Sign returns -1, 0, or 1 according to the sign of d.
func (d Decimal) Sign() int {
	switch {
	case d.mag < 0:
		return -1
	case d.mag > 0:
		return 1
	}
	return 0
}

// Rescale returns d with the given scale. Increasing the scale is exact, or
// fails with ErrOverflow. Decreasing the scale truncates digits; callers only
// decrease the scale of packed values, where it is exact.
func (d Decimal) Rescale(scale uint8) (Decimal, error) {
	for ; d.scale < scale; d.scale++ {
		if d.mag > math.MaxInt64/10 || d.mag < math.MinInt64/10 {
			return Decimal{}, ErrOverflow
		}
		d.mag *= 10
	}
	for ; d.scale > scale; d.scale-- {
		d.mag /= 10
	}
	return d, nil
}

// Pack returns d written with its minimal scale. Zero always packs to scale 0.
func (d Decimal) Pack() Decimal {
	if d.mag == 0 {
		return Decimal{}
	}
	for d.scale > 0 && d.mag%10 == 0 {
		d.mag /= 10
		d.scale--
	}
	return d
}

// align rescales whichever of a and b has the smaller scale to the scale of
// the other.
func align(a, b Decimal) (Decimal, Decimal, error) {
	var err error
	switch {
	case a.scale < b.scale:
		a, err = a.Rescale(b.scale)
	case b.scale < a.scale:
		b, err = b.Rescale(a.scale)
	}
	return a, b, err
}

// Add returns the packed sum d + e.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	a, b, err := align(d, e)
	if err != nil {
		return Decimal{}, err
	}
	s := a.mag + b.mag
	if (a.mag >= 0) == (b.mag >= 0) && (s >= 0) != (a.mag >= 0) {
		return Decimal{}, ErrOverflow
	}
	return Decimal{mag: s, scale: a.scale}.Pack(), nil
}

// Sub returns the packed difference d - e.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	a, b, err := align(d, e)
	if err != nil {
		return Decimal{}, err
	}
	s := a.mag - b.mag
	if (a.mag >= 0) != (b.mag >= 0) && (s >= 0) != (a.mag >= 0) {
		return Decimal{}, ErrOverflow
	}
	return Decimal{mag: s, scale: a.scale}.Pack(), nil
}

// Equal reports whether d and e are the same number, regardless of scale.
func (d Decimal) Equal(e Decimal) bool {
	return d.Pack() == e.Pack()
}

// String formats d with exactly d.Scale() digits after the decimal point.
func (d Decimal) String() string {
	if d.scale == 0 {
		return strconv.FormatInt(d.mag, 10)
	}
	u := uint64(d.mag)
	if d.mag < 0 {
		u = -u
	}
	digits := strconv.FormatUint(u, 10)
	n := int(d.scale)
	if len(digits) <= n {
		digits = strings.Repeat("0", n-len(digits)+1) + digits
	}
	k := len(digits) - n
	var b strings.Builder
	if d.mag < 0 {
		b.WriteByte('-')
	}
	b.WriteString(digits[:k])
	b.WriteByte('.')
	b.WriteString(digits[k:])
	return b.String()
}

// Parse parses a decimal literal: an optional leading '-', then digits with at
// most one '.'. The scale of the result is the number of digits after the
// point; the result is not packed.
func Parse(s string) (Decimal, error) {
	body := s
	neg := strings.HasPrefix(body, "-")
	if neg {
		body = body[1:]
	}
	scale := 0
	if k := strings.IndexByte(body, '.'); k >= 0 {
		scale = len(body) - k - 1
		body = body[:k] + body[k+1:]
	}
	if body == "" {
		return Decimal{}, &ParseError{Text: s, Reason: "no digits"}
	}
	for i := 0; i < len(body); i++ {
		if c := body[i]; c < '0' || c > '9' {
			return Decimal{}, &ParseError{Text: s, Reason: "unexpected character " + strconv.QuoteRune(rune(c))}
		}
	}
	if scale > math.MaxUint8 {
		return Decimal{}, &ParseError{Text: s, Reason: "too many fractional digits"}
	}
	if neg {
		body = "-" + body
	}
	m, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Decimal{}, &ParseError{Text: s, Reason: "out of range", Err: ErrOverflow}
		}
		return Decimal{}, &ParseError{Text: s, Reason: "malformed", Err: err}
	}
	return Decimal{mag: m, scale: uint8(scale)}, nil
}

// ParseError is an error from parsing malformed decimal text.
type ParseError struct {
	// Text is the text that failed to parse.
	Text string
	// Reason describes what was wrong with it.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (err *ParseError) Error() string {
	return "decimal: invalid literal " + strconv.Quote(err.Text) + ": " + err.Reason
}

func (err *ParseError) Unwrap() error {
	return err.Err
}
