package calcy

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/calcy/decimal"
)

// Domain is a numeric type that expressions can be evaluated over. Operations
// return errors instead of panicking; what is an error is up to the domain.
// Each domain is chosen once, typically at program start, and the whole
// pipeline from Tokenize to Eval is instantiated with it.
//
// A Domain must not modify the operands it is given.
type Domain[T any] interface {
	// Name is the name of the type, used in error messages.
	Name() string
	// Parse parses a numeric literal, a run of digits and decimal points.
	Parse(s string) (T, error)

	Add(x, y T) (T, error)
	Sub(x, y T) (T, error)
	Mul(x, y T) (T, error)
	Div(x, y T) (T, error)
	Pow(x, y T) (T, error)

	// Equal reports whether x and y are the same number.
	Equal(x, y T) bool
	// Format formats a value for display.
	Format(x T) string
}

// DomainError is returned when an operation is applied to operands outside
// its domain, or its result is not representable.
type DomainError struct {
	// Op is the operator.
	Op string
	// X and Y are the formatted operands.
	X, Y string
	// Err is the underlying error, if any.
	Err error
}

func (err *DomainError) Error() string {
	r := err.X + " " + err.Op + " " + err.Y + " outside domain of " + err.Op
	if err.Err != nil {
		r += ": " + err.Err.Error()
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return err.Err
}

// UnsupportedError is returned when a domain does not implement an operator at
// all. It is never a matter of the operands' values.
type UnsupportedError struct {
	// Op is the operator.
	Op string
	// Type is the name of the domain.
	Type string
}

func (err *UnsupportedError) Error() string {
	return "operator " + err.Op + " is not implemented for " + err.Type
}

// Float is the domain of IEEE-754 binary floats. Operations never fail:
// division by zero gives an infinity or NaN.
type Float[T float32 | float64] struct{}

func (Float[T]) bits() int {
	var x T
	if _, ok := any(x).(float32); ok {
		return 32
	}
	return 64
}

func (d Float[T]) Name() string {
	return "f" + strconv.Itoa(d.bits())
}

func (d Float[T]) Parse(s string) (T, error) {
	v, err := strconv.ParseFloat(s, d.bits())
	return T(v), err
}

func (Float[T]) Add(x, y T) (T, error) { return x + y, nil }
func (Float[T]) Sub(x, y T) (T, error) { return x - y, nil }
func (Float[T]) Mul(x, y T) (T, error) { return x * y, nil }
func (Float[T]) Div(x, y T) (T, error) { return x / y, nil }

func (Float[T]) Pow(x, y T) (T, error) {
	return T(math.Pow(float64(x), float64(y))), nil
}

func (Float[T]) Equal(x, y T) bool {
	return x == y
}

func (d Float[T]) Format(x T) string {
	return strconv.FormatFloat(float64(x), 'f', -1, d.bits())
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32
}

// Unsigned is the domain of unsigned integers. Addition, subtraction,
// multiplication, and exponentiation wrap around. Division truncates, and
// division by zero is a DomainError.
type Unsigned[T unsigned] struct{}

func (Unsigned[T]) bits() int {
	var x T
	switch any(x).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	}
	return strconv.IntSize
}

func (d Unsigned[T]) Name() string {
	var x T
	if _, ok := any(x).(uint); ok {
		return "usize"
	}
	return "u" + strconv.Itoa(d.bits())
}

func (d Unsigned[T]) Parse(s string) (T, error) {
	v, err := strconv.ParseUint(s, 10, d.bits())
	return T(v), err
}

func (Unsigned[T]) Add(x, y T) (T, error) { return x + y, nil }
func (Unsigned[T]) Sub(x, y T) (T, error) { return x - y, nil }
func (Unsigned[T]) Mul(x, y T) (T, error) { return x * y, nil }

func (d Unsigned[T]) Div(x, y T) (T, error) {
	if y == 0 {
		return 0, &DomainError{Op: "/", X: d.Format(x), Y: d.Format(y)}
	}
	return x / y, nil
}

// Pow computes x^y by squaring.
func (Unsigned[T]) Pow(x, y T) (T, error) {
	r := T(1)
	for y > 0 {
		if y&1 != 0 {
			r *= x
		}
		x *= x
		y >>= 1
	}
	return r, nil
}

func (Unsigned[T]) Equal(x, y T) bool {
	return x == y
}

func (Unsigned[T]) Format(x T) string {
	return strconv.FormatUint(uint64(x), 10)
}

// BigFloat is the domain of arbitrary-precision binary floats. Operations
// that would produce NaN, and exponentiation of negative numbers, are
// DomainErrors.
type BigFloat struct {
	// Prec is the precision of results in bits. If it is 0, the precision is
	// 64.
	Prec uint
}

func (d BigFloat) prec() uint {
	if d.Prec == 0 {
		return 64
	}
	return d.Prec
}

func (BigFloat) Name() string {
	return "bigfloat"
}

func (d BigFloat) Parse(s string) (*big.Float, error) {
	r, _, err := new(big.Float).SetPrec(d.prec()).Parse(s, 10)
	return r, err
}

func (d BigFloat) Add(x, y *big.Float) (*big.Float, error) {
	return d.do("+", x, y, (*big.Float).Add)
}

func (d BigFloat) Sub(x, y *big.Float) (*big.Float, error) {
	return d.do("-", x, y, (*big.Float).Sub)
}

func (d BigFloat) Mul(x, y *big.Float) (*big.Float, error) {
	return d.do("*", x, y, (*big.Float).Mul)
}

func (d BigFloat) Div(x, y *big.Float) (*big.Float, error) {
	return d.do("/", x, y, (*big.Float).Quo)
}

func (d BigFloat) Pow(x, y *big.Float) (*big.Float, error) {
	switch {
	case x.Sign() < 0, x.IsInf(), y.IsInf():
		// TODO: allow negative base with integer exponent
		return nil, &DomainError{Op: "^", X: d.Format(x), Y: d.Format(y)}
	case y.Sign() == 0:
		return new(big.Float).SetPrec(d.prec()).SetInt64(1), nil
	case x.Sign() == 0:
		if y.Sign() < 0 {
			return new(big.Float).SetPrec(d.prec()).SetInf(false), nil
		}
		return new(big.Float).SetPrec(d.prec()), nil
	}
	return d.do("^", x, y, bigfloat.Pow)
}

// do applies an operation into a new value, turning a big.ErrNaN panic into a
// DomainError.
func (d BigFloat) do(op string, x, y *big.Float, f func(z, x, y *big.Float) *big.Float) (r *big.Float, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		nan, ok := p.(big.ErrNaN)
		if !ok {
			panic(p)
		}
		r, err = nil, &DomainError{Op: op, X: d.Format(x), Y: d.Format(y), Err: nan}
	}()
	return f(new(big.Float).SetPrec(d.prec()), x, y), nil
}

func (BigFloat) Equal(x, y *big.Float) bool {
	return x.Cmp(y) == 0
}

func (BigFloat) Format(x *big.Float) string {
	return x.Text('g', -1)
}

// Decimal is the domain of exact fixed-point decimals. Only addition and
// subtraction are implemented; the other operators are UnsupportedErrors.
type Decimal struct{}

func (Decimal) Name() string {
	return "decimal"
}

func (Decimal) Parse(s string) (decimal.Decimal, error) {
	return decimal.Parse(s)
}

func (d Decimal) Add(x, y decimal.Decimal) (decimal.Decimal, error) {
	r, err := x.Add(y)
	if err != nil {
		return r, &DomainError{Op: "+", X: x.String(), Y: y.String(), Err: err}
	}
	return r, nil
}

func (d Decimal) Sub(x, y decimal.Decimal) (decimal.Decimal, error) {
	r, err := x.Sub(y)
	if err != nil {
		return r, &DomainError{Op: "-", X: x.String(), Y: y.String(), Err: err}
	}
	return r, nil
}

func (d Decimal) Mul(x, y decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Decimal{}, &UnsupportedError{Op: "*", Type: d.Name()}
}

func (d Decimal) Div(x, y decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Decimal{}, &UnsupportedError{Op: "/", Type: d.Name()}
}

func (d Decimal) Pow(x, y decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Decimal{}, &UnsupportedError{Op: "^", Type: d.Name()}
}

func (Decimal) Equal(x, y decimal.Decimal) bool {
	return x.Equal(y)
}

func (Decimal) Format(x decimal.Decimal) string {
	return x.String()
}

var (
	_ Domain[float32]         = Float[float32]{}
	_ Domain[float64]         = Float[float64]{}
	_ Domain[uint]            = Unsigned[uint]{}
	_ Domain[uint8]           = Unsigned[uint8]{}
	_ Domain[uint16]          = Unsigned[uint16]{}
	_ Domain[uint32]          = Unsigned[uint32]{}
	_ Domain[*big.Float]      = BigFloat{}
	_ Domain[decimal.Decimal] = Decimal{}
)
