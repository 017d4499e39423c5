package decimal

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cockroachdb/apd/v3"
)

// Decimal type is a representation of a finite decimal floating-point number.
// The zero value is the numeric value of 0 and is ready to use.
//
// A decimal holds one [apd.Decimal] and guarantees that its form is finite:
// infinities and NaNs cannot be constructed and cannot be produced by any
// operation without an error being returned instead.
// Because every live value is finite, [Decimal.Cmp] defines a total order.
//
// Values are immutable.
// Every operation computes its result into a fresh [apd.Decimal], so a
// decimal never shares or mutates the backing storage of its operands and
// is safe for concurrent use by multiple goroutines.
type Decimal struct {
	val apd.Decimal
}

// ctx is the arithmetic context all operations run under: decimal128
// semantics with 34 digits of precision and the full exponent range.
// Rounding and precision behavior are inherited from apd unmodified.
var ctx = apd.Context{
	Precision:   34,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Traps:       apd.DefaultTraps,
}

var (
	// ErrParse indicates that a string does not represent a valid decimal number.
	ErrParse = errors.New("cannot parse decimal")

	// ErrInvalidValue indicates a non-finite value: an infinity or a NaN.
	ErrInvalidValue = errors.New("non-finite decimal")
)

// checked asserts the finiteness invariant on a freshly computed value.
func (d Decimal) checked(op string) (Decimal, error) {
	if d.val.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("%s produced a non-finite result: %w", op, ErrInvalidValue)
	}
	return d, nil
}

// New returns a decimal equal to coef * 10^exp.
// The result is exact and always finite.
func New(coef int64, exp int32) Decimal {
	var d Decimal
	d.val.SetFinite(coef, exp)
	return d
}

// Zero returns the decimal 0.
func Zero() Decimal {
	return Decimal{}
}

// One returns the decimal 1.
func One() Decimal {
	return New(1, 0)
}

// Parse converts a string to a decimal.
// The input may use a fractional part and an exponent:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// Parse returns an error wrapping:
//   - [ErrParse], if the string is not a valid decimal number.
//   - [ErrInvalidValue], if the string parses to an infinity or a NaN
//     (apd accepts spellings such as "Infinity" and "NaN").
func Parse(s string) (Decimal, error) {
	var d Decimal
	if _, _, err := d.val.SetString(s); err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrParse)
	}
	if d.val.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidValue)
	}
	return d, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals
// and keeps decimal literals readable in tests.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// FromAPD returns a decimal wrapping a copy of the given raw value.
// FromAPD returns an error wrapping [ErrInvalidValue] if the value is an
// infinity or a NaN.
func FromAPD(val *apd.Decimal) (Decimal, error) {
	if val.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("wrapping %s: %w", val, ErrInvalidValue)
	}
	var d Decimal
	d.val.Set(val)
	return d, nil
}

// FromInt64 converts an int64 to a decimal.
// The result is exact and no error is possible.
func FromInt64(i int64) Decimal {
	var d Decimal
	d.val.SetInt64(i)
	return d
}

// FromUint64 converts a uint64 to a decimal.
// The result is exact and no error is possible.
func FromUint64(u uint64) Decimal {
	var d Decimal
	d.val.Coeff.SetUint64(u)
	return d
}

// FromFloat64 converts a float64 to a decimal.
// FromFloat64 returns an error wrapping [ErrInvalidValue] if f is an
// infinity or a NaN.
func FromFloat64(f float64) (Decimal, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Decimal{}, fmt.Errorf("converting %v: %w", f, ErrInvalidValue)
	}
	var d Decimal
	if _, err := d.val.SetFloat64(f); err != nil {
		return Decimal{}, fmt.Errorf("converting %v: %w", f, ErrParse)
	}
	return d, nil
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the decimal without scientific or engineering notation.
// Trailing zeros are preserved, so 1.20 renders as "1.20".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.val.Text('f')
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following verbs are available:
//
//	%s, %v: -123.456
//	%q:    "-123.456"
//	%f:     -123.456, rounded to the given precision if one is set
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		io.WriteString(state, d.String())
	case 'q':
		fmt.Fprintf(state, "%q", d.String())
	case 'f', 'F':
		if prec, ok := state.Precision(); ok {
			var z apd.Decimal
			if _, err := ctx.Quantize(&z, &d.val, int32(-prec)); err == nil {
				io.WriteString(state, z.Text('f'))
				return
			}
		}
		io.WriteString(state, d.String())
	default:
		fmt.Fprintf(state, "%%!%c(decimal.Decimal=%s)", verb, d.String())
	}
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.val.Sign()
}

// IsZero reports whether d is 0.
func (d Decimal) IsZero() bool {
	return d.val.IsZero()
}

// IsNeg reports whether d is less than 0.
func (d Decimal) IsNeg() bool {
	return d.val.Negative && !d.val.IsZero()
}

// IsPos reports whether d is greater than 0.
func (d Decimal) IsPos() bool {
	return !d.val.Negative && !d.val.IsZero()
}

// Neg returns a decimal with the opposite sign.
// The result is exact and always finite.
func (d Decimal) Neg() Decimal {
	var z Decimal
	z.val.Neg(&d.val)
	return z
}

// Abs returns the absolute value of d.
// The result is exact and always finite.
func (d Decimal) Abs() Decimal {
	var z Decimal
	z.val.Abs(&d.val)
	return z
}

// Add returns the sum d + e, or an error wrapping [ErrInvalidValue] if the
// sum is not finite.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	var z Decimal
	if _, err := ctx.Add(&z.val, &d.val, &e.val); err != nil {
		return Decimal{}, fmt.Errorf("addition: %w", ErrInvalidValue)
	}
	return z.checked("addition")
}

// Sub returns the difference d - e, or an error wrapping [ErrInvalidValue]
// if the difference is not finite.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	var z Decimal
	if _, err := ctx.Sub(&z.val, &d.val, &e.val); err != nil {
		return Decimal{}, fmt.Errorf("subtraction: %w", ErrInvalidValue)
	}
	return z.checked("subtraction")
}

// Mul returns the product d * e, or an error wrapping [ErrInvalidValue] if
// the product is not finite, which happens when it overflows the exponent
// range of the arithmetic context.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	var z Decimal
	if _, err := ctx.Mul(&z.val, &d.val, &e.val); err != nil {
		return Decimal{}, fmt.Errorf("multiplication: %w", ErrInvalidValue)
	}
	return z.checked("multiplication")
}

// Quo returns the quotient d / e, or an error wrapping [ErrInvalidValue] if
// the quotient is not finite.
// In particular, dividing by zero is an error, not an infinity.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	var z Decimal
	if _, err := ctx.Quo(&z.val, &d.val, &e.val); err != nil {
		return Decimal{}, fmt.Errorf("division: %w", ErrInvalidValue)
	}
	return z.checked("division")
}

// Rem returns the remainder of d / e with the sign of d, or an error
// wrapping [ErrInvalidValue] if the remainder is not finite.
// In particular, the remainder of division by zero is an error.
func (d Decimal) Rem(e Decimal) (Decimal, error) {
	var z Decimal
	if _, err := ctx.Rem(&z.val, &d.val, &e.val); err != nil {
		return Decimal{}, fmt.Errorf("remainder: %w", ErrInvalidValue)
	}
	return z.checked("remainder")
}

// Pow returns d raised to the power of e, or an error wrapping
// [ErrInvalidValue] if the power is not finite, as for 0 raised to a
// negative power or a result overflowing the exponent range.
func (d Decimal) Pow(e Decimal) (Decimal, error) {
	var z Decimal
	if _, err := ctx.Pow(&z.val, &d.val, &e.val); err != nil {
		return Decimal{}, fmt.Errorf("exponentiation: %w", ErrInvalidValue)
	}
	return z.checked("exponentiation")
}

// FMA returns the fused multiply-add d * e + f.
// The multiply is carried out with widened precision, so for operands within
// the precision of the arithmetic context the result is rounded only once.
// FMA returns an error wrapping [ErrInvalidValue] if the result is not finite.
func (d Decimal) FMA(e, f Decimal) (Decimal, error) {
	wide := ctx
	wide.Precision = 2 * ctx.Precision
	var prod apd.Decimal
	if _, err := wide.Mul(&prod, &d.val, &e.val); err != nil {
		return Decimal{}, fmt.Errorf("fused multiply-add: %w", ErrInvalidValue)
	}
	var z Decimal
	if _, err := ctx.Add(&z.val, &prod, &f.val); err != nil {
		return Decimal{}, fmt.Errorf("fused multiply-add: %w", ErrInvalidValue)
	}
	return z.checked("fused multiply-add")
}

// Sum returns the sum of all values, or an error wrapping [ErrInvalidValue]
// if any partial sum is not finite.
// The sum of no values is 0.
func Sum(vals ...Decimal) (Decimal, error) {
	var sum Decimal
	var err error
	for _, v := range vals {
		sum, err = sum.Add(v)
		if err != nil {
			return Decimal{}, err
		}
	}
	return sum, nil
}

// Cmp numerically compares d and e and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// Because all live values are finite, this order is total.
func (d Decimal) Cmp(e Decimal) int {
	return d.val.Cmp(&e.val)
}

// Equal reports whether d and e represent the same numeric value.
// Values with different scales are compared numerically, so 1, 1.0,
// and 1.00 are all equal.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Less reports whether d is numerically less than e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// Min returns the smaller of d and e.
func (d Decimal) Min(e Decimal) Decimal {
	if e.Less(d) {
		return e
	}
	return d
}

// Max returns the larger of d and e.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Less(e) {
		return e
	}
	return d
}

// Reduce returns d with all trailing zeros removed from its coefficient.
// The result is numerically equal to d.
func (d Decimal) Reduce() Decimal {
	var z Decimal
	z.val.Reduce(&d.val)
	return z
}

// Key returns a canonical string for d, suitable for use as a map key.
// Equal values always yield the same key regardless of their scale, so
// 1, 1.0, and 1.00 share one key.
func (d Decimal) Key() string {
	// 0, 0.00 and -0 collapse to one key.
	if d.val.IsZero() {
		return "0"
	}
	return d.Reduce().String()
}

// APD returns a copy of the underlying [apd.Decimal].
// The copy is always finite and may be handed to apd directly for
// operations this package does not expose.
func (d Decimal) APD() *apd.Decimal {
	var z apd.Decimal
	z.Set(&d.val)
	return &z
}

// Int64 converts d to an int64, or returns an error if d does not fit
// precisely into an int64.
func (d Decimal) Int64() (int64, error) {
	return d.val.Int64()
}

// Float64 converts d to the nearest float64.
func (d Decimal) Float64() (float64, error) {
	return d.val.Float64()
}
