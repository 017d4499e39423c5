/*
Package decimal provides a finite decimal floating-point number built on top
of the arbitrary-precision decimal arithmetic of [cockroachdb/apd].

An [apd.Decimal] can hold special values: positive and negative infinity and
NaN. NaN does not compare equal to anything, including itself, so the raw
type has no total order and is unsafe to use in sorted collections or as a
key derived from its value. [Decimal] removes exactly that: it wraps an
[apd.Decimal] and guarantees that every live value is finite.

# Validation

The finiteness invariant is established once at construction and re-asserted
after every arithmetic operation:

  - [Parse], [FromAPD], and [FromFloat64] reject infinities and NaNs with an
    error wrapping [ErrInvalidValue].
  - [Decimal.Add], [Decimal.Sub], [Decimal.Mul], [Decimal.Quo],
    [Decimal.Rem], [Decimal.Pow], and [Decimal.FMA] delegate the computation
    to apd and return an error wrapping [ErrInvalidValue] if the result is
    not finite. Dividing by zero is therefore an error, not an infinity, and
    so is a product or power that overflows the exponent range.

Everything else about the arithmetic — rounding, precision, overflow
thresholds — is inherited from apd unmodified. All operations run under a
decimal128 context with 34 digits of precision.

# Errors

Two error kinds cover all failures: [ErrParse] for malformed input and
[ErrInvalidValue] for a parsed or computed value that is not finite. Both
are returned wrapped with context and can be tested with [errors.Is].

# Ordering and map keys

Because no value is ever non-finite, [Decimal.Cmp] is a total order and
values can be sorted and searched directly:

	slices.SortFunc(ds, Decimal.Cmp)

Go map keys require a comparable type, which a value backed by a big
coefficient is not, so [Decimal.Key] returns a canonical string instead:
equal values yield equal keys regardless of scale, making 1, 1.0, and 1.00
one key.

# Conversions

Decimals convert from and to strings ([Parse], [Decimal.String]), int64
([FromInt64], [Decimal.Int64]), float64 ([FromFloat64], [Decimal.Float64]),
and the raw library value ([FromAPD], [Decimal.APD]). They marshal as text,
JSON (as a string, accepting bare numbers on decode), binary, and through
database/sql.

[cockroachdb/apd]: https://pkg.go.dev/github.com/cockroachdb/apd/v3
*/
package decimal
