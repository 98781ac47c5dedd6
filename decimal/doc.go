// Package decimal provides a bounded precision base 10 number.
//
// The equation for a decimal number is:
//
//  number = sign * mantissa / 10^scale
//
// Where mantissa is an unsigned 64 bit integer holding every significant
// digit and scale is the count of those digits right of the decimal point.
// For example:
//
//  1.23 = 123 / 10^2
//
// The zero value is NaN. NaN is the only error channel of the arithmetic:
// malformed text, division by zero and mantissa overflow all produce it,
// and it is sticky. Reassigning (Set, SetString) is the only way back.
//
// Equality is structural. 5.0 (mantissa 50, scale 1) does not equal 5
// (mantissa 5, scale 0) until a rounding operation strips the trailing
// zero. Ordering (Less, Cmp, ...) compares numeric values.
//
// Arithmetic methods mutate the receiver and return it:
//
//  d := decimal.Parse("10")
//  d.Quo(decimal.Parse("4")) // 2.5
//
// The generic functions Sum, Difference, Product, Quotient and the
// comparisons Eq, Ne, Lt, Gt, Le, Ge accept any mix of Decimal and native
// integer or floating point operands and never modify their arguments.
//
// Division produces at most ScaleLimit fractional digits and truncates the
// rest.
//
// Encoding
//
// Besides text (String, MarshalText, MarshalJSON, database/sql) a decimal
// has a compact binary form carried in a single BSV control data block. The
// payload is laid out first by the unscaled integer value (with sign bit),
// then the exponent (with sign bit), and finally the last 2 bits are the
// exponent size. The exponent is the negated scale.
//
// All integers in the format are encoded big-endian with a trailing sign bit
// (aka zigzag).
//
// The exponent size is encoded as two bits:
//
//  | 0 | 1 | Available Exponent |
//  |-------|--------------------|
//  | 0 . 0 | No Exponent        | 1 byte, remaining bits in this byte are used for value.
//  | 0 . 1 | ±2^5 Exponent      | 1 byte, remaining bits are the exponent value.
//  | 1 . 0 | ±2^13 Exponent     | 2 bytes
//  | 1 . 1 | ±2^21 Exponent     | 3 bytes
//  |-------|--------------------|
//
// NaN is encoded as a Null control block.
//
// Examples
//
// Zero (1 byte)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 1 | 0 . 0 . 0 . 0 | 0 | 0 . 0 | Data Control Block with value of 0.
//  |---------------|---------------|
//
// USD 0.0001 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 1 | 0 . 0 . 0 . 1 | 0 | Data + 1 Control Block with value of +1.
//  |-------------------------------|
//  | 0 . 0 . 1 . 0 . 0 | 1 | 0 . 1 | ±2^5 Exponent of -4.
//  |---------------|---------------|
//
// USD 20.47 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 1 | 1 . 1 . 1 . 1 | Data + 2 Control Block with value of +2047.
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 | 0 |
//  |-------------------------------|
//  | 0 . 0 . 0 . 1 . 0 | 1 | 0 . 1 | ±2^5 Exponent of -2.
//  |---------------|---------------|
//
// USD 3.2767 (4 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 1 | 0 . 0 . 0 . 0 . 1 . 0 | Data Size Control Block with 3 bytes.
//  |-------------------------------|
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 . 1 | Value of +32767
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 | 0 |
//  |-------------------------------|
//  | 0 . 0 . 1 . 0 . 0 | 1 | 0 . 1 | ±2^5 Exponent of -4.
//  |---------------|---------------|
//
package decimal
