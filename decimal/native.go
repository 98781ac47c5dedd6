package decimal

import "reflect"

// Integer is any native integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is any native floating point type.
type Float interface {
	~float32 | ~float64
}

// Number is any native integer or floating point type.
type Number interface {
	Integer | Float
}

// Operand is a Decimal or a native number promoted to one.
type Operand interface {
	Decimal | Integer | Float
}

// Of converts a native number: integers with scale 0, floats through their
// shortest decimal text.
func Of[T Number](n T) Decimal {
	return promote(n)
}

func promote[T Operand](v T) Decimal {
	if d, ok := any(v).(Decimal); ok {
		return d
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromUint64(rv.Uint())
	case reflect.Float32:
		return FromFloat32(float32(rv.Float()))
	case reflect.Float64:
		return FromFloat64(rv.Float())
	}

	return Decimal{}
}

// To converts d to a native number. Floats get the nearest value (NaN for
// NaN). Integers get the integer part, saturating at the bounds of T;
// unsigned types get 0 for negative values and NaN gives 0.
func To[T Number](d Decimal) T {
	var zero T

	t := reflect.TypeOf(zero)
	bits := t.Bits()

	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return T(d.Float64())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := d.Uint64()
		if bits < 64 && u > uint64(1)<<bits-1 {
			u = uint64(1)<<bits - 1
		}

		return T(u)
	}

	i := d.Int64()
	if bits < 64 {
		lo, hi := int64(-1)<<(bits-1), int64(1)<<(bits-1)-1

		switch {
		case i < lo:
			i = lo
		case i > hi:
			i = hi
		}
	}

	return T(i)
}

// Sum returns l + r.
func Sum[L, R Operand](l L, r R) Decimal {
	d := promote(l)

	return *d.Add(promote(r))
}

// Difference returns l - r.
func Difference[L, R Operand](l L, r R) Decimal {
	d := promote(l)

	return *d.Sub(promote(r))
}

// Product returns l * r.
func Product[L, R Operand](l L, r R) Decimal {
	d := promote(l)

	return *d.Mul(promote(r))
}

// Quotient returns l / r.
func Quotient[L, R Operand](l L, r R) Decimal {
	d := promote(l)

	return *d.Quo(promote(r))
}

func Eq[L, R Operand](l L, r R) bool {
	return promote(l).Equal(promote(r))
}

func Ne[L, R Operand](l L, r R) bool {
	return promote(l).NotEqual(promote(r))
}

func Lt[L, R Operand](l L, r R) bool {
	return promote(l).Less(promote(r))
}

func Gt[L, R Operand](l L, r R) bool {
	return promote(l).Greater(promote(r))
}

func Le[L, R Operand](l L, r R) bool {
	return promote(l).LessOrEqual(promote(r))
}

func Ge[L, R Operand](l L, r R) bool {
	return promote(l).GreaterOrEqual(promote(r))
}
