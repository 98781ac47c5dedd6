package decimal

import (
	"bytes"
	"io"
	"math"
	"math/big"

	"github.com/calebcase/oops"

	"github.com/calebcase/precise/control"
	"github.com/calebcase/precise/integer"
)

// Scale size trailers.
const (
	scaleNone  byte = 0b00
	scaleSmall byte = 0b01
	scaleMid   byte = 0b10
	scaleLarge byte = 0b11
)

// ErrNotNullable is returned when a schema without Nullable meets NaN.
var ErrNotNullable = Error.New("NaN in non-nullable field")

// Schema represents a configured decimal field.
type Schema struct {
	Nullable bool
}

// payload returns the zigzag value followed by the exponent trailer.
func (d Decimal) payload() (data []byte, err error) {
	blk := integer.Block{
		Magnitude: d.mantissa,
		Negative:  d.state == Negative,
	}

	if d.scale == 0 {
		i := blk.Zigzag()
		i.Lsh(i, 2)

		data = i.Bytes()
		if len(data) == 0 {
			data = []byte{0}
		}

		return data, nil
	}

	data, err = blk.MarshalBinary()
	if err != nil {
		return nil, err
	}

	// The exponent is -scale, so the zigzag sign bit is always set.
	e := uint64(d.scale)<<1 | 1

	switch {
	case e < 1<<6:
		data = append(data, byte(e<<2)|scaleSmall)
	case e < 1<<14:
		v := e<<2 | uint64(scaleMid)
		data = append(data, byte(v>>8), byte(v))
	default:
		v := e<<2 | uint64(scaleLarge)
		data = append(data, byte(v>>16), byte(v>>8), byte(v))
	}

	return data, nil
}

// fromPayload is the inverse of payload. Positive exponents are accepted and
// folded into the mantissa.
func fromPayload(data []byte) (d Decimal, err error) {
	if len(data) == 0 {
		return d, Error.New("empty payload")
	}

	size := data[len(data)-1] & 0b11

	var (
		blk integer.Block
		e   uint64
	)

	if size == scaleNone {
		i := new(big.Int).SetBytes(data)
		i.Rsh(i, 2)

		blk, err = integer.FromZigzag(i)
		if err != nil {
			return d, err
		}
	} else {
		n := int(size)
		if len(data) < n+1 {
			return d, Error.New("short payload: size=%d len=%d", n, len(data))
		}

		for _, b := range data[len(data)-n:] {
			e = e<<8 | uint64(b)
		}
		e >>= 2

		err = blk.UnmarshalBinary(data[:len(data)-n])
		if err != nil {
			return d, err
		}
	}

	d.state = Positive
	if blk.Negative {
		d.state = Negative
	}
	d.mantissa = blk.Magnitude

	exp := e >> 1

	if e&1 == 1 {
		if exp > math.MaxUint16 {
			return Decimal{}, Error.New("scale out of range: %d", exp)
		}

		d.scale = uint16(exp)
	} else {
		m, ok := scaleUp(d.mantissa, int(exp))
		if exp > math.MaxUint16 || !ok {
			return Decimal{}, Error.New("exponent out of range: %d", exp)
		}

		d.mantissa = m
	}

	d.normalizeZero()

	return d, nil
}

// Encoder writes decimals as BSV control blocks.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes d.
func (e *Encoder) Encode(d Decimal) (err error) {
	defer Error.WrapP(&err)

	return e.encode(e.ce, d)
}

// EncodeAll writes ds inside an unbounded container.
func (e *Encoder) EncodeAll(ds []Decimal) (err error) {
	defer Error.WrapP(&err)

	return e.ce.Unbound(func(ce control.Encoder) (err error) {
		for _, d := range ds {
			err = e.encode(ce, d)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (e *Encoder) encode(ce control.Encoder, d Decimal) (err error) {
	if d.state == NaN {
		if !e.schema.Nullable {
			return oops.Trace(ErrNotNullable)
		}

		return ce.Null()
	}

	data, err := d.payload()
	if err != nil {
		return err
	}

	return ce.Data(data)
}

// Decoder reads decimals from BSV control blocks.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next decimal into d. It returns io.EOF when the input is
// exhausted.
func (dec *Decoder) Decode(d *Decimal) (err error) {
	if !dec.cd.Next() {
		if err = dec.cd.Err(); err != nil {
			return Error.Wrap(err)
		}

		return io.EOF
	}

	return dec.decode(d)
}

// DecodeAll reads an unbounded container of decimals.
func (dec *Decoder) DecodeAll() (ds []Decimal, err error) {
	defer Error.WrapP(&err)

	if !dec.cd.Next() {
		if err = dec.cd.Err(); err != nil {
			return nil, err
		}

		return nil, io.ErrUnexpectedEOF
	}

	err = dec.cd.Enter()
	if err != nil {
		return nil, err
	}

	ds = []Decimal{}

	for dec.cd.Next() {
		if dec.cd.Type() == control.ContainerEnd {
			return ds, nil
		}

		var d Decimal

		err = dec.decode(&d)
		if err != nil {
			return nil, err
		}

		ds = append(ds, d)
	}

	if err = dec.cd.Err(); err != nil {
		return nil, err
	}

	return nil, io.ErrUnexpectedEOF
}

func (dec *Decoder) decode(d *Decimal) (err error) {
	defer Error.WrapP(&err)

	if dec.cd.Type() == control.Null {
		if !dec.schema.Nullable {
			return oops.Trace(ErrNotNullable)
		}

		*d = Decimal{}

		return nil
	}

	data, err := dec.cd.Data()
	if err != nil {
		return err
	}

	v, err := fromPayload(data)
	if err != nil {
		return err
	}

	*d = v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The result is a single
// nullable BSV field.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	buf := &bytes.Buffer{}

	err = NewEncoder(Schema{Nullable: true}, control.NewEncoder(buf)).Encode(d)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must hold
// exactly one field.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	cd := control.NewDecoder(bytes.NewReader(data))

	var v Decimal

	err = NewDecoder(Schema{Nullable: true}, cd).Decode(&v)
	if err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}

		return err
	}

	if cd.Consumed() != uint64(len(data)) {
		return Error.New("trailing data: %d bytes", uint64(len(data))-cd.Consumed())
	}

	*d = v

	return nil
}
