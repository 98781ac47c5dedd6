package control

import (
	"errors"
	"io"
	"math/big"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks.
type Decoder interface {
	Seek() (err error)
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Depth() int
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
	Enter() (err error)
}

type decoder struct {
	r io.Reader

	consumed uint64
	depth    int

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

func (d *decoder) read(buf []byte) (err error) {
	n, err := io.ReadFull(d.r, buf)
	d.consumed += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// seek discards size bytes from the input stream.
func (d *decoder) seek(size uint64) (err error) {
	n, err := io.CopyN(io.Discard, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Seek moves the reading position to the end of the current field.
func (d *decoder) Seek() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.finished || d.t == Unknown {
		return nil
	}

	switch d.t {
	case DataSize, DataSizeSize:
		size, err := d.Size()
		if err != nil {
			return err
		}

		err = d.seek(size)
		if err != nil {
			return err
		}
	case Data1, Data2:
		// The first data byte lives in the control byte.
		size, err := d.Size()
		if err != nil {
			return err
		}

		err = d.seek(size - 1)
		if err != nil {
			return err
		}
	case ContainerUnbounded:
		// Read fields until the matching ContainerEnd is found. Depth
		// will be one less than our current.
		target := d.depth - 1
		d.finished = true

		for d.Next() {
			if d.t == ContainerEnd && d.depth == target {
				return nil
			}
		}
		if d.err != nil {
			return d.err
		}

		return Error.New("unterminated container")
	default:
		return Error.New("unsupported field %q: %08b", d.t.Abbr, d.value[0])
	}

	d.finished = true

	return nil
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if !d.finished {
		if d.Seek() != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown

	d.size = 0
	d.data = d.data[:0]
	d.finished = false

	n, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false
		}

		d.err = Error.Wrap(err)

		return false
	}
	d.consumed += uint64(n)

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	case ContainerUnbounded:
		d.depth++
	case ContainerEnd:
		if d.depth == 0 {
			d.err = Error.New("unexpected container end (not in a container)")

			return false
		}

		d.depth--
		d.finished = true
	case ContainerSymmetric, ContainerBounded, SkipSize:
		d.err = Error.New("unsupported field %q: %08b", t.Abbr, d.value[0])

		return false
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Depth() int {
	return d.depth
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current field.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeSize := uint64(d.value[0]&d.t.Mask) + 1

		sizeBytes := make([]byte, sizeSize)
		err = d.read(sizeBytes)
		if err != nil {
			return 0, err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() || size.Uint64() > MaxDataSize {
			return 0, Error.New("unimplemented: size=%s", size)
		}

		d.size = size.Uint64()
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = d.data[:0]
			d.err = err
		}
	}()

	if !isData(d.t) {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if len(d.data) != 0 {
		return d.data, nil
	}

	if d.finished && d.t != Data {
		return nil, Error.New("field already skipped")
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	d.data = make([]byte, size)

	switch d.t {
	case Data:
		d.data[0] = d.value[0] & d.t.Mask
	case Data1, Data2:
		d.data[0] = d.value[0] & d.t.Mask

		err = d.read(d.data[1:])
		if err != nil {
			return nil, err
		}
	case DataSize, DataSizeSize:
		err = d.read(d.data)
		if err != nil {
			return nil, err
		}
	}

	d.finished = true

	return d.data, nil
}

// Enter informs decoder that the ContainerUnbounded field should be entered.
// If the current field type is not ContainerUnbounded, then it returns
// ErrInvalidOperation.
func (d *decoder) Enter() (err error) {
	if d.t != ContainerUnbounded {
		d.err = oops.Trace(ErrInvalidOperation)

		return d.err
	}

	d.finished = true

	return nil
}
