package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the error class for integer blocks.
var Error = errs.Class("integer")

// Block is a signed integer number with a 64 bit magnitude.
type Block struct {
	Magnitude uint64
	Negative  bool
}

// Zigzag returns the magnitude shifted left by one with the sign in the low
// bit.
func (b Block) Zigzag() *big.Int {
	i := new(big.Int).SetUint64(b.Magnitude)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	return i
}

// FromZigzag is the inverse of Zigzag. It fails if the magnitude does not
// fit in 64 bits.
func FromZigzag(i *big.Int) (b Block, err error) {
	if i.Sign() < 0 {
		return b, Error.New("negative zigzag value: %s", i)
	}

	b.Negative = i.Bit(0) == 1

	m := new(big.Int).Rsh(i, 1)
	if !m.IsUint64() {
		return b, Error.New("magnitude overflows 64 bits: %s", m)
	}

	b.Magnitude = m.Uint64()

	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	data = b.Zigzag().Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	*b, err = FromZigzag(new(big.Int).SetBytes(data))

	return err
}
