package salsa20

import (
	"encoding/binary"
	"math/bits"

	"github.com/samber/oops"
)

// Cipher holds the Salsa20 input matrix for one key/IV pair.
//
//	+--------+--------+--------+--------+
//	| const0 | key0   | key1   | key2   |
//	| key3   | const1 | iv0    | iv1    |
//	| ctr lo | ctr hi | const2 | key4   |
//	| key5   | key6   | key7   | const3 |
//	+--------+--------+--------+--------+
//
// For 16-byte keys key4..key7 repeat key0..key3. Words 8 and 9 form the
// 64-bit block counter, which starts at zero.
//
// A Cipher does not buffer keystream: a call that ends in the middle of a
// block discards the rest of that block.
type Cipher struct {
	state  [16]uint32
	rounds int
}

// New returns a Cipher for a 16- or 32-byte key and an 8-byte IV.
func New(key []byte, iv *[IVSize]byte) (*Cipher, error) {
	c := new(Cipher)
	if err := c.init(key, iv); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cipher) init(key []byte, iv *[IVSize]byte) error {
	var constants *[16]byte
	switch len(key) {
	case KeySize16:
		constants = &tau
	case KeySize32:
		constants = &sigma
	default:
		return oops.Wrapf(ErrInvalidKeySize, "got %d bytes", len(key))
	}
	tail := key[len(key)-16:]

	c.state[0] = binary.LittleEndian.Uint32(constants[0:])
	c.state[1] = binary.LittleEndian.Uint32(key[0:])
	c.state[2] = binary.LittleEndian.Uint32(key[4:])
	c.state[3] = binary.LittleEndian.Uint32(key[8:])
	c.state[4] = binary.LittleEndian.Uint32(key[12:])
	c.state[5] = binary.LittleEndian.Uint32(constants[4:])
	c.state[6] = binary.LittleEndian.Uint32(iv[0:])
	c.state[7] = binary.LittleEndian.Uint32(iv[4:])
	c.state[8] = 0
	c.state[9] = 0
	c.state[10] = binary.LittleEndian.Uint32(constants[8:])
	c.state[11] = binary.LittleEndian.Uint32(tail[0:])
	c.state[12] = binary.LittleEndian.Uint32(tail[4:])
	c.state[13] = binary.LittleEndian.Uint32(tail[8:])
	c.state[14] = binary.LittleEndian.Uint32(tail[12:])
	c.state[15] = binary.LittleEndian.Uint32(constants[12:])
	c.rounds = Rounds
	return nil
}

// Counter returns the index of the next keystream block.
func (c *Cipher) Counter() uint64 {
	return uint64(c.state[9])<<32 | uint64(c.state[8])
}

// SetCounter moves the cipher to keystream block n.
func (c *Cipher) SetCounter(n uint64) {
	c.state[8] = uint32(n)
	c.state[9] = uint32(n >> 32)
}

func (c *Cipher) advance() {
	c.state[8]++
	if c.state[8] == 0 {
		c.state[9]++
	}
}

// XORKeyStream XORs each byte of src with the keystream and writes the
// result to dst. Encryption and decryption are the same operation.
// dst and src must either be the same slice or not overlap.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic(ErrShortOutput)
	}
	var ks [BlockSize]byte
	for len(src) > 0 {
		c.block(&ks)
		n := min(len(src), BlockSize)
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ ks[i]
		}
		c.advance()
		src = src[n:]
		dst = dst[n:]
	}
}

// KeyStream fills dst with raw keystream bytes.
func (c *Cipher) KeyStream(dst []byte) {
	var ks [BlockSize]byte
	for len(dst) > 0 {
		c.block(&ks)
		n := copy(dst, ks[:])
		c.advance()
		dst = dst[n:]
	}
}

// block writes the keystream block for the current counter to out.
func (c *Cipher) block(out *[BlockSize]byte) {
	x := c.state
	for i := 0; i < c.rounds; i += 2 {
		// columns
		x[0], x[4], x[8], x[12] = quarterRound(x[0], x[4], x[8], x[12])
		x[5], x[9], x[13], x[1] = quarterRound(x[5], x[9], x[13], x[1])
		x[10], x[14], x[2], x[6] = quarterRound(x[10], x[14], x[2], x[6])
		x[15], x[3], x[7], x[11] = quarterRound(x[15], x[3], x[7], x[11])
		// rows
		x[0], x[1], x[2], x[3] = quarterRound(x[0], x[1], x[2], x[3])
		x[5], x[6], x[7], x[4] = quarterRound(x[5], x[6], x[7], x[4])
		x[10], x[11], x[8], x[9] = quarterRound(x[10], x[11], x[8], x[9])
		x[15], x[12], x[13], x[14] = quarterRound(x[15], x[12], x[13], x[14])
	}
	for i := range x {
		binary.LittleEndian.PutUint32(out[i*4:], x[i]+c.state[i])
	}
}

func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	b ^= bits.RotateLeft32(a+d, 7)
	c ^= bits.RotateLeft32(b+a, 9)
	d ^= bits.RotateLeft32(c+b, 13)
	a ^= bits.RotateLeft32(d+c, 18)
	return a, b, c, d
}

// XORKeyStream runs Salsa20/20 over src with a fresh cipher whose counter
// starts at zero. The cipher state lives on the stack of this call.
func XORKeyStream(dst, src, key []byte, iv *[IVSize]byte) error {
	if len(dst) < len(src) {
		return ErrShortOutput
	}
	var c Cipher
	if err := c.init(key, iv); err != nil {
		return err
	}
	c.XORKeyStream(dst, src)
	return nil
}
