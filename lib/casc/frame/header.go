// Package frame decodes the self-describing header that precedes the
// ciphertext of an encrypted CASC frame.
package frame

/*
Encrypted frame header
All integers are little endian.

+----+----//----+----+----//----+----+----//
|kns | key name |ivs |   iv     |type| ciphertext
+----+----//----+----+----//----+----+----//

kns :: key name size, 1 byte, 0 or 8
key name :: kns bytes, zero extended to 64 bits
ivs :: iv size, 1 byte, 4 or 8
iv :: ivs bytes, zero padded on the right to 8 bytes
type :: cipher marker, 1 byte, 'S' or 'A'
ciphertext :: everything after the header
*/

import (
	"errors"

	"github.com/go-i2p/go-casc/lib/util/logger"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

var log = logger.GetGoCascLogger()

// Cipher markers
const (
	CipherSalsa20 = 'S'
	// CipherReserved is accepted by Parse but has no implementation;
	// casc.Decrypt rejects frames carrying it with ErrNotSupported.
	CipherReserved = 'A'
)

// Field sizes
const (
	KeyNameSizeNone = 0
	KeyNameSize     = 8
	IVSizeShort     = 4
	IVSize          = 8
)

var (
	// ErrFileCorrupt reports a header that ends before its declared fields.
	ErrFileCorrupt = errors.New("frame header is truncated")
	// ErrNotSupported reports a size or marker byte outside the known set.
	ErrNotSupported = errors.New("frame header variant not supported")
)

// Header is a decoded frame header.
type Header struct {
	KeyNameSize   int
	KeyName       uint64
	IVSize        int
	IV            [IVSize]byte
	Cipher        byte
	PayloadOffset int
}

// Parse decodes the header at the start of data. Every variable-length field
// must be followed by at least one more byte; only the cipher marker may be
// the last byte of data, leaving an empty payload.
func Parse(data []byte) (Header, error) {
	var h Header
	end := len(data)
	pos := 0

	if pos >= end {
		return h, corrupt(data, pos, "missing key name size")
	}
	h.KeyNameSize = int(data[pos])
	if h.KeyNameSize != KeyNameSizeNone && h.KeyNameSize != KeyNameSize {
		return h, unsupported(pos, "key name size", data[pos])
	}
	pos++

	if pos+h.KeyNameSize >= end {
		return h, corrupt(data, pos, "truncated key name")
	}
	for i := h.KeyNameSize - 1; i >= 0; i-- {
		h.KeyName = h.KeyName<<8 | uint64(data[pos+i])
	}
	pos += h.KeyNameSize

	if pos >= end {
		return h, corrupt(data, pos, "missing iv size")
	}
	h.IVSize = int(data[pos])
	if h.IVSize != IVSizeShort && h.IVSize != IVSize {
		return h, unsupported(pos, "iv size", data[pos])
	}
	pos++

	if pos+h.IVSize >= end {
		return h, corrupt(data, pos, "truncated iv")
	}
	copy(h.IV[:], data[pos:pos+h.IVSize])
	pos += h.IVSize

	if pos >= end {
		return h, corrupt(data, pos, "missing cipher marker")
	}
	h.Cipher = data[pos]
	if h.Cipher != CipherSalsa20 && h.Cipher != CipherReserved {
		return h, unsupported(pos, "cipher marker", data[pos])
	}
	pos++

	h.PayloadOffset = pos
	return h, nil
}

// Bytes serialises the header; Parse is its inverse. The size fields must
// hold values Parse accepts.
func (h *Header) Bytes() []byte {
	b := make([]byte, 0, 3+h.KeyNameSize+h.IVSize)
	b = append(b, byte(h.KeyNameSize))
	for i := 0; i < h.KeyNameSize; i++ {
		b = append(b, byte(h.KeyName>>(8*i)))
	}
	b = append(b, byte(h.IVSize))
	b = append(b, h.IV[:h.IVSize]...)
	b = append(b, h.Cipher)
	return b
}

// Len returns the encoded header length.
func (h *Header) Len() int {
	return 3 + h.KeyNameSize + h.IVSize
}

// NewSalsa20Header builds a header naming an 8-byte key and a 4- or 8-byte IV.
func NewSalsa20Header(keyName uint64, iv []byte) (Header, error) {
	if len(iv) != IVSizeShort && len(iv) != IVSize {
		return Header{}, oops.Wrapf(ErrNotSupported, "iv size %d", len(iv))
	}
	h := Header{
		KeyNameSize: KeyNameSize,
		KeyName:     keyName,
		IVSize:      len(iv),
		Cipher:      CipherSalsa20,
	}
	copy(h.IV[:], iv)
	h.PayloadOffset = h.Len()
	return h, nil
}

func corrupt(data []byte, pos int, reason string) error {
	log.WithFields(logrus.Fields{
		"at":          "frame.Parse",
		"data_length": len(data),
		"offset":      pos,
		"reason":      reason,
	}).Debug("Corrupt frame header")
	return oops.Wrapf(ErrFileCorrupt, "%s at offset %d of %d", reason, pos, len(data))
}

func unsupported(pos int, field string, value byte) error {
	log.WithFields(logrus.Fields{
		"at":     "frame.Parse",
		"offset": pos,
		"field":  field,
		"value":  value,
	}).Debug("Unsupported frame header value")
	return oops.Wrapf(ErrNotSupported, "%s 0x%02X at offset %d", field, value, pos)
}
