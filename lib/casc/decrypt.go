// Package casc decrypts the individual frames of encrypted CASC archive
// files.
//
// Output buffers follow one convention: the capacity of dst is the space the
// caller provides, and the returned slice is the written prefix of dst.
// Input and output memory must not overlap.
package casc

import (
	"github.com/go-i2p/go-casc/lib/casc/frame"
	"github.com/go-i2p/go-casc/lib/casc/keys"
	"github.com/go-i2p/go-casc/lib/crypto/salsa20"
	"github.com/go-i2p/go-casc/lib/util"
	"github.com/go-i2p/go-casc/lib/util/logger"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

var log = logger.GetGoCascLogger()

// KeyStore resolves key names to keys.
type KeyStore interface {
	Lookup(name uint64) (keys.Key, bool)
}

// Decryptor decrypts frames with the keys of one KeyStore. It holds no
// mutable state and is safe for concurrent use.
type Decryptor struct {
	keys KeyStore
}

// NewDecryptor returns a Decryptor backed by store.
func NewDecryptor(store KeyStore) *Decryptor {
	return &Decryptor{keys: store}
}

var defaultDecryptor = NewDecryptor(keys.Builtin)

// Decrypt decrypts one frame with the built-in key table.
func Decrypt(dst, data []byte, frameIndex uint32) ([]byte, error) {
	return defaultDecryptor.Decrypt(dst, data, frameIndex)
}

// DirectCopy copies a frame that is stored without encryption.
func DirectCopy(dst, src []byte) ([]byte, error) {
	return defaultDecryptor.DirectCopy(dst, src)
}

// Decrypt parses the frame header in data, checks that cap(dst) can hold the
// payload, resolves the key and writes the plaintext to dst. frameIndex is
// the position of the frame within its file. Nothing is written to dst when
// an error is returned.
func (d *Decryptor) Decrypt(dst, data []byte, frameIndex uint32) ([]byte, error) {
	h, err := frame.Parse(data)
	if err != nil {
		return nil, err
	}
	payload := data[h.PayloadOffset:]

	if len(payload) > cap(dst) {
		if log.IsLevelEnabled(logrus.DebugLevel) {
			log.WithFields(logrus.Fields{
				"at":             "(Decryptor) Decrypt",
				"payload_length": len(payload),
				"capacity":       cap(dst),
			}).Debug("Output buffer too small")
		}
		return nil, oops.Wrapf(ErrInsufficientBuffer, "need %d bytes, have %d", len(payload), cap(dst))
	}

	key, ok := d.keys.Lookup(h.KeyName)
	if !ok {
		if log.IsLevelEnabled(logrus.DebugLevel) {
			log.WithFields(logrus.Fields{
				"at":       "(Decryptor) Decrypt",
				"key_name": keys.FormatName(h.KeyName),
			}).Debug("Frame key is unknown")
		}
		return nil, oops.Wrapf(ErrFileEncrypted, "key %s", keys.FormatName(h.KeyName))
	}

	iv := frame.DeriveIV(h.IV, frameIndex)

	switch h.Cipher {
	case frame.CipherSalsa20:
		out := dst[:len(payload)]
		if err := salsa20.XORKeyStream(out, payload, key[:], &iv); err != nil {
			return nil, err
		}
		// hot path: build fields only when they will be written
		if log.IsLevelEnabled(logrus.DebugLevel) {
			log.WithFields(logrus.Fields{
				"at":          "(Decryptor) Decrypt",
				"frame_index": frameIndex,
				"key_name":    keys.FormatName(h.KeyName),
				"length":      len(out),
			}).Debug("Frame decrypted")
		}
		return out, nil
	case frame.CipherReserved:
		return nil, oops.Wrapf(ErrNotSupported, "cipher marker %q has no implementation", h.Cipher)
	}

	util.Panicf("casc: frame.Parse accepted unknown cipher marker 0x%02X", h.Cipher)
	return nil, nil
}

// DirectCopy copies src to dst verbatim. The capacity check tolerates a
// source one byte longer than cap(dst); the returned slice is then grown by
// append and no longer shares dst's memory. An empty src copies nothing.
func (d *Decryptor) DirectCopy(dst, src []byte) ([]byte, error) {
	if len(src)-1 > cap(dst) {
		return nil, oops.Wrapf(ErrInsufficientBuffer, "need %d bytes, have %d", len(src), cap(dst))
	}
	return append(dst[:0], src...), nil
}
