package casc

import (
	"github.com/go-i2p/go-casc/lib/casc/frame"
	"github.com/go-i2p/go-casc/lib/casc/keys"
	"github.com/go-i2p/go-casc/lib/crypto/salsa20"
	"github.com/samber/oops"
)

// EncryptFrame builds a complete frame: the encoded header h followed by
// plaintext encrypted for position frameIndex. It is the inverse of
// Decrypt and exists for tooling and tests; archives are never written here.
func EncryptFrame(store KeyStore, h frame.Header, frameIndex uint32, plaintext []byte) ([]byte, error) {
	if h.Cipher != frame.CipherSalsa20 {
		return nil, oops.Wrapf(ErrNotSupported, "cannot encrypt with cipher marker %q", h.Cipher)
	}
	key, ok := store.Lookup(h.KeyName)
	if !ok {
		return nil, oops.Wrapf(ErrFileEncrypted, "key %s", keys.FormatName(h.KeyName))
	}

	sk := &salsa20.Salsa20Key{Key: key[:], IV: frame.DeriveIV(h.IV, frameIndex)}
	enc, err := sk.NewEncrypter()
	if err != nil {
		return nil, err
	}
	ciphertext, err := enc.Encrypt(plaintext)
	if err != nil {
		return nil, err
	}
	return append(h.Bytes(), ciphertext...), nil
}
