package salsa20

import (
	"github.com/go-i2p/go-casc/lib/crypto/types"
	"github.com/samber/oops"
)

// Salsa20Key pairs a 16- or 32-byte key with an 8-byte IV.
type Salsa20Key struct {
	Key []byte
	IV  [IVSize]byte
}

var _ types.SymmetricKey = (*Salsa20Key)(nil)

// Len returns the length of the key
func (k *Salsa20Key) Len() int {
	return len(k.Key)
}

// Bytes returns the raw key
func (k *Salsa20Key) Bytes() []byte {
	return k.Key
}

func (k *Salsa20Key) validate() error {
	if len(k.Key) != KeySize16 && len(k.Key) != KeySize32 {
		return oops.Wrapf(ErrInvalidKeySize, "got %d bytes", len(k.Key))
	}
	return nil
}

// NewEncrypter creates a new Salsa20Encrypter
func (k *Salsa20Key) NewEncrypter() (types.Encrypter, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	return &Salsa20Encrypter{Key: k.Key, IV: k.IV}, nil
}

// NewDecrypter creates a new Salsa20Decrypter
func (k *Salsa20Key) NewDecrypter() (types.Decrypter, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	return &Salsa20Decrypter{Key: k.Key, IV: k.IV}, nil
}
