// Package salsa20 implements the Salsa20/20 stream cipher used to protect
// encrypted CASC frames, including the "expand 16-byte k" key schedule that
// golang.org/x/crypto/salsa20 does not expose.
package salsa20

import (
	"errors"

	"github.com/go-i2p/go-casc/lib/util/logger"
)

var log = logger.GetGoCascLogger()

// Sizes
const (
	KeySize16 = 16 // 128-bit key, "expand 16-byte k"
	KeySize32 = 32 // 256-bit key, "expand 32-byte k"
	IVSize    = 8
	BlockSize = 64
	Rounds    = 20
)

var (
	sigma = [16]byte{'e', 'x', 'p', 'a', 'n', 'd', ' ', '3', '2', '-', 'b', 'y', 't', 'e', ' ', 'k'}
	tau   = [16]byte{'e', 'x', 'p', 'a', 'n', 'd', ' ', '1', '6', '-', 'b', 'y', 't', 'e', ' ', 'k'}
)

// Error definitions
var (
	ErrInvalidKeySize = errors.New("invalid Salsa20 key size")
	ErrShortOutput    = errors.New("salsa20: output smaller than input")
)
