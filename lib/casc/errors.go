package casc

import (
	"errors"

	"github.com/go-i2p/go-casc/lib/casc/frame"
)

var (
	ErrFileCorrupt        = frame.ErrFileCorrupt
	ErrNotSupported       = frame.ErrNotSupported
	ErrInsufficientBuffer = errors.New("output buffer too small for frame payload")
	ErrFileEncrypted      = errors.New("frame is encrypted with an unknown key")
)

// Status is the result code of a frame operation.
type Status int

const (
	Success Status = iota
	FileCorrupt
	NotSupported
	InsufficientBuffer
	FileEncrypted
	// Unknown covers errors outside the frame taxonomy, such as a
	// cancelled context.
	Unknown
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case FileCorrupt:
		return "FileCorrupt"
	case NotSupported:
		return "NotSupported"
	case InsufficientBuffer:
		return "InsufficientBuffer"
	case FileEncrypted:
		return "FileEncrypted"
	default:
		return "Unknown"
	}
}

// StatusOf maps an error returned by this package to its Status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrFileCorrupt):
		return FileCorrupt
	case errors.Is(err, ErrNotSupported):
		return NotSupported
	case errors.Is(err, ErrInsufficientBuffer):
		return InsufficientBuffer
	case errors.Is(err, ErrFileEncrypted):
		return FileEncrypted
	default:
		return Unknown
	}
}
