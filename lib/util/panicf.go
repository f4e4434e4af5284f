package util

import (
	"fmt"
)

// Panicf reports a broken internal invariant. It is reserved for states the
// callers make unreachable; malformed input is always an error return.
func Panicf(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	log.WithField("at", "util.Panicf").Error(s)
	panic(s)
}
