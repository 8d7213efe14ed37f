// internal/cycle/errcode.go
package cycle

import (
	"errors"

	"golang.org/x/sys/unix"
)

// errorCode extracts a best-effort uint16 code from an error without assuming concrete types.
// Errno values pass through; anything else that does not expose a code returns 1 (generic error).
func errorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	var errno unix.Errno
	if errors.As(err, &errno) && errno != 0 && uint64(errno) <= 0xffff {
		return uint16(errno)
	}

	type coder interface{ Code() uint16 }

	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}

	return 1
}
