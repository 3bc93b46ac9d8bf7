package channel

import (
	"fmt"
	"strings"
)

// Right is an access level on a channel's messages.
type Right int

const (
	Read Right = iota + 1
	Write
)

func (r Right) String() string {
	switch r {
	case Read:
		return "READ"
	case Write:
		return "WRITE"
	default:
		return fmt.Sprintf("Right(%d)", int(r))
	}
}

// Valid reports whether r is READ or WRITE.
func (r Right) Valid() bool {
	return r == Read || r == Write
}

// ParseRight accepts "read" or "write" in any case.
func ParseRight(s string) (Right, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "READ":
		return Read, nil
	case "WRITE":
		return Write, nil
	default:
		return 0, fmt.Errorf("unknown channel right %q", s)
	}
}
