package rewrite

import (
	"fmt"
	"strings"
)

// Direction selects which way the table is applied.
type Direction uint8

const (
	// Forward replaces canonical spellings with alternates.
	Forward Direction = iota
	// Backward restores canonical spellings.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// ParseDirection accepts forward/transform and backward/reverse.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "transform":
		return Forward, nil
	case "backward", "reverse":
		return Backward, nil
	}
	return Forward, fmt.Errorf("unknown direction %q (want transform or reverse)", s)
}
