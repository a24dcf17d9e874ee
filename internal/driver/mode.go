package driver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("unknown translation mode")

// Mode selects what happens between classification and reconstruction.
type Mode uint8

const (
	// ModeTransform replaces canonical spellings with alternates.
	ModeTransform Mode = iota
	// ModeReverse restores canonical spellings.
	ModeReverse
	// ModeAuto picks the direction from the spellings found in the file.
	ModeAuto
	// ModeFormat only classifies and reconstructs.
	ModeFormat
)

func (m Mode) String() string {
	switch m {
	case ModeTransform:
		return "transform"
	case ModeReverse:
		return "reverse"
	case ModeAuto:
		return "auto"
	case ModeFormat:
		return "format"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts the manifest spellings of a mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "transform", "forward":
		return ModeTransform, nil
	case "reverse", "backward":
		return ModeReverse, nil
	case "auto":
		return ModeAuto, nil
	case "format", "fmt":
		return ModeFormat, nil
	}
	return ModeTransform, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
