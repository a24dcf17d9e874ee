package trace

import (
	"fmt"
	"slices"
	"strings"
)

// Level controls how much of a run is recorded.
type Level uint8

const (
	LevelOff    Level = iota // nothing
	LevelError               // failures only
	LevelPhase               // driver and file spans
	LevelDetail              // plus pipeline stages
	LevelDebug               // plus point events
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", l)
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	i := slices.Index(levelNames[:], strings.ToLower(s))
	if i < 0 {
		return LevelOff, fmt.Errorf("invalid trace level %q (want %s)", s, strings.Join(levelNames[:], "|"))
	}
	return Level(i), nil
}

// covers reports whether spans of scope are recorded at l.
// Failures bypass it.
func (l Level) covers(scope Scope) bool {
	switch {
	case l <= LevelError:
		return false
	case l == LevelPhase:
		return scope <= ScopeFile
	case l == LevelDetail:
		return scope <= ScopeStage
	}
	return true
}
