package trace

import (
	"fmt"
	"time"
)

// Kind is what an event marks.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
	KindFailure
)

var kindNames = [...]string{KindBegin: "begin", KindEnd: "end", KindPoint: "point", KindFailure: "failure"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// MarshalText writes the name into NDJSON output.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Scope is the granularity of a span; smaller is coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // one CLI command
	ScopeFile                    // one input file
	ScopeStage                   // lex, rewrite, format
)

var scopeNames = [...]string{ScopeDriver: "driver", ScopeFile: "file", ScopeStage: "stage"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return fmt.Sprintf("scope(%d)", s)
}

func (s Scope) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Event is one trace record. Seq and Run are stamped by the writer.
type Event struct {
	Time   time.Time         `json:"time"`
	Seq    uint64            `json:"seq"`
	Run    string            `json:"run,omitempty"`
	Kind   Kind              `json:"kind"`
	Scope  Scope             `json:"scope"`
	Span   uint64            `json:"span_id,omitempty"`
	Parent uint64            `json:"parent_id,omitempty"`
	Name   string            `json:"name"`
	Detail string            `json:"detail,omitempty"`
	Extra  map[string]string `json:"extra,omitempty"`
}
