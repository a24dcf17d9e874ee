package dialect

// Kind is the spelling a file appears to use.
type Kind uint8

const (
	Unknown Kind = iota
	Canonical
	Alternate

	kindCount
)

var kindNames = [kindCount]string{"unknown", "canonical", "alternate"}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return kindNames[Unknown]
}
