package format

// Options configures the printer.
type Options struct {
	IndentWidth int
	UseTabs     bool
	// Cues lists the spellings that drive the typedef and spacing
	// heuristics. Zero value means canonical C spellings only.
	Cues Cues
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	if o.Cues.empty() {
		o.Cues = DefaultCues()
	}
	return o
}

// Cues are spelling sets for the keywords the printer treats specially.
type Cues struct {
	Return  map[string]struct{}
	Typedef map[string]struct{}
	IntType map[string]struct{}
}

// Alternates looks up the alternate spelling of a keyword.
// *subst.Table satisfies it.
type Alternates interface {
	Keyword(word string) (string, bool)
}

// DefaultCues knows only the canonical spellings.
func DefaultCues() Cues {
	return CuesFor(nil)
}

// CuesFor builds cues from canonical spellings plus the alternates from alt.
func CuesFor(alt Alternates) Cues {
	set := func(word string) map[string]struct{} {
		m := map[string]struct{}{word: {}}
		if alt != nil {
			if a, ok := alt.Keyword(word); ok {
				m[a] = struct{}{}
			}
		}
		return m
	}
	return Cues{
		Return:  set("return"),
		Typedef: set("typedef"),
		IntType: set("int"),
	}
}

func (c Cues) empty() bool {
	return c.Return == nil && c.Typedef == nil && c.IntType == nil
}

func has(set map[string]struct{}, s string) bool {
	_, ok := set[s]
	return ok
}
