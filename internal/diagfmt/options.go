package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int // строк контекста до и после
	ShowNotes bool
	// Origin names diagnostics whose span belongs to no file (table checks).
	Origin string
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool
	IncludeNotes     bool
	Max              int // обрезка вывода, Bag не трогаем
	Origin           string
}
