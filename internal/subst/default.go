package subst

// BuiltinOrigin names the built-in table in diagnostics.
const BuiltinOrigin = "<builtin>"

// Встроенная таблица. Несколько альтернатив повторяются (sigma, swag,
// drip), а sigma-count не лексится как один идентификатор: обратный
// перевод для них теряет информацию, Validate об этом предупреждает.
var defaultKeywords = [...]Entry{
	{"if", "rizzing"},
	{"else", "sussy"},
	{"switch", "sigma"},
	{"case", "edge"},
	{"default", "drip"},
	{"break", "goon"},
	{"continue", "clap"},
	{"return", "mew"},
	{"goto", "yeet"},
	{"while", "ohio"},
	{"do", "diddy"},
	{"for", "grimace"},
	{"enum", "aura"},
	{"typedef", "swag"},
	{"long", "chungus"},
	{"unsigned", "glizzy"},
	{"signed", "gyatt"},
	{"short", "alpha"},
	{"int", "omega"},
	{"char", "blud"},
	{"double", "amongus"},
	{"float", "thug"},
	{"void", "fein"},
	{"volatile", "bussin"},
	{"const", "nocap"},
	{"register", "fortnite"},
	{"static", "cringe"},
	{"extern", "based"},
	{"union", "gang"},
	{"struct", "mafia"},
	{"sizeof", "hawktuah"},
	{"inline", "poggers"},
	{"auto", "sigma"},
	{"restrict", "yoinked"},
}

var defaultIdentifiers = [...]Entry{
	{"printf", "yap"},
	{"malloc", "grind"},
	{"free", "dip"},
	{"calloc", "grindset"},
	{"memcpy", "cap"},
	{"strlen", "measure"},
	{"strcpy", "cp"},
	{"strcat", "bro"},
	{"getchar", "snatch"},
	{"puts", "announce"},
	{"i", "rizz"},
	{"j", "swag"},
	{"k", "drip"},
	{"temp", "sus"},
	{"count", "sigma-count"},
	{"index", "gigachad"},
}

// Default returns a fresh copy of the built-in table.
func Default() *Table {
	t, err := New(defaultKeywords[:], defaultIdentifiers[:], Options{Origin: BuiltinOrigin})
	if err != nil {
		// non-strict construction never fails
		panic(err)
	}
	return t
}

// DefaultWith builds the built-in table with explicit options, e.g. to
// report its collisions or to reject them in strict mode.
func DefaultWith(opts Options) (*Table, error) {
	if opts.Origin == "" {
		opts.Origin = BuiltinOrigin
	}
	return New(defaultKeywords[:], defaultIdentifiers[:], opts)
}
