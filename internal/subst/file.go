package subst

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// Format is a table file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat = errors.New("unknown table format")
	ErrUnknownKeys   = errors.New("unknown keys in table file")
)

// ParseFormat accepts "toml", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// tableFile is the on-disk layout:
//
//	[[keywords]]
//	from = "if"
//	to = "rizzing"
type tableFile struct {
	Keywords    []Entry `toml:"keywords" yaml:"keywords"`
	Identifiers []Entry `toml:"identifiers" yaml:"identifiers"`
}

// Load reads a table file, choosing the decoder by extension.
func Load(path string, opts Options) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	if opts.Origin == "" {
		opts.Origin = path
	}
	t, err := Decode(bytes.NewReader(data), format, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Decode parses a table from r.
func Decode(r io.Reader, format Format, opts Options) (*Table, error) {
	var tf tableFile
	switch format {
	case FormatTOML:
		meta, err := toml.NewDecoder(r).Decode(&tf)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
		if err := dec.Decode(&tf); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return New(tf.Keywords, tf.Identifiers, opts)
}

// Encode writes the table in the given format.
func (t *Table) Encode(w io.Writer, format Format) error {
	tf := tableFile{Keywords: t.keywords, Identifiers: t.identifiers}
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(tf); err != nil {
			return fmt.Errorf("encode TOML: %w", err)
		}
		return nil
	case FormatYAML:
		payload, err := yaml.Marshal(tf)
		if err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		_, err = w.Write(payload)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
