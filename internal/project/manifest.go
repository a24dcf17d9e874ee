package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	ErrInvalidMode   = errors.New("invalid [translate].mode")
	ErrInvalidIndent = errors.New("invalid [format].indent")
	ErrManifestExist = errors.New("brainrot.toml already exists")
)

// Manifest is a parsed brainrot.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the manifest sections.
type Config struct {
	Table     TableConfig     `toml:"table"`
	Format    FormatConfig    `toml:"format"`
	Translate TranslateConfig `toml:"translate"`
}

// TableConfig selects the substitution table.
type TableConfig struct {
	// Path to a .toml/.yaml table, relative to the manifest. Empty means built-in.
	Path   string `toml:"path"`
	Strict bool   `toml:"strict"`
}

// FormatConfig controls the printer.
type FormatConfig struct {
	Indent int  `toml:"indent"`
	Tabs   bool `toml:"tabs"`
}

// TranslateConfig holds defaults for the translate command.
type TranslateConfig struct {
	// Mode: "transform", "reverse", "auto" or empty.
	Mode   string `toml:"mode"`
	OutDir string `toml:"out_dir"`
	Jobs   int    `toml:"jobs"`
	Cache  bool   `toml:"cache"`
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %s", path, undecoded[0].String())
	}
	cfg.Translate.Mode = strings.ToLower(strings.TrimSpace(cfg.Translate.Mode))
	switch cfg.Translate.Mode {
	case "", "transform", "reverse", "auto":
	default:
		return nil, fmt.Errorf("%s: %w: %q (expected transform|reverse|auto)", path, ErrInvalidMode, cfg.Translate.Mode)
	}
	if meta.IsDefined("format", "indent") && (cfg.Format.Indent < 1 || cfg.Format.Indent > 16) {
		return nil, fmt.Errorf("%s: %w: %d (expected 1..16)", path, ErrInvalidIndent, cfg.Format.Indent)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// LoadFromDir finds and parses the manifest above startDir.
// ok is false when there is no manifest.
func LoadFromDir(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := Load(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// TablePath resolves [table].path against the manifest directory.
func (m *Manifest) TablePath() string {
	if m == nil {
		return ""
	}
	p := strings.TrimSpace(m.Config.Table.Path)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, filepath.FromSlash(p))
}

// OutDir resolves [translate].out_dir against the manifest directory.
func (m *Manifest) OutDir() string {
	if m == nil {
		return ""
	}
	p := strings.TrimSpace(m.Config.Translate.OutDir)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, filepath.FromSlash(p))
}

const manifestTemplate = `# brainrot project settings

[table]
# path = "table.toml"   # .toml or .yaml; built-in table when empty
strict = false

[format]
indent = 4

[translate]
mode = "transform"       # transform | reverse | auto
# out_dir = "out"
jobs = 0                 # 0 = number of CPUs
cache = false
`

// Init writes a default brainrot.toml into dir.
func Init(dir string, force bool) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s: %w", path, ErrManifestExist)
	}
	if err := os.WriteFile(path, []byte(manifestTemplate), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
