package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"brainrot/internal/diag"
	"brainrot/internal/format"
	"brainrot/internal/source"
)

// bump when CachePayload changes shape
const cacheSchemaVersion uint16 = 1

// CacheKey identifies one rendered output.
type CacheKey [sha256.Size]byte

func (k CacheKey) String() string { return hex.EncodeToString(k[:]) }

// KeyFor mixes everything that influences the rendered text.
func KeyFor(content [32]byte, tableDigest string, mode Mode, opt format.Options) CacheKey {
	h := sha256.New()
	h.Write(content[:])
	fmt.Fprintf(h, "\x00%s\x00%d\x00%t\x00%d", tableDigest, mode, opt.UseTabs, opt.IndentWidth)
	return CacheKey(h.Sum(nil))
}

// CachePayload is one cache entry.
type CachePayload struct {
	Schema    uint16
	Output    string
	Direction uint8
	Applied   bool
	Changed   int
	// без заметок и FileID, файл подставляется при чтении
	Diagnostics []CachedDiagnostic
}

type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Start    uint32
	End      uint32
	Message  string
}

// DiskCache хранит готовый вывод по хешу содержимого, таблицы и режима.
// Entries are replaced by rename, so concurrent readers see whole files.
type DiskCache struct {
	dir string
}

// OpenDiskCache opens app's directory under os.UserCacheDir
// ($XDG_CACHE_HOME or ~/.cache on Linux).
func OpenDiskCache(app string) (*DiskCache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(filepath.Join(dir, "out"), 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) path(key CacheKey) string {
	return filepath.Join(c.dir, "out", key.String()+".mp")
}

// Put stores payload under key. A nil cache stores nothing.
func (c *DiskCache) Put(key CacheKey, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	payload.Schema = cacheSchemaVersion
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return err
	}
	dst := c.path(key)
	tmp, err := os.CreateTemp(filepath.Dir(dst), "tmp-*")
	if err != nil {
		return err
	}
	_, err = tmp.Write(data)
	err = errors.Join(err, tmp.Close())
	if err == nil {
		err = os.Rename(tmp.Name(), dst)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
	}
	return err
}

// Get loads the entry for key into out. Entries of another schema are misses.
func (c *DiskCache) Get(key CacheKey, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	data, err := os.ReadFile(c.path(key))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, err
	}
	return out.Schema == cacheSchemaVersion, nil
}

func cachedDiagnostics(bag *diag.Bag) []CachedDiagnostic {
	var out []CachedDiagnostic
	for _, d := range bag.Items() {
		out = append(out, CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		})
	}
	return out
}

func restoreDiagnostics(bag *diag.Bag, file source.FileID, cached []CachedDiagnostic) {
	for _, cd := range cached {
		sp := source.Span{File: file, Start: cd.Start, End: cd.End}
		bag.Add(diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code), sp, cd.Message))
	}
}
