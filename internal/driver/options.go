package driver

import (
	"brainrot/internal/format"
	"brainrot/internal/subst"
)

// Options configures a translation.
type Options struct {
	Mode Mode
	// Table is shared read-only between workers. nil means subst.Default().
	Table  *subst.Table
	Format format.Options

	// MaxDiagnostics caps the diagnostics kept per file; <= 0 keeps all, so
	// every unknown character gets its own line.
	MaxDiagnostics int
	// Jobs bounds TranslatePaths; <= 0 means GOMAXPROCS.
	Jobs int
	// OutDir, when set, makes TranslatePaths write every output there.
	OutDir string
	// RunID tags batch trace events; generated when empty.
	RunID string

	Cache    *DiskCache
	Progress ProgressSink
}

func (o Options) withDefaults() Options {
	if o.Table == nil {
		o.Table = subst.Default()
	}
	if o.Format.Cues.Return == nil && o.Format.Cues.Typedef == nil && o.Format.Cues.IntType == nil {
		// вывод может содержать обе формы написания
		o.Format.Cues = format.CuesFor(o.Table)
	}
	return o
}
