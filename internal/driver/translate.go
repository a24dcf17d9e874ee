package driver

import (
	"context"
	"fmt"

	"brainrot/internal/diag"
	"brainrot/internal/dialect"
	"brainrot/internal/format"
	"brainrot/internal/lexer"
	"brainrot/internal/observ"
	"brainrot/internal/rewrite"
	"brainrot/internal/source"
	"brainrot/internal/token"
	"brainrot/internal/trace"
)

// Result is the outcome of translating one file.
type Result struct {
	Path    string
	FileSet *source.FileSet
	File    *source.File

	// Tokens is the classifier output, trivia included. Empty on a cache hit.
	Tokens []token.Token
	// Rewritten has the same length as Tokens.
	Rewritten []token.Token
	Output    string

	Mode      Mode
	Direction rewrite.Direction
	// Applied is false in format mode and when auto mode found nothing
	// to decide on.
	Applied bool
	Dialect dialect.Classification
	Changed int

	Bag     *diag.Bag
	Timing  observ.Report
	Cached  bool
	OutPath string
}

// TranslateSource translates one in-memory buffer. name is used in diagnostics.
func TranslateSource(ctx context.Context, name string, content []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	normalized, flags := source.Normalize(content)
	id := fs.Add(name, normalized, flags|source.FileVirtual)
	return translateFile(ctx, fs, fs.Get(id), name, opts.withDefaults())
}

// Translate loads path from disk and translates it.
func Translate(ctx context.Context, path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return translateFile(ctx, fs, fs.Get(id), path, opts.withDefaults())
}

// path is the name the caller knows the file by; progress events and
// Result.Path use it. opts must already carry defaults.
func translateFile(ctx context.Context, fs *source.FileSet, file *source.File, path string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, span := trace.Start(ctx, trace.ScopeFile, "translate")
	span.WithExtra("file", file.Path).WithExtra("mode", opts.Mode.String())

	timer := observ.NewTimer()
	res := &Result{
		Path:    path,
		FileSet: fs,
		File:    file,
		Mode:    opts.Mode,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	defer func() {
		res.Timing = timer.Report()
		span.WithExtra("cached", fmt.Sprint(res.Cached))
		span.End(fmt.Sprintf("%d changed", res.Changed))
	}()

	var key CacheKey
	if opts.Cache != nil {
		key = KeyFor(file.Hash, opts.Table.Digest(), opts.Mode, opts.Format)
		if lookupCache(ctx, opts.Cache, key, res, timer) {
			return res, nil
		}
	}

	notify(opts.Progress, path, StepLex)
	res.Tokens = runStage(ctx, timer, "lex", func() ([]token.Token, string) {
		toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: res.Bag}})
		return toks, fmt.Sprintf("%d tokens", len(toks))
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch opts.Mode {
	case ModeTransform:
		res.Direction, res.Applied = rewrite.Forward, true
	case ModeReverse:
		res.Direction, res.Applied = rewrite.Backward, true
	case ModeAuto:
		end := timer.Begin("dialect")
		res.Direction, res.Applied = chooseDirection(res, opts)
		end(res.Dialect.Kind.String())
	case ModeFormat:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, opts.Mode)
	}

	res.Rewritten = res.Tokens
	if res.Applied {
		notify(opts.Progress, path, StepRewrite)
		res.Rewritten = runStage(ctx, timer, "rewrite", func() ([]token.Token, string) {
			out := rewrite.Apply(res.Tokens, opts.Table, res.Direction)
			res.Changed = rewrite.Changed(res.Tokens, out)
			return out, res.Direction.String()
		})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	notify(opts.Progress, path, StepFormat)
	endFormat := timer.Begin("format")
	_, fspan := trace.Start(ctx, trace.ScopeStage, "format")
	res.Output = format.Render(res.Rewritten, opts.Format)
	fspan.End("")
	endFormat("")

	if opts.Cache != nil {
		storeCache(ctx, opts.Cache, key, res)
	}
	return res, nil
}

func runStage(ctx context.Context, timer *observ.Timer, name string, fn func() ([]token.Token, string)) []token.Token {
	end := timer.Begin(name)
	_, span := trace.Start(ctx, trace.ScopeStage, name)
	toks, note := fn()
	span.End(note)
	end(note)
	return toks
}

// chooseDirection classifies the file and reports a mixed dialect.
// ok is false when the evidence does not pick a side.
func chooseDirection(res *Result, opts Options) (rewrite.Direction, bool) {
	ev := dialect.Collect(res.Tokens, opts.Table)
	cls := dialect.Classifier{}.Classify(ev)
	res.Dialect = cls

	dir, ok := cls.Direction()
	if !ok {
		msg := "no canonical or alternate spellings found; output left untranslated"
		if cls.ObservedSignals > 0 {
			msg = "canonical and alternate spellings are equally frequent; output left untranslated"
		}
		diag.ReportInfo(diag.BagReporter{Bag: res.Bag}, diag.DlcInfo, source.Span{File: res.File.ID}, msg).Emit()
		return dir, false
	}

	if cls.Mixed() {
		minority, _ := ev.First(cls.RunnerUp)
		majority, _ := ev.First(cls.Kind)
		msg := fmt.Sprintf("file mixes canonical and alternate spellings (%.0f%% %s); translating %s",
			cls.Confidence*100, cls.Kind, dir)
		diag.ReportWarning(diag.BagReporter{Bag: res.Bag}, diag.DlcMixed, minority.Span, msg).
			WithNote(minority.Span, minority.Reason+" is "+cls.RunnerUp.String()).
			WithNote(majority.Span, majority.Reason+" is "+cls.Kind.String()).
			Emit()
	}
	return dir, true
}

func lookupCache(ctx context.Context, cache *DiskCache, key CacheKey, res *Result, timer *observ.Timer) bool {
	defer timer.Begin("cache")("lookup")

	var payload CachePayload
	hit, err := cache.Get(key, &payload)
	if err != nil {
		trace.Failure(ctx, "cache.get", err)
		diag.ReportWarning(diag.BagReporter{Bag: res.Bag}, diag.IOCacheError, source.Span{File: res.File.ID},
			"failed to read translation cache: "+err.Error()).Emit()
		return false
	}
	if !hit {
		trace.Point(ctx, "cache.miss", key.String())
		return false
	}
	trace.Point(ctx, "cache.hit", key.String())

	res.Cached = true
	res.Output = payload.Output
	res.Direction = rewrite.Direction(payload.Direction)
	res.Applied = payload.Applied
	res.Changed = payload.Changed
	restoreDiagnostics(res.Bag, res.File.ID, payload.Diagnostics)
	return true
}

func storeCache(ctx context.Context, cache *DiskCache, key CacheKey, res *Result) {
	payload := &CachePayload{
		Output:      res.Output,
		Direction:   uint8(res.Direction),
		Applied:     res.Applied,
		Changed:     res.Changed,
		Diagnostics: cachedDiagnostics(res.Bag),
	}
	if err := cache.Put(key, payload); err != nil {
		trace.Failure(ctx, "cache.put", err)
		diag.ReportWarning(diag.BagReporter{Bag: res.Bag}, diag.IOCacheError, source.Span{File: res.File.ID},
			"failed to write translation cache: "+err.Error()).Emit()
	}
}
