package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"brainrot/internal/diag"
	"brainrot/internal/observ"
	"brainrot/internal/source"
	"brainrot/internal/trace"
)

// errFileHasErrors marks a translated file whose diagnostics include errors.
var errFileHasErrors = errors.New("file has error diagnostics")

// Batch is the outcome of TranslatePaths. Results keep the input order.
type Batch struct {
	RunID   string
	FileSet *source.FileSet
	Results []*Result
	Timing  observ.Report
}

// HasErrors reports whether any file produced an error diagnostic.
func (b *Batch) HasErrors() bool {
	for _, r := range b.Results {
		if r != nil && r.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// OutputPath is where a translated file lands inside outDir.
func OutputPath(outDir, input string) string {
	return filepath.Join(outDir, filepath.Base(input))
}

// TranslatePaths translates several files in parallel, bounded by opts.Jobs.
// Files that fail to load or write get an IO diagnostic instead of failing
// the batch; only cancellation and setup errors are returned.
func TranslatePaths(ctx context.Context, paths []string, opts Options) (*Batch, error) {
	opts = opts.withDefaults()
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}

	if opts.OutDir != "" {
		seen := make(map[string]string, len(paths))
		for _, p := range paths {
			out := OutputPath(opts.OutDir, p)
			if prev, dup := seen[out]; dup {
				return nil, fmt.Errorf("%s and %s would both be written to %s", prev, p, out)
			}
			seen[out] = p
		}
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	ctx, span := trace.Start(ctx, trace.ScopeDriver, "translate-batch")
	span.WithExtra("run", opts.RunID).WithExtra("files", fmt.Sprint(len(paths)))
	defer span.End("")

	// Создаём FileSet и предзагружаем все файлы
	fileSet := source.NewFileSet()
	fileIDs := make([]source.FileID, len(paths))
	loadErrors := make([]error, len(paths))
	for i, path := range paths {
		notify(opts.Progress, path, StepQueued)
		fileIDs[i], loadErrors[i] = fileSet.Load(path)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]*Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(min(jobs, len(paths)), 1))

	for i, path := range paths {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			started := time.Now()

			if loadErr := loadErrors[i]; loadErr != nil {
				results[i] = loadFailure(path, loadErr, opts.MaxDiagnostics)
				trace.Failure(gctx, "load", loadErr)
				notifyFinal(opts.Progress, path, loadErr, started)
				return nil
			}

			res, err := translateFile(gctx, fileSet, fileSet.Get(fileIDs[i]), path, opts)
			if err != nil {
				notifyFinal(opts.Progress, path, err, started)
				return err
			}
			if opts.OutDir != "" {
				notify(opts.Progress, path, StepWrite)
				writeOutput(res, OutputPath(opts.OutDir, path))
			}
			results[i] = res

			var failed error
			if res.Bag.HasErrors() {
				failed = errFileHasErrors
			}
			notifyFinal(opts.Progress, path, failed, started)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	reports := make([]observ.Report, 0, len(results))
	for _, r := range results {
		reports = append(reports, r.Timing)
	}
	return &Batch{
		RunID:   opts.RunID,
		FileSet: fileSet,
		Results: results,
		Timing:  observ.Sum(reports...),
	}, nil
}

func loadFailure(path string, err error, maxDiagnostics int) *Result {
	bag := diag.NewBag(maxDiagnostics)
	// Empty span for I/O errors: путь в сообщении
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: ^source.FileID(0)},
		fmt.Sprintf("failed to load %s: %v", path, err)))
	return &Result{Path: path, Bag: bag}
}

// WriteOutput writes output plus a trailing newline to path.
func WriteOutput(path, output string) error {
	data := []byte(output)
	if len(data) > 0 {
		data = append(data, '\n')
	}
	// #nosec G306 -- translated sources are meant to be readable
	return os.WriteFile(path, data, 0o644)
}

func writeOutput(res *Result, path string) {
	if err := WriteOutput(path, res.Output); err != nil {
		diag.ReportError(diag.BagReporter{Bag: res.Bag}, diag.IOWriteFileError, source.Span{File: res.File.ID},
			fmt.Sprintf("failed to write %s: %v", path, err)).Emit()
		return
	}
	res.OutPath = path
}
