package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Timer collects phase durations for one file. Safe for concurrent use.
type Timer struct {
	mu     sync.Mutex
	phases []PhaseReport
}

func NewTimer() *Timer { return &Timer{} }

// Begin opens a phase; the returned func closes it with an optional note.
// Calling it twice keeps the first result.
func (t *Timer) Begin(name string) (end func(note string)) {
	t.mu.Lock()
	i := len(t.phases)
	t.phases = append(t.phases, PhaseReport{Name: name, Count: 1})
	t.mu.Unlock()

	started := time.Now()
	var once sync.Once
	return func(note string) {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			t.phases[i].DurationMS = millis(time.Since(started))
			t.phases[i].Note = note
		})
	}
}

// PhaseReport is one phase, or a sum of same-named phases.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// Report is what --timings prints and the batch result carries.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report snapshots the phases seen so far.
func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := Report{Phases: append([]PhaseReport(nil), t.phases...)}
	for _, p := range r.Phases {
		r.TotalMS += p.DurationMS
	}
	return r
}

// Sum folds reports together, merging phases by name in first-seen order.
func Sum(reports ...Report) Report {
	var out Report
	at := make(map[string]int)
	for _, r := range reports {
		out.TotalMS += r.TotalMS
		for _, p := range r.Phases {
			i, seen := at[p.Name]
			if !seen {
				i = len(out.Phases)
				at[p.Name] = i
				out.Phases = append(out.Phases, PhaseReport{Name: p.Name})
			}
			out.Phases[i].DurationMS += p.DurationMS
			out.Phases[i].Count += max(p.Count, 1)
		}
	}
	return out
}

// Summary renders the report as an aligned table.
func (r Report) Summary() string {
	var sb strings.Builder
	sb.WriteString("timings:\n")
	row := func(name string, ms float64, tail string) {
		fmt.Fprintf(&sb, "  %-20s %7.2f ms%s\n", name, ms, tail)
	}
	for _, p := range r.Phases {
		var tail string
		if p.Count > 1 {
			tail += fmt.Sprintf("  x%d", p.Count)
		}
		if p.Note != "" {
			tail += "  // " + p.Note
		}
		row(p.Name, p.DurationMS, tail)
	}
	row("total", r.TotalMS, "")
	return sb.String()
}

func millis(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
