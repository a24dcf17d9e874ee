package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"sync"
	"time"
)

// Format is the on-disk shape of events.
type Format uint8

const (
	FormatAuto Format = iota
	FormatText
	FormatNDJSON
)

// Writer serializes events onto an io.Writer behind a buffer.
type Writer struct {
	mu     sync.Mutex
	dst    io.Writer
	buf    *bufio.Writer
	enc    *json.Encoder
	level  Level
	format Format
	run    string
	seq    uint64
	start  time.Time
}

func NewWriter(w io.Writer, level Level, format Format) *Writer {
	buf := bufio.NewWriter(w)
	return &Writer{
		dst:    w,
		buf:    buf,
		enc:    json.NewEncoder(buf),
		level:  level,
		format: format,
		start:  time.Now(),
	}
}

func (w *Writer) Level() Level { return w.level }

func (w *Writer) Emit(ev *Event) {
	if ev == nil || (ev.Kind != KindFailure && ev.Kind != KindPoint && !w.level.covers(ev.Scope)) {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seq++
	ev.Seq = w.seq
	if ev.Run == "" {
		ev.Run = w.run
	}
	// ошибки записи трассы не должны ронять перевод
	if w.format == FormatNDJSON {
		_ = w.enc.Encode(ev) //nolint:errcheck
		return
	}
	w.writeText(ev)
}

var kindMarks = [...]string{KindBegin: "→", KindEnd: "←", KindPoint: "•", KindFailure: "✗"}

// writeText: [elapsed] [indent]mark name (detail) {k=v, ...}
func (w *Writer) writeText(ev *Event) {
	elapsed := max(ev.Time.Sub(w.start), 0)
	fmt.Fprintf(w.buf, "[%9.3fms] ", float64(elapsed.Microseconds())/1000)
	if ev.Parent != 0 {
		w.buf.WriteString("  ")
	}
	if int(ev.Kind) < len(kindMarks) {
		w.buf.WriteString(kindMarks[ev.Kind] + " ")
	}
	w.buf.WriteString(ev.Name)
	if ev.Detail != "" {
		fmt.Fprintf(w.buf, " (%s)", ev.Detail)
	}
	for i, k := range slices.Sorted(maps.Keys(ev.Extra)) {
		sep := ", "
		if i == 0 {
			sep = " {"
		}
		fmt.Fprintf(w.buf, "%s%s=%s", sep, k, ev.Extra[k])
	}
	if len(ev.Extra) > 0 {
		w.buf.WriteByte('}')
	}
	w.buf.WriteByte('\n')
}

// Close flushes the buffer; files are synced and closed, stderr is left open.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.buf.Flush(); err != nil {
		return err
	}
	f, ok := w.dst.(*os.File)
	if !ok || f == os.Stderr || f == os.Stdout {
		return nil
	}
	if err := f.Sync(); err != nil {
		return err
	}
	return f.Close()
}
