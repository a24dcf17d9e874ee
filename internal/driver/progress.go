package driver

import "time"

// Step is how far one file of a batch has got. Steps only move forward;
// StepDone and StepFailed are final.
type Step uint8

const (
	StepQueued Step = iota
	StepLex
	StepRewrite
	StepFormat
	StepWrite
	StepDone
	StepFailed
)

var stepNames = [...]string{
	StepQueued:  "queued",
	StepLex:     "lexing",
	StepRewrite: "rewriting",
	StepFormat:  "formatting",
	StepWrite:   "writing",
	StepDone:    "done",
	StepFailed:  "failed",
}

func (s Step) String() string {
	if int(s) < len(stepNames) {
		return stepNames[s]
	}
	return "unknown"
}

// Finished reports a final step.
func (s Step) Finished() bool { return s >= StepDone }

// Event reports that the file at Path (as passed to the batch) reached Step.
// Err and Elapsed are set on final steps only.
type Event struct {
	Path    string
	Step    Step
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Batch workers call it concurrently.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel; the receiver must keep up
// or workers block.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(ev Event) { f(ev) }

func notify(sink ProgressSink, path string, step Step) {
	if sink != nil {
		sink.OnEvent(Event{Path: path, Step: step})
	}
}

func notifyFinal(sink ProgressSink, path string, err error, started time.Time) {
	if sink == nil {
		return
	}
	step := StepDone
	if err != nil {
		step = StepFailed
	}
	sink.OnEvent(Event{Path: path, Step: step, Err: err, Elapsed: time.Since(started)})
}
