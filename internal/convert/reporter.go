package convert

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Reporter receives human-readable progress messages. Messages are
// advisory; conversion never depends on them.
type Reporter interface {
	Status(message string)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(message string)

// Status calls f(message)
func (f ReporterFunc) Status(message string) {
	f(message)
}

type writerReporter struct {
	w io.Writer
}

// WriterReporter prints every message on its own line to w
func WriterReporter(w io.Writer) Reporter {
	return writerReporter{w: w}
}

func (r writerReporter) Status(message string) {
	fmt.Fprintln(r.w, message)
}

type logReporter struct {
	log *zap.Logger
}

// LogReporter logs every message at info level
func LogReporter(log *zap.Logger) Reporter {
	return logReporter{log: log}
}

func (r logReporter) Status(message string) {
	r.log.Info(message)
}

type multiReporter []Reporter

// MultiReporter forwards every message to all reporters, skipping nil ones
func MultiReporter(reporters ...Reporter) Reporter {
	var m multiReporter
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

func (m multiReporter) Status(message string) {
	for _, r := range m {
		r.Status(message)
	}
}

type discardReporter struct{}

func (discardReporter) Status(string) {}
