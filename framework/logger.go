package framework

import (
	"fmt"
	"io"
	"sync"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldlog"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used by the clients and the test scope. It is a
// subset of ldlog.BaseLogger.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger accumulates messages for a single test so they can be shown at the end of it.
// It is also an ldlog.BaseLogger, so process-level loggers can be pointed at it.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

var _ ldlog.BaseLogger = (*CapturingLogger)(nil)

// Loggers returns ldlog loggers that write into this CapturingLogger.
func (l *CapturingLogger) Loggers(minLevel ldlog.LogLevel) ldlog.Loggers {
	loggers := ldlog.NewDefaultLoggers()
	loggers.SetBaseLogger(l)
	loggers.SetMinLevel(minLevel)
	return loggers
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.append(fmt.Sprintf(message, args...))
}

func (l *CapturingLogger) Println(values ...interface{}) {
	l.append(fmt.Sprint(values...))
}

func (l *CapturingLogger) append(message string) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: message})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append([]CapturedMessage(nil), l.output...)
	l.lock.Unlock()
	return ret
}

func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			m.Message,
		)
	}
}
