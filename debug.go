package zug

import (
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
)

var (
	traceLock   sync.Mutex
	traceFlag   uint32
	traceLogger = logr.Discard()
)

// SetLogger installs a logger that reports what the package is doing:
// composition building, characterization, checking, and binding at
// verbosity 1, individual fold steps at verbosity 2.  Tracing is off
// until a logger is installed; SetLogger(logr.Discard()) turns it off
// again.
func SetLogger(l logr.Logger) {
	traceLock.Lock()
	defer traceLock.Unlock()
	traceLogger = l
	if l.GetSink() == nil {
		atomic.StoreUint32(&traceFlag, 0)
	} else {
		atomic.StoreUint32(&traceFlag, 1)
	}
}

// traceEnabled is checked before building key/value lists so that
// disabled tracing costs one atomic load.
func traceEnabled() bool {
	return atomic.LoadUint32(&traceFlag) == 1
}

func trace(msg string, keysAndValues ...any) {
	if !traceEnabled() {
		return
	}
	traceLock.Lock()
	l := traceLogger
	traceLock.Unlock()
	l.V(1).Info(msg, keysAndValues...)
}

func traceCall(msg string, keysAndValues ...any) {
	if !traceEnabled() {
		return
	}
	traceLock.Lock()
	l := traceLogger
	traceLock.Unlock()
	l.V(2).Info(msg, keysAndValues...)
}
