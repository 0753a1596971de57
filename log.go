package glload

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger behind the default log handler. It writes
// console-encoded entries to stderr.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.TimeKey = ""
		logger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(enc),
			zapcore.Lock(zapcore.AddSync(os.Stderr)),
			zapcore.DebugLevel,
		))
	})
	return logger
}

// ZapSink adapts log to a handler for SetLogHandler.
func ZapSink(log *zap.Logger) func(string) {
	return func(msg string) {
		log.Warn(strings.TrimRight(msg, "\n"))
	}
}

func defaultLogHandler(msg string) {
	ZapSink(Logger())(msg)
}

// sink is swapped as a whole so the handler and the frozen flag never
// disagree.
type sink struct {
	fn     func(string)
	frozen bool
}

func (l *loader) setLogHandler(fn func(string)) bool {
	if fn == nil {
		fn = defaultLogHandler
	}
	for {
		cur := l.sink.Load()
		if cur != nil && cur.frozen {
			return false
		}
		if l.sink.CompareAndSwap(cur, &sink{fn: fn}) {
			return true
		}
	}
}

// handler returns the handler to deliver to and freezes it.
func (l *loader) handler() func(string) {
	for {
		cur := l.sink.Load()
		if cur == nil {
			l.sink.CompareAndSwap(nil, &sink{fn: defaultLogHandler})
			continue
		}
		if cur.frozen {
			return cur.fn
		}
		if l.sink.CompareAndSwap(cur, &sink{fn: cur.fn, frozen: true}) {
			return cur.fn
		}
	}
}

func (l *loader) logf(format string, args ...any) {
	l.handler()("glload: " + fmt.Sprintf(format, args...))
}

// SetLogHandler installs fn as the receiver of diagnostic messages; nil
// restores the default handler. The handler freezes when the first message
// is delivered; later calls return false and change nothing.
func SetLogHandler(fn func(string)) bool {
	return std.setLogHandler(fn)
}
