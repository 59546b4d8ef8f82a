package common

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logsink   zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	logger    *zap.Logger
	logline   uint64
	logMu     sync.RWMutex
	newlogger           = buildLogger

	// logInterceptor allows full screen front ends to hold back log lines
	// while they own the terminal. Returning true means the line is handled.
	logInterceptor func(message string) bool
)

func init() {
	logger = newlogger(logsink)
}

func buildLogger(sink zapcore.WriteSyncer) *zap.Logger {
	config := zapcore.EncoderConfig{
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if TraceFlag() {
		config.TimeKey = "time"
		config.EncodeTime = zapcore.TimeEncoderOfLayout("02.150405.000")
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), sink, zapcore.DebugLevel)
	return zap.New(core)
}

func resetLogger() {
	logMu.Lock()
	defer logMu.Unlock()
	logger = newlogger(logsink)
}

// SetLogOutput redirects log lines to given writer. Returns function which
// restores previous output.
func SetLogOutput(out io.Writer) func() {
	logMu.Lock()
	previous := logsink
	logsink = zapcore.AddSync(out)
	logger = newlogger(logsink)
	logMu.Unlock()
	return func() {
		logMu.Lock()
		logsink = previous
		logger = newlogger(logsink)
		logMu.Unlock()
	}
}

// SetLogInterceptor sets a function that intercepts log messages
// The interceptor receives the formatted log message and returns true if handled
// (preventing normal output). Return false to allow normal logging.
func SetLogInterceptor(interceptor func(message string) bool) {
	logMu.Lock()
	logInterceptor = interceptor
	logMu.Unlock()
}

// ClearLogInterceptor removes the current log interceptor
func ClearLogInterceptor() {
	logMu.Lock()
	logInterceptor = nil
	logMu.Unlock()
}

func printout(level zapcore.Level, message string) {
	logMu.Lock()
	defer logMu.Unlock()
	if logInterceptor != nil && logInterceptor(message) {
		return
	}
	logline += 1
	if LogLinenumbers && !TraceFlag() {
		message = fmt.Sprintf("%3d %s", logline, message)
	}
	if entry := logger.Check(level, message); entry != nil {
		entry.Write()
	}
}

// Replay writes log lines which were held back by an interceptor.
func Replay(messages ...string) {
	for _, message := range messages {
		printout(zapcore.InfoLevel, message)
	}
}

func Error(context string, err error) {
	if err != nil {
		Log("Error [%s]: %v", context, err)
	}
}

func Uncritical(context string, err error) {
	if err != nil {
		Log("Warning [%s; not critical]: %v", context, err)
	}
}

func Log(format string, details ...interface{}) {
	if !Silent() {
		prefix := ""
		if DebugFlag() || TraceFlag() {
			prefix = "[N] "
		}
		printout(zapcore.InfoLevel, fmt.Sprintf(prefix+format, details...))
	}
}

func Debug(format string, details ...interface{}) error {
	if DebugFlag() {
		printout(zapcore.DebugLevel, fmt.Sprintf("[D] "+format, details...))
	}
	return nil
}

func Trace(format string, details ...interface{}) error {
	if TraceFlag() {
		printout(zapcore.DebugLevel, fmt.Sprintf("[T] "+format, details...))
	}
	return nil
}

func WaitLogs() {
	logMu.RLock()
	defer logMu.RUnlock()
	logger.Sync()
}
