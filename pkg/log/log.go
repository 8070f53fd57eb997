package log

import (
	"context"
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

const CtxRequestId = "requestId"

// InitLog configures the global logrus logger. Unknown levels fall back to
// info instead of failing startup.
func InitLog(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Errorf("unknown log level %q, using info: %v", logLevel, err)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(true)
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		DisableColors:   true,
		DisableQuote:    true,
		CallerPrettyfier: func(frame *runtime.Frame) (string, string) {
			return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
		},
	})
}

// GetLogger returns an entry carrying the request id from ctx when present.
func GetLogger(ctx context.Context) *logrus.Entry {
	if v := ctx.Value(CtxRequestId); v != nil {
		return logrus.WithField(CtxRequestId, v)
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// NewLogger returns an entry on the standard logger, for code with no
// request context.
func NewLogger() *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger())
}
