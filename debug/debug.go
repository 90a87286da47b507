package debug

import (
	"os"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type debug struct {
	Log   bool
	Parse bool
	Diff  bool
	Merge bool
	Path  bool
}

var (
	d      *debug
	logger atomic.Pointer[zap.SugaredLogger]
)

func init() {
	d = &debug{}
	d.Log = boolEnv("O_DEBUG_LOG")
	d.Parse = boolEnv("O_DEBUG_PARSE")
	d.Diff = boolEnv("O_DEBUG_DIFF")
	d.Merge = boolEnv("O_DEBUG_MERGE")
	d.Path = boolEnv("O_DEBUG_PATH")
	if d.Log || d.Parse || d.Diff || d.Merge || d.Path {
		logger.Store(NewLogger(zapcore.DebugLevel).Sugar())
	} else {
		logger.Store(zap.NewNop().Sugar())
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}
func Merge() bool {
	return d.Merge
}
func Path() bool {
	return d.Path
}

// Log returns the shared logger.  It discards everything unless one of
// the O_DEBUG_* variables is set or SetLogger installed another logger.
func Log() *zap.SugaredLogger {
	return logger.Load()
}

// SetLogger replaces the shared logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l.Sugar())
}

// NewLogger returns a console logger writing to stderr at the given
// level, without timestamps.
func NewLogger(level zapcore.Level) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	enc := zapcore.NewConsoleEncoder(cfg)
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}
