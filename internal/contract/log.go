package contract

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// exitFunc terminates the process after a fatal log.
var exitFunc = os.Exit

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(NewLogger(zapcore.Lock(os.Stderr), false))
}

// NewLogger builds a console logger for diagnostics. Output carries no timestamps
// so it reads like regular CLI messages; verbose enables debug entries.
func NewLogger(ws zapcore.WriteSyncer, verbose bool) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), ws, level))
}

// Logger returns the process-wide diagnostic logger.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the process-wide logger and returns the previous one.
func SetLogger(l *zap.Logger) *zap.Logger {
	return logger.Swap(l)
}

// ConfigureLogging points the logger at stderr with the requested verbosity.
func ConfigureLogging(verbose bool) {
	SetLogger(NewLogger(zapcore.Lock(os.Stderr), verbose))
}

func errorField(err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.Error(err)
}
