package log

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"mangamarc/src/internal/config"
)

// Logger is a no-op until Init runs so library code and tests can log freely.
var Logger = zap.NewNop()

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

// Init replaces Logger with one built from opts.
func Init(opts *config.Options) {
	Logger = NewLogger(opts)
}

// Sync flushes buffered entries; errors from syncing a terminal are ignored.
func Sync() {
	_ = Logger.Sync()
}

// NewLogger writes human-readable entries to stderr and, when a log file is
// configured, JSON entries to a rotating file.
func NewLogger(opts *config.Options) *zap.Logger {
	if opts == nil {
		opts = config.GetDefaultOptions()
	}
	level := parseLevel(opts.LogLevel)

	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(encodeConfig), zapcore.AddSync(os.Stderr), level)
	if opts.LogFile == "" {
		return zap.New(consoleCore, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	rotationLog := &lumberjack.Logger{
		Filename:   opts.LogFile,
		MaxSize:    opts.LogFileMaxSize, // megabytes
		MaxBackups: opts.LogFileMaxBackups,
		MaxAge:     opts.LogFileMaxAge, // days
		Compress:   opts.LogCompress,
	}
	return newZap(consoleCore, rotationLog, level)
}

func newZap(consoleCore zapcore.Core, rotationLog *lumberjack.Logger, level zapcore.Level) *zap.Logger {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	rotationCore := zapcore.NewCore(zapcore.NewJSONEncoder(encodeConfig), zapcore.AddSync(rotationLog), level)

	core := zapcore.NewTee(consoleCore, rotationCore)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
