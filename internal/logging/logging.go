// Package logging builds the zap logger used across the bridge.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a logger. In dev mode it uses the console encoder at debug
// level; otherwise JSON at info level. When logFile is non-empty, output is
// teed to a size-rotated file in addition to stdout.
func New(dev bool, logFile string) (*zap.Logger, error) {
	if logFile == "" {
		if dev {
			return zap.NewDevelopment()
		}
		return zap.NewProduction()
	}

	level := zapcore.InfoLevel
	encoderCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderCfg)
	if dev {
		level = zapcore.DebugLevel
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	rotated := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	sink := zapcore.NewMultiWriteSyncer(
		zapcore.AddSync(os.Stdout),
		zapcore.AddSync(rotated),
	)

	core := zapcore.NewCore(encoder, sink, level)
	return zap.New(core, zap.AddCaller()), nil
}
