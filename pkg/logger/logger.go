package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Development environments get the
// console encoder, everything else emits JSON.
func New(environment, level string) (*zap.Logger, error) {
	return build(environment, level, "stdout")
}

// NewStderr is New writing to stderr, for tools whose stdout carries output
func NewStderr(environment, level string) (*zap.Logger, error) {
	return build(environment, level, "stderr")
}

func build(environment, level, output string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if environment == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
