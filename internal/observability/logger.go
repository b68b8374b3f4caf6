package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the surface services depend on; the zap logger built by
// NewLogger satisfies it through the sugared adapter below.
type Logger interface {
	Info(msg string)
	Error(msg string)
}

type zapAdapter struct {
	sugar *zap.SugaredLogger
}

func (l *zapAdapter) Info(msg string)  { l.sugar.Info(msg) }
func (l *zapAdapter) Error(msg string) { l.sugar.Error(msg) }

func NewLogger() Logger {
	cfg := zap.Config{
		Encoding:         "json",
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "msg",
			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
			TimeKey:     "time",
			EncodeTime:  zapcore.RFC3339TimeEncoder,
		},
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return &zapAdapter{sugar: logger.Sugar()}
}
