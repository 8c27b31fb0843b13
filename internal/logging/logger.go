package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level and encoding of the logger.
type Config struct {
	Level  string
	Format string
}

// LevelOff disables logging entirely.
const LevelOff = "off"

// NewLogger builds a zap logger that writes to w. Use a stderr writer so
// logs never mix with rendered output.
func NewLogger(cfg Config, w io.Writer) (*zap.Logger, error) {
	if cfg.Level == LevelOff {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	enc, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core).Named("reminders"), nil
}

// newEncoder creates JSON or console encoder.
func newEncoder(format string) (zapcore.Encoder, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	switch format {
	case "console", "":
		return zapcore.NewConsoleEncoder(encoderCfg), nil
	case "json":
		return zapcore.NewJSONEncoder(encoderCfg), nil
	}
	return nil, fmt.Errorf("format must be 'json' or 'console', got %q", format)
}
