package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trip-planner/config"
)

const serviceName = "trip-planner"

// New builds the service logger: sampled JSON on stdout in prod, colourised
// console output in every other environment. Unknown LOG_LEVEL values fall
// back to info.
func New(cfg *config.Config) (*zap.Logger, error) {
	return buildConfig(cfg).Build(zap.Fields(
		zap.String("service", serviceName),
		zap.String("env", cfg.Server.Env),
	))
}

func buildConfig(cfg *config.Config) zap.Config {
	level := parseLevel(cfg.Log.Level)

	if cfg.Server.Env == config.PROD_ENV {
		encoder := zap.NewProductionEncoderConfig()
		encoder.TimeKey = "ts"
		encoder.EncodeTime = zapcore.ISO8601TimeEncoder
		return zap.Config{
			Level:             zap.NewAtomicLevelAt(level),
			Encoding:          "json",
			EncoderConfig:     encoder,
			Sampling:          &zap.SamplingConfig{Initial: 100, Thereafter: 100},
			DisableStacktrace: level > zapcore.DebugLevel,
			OutputPaths:       []string{"stdout"},
			ErrorOutputPaths:  []string{"stderr"},
		}
	}

	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoder.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      level == zapcore.DebugLevel,
		Encoding:         "console",
		EncoderConfig:    encoder,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}
