package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kailas-cloud/gamerec/internal/version"
)

// EnvCLI configures a terse console logger for gamerec-cli, whose stdout is
// reserved for JSON output.
const EnvCLI = "cli"

// NewLogger creates the gamerec zap logger for the given environment.
//
//	prod             JSON to stderr, info and above
//	local/dev/docker colored console, debug and above
//	cli              console without time or caller, warn and above
//
// levelOverride (if non-empty) replaces the default level: debug, info, warn, error.
// Service loggers carry the build version on every line.
func NewLogger(env string, levelOverride ...string) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case "prod":
		cfg = zap.NewProductionConfig()
	case "local", "dev", "docker":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case EnvCLI:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.DisableCaller = true
		cfg.DisableStacktrace = true
		cfg.EncoderConfig.TimeKey = ""
		cfg.OutputPaths = []string{"stderr"}
	default:
		return nil, fmt.Errorf("unknown environment %q for logger", env)
	}

	if len(levelOverride) > 0 && levelOverride[0] != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(levelOverride[0])); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", levelOverride[0], err)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	var opts []zap.Option
	if env != EnvCLI {
		opts = append(opts,
			zap.AddStacktrace(zapcore.ErrorLevel),
			zap.Fields(zap.String("version", version.Version)),
		)
	}
	l, err := cfg.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.Named("gamerec"), nil
}
