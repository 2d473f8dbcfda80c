package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rainwise/rainwise/internal/pkg/models"
)

// ZapLogger is our application logger that writes to stdout and optionally to
// a log file.
type ZapLogger struct {
	*zap.Logger
	filePath string
	file     *os.File
}

// InitZapLoggerFromConfig creates a ZapLogger from application configuration
func InitZapLoggerFromConfig(cfg *models.Config) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Logger.Format {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}

	var file *os.File
	if cfg.Logger.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Logger.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err = os.OpenFile(cfg.Logger.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		syncers = append(syncers, zapcore.AddSync(file))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(syncers...), level)

	zapLogger := zap.New(core,
		zap.AddCaller(),
		zap.Fields(
			zap.String("app", cfg.App.Name),
			zap.String("environment", cfg.App.Environment),
		),
	)

	logger := &ZapLogger{
		Logger:   zapLogger,
		filePath: cfg.Logger.FilePath,
		file:     file,
	}

	SetGlobalLogger(logger)
	return logger, nil
}

// Close flushes buffered log entries and closes the log file if one is open
func (l *ZapLogger) Close() {
	_ = l.Sync()
	if l.file != nil {
		_ = l.file.Close()
	}
}
