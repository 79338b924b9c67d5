package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"visionserver/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log file names, one per level.
const (
	InfoFile    = "info.log"
	WarningFile = "warning.log"
	ErrorFile   = "error.log"
)

// Logger provides leveled logging (info/warning/error) to files and stdout/stderr.
type Logger struct {
	sugar  *zap.SugaredLogger
	files  []*os.File
	logDir string
	mu     sync.Mutex
}

// NewLogger creates a Logger and ensures the log directory exists.
// An empty LogDirectory logs to the console only.
func NewLogger(cfg *config.Config) (*Logger, error) {
	minLevel := zapcore.InfoLevel
	if err := minLevel.Set(cfg.LogLevel); err != nil && cfg.LogLevel != "" {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), levelRange(minLevel, zapcore.WarnLevel)),
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), levelRange(maxLevel(minLevel, zapcore.ErrorLevel), zapcore.FatalLevel)),
	}

	l := &Logger{logDir: cfg.LogDirectory}

	if cfg.LogDirectory != "" {
		if err := os.MkdirAll(cfg.LogDirectory, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		perLevel := []struct {
			name   string
			lo, hi zapcore.Level
		}{
			{InfoFile, zapcore.InfoLevel, zapcore.InfoLevel},
			{WarningFile, zapcore.WarnLevel, zapcore.WarnLevel},
			{ErrorFile, zapcore.ErrorLevel, zapcore.FatalLevel},
		}
		for _, pl := range perLevel {
			file, err := l.openLogFile(filepath.Join(cfg.LogDirectory, pl.name))
			if err != nil {
				l.Close()
				return nil, err
			}
			l.files = append(l.files, file)
			cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.Lock(file), levelRange(maxLevel(minLevel, pl.lo), pl.hi)))
		}
	}

	l.sugar = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
	return l, nil
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// openLogFile opens or creates a log file for appending.
func (l *Logger) openLogFile(filename string) (*os.File, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", filename, err)
	}
	return file, nil
}

// Info writes a formatted info-level log entry.
func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Warning writes a formatted warning-level log entry.
func (l *Logger) Warning(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

// Error writes a formatted error-level log entry.
func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Dir returns the directory holding the per-level log files, or "" when file logging is off.
func (l *Logger) Dir() string {
	return l.logDir
}

// CleanLogs truncates the specified log file.
func (l *Logger) CleanLogs(fileName string) error {
	if l.logDir == "" {
		return fmt.Errorf("file logging is disabled")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	filePath := filepath.Join(l.logDir, fileName)
	if err := os.Truncate(filePath, 0); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", fileName, err)
	}

	l.Info("Log file %s has been cleared", fileName)
	return nil
}

// Close flushes buffered entries and closes the log files.
func (l *Logger) Close() error {
	if l.sugar != nil {
		_ = l.sugar.Sync()
	}
	var firstErr error
	for _, f := range l.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.files = nil
	return firstErr
}

func levelRange(lo, hi zapcore.Level) zap.LevelEnablerFunc {
	return func(lvl zapcore.Level) bool {
		return lvl >= lo && lvl <= hi
	}
}

func maxLevel(a, b zapcore.Level) zapcore.Level {
	if a > b {
		return a
	}
	return b
}
