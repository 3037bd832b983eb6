// Package logging provides config-driven categorized file logging for Chronos.
// Each category writes to its own rotated file under the configured directory.
// Logging is controlled by debug_mode: when false, no files are created and
// every logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config, shutdown
	CategorySession Category = "session" // Interaction controller
	CategoryAPI     Category = "api"     // Completion service calls
	CategoryUI      Category = "ui"      // TUI events
)

// Options mirrors config.LoggingConfig to avoid an import cycle.
type Options struct {
	DebugMode  bool
	Level      string
	Dir        string
	JSONFormat bool
	Categories map[string]bool
}

// Logger is a category logger backed by zap.
type Logger struct {
	category Category
	zap      *zap.Logger
	sugar    *zap.SugaredLogger
	rotator  *lumberjack.Logger
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	opts      Options
	level     = zapcore.InfoLevel
	optsMu    sync.RWMutex
)

var nopLogger = zap.NewNop()

// Initialize applies o. Call once at startup, before the first Get.
func Initialize(o Options) error {
	CloseAll()

	parsed := zapcore.InfoLevel
	if o.Level != "" {
		l, err := zapcore.ParseLevel(o.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", o.Level, err)
		}
		parsed = l
	}

	optsMu.Lock()
	opts = o
	level = parsed
	optsMu.Unlock()

	if !o.DebugMode {
		return nil
	}
	if o.Dir == "" {
		return fmt.Errorf("logs directory required in debug mode")
	}
	if err := os.MkdirAll(o.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== Chronos logging initialized ===")
	boot.Info("Logs directory: %s", o.Dir)
	boot.Info("Log level: %s", parsed)
	if len(o.Categories) == 0 {
		boot.Info("All categories enabled (no category filter)")
	}
	for cat, enabled := range o.Categories {
		boot.Debug("Category '%s': %v", cat, enabled)
	}
	return nil
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	optsMu.RLock()
	defer optsMu.RUnlock()
	return opts.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	optsMu.RLock()
	defer optsMu.RUnlock()

	if !opts.DebugMode {
		return false
	}
	enabled, exists := opts.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode or the category is disabled.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) {
		return noop(category)
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}

	optsMu.RLock()
	dir, jsonFormat, lvl := opts.Dir, opts.JSONFormat, level
	optsMu.RUnlock()

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(dir, string(category)+".log"),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if jsonFormat {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(rotator), lvl)
	z := zap.New(core).With(zap.String("category", string(category)))

	l := &Logger{
		category: category,
		zap:      z,
		sugar:    z.Sugar(),
		rotator:  rotator,
	}
	loggers[category] = l
	return l
}

func noop(category Category) *Logger {
	return &Logger{category: category, zap: nopLogger, sugar: nopLogger.Sugar()}
}

// Zap exposes the structured logger for components that take a *zap.Logger.
func (l *Logger) Zap() *zap.Logger {
	return l.zap
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// CloseAll flushes and closes all open log files (call at shutdown)
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, l := range loggers {
		_ = l.zap.Sync()
		if l.rotator != nil {
			_ = l.rotator.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// LogPath returns the file a category writes to, or "" when it is disabled.
func LogPath(category Category) string {
	if !IsCategoryEnabled(category) {
		return ""
	}
	optsMu.RLock()
	defer optsMu.RUnlock()
	return filepath.Join(opts.Dir, string(category)+".log")
}

// =============================================================================
// CONVENIENCE FUNCTIONS
// =============================================================================

func Boot(format string, args ...interface{})      { Get(CategoryBoot).Info(format, args...) }
func BootError(format string, args ...interface{}) { Get(CategoryBoot).Error(format, args...) }
func Session(format string, args ...interface{})   { Get(CategorySession).Info(format, args...) }
func API(format string, args ...interface{})       { Get(CategoryAPI).Info(format, args...) }
func UI(format string, args ...interface{})        { Get(CategoryUI).Info(format, args...) }
func UIDebug(format string, args ...interface{})   { Get(CategoryUI).Debug(format, args...) }

// Timer tracks operation duration
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{category: category, op: operation, start: time.Now()}
}

// Stop ends the timer and logs the duration
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}

// StopWithThreshold logs warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warn("%s took %v (threshold: %v)", t.op, elapsed, threshold)
	} else {
		Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	}
	return elapsed
}
