// Package log leveled zap logger shared by the library and the CLI.
//
// Logs go to stderr by default, stdout is left to command output.
package log

import (
	"fmt"
	"math/rand"

	"github.com/Laisky/errors/v2"
	zap "github.com/Laisky/zap"
	"github.com/Laisky/zap/zapcore"
)

// SampleRateDenominator sample rate = sample / SampleRateDenominator
const SampleRateDenominator = 1000

// Shared logger of this module, library code only logs at debug level
var Shared Logger

// Level logger level
type Level string

func (l Level) String() string {
	return string(l)
}

const (
	// LevelDebug Logger level debug
	LevelDebug Level = "debug"
	// LevelInfo Logger level info
	LevelInfo Level = "info"
	// LevelWarn Logger level warn
	LevelWarn Level = "warn"
	// LevelError Logger level error
	LevelError Level = "error"
	// LevelFatal Logger level fatal
	LevelFatal Level = "fatal"
	// LevelPanic Logger level panic
	LevelPanic Level = "panic"
)

var zapLevels = map[Level]zapcore.Level{
	LevelDebug: zap.DebugLevel,
	LevelInfo:  zap.InfoLevel,
	LevelWarn:  zap.WarnLevel,
	LevelError: zap.ErrorLevel,
	LevelFatal: zap.FatalLevel,
	LevelPanic: zap.PanicLevel,
}

// LevelToZap convert Level to zapcore.Level
func LevelToZap(level Level) (zapcore.Level, error) {
	lvl, ok := zapLevels[level]
	if !ok {
		return 0, errors.Errorf("invalid level: %s", level)
	}

	return lvl, nil
}

// Logger zap logger with changeable level
type Logger interface {
	Debug(msg string, fields ...zapcore.Field)
	Info(msg string, fields ...zapcore.Field)
	Warn(msg string, fields ...zapcore.Field)
	Error(msg string, fields ...zapcore.Field)
	Panic(msg string, fields ...zapcore.Field)
	Fatal(msg string, fields ...zapcore.Field)
	Sync() error

	// Level current level, shared with parent and children
	Level() Level
	ChangeLevel(level Level) error
	// DebugSample emit debug log with probability sample/SampleRateDenominator
	DebugSample(sample int, msg string, fields ...zapcore.Field)
	Named(s string) Logger
	With(fields ...zapcore.Field) Logger
}

type logger struct {
	*zap.Logger

	// zap.Logger can not change its level,
	// keep the atomic level it was built with.
	level zap.AtomicLevel
}

// Encoding output format of logger
type Encoding string

const (
	// EncodingConsole human readable
	EncodingConsole Encoding = "console"
	// EncodingJSON one json object per line
	EncodingJSON Encoding = "json"
)

type option struct {
	zap.Config
	name string
}

func newOption() *option {
	o := &option{
		name: "app",
		Config: zap.Config{
			Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
			Encoding:         string(EncodingConsole),
			EncoderConfig:    zap.NewProductionEncoderConfig(),
			OutputPaths:      []string{"stderr"},
			ErrorOutputPaths: []string{"stderr"},
		},
	}
	o.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	o.EncoderConfig.MessageKey = "message"
	o.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	o.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return o
}

// Option optional arguments for New
type Option func(*option) error

// WithOutputPaths replace output paths, like "stdout" or a file path
func WithOutputPaths(paths ...string) Option {
	return func(o *option) error {
		if len(paths) == 0 {
			return errors.Errorf("output paths must not be empty")
		}

		o.OutputPaths = paths
		return nil
	}
}

// WithEncoding set logger encoding format
func WithEncoding(enc Encoding) Option {
	return func(o *option) error {
		switch enc {
		case EncodingConsole, EncodingJSON:
			o.Encoding = string(enc)
		default:
			return errors.Errorf("invalid encoding: %s", enc)
		}

		return nil
	}
}

// WithName set logger name
func WithName(name string) Option {
	return func(o *option) error {
		o.name = name
		return nil
	}
}

// WithLevel set logger level
func WithLevel(level Level) Option {
	return func(o *option) error {
		lvl, err := LevelToZap(level)
		if err != nil {
			return err
		}

		o.Level.SetLevel(lvl)
		return nil
	}
}

// New create new logger, console encoded to stderr at info level by default
func New(optfs ...Option) (Logger, error) {
	opt := newOption()
	for _, optf := range optfs {
		if err := optf(opt); err != nil {
			return nil, err
		}
	}

	zapLogger, err := opt.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build zap logger")
	}

	return &logger{
		Logger: zapLogger.Named(opt.name),
		level:  opt.Level,
	}, nil
}

func (l *logger) Level() Level {
	current := l.level.Level()
	for lvl, zl := range zapLevels {
		if zl == current {
			return lvl
		}
	}

	return Level(current.String())
}

// ChangeLevel change logger level
//
// all children loggers share the same level with their parent.
func (l *logger) ChangeLevel(level Level) error {
	lvl, err := LevelToZap(level)
	if err != nil {
		return err
	}

	l.level.SetLevel(lvl)
	l.Debug("set logger level", zap.String("level", level.String()))
	return nil
}

// DebugSample sample could be [0, 1000], less than 0 means never,
// greater than 1000 means always
func (l *logger) DebugSample(sample int, msg string, fields ...zapcore.Field) {
	if !l.level.Enabled(zap.DebugLevel) || rand.Intn(SampleRateDenominator) >= sample {
		return
	}

	l.Debug(msg, fields...)
}

func (l *logger) Named(s string) Logger {
	return &logger{
		Logger: l.Logger.Named(s),
		level:  l.level,
	}
}

func (l *logger) With(fields ...zapcore.Field) Logger {
	return &logger{
		Logger: l.Logger.With(fields...),
		level:  l.level,
	}
}

func init() {
	var err error
	if Shared, err = New(WithName("go-deque")); err != nil {
		panic(fmt.Sprintf("create logger: %+v", err))
	}
}
