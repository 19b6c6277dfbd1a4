// Package logger wires zap for the sweep trace and the demo app. Lines are
// console-encoded with coloured levels; the buffered variant can render its
// log as HTML for the web page.
package logger

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	log    *zap.Logger
	mu     sync.Mutex
	logBuf *bytes.Buffer
}

// New returns a logger that keeps every line at level or above in memory.
func New(level zapcore.Level) *ZapLogger {
	z := &ZapLogger{logBuf: &bytes.Buffer{}}
	z.log = build(zapcore.AddSync(lockedWriter{z}), level)
	return z
}

// NewConsole returns a logger writing straight to w.
func NewConsole(w io.Writer, level zapcore.Level) *ZapLogger {
	return &ZapLogger{log: build(zapcore.AddSync(w), level)}
}

func build(ws zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

type lockedWriter struct{ z *ZapLogger }

func (w lockedWriter) Write(p []byte) (int, error) {
	w.z.mu.Lock()
	defer w.z.mu.Unlock()
	return w.z.logBuf.Write(p)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m" // Default
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiColor = regexp.MustCompile(`\033\[(\d+)m`)

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// ansiToHTML replaces ANSI colour codes with inline-styled spans inside a
// <pre> block. Text between codes is escaped.
func ansiToHTML(input string) string {
	var result strings.Builder
	open := false
	last := 0

	result.WriteString("<pre>")
	for _, match := range ansiColor.FindAllStringSubmatchIndex(input, -1) {
		result.WriteString(htmlEscape(input[last:match[0]]))
		last = match[1]

		code := input[match[2]:match[3]]
		if open {
			result.WriteString("</span>")
			open = false
		}
		if color, ok := colorMap[code]; ok {
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		}
	}
	result.WriteString(htmlEscape(input[last:]))
	if open {
		result.WriteString("</span>")
	}
	result.WriteString("</pre>")
	return result.String()
}

var htmlEscape = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace

// Zap exposes the underlying logger, e.g. for voronoi.WithLogger.
func (z *ZapLogger) Zap() *zap.Logger { return z.log }

// HTML renders the buffered log. It is empty for console loggers.
func (z *ZapLogger) HTML() string {
	if z.logBuf == nil {
		return ""
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return ansiToHTML(z.logBuf.String())
}

func (z *ZapLogger) ClearLogs() {
	if z.logBuf == nil {
		return
	}
	z.mu.Lock()
	z.logBuf.Reset()
	z.mu.Unlock()
}

func (z *ZapLogger) Info(msg string, fields ...zap.Field)  { z.log.Info(msg, fields...) }
func (z *ZapLogger) Debug(msg string, fields ...zap.Field) { z.log.Debug(msg, fields...) }
func (z *ZapLogger) Warn(msg string, fields ...zap.Field)  { z.log.Warn(msg, fields...) }
func (z *ZapLogger) Error(msg string, fields ...zap.Field) { z.log.Error(msg, fields...) }
