package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestAnsiToHTML(t *testing.T) {
	in := "\033[32minfo\033[0m a < b\n\033[31merror\033[0m done"
	assert.Equal(t,
		`<pre><span style="color: green;">info</span> a &lt; b`+"\n"+`<span style="color: red;">error</span> done</pre>`,
		ansiToHTML(in))
	assert.Equal(t, "<pre>plain</pre>", ansiToHTML("plain"))
	assert.Equal(t, `<pre><span style="color: cyan;">open</span></pre>`, ansiToHTML("\033[36mopen"))
}

func TestBufferedLogger(t *testing.T) {
	log := New(zapcore.InfoLevel)
	log.Debug("hidden")
	log.Info("[f] Алгоритм запущен", zap.Int("sites", 3))
	log.Warn("careful")

	html := log.HTML()
	assert.Contains(t, html, "[f] Алгоритм запущен")
	assert.Contains(t, html, `"sites": 3`)
	assert.Contains(t, html, `<span style="color: yellow;">warn</span>`)
	assert.NotContains(t, html, "hidden")

	log.ClearLogs()
	assert.Equal(t, "<pre></pre>", log.HTML())
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, zapcore.DebugLevel)
	log.Zap().Debug("traced", zap.String("k", "v"))

	assert.Contains(t, buf.String(), "traced")
	assert.Contains(t, buf.String(), "\033[36mdebug\033[0m")
	assert.Empty(t, log.HTML())
	log.ClearLogs()
}
