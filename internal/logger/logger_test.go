package logger

import (
	"bytes"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&CustomFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return l, &buf
}

func TestCustomFormatter(t *testing.T) {
	l, buf := newBufferedLogger()

	l.WithFields(logrus.Fields{"b": 2, "a": 1, "caller": "insight.go:42"}).Warn("邮件发送失败")

	out := buf.String()
	assert.Contains(t, out, "[WARN] [insight.go:42] 邮件发送失败 a=1 b=2\n")
}

func TestCustomFormatter_TruncatesLevel(t *testing.T) {
	l, buf := newBufferedLogger()
	l.Error("boom")
	assert.Contains(t, buf.String(), "[ERRO]")
}

func TestKratosLogger(t *testing.T) {
	l, buf := newBufferedLogger()
	helper := log.NewHelper(NewKratosLogger(l))

	helper.Infow("msg", "已启动", "addr", ":8000")
	assert.Contains(t, buf.String(), "[INFO] [] 已启动 addr=:8000")

	buf.Reset()
	helper.Debugf("收到提交: %s", "{}")
	assert.Contains(t, buf.String(), "[DEBU] [] 收到提交: {}")
}

func TestKratosLogger_UnpairedKeyvals(t *testing.T) {
	l, buf := newBufferedLogger()
	_ = NewKratosLogger(l).Log(log.LevelError, "lonely")
	assert.Contains(t, buf.String(), "lonely=KEYVALS UNPAIRED")
}

func TestInitLogger_CreatesLogDir(t *testing.T) {
	dir := t.TempDir()
	err := InitLogger("debug", dir+"/logs/insight.log")
	assert.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	assert.FileExists(t, dir+"/logs/insight.log")

	err = InitLogger("not-a-level", "")
	assert.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
