package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"

	"github.com/buildforge/forge/internal/adapters/logger"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("building target android to out.apk")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "building target android to out.apk")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("scene manifest is empty")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "scene manifest is empty")
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.New("disk full"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "disk full")
}
