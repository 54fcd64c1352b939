package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/bitprim/bitprim-ci/internal/adapters/logger"
)

func newBuffered(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	lg, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("expected *logger.Logger")
	}
	var buf bytes.Buffer
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newBuffered(t)

	lg.Info("some message")

	if !strings.Contains(buf.String(), "some message") {
		t.Errorf("Expected output to contain 'some message', got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", buf.String())
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newBuffered(t)

	lg.Warn("some warning")

	if !strings.Contains(buf.String(), "WARN") {
		t.Errorf("Expected output to contain 'WARN', got: %s", buf.String())
	}
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBuffered(t)

	lg.Error(os.ErrPermission)

	if !strings.Contains(buf.String(), "permission denied") {
		t.Errorf("Expected output to contain 'permission denied', got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "ERROR") {
		t.Errorf("Expected output to contain 'ERROR', got: %s", buf.String())
	}
}
