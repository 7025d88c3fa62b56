package testutils

import (
	"bytes"
	"log"
	"os"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/go-galley/galley/logger"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// CapturedLogs accumulates the messages written on logger.WarningLogger
// between CaptureLogs and one of the assertion methods.
type CapturedLogs struct {
	buf *bytes.Buffer
}

// CaptureLogs redirects the warning logger to an internal buffer.
// The logger is restored by the assertion methods.
func CaptureLogs() *CapturedLogs {
	out := CapturedLogs{buf: new(bytes.Buffer)}
	logger.WarningLogger.SetFlags(0)
	logger.WarningLogger.SetPrefix("")
	logger.WarningLogger.SetOutput(out.buf)
	return &out
}

func (c *CapturedLogs) restore() {
	logger.WarningLogger.SetOutput(os.Stdout)
	logger.WarningLogger.SetPrefix("galley.warning: ")
	logger.WarningLogger.SetFlags(log.Lmsgprefix)
}

// Logs restores the warning logger and returns the captured messages.
func (c *CapturedLogs) Logs() []string {
	c.restore()
	s := strings.TrimSuffix(c.buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (c *CapturedLogs) AssertNoLogs(t *testing.T) {
	t.Helper()
	if logs := c.Logs(); len(logs) != 0 {
		t.Fatalf("expected no logs, got (%d): \n %s", len(logs), strings.Join(logs, "\n "))
	}
}

func (c *CapturedLogs) CheckEqual(exp []string, t *testing.T) {
	t.Helper()
	got := c.Logs()
	AssertEqual(t, got, exp)
}

// CheckMatch asserts that each captured message contains the
// corresponding pattern, ignoring order.
func (c *CapturedLogs) CheckMatch(t *testing.T, patterns []string) {
	t.Helper()
	got := c.Logs()
	if len(got) != len(patterns) {
		t.Fatalf("expected %d logs, got %d: %v", len(patterns), len(got), got)
	}
	sort.Strings(got)
	sort.Strings(patterns)
	for i, p := range patterns {
		if !strings.Contains(got[i], p) {
			t.Fatalf("log %q does not match %q", got[i], p)
		}
	}
}
