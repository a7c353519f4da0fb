package cmd

import (
	"bytes"
	"errors"
	"regexp"
	"testing"
)

type readerFunc func() (float64, error)

func (f readerFunc) Seconds() (float64, error) { return f() }

func TestPrintUptime(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{name: "zero", seconds: 0, expected: "System Uptime: 0d 0h 0m 0s\n"},
		{name: "one of each", seconds: 90061.7, expected: "System Uptime: 1d 1h 1m 1s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := printUptime(&buf, readerFunc(func() (float64, error) { return tt.seconds, nil }))
			if err != nil {
				t.Fatalf("printUptime failed: %v", err)
			}
			if got := buf.String(); got != tt.expected {
				t.Errorf("printUptime wrote %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPrintUptimePropagatesReaderError(t *testing.T) {
	failure := errors.New("read failed")
	var buf bytes.Buffer
	err := printUptime(&buf, readerFunc(func() (float64, error) { return 0, failure }))
	if !errors.Is(err, failure) {
		t.Errorf("printUptime error = %v, want %v", err, failure)
	}
	if buf.Len() != 0 {
		t.Errorf("printUptime wrote %q on failure, want nothing", buf.String())
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"unexpected"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err == nil {
		t.Error("Execute() with a positional argument succeeded, want error")
	}
}

func TestRootCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Skipf("uptime unavailable on this host: %v", err)
	}
	if !regexp.MustCompile(`^System Uptime: \d+d \d+h \d+m \d+s\n$`).MatchString(buf.String()) {
		t.Errorf("unexpected output %q", buf.String())
	}
	t.Logf("output: %s", buf.String())
}

func TestVersionCommand(t *testing.T) {
	original := CurrentVersion
	defer func() { CurrentVersion = original }()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	CurrentVersion = "1.2.3"
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if got := buf.String(); got != "komari-uptime 1.2.3\n" {
		t.Errorf("version wrote %q", got)
	}

	buf.Reset()
	rootCmd.SetArgs([]string{"version"})
	CurrentVersion = "not-a-version"
	if err := rootCmd.Execute(); err == nil {
		t.Error("version with an invalid version succeeded, want error")
	}
}

func TestNewLogger(t *testing.T) {
	l := newLogger()
	if l == nil {
		t.Fatal("newLogger() returned nil")
	}
	l.Debug("debug messages are dropped at info level")
}
