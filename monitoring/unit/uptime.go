package monitoring

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Platform identifies how the seconds since boot are obtained on a host.
type Platform int

const (
	PlatformUnsupported Platform = iota
	// PlatformTickCounter asks the kernel for its millisecond tick counter (Windows).
	PlatformTickCounter
	// PlatformProcFile reads /proc/uptime (Linux).
	PlatformProcFile
	// PlatformSysctl queries kern.boottime through sysctl(8) (macOS).
	PlatformSysctl
)

const (
	procUptimePath = "/proc/uptime"
	bootTimeKey    = "kern.boottime"
)

var (
	ErrTickCounterUnavailable = errors.New("tick counter unavailable")
	ErrMalformedUptime        = errors.New("malformed uptime")

	// e.g. "{ sec = 1700000000, usec = 123456 } Tue Nov 14 22:13:20 2023"
	bootTimePattern = regexp.MustCompile(`\{ sec = (\d+),`)
)

func (p Platform) String() string {
	switch p {
	case PlatformTickCounter:
		return "tick-counter"
	case PlatformProcFile:
		return "proc-file"
	case PlatformSysctl:
		return "sysctl"
	default:
		return "unsupported"
	}
}

// DetectPlatform maps a GOOS value to the uptime source used on it.
func DetectPlatform(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformTickCounter
	case "linux":
		return PlatformProcFile
	case "darwin":
		return PlatformSysctl
	default:
		return PlatformUnsupported
	}
}

// Reader returns the number of seconds elapsed since the system booted.
type Reader interface {
	Seconds() (float64, error)
}

// NewReader returns the reader for p. A nil logger discards output.
func NewReader(p Platform, logger *zap.Logger) Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.Stringer("platform", p))

	switch p {
	case PlatformTickCounter:
		return &tickReader{tick: tickCount}
	case PlatformProcFile:
		return &procReader{path: procUptimePath}
	case PlatformSysctl:
		return &sysctlReader{run: runSysctl, now: time.Now, logger: logger}
	default:
		return &unsupportedReader{logger: logger}
	}
}

// Uptime reads the seconds since boot for the running host.
func Uptime() (float64, error) {
	return NewReader(DetectPlatform(runtime.GOOS), nil).Seconds()
}

type tickReader struct {
	tick func() (uint64, error)
}

func (r *tickReader) Seconds() (float64, error) {
	ms, err := r.tick()
	if err != nil {
		return 0, err
	}
	return float64(ms / 1000), nil
}

type procReader struct {
	path string
}

func (r *procReader) Seconds() (float64, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", r.path, err)
	}
	return ParseProcUptime(data)
}

// ParseProcUptime parses the first field of /proc/uptime,
// e.g. "12345.67 98765.43".
func ParseProcUptime(data []byte) (float64, error) {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty input", ErrMalformedUptime)
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedUptime, err)
	}
	return secs, nil
}

type sysctlReader struct {
	run    func() ([]byte, error)
	now    func() time.Time
	logger *zap.Logger
}

func runSysctl() ([]byte, error) {
	out, err := exec.Command("sysctl", "-n", bootTimeKey).Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run sysctl %s: %w", bootTimeKey, err)
	}
	return out, nil
}

func (r *sysctlReader) Seconds() (float64, error) {
	out, err := r.run()
	if err != nil {
		return 0, err
	}
	bootSec, ok := ParseBootTime(out)
	if !ok {
		r.logger.Debug("boot time not found in sysctl output, reporting zero uptime",
			zap.String("output", strings.TrimSpace(string(out))))
		return 0, nil
	}

	now := r.now()
	uptime := now.Sub(time.Unix(bootSec, 0)).Seconds()
	if uptime < 0 {
		r.logger.Debug("boot time is in the future, reporting zero uptime",
			zap.Int64("boot_sec", bootSec), zap.Time("now", now))
		return 0, nil
	}
	return uptime, nil
}

// ParseBootTime extracts the sec field from sysctl kern.boottime output.
func ParseBootTime(out []byte) (int64, bool) {
	m := bootTimePattern.FindSubmatch(out)
	if m == nil {
		return 0, false
	}
	sec, err := strconv.ParseInt(string(m[1]), 10, 64)
	if err != nil {
		return 0, false
	}
	return sec, true
}

type unsupportedReader struct {
	logger *zap.Logger
}

func (r *unsupportedReader) Seconds() (float64, error) {
	r.logger.Debug("no uptime source for this platform, reporting zero uptime",
		zap.String("goos", runtime.GOOS))
	return 0, nil
}
