//go:build !windows
// +build !windows

package monitoring

import (
	"fmt"
	"runtime"
)

func tickCount() (uint64, error) {
	return 0, fmt.Errorf("%w: GetTickCount64 is not available on %s", ErrTickCounterUnavailable, runtime.GOOS)
}
