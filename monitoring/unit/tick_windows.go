//go:build windows
// +build windows

package monitoring

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var procGetTickCount64 = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetTickCount64")

// tickCount returns the milliseconds elapsed since the system was started.
func tickCount() (uint64, error) {
	if err := procGetTickCount64.Find(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTickCounterUnavailable, err)
	}
	ret, _, _ := procGetTickCount64.Call()
	return uint64(ret), nil
}
