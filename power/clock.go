package power

import (
	"time"

	"golang.org/x/sys/unix"
)

// Clock reports time elapsed on a monotonic clock since an arbitrary origin.
type Clock func() time.Duration

// MonotonicClock reads CLOCK_MONOTONIC, which keeps counting across wall
// clock changes but stops in suspend.
func MonotonicClock() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0
	}
	return time.Duration(ts.Nano())
}
