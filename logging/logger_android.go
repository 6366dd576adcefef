//go:build android

package logging

import (
	"io"
	"unsafe"
)

// #cgo LDFLAGS: -llog
// #include <android/log.h>
// #include <stdlib.h>
import "C"

// SetOutput is a no-op on Android, everything goes to logcat.
func SetOutput(w io.Writer) io.Writer {
	return w
}

func logMsg(prio LogPriority, msg string) {
	ctag := C.CString(LOG_TAG)
	cstr := C.CString(msg)
	C.__android_log_write(C.int(prio), ctag, cstr)
	C.free(unsafe.Pointer(ctag))
	C.free(unsafe.Pointer(cstr))
}
