package main

import "C"

import (
	"unsafe"

	"github.com/AndroidPlusProject/PulseHAL/displaymode"
	"github.com/AndroidPlusProject/PulseHAL/power"
)

// The exports below back the vendor power_module and the display mode
// accessor. Power entry points bring up only the power HAL, display entry
// points only the display control.

//export PulseHAL_PowerInit
func PulseHAL_PowerInit() {
	boot().Power()
}

//export PulseHAL_SetInteractive
func PulseHAL_SetInteractive(on C.int) {
	boot().Power().SetInteractive(on != 0)
}

//export PulseHAL_PowerHint
func PulseHAL_PowerHint(hint, data int32) {
	boot().Power().PowerHint(power.Hint(hint), data)
}

//export PulseHAL_GetFeature
func PulseHAL_GetFeature(feature int32) int32 {
	return boot().Power().Feature(power.Feature(feature))
}

//export PulseHAL_DisplayIsSupported
func PulseHAL_DisplayIsSupported() bool {
	return boot().Display().IsSupported()
}

//export PulseHAL_DisplayModeCount
func PulseHAL_DisplayModeCount() int32 {
	return int32(len(boot().Display().AvailableModes()))
}

// PulseHAL_DisplayModeName copies the preset name into buf, NUL terminated.
// It returns false for an unknown id or a buffer too small.
//
//export PulseHAL_DisplayModeName
func PulseHAL_DisplayModeName(id int32, buf *C.char, size C.int) bool {
	m := displaymode.ModeByID(int(id))
	if m == nil || buf == nil || int(size) <= len(m.Name) {
		return false
	}
	out := unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(size))
	n := copy(out, m.Name)
	out[n] = 0
	return true
}

//export PulseHAL_DisplayGetCurrentMode
func PulseHAL_DisplayGetCurrentMode() int32 {
	return modeID(boot().Display().CurrentMode())
}

//export PulseHAL_DisplayGetDefaultMode
func PulseHAL_DisplayGetDefaultMode() int32 {
	return modeID(boot().Display().DefaultMode())
}

//export PulseHAL_DisplaySetMode
func PulseHAL_DisplaySetMode(id int32, makeDefault bool) bool {
	return boot().Display().SetMode(displaymode.ModeByID(int(id)), makeDefault)
}
