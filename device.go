package main

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/AndroidPlusProject/PulseHAL/displaymode"
	"github.com/AndroidPlusProject/PulseHAL/logging"
	"github.com/AndroidPlusProject/PulseHAL/power"
	"github.com/AndroidPlusProject/PulseHAL/sysfs"
)

// Device holds both HALs for one sysfs tree. Each comes up on first use and
// independently of the other.
type Device struct {
	FS       *sysfs.FS
	Manifest *power.Manifest

	manifests []string

	powerOnce sync.Once
	power     *power.HAL

	displayOnce sync.Once
	display     *displaymode.Control
}

var (
	device     *Device
	deviceOnce sync.Once

	sysfsRoot = ""
	manifests = []string{
		"./pulsehal.json",
		"./pulsehal.yaml",
		"/data/local/tmp/pulsehal.json",
		"/data/local/tmp/pulsehal.yaml",
		"/vendor/etc/pulsehal.json",
		"/vendor/etc/pulsehal.yaml",
		"/system/vendor/etc/pulsehal.json",
		"/system/etc/pulsehal.json",
	}
)

func boot() *Device {
	deviceOnce.Do(func() {
		device = NewDevice(sysfsRoot, manifests)
	})
	return device
}

// NewDevice touches nothing; the HALs are brought up by Power and Display.
func NewDevice(root string, candidates []string) *Device {
	return &Device{FS: sysfs.New(root), manifests: candidates}
}

// Power returns the power HAL, loading the manifest, probing the governor and
// applying the boot profile the first time.
func (dev *Device) Power() *power.HAL {
	dev.powerOnce.Do(dev.bootPower)
	return dev.power
}

// Display returns the display mode control, restoring the stored default the
// first time.
func (dev *Device) Display() *displaymode.Control {
	dev.displayOnce.Do(func() {
		dev.display = displaymode.Open(dev.FS)
	})
	return dev.display
}

// bootPower falls back to the stock tables when the manifest is missing or broken.
func (dev *Device) bootPower() {
	startTime := time.Now()
	logging.Info("Need to boot the power HAL first, just a blip...")

	var opts []power.Option
	m, path, err := power.FindManifest(dev.manifests)
	switch {
	case errors.Cause(err) == power.ErrNoManifest:
		logging.Debug("No device manifest, using stock profiles")
	case err != nil:
		logging.Error("Error reading device manifest %s: %v", path, err)
	default:
		dev.Manifest = m
		opts = m.Options()
	}

	dev.power = power.New(dev.FS, opts...)
	dev.power.Init()
	if dev.Manifest != nil {
		if p := dev.Manifest.BootProfile(); p != power.NoProfile {
			logging.Info("Applying boot profile %s", dev.Manifest.ProfileBoot)
			dev.power.PowerHint(power.HintSetProfile, int32(p))
		}
	}
	logging.Info("Power HAL finished init in %dms", time.Since(startTime).Milliseconds())
}

func modeID(m *displaymode.Mode) int32 {
	if m == nil {
		return -1
	}
	return int32(m.ID)
}
