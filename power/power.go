// Package power drives the interactive CPU governor on behalf of the Android
// power HAL: it applies power profiles and turns input events into boost
// pulses.
package power

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AndroidPlusProject/PulseHAL/logging"
	"github.com/AndroidPlusProject/PulseHAL/sysfs"
)

// DefaultPulseDuration is used when boostpulse_duration cannot be read.
const DefaultPulseDuration = 20000 * time.Microsecond

type HAL struct {
	fs       *sysfs.FS
	paths    Paths
	profiles []Profile
	now      Clock

	// profileMu serializes profile changes. current is read without it by
	// the boost path, a stale value there only costs one pulse.
	profileMu sync.Mutex
	current   atomic.Int32

	pulseDuration time.Duration
	lastBoost     atomic.Int64
}

type Option func(*HAL)

// WithProfiles replaces the built-in profile table.
func WithProfiles(profiles []Profile) Option {
	return func(h *HAL) {
		h.profiles = append([]Profile(nil), profiles...)
	}
}

func WithPaths(paths Paths) Option {
	return func(h *HAL) {
		h.paths = paths
	}
}

func WithClock(clock Clock) Option {
	return func(h *HAL) {
		h.now = clock
	}
}

func New(fs *sysfs.FS, opts ...Option) *HAL {
	h := &HAL{
		fs:            fs,
		paths:         StockPaths(),
		profiles:      DefaultProfiles(),
		now:           MonotonicClock,
		pulseDuration: DefaultPulseDuration,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.paths.Init()
	h.current.Store(NoProfile)
	return h
}

// Init probes the governor once and arms the boost timer.
func (h *HAL) Init() {
	boostFreq, err := h.fs.ReadLine(h.paths.interactive(nodeHispeedFreq))
	if err != nil {
		logging.Error("%v", err)
		boostFreq = "?"
	}

	h.pulseDuration = DefaultPulseDuration
	if us, err := h.fs.ReadInt(h.paths.interactive(nodeBoostpulseDuration)); err != nil {
		//should not fail, but the governor may not be loaded yet
		logging.Error("%v", err)
	} else {
		h.pulseDuration = time.Duration(us) * time.Microsecond
	}
	h.lastBoost.Store(int64(h.now()))

	logging.Info("init done: will boost CPU to %skHz for %dus on input events",
		boostFreq, h.pulseDuration.Microseconds())
}

// SetInteractive has nothing to do on this device, the governor handles
// screen off on its own.
func (h *HAL) SetInteractive(on bool) {
	logging.Info("setInteractive: on=%t", on)
}

func (h *HAL) PowerHint(hint Hint, data int32) {
	switch hint {
	case HintInteraction, HintCPUBoost, HintLaunchBoost:
		h.boost(hint)
	case HintSetProfile:
		h.profileMu.Lock()
		h.setProfile(int(data))
		h.profileMu.Unlock()
	case HintVsync:
	default:
		logging.Verbose("Ignoring power hint %s (%d)", hint, data)
	}
}

// Feature answers getFeature queries, -1 means unsupported.
func (h *HAL) Feature(feature Feature) int32 {
	if feature == FeatureSupportedProfiles {
		return int32(len(h.profiles))
	}
	return -1
}

// CurrentProfile returns the selected profile index or NoProfile.
func (h *HAL) CurrentProfile() int {
	return int(h.current.Load())
}

func (h *HAL) Profiles() []Profile {
	return append([]Profile(nil), h.profiles...)
}

func (h *HAL) PulseDuration() time.Duration {
	return h.pulseDuration
}

func (h *HAL) profileValid(profile int) bool {
	return profile >= 0 && profile < len(h.profiles)
}

// governorPresent reports whether the interactive governor is the one loaded;
// its tunables directory only exists while it is.
func (h *HAL) governorPresent() bool {
	return h.fs.IsDir(h.paths.Interactive)
}

// setProfile must be called with profileMu held.
func (h *HAL) setProfile(profile int) {
	if !h.profileValid(profile) {
		logging.Error("setProfile: unknown profile: %d", profile)
		return
	}
	if profile == h.CurrentProfile() {
		return
	}
	if !h.governorPresent() {
		logging.Debug("setProfile: interactive governor not active, skipping %s", h.profiles[profile].Name)
		return
	}

	p := h.profiles[profile]
	startTime := time.Now()
	for _, w := range []struct {
		path string
		data string
	}{
		{h.paths.interactive(nodeBoost), strconv.Itoa(p.Boost)},
		{h.paths.interactive(nodeBoostpulseDuration), strconv.Itoa(p.BoostpulseDuration)},
		{h.paths.interactive(nodeGoHispeedLoad), strconv.Itoa(p.GoHispeedLoad)},
		{h.paths.interactive(nodeHispeedFreq), strconv.Itoa(p.HispeedFreq)},
		{h.paths.interactive(nodeIoIsBusy), strconv.Itoa(p.IoIsBusy)},
		{h.paths.interactive(nodeTargetLoads), p.TargetLoads},
		{h.paths.cpufreq(nodeScalingMinFreq), strconv.Itoa(p.ScalingMinFreq)},
		{h.paths.cpufreq(nodeScalingMaxFreq), strconv.Itoa(p.ScalingMaxFreq)},
	} {
		//A bad value on one node should not keep the rest of the profile from applying
		if err := h.fs.WriteLine(w.path, w.data); err != nil {
			logging.Error("%v", err)
			continue
		}
		logging.Verbose("wrote '%s' to %s", w.data, w.path)
	}

	h.current.Store(int32(profile))
	logging.Info("Applied profile %s in %dms", p.Name, time.Since(startTime).Milliseconds())
}
