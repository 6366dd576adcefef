package power

import (
	"time"

	"github.com/pkg/errors"

	"github.com/AndroidPlusProject/PulseHAL/logging"
)

// boost fires a governor boost pulse, at most once per pulse duration.
// Events inside the window are dropped, not queued.
func (h *HAL) boost(hint Hint) {
	profile := h.CurrentProfile()
	if !h.profileValid(profile) {
		logging.Debug("%s: no power profile selected yet", hint)
		return
	}
	if h.profiles[profile].BoostpulseDuration == 0 {
		return
	}
	if !h.governorPresent() {
		return
	}

	now := h.now()
	diff := now - time.Duration(h.lastBoost.Load())
	logging.Verbose("%s: diff=%dus", hint, diff.Microseconds())
	if diff.Microseconds() <= h.pulseDuration.Microseconds() {
		return
	}

	if err := h.fs.WriteLine(h.paths.interactive(nodeBoostpulse), "1"); err != nil {
		logging.Error("Failed to boost: %v", err)
	}
	h.lastBoost.Store(int64(now))
}

// Pulse fires one boost pulse right away, without the rate limit or the
// profile checks the hint path applies. It is meant for one-shot callers such
// as the command line tool, where the boost window opened by Init never
// closes before the process exits.
func (h *HAL) Pulse() error {
	if !h.governorPresent() {
		return errors.Errorf("interactive governor not active at %s", h.paths.Interactive)
	}
	if err := h.fs.WriteLine(h.paths.interactive(nodeBoostpulse), "1"); err != nil {
		return err
	}
	h.lastBoost.Store(int64(h.now()))
	return nil
}
