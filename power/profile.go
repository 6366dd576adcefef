package power

// Profile is one set of interactive governor tunables. Frequencies are in kHz,
// durations in microseconds.
type Profile struct {
	Name               string `json:"name" yaml:"name"`
	Boost              int    `json:"boost" yaml:"boost"`
	BoostpulseDuration int    `json:"boostpulse_duration" yaml:"boostpulse_duration"`
	GoHispeedLoad      int    `json:"go_hispeed_load" yaml:"go_hispeed_load"`
	HispeedFreq        int    `json:"hispeed_freq" yaml:"hispeed_freq"`
	IoIsBusy           int    `json:"io_is_busy" yaml:"io_is_busy"`
	TargetLoads        string `json:"target_loads" yaml:"target_loads"`
	ScalingMinFreq     int    `json:"scaling_min_freq" yaml:"scaling_min_freq"`
	ScalingMaxFreq     int    `json:"scaling_max_freq" yaml:"scaling_max_freq"`
}

const (
	ProfilePowerSave = iota
	ProfileBalanced
	ProfileHighPerformance
	ProfileMax
)

// NoProfile is the selection before the framework picks one.
const NoProfile = -1

// DefaultProfiles is the fugu table, indexed by the Profile* constants.
func DefaultProfiles() []Profile {
	return []Profile{
		ProfilePowerSave: {
			Name:               "power_save",
			Boost:              0,
			BoostpulseDuration: 0,
			GoHispeedLoad:      90,
			HispeedFreq:        500000,
			IoIsBusy:           0,
			TargetLoads:        "90",
			ScalingMinFreq:     500000,
			ScalingMaxFreq:     1000000,
		},
		ProfileBalanced: {
			Name:               "balanced",
			Boost:              0,
			BoostpulseDuration: 40000,
			GoHispeedLoad:      80,
			HispeedFreq:        1833000,
			IoIsBusy:           1,
			TargetLoads:        "80",
			ScalingMinFreq:     500000,
			ScalingMaxFreq:     1833000,
		},
		ProfileHighPerformance: {
			Name:               "high_performance",
			Boost:              1,
			BoostpulseDuration: 0, //already boosted, skip the pulses
			GoHispeedLoad:      50,
			HispeedFreq:        1000000,
			IoIsBusy:           1,
			TargetLoads:        "80",
			ScalingMinFreq:     1000000,
			ScalingMaxFreq:     1833000,
		},
	}
}

// ProfileIndex looks a profile up by name in table, -1 if absent.
func ProfileIndex(table []Profile, name string) int {
	for i := range table {
		if table[i].Name == name {
			return i
		}
	}
	return NoProfile
}
