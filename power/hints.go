package power

import "fmt"

// Hint values come from hardware/power.h plus the CyanogenMod extensions.
type Hint int32

const (
	HintVsync       Hint = 0x00000001
	HintInteraction Hint = 0x00000002
	HintVideoEncode Hint = 0x00000003
	HintVideoDecode Hint = 0x00000004
	HintLowPower    Hint = 0x00000005
	HintLaunch      Hint = 0x00000008
	HintCPUBoost    Hint = 0x00000010
	HintLaunchBoost Hint = 0x00000011
	HintSetProfile  Hint = 0x00000111
)

var hintNames = map[Hint]string{
	HintVsync:       "vsync",
	HintInteraction: "interaction",
	HintVideoEncode: "video_encode",
	HintVideoDecode: "video_decode",
	HintLowPower:    "low_power",
	HintLaunch:      "launch",
	HintCPUBoost:    "cpu_boost",
	HintLaunchBoost: "launch_boost",
	HintSetProfile:  "set_profile",
}

func (h Hint) String() string {
	if name, ok := hintNames[h]; ok {
		return name
	}
	return fmt.Sprintf("hint(%#x)", int32(h))
}

// ParseHint accepts a hint name as printed by String.
func ParseHint(name string) (Hint, error) {
	for h, n := range hintNames {
		if n == name {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown power hint %q", name)
}

type Feature int32

const (
	FeatureDoubleTapToWake   Feature = 0x00000001
	FeatureSupportedProfiles Feature = 0x00001000
)
