package power

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

const jsonManifest = `{
	"paths": {"interactive": "/sys/devices/system/cpu/cpufreq/interactive"},
	"profile_boot": "Battery Saver",
	"profiles": [
		{"name": "Battery Saver", "go_hispeed_load": 99, "hispeed_freq": 416000, "target_loads": "95", "scaling_min_freq": 416000, "scaling_max_freq": 1000000},
		{"name": "quick", "boost": 1, "boostpulse_duration": 60000, "go_hispeed_load": 60, "hispeed_freq": 1500000, "io_is_busy": 1, "target_loads": "70 1500000:85", "scaling_min_freq": 800000, "scaling_max_freq": 1833000}
	]
}`

const yamlManifest = `
paths:
  cpufreq: /sys/devices/system/cpu/cpufreq/policy0
profile_boot: balanced
`

func TestParseManifestJSON(t *testing.T) {
	m, err := ParseManifest("pulsehal.json", []byte(jsonManifest))
	if err != nil {
		t.Fatal(err)
	}
	want := []Profile{
		{Name: "battery_saver", GoHispeedLoad: 99, HispeedFreq: 416000, TargetLoads: "95", ScalingMinFreq: 416000, ScalingMaxFreq: 1000000},
		{Name: "quick", Boost: 1, BoostpulseDuration: 60000, GoHispeedLoad: 60, HispeedFreq: 1500000, IoIsBusy: 1, TargetLoads: "70 1500000:85", ScalingMinFreq: 800000, ScalingMaxFreq: 1833000},
	}
	if diff := cmp.Diff(want, m.Profiles); diff != "" {
		t.Errorf("profiles mismatch (-want +got):\n%s", diff)
	}
	if got := m.BootProfile(); got != 0 {
		t.Errorf("BootProfile() = %d, want 0", got)
	}

	h := New(nil, m.Options()...)
	if diff := cmp.Diff(want, h.Profiles()); diff != "" {
		t.Errorf("HAL profiles mismatch (-want +got):\n%s", diff)
	}
	if got := h.Feature(FeatureSupportedProfiles); got != 2 {
		t.Errorf("Feature(SupportedProfiles) = %d", got)
	}
	// Blank manifest paths fall back to stock.
	if diff := cmp.Diff(StockPaths(), h.paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestParseManifestYAML(t *testing.T) {
	m, err := ParseManifest("pulsehal.yaml", []byte(yamlManifest))
	if err != nil {
		t.Fatal(err)
	}
	if m.Paths == nil || m.Paths.CPUFreq != "/sys/devices/system/cpu/cpufreq/policy0" {
		t.Errorf("paths = %+v", m.Paths)
	}
	if len(m.Profiles) != 0 {
		t.Errorf("unexpected profiles %v", m.Profiles)
	}
	// No profiles in the manifest, the boot profile comes from the stock table.
	if got := m.BootProfile(); got != ProfileBalanced {
		t.Errorf("BootProfile() = %d, want %d", got, ProfileBalanced)
	}
}

func TestParseManifestErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		path string
		data string
	}{
		"bad json":          {"m.json", `{"profiles": [`},
		"bad yaml":          {"m.yml", "profiles: [\n"},
		"unknown yaml key":  {"m.yaml", "governor: ondemand\n"},
		"unknown json key":  {"m.json", `{"profile_bot": "balanced"}`},
		"unnamed profile":   {"m.json", `{"profiles": [{"boost": 1}]}`},
		"duplicate profile": {"m.json", `{"profiles": [{"name": "a"}, {"name": "A"}]}`},
		"unknown boot":      {"m.json", `{"profile_boot": "turbo"}`},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseManifest(tc.path, []byte(tc.data)); err == nil {
				t.Error("ParseManifest succeeded")
			}
		})
	}
}

func TestFindManifest(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.json")
	found := filepath.Join(dir, "pulsehal.yaml")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(found, []byte(yamlManifest), 0644); err != nil {
		t.Fatal(err)
	}

	m, path, err := FindManifest([]string{filepath.Join(dir, "missing.json"), empty, found})
	if err != nil {
		t.Fatal(err)
	}
	if path != found {
		t.Errorf("path = %s, want %s", path, found)
	}
	if m.ProfileBoot != "balanced" {
		t.Errorf("ProfileBoot = %q", m.ProfileBoot)
	}

	if _, _, err := FindManifest([]string{filepath.Join(dir, "missing.json")}); errors.Cause(err) != ErrNoManifest {
		t.Errorf("FindManifest() error = %v, want %v", err, ErrNoManifest)
	}
}
