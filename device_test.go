package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AndroidPlusProject/PulseHAL/displaymode"
	"github.com/AndroidPlusProject/PulseHAL/power"
)

const (
	interactive = "/sys/devices/system/cpu/cpufreq/interactive"
	cpufreq     = "/sys/devices/system/cpu/cpu0/cpufreq"
)

var stockNodes = map[string]string{
	interactive + "/boost":               "0\n",
	interactive + "/boostpulse":          "",
	interactive + "/boostpulse_duration": "20000\n",
	interactive + "/go_hispeed_load":     "99\n",
	interactive + "/hispeed_freq":        "1833000\n",
	interactive + "/io_is_busy":          "0\n",
	interactive + "/target_loads":        "90\n",
	cpufreq + "/scaling_min_freq":        "416000\n",
	cpufreq + "/scaling_max_freq":        "1833000\n",
	displaymode.ModePath:                 "2\n",
}

func fakeTree(t *testing.T, nodes map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for path, content := range nodes {
		full := filepath.Join(root, path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// Room for the stored default display mode.
	if err := os.MkdirAll(filepath.Join(root, filepath.Dir(displaymode.DefaultPath)), 0755); err != nil {
		t.Fatal(err)
	}
	return root
}

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readTree(t *testing.T, root, path string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(root, path))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestBootProfileFromManifest(t *testing.T) {
	root := fakeTree(t, stockNodes)
	manifest := writeManifest(t, "pulsehal.yaml", "profile_boot: High Performance\n")

	dev := NewDevice(root, []string{manifest})
	hal := dev.Power()
	if got := hal.CurrentProfile(); got != power.ProfileHighPerformance {
		t.Errorf("CurrentProfile() = %d, want %d", got, power.ProfileHighPerformance)
	}

	got := map[string]string{
		"boost":            readTree(t, root, interactive+"/boost"),
		"go_hispeed_load":  readTree(t, root, interactive+"/go_hispeed_load"),
		"scaling_min_freq": readTree(t, root, cpufreq+"/scaling_min_freq"),
	}
	want := map[string]string{
		"boost":            "1",
		"go_hispeed_load":  "50",
		"scaling_min_freq": "1000000",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("boot profile writes mismatch (-want +got):\n%s", diff)
	}
}

func TestBrokenManifestFallsBack(t *testing.T) {
	root := fakeTree(t, stockNodes)
	manifest := writeManifest(t, "pulsehal.json", `{"profiles": [{"name": "only"}], "profile_boot": "only"`)

	dev := NewDevice(root, []string{manifest})
	hal := dev.Power()
	if dev.Manifest != nil {
		t.Errorf("broken manifest was kept: %+v", dev.Manifest)
	}
	if diff := cmp.Diff(power.DefaultProfiles(), hal.Profiles()); diff != "" {
		t.Errorf("profiles mismatch (-want +got):\n%s", diff)
	}
	if got := hal.CurrentProfile(); got != power.NoProfile {
		t.Errorf("CurrentProfile() = %d, want no profile", got)
	}
	if got := readTree(t, root, cpufreq+"/scaling_min_freq"); got != "416000\n" {
		t.Errorf("governor touched without a boot profile: %q", got)
	}
}

func TestMissingManifest(t *testing.T) {
	root := fakeTree(t, stockNodes)
	dev := NewDevice(root, []string{filepath.Join(t.TempDir(), "none.json")})
	if dev.Manifest != nil {
		t.Error("manifest loaded from nowhere")
	}
	if got := dev.Power().Feature(power.FeatureSupportedProfiles); got != power.ProfileMax {
		t.Errorf("Feature(SupportedProfiles) = %d, want %d", got, power.ProfileMax)
	}
}

func TestDisplaySnapshotsDefault(t *testing.T) {
	root := fakeTree(t, stockNodes)
	dev := NewDevice(root, nil)

	want := displaymode.ModeByID(2)
	if diff := cmp.Diff(want, dev.Display().DefaultMode()); diff != "" {
		t.Errorf("DefaultMode mismatch (-want +got):\n%s", diff)
	}
	if got := readTree(t, root, displaymode.DefaultPath); got != "2" {
		t.Errorf("stored default = %q, want 2", got)
	}
}

func TestDisplayLeavesGovernorAlone(t *testing.T) {
	root := fakeTree(t, stockNodes)
	manifest := writeManifest(t, "pulsehal.json", `{"profile_boot": "balanced"}`)
	dev := NewDevice(root, []string{manifest})

	dev.Display().IsSupported()
	if dev.power != nil {
		t.Error("display query brought up the power HAL")
	}
	if got := readTree(t, root, cpufreq+"/scaling_max_freq"); got != "1833000\n" {
		t.Errorf("display query applied the boot profile: %q", got)
	}

	dev.Power()
	if dev.display == nil {
		t.Error("display control lost after power boot")
	}
}

func TestSendHintBoost(t *testing.T) {
	root := fakeTree(t, stockNodes)
	hal := NewDevice(root, nil).Power()

	hal.PowerHint(power.HintSetProfile, power.ProfileBalanced)
	sendHint(hal, power.HintInteraction, 0)
	if got := readTree(t, root, interactive+"/boostpulse"); got != "1" {
		t.Errorf("boostpulse = %q after an interaction hint, want 1", got)
	}
}

func TestSendHintProfile(t *testing.T) {
	root := fakeTree(t, stockNodes)
	hal := NewDevice(root, nil).Power()

	sendHint(hal, power.HintSetProfile, power.ProfilePowerSave)
	if got := hal.CurrentProfile(); got != power.ProfilePowerSave {
		t.Errorf("CurrentProfile() = %d, want %d", got, power.ProfilePowerSave)
	}
	if got := readTree(t, root, interactive+"/boostpulse"); got != "" {
		t.Errorf("set_profile pulsed: %q", got)
	}
}

func TestModeID(t *testing.T) {
	if got := modeID(nil); got != -1 {
		t.Errorf("modeID(nil) = %d, want -1", got)
	}
	if got := modeID(displaymode.ModeByName("cinema")); got != 2 {
		t.Errorf("modeID(cinema) = %d, want 2", got)
	}
}

func TestLookups(t *testing.T) {
	profiles := power.DefaultProfiles()
	for _, tc := range []struct {
		arg  string
		want int
	}{
		{"balanced", power.ProfileBalanced},
		{"2", power.ProfileHighPerformance},
		{"3", power.NoProfile},
		{"-1", power.NoProfile},
		{"turbo", power.NoProfile},
	} {
		if got := lookupProfile(profiles, tc.arg); got != tc.want {
			t.Errorf("lookupProfile(%q) = %d, want %d", tc.arg, got, tc.want)
		}
	}

	if m := lookupMode("Auto"); m == nil || m.ID != 3 {
		t.Errorf("lookupMode(Auto) = %v", m)
	}
	if m := lookupMode("1"); m == nil || m.Name != "Standard" {
		t.Errorf("lookupMode(1) = %v", m)
	}
	if m := lookupMode("7"); m != nil {
		t.Errorf("lookupMode(7) = %v", m)
	}
}
