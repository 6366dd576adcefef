package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/AndroidPlusProject/PulseHAL/displaymode"
	"github.com/AndroidPlusProject/PulseHAL/logging"
	"github.com/AndroidPlusProject/PulseHAL/power"
)

func main() {
	var (
		debug       bool
		verbose     bool
		list        bool
		profile     string
		hint        string
		hintData    int32
		displayMode string
		makeDefault bool
	)
	pflag.StringVarP(&sysfsRoot, "root", "r", sysfsRoot, "prefix for every sysfs path, for testing against a copied tree")
	pflag.StringArrayVarP(&manifests, "manifest", "m", manifests, "path to device manifest(s), first readable wins")
	pflag.StringVarP(&profile, "profile", "p", "", "power profile to apply, by name or index")
	pflag.StringVar(&hint, "hint", "", "power hint to send (interaction, cpu_boost, launch_boost, set_profile, ...); boost hints fire one pulse right away")
	pflag.Int32Var(&hintData, "data", 0, "data argument for --hint")
	pflag.StringVar(&displayMode, "display-mode", "", "display mode to select, by name or id")
	pflag.BoolVar(&makeDefault, "make-default", false, "persist --display-mode as the default")
	pflag.BoolVarP(&list, "list", "l", false, "list profiles and display modes")
	pflag.BoolVarP(&debug, "debug", "d", false, "debug mode")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
	pflag.Parse()

	logging.SetDebug(debug)
	logging.SetVerbose(verbose)
	dev := boot()

	if list {
		printState(dev)
	}

	if displayMode != "" {
		mode := lookupMode(displayMode)
		if mode == nil {
			logging.Error("Unknown display mode %s", displayMode)
			os.Exit(1)
		}
		if !dev.Display().SetMode(mode, makeDefault) {
			os.Exit(1)
		}
		logging.Info("Display mode is now %s", mode.Name)
	}

	if profile != "" {
		id := lookupProfile(dev.Power().Profiles(), profile)
		if id == power.NoProfile {
			logging.Error("Unknown power profile %s", profile)
			os.Exit(1)
		}
		dev.Power().PowerHint(power.HintSetProfile, int32(id))
	}

	if hint != "" {
		h, err := power.ParseHint(hint)
		if err != nil {
			logging.Error("%v", err)
			os.Exit(1)
		}
		sendHint(dev.Power(), h, hintData)
	}
}

// sendHint forwards h to the power HAL. A fresh process is always inside the
// boost window opened by Init, so boost hints become a single direct pulse.
func sendHint(hal *power.HAL, h power.Hint, data int32) {
	switch h {
	case power.HintInteraction, power.HintCPUBoost, power.HintLaunchBoost:
		if err := hal.Pulse(); err != nil {
			logging.Error("Failed to boost: %v", err)
			return
		}
		logging.Info("Boosted CPU for %dus", hal.PulseDuration().Microseconds())
	default:
		hal.PowerHint(h, data)
	}
}

func lookupMode(arg string) *displaymode.Mode {
	if id, err := strconv.Atoi(arg); err == nil {
		return displaymode.ModeByID(id)
	}
	return displaymode.ModeByName(arg)
}

func lookupProfile(profiles []power.Profile, arg string) int {
	if id, err := strconv.Atoi(arg); err == nil {
		if id < 0 || id >= len(profiles) {
			return power.NoProfile
		}
		return id
	}
	return power.ProfileIndex(profiles, arg)
}

func printState(dev *Device) {
	current := dev.Power().CurrentProfile()
	fmt.Println("Power profiles:")
	for i, p := range dev.Power().Profiles() {
		mark := " "
		if i == current {
			mark = "*"
		}
		fmt.Printf(" %s %d %s\n", mark, i, p.Name)
	}

	fmt.Printf("Display modes (supported: %t):\n", dev.Display().IsSupported())
	cur, def := dev.Display().CurrentMode(), dev.Display().DefaultMode()
	for _, m := range dev.Display().AvailableModes() {
		mark := " "
		if cur != nil && cur.ID == m.ID {
			mark = "*"
		}
		suffix := ""
		if def != nil && def.ID == m.ID {
			suffix = " (default)"
		}
		fmt.Printf(" %s %d %s%s\n", mark, m.ID, m.Name, suffix)
	}
}
