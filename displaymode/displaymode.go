// Package displaymode selects between the mDNIe display presets.
//
// A device may offer a few preset modes for different viewing intents (movies,
// photos, extra vibrance). Each preset bundles gamma and white point tweaks
// behind a single control node, so selecting one is a single integer write.
package displaymode

import (
	"strconv"
	"strings"

	"github.com/AndroidPlusProject/PulseHAL/logging"
	"github.com/AndroidPlusProject/PulseHAL/sysfs"
)

const (
	ModePath    = "/sys/class/mdnie/mdnie/mode"
	DefaultPath = "/data/misc/.displaymodedefault"
)

type Mode struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var modes = [...]Mode{
	{0, "Dynamic"},
	{1, "Standard"},
	{2, "Cinema"},
	{3, "Auto"},
}

type Control struct {
	fs          *sysfs.FS
	modePath    string
	defaultPath string
}

func New(fs *sysfs.FS) *Control {
	return &Control{fs: fs, modePath: ModePath, defaultPath: DefaultPath}
}

// Open returns a Control after reapplying the persisted default mode.
func Open(fs *sysfs.FS) *Control {
	c := New(fs)
	c.Restore()
	return c
}

// Restore runs once at load. A persisted default wins over whatever the panel
// booted with; without one, the current hardware mode becomes the default.
func (c *Control) Restore() {
	if c.fs.Readable(c.defaultPath) {
		c.SetMode(c.DefaultMode(), false)
	} else if c.fs.Readable(c.modePath) {
		c.SetMode(c.CurrentMode(), true)
	}
}

func (c *Control) IsSupported() bool {
	return c.fs.Writable(c.modePath) &&
		c.fs.Readable(c.modePath) &&
		c.fs.Writable(c.defaultPath) &&
		c.fs.Readable(c.defaultPath)
}

// AvailableModes returns every preset. Mapping names to something
// human-readable is up to the caller.
func (c *Control) AvailableModes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes[:])
	return out
}

// CurrentMode returns nil if no valid mode is selected.
func (c *Control) CurrentMode() *Mode {
	return c.readMode(c.modePath)
}

// DefaultMode returns nil if no default has been stored.
func (c *Control) DefaultMode() *Mode {
	return c.readMode(c.defaultPath)
}

// SetMode applies mode and optionally persists it as the default.
func (c *Control) SetMode(mode *Mode, makeDefault bool) bool {
	if mode == nil {
		return false
	}

	id := strconv.Itoa(mode.ID)
	if err := c.fs.WriteLine(c.modePath, id); err != nil {
		logging.Error("Failed to set display mode %s: %v", mode.Name, err)
		return false
	}
	logging.Debug("Display mode set to %s (%s)", mode.Name, id)
	if makeDefault {
		if err := c.fs.WriteFile(c.defaultPath, id); err != nil {
			logging.Error("Failed to store default display mode %s: %v", mode.Name, err)
			return false
		}
	}
	return true
}

func (c *Control) readMode(path string) *Mode {
	line, err := c.fs.ReadLine(path)
	if err != nil {
		logging.Debug("%v", err)
		return nil
	}
	id, err := strconv.Atoi(line)
	if err != nil {
		return nil
	}
	return ModeByID(id)
}

func ModeByID(id int) *Mode {
	if id < 0 || id >= len(modes) {
		return nil
	}
	m := modes[id]
	return &m
}

func ModeByName(name string) *Mode {
	for _, m := range modes {
		if strings.EqualFold(m.Name, name) {
			m := m
			return &m
		}
	}
	return nil
}
