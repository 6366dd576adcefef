package power

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/AndroidPlusProject/PulseHAL/logging"
)

// Manifest is the optional per-device override file.
type Manifest struct {
	Paths       *Paths    `json:"paths" yaml:"paths"`
	Profiles    []Profile `json:"profiles" yaml:"profiles"`
	ProfileBoot string    `json:"profile_boot" yaml:"profile_boot"` //Profile applied at boot, before the framework asks for one
}

// ErrNoManifest is returned by FindManifest when no candidate exists.
var ErrNoManifest = errors.New("no device manifest found")

// FindManifest loads the first non-empty manifest from candidates.
func FindManifest(candidates []string) (*Manifest, string, error) {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil || len(data) == 0 {
			continue
		}
		logging.Info("Found manifest at %s", path)
		m, err := ParseManifest(path, data)
		if err != nil {
			return nil, path, err
		}
		return m, path, nil
	}
	return nil, "", ErrNoManifest
}

// ParseManifest decodes YAML for .yaml/.yml files and JSON otherwise.
func ParseManifest(path string, data []byte) (*Manifest, error) {
	m := &Manifest{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalStrict(data, m); err != nil {
			return nil, errors.Wrapf(err, "error parsing manifest %s", path)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(m); err != nil {
			return nil, errors.Wrapf(err, "error parsing manifest %s", path)
		}
	}
	if err := m.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid manifest %s", path)
	}
	return m, nil
}

func (m *Manifest) validate() error {
	seen := make(map[string]bool)
	for i := range m.Profiles {
		p := &m.Profiles[i]
		p.Name = strings.ReplaceAll(strings.ToLower(p.Name), " ", "_")
		if p.Name == "" {
			return errors.Errorf("profile %d has no name", i)
		}
		if seen[p.Name] {
			return errors.Errorf("profile %s defined twice", p.Name)
		}
		seen[p.Name] = true
	}
	if m.ProfileBoot != "" {
		m.ProfileBoot = strings.ReplaceAll(strings.ToLower(m.ProfileBoot), " ", "_")
		if ProfileIndex(m.profiles(), m.ProfileBoot) < 0 {
			return errors.Errorf("boot profile %s does not exist", m.ProfileBoot)
		}
	}
	return nil
}

func (m *Manifest) profiles() []Profile {
	if len(m.Profiles) > 0 {
		return m.Profiles
	}
	return DefaultProfiles()
}

// Options turns the manifest into HAL options.
func (m *Manifest) Options() []Option {
	var opts []Option
	if m.Paths != nil {
		opts = append(opts, WithPaths(*m.Paths))
	}
	if len(m.Profiles) > 0 {
		opts = append(opts, WithProfiles(m.Profiles))
	}
	return opts
}

// BootProfile returns the index of the boot profile, or NoProfile.
func (m *Manifest) BootProfile() int {
	if m.ProfileBoot == "" {
		return NoProfile
	}
	return ProfileIndex(m.profiles(), m.ProfileBoot)
}
