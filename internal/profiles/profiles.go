// Package profiles loads HandBrake preset exports used to encode sessions.
//
// A profile is any *.json file below the profiles directory whose first
// preset carries a string PresetName. The file stem is the name users pick
// the profile by.
package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"deo/internal/services"
)

const (
	profileExtension = ".json"
	stageName        = "profiles"
)

// Profile is one exported HandBrake preset file. Path is handed to
// --preset-import-file and PresetName (PresetList[0].PresetName) to --preset.
type Profile struct {
	Path        string
	DisplayName string
	PresetName  string
}

func (p Profile) String() string { return p.DisplayName }

// Set is the ordered collection of loaded profiles.
type Set struct {
	items []Profile
}

// NewSet orders profiles by display name.
func NewSet(items []Profile) Set {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Profile) int {
		if c := strings.Compare(a.DisplayName, b.DisplayName); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	return Set{items: sorted}
}

// Items returns a copy of the profiles in display order.
func (s Set) Items() []Profile { return slices.Clone(s.items) }

func (s Set) Len() int { return len(s.items) }

// Find looks a profile up by display name, ignoring case.
func (s Set) Find(name string) (Profile, bool) {
	name = strings.TrimSpace(name)
	for _, p := range s.items {
		if strings.EqualFold(p.DisplayName, name) {
			return p, true
		}
	}
	return Profile{}, false
}

// Default returns the first profile in display order.
func (s Set) Default() (Profile, bool) {
	if len(s.items) == 0 {
		return Profile{}, false
	}
	return s.items[0], true
}

// Load reads every preset export below dir. Any unreadable or malformed
// export fails the whole load.
func Load(dir string) (Set, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Set{}, services.Wrap(services.ErrConfiguration, stageName, "open profiles", fmt.Sprintf("profiles directory %q does not exist", dir), err)
	}

	var items []Profile
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are ignored, matching how presets are listed.
			if d != nil && d.IsDir() && path != dir {
				return fs.SkipDir
			}
			if path == dir {
				return err
			}
			return nil
		}
		if !d.Type().IsRegular() || filepath.Ext(path) != profileExtension {
			return nil
		}
		profile, err := readProfile(path)
		if err != nil {
			return err
		}
		items = append(items, profile)
		return nil
	})
	if walkErr != nil {
		if errors.Is(walkErr, services.ErrConfiguration) {
			return Set{}, walkErr
		}
		return Set{}, services.Wrap(services.ErrConfiguration, stageName, "walk profiles", fmt.Sprintf("cannot read profiles directory %q", dir), walkErr)
	}
	if len(items) == 0 {
		return Set{}, services.Wrap(services.ErrConfiguration, stageName, "load profiles", fmt.Sprintf("no profiles found in %q; export presets from HandBrake as .json files", dir), nil)
	}
	return NewSet(items), nil
}

type presetExport struct {
	PresetList []struct {
		PresetName any `json:"PresetName"`
	} `json:"PresetList"`
}

func readProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, services.Wrap(services.ErrConfiguration, stageName, "read profile", path, err)
	}
	var export presetExport
	if err := json.Unmarshal(data, &export); err != nil {
		return Profile{}, services.Wrap(services.ErrConfiguration, stageName, "decode profile", path, err)
	}
	var presetName string
	if len(export.PresetList) > 0 {
		presetName, _ = export.PresetList[0].PresetName.(string)
	}
	if presetName == "" {
		return Profile{}, services.Wrap(services.ErrConfiguration, stageName, "decode profile", fmt.Sprintf("%s: PresetList[0].PresetName is not a non-empty string", path), nil)
	}
	return Profile{
		Path:        path,
		DisplayName: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		PresetName:  presetName,
	}, nil
}
