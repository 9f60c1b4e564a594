// Package selection decides which mappings are encoded and with which profile.
package selection

import (
	"fmt"
	"slices"

	"deo/internal/media"
	"deo/internal/profiles"
	"deo/internal/services"
)

const stageName = "selection"

// Selection is one mapping chosen for encoding together with its profile.
type Selection struct {
	Mapping media.Mapping
	Profile profiles.Profile
}

func (s Selection) String() string {
	return fmt.Sprintf("Copy %s -> %s with %s", s.Mapping.SessionID(), s.Mapping.Location(), s.Profile)
}

// Selector picks mappings to encode. An empty selection is not an error.
type Selector interface {
	Select(mappings []media.Mapping, set profiles.Set) ([]Selection, error)
}

// Rules selects mappings non-interactively. Empty Sessions or Kinds match
// everything; an empty Profile picks the set's default profile.
type Rules struct {
	Sessions []string
	Kinds    []media.Kind
	Profile  string
}

var _ Selector = Rules{}

// Select filters mappings in their given order and assigns one profile to all of them.
func (r Rules) Select(mappings []media.Mapping, set profiles.Set) ([]Selection, error) {
	sessions := make([]media.SessionID, 0, len(r.Sessions))
	for _, raw := range r.Sessions {
		id, err := media.NewSessionID(raw)
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, stageName, "parse session", fmt.Sprintf("%q", raw), err)
		}
		sessions = append(sessions, id)
	}

	var selected []media.Mapping
	for _, m := range mappings {
		if len(sessions) > 0 && !slices.Contains(sessions, m.SessionID()) {
			continue
		}
		if len(r.Kinds) > 0 && !slices.Contains(r.Kinds, m.Kind()) {
			continue
		}
		selected = append(selected, m)
	}
	if len(selected) == 0 {
		return nil, nil
	}

	profile, err := r.profile(set)
	if err != nil {
		return nil, err
	}
	out := make([]Selection, 0, len(selected))
	for _, m := range selected {
		out = append(out, Selection{Mapping: m, Profile: profile})
	}
	return out, nil
}

func (r Rules) profile(set profiles.Set) (profiles.Profile, error) {
	if r.Profile == "" {
		profile, ok := set.Default()
		if !ok {
			return profiles.Profile{}, services.Wrap(services.ErrValidation, stageName, "choose profile", "no profiles are available", nil)
		}
		return profile, nil
	}
	profile, ok := set.Find(r.Profile)
	if !ok {
		names := make([]string, 0, set.Len())
		for _, p := range set.Items() {
			names = append(names, p.DisplayName)
		}
		return profiles.Profile{}, services.Wrap(services.ErrValidation, stageName, "choose profile",
			fmt.Sprintf("unknown profile %q (available: %v)", r.Profile, names), nil)
	}
	return profile, nil
}
