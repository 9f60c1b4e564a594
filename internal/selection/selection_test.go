package selection_test

import (
	"errors"
	"testing"

	"deo/internal/media"
	"deo/internal/profiles"
	"deo/internal/selection"
	"deo/internal/services"
)

func tvMapping(t *testing.T, session string) media.Mapping {
	t.Helper()
	id := media.MustSessionID(session)
	file, err := media.NewTVSeriesRenameFile("/src/Rips/"+session+"/renames/S01E01 - Pilot.mkv", id, "S01E01", "S01E01 - Pilot.mkv")
	if err != nil {
		t.Fatalf("NewTVSeriesRenameFile: %v", err)
	}
	return media.NewTVSeriesMapping(
		media.NewSession(id, []media.TVSeriesRenameFile{file}),
		media.TVSeriesEncodeDir{Path: "/src/Encodes/Show {tvdb-1}/Season 01", Season: "Show {tvdb-1}/Season 01", Session: id},
	)
}

func movieMapping(t *testing.T, session string) media.Mapping {
	t.Helper()
	id := media.MustSessionID(session)
	file, err := media.NewMovieRenameFile("/src/Rips/"+session+"/renames/Film {tvdb-2}.mkv", id, "Film {tvdb-2}.mkv")
	if err != nil {
		t.Fatalf("NewMovieRenameFile: %v", err)
	}
	name, err := media.NewMovieName("Film {tvdb-2}")
	if err != nil {
		t.Fatalf("NewMovieName: %v", err)
	}
	return media.NewMovieMapping(
		media.NewSession(id, []media.MovieRenameFile{file}),
		media.MovieEncodeDir{Path: "/src/Encodes/Film {tvdb-2}", MovieName: name, Session: id},
	)
}

func testProfiles() profiles.Set {
	return profiles.NewSet([]profiles.Profile{
		{Path: "/p/x265.json", DisplayName: "x265", PresetName: "H.265 MKV"},
		{Path: "/p/fast.json", DisplayName: "fast", PresetName: "Fast 1080p30"},
	})
}

func TestRulesSelectEverythingWithDefaultProfile(t *testing.T) {
	mappings := []media.Mapping{tvMapping(t, "session1"), movieMapping(t, "session2")}

	selected, err := selection.Rules{}.Select(mappings, testProfiles())
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("expected two selections, got %d", len(selected))
	}
	for _, s := range selected {
		if s.Profile.DisplayName != "fast" {
			t.Fatalf("expected default profile, got %s", s.Profile)
		}
	}
	if got := selected[0].String(); got != "Copy session1 -> Show {tvdb-1}/Season 01 with fast" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestRulesFilters(t *testing.T) {
	mappings := []media.Mapping{tvMapping(t, "session1"), tvMapping(t, "session3"), movieMapping(t, "session2")}

	tests := []struct {
		name  string
		rules selection.Rules
		want  []string
	}{
		{name: "session", rules: selection.Rules{Sessions: []string{"session3"}}, want: []string{"session3"}},
		{name: "kind", rules: selection.Rules{Kinds: []media.Kind{media.KindMovie}}, want: []string{"session2"}},
		{name: "both", rules: selection.Rules{Sessions: []string{"session1", "session2"}, Kinds: []media.Kind{media.KindTVSeries}}, want: []string{"session1"}},
		{name: "nothing", rules: selection.Rules{Sessions: []string{"session9"}}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected, err := tt.rules.Select(mappings, testProfiles())
			if err != nil {
				t.Fatalf("Select returned error: %v", err)
			}
			var got []string
			for _, s := range selected {
				got = append(got, s.Mapping.SessionID().String())
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v want %v", got, tt.want)
				}
			}
		})
	}
}

func TestRulesNamedProfile(t *testing.T) {
	mappings := []media.Mapping{tvMapping(t, "session1")}

	selected, err := selection.Rules{Profile: "X265"}.Select(mappings, testProfiles())
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if selected[0].Profile.PresetName != "H.265 MKV" {
		t.Fatalf("unexpected profile %+v", selected[0].Profile)
	}

	_, err = selection.Rules{Profile: "slow"}.Select(mappings, testProfiles())
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown profile, got %v", err)
	}
}

func TestRulesRejectsInvalidSessionAndEmptyProfiles(t *testing.T) {
	mappings := []media.Mapping{tvMapping(t, "session1")}

	if _, err := (selection.Rules{Sessions: []string{"a/b"}}).Select(mappings, testProfiles()); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad session id, got %v", err)
	}
	if _, err := (selection.Rules{}).Select(mappings, profiles.Set{}); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation without profiles, got %v", err)
	}
	selected, err := selection.Rules{}.Select(nil, profiles.Set{})
	if err != nil || len(selected) != 0 {
		t.Fatalf("expected empty selection without error, got %v %v", selected, err)
	}
}
