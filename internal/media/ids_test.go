package media_test

import (
	"errors"
	"testing"

	"deo/internal/media"
)

func TestNewSessionIDValidation(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"session1", true},
		{"session42", true},
		{"", false},
		{" session1", false},
		{"session1/renames", false},
		{`session\1`, false},
	}
	for _, tc := range cases {
		id, err := media.NewSessionID(tc.value)
		if tc.ok {
			if err != nil {
				t.Fatalf("NewSessionID(%q) returned error: %v", tc.value, err)
			}
			if id.String() != tc.value {
				t.Fatalf("expected %q, got %q", tc.value, id.String())
			}
			continue
		}
		if !errors.Is(err, media.ErrInvalidSessionID) {
			t.Fatalf("NewSessionID(%q): expected ErrInvalidSessionID, got %v", tc.value, err)
		}
	}
}

func TestSessionIDEqualityAndOrdering(t *testing.T) {
	a := media.MustSessionID("session1")
	b := media.MustSessionID("session1")
	c := media.MustSessionID("session2")

	if a != b {
		t.Fatal("expected ids built from the same string to be equal")
	}
	seen := map[media.SessionID]int{a: 1}
	if seen[b] != 1 {
		t.Fatal("expected equal ids to hash to the same map key")
	}
	if a.Compare(c) >= 0 || c.Compare(a) <= 0 || a.Compare(b) != 0 {
		t.Fatalf("unexpected ordering: %d %d %d", a.Compare(c), c.Compare(a), a.Compare(b))
	}
	if (media.SessionID{}).IsZero() != true {
		t.Fatal("expected zero value to report IsZero")
	}
}

func TestMovieNameRequiresTVDBTag(t *testing.T) {
	name, err := media.NewMovieName("Return of the Jedi - {tvdb-698}")
	if err != nil {
		t.Fatalf("NewMovieName returned error: %v", err)
	}
	if name.TVDBID() != 698 {
		t.Fatalf("expected tvdb id 698, got %d", name.TVDBID())
	}
	if _, err := media.NewMovieName("Return of the Jedi"); !errors.Is(err, media.ErrInvalidMovieName) {
		t.Fatalf("expected ErrInvalidMovieName for untagged name, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, value := range []string{"tv", "TV", "series"} {
		if kind, err := media.ParseKind(value); err != nil || kind != media.KindTVSeries {
			t.Fatalf("ParseKind(%q) = %v, %v", value, kind, err)
		}
	}
	if kind, err := media.ParseKind("movies"); err != nil || kind != media.KindMovie {
		t.Fatalf("ParseKind(movies) = %v, %v", kind, err)
	}
	if _, err := media.ParseKind("music"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
