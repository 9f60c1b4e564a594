package media

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidSessionID reports a session identifier that cannot name a session folder.
	ErrInvalidSessionID = errors.New("invalid session id")
	// ErrInvalidMovieName reports a movie name without a usable {tvdb-<id>} tag.
	ErrInvalidMovieName = errors.New("invalid movie name")
)

var tvdbTagPattern = regexp.MustCompile(`\{tvdb-(\d+)\}`)

// SessionID identifies one rip session, e.g. "session1".
type SessionID struct {
	value string
}

// NewSessionID validates value and wraps it as a SessionID.
func NewSessionID(value string) (SessionID, error) {
	if !validToken(value) {
		return SessionID{}, fmt.Errorf("%w: %q", ErrInvalidSessionID, value)
	}
	return SessionID{value: value}, nil
}

// MustSessionID is NewSessionID for values known to be valid. It panics otherwise.
func MustSessionID(value string) SessionID {
	id, err := NewSessionID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (id SessionID) String() string { return id.value }

// IsZero reports whether id was never assigned.
func (id SessionID) IsZero() bool { return id.value == "" }

// Compare orders session ids by their underlying string.
func (id SessionID) Compare(other SessionID) int {
	return strings.Compare(id.value, other.value)
}

func (id SessionID) MarshalText() ([]byte, error) {
	return []byte(id.value), nil
}

// MovieName is the canonical on-disk grouping name of a movie, such as
// "Return of the Jedi - {tvdb-698}".
type MovieName struct {
	value string
}

// NewMovieName validates value and wraps it as a MovieName.
func NewMovieName(value string) (MovieName, error) {
	if !validToken(value) || !tvdbTagPattern.MatchString(value) {
		return MovieName{}, fmt.Errorf("%w: %q", ErrInvalidMovieName, value)
	}
	return MovieName{value: value}, nil
}

func (n MovieName) String() string { return n.value }

// IsZero reports whether n was never assigned.
func (n MovieName) IsZero() bool { return n.value == "" }

// Compare orders movie names by their underlying string.
func (n MovieName) Compare(other MovieName) int {
	return strings.Compare(n.value, other.value)
}

// TVDBID returns the numeric id from the embedded {tvdb-<id>} tag.
func (n MovieName) TVDBID() int {
	match := tvdbTagPattern.FindStringSubmatch(n.value)
	if len(match) < 2 {
		return 0
	}
	id, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return id
}

func (n MovieName) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

func validToken(value string) bool {
	if value == "" || strings.TrimSpace(value) != value {
		return false
	}
	return !strings.ContainsAny(value, "/\\\x00")
}
