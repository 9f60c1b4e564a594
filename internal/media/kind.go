package media

import (
	"fmt"
	"strings"
)

// Kind separates TV series renditions from movie renditions.
type Kind int

const (
	KindTVSeries Kind = iota
	KindMovie
)

// Kinds lists every kind in reporting order.
var Kinds = []Kind{KindTVSeries, KindMovie}

func (k Kind) String() string {
	switch k {
	case KindTVSeries:
		return "tv"
	case KindMovie:
		return "movie"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Label is the human readable name used in headings.
func (k Kind) Label() string {
	switch k {
	case KindTVSeries:
		return "television series"
	case KindMovie:
		return "movies"
	default:
		return k.String()
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind accepts the spellings used on the command line.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "tv", "series", "tvseries", "tv-series", "show", "shows":
		return KindTVSeries, nil
	case "movie", "movies", "film":
		return KindMovie, nil
	default:
		return 0, fmt.Errorf("unknown kind %q (want tv or movie)", value)
	}
}
