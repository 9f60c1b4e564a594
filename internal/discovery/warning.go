package discovery

import (
	"fmt"
	"strings"

	"deo/internal/media"
)

// WarningCode identifies the kind of ambiguous input a Warning reports.
type WarningCode string

const (
	WarnSessionKindConflict   WarningCode = "session_kind_conflict"
	WarnDuplicateEncodeMarker WarningCode = "duplicate_encode_marker"
	WarnEncodeKindConflict    WarningCode = "encode_kind_conflict"
	WarnMarkerNameNearMiss    WarningCode = "marker_name_near_miss"
	WarnExtensionCase         WarningCode = "extension_case"
)

// Warning is a diagnostic that did not stop discovery.
type Warning struct {
	Code    WarningCode
	Session media.SessionID
	Paths   []string
	Message string
}

func (w Warning) String() string {
	var b strings.Builder
	b.WriteString(string(w.Code))
	if !w.Session.IsZero() {
		fmt.Fprintf(&b, " [%s]", w.Session)
	}
	b.WriteString(": ")
	b.WriteString(w.Message)
	if len(w.Paths) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(w.Paths, ", "))
		b.WriteString(")")
	}
	return b.String()
}
