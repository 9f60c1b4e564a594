package discovery

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"deo/internal/classify"
	"deo/internal/logging"
	"deo/internal/media"
	"deo/internal/services"
)

const stageName = "discovery"

// Options configures a discovery run.
type Options struct {
	// Classifier defaults to one backed by the OS filesystem.
	Classifier *classify.Classifier
	Logger     *slog.Logger
}

// Result is everything one discovery run learned about a source tree.
type Result struct {
	RunID string
	Root  string

	Mappings       []media.Mapping
	Unknown        []classify.UnknownEntry
	InvalidMarkers []classify.InvalidEncodeMarker
	Failures       []Failure
	Warnings       []Warning

	TVSessions      map[media.SessionID]media.TVSeriesSession
	MovieSessions   map[media.SessionID]media.MovieSession
	TVEncodeDirs    map[media.SessionID]media.TVSeriesEncodeDir
	MovieEncodeDirs map[media.SessionID]media.MovieEncodeDir
}

// Discover scans root and reconciles what it finds. The returned error is
// non-nil only when the root cannot be walked or ctx is cancelled.
func Discover(ctx context.Context, root string, opts Options) (*Result, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(services.WithStage(ctx, stageName), runID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, stageName))

	entries, err := Scan(ctx, root, opts.Classifier, logger)
	if err != nil {
		return nil, err
	}

	result := NewResult(entries)
	result.RunID = runID
	result.Root = root
	result.log(logger)
	return result, nil
}

// NewResult runs aggregation, resolution and reconciliation over already
// classified entries.
func NewResult(entries []classify.Entry) *Result {
	result := &Result{}
	for _, entry := range entries {
		switch e := entry.(type) {
		case classify.UnknownEntry:
			result.Unknown = append(result.Unknown, e)
		case classify.InvalidEncodeMarker:
			result.InvalidMarkers = append(result.InvalidMarkers, e)
		case classify.TVRename, classify.MovieRename, classify.EncodeTarget:
		}
	}

	agg := Aggregate(entries)
	res := Resolve(entries)

	result.TVSessions = agg.TV
	result.MovieSessions = agg.Movie
	result.TVEncodeDirs = res.TV
	result.MovieEncodeDirs = res.Movie
	result.Failures = agg.Failures
	result.Mappings = Reconcile(agg.TV, res.TV, agg.Movie, res.Movie)

	result.Warnings = append(result.Warnings, agg.Warnings...)
	result.Warnings = append(result.Warnings, res.Warnings...)
	result.Warnings = append(result.Warnings, nearMissWarnings(result.Unknown)...)
	return result
}

// Empty reports whether no session could be mapped to an encode directory.
func (r *Result) Empty() bool {
	return len(r.Mappings) == 0
}

// UnmappedSessions lists sessions of kind that have renames but no encode
// directory of the same kind, in ascending id order.
func (r *Result) UnmappedSessions(kind media.Kind) []media.SessionID {
	switch kind {
	case media.KindTVSeries:
		return missingFrom(r.TVSessions, r.TVEncodeDirs)
	case media.KindMovie:
		return missingFrom(r.MovieSessions, r.MovieEncodeDirs)
	default:
		return nil
	}
}

// UnmappedEncodeDirs lists encode directories of kind whose session has no
// renames of the same kind, in ascending id order.
func (r *Result) UnmappedEncodeDirs(kind media.Kind) []UnmappedEncodeDir {
	var out []UnmappedEncodeDir
	switch kind {
	case media.KindTVSeries:
		for _, id := range missingFrom(r.TVEncodeDirs, r.TVSessions) {
			dir := r.TVEncodeDirs[id]
			out = append(out, UnmappedEncodeDir{Kind: kind, Session: id, Path: dir.Path, Location: dir.Location()})
		}
	case media.KindMovie:
		for _, id := range missingFrom(r.MovieEncodeDirs, r.MovieSessions) {
			dir := r.MovieEncodeDirs[id]
			out = append(out, UnmappedEncodeDir{Kind: kind, Session: id, Path: dir.Path, Location: dir.Location()})
		}
	}
	return out
}

// FileCount is the number of rename files across all mappings.
func (r *Result) FileCount() int {
	total := 0
	for _, m := range r.Mappings {
		total += m.FileCount()
	}
	return total
}

func (r *Result) log(logger *slog.Logger) {
	for _, entry := range r.Unknown {
		logger.Debug("ignoring unrecognised entry",
			logging.String(logging.FieldPath, entry.Path),
			logging.Bool("is_dir", entry.IsDir),
		)
	}
	for _, marker := range r.InvalidMarkers {
		logging.WarnWithContext(logger, "encode marker ignored", "invalid_encode_marker",
			logging.String(logging.FieldSession, marker.Session.String()),
			logging.String(logging.FieldPath, marker.MarkerPath),
			logging.String("declared", marker.RawContents),
			logging.String("reason", string(marker.Reason)),
			logging.String(logging.FieldErrorHint, "point encode_dir.txt at an existing '<title> {tvdb-N}' or '<title> {tvdb-N}/Season NN' directory"),
			logging.String(logging.FieldImpact, "session renames will not be encoded"),
		)
	}
	for _, failure := range r.Failures {
		logging.WarnWithContext(logger, "rename skipped", "rename_normalize_failed",
			logging.String(logging.FieldPath, failure.Path),
			logging.Error(failure.Err),
			logging.String(logging.FieldImpact, "file will not be encoded"),
		)
	}
	for _, warning := range r.Warnings {
		logging.WarnWithContext(logger, warning.Message, string(warning.Code),
			logging.String(logging.FieldSession, warning.Session.String()),
			logging.Any("paths", warning.Paths),
		)
	}

	unmapped := 0
	for _, kind := range media.Kinds {
		unmapped += len(r.UnmappedSessions(kind))
	}
	logger.Info("discovery complete",
		logging.String(logging.FieldPath, r.Root),
		logging.Int("mappings", len(r.Mappings)),
		logging.Int("files", r.FileCount()),
		logging.Int("unknown", len(r.Unknown)),
		logging.Int("invalid_markers", len(r.InvalidMarkers)),
		logging.Int("unmapped_sessions", unmapped),
		logging.Int("warnings", len(r.Warnings)),
	)
}
