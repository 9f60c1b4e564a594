package discovery

import "deo/internal/media"

// Reconcile joins sessions with encode directories of the same kind by
// session id. TV mappings come first, then movie mappings, each group in
// ascending session id order. Sessions or directories without a partner are
// left out; see UnmappedSessions and UnmappedEncodeDirs.
func Reconcile(
	tvSessions map[media.SessionID]media.TVSeriesSession,
	tvDirs map[media.SessionID]media.TVSeriesEncodeDir,
	movieSessions map[media.SessionID]media.MovieSession,
	movieDirs map[media.SessionID]media.MovieEncodeDir,
) []media.Mapping {
	mappings := make([]media.Mapping, 0, min(len(tvSessions), len(tvDirs))+min(len(movieSessions), len(movieDirs)))
	for _, id := range sortedIDs(tvSessions) {
		if dir, ok := tvDirs[id]; ok {
			mappings = append(mappings, media.NewTVSeriesMapping(tvSessions[id], dir))
		}
	}
	for _, id := range sortedIDs(movieSessions) {
		if dir, ok := movieDirs[id]; ok {
			mappings = append(mappings, media.NewMovieMapping(movieSessions[id], dir))
		}
	}
	return mappings
}

// UnmappedEncodeDir is a resolved encode directory with no sessions of its kind.
type UnmappedEncodeDir struct {
	Kind     media.Kind
	Session  media.SessionID
	Path     string
	Location string
}

func missingFrom[A, B any](have map[media.SessionID]A, partners map[media.SessionID]B) []media.SessionID {
	var ids []media.SessionID
	for _, id := range sortedIDs(have) {
		if _, ok := partners[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}
