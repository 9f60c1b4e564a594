package media

// TVSeriesEncodeDir is the season directory a TV session encodes into.
type TVSeriesEncodeDir struct {
	Path string
	// Season is the "<title> {tvdb-<id>}/Season <NN>" suffix of Path.
	Season  string
	Session SessionID
}

func (d TVSeriesEncodeDir) Location() string { return d.Season }

// MovieEncodeDir is the movie directory a movie session encodes into.
type MovieEncodeDir struct {
	Path      string
	MovieName MovieName
	Session   SessionID
}

func (d MovieEncodeDir) Location() string { return d.MovieName.String() }
