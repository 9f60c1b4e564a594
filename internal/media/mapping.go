package media

// Mapping is a session joined with its encode directory. It is implemented
// by TVSeriesMapping and MovieMapping only.
type Mapping interface {
	SessionID() SessionID
	Kind() Kind
	// Location is the season label or movie name of the encode directory.
	Location() string
	EncodeDirPath() string
	InputFiles() []InputFile
	FileCount() int

	mapping()
}

// TVSeriesMapping pairs a TV session with its season directory.
type TVSeriesMapping struct {
	ID        SessionID
	Session   TVSeriesSession
	EncodeDir TVSeriesEncodeDir
}

func NewTVSeriesMapping(session TVSeriesSession, dir TVSeriesEncodeDir) TVSeriesMapping {
	return TVSeriesMapping{ID: session.ID(), Session: session, EncodeDir: dir}
}

func (m TVSeriesMapping) SessionID() SessionID    { return m.ID }
func (m TVSeriesMapping) Kind() Kind              { return KindTVSeries }
func (m TVSeriesMapping) Location() string        { return m.EncodeDir.Location() }
func (m TVSeriesMapping) EncodeDirPath() string   { return m.EncodeDir.Path }
func (m TVSeriesMapping) InputFiles() []InputFile { return m.Session.InputFiles() }
func (m TVSeriesMapping) FileCount() int          { return m.Session.Len() }
func (TVSeriesMapping) mapping()                  {}

// MovieMapping pairs a movie session with its movie directory.
type MovieMapping struct {
	ID        SessionID
	Session   MovieSession
	EncodeDir MovieEncodeDir
}

func NewMovieMapping(session MovieSession, dir MovieEncodeDir) MovieMapping {
	return MovieMapping{ID: session.ID(), Session: session, EncodeDir: dir}
}

func (m MovieMapping) SessionID() SessionID    { return m.ID }
func (m MovieMapping) Kind() Kind              { return KindMovie }
func (m MovieMapping) Location() string        { return m.EncodeDir.Location() }
func (m MovieMapping) EncodeDirPath() string   { return m.EncodeDir.Path }
func (m MovieMapping) InputFiles() []InputFile { return m.Session.InputFiles() }
func (m MovieMapping) FileCount() int          { return m.Session.Len() }
func (MovieMapping) mapping()                  {}
