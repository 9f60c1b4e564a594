package encoding

import (
	"path/filepath"

	"deo/internal/media"
	"deo/internal/profiles"
	"deo/internal/selection"
)

// Job is one rename file to encode with one profile.
type Job struct {
	Session  media.SessionID
	Kind     media.Kind
	Location string
	// Episode is empty for movies.
	Episode string
	Input   string
	Output  string
	Profile profiles.Profile
}

// Label names the job in reports: the episode token for TV, the output file for movies.
func (j Job) Label() string {
	if j.Episode != "" {
		return j.Episode
	}
	return filepath.Base(j.Output)
}

// Plan expands selections into jobs, keeping selection order and each
// session's file order.
func Plan(selections []selection.Selection) []Job {
	var jobs []Job
	for _, s := range selections {
		m := s.Mapping
		for _, file := range m.InputFiles() {
			jobs = append(jobs, Job{
				Session:  m.SessionID(),
				Kind:     m.Kind(),
				Location: m.Location(),
				Episode:  file.Episode,
				Input:    file.MKVPath,
				Output:   filepath.Join(m.EncodeDirPath(), file.MP4File),
				Profile:  s.Profile,
			})
		}
	}
	return jobs
}

// HandBrakeArgs renders the HandBrakeCLI arguments for job.
func HandBrakeArgs(job Job) []string {
	return []string{
		"--preset-import-file", job.Profile.Path,
		"--preset", job.Profile.PresetName,
		"--input", job.Input,
		"--output", job.Output,
		"--json",
	}
}
