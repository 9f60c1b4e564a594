package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"deo/internal/discovery"
	"deo/internal/encoding"
	"deo/internal/media"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type fileView struct {
	Episode string `json:"episode,omitempty"`
	Input   string `json:"input"`
	Output  string `json:"output"`
}

type mappingView struct {
	Session   string     `json:"session"`
	Kind      media.Kind `json:"kind"`
	Location  string     `json:"location"`
	EncodeDir string     `json:"encode_dir"`
	Files     []fileView `json:"files"`
}

type unmappedDirView struct {
	Session  string     `json:"session"`
	Kind     media.Kind `json:"kind"`
	Location string     `json:"location"`
	Path     string     `json:"path"`
}

type scanView struct {
	RunID             string            `json:"run_id"`
	Root              string            `json:"root"`
	Mappings          []mappingView     `json:"mappings"`
	UnmappedSessions  []string          `json:"unmapped_sessions,omitempty"`
	UnmappedDirs      []unmappedDirView `json:"unmapped_encode_dirs,omitempty"`
	InvalidMarkers    []string          `json:"invalid_markers,omitempty"`
	Failures          []string          `json:"failures,omitempty"`
	Warnings          []string          `json:"warnings,omitempty"`
	UnknownEntryCount int               `json:"unknown_entries"`
}

type jobView struct {
	Session string          `json:"session"`
	Kind    media.Kind      `json:"kind"`
	Label   string          `json:"label"`
	Profile string          `json:"profile"`
	Input   string          `json:"input"`
	Output  string          `json:"output"`
	Status  encoding.Status `json:"status"`
	Error   string          `json:"error,omitempty"`
	Command string          `json:"command"`
}

func newMappingView(m media.Mapping) mappingView {
	view := mappingView{
		Session:   m.SessionID().String(),
		Kind:      m.Kind(),
		Location:  m.Location(),
		EncodeDir: m.EncodeDirPath(),
	}
	for _, f := range m.InputFiles() {
		view.Files = append(view.Files, fileView{Episode: f.Episode, Input: f.MKVPath, Output: f.MP4File})
	}
	return view
}

func newScanView(result *discovery.Result) scanView {
	view := scanView{
		RunID:             result.RunID,
		Root:              result.Root,
		Mappings:          []mappingView{},
		UnknownEntryCount: len(result.Unknown),
	}
	for _, m := range result.Mappings {
		view.Mappings = append(view.Mappings, newMappingView(m))
	}
	for _, kind := range media.Kinds {
		for _, id := range result.UnmappedSessions(kind) {
			view.UnmappedSessions = append(view.UnmappedSessions, id.String())
		}
		for _, dir := range result.UnmappedEncodeDirs(kind) {
			view.UnmappedDirs = append(view.UnmappedDirs, unmappedDirView{
				Session:  dir.Session.String(),
				Kind:     dir.Kind,
				Location: dir.Location,
				Path:     dir.Path,
			})
		}
	}
	for _, marker := range result.InvalidMarkers {
		view.InvalidMarkers = append(view.InvalidMarkers, invalidMarkerText(marker))
	}
	for _, failure := range result.Failures {
		view.Failures = append(view.Failures, failure.Path+": "+failure.Err.Error())
	}
	for _, warning := range result.Warnings {
		view.Warnings = append(view.Warnings, warning.String())
	}
	return view
}

func newJobView(outcome encoding.Outcome, binary string) jobView {
	job := outcome.Job
	view := jobView{
		Session: job.Session.String(),
		Kind:    job.Kind,
		Label:   job.Label(),
		Profile: job.Profile.DisplayName,
		Input:   job.Input,
		Output:  job.Output,
		Status:  outcome.Status,
		Command: encoding.CommandLine(binary, job),
	}
	if outcome.Err != nil {
		view.Error = outcome.Err.Error()
	}
	return view
}
