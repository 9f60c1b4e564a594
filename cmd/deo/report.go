package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"deo/internal/classify"
	"deo/internal/discovery"
	"deo/internal/media"
)

const emptyResultMessage = "Could not find any renames to encode"

var titleCaser = cases.Title(language.English)

// kindHeading is the section title for kind, e.g. "Television Series".
func kindHeading(kind media.Kind) string {
	return titleCaser.String(kind.Label())
}

// printScanResult writes the mapping tables grouped by kind, then any
// diagnostics.
func printScanResult(out io.Writer, result *discovery.Result, colorize bool) {
	if result.Empty() {
		fmt.Fprintln(out, emptyResultMessage)
	} else {
		for _, kind := range media.Kinds {
			rows := mappingRows(result.Mappings, kind)
			if len(rows) == 0 {
				continue
			}
			for _, line := range renderSectionHeader(kindHeading(kind), colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Session", "Location", "Files", "Encode Directory"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
		}
	}

	lines := diagnosticLines(result, colorize)
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(out)
	for _, line := range renderSectionHeader("Diagnostics", colorize) {
		fmt.Fprintln(out, line)
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}

func mappingRows(mappings []media.Mapping, kind media.Kind) [][]string {
	var rows [][]string
	for _, m := range mappings {
		if m.Kind() != kind {
			continue
		}
		rows = append(rows, []string{
			m.SessionID().String(),
			m.Location(),
			strconv.Itoa(m.FileCount()),
			m.EncodeDirPath(),
		})
	}
	return rows
}

func diagnosticLines(result *discovery.Result, colorize bool) []string {
	var lines []string
	for _, kind := range media.Kinds {
		if ids := result.UnmappedSessions(kind); len(ids) > 0 {
			names := make([]string, 0, len(ids))
			for _, id := range ids {
				names = append(names, id.String())
			}
			label := fmt.Sprintf("Unmapped %s", kind)
			lines = append(lines, renderStatusLine(label, statusWarn, "no encode_dir.txt: "+strings.Join(names, ", "), colorize))
		}
		for _, dir := range result.UnmappedEncodeDirs(kind) {
			lines = append(lines, renderStatusLine("Unused encode dir", statusWarn, fmt.Sprintf("[%s] %s has no %s renames", dir.Session, dir.Location, kind), colorize))
		}
	}
	for _, marker := range result.InvalidMarkers {
		lines = append(lines, renderStatusLine("Invalid marker", statusWarn, invalidMarkerText(marker), colorize))
	}
	for _, failure := range result.Failures {
		lines = append(lines, renderStatusLine("Failed entry", statusError, fmt.Sprintf("%s: %v", failure.Path, failure.Err), colorize))
	}
	for _, warning := range result.Warnings {
		lines = append(lines, renderStatusLine("Warning", statusWarn, warning.String(), colorize))
	}
	if n := len(result.Unknown); n > 0 {
		lines = append(lines, renderStatusLine("Unknown entries", statusInfo, fmt.Sprintf("%d ignored (use -v to list)", n), colorize))
	}
	return lines
}

func invalidMarkerText(marker classify.InvalidEncodeMarker) string {
	contents := strings.TrimSpace(marker.RawContents)
	if contents == "" {
		return fmt.Sprintf("%s (%s)", marker.MarkerPath, marker.Reason)
	}
	return fmt.Sprintf("%s -> %q (%s)", marker.MarkerPath, contents, marker.Reason)
}
