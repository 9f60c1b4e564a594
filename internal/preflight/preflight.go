package preflight

import (
	"context"
	"fmt"
	"os"
	"slices"

	"golang.org/x/sys/unix"

	"deo/internal/config"
	"deo/internal/deps"
	"deo/internal/media"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every readiness check for cfg. source overrides the
// configured source directory when non-empty.
func RunAll(ctx context.Context, cfg *config.Config, source string) []Result {
	if cfg == nil {
		return nil
	}
	if source == "" {
		source = cfg.Paths.SourceDir
	}

	var results []Result
	if source == "" {
		results = append(results, Result{Name: "Source directory", Detail: "not configured (use --source or paths.source_dir)"})
	} else {
		results = append(results, CheckDirectoryAccess("Source directory", source, unix.R_OK|unix.X_OK))
	}
	results = append(results, CheckDirectoryAccess("Profiles directory", cfg.Paths.ProfilesDir, unix.R_OK|unix.X_OK))

	if ctx.Err() != nil {
		return results
	}
	for _, status := range CheckSystemDeps(cfg) {
		result := Result{Name: status.Name, Passed: status.Available, Detail: status.Command}
		if !status.Available {
			result.Detail = status.Detail
			if status.Optional {
				result.Passed = true
				result.Detail += " (optional)"
			}
		}
		results = append(results, result)
	}
	return results
}

// CheckSystemDeps evaluates the external binaries deo needs.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	return deps.CheckBinaries([]deps.Requirement{
		{
			Name:        "HandBrakeCLI",
			Command:     cfg.HandBrake.Binary,
			Description: "Required to encode renames",
		},
	})
}

// CheckEncodeDirs verifies that every mapping's encode directory is writable.
// Each directory is checked once, in mapping order.
func CheckEncodeDirs(mappings []media.Mapping) []Result {
	var seen []string
	var results []Result
	for _, m := range mappings {
		dir := m.EncodeDirPath()
		if slices.Contains(seen, dir) {
			continue
		}
		seen = append(seen, dir)
		results = append(results, CheckDirectoryAccess(m.Location(), dir, unix.R_OK|unix.W_OK|unix.X_OK))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// CheckDirectoryAccess verifies that the directory exists and grants mode
// (a combination of unix.R_OK, unix.W_OK and unix.X_OK).
func CheckDirectoryAccess(name, path string, mode uint32) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s ok)", path, accessLabel(mode))}
}

func accessLabel(mode uint32) string {
	if mode&unix.W_OK != 0 {
		return "read/write"
	}
	return "read"
}
