package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"deo/internal/classify"
	"deo/internal/logging"
	"deo/internal/services"
)

// Scan walks root in lexical order and classifies every entry below it.
// Unreadable subtrees and marker files are skipped and logged. A root that
// is missing, not a directory, or unreadable is fatal.
func Scan(ctx context.Context, root string, classifier *classify.Classifier, logger *slog.Logger) ([]classify.Entry, error) {
	if classifier == nil {
		classifier = classify.New()
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, stageName, "open source", fmt.Sprintf("source directory %q does not exist", root), err)
		}
		return nil, services.Wrap(services.ErrConfiguration, stageName, "open source", fmt.Sprintf("cannot access source directory %q", root), err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrConfiguration, stageName, "open source", fmt.Sprintf("source %q is not a directory", root), nil)
	}

	var entries []classify.Entry
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			logging.WarnWithContext(logger, "skipping unreadable entry", "walk_entry_unreadable",
				logging.String(logging.FieldPath, path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check permissions on the source tree"),
				logging.String(logging.FieldImpact, "renames below this path are not discovered"),
			)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		isDir, isFile := entryType(path, d)
		entry, err := classifier.Classify(path, isFile, isDir)
		if err != nil {
			logging.WarnWithContext(logger, "skipping unreadable encode marker", "encode_marker_unreadable",
				logging.String(logging.FieldPath, path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check the marker file permissions"),
				logging.String(logging.FieldImpact, "session will be reported as unmapped"),
			)
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if walkErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, services.Wrap(services.ErrConfiguration, stageName, "walk source", fmt.Sprintf("cannot read source directory %q", root), walkErr)
	}

	logger.Debug("source walk finished",
		logging.String(logging.FieldPath, root),
		logging.Int("entries", len(entries)),
	)
	return entries, nil
}

// entryType resolves symlinks so linked rips classify like regular files.
func entryType(path string, d fs.DirEntry) (isDir, isFile bool) {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.IsDir(), d.Type().IsRegular()
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, false
	}
	return info.IsDir(), info.Mode().IsRegular()
}
