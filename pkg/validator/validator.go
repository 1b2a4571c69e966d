/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/devopstoolbox/devopstoolbox/pkg/errors"
	"github.com/devopstoolbox/devopstoolbox/pkg/header"
)

var extensions = map[Kind][]string{
	KindYAML: {".yaml", ".yml"},
	KindJSON: {".json"},
}

// Validator checks files for YAML or JSON syntax errors.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	// Recursive makes JSON directory scans descend into subdirectories.
	// YAML directory scans always recurse.
	Recursive bool
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithRecursive returns an Option that controls JSON directory recursion.
func WithRecursive(recursive bool) Option {
	return func(v *Validator) {
		v.Recursive = recursive
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks a single file or every matching file under a directory.
// Exactly one of file and dir must be set. Files are validated in sorted order.
func (v *Validator) Validate(ctx context.Context, kind Kind, file, dir string) (*ValidationResult, error) {
	start := time.Now()

	if _, ok := extensions[kind]; !ok {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "unsupported validation kind: "+string(kind))
	}
	if file == "" && dir == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "you must provide either a file or a directory")
	}
	if file != "" && dir != "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "provide either a file or a directory, not both")
	}

	var (
		files  []string
		source string
		err    error
	)
	if file != "" {
		source = file
		files, err = singleFile(file)
	} else {
		source = dir
		files, err = v.collect(kind, dir)
	}
	if err != nil {
		return nil, err
	}

	result := NewValidationResult(kind, source)
	result.Init(header.KindValidationResult, header.APIVersion, v.Version)

	check := ValidateYAMLFile
	if kind == KindJSON {
		check = ValidateJSONFile
	}

	for _, path := range files {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(errors.ErrCodeTimeout, "validation cancelled", ctx.Err())
		default:
		}

		fr := check(path)
		result.add(fr)
		validatedFilesTotal.WithLabelValues(string(kind), string(fr.Status)).Inc()

		if !fr.Valid() {
			slog.Debug("invalid file", "kind", kind, "path", path, "error", fr.Error)
		}
	}

	result.Summary.Duration = time.Since(start)
	validationDuration.WithLabelValues(string(kind)).Observe(result.Summary.Duration.Seconds())

	slog.Debug("validation completed",
		"kind", kind,
		"source", source,
		"valid", result.Summary.Valid,
		"invalid", result.Summary.Invalid,
		"total", result.Summary.Total,
		"duration", result.Summary.Duration)

	return result, nil
}

func singleFile(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "path not found", err,
			map[string]any{"path": path})
	}
	if info.IsDir() {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "expected a file, got a directory",
			map[string]any{"path": path})
	}
	return []string{path}, nil
}

// collect returns the sorted list of files under dir matching the kind's
// extensions. JSON scans stay at the top level unless Recursive is set.
func (v *Validator) collect(kind Kind, dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "path not found", err,
			map[string]any{"path": dir})
	}
	if !info.IsDir() {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "expected a directory, got a file",
			map[string]any{"path": dir})
	}

	recursive := kind == KindYAML || v.Recursive
	exts := extensions[kind]

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(exts, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to scan directory", err)
	}

	slices.Sort(files)
	return files, nil
}
