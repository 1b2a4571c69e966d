/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/devopstoolbox/devopstoolbox/pkg/errors"
	"github.com/devopstoolbox/devopstoolbox/pkg/header"
)

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name        string
		kind        Kind
		recursive   bool
		setup       func(t *testing.T, dir string) (file, directory string)
		wantValid   int
		wantInvalid int
		wantPassed  bool
	}{
		{
			name: "single valid yaml file",
			kind: KindYAML,
			setup: func(t *testing.T, dir string) (string, string) {
				return writeFile(t, dir, "valid.yaml", validYAML), ""
			},
			wantValid:  1,
			wantPassed: true,
		},
		{
			name: "single invalid yaml file",
			kind: KindYAML,
			setup: func(t *testing.T, dir string) (string, string) {
				return writeFile(t, dir, "invalid.yaml", invalidYAML), ""
			},
			wantInvalid: 1,
		},
		{
			name: "yaml directory with both extensions",
			kind: KindYAML,
			setup: func(t *testing.T, dir string) (string, string) {
				writeFile(t, dir, "valid1.yaml", simpleYAML)
				writeFile(t, dir, "valid2.yml", "name: test\n")
				writeFile(t, dir, "notes.txt", "key: [\n")
				return "", dir
			},
			wantValid:  2,
			wantPassed: true,
		},
		{
			name: "yaml directory with mixed results",
			kind: KindYAML,
			setup: func(t *testing.T, dir string) (string, string) {
				writeFile(t, dir, "valid.yaml", simpleYAML)
				writeFile(t, dir, "invalid.yaml", invalidYAML)
				return "", dir
			},
			wantValid:   1,
			wantInvalid: 1,
		},
		{
			name: "yaml directory always recurses",
			kind: KindYAML,
			setup: func(t *testing.T, dir string) (string, string) {
				writeFile(t, dir, "root.yaml", "level: root\n")
				writeFile(t, dir, "subdir/nested.yaml", "level: nested\n")
				return "", dir
			},
			wantValid:  2,
			wantPassed: true,
		},
		{
			name: "empty yaml directory",
			kind: KindYAML,
			setup: func(t *testing.T, dir string) (string, string) {
				return "", dir
			},
			wantPassed: true,
		},
		{
			name: "json directory stays at top level",
			kind: KindJSON,
			setup: func(t *testing.T, dir string) (string, string) {
				writeFile(t, dir, "valid.json", `{"key": "value"}`)
				writeFile(t, dir, "nested/broken.json", "{ not: valid, }")
				return "", dir
			},
			wantValid:  1,
			wantPassed: true,
		},
		{
			name:      "json directory recursive",
			kind:      KindJSON,
			recursive: true,
			setup: func(t *testing.T, dir string) (string, string) {
				writeFile(t, dir, "valid.json", `{"key": "value"}`)
				writeFile(t, dir, "nested/broken.json", "{ not: valid, }")
				return "", dir
			},
			wantValid:   1,
			wantInvalid: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, dir := tt.setup(t, t.TempDir())

			v := New(WithVersion("v0.0.1"), WithRecursive(tt.recursive))
			result, err := v.Validate(context.Background(), tt.kind, file, dir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Summary.Valid != tt.wantValid {
				t.Errorf("valid = %d, want %d", result.Summary.Valid, tt.wantValid)
			}
			if result.Summary.Invalid != tt.wantInvalid {
				t.Errorf("invalid = %d, want %d", result.Summary.Invalid, tt.wantInvalid)
			}
			if result.Summary.Total != tt.wantValid+tt.wantInvalid {
				t.Errorf("total = %d, want %d", result.Summary.Total, tt.wantValid+tt.wantInvalid)
			}
			if result.Passed() != tt.wantPassed {
				t.Errorf("passed = %v, want %v", result.Passed(), tt.wantPassed)
			}
			if result.Kind != header.KindValidationResult {
				t.Errorf("kind = %s, want %s", result.Kind, header.KindValidationResult)
			}
			if result.Metadata["version"] != "v0.0.1" {
				t.Errorf("version metadata = %q", result.Metadata["version"])
			}
		})
	}
}

func TestValidator_SortedOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "c.yaml", simpleYAML)
	writeFile(t, dir, "a.yml", simpleYAML)
	writeFile(t, dir, "b/z.yaml", simpleYAML)

	result, err := New().Validate(context.Background(), KindYAML, "", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for _, r := range result.Results {
		rel, _ := filepath.Rel(dir, r.Path)
		got = append(got, filepath.ToSlash(rel))
	}
	want := "a.yml,b/z.yaml,c.yaml"
	if strings.Join(got, ",") != want {
		t.Errorf("order = %v, want %s", got, want)
	}
}

func TestValidator_InvalidRequests(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "valid.yaml", validYAML)

	tests := []struct {
		name     string
		kind     Kind
		file     string
		dir      string
		wantCode errors.ErrorCode
		wantMsg  string
	}{
		{name: "neither", kind: KindYAML, wantCode: errors.ErrCodeInvalidRequest, wantMsg: "either a file or a directory"},
		{name: "both", kind: KindYAML, file: file, dir: dir, wantCode: errors.ErrCodeInvalidRequest, wantMsg: "not both"},
		{name: "unknown kind", kind: Kind("toml"), file: file, wantCode: errors.ErrCodeInvalidRequest, wantMsg: "unsupported"},
		{name: "missing file", kind: KindJSON, file: filepath.Join(dir, "nope.json"), wantCode: errors.ErrCodeNotFound, wantMsg: "path not found"},
		{name: "missing directory", kind: KindYAML, dir: filepath.Join(dir, "nope"), wantCode: errors.ErrCodeNotFound, wantMsg: "path not found"},
		{name: "file given as directory", kind: KindYAML, dir: file, wantCode: errors.ErrCodeInvalidRequest, wantMsg: "expected a directory"},
		{name: "directory given as file", kind: KindYAML, file: dir, wantCode: errors.ErrCodeInvalidRequest, wantMsg: "expected a file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Validate(context.Background(), tt.kind, tt.file, tt.dir)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := errors.CodeOf(err); code != tt.wantCode {
				t.Errorf("code = %s, want %s", code, tt.wantCode)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidator_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "valid.yaml", simpleYAML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New().Validate(ctx, KindYAML, "", dir); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestValidator_CountsFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.json", `{"a": 1}`)
	writeFile(t, dir, "bad.json", `{"a": }`)

	valid := validatedFilesTotal.WithLabelValues(string(KindJSON), string(FileStatusValid))
	invalid := validatedFilesTotal.WithLabelValues(string(KindJSON), string(FileStatusInvalid))
	beforeValid, beforeInvalid := testutil.ToFloat64(valid), testutil.ToFloat64(invalid)

	if _, err := New().Validate(context.Background(), KindJSON, "", dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(valid) - beforeValid; got != 1 {
		t.Errorf("valid counter delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(invalid) - beforeInvalid; got != 1 {
		t.Errorf("invalid counter delta = %v, want 1", got)
	}
}

func TestValidationResult_Table(t *testing.T) {
	r := NewValidationResult(KindYAML, "manifests")
	r.add(FileResult{Path: "a.yaml", Status: FileStatusValid})
	r.add(FileResult{Path: "b.yaml", Status: FileStatusInvalid, Error: "Line 3: mapping values are not allowed in this context"})

	tbl := r.Table()
	if tbl.Title != "YAML Validation Results" {
		t.Errorf("title = %q", tbl.Title)
	}
	if tbl.Len() != 2 {
		t.Fatalf("rows = %d, want 2", tbl.Len())
	}
	if tbl.Rows[1][1] != "invalid" {
		t.Errorf("status = %q, want invalid", tbl.Rows[1][1])
	}
	if got := r.SummaryLine(); got != "Summary: 1 valid, 1 invalid, 2 total" {
		t.Errorf("summary = %q", got)
	}
}
