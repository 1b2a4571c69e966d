// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/devopstoolbox/devopstoolbox/pkg/header"
	"github.com/devopstoolbox/devopstoolbox/pkg/serializer"
)

// Kind selects the document syntax being validated.
type Kind string

const (
	KindYAML Kind = "yaml"
	KindJSON Kind = "json"
)

// FileStatus represents the outcome of validating a single file.
type FileStatus string

const (
	// FileStatusValid indicates the file parsed cleanly.
	FileStatusValid FileStatus = "valid"

	// FileStatusInvalid indicates the file has a syntax error.
	FileStatusInvalid FileStatus = "invalid"
)

// FileResult is the validation outcome for one file.
type FileResult struct {
	// Path is the file that was validated.
	Path string `json:"path" yaml:"path"`

	// Status is valid or invalid.
	Status FileStatus `json:"status" yaml:"status"`

	// Error describes the syntax error, with its position when known.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Valid reports whether the file parsed cleanly.
func (r FileResult) Valid() bool {
	return r.Status == FileStatusValid
}

// ValidationSummary contains aggregate statistics about a validation run.
type ValidationSummary struct {
	Valid    int           `json:"valid" yaml:"valid"`
	Invalid  int           `json:"invalid" yaml:"invalid"`
	Total    int           `json:"total" yaml:"total"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// ValidationResult represents the complete validation outcome.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Syntax is the document kind that was checked.
	Syntax Kind `json:"syntax" yaml:"syntax"`

	// Source is the file or directory that was validated.
	Source string `json:"source" yaml:"source"`

	// Summary contains aggregate validation statistics.
	Summary ValidationSummary `json:"summary" yaml:"summary"`

	// Results contains per-file validation details.
	Results []FileResult `json:"results" yaml:"results"`
}

// NewValidationResult creates a new ValidationResult with initialized slices.
func NewValidationResult(kind Kind, source string) *ValidationResult {
	return &ValidationResult{
		Syntax:  kind,
		Source:  source,
		Results: make([]FileResult, 0),
	}
}

func (r *ValidationResult) add(fr FileResult) {
	r.Results = append(r.Results, fr)
	r.Summary.Total++
	if fr.Valid() {
		r.Summary.Valid++
	} else {
		r.Summary.Invalid++
	}
}

// Passed reports whether no file failed validation. An empty run passes.
func (r *ValidationResult) Passed() bool {
	return r.Summary.Invalid == 0
}

// Table renders the per-file results.
func (r *ValidationResult) Table() *serializer.Table {
	t := serializer.NewTable(fmt.Sprintf("%s Validation Results", strings.ToUpper(string(r.Syntax))),
		"File", "Status", "Error")
	for _, fr := range r.Results {
		t.AddRow(fr.Path, string(fr.Status), fr.Error)
	}
	return t
}

// SummaryLine renders the run summary in one line.
func (r *ValidationResult) SummaryLine() string {
	return fmt.Sprintf("Summary: %d valid, %d invalid, %d total",
		r.Summary.Valid, r.Summary.Invalid, r.Summary.Total)
}
