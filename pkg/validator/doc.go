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

// Package validator checks local YAML and JSON files for syntax errors.
//
// # Overview
//
// A Validator takes either a single file or a directory. Directory scans
// collect *.yaml and *.yml files recursively for YAML, and *.json files for
// JSON (top level only unless WithRecursive(true) is set). Files are
// validated in sorted path order.
//
// YAML files may hold several documents separated by "---"; every document
// is decoded. Empty files are valid. JSON files must hold exactly one value.
//
// # Usage
//
//	v := validator.New(validator.WithVersion(version), validator.WithRecursive(true))
//	result, err := v.Validate(ctx, validator.KindJSON, "", "./manifests")
//	if err != nil {
//	    return err
//	}
//	for _, r := range result.Results {
//	    fmt.Printf("%s: %s %s\n", r.Path, r.Status, r.Error)
//	}
//
// # Error Reporting
//
// YAML errors carry the line reported by the decoder ("Line 3: mapping
// values are not allowed in this context"). JSON errors carry a 1-based line
// and column computed from the decoder offset ("line 1, column 7: invalid
// character '}' looking for beginning of value").
//
// A missing path, an unsupported kind, or passing both (or neither) of file
// and directory is returned as an error rather than as an invalid result.
//
// # Metrics
//
// Each validated file increments devopstoolbox_validated_files_total with
// kind and status labels on the default Prometheus registry.
package validator
