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
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// yamlLinePattern extracts the position yaml.v3 embeds in syntax errors,
// e.g. "yaml: line 3: mapping values are not allowed in this context".
var yamlLinePattern = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)

// ValidateYAMLFile decodes every document of a YAML stream. Empty files are valid.
func ValidateYAMLFile(path string) FileResult {
	f, err := os.Open(path)
	if err != nil {
		return invalid(path, err.Error())
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	for {
		var doc any
		err := dec.Decode(&doc)
		if stderrors.Is(err, io.EOF) {
			return FileResult{Path: path, Status: FileStatusValid}
		}
		if err != nil {
			return invalid(path, yamlErrorMessage(err))
		}
	}
}

func yamlErrorMessage(err error) string {
	if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
		return fmt.Sprintf("Line %s: %s", m[1], m[2])
	}
	return err.Error()
}

// ValidateJSONFile parses a single JSON document and reports the line and
// column of the first syntax error.
func ValidateJSONFile(path string) FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return invalid(path, err.Error())
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		var syntaxErr *json.SyntaxError
		if stderrors.As(err, &syntaxErr) {
			line, col := position(data, syntaxErr.Offset)
			return invalid(path, fmt.Sprintf("line %d, column %d: %s", line, col, syntaxErr.Error()))
		}
		return invalid(path, err.Error())
	}
	return FileResult{Path: path, Status: FileStatusValid}
}

// position converts a json.SyntaxError offset, which counts the bytes read
// including the offending one, to a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	pos := int(offset) - 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(data) {
		pos = len(data)
	}
	before := data[:pos]
	line = bytes.Count(before, []byte{'\n'}) + 1
	col = pos - bytes.LastIndexByte(before, '\n')
	return line, col
}

func invalid(path, msg string) FileResult {
	return FileResult{Path: path, Status: FileStatusInvalid, Error: msg}
}
