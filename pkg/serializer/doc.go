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

// Package serializer renders command results as tables, JSON or YAML.
//
// # Supported Formats
//
// Table (default for the CLI):
//   - Title line followed by aligned, upper-cased column headers
//   - Values that are not tables are flattened into FIELD/VALUE pairs
//
// JSON:
//   - Indented with two spaces
//   - Tables are emitted as {"title": ..., "items": [{column: value}, ...]}
//
// YAML:
//   - gopkg.in/yaml.v3, indent 2, same shape as JSON
//
// # Usage
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatTable, output)
//	defer w.Close()
//
//	t := serializer.NewTable("Pods in namespace default", "Namespace", "Pod Name")
//	t.AddRow("default", "api-7d9c")
//	if err := w.Serialize(ctx, t); err != nil {
//	    return err
//	}
//
// Types that are not tables can opt into tabular rendering by implementing
// Tabular. In JSON and YAML they are encoded as themselves, while a bare
// Table is encoded as {title, items} with one object per row.
package serializer
