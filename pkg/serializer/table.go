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

package serializer

import "strings"

// Table is a titled grid of string cells.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty table with the given title and columns.
func NewTable(title string, columns ...string) *Table {
	return &Table{
		Title:   title,
		Columns: columns,
		Rows:    make([][]string, 0),
	}
}

// AddRow appends a row. Missing cells are padded with empty strings and
// extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Table implements Tabular.
func (t *Table) Table() *Table {
	return t
}

// Records returns each row as a map keyed by column name.
func (t *Table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Columns))
		for i, col := range t.Columns {
			rec[recordKey(col)] = row[i]
		}
		records = append(records, rec)
	}
	return records
}

type tableDocument struct {
	Title string              `json:"title" yaml:"title"`
	Items []map[string]string `json:"items" yaml:"items"`
}

func (t *Table) document() tableDocument {
	return tableDocument{Title: t.Title, Items: t.Records()}
}

// recordKey turns a column header into a lowerCamel key ("CPU Usage %" → "cpuUsagePercent").
func recordKey(column string) string {
	column = strings.ReplaceAll(column, "%", " percent")
	column = strings.ReplaceAll(column, "?", "")
	var b strings.Builder
	for i, word := range strings.Fields(column) {
		word = strings.ToLower(word)
		if i > 0 {
			word = strings.ToUpper(word[:1]) + word[1:]
		}
		b.WriteString(word)
	}
	return b.String()
}
