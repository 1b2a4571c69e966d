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

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newPodTable() *Table {
	t := NewTable("Pods in namespace default", "Namespace", "Pod Name", "CPU Usage %")
	t.AddRow("default", "api-7d9c", "3.33%")
	t.AddRow("default", "worker-0")
	return t
}

func TestTable_AddRowPadsAndTruncates(t *testing.T) {
	tbl := NewTable("t", "A", "B")
	tbl.AddRow("1")
	tbl.AddRow("1", "2", "3")

	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"1", ""}, tbl.Rows[0])
	assert.Equal(t, []string{"1", "2"}, tbl.Rows[1])
}

func TestTable_Records(t *testing.T) {
	records := newPodTable().Records()

	require.Len(t, records, 2)
	assert.Equal(t, map[string]string{
		"namespace":       "default",
		"podName":         "api-7d9c",
		"cpuUsagePercent": "3.33%",
	}, records[0])
}

func TestRecordKey(t *testing.T) {
	tests := map[string]string{
		"Namespace":               "namespace",
		"Pod Name":                "podName",
		"Mem Usage %":             "memUsagePercent",
		"Suspended?":              "suspended",
		"Internal Traffic Policy": "internalTrafficPolicy",
	}
	for in, want := range tests {
		assert.Equal(t, want, recordKey(in), in)
	}
}

func TestWriter_SerializeTabular(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), newPodTable()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Pods in namespace default", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "NAMESPACE"))
	assert.Contains(t, lines[1], "POD NAME")
	assert.Contains(t, lines[2], "api-7d9c")
	assert.Contains(t, lines[2], "3.33%")
}

func TestWriter_SerializeTabularJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatJSON, &buf).Serialize(context.Background(), newPodTable()))

	var doc tableDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "Pods in namespace default", doc.Title)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "worker-0", doc.Items[1]["podName"])
}

func TestWriter_SerializeTabularYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatYAML, &buf).Serialize(context.Background(), newPodTable()))

	var doc tableDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "api-7d9c", doc.Items[0]["podName"])
}

func TestWriter_SerializeEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable("Jobs in all namespaces", "Namespace", "Job Name")
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), tbl))

	assert.Equal(t, "Jobs in all namespaces\nNAMESPACE  JOB NAME\n", buf.String())
}

func TestWriter_SerializeStringTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), "s3cr3t"))
	assert.Equal(t, "s3cr3t\n", buf.String())
}

type report struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (r report) Table() *Table {
	t := NewTable("Report", "Name", "Count")
	t.AddRow(r.Name, fmt.Sprint(r.Count))
	return t
}

func TestWriter_SerializeTabularStructKeepsShape(t *testing.T) {
	r := report{Name: "yaml", Count: 2}

	var tbl bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &tbl).Serialize(context.Background(), r))
	assert.True(t, strings.HasPrefix(tbl.String(), "Report\nNAME"))

	var js bytes.Buffer
	require.NoError(t, NewWriter(FormatJSON, &js).Serialize(context.Background(), r))
	assert.JSONEq(t, `{"name": "yaml", "count": 2}`, js.String())
}
