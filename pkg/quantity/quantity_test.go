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

package quantity

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCPU(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "nanocores one millicore", input: "1000000n", want: "1.00m"},
		{name: "nanocores half millicore", input: "500000n", want: "0.50m"},
		{name: "nanocores rounds down", input: "23434n", want: "0.02m"},
		{name: "nanocores metrics sample", input: "25160674n", want: "25.16m"},
		{name: "microcores", input: "1500u", want: "1.50m"},
		{name: "millicores passthrough", input: "100m", want: "100m"},
		{name: "millicores 500", input: "500m", want: "500m"},
		{name: "millicores 1000", input: "1000m", want: "1000m"},
		{name: "one core", input: "1", want: "1000.00m"},
		{name: "two cores", input: "2", want: "2000.00m"},
		{name: "half core", input: "0.5", want: "500.00m"},
		{name: "zero nanocores", input: "0n", want: "0.00m"},
		{name: "zero millicores", input: "0m", want: "0m"},
		{name: "zero cores", input: "0", want: "0.00m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCPU(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCPUMillicores(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "1", want: 1000},
		{input: "0.5", want: 500},
		{input: "250m", want: 250},
		{input: "1500u", want: 1.5},
		{input: "2500000n", want: 2.5},
		{input: "0n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCPUMillicores(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseCPUMillicores_SuffixScaling(t *testing.T) {
	for _, k := range []int64{0, 1, 999, 23434, 1_000_000, 25_160_674, 9_000_000_000_000} {
		n, err := ParseCPUMillicores(strconv.FormatInt(k, 10) + "n")
		require.NoError(t, err)
		assert.InDelta(t, float64(k)/1_000_000, n, 1e-9)

		u, err := ParseCPUMillicores(strconv.FormatInt(k, 10) + "u")
		require.NoError(t, err)
		assert.InDelta(t, float64(k)/1_000, u, 1e-9)
	}
}

func TestParseCPU_Errors(t *testing.T) {
	for _, input := range []string{"", "abc", "1.5m", "xn", "u", "m", "12Ki"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCPU(input)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe), "expected *ParseError, got %T", err)
			assert.Equal(t, input, pe.Input)

			var numErr *strconv.NumError
			assert.True(t, errors.As(err, &numErr))

			_, err = ParseCPUMillicores(input)
			assert.Error(t, err)
		})
	}
}

func TestParseCPUMillicores_RejectsHexFloat(t *testing.T) {
	for _, input := range []string{"0x1p4", "-0X10", "+0x2"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCPUMillicores(input)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, input, pe.Input)
		})
	}
}

func TestParseMemory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "1024Ki", input: "1024Ki", want: "1.00 Mi"},
		{name: "512Ki", input: "512Ki", want: "512.00 Ki"},
		{name: "7988Ki", input: "7988Ki", want: "7.80 Mi"},
		{name: "1024Mi", input: "1024Mi", want: "1.00 Gi"},
		{name: "512Mi", input: "512Mi", want: "512.00 Mi"},
		{name: "100Mi", input: "100Mi", want: "100.00 Mi"},
		{name: "1Gi", input: "1Gi", want: "1.00 Gi"},
		{name: "2Gi", input: "2Gi", want: "2.00 Gi"},
		{name: "tebibytes render as Gi", input: "1Ti", want: "1024.00 Gi"},
		{name: "bytes to Ki", input: "1024", want: "1.00 Ki"},
		{name: "raw bytes", input: "512", want: "512 B"},
		{name: "zero Ki", input: "0Ki", want: "0 B"},
		{name: "zero", input: "0", want: "0 B"},
		{name: "invalid", input: "invalid", want: "invalid"},
		{name: "decimal suffix", input: "100MB", want: "100MB"},
		{name: "fractional", input: "1.5Gi", want: "1.5Gi"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMemory(tt.input))
		})
	}
}

func TestParseMemoryBytes(t *testing.T) {
	tests := []struct {
		input  string
		want   int64
		wantOK bool
	}{
		{input: "1024Ki", want: 1_048_576, wantOK: true},
		{input: "512", want: 512, wantOK: true},
		{input: "1Mi", want: Mi, wantOK: true},
		{input: "3Gi", want: 3 * Gi, wantOK: true},
		{input: "2Ti", want: 2 * Ti, wantOK: true},
		{input: "invalid", wantOK: false},
		{input: "100MB", wantOK: false},
		{input: "-1Ki", wantOK: false},
		{input: "99999999999Ti", wantOK: false},
		{input: "99999999999999999999", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseMemoryBytes(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatBytes_Idempotent(t *testing.T) {
	for _, input := range []string{"1024Ki", "7988Ki", "512", "3Gi", "1Ti"} {
		t.Run(input, func(t *testing.T) {
			bytes, ok := ParseMemoryBytes(input)
			require.True(t, ok)

			first := FormatBytes(bytes)
			assert.Equal(t, first, FormatBytes(bytes))
			assert.Equal(t, first, ParseMemory(input))
		})
	}
}

func TestFormatBytes_Boundaries(t *testing.T) {
	assert.Equal(t, "1023 B", FormatBytes(Ki-1))
	assert.Equal(t, "1.00 Ki", FormatBytes(Ki))
	assert.Equal(t, "1024.00 Ki", FormatBytes(Mi-1))
	assert.Equal(t, "1.00 Mi", FormatBytes(Mi))
	assert.Equal(t, "1.00 Gi", FormatBytes(Gi))
}

func TestCPUPercentage(t *testing.T) {
	tests := []struct {
		name  string
		usage string
		limit string
		want  string
	}{
		{name: "nanocores", usage: "10000n", limit: "300000n", want: "3.33%"},
		{name: "mixed units", usage: "10000m", limit: "300000000000n", want: "3.33%"},
		{name: "millicores vs cores", usage: "50m", limit: "1", want: "5.00%"},
		{name: "microcores", usage: "500u", limit: "1m", want: "50.00%"},
		{name: "over limit", usage: "400m", limit: "200m", want: "200.00%"},
		{name: "missing limit", usage: "50m", limit: "", want: Unavailable},
		{name: "missing usage", usage: "", limit: "200m", want: Unavailable},
		{name: "malformed usage", usage: "x", limit: "200m", want: Unavailable},
		{name: "malformed limit", usage: "50m", limit: "lots", want: Unavailable},
		{name: "zero limit", usage: "50m", limit: "0", want: Unavailable},
		{name: "infinite limit", usage: "50m", limit: "inf", want: "0.00%"},
		{name: "nan usage", usage: "NaN", limit: "1", want: Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CPUPercentage(tt.usage, tt.limit))
		})
	}
}

func TestMemoryPercentage(t *testing.T) {
	tests := []struct {
		name  string
		usage string
		limit string
		want  string
	}{
		{name: "half", usage: "512Ki", limit: "1024Ki", want: "50.00%"},
		{name: "mixed units", usage: "64Mi", limit: "256Mi", want: "25.00%"},
		{name: "bytes vs Gi", usage: "1073741824", limit: "2Gi", want: "50.00%"},
		{name: "missing limit", usage: "64Mi", limit: "", want: Unavailable},
		{name: "malformed usage", usage: "x", limit: "1000", want: Unavailable},
		{name: "decimal suffix limit", usage: "64Mi", limit: "1G", want: Unavailable},
		{name: "zero limit", usage: "64Mi", limit: "0Ki", want: Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MemoryPercentage(tt.usage, tt.limit))
		})
	}
}

func TestPercentages_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "3.33%", CPUPercentage("10000n", "300000n"))
			assert.Equal(t, "50.00%", MemoryPercentage("512Ki", "1024Ki"))
		}()
	}
	wg.Wait()
}
