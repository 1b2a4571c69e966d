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
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unavailable is rendered in place of a value that cannot be computed.
const Unavailable = "-"

const (
	nanocoresPerMillicore  = 1_000_000
	microcoresPerMillicore = 1_000
	millicoresPerCore      = 1_000
)

// Binary byte multipliers.
const (
	Ki int64 = 1 << 10
	Mi int64 = 1 << 20
	Gi int64 = 1 << 30
	Ti int64 = 1 << 40
)

var memoryPattern = regexp.MustCompile(`^(\d+)(Ki|Mi|Gi|Ti)?$`)

var memoryMultipliers = map[string]int64{
	"":   1,
	"Ki": Ki,
	"Mi": Mi,
	"Gi": Gi,
	"Ti": Ti,
}

// ParseError reports a CPU quantity that could not be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid cpu quantity %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseCPUMillicores converts a CPU quantity (n, u, m or whole cores) to millicores.
func ParseCPUMillicores(text string) (float64, error) {
	switch {
	case strings.HasSuffix(text, "n"):
		v, err := parseInt(text, "n")
		return float64(v) / nanocoresPerMillicore, err
	case strings.HasSuffix(text, "u"):
		v, err := parseInt(text, "u")
		return float64(v) / microcoresPerMillicore, err
	case strings.HasSuffix(text, "m"):
		v, err := parseInt(text, "m")
		return float64(v), err
	default:
		if isHexFloat(text) {
			return 0, &ParseError{Input: text, Err: errHexFloat}
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, &ParseError{Input: text, Err: err}
		}
		return v * millicoresPerCore, nil
	}
}

// ParseCPU renders a CPU quantity in millicores with two decimal places.
// Quantities already expressed in millicores are returned as given.
func ParseCPU(text string) (string, error) {
	millicores, err := ParseCPUMillicores(text)
	if err != nil {
		return "", err
	}
	if strings.HasSuffix(text, "m") {
		return text, nil
	}
	return FormatMillicores(millicores), nil
}

// FormatMillicores renders millicores as "%.2fm".
func FormatMillicores(millicores float64) string {
	return fmt.Sprintf("%.2fm", millicores)
}

var errHexFloat = errors.New("hexadecimal notation is not a cpu quantity")

// isHexFloat reports whether text uses strconv's hexadecimal float syntax.
func isHexFloat(text string) bool {
	t := strings.TrimLeft(text, "+-")
	return strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X")
}

func parseInt(text, suffix string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSuffix(text, suffix), 10, 64)
	if err != nil {
		return 0, &ParseError{Input: text, Err: err}
	}
	return v, nil
}

// ParseMemoryBytes converts a memory quantity to bytes. The second result is
// false when text is not a plain integer with an optional Ki/Mi/Gi/Ti suffix,
// or when the byte count overflows int64.
func ParseMemoryBytes(text string) (int64, bool) {
	m := memoryPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	digits, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	multiplier := memoryMultipliers[m[2]]
	if digits > math.MaxInt64/multiplier {
		return 0, false
	}
	return digits * multiplier, true
}

// ParseMemory renders a memory quantity in the largest fitting binary unit.
// Text that is not a recognized quantity is returned unchanged.
func ParseMemory(text string) string {
	bytes, ok := ParseMemoryBytes(text)
	if !ok {
		return text
	}
	return FormatBytes(bytes)
}

// FormatBytes renders a byte count as Gi, Mi or Ki with two decimal places,
// falling back to whole bytes below 1 Ki.
func FormatBytes(bytes int64) string {
	switch {
	case bytes >= Gi:
		return fmt.Sprintf("%.2f Gi", float64(bytes)/float64(Gi))
	case bytes >= Mi:
		return fmt.Sprintf("%.2f Mi", float64(bytes)/float64(Mi))
	case bytes >= Ki:
		return fmt.Sprintf("%.2f Ki", float64(bytes)/float64(Ki))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// CPUPercentage returns usage as a percentage of limit ("3.33%"). An empty
// limit, a malformed operand or a zero limit yields Unavailable.
func CPUPercentage(usage, limit string) string {
	if limit == "" {
		return Unavailable
	}
	u, err := ParseCPUMillicores(usage)
	if err != nil {
		return Unavailable
	}
	l, err := ParseCPUMillicores(limit)
	if err != nil {
		return Unavailable
	}
	return percentage(u, l)
}

// MemoryPercentage returns usage as a percentage of limit ("50.00%"). An
// empty limit, a malformed operand or a zero limit yields Unavailable.
func MemoryPercentage(usage, limit string) string {
	if limit == "" {
		return Unavailable
	}
	u, ok := ParseMemoryBytes(usage)
	if !ok {
		return Unavailable
	}
	l, ok := ParseMemoryBytes(limit)
	if !ok {
		return Unavailable
	}
	return percentage(float64(u), float64(l))
}

func percentage(usage, limit float64) string {
	if limit == 0 {
		return Unavailable
	}
	p := usage / limit * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return Unavailable
	}
	return fmt.Sprintf("%.2f%%", p)
}
