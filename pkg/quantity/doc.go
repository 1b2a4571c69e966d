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

// Package quantity converts Kubernetes CPU and memory quantity strings into
// canonical values and human-readable renderings.
//
// # Canonical Units
//
// CPU quantities are normalized to millicores (float64):
//
//	"25160674n" → 25.160674   (nanocores / 1e6)
//	"1500u"     → 1.5         (microcores / 1e3)
//	"250m"      → 250         (millicores)
//	"0.5"       → 500         (whole cores × 1e3)
//
// Memory quantities are normalized to bytes (int64). Only plain digits with an
// optional binary suffix (Ki, Mi, Gi, Ti) are recognized:
//
//	"7988Ki" → 8179712
//	"1Gi"    → 1073741824
//
// # Rendering
//
// ParseCPU renders millicores with two decimal places ("25.16m"), except for
// input that is already expressed in millicores, which is returned verbatim
// ("100m"). ParseMemory renders the largest binary unit, up to Gi, in which
// the value is at least one ("7.80 Mi", "512 B").
//
// # Error Policy
//
// ParseCPU and ParseCPUMillicores return a *ParseError for malformed input.
// Hexadecimal float text such as "0x1p4" is malformed for this purpose.
// ParseMemory never fails: unrecognized text is returned unchanged.
// CPUPercentage and MemoryPercentage never fail either; every problem is
// reported as the Unavailable sentinel so a single missing metric does not
// abort a table render.
//
// All functions are pure and safe for concurrent use.
package quantity
