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

// Package logging configures structured logging for devopstoolbox.
//
// It wraps the standard library slog package with a JSON handler writing to
// stderr, so that command output on stdout stays machine-parseable. Every
// record carries the module name and version; debug records also carry the
// source location.
//
// # Log Levels
//
// Supported levels (case-insensitive): debug, info, warn/warning, error.
// Unknown values fall back to info.
//
// # Usage
//
//	logging.SetDefaultStructuredLoggerWithLevel("devopstoolbox", version, "debug")
//	slog.Info("listing pods", "scope", scope)
//
// When no explicit level is given, SetDefaultStructuredLogger reads LOG_LEVEL:
//
//	LOG_LEVEL=debug devopstoolbox pods list
package logging
