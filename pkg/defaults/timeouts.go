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

package defaults

import "time"

// Kubernetes timeouts for K8s API operations.
const (
	// K8sListTimeout is the timeout for a single list call against the API server.
	K8sListTimeout = 30 * time.Second

	// MetricsFetchTimeout is the timeout for reading pod metrics.
	// Must stay below K8sListTimeout.
	MetricsFetchTimeout = 15 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CommandTimeout bounds a whole cluster command invocation.
	CommandTimeout = 2 * time.Minute
)

// Generator defaults.
const (
	// PasswordLength is the default length of generated passwords.
	PasswordLength = 16
)
