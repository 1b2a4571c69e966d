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

// Package cli implements the devopstoolbox command-line interface.
//
// # Commands
//
// hello - Check the installation:
//
//	devopstoolbox hello --name Ops
//
// pods - Inspect pods in a namespace (-n) or across all namespaces (-A):
//
//	devopstoolbox pods list -n payments
//	devopstoolbox pods metrics -A
//	devopstoolbox pods unhealthy
//	devopstoolbox pods images -t json
//
// The metrics subcommand reads metrics.k8s.io; when metrics-server is not
// installed the usage columns show "-".
//
// jobs, services, certificates - Inspect other workloads:
//
//	devopstoolbox jobs list
//	devopstoolbox services list -A
//	devopstoolbox certificates not-ready
//
// validate - Check files for syntax errors:
//
//	devopstoolbox validate yaml -d ./manifests
//	devopstoolbox validate json ./fixtures --recursive
//
// generate - Produce secrets:
//
//	devopstoolbox generate password --length 24
//	devopstoolbox generate uuid
//
// # Global Flags
//
//	--format, -t      Output format: table, json, yaml (default: table)
//	--output, -o      Output file path (default: stdout)
//	--kubeconfig, -k  Path to kubeconfig (env KUBECONFIG)
//	--log-level       Logging verbosity (env LOG_LEVEL)
//	--metrics-file    Write Prometheus metrics on exit
//
// When no namespace is given, the namespace of the current kubeconfig context
// is used, falling back to "default".
//
// # Exit Codes
//
//	0  Success, or no files found to validate
//	1  Any error, including invalid files
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/devopstoolbox/devopstoolbox/pkg/cli.version=1.0.0'"
package cli
