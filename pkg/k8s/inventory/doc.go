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

// Package inventory lists cluster resources and shapes them into tables.
//
// Each listing takes a Scope, either one namespace or all namespaces, and
// returns a *serializer.Table so the CLI can render the result as a table,
// JSON or YAML:
//
//	inv := inventory.New(clients.Kubernetes, clients.Dynamic)
//	t, err := inv.UnhealthyPods(ctx, inventory.Scope{AllNamespaces: true})
//
// Core and batch resources are read through the typed clientset. The
// metrics.k8s.io and cert-manager.io APIs are read through the dynamic
// client, so neither API needs to be compiled in and either can be missing
// from the cluster.
//
// # Pod Metrics
//
// PodMetrics joins per-container usage from metrics-server with the
// requests and limits from the pod spec. Usage and utilization columns are
// rendered by the quantity package; a cluster without metrics-server still
// produces the table, with "-" in the usage columns.
package inventory
