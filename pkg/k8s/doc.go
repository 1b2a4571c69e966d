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

// Package k8s provides Kubernetes integration for devopstoolbox.
//
// # Sub-packages
//
// client: kubeconfig discovery and a shared set of typed and dynamic clients
//
//	clients, err := client.BuildKubeClient(kubeconfig)
//	if err != nil {
//	    return err
//	}
//
// inventory: read-only listings of pods, jobs, services and cert-manager
// certificates, shaped as tables
//
//	inv := inventory.New(clients.Kubernetes, clients.Dynamic)
//	table, err := inv.ListPods(ctx, inventory.Scope{Namespace: "default"})
//
// # Thread Safety
//
// The client package uses sync.Once for the shared instance. Inventory values
// hold only client interfaces and are safe for concurrent use.
package k8s
