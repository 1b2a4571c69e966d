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

// Package client builds Kubernetes clients for devopstoolbox commands.
//
// # Kubeconfig Discovery
//
// BuildKubeClient resolves the configuration in this order:
//
//  1. the explicit path passed by the caller (--kubeconfig)
//  2. the KUBECONFIG environment variable
//  3. ~/.kube/config, when it exists
//  4. the in-cluster service account
//
// The result bundles a typed clientset, used for core and batch resources,
// and a dynamic client, used for aggregated and custom APIs such as
// metrics.k8s.io and cert-manager.io:
//
//	clients, err := client.BuildKubeClient("")
//	if err != nil {
//	    return fmt.Errorf("failed to build kubernetes client: %w", err)
//	}
//	pods, err := clients.Kubernetes.CoreV1().Pods("default").List(ctx, metav1.ListOptions{})
//
// GetKubeClient returns a process-wide instance built with automatic discovery.
//
// # Namespace Resolution
//
// CurrentNamespace returns the namespace of the current kubeconfig context,
// or "default" when the context does not set one.
//
// # Testing
//
// Clients is a plain struct of interfaces, so tests construct it from
// k8s.io/client-go/kubernetes/fake and k8s.io/client-go/dynamic/fake.
package client
