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

package client

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// DefaultNamespace is used when the kubeconfig context names no namespace.
const DefaultNamespace = "default"

// Interface is an alias for kubernetes.Interface to allow easier mocking in tests.
type Interface = kubernetes.Interface

// Clients bundles the clients used by cluster commands.
type Clients struct {
	Kubernetes Interface
	Dynamic    dynamic.Interface
	Config     *rest.Config
}

var (
	clientOnce    sync.Once
	cachedClients *Clients
	clientErr     error
)

// GetKubeClient returns a shared Clients value, creating it on first call
// with automatic kubeconfig discovery.
func GetKubeClient() (*Clients, error) {
	clientOnce.Do(func() {
		cachedClients, clientErr = BuildKubeClient("")
	})
	return cachedClients, clientErr
}

// ResolveKubeconfig returns the kubeconfig path to use, or "" when the
// in-cluster configuration should be used.
func ResolveKubeconfig(kubeconfig string) string {
	if kubeconfig != "" {
		return kubeconfig
	}
	if env := os.Getenv("KUBECONFIG"); env != "" {
		return env
	}
	path := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// BuildKubeClient creates typed and dynamic clients from the given kubeconfig
// file. An empty path triggers automatic discovery.
func BuildKubeClient(kubeconfig string) (*Clients, error) {
	var config *rest.Config
	var err error

	kubeconfig = ResolveKubeconfig(kubeconfig)

	// Use InClusterConfig directly when no kubeconfig is available
	// This avoids the warning: "Neither --kubeconfig nor --master was specified"
	if kubeconfig == "" {
		config, err = rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
	} else {
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to build kube config from %s: %w", kubeconfig, err)
		}
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	dyn, err := dynamic.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client: %w", err)
	}

	return &Clients{
		Kubernetes: clientset,
		Dynamic:    dyn,
		Config:     config,
	}, nil
}

// CurrentNamespace returns the namespace of the current kubeconfig context.
// Inside a cluster it returns the pod's service account namespace.
func CurrentNamespace(kubeconfig string) string {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if path := ResolveKubeconfig(kubeconfig); path != "" {
		rules.ExplicitPath = path
	}

	cfg := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{})
	ns, _, err := cfg.Namespace()
	if err != nil || ns == "" {
		return DefaultNamespace
	}
	return ns
}
