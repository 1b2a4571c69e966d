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

package inventory

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"

	"github.com/devopstoolbox/devopstoolbox/pkg/defaults"
	"github.com/devopstoolbox/devopstoolbox/pkg/quantity"
)

// Scope selects the namespaces a listing covers.
type Scope struct {
	Namespace     string
	AllNamespaces bool
}

// String renders the scope for table titles.
func (s Scope) String() string {
	if s.AllNamespaces {
		return "all namespaces"
	}
	return fmt.Sprintf("namespace %s", s.Namespace)
}

// namespace returns the namespace argument for list calls.
func (s Scope) namespace() string {
	if s.AllNamespaces {
		return metav1.NamespaceAll
	}
	return s.Namespace
}

func (s Scope) context() map[string]any {
	return map[string]any{"scope": s.String()}
}

// Inventory reads cluster resources.
type Inventory struct {
	kube kubernetes.Interface
	dyn  dynamic.Interface
}

// New returns an Inventory backed by the given clients. The dynamic client
// may be nil when neither PodMetrics nor the certificate listings are used.
func New(kube kubernetes.Interface, dyn dynamic.Interface) *Inventory {
	return &Inventory{kube: kube, dyn: dyn}
}

func orUnavailable(s string) string {
	if s == "" {
		return quantity.Unavailable
	}
	return s
}

// listContext bounds a single list call.
func listContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaults.K8sListTimeout)
}
