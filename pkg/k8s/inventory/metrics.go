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
	"log/slog"

	"golang.org/x/sync/errgroup"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/devopstoolbox/devopstoolbox/pkg/defaults"
	"github.com/devopstoolbox/devopstoolbox/pkg/quantity"
	"github.com/devopstoolbox/devopstoolbox/pkg/serializer"
)

// PodMetricsResource is the metrics-server pod metrics API.
var PodMetricsResource = schema.GroupVersionResource{
	Group:    "metrics.k8s.io",
	Version:  "v1beta1",
	Resource: "pods",
}

// Usage is the raw per-container usage reported by metrics-server. A field
// absent from the metrics entry is left empty.
type Usage struct {
	CPU    string
	Memory string
}

type containerKey struct {
	namespace, pod, container string
}

var metricsColumns = []string{
	"Namespace", "Pod Name", "Container",
	"CPU Req", "CPU Limit", "CPU Usage", "CPU Usage %",
	"Mem Req", "Mem Limit", "Mem Usage", "Mem Usage %",
}

// PodMetrics lists per-container CPU and memory requests, limits, usage and
// usage as a percentage of the limit. Pods and metrics are fetched
// concurrently; a metrics failure leaves the usage columns unavailable.
func (i *Inventory) PodMetrics(ctx context.Context, scope Scope) (*serializer.Table, error) {
	var (
		usage map[containerKey]Usage
		pods  []corev1.Pod
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		usage, err = i.containerUsage(gctx, scope)
		if err != nil {
			slog.Warn("could not fetch metrics (metrics-server may not be installed)",
				"scope", scope.String(), "error", err)
			usage = map[containerKey]Usage{}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		pods, err = i.listPods(gctx, scope)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t := serializer.NewTable(fmt.Sprintf("Pod Resources in %s", scope), metricsColumns...)
	for _, pod := range pods {
		ns := orUnavailable(pod.Namespace)
		for _, c := range pod.Spec.Containers {
			u, found := usage[containerKey{pod.Namespace, pod.Name, c.Name}]
			t.AddRow(containerRow(ns, pod.Name, c, u, found)...)
		}
	}
	return t, nil
}

func containerRow(ns, pod string, c corev1.Container, u Usage, found bool) []string {
	cpuReq := resourceString(c.Resources.Requests, corev1.ResourceCPU)
	cpuLimit := resourceString(c.Resources.Limits, corev1.ResourceCPU)
	memReq := resourceString(c.Resources.Requests, corev1.ResourceMemory)
	memLimit := resourceString(c.Resources.Limits, corev1.ResourceMemory)

	cpuUsage, memUsage := quantity.Unavailable, quantity.Unavailable
	if found {
		cpuUsage = renderCPU(orDefault(u.CPU, zeroCPU))
		memUsage = quantity.ParseMemory(orDefault(u.Memory, zeroMemory))
	}

	return []string{
		ns, pod, c.Name,
		orUnavailable(cpuReq), orUnavailable(cpuLimit), cpuUsage, quantity.CPUPercentage(u.CPU, cpuLimit),
		orUnavailable(memReq), orUnavailable(memLimit), memUsage, quantity.MemoryPercentage(u.Memory, memLimit),
	}
}

// Usage columns show a missing metric as zero; percentage columns show "-".
const (
	zeroCPU    = "0n"
	zeroMemory = "0Ki"
)

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func renderCPU(text string) string {
	s, err := quantity.ParseCPU(text)
	if err != nil {
		slog.Debug("unparseable cpu usage", "value", text, "error", err)
		return quantity.Unavailable
	}
	return s
}

func resourceString(list corev1.ResourceList, name corev1.ResourceName) string {
	q, ok := list[name]
	if !ok {
		return ""
	}
	return q.String()
}

// containerUsage reads pod metrics and indexes them by namespace, pod and container.
func (i *Inventory) containerUsage(ctx context.Context, scope Scope) (map[containerKey]Usage, error) {
	if i.dyn == nil {
		return nil, fmt.Errorf("dynamic client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.MetricsFetchTimeout)
	defer cancel()

	list, err := i.dyn.Resource(PodMetricsResource).Namespace(scope.namespace()).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pod metrics: %w", err)
	}

	usage := make(map[containerKey]Usage)
	for _, item := range list.Items {
		containers, _, err := unstructured.NestedSlice(item.Object, "containers")
		if err != nil {
			slog.Debug("malformed pod metrics", "pod", item.GetName(), "error", err)
			continue
		}
		for _, raw := range containers {
			c, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			name, _, _ := unstructured.NestedString(c, "name")
			var u Usage
			u.CPU, _, _ = unstructured.NestedString(c, "usage", "cpu")
			u.Memory, _, _ = unstructured.NestedString(c, "usage", "memory")
			usage[containerKey{item.GetNamespace(), item.GetName(), name}] = u
		}
	}
	return usage, nil
}
