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
	"strconv"

	"github.com/distribution/reference"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/devopstoolbox/devopstoolbox/pkg/errors"
	"github.com/devopstoolbox/devopstoolbox/pkg/quantity"
	"github.com/devopstoolbox/devopstoolbox/pkg/serializer"
)

var podColumns = []string{"Namespace", "Pod Name", "Status", "Restart Count"}

// ListPods lists pods with their phase and total container restarts.
func (i *Inventory) ListPods(ctx context.Context, scope Scope) (*serializer.Table, error) {
	return i.podTable(ctx, scope, func(*corev1.Pod) bool { return true })
}

// UnhealthyPods lists pods whose phase is neither Running nor Succeeded.
func (i *Inventory) UnhealthyPods(ctx context.Context, scope Scope) (*serializer.Table, error) {
	return i.podTable(ctx, scope, func(p *corev1.Pod) bool { return !IsHealthy(p) })
}

// IsHealthy reports whether the pod is Running or Succeeded.
func IsHealthy(pod *corev1.Pod) bool {
	return pod.Status.Phase == corev1.PodRunning || pod.Status.Phase == corev1.PodSucceeded
}

// RestartCount sums restarts across all container statuses.
func RestartCount(pod *corev1.Pod) int32 {
	var total int32
	for _, cs := range pod.Status.ContainerStatuses {
		total += cs.RestartCount
	}
	return total
}

func (i *Inventory) podTable(ctx context.Context, scope Scope, keep func(*corev1.Pod) bool) (*serializer.Table, error) {
	pods, err := i.listPods(ctx, scope)
	if err != nil {
		return nil, err
	}

	t := serializer.NewTable(fmt.Sprintf("Pods in %s", scope), podColumns...)
	for idx := range pods {
		pod := &pods[idx]
		if !keep(pod) {
			continue
		}
		t.AddRow(
			orUnavailable(pod.Namespace),
			pod.Name,
			string(pod.Status.Phase),
			strconv.Itoa(int(RestartCount(pod))),
		)
	}
	return t, nil
}

func (i *Inventory) listPods(ctx context.Context, scope Scope) ([]corev1.Pod, error) {
	slog.Debug("listing pods", "scope", scope.String())

	ctx, cancel := listContext(ctx)
	defer cancel()

	list, err := i.kube.CoreV1().Pods(scope.namespace()).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to list pods", err, scope.context())
	}
	return list.Items, nil
}

// PodImages lists every container image split into registry, repository,
// tag and digest. Unparseable references are shown verbatim.
func (i *Inventory) PodImages(ctx context.Context, scope Scope) (*serializer.Table, error) {
	pods, err := i.listPods(ctx, scope)
	if err != nil {
		return nil, err
	}

	t := serializer.NewTable(fmt.Sprintf("Container images in %s", scope),
		"Namespace", "Pod Name", "Container", "Registry", "Repository", "Tag", "Digest")
	for _, pod := range pods {
		for _, c := range pod.Spec.Containers {
			img := ParseImage(c.Image)
			t.AddRow(orUnavailable(pod.Namespace), pod.Name, c.Name,
				img.Registry, img.Repository, img.Tag, img.Digest)
		}
	}
	return t, nil
}

// Image is a container image reference broken into its parts.
type Image struct {
	Registry   string
	Repository string
	Tag        string
	Digest     string
}

// ParseImage normalizes an image reference ("nginx" → docker.io/library/nginx:latest).
func ParseImage(image string) Image {
	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		slog.Debug("unparseable image reference", "image", image, "error", err)
		return Image{
			Registry:   quantity.Unavailable,
			Repository: image,
			Tag:        quantity.Unavailable,
			Digest:     quantity.Unavailable,
		}
	}

	img := Image{
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
		Tag:        quantity.Unavailable,
		Digest:     quantity.Unavailable,
	}

	if digested, ok := named.(reference.Digested); ok {
		img.Digest = digested.Digest().String()
	} else {
		named = reference.TagNameOnly(named)
	}
	if tagged, ok := named.(reference.Tagged); ok {
		img.Tag = tagged.Tag()
	}
	return img
}
