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

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/devopstoolbox/devopstoolbox/pkg/errors"
	"github.com/devopstoolbox/devopstoolbox/pkg/serializer"
)

const noTrafficPolicy corev1.ServiceInternalTrafficPolicy = "none"

// ListServices lists services with their type and internal traffic policy.
func (i *Inventory) ListServices(ctx context.Context, scope Scope) (*serializer.Table, error) {
	slog.Debug("listing services", "scope", scope.String())

	ctx, cancel := listContext(ctx)
	defer cancel()

	list, err := i.kube.CoreV1().Services(scope.namespace()).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to list services", err, scope.context())
	}

	t := serializer.NewTable(fmt.Sprintf("Services in %s", scope),
		"Namespace", "Service Name", "Type", "Cluster IP", "Internal Traffic Policy")
	for _, svc := range list.Items {
		t.AddRow(
			orUnavailable(svc.Namespace),
			svc.Name,
			string(svc.Spec.Type),
			orUnavailable(svc.Spec.ClusterIP),
			string(ptr.Deref(svc.Spec.InternalTrafficPolicy, noTrafficPolicy)),
		)
	}
	return t, nil
}
