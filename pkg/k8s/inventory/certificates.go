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

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/devopstoolbox/devopstoolbox/pkg/errors"
	"github.com/devopstoolbox/devopstoolbox/pkg/quantity"
	"github.com/devopstoolbox/devopstoolbox/pkg/serializer"
)

// CertificateResource is the cert-manager Certificate API.
var CertificateResource = schema.GroupVersionResource{
	Group:    "cert-manager.io",
	Version:  "v1",
	Resource: "certificates",
}

const readyCondition = "Ready"

var certificateColumns = []string{"Namespace", "Name", "Renewal Time", "Status"}

// ListCertificates lists cert-manager certificates with renewal time and
// the type of their first status condition.
func (i *Inventory) ListCertificates(ctx context.Context, scope Scope) (*serializer.Table, error) {
	return i.certificateTable(ctx, scope, func(string) bool { return true })
}

// NotReadyCertificates lists certificates whose first condition is not Ready.
func (i *Inventory) NotReadyCertificates(ctx context.Context, scope Scope) (*serializer.Table, error) {
	return i.certificateTable(ctx, scope, func(status string) bool { return status != readyCondition })
}

func (i *Inventory) certificateTable(ctx context.Context, scope Scope, keep func(status string) bool) (*serializer.Table, error) {
	if i.dyn == nil {
		return nil, errors.New(errors.ErrCodeInternal, "dynamic client not configured")
	}

	slog.Debug("listing certificates", "scope", scope.String())

	ctx, cancel := listContext(ctx)
	defer cancel()

	list, err := i.dyn.Resource(CertificateResource).Namespace(scope.namespace()).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable,
			"failed to list certificates, ensure cert-manager is installed", err, scope.context())
	}

	t := serializer.NewTable(fmt.Sprintf("Certificates in %s", scope), certificateColumns...)
	for _, cert := range list.Items {
		status := CertificateStatus(cert)
		if !keep(status) {
			continue
		}
		t.AddRow(orUnavailable(cert.GetNamespace()), cert.GetName(), RenewalTime(cert), status)
	}
	return t, nil
}

// RenewalTime returns status.renewalTime or "-".
func RenewalTime(cert unstructured.Unstructured) string {
	v, found, err := unstructured.NestedString(cert.Object, "status", "renewalTime")
	if err != nil || !found {
		return quantity.Unavailable
	}
	return orUnavailable(v)
}

// CertificateStatus returns the type of the first status condition or "-".
func CertificateStatus(cert unstructured.Unstructured) string {
	conditions, found, err := unstructured.NestedSlice(cert.Object, "status", "conditions")
	if err != nil || !found || len(conditions) == 0 {
		return quantity.Unavailable
	}
	first, ok := conditions[0].(map[string]any)
	if !ok {
		return quantity.Unavailable
	}
	t, _, _ := unstructured.NestedString(first, "type")
	return orUnavailable(t)
}
