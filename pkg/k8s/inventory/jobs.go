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

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/devopstoolbox/devopstoolbox/pkg/errors"
	"github.com/devopstoolbox/devopstoolbox/pkg/quantity"
	"github.com/devopstoolbox/devopstoolbox/pkg/serializer"
)

// ListJobs lists jobs with their suspended flag.
func (i *Inventory) ListJobs(ctx context.Context, scope Scope) (*serializer.Table, error) {
	slog.Debug("listing jobs", "scope", scope.String())

	ctx, cancel := listContext(ctx)
	defer cancel()

	list, err := i.kube.BatchV1().Jobs(scope.namespace()).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to list jobs", err, scope.context())
	}

	t := serializer.NewTable(fmt.Sprintf("Jobs in %s", scope), "Namespace", "Job Name", "Suspended?")
	for _, job := range list.Items {
		t.AddRow(orUnavailable(job.Namespace), job.Name, formatBool(job.Spec.Suspend))
	}
	return t, nil
}

// formatBool renders an optional flag as "True", "False" or "-".
func formatBool(b *bool) string {
	if b == nil {
		return quantity.Unavailable
	}
	return cases.Title(language.English).String(strconv.FormatBool(*b))
}
