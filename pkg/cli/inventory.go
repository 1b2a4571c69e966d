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

package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/devopstoolbox/devopstoolbox/pkg/defaults"
	"github.com/devopstoolbox/devopstoolbox/pkg/k8s/client"
	"github.com/devopstoolbox/devopstoolbox/pkg/k8s/inventory"
	"github.com/devopstoolbox/devopstoolbox/pkg/serializer"
)

// listFunc is satisfied by the Inventory listing methods.
type listFunc func(*inventory.Inventory, context.Context, inventory.Scope) (*serializer.Table, error)

func podsCmd() *cli.Command {
	return &cli.Command{
		Name:  "pods",
		Usage: "Inspect pods",
		Commands: []*cli.Command{
			listCmd("list", "List pods with status and restart count", (*inventory.Inventory).ListPods),
			listCmd("metrics", "Show container CPU and memory requests, limits and usage",
				(*inventory.Inventory).PodMetrics),
			listCmd("unhealthy", "List pods that are neither Running nor Succeeded", (*inventory.Inventory).UnhealthyPods),
			listCmd("images", "List container images by registry, repository, tag and digest",
				(*inventory.Inventory).PodImages),
		},
	}
}

func jobsCmd() *cli.Command {
	return &cli.Command{
		Name:  "jobs",
		Usage: "Inspect jobs",
		Commands: []*cli.Command{
			listCmd("list", "List jobs and whether they are suspended", (*inventory.Inventory).ListJobs),
		},
	}
}

func servicesCmd() *cli.Command {
	return &cli.Command{
		Name:  "services",
		Usage: "Inspect services",
		Commands: []*cli.Command{
			listCmd("list", "List services with type and internal traffic policy", (*inventory.Inventory).ListServices),
		},
	}
}

func certificatesCmd() *cli.Command {
	return &cli.Command{
		Name:  "certificates",
		Usage: "Inspect cert-manager certificates",
		Commands: []*cli.Command{
			listCmd("list", "List certificates with renewal time and status", (*inventory.Inventory).ListCertificates),
			listCmd("not-ready", "List certificates that are not Ready", (*inventory.Inventory).NotReadyCertificates),
		},
	}
}

func listCmd(name, usage string, list listFunc) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: scopeFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			kubeconfig := cmd.String("kubeconfig")
			clients, err := newClients(kubeconfig)
			if err != nil {
				return err
			}

			scope := inventory.Scope{
				Namespace:     cmd.String("namespace"),
				AllNamespaces: cmd.Bool("all-namespaces"),
			}
			if scope.Namespace == "" && !scope.AllNamespaces {
				scope.Namespace = client.CurrentNamespace(kubeconfig)
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CommandTimeout)
			defer cancel()

			slog.Debug("listing", "command", cmd.FullName(), "scope", scope.String())

			inv := inventory.New(clients.Kubernetes, clients.Dynamic)
			table, err := list(inv, ctx, scope)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, table)
		},
	}
}
