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

	"github.com/urfave/cli/v3"

	"github.com/devopstoolbox/devopstoolbox/pkg/defaults"
	"github.com/devopstoolbox/devopstoolbox/pkg/generator"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate random secrets",
		Commands: []*cli.Command{
			{
				Name:  "password",
				Usage: "Generate a secure random password",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "length",
						Aliases: []string{"l"},
						Value:   defaults.PasswordLength,
						Usage:   "number of characters",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					pwd, err := generator.Password(int(cmd.Int("length")))
					if err != nil {
						return err
					}
					return writeResult(ctx, cmd, pwd)
				},
			},
			{
				Name:  "uuid",
				Usage: "Generate a random UUID",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := generator.UUID()
					if err != nil {
						return err
					}
					return writeResult(ctx, cmd, id)
				},
			},
		},
	}
}
