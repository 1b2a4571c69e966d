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
	"fmt"

	"github.com/urfave/cli/v3"
)

func helloCmd() *cli.Command {
	return &cli.Command{
		Name:  "hello",
		Usage: "Print a greeting to check the installation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Value: "DevOps",
				Usage: "who to greet",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(cmd.Root().Writer, "Hello %s! Welcome to your DevOpsToolbox.\n", cmd.String("name"))
			return err
		},
	}
}
