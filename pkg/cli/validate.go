/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/devopstoolbox/devopstoolbox/pkg/errors"
	"github.com/devopstoolbox/devopstoolbox/pkg/serializer"
	"github.com/devopstoolbox/devopstoolbox/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate YAML and JSON files for syntax errors",
		Commands: []*cli.Command{
			validateYAMLCmd(),
			validateJSONCmd(),
		},
	}
}

func validateYAMLCmd() *cli.Command {
	return &cli.Command{
		Name:  "yaml",
		Usage: "Validate YAML files for syntax errors",
		Description: `Validate a single YAML file, or every *.yaml and *.yml file under a
directory (recursively). Multi-document streams are supported.

# Examples

  devopstoolbox validate yaml -f deployment.yaml
  devopstoolbox validate yaml -d ./manifests`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML file to validate",
			},
			&cli.StringFlag{
				Name:    "directory",
				Aliases: []string{"d"},
				Usage:   "directory to scan for YAML files",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			v := validator.New(validator.WithVersion(version))
			return runValidation(ctx, cmd, v, validator.KindYAML, cmd.String("file"), cmd.String("directory"))
		},
	}
}

func validateJSONCmd() *cli.Command {
	return &cli.Command{
		Name:      "json",
		Usage:     "Validate JSON files for syntax errors",
		ArgsUsage: "PATH",
		Description: `Validate a single JSON file, or every *.json file in a directory.
Subdirectories are scanned only with --recursive.

# Examples

  devopstoolbox validate json config.json
  devopstoolbox validate json ./fixtures --recursive`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "recursive",
				Aliases: []string{"r"},
				Usage:   "scan directories recursively for JSON files",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return errors.New(errors.ErrCodeInvalidRequest, "missing PATH argument")
			}

			info, err := os.Stat(path)
			if err != nil {
				return errors.WrapWithContext(errors.ErrCodeNotFound, "path not found", err,
					map[string]any{"path": path})
			}

			file, dir := path, ""
			if info.IsDir() {
				file, dir = "", path
			}

			v := validator.New(
				validator.WithVersion(version),
				validator.WithRecursive(cmd.Bool("recursive")),
			)
			return runValidation(ctx, cmd, v, validator.KindJSON, file, dir)
		},
	}
}

// runValidation validates, writes the result and fails the command when any
// file is invalid. Finding no files is not an error.
func runValidation(ctx context.Context, cmd *cli.Command, v *validator.Validator, kind validator.Kind, file, dir string) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	result, err := v.Validate(ctx, kind, file, dir)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	label := strings.ToUpper(string(kind))

	if result.Summary.Total == 0 {
		_, err := fmt.Fprintf(out, "No %s files found.\n", label)
		return err
	}

	if err := writeResult(ctx, cmd, result); err != nil {
		return err
	}
	if outFormat == serializer.FormatTable && cmd.String("output") == "" {
		fmt.Fprintf(out, "\n%s\n", result.SummaryLine())
	}

	slog.Info("validation completed",
		"kind", kind,
		"valid", result.Summary.Valid,
		"invalid", result.Summary.Invalid,
		"total", result.Summary.Total,
		"duration", result.Summary.Duration)

	if !result.Passed() {
		return fmt.Errorf("%s validation failed: %d of %d file(s) invalid",
			label, result.Summary.Invalid, result.Summary.Total)
	}
	return nil
}
