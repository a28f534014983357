/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/mustgather/pkg/bundle"
)

// bundleInfo is the serialized result of the version command.
type bundleInfo struct {
	Root       string `json:"root" yaml:"root"`
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
	Namespaces int    `json:"namespaces" yaml:"namespaces"`
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show the bundle root and its version marker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Value:   ".",
				Usage:   "Path at or above the bundle root",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			writer, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(writer)

			root, err := bundle.Locate(cmd.String("path"))
			if err != nil {
				return fmt.Errorf("locating bundle root: %w", err)
			}
			version, err := root.Version()
			if err != nil {
				return err
			}
			namespaces, err := root.Namespaces()
			if err != nil {
				return err
			}
			return writer.Serialize(ctx, bundleInfo{
				Root:       root.Path(),
				Version:    version,
				Namespaces: len(namespaces),
			})
		},
	}
}
