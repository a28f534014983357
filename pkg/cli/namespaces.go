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

func namespacesCmd() *cli.Command {
	return &cli.Command{
		Name:    "namespaces",
		Aliases: []string{"ns"},
		Usage:   "List the namespace areas present in a bundle",
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
			namespaces, err := root.Namespaces()
			if err != nil {
				return err
			}
			return writer.Serialize(ctx, namespaces)
		},
	}
}
