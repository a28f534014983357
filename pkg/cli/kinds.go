/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/mustgather/pkg/resource"
)

// kindRow is one registered descriptor in the kinds listing.
type kindRow struct {
	Kind   string `json:"kind" yaml:"kind"`
	Group  string `json:"group" yaml:"group"`
	Plural string `json:"plural" yaml:"plural"`
	Scope  string `json:"scope" yaml:"scope"`
}

func kindsCmd() *cli.Command {
	return &cli.Command{
		Name:  "kinds",
		Usage: "List the registered resource kinds",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			writer, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(writer)

			var rows []kindRow
			for _, d := range resource.DefaultRegistry().List() {
				rows = append(rows, kindRow{
					Kind:   d.Kind(),
					Group:  d.Group(),
					Plural: resource.PluralName(d),
					Scope:  string(d.ResourceScope()),
				})
			}
			return writer.Serialize(ctx, rows)
		},
	}
}
