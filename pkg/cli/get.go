/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/mustgather/pkg/bundle"
	mgerrors "github.com/NVIDIA/mustgather/pkg/errors"
	"github.com/NVIDIA/mustgather/pkg/manifest"
	"github.com/NVIDIA/mustgather/pkg/resource"
)

// extractWorkers bounds the fan-out when extracting across all namespaces.
const extractWorkers = 4

// resourceSet is the serialized result of one extraction.
type resourceSet struct {
	Kind      string          `json:"kind" yaml:"kind"`
	Namespace string          `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Count     int             `json:"count" yaml:"count"`
	Items     []extractedItem `json:"items" yaml:"items"`
}

type extractedItem struct {
	Source string                 `json:"source" yaml:"source"`
	Object map[string]interface{} `json:"object" yaml:"object"`
}

func getCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Extract resources of a kind from a must-gather bundle",
		ArgsUsage: "KIND",
		Description: `Locates the bundle root under --path, resolves KIND against the descriptor
registry, and prints the extracted resources.

KIND accepts singular or plural forms, case-insensitively.

# Examples

Machines in one namespace:
  mgctl get machines --path ./must-gather.local.123 -n openshift-machine-api

Deployments across every namespace:
  mgctl get deployments --path ./mg --all-namespaces

Cluster-scoped nodes:
  mgctl get nodes --path ./mg`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Value:   ".",
				Usage:   "Path at or above the bundle root",
			},
			&cli.StringFlag{
				Name:    "namespace",
				Aliases: []string{"n"},
				Usage:   "Namespace to extract from (namespaced kinds)",
			},
			&cli.BoolFlag{
				Name:    "all-namespaces",
				Aliases: []string{"A"},
				Usage:   "Extract from every namespace in the bundle",
			},
		},
		Action: runGet,
	}
}

func runGet(ctx context.Context, cmd *cli.Command) error {
	kindArg := cmd.Args().First()
	if kindArg == "" {
		return fmt.Errorf("missing KIND argument, see 'mgctl kinds' for the registered kinds")
	}

	writer, err := newOutputWriter(cmd)
	if err != nil {
		return err
	}
	defer closeWriter(writer)

	descriptor, err := resource.DefaultRegistry().Lookup(kindArg)
	if err != nil {
		return err
	}

	root, err := bundle.Locate(cmd.String("path"))
	if err != nil {
		return fmt.Errorf("locating bundle root: %w", err)
	}
	slog.Debug("bundle root located", slog.String("root", root.Path()))

	extractor := resource.NewExtractor()

	if !descriptor.ResourceScope().IsNamespaced() {
		manifests, err := extractor.Extract(root.ClusterScoped(), descriptor)
		if err != nil {
			return err
		}
		return writer.Serialize(ctx, newResourceSet(descriptor, "", manifests))
	}

	if cmd.Bool("all-namespaces") {
		sets, err := extractAllNamespaces(ctx, root, extractor, descriptor)
		if err != nil {
			return err
		}
		return writer.Serialize(ctx, sets)
	}

	ns := cmd.String("namespace")
	if ns == "" {
		return fmt.Errorf("kind %q is namespaced: use --namespace or --all-namespaces", descriptor.Kind())
	}
	manifests, err := extractor.Extract(root.Namespace(ns), descriptor)
	if err != nil {
		return err
	}
	return writer.Serialize(ctx, newResourceSet(descriptor, ns, manifests))
}

// extractAllNamespaces runs one extraction per namespace area. Extractions
// are independent read-only queries, so they fan out on an errgroup.
// Namespaces that simply do not hold the kind are skipped; any other failure
// aborts the whole command.
func extractAllNamespaces(ctx context.Context, root *bundle.Root, x *resource.Extractor, d resource.Descriptor) ([]*resourceSet, error) {
	namespaces, err := root.Namespaces()
	if err != nil {
		return nil, err
	}

	results := make([]*resourceSet, len(namespaces))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(extractWorkers)

	for i, ns := range namespaces {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			manifests, err := x.Extract(root.Namespace(ns), d)
			if mgerrors.HasCode(err, mgerrors.ErrCodeNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("namespace %s: %w", ns, err)
			}
			results[i] = newResourceSet(d, ns, manifests)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sets := make([]*resourceSet, 0, len(results))
	for _, r := range results {
		if r != nil {
			sets = append(sets, r)
		}
	}
	return sets, nil
}

func newResourceSet(d resource.Descriptor, namespace string, manifests []manifest.Manifest) *resourceSet {
	set := &resourceSet{
		Kind:      d.Kind(),
		Namespace: namespace,
		Count:     len(manifests),
		Items:     make([]extractedItem, 0, len(manifests)),
	}
	for _, m := range manifests {
		set.Items = append(set.Items, extractedItem{
			Source: m.SourcePath,
			Object: m.Object.Object,
		})
	}
	return set
}
