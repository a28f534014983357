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

// Package bundle locates the root of a must-gather bundle and computes the
// filesystem paths of its queryable areas.
//
// # Root discovery
//
// A must-gather archive, once unpacked, frequently nests the actual bundle
// under one or more wrapper directories (the archive name, an image digest
// directory, and so on). Locate descends through single-child wrapper
// directories until it finds a directory that looks like a bundle root:
//
//   - it contains a file literally named "version", or
//   - it contains both a "namespaces" directory and a
//     "cluster-scoped-resources" directory.
//
// Where a level has zero or more than one subdirectory and no marker, the
// search stops with AMBIGUOUS_OR_MISSING_ROOT: the heuristic cannot pick
// between candidate wrappers, nor invent a root where none exists. Descent is
// bounded at 64 levels to guard against symlink cycles.
//
// # Scopes
//
// A located Root hands out Scope values for its queryable areas:
//
//	root, err := bundle.Locate("./must-gather.local.123")
//	ns := root.Namespace("openshift-machine-api") // <root>/namespaces/<name>
//	cs := root.ClusterScoped()                    // <root>/cluster-scoped-resources
//
// Scope path computation is pure concatenation and never touches the
// filesystem; whether the resulting path exists is the extractor's concern.
// Root is immutable after Locate, so Scope values may share it freely and
// queries may run concurrently.
package bundle
