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

// Package cli implements the command-line interface of the mgctl tool.
//
// # Commands
//
// get - Extract resources of a kind from a bundle:
//
//	mgctl get machines --path ./must-gather.local.123 -n openshift-machine-api
//	mgctl get deployments --path ./mg -A
//	mgctl get nodes --path ./mg
//
// Locates the bundle root under the given path, resolves the kind against
// the descriptor registry, and prints the extracted resources. Namespaced
// kinds need -n or --all-namespaces; cluster-scoped kinds read the
// cluster-scoped-resources area directly.
//
// namespaces - List namespace areas present in a bundle:
//
//	mgctl namespaces --path ./mg
//
// kinds - List the registered resource kinds:
//
//	mgctl kinds
//
// version - Show the bundle's version marker:
//
//	mgctl version --path ./mg
//
// # Global Flags
//
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--output, -o   Output file path (default: stdout)
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//
// Logs go to stderr; only serialized results go to stdout, so output can be
// piped. Each invocation is tagged with a run ID for correlating log lines.
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/bundle - Bundle root discovery and scope paths
//   - pkg/resource - Descriptor registry and resource extraction
//   - pkg/serializer - Output formatting
package cli
