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

// Package resource extracts resource instances from a bundle scope.
//
// A resource type is identified by a Descriptor: API group, singular kind,
// plural form (derived as kind+"s" unless overridden), and a scope
// classification. The Registry resolves user-supplied kind names to
// descriptors and ships with the common well-known types; callers register
// their own descriptors for anything else.
//
// # On-disk layouts
//
// Bundles store a resource type in one of two shapes under a scope path:
//
//	<scope>/<group>/<plural>/<name>.yaml     one file per instance
//	<scope>/<group>/<plural>.yaml            one list document, items array
//
// The Extractor probes the directory first and falls back to the list
// document. Files without the .yaml extension in a per-instance directory
// are skipped silently; bundle directories routinely mix in logs and event
// filter files.
//
// # Usage
//
//	root, _ := bundle.Locate(path)
//	x := resource.NewExtractor()
//	manifests, err := x.Extract(root.Namespace("openshift-machine-api"), resource.TypeMachine)
//
// Extraction is all or nothing per call and re-reads the filesystem every
// time; repeated calls on an unmodified bundle return equal results.
package resource
