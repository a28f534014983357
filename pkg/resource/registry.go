package resource

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	mgerrors "github.com/NVIDIA/mustgather/pkg/errors"
)

// Well-known resource types shipped with the default registry. The group
// names follow the on-disk must-gather convention: core resources live under
// a literal "core" directory.
var (
	TypeMachine = Type{APIGroup: "machine.openshift.io", KindName: "machine", ScopeClass: ScopeNamespaced}

	TypeDeployment  = Type{APIGroup: "apps", KindName: "deployment", ScopeClass: ScopeNamespaced}
	TypeReplicaSet  = Type{APIGroup: "apps", KindName: "replicaset", ScopeClass: ScopeNamespaced}
	TypeDaemonSet   = Type{APIGroup: "apps", KindName: "daemonset", ScopeClass: ScopeNamespaced}
	TypeStatefulSet = Type{APIGroup: "apps", KindName: "statefulset", ScopeClass: ScopeNamespaced}

	TypePod       = Type{APIGroup: "core", KindName: "pod", ScopeClass: ScopeNamespaced}
	TypeService   = Type{APIGroup: "core", KindName: "service", ScopeClass: ScopeNamespaced}
	TypeConfigMap = Type{APIGroup: "core", KindName: "configmap", ScopeClass: ScopeNamespaced}
	TypeEndpoints = Type{APIGroup: "core", KindName: "endpoints", PluralForm: "endpoints", ScopeClass: ScopeNamespaced}

	TypeNode      = Type{APIGroup: "core", KindName: "node", ScopeClass: ScopeCluster}
	TypeNamespace = Type{APIGroup: "core", KindName: "namespace", ScopeClass: ScopeCluster}

	TypeClusterOperator = Type{APIGroup: "config.openshift.io", KindName: "clusteroperator", ScopeClass: ScopeCluster}
	TypeClusterVersion  = Type{APIGroup: "config.openshift.io", KindName: "clusterversion", ScopeClass: ScopeClusterSingleton}
)

// Registry manages registered resource type descriptors with thread-safe
// operations. Lookup keys are the lowercase kind and plural names.
type Registry struct {
	descriptors map[string]Descriptor

	mu sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: map[string]Descriptor{}}
}

// DefaultRegistry creates a Registry pre-populated with the well-known
// resource types.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, t := range []Type{
		TypeMachine,
		TypeDeployment, TypeReplicaSet, TypeDaemonSet, TypeStatefulSet,
		TypePod, TypeService, TypeConfigMap, TypeEndpoints,
		TypeNode, TypeNamespace,
		TypeClusterOperator, TypeClusterVersion,
	} {
		r.Register(t)
	}
	return r
}

// Register adds a descriptor, replacing any previous registration for the
// same kind.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors[strings.ToLower(d.Kind())] = d
}

// Get retrieves a descriptor by its exact kind name.
func (r *Registry) Get(kind string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[strings.ToLower(kind)]
	return d, ok
}

// Lookup resolves a kind or plural name, case-insensitively. An unknown name
// fails with UNKNOWN_KIND; when a registered kind is close enough, the error
// message carries a "did you mean" suggestion.
func (r *Registry) Lookup(name string) (Descriptor, error) {
	key := strings.ToLower(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if d, ok := r.descriptors[key]; ok {
		return d, nil
	}
	for _, d := range r.descriptors {
		if strings.ToLower(PluralName(d)) == key {
			return d, nil
		}
	}

	if suggestion := r.closestKind(key); suggestion != "" {
		return nil, mgerrors.Newf(mgerrors.ErrCodeUnknownKind,
			"unknown resource kind %q, did you mean %q?", name, suggestion)
	}
	return nil, mgerrors.Newf(mgerrors.ErrCodeUnknownKind, "unknown resource kind %q", name)
}

// closestKind returns the registered kind nearest to name, or the empty
// string when nothing is within edit distance 3. Callers must hold the lock.
func (r *Registry) closestKind(name string) string {
	best := ""
	bestDistance := 4
	for kind := range r.descriptors {
		if d := levenshtein.ComputeDistance(name, kind); d < bestDistance {
			best = kind
			bestDistance = d
		}
	}
	return best
}

// List returns all registered descriptors sorted by kind name.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind() < out[j].Kind() })
	return out
}

// Count returns the number of registered descriptors.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descriptors)
}
