package resource

import "fmt"

const (
	// ScopeNamespaced resources live under a namespace area.
	ScopeNamespaced Scope = "Namespaced"

	// ScopeCluster resources live under the cluster-scoped area, one file
	// per instance.
	ScopeCluster Scope = "Cluster"

	// ScopeClusterSingleton resources are cluster-scoped with at most one
	// instance per cluster (clusterversion, infrastructure).
	ScopeClusterSingleton Scope = "ClusterSingleton"
)

// Scope classifies where a resource type lives within a bundle.
type Scope string

// IsNamespaced reports whether the scope requires a namespace area.
func (s Scope) IsNamespaced() bool {
	return s == ScopeNamespaced
}

// ParseScope converts a string to a Scope.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeNamespaced, ScopeCluster, ScopeClusterSingleton:
		return Scope(s), nil
	default:
		return "", fmt.Errorf("unknown resource scope: %s", s)
	}
}

// Descriptor identifies a kind of resource to extract from a bundle.
// Implementations are read-only; one small implementation per resource kind.
type Descriptor interface {
	// Group is the API group directory name, e.g. "machine.openshift.io"
	// or "apps".
	Group() string

	// Kind is the singular kind name, lowercase, e.g. "machine".
	Kind() string

	// ResourceScope classifies where instances of the kind live.
	ResourceScope() Scope
}

// PluralOverrider lets a Descriptor override the default plural derivation.
// Kinds with irregular plurals (endpoints, networkpolicies) implement it;
// everything else gets Kind + "s".
type PluralOverrider interface {
	Plural() string
}

// PluralName returns the plural directory name for a descriptor, applying
// the default derivation unless the descriptor overrides it.
func PluralName(d Descriptor) string {
	if p, ok := d.(PluralOverrider); ok {
		if plural := p.Plural(); plural != "" {
			return plural
		}
	}
	return d.Kind() + "s"
}

// Type is a plain-value Descriptor. Most callers register Type values; a
// custom Descriptor implementation is only needed when the identification
// has to be computed.
type Type struct {
	APIGroup   string
	KindName   string
	PluralForm string // optional; empty means KindName + "s"
	ScopeClass Scope
}

func (t Type) Group() string { return t.APIGroup }

func (t Type) Kind() string { return t.KindName }

func (t Type) Plural() string { return t.PluralForm }

func (t Type) ResourceScope() Scope { return t.ScopeClass }

func (t Type) String() string {
	return fmt.Sprintf("%s/%s", t.APIGroup, PluralName(t))
}
