package bundle

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	mgerrors "github.com/NVIDIA/mustgather/pkg/errors"
)

const (
	// VersionFile marks a bundle root when present.
	VersionFile = "version"

	// NamespacesDir holds namespace-scoped resource areas.
	NamespacesDir = "namespaces"

	// ClusterScopedDir holds cluster-scoped resource areas.
	ClusterScopedDir = "cluster-scoped-resources"
)

// maxDepth bounds the root search. Real bundles wrap the root in at most a
// couple of directories; anything deeper is a broken tree or a symlink cycle.
const maxDepth = 64

// Root is the validated top-level directory of a must-gather bundle.
// It is immutable after Locate and safe to share across goroutines.
type Root struct {
	path string
}

// Locate finds the bundle root at or beneath start.
//
// Each level is checked for the version marker file, then for the
// namespaces/cluster-scoped-resources directory pair. A level with exactly
// one subdirectory is descended into; anything else fails with
// AMBIGUOUS_OR_MISSING_ROOT.
func Locate(start string) (*Root, error) {
	path := start
	for depth := 0; depth < maxDepth; depth++ {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return nil, mgerrors.New(mgerrors.ErrCodeNotADirectory,
				"search path is not an existing directory").WithPath(path)
		}

		if isRoot(path) {
			return &Root{path: path}, nil
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, mgerrors.Wrap(mgerrors.ErrCodeRead, err,
				"listing directory").WithPath(path)
		}

		var subdirs []string
		for _, e := range entries {
			if e.IsDir() {
				subdirs = append(subdirs, e.Name())
			}
		}
		if len(subdirs) != 1 {
			return nil, mgerrors.Newf(mgerrors.ErrCodeAmbiguousRoot,
				"cannot determine bundle root: %d candidate subdirectories", len(subdirs)).WithPath(path)
		}
		path = filepath.Join(path, subdirs[0])
	}
	return nil, mgerrors.Newf(mgerrors.ErrCodeDepthExceeded,
		"bundle root not found within %d directory levels", maxDepth).WithPath(start)
}

func isRoot(path string) bool {
	if info, err := os.Stat(filepath.Join(path, VersionFile)); err == nil && info.Mode().IsRegular() {
		return true
	}
	ns, err := os.Stat(filepath.Join(path, NamespacesDir))
	if err != nil || !ns.IsDir() {
		return false
	}
	csr, err := os.Stat(filepath.Join(path, ClusterScopedDir))
	return err == nil && csr.IsDir()
}

// Path returns the root directory path.
func (r *Root) Path() string {
	return r.path
}

// Version returns the trimmed content of the version marker file, or the
// empty string when the root was identified by its directory pair alone.
func (r *Root) Version() (string, error) {
	data, err := os.ReadFile(filepath.Join(r.path, VersionFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", mgerrors.Wrap(mgerrors.ErrCodeRead, err,
			"reading version marker").WithPath(filepath.Join(r.path, VersionFile))
	}
	return strings.TrimSpace(string(data)), nil
}

// Namespaces returns the sorted names of the namespace areas present in the
// bundle. A bundle without a namespaces directory yields an empty list.
func (r *Root) Namespaces() ([]string, error) {
	dir := filepath.Join(r.path, NamespacesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, mgerrors.Wrap(mgerrors.ErrCodeRead, err,
			"listing namespaces").WithPath(dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Namespace returns the scope for one namespace area.
func (r *Root) Namespace(name string) Scope {
	return Scope{root: r, namespace: name}
}

// ClusterScoped returns the scope for the cluster-scoped resource area.
func (r *Root) ClusterScoped() Scope {
	return Scope{root: r}
}

// Scope is a queryable area within a bundle: one namespace, or the
// cluster-scoped area. The zero namespace denotes cluster scope.
type Scope struct {
	root      *Root
	namespace string
}

// Path returns the filesystem path of the scope. It is pure concatenation:
// the result may or may not exist.
func (s Scope) Path() string {
	if s.namespace != "" {
		return filepath.Join(s.root.path, NamespacesDir, s.namespace)
	}
	return filepath.Join(s.root.path, ClusterScopedDir)
}

// Namespace returns the namespace name, or the empty string for cluster
// scope.
func (s Scope) Namespace() string {
	return s.namespace
}

// IsNamespaced reports whether the scope addresses a namespace area.
func (s Scope) IsNamespaced() bool {
	return s.namespace != ""
}
