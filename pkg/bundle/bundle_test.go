package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mgerrors "github.com/NVIDIA/mustgather/pkg/errors"
)

func writeVersionMarker(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, VersionFile), []byte("4.16.0\n"), 0o644))
}

func makeDirPairRoot(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, NamespacesDir), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ClusterScopedDir), 0o755))
}

func TestLocate_VersionMarkerAtStart(t *testing.T) {
	dir := t.TempDir()
	writeVersionMarker(t, dir)

	root, err := Locate(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, root.Path())
}

func TestLocate_DirectoryPairMarker(t *testing.T) {
	dir := t.TempDir()
	makeDirPairRoot(t, dir)

	root, err := Locate(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, root.Path())
}

func TestLocate_DescendsSingleChildChains(t *testing.T) {
	for _, depth := range []int{1, 2, 7, 20} {
		start := t.TempDir()
		target := start
		for i := 0; i < depth; i++ {
			target = filepath.Join(target, "wrapper")
		}
		writeVersionMarker(t, target)

		root, err := Locate(start)
		require.NoError(t, err, "depth %d", depth)
		assert.Equal(t, target, root.Path(), "depth %d", depth)
	}
}

func TestLocate_NamespacesDirAloneIsNotARoot(t *testing.T) {
	// A single "namespaces" subdirectory without its cluster-scoped sibling
	// is just another wrapper to descend into.
	start := t.TempDir()
	writeVersionMarker(t, filepath.Join(start, NamespacesDir))

	root, err := Locate(start)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(start, NamespacesDir), root.Path())
}

func TestLocate_AmbiguousFanOut(t *testing.T) {
	start := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(start, "a"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(start, "b"), 0o755))

	_, err := Locate(start)
	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeAmbiguousRoot, mgerrors.CodeOf(err))
	assert.Contains(t, err.Error(), start)
}

func TestLocate_EmptyDirectory(t *testing.T) {
	_, err := Locate(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeAmbiguousRoot, mgerrors.CodeOf(err))
}

func TestLocate_AmbiguousBelowSingleChildChain(t *testing.T) {
	// One wrapper level descends fine, then a two-way fan-out stops the
	// search even though a marker sits further down.
	start := t.TempDir()
	fork := filepath.Join(start, "wrapper")
	writeVersionMarker(t, filepath.Join(fork, "a"))
	writeVersionMarker(t, filepath.Join(fork, "b"))

	_, err := Locate(start)
	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeAmbiguousRoot, mgerrors.CodeOf(err))
}

func TestLocate_NonDirectoryEntriesIgnored(t *testing.T) {
	start := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(start, "must-gather.log"), []byte("x"), 0o644))
	writeVersionMarker(t, filepath.Join(start, "wrapper"))

	root, err := Locate(start)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(start, "wrapper"), root.Path())
}

func TestLocate_MissingPath(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeNotADirectory, mgerrors.CodeOf(err))
}

func TestLocate_FilePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bundle.tar")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Locate(file)
	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeNotADirectory, mgerrors.CodeOf(err))
}

func TestLocate_DepthBound(t *testing.T) {
	start := t.TempDir()
	elems := []string{start}
	for i := 0; i < maxDepth+5; i++ {
		elems = append(elems, "w")
	}
	deep := filepath.Join(elems...)
	writeVersionMarker(t, deep)

	_, err := Locate(start)
	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeDepthExceeded, mgerrors.CodeOf(err))
}

func TestRoot_Version(t *testing.T) {
	dir := t.TempDir()
	writeVersionMarker(t, dir)

	root, err := Locate(dir)
	require.NoError(t, err)

	version, err := root.Version()
	require.NoError(t, err)
	assert.Equal(t, "4.16.0", version)
}

func TestRoot_VersionAbsent(t *testing.T) {
	dir := t.TempDir()
	makeDirPairRoot(t, dir)

	root, err := Locate(dir)
	require.NoError(t, err)

	version, err := root.Version()
	require.NoError(t, err)
	assert.Empty(t, version)
}

func TestRoot_Namespaces(t *testing.T) {
	dir := t.TempDir()
	makeDirPairRoot(t, dir)
	for _, ns := range []string{"openshift-machine-api", "default", "kube-system"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, NamespacesDir, ns), 0o755))
	}
	// Stray files under namespaces/ are not namespace areas.
	require.NoError(t, os.WriteFile(filepath.Join(dir, NamespacesDir, "notes.txt"), []byte("x"), 0o644))

	root, err := Locate(dir)
	require.NoError(t, err)

	names, err := root.Namespaces()
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "kube-system", "openshift-machine-api"}, names)
}

func TestScope_Paths(t *testing.T) {
	dir := t.TempDir()
	writeVersionMarker(t, dir)

	root, err := Locate(dir)
	require.NoError(t, err)

	ns := root.Namespace("openshift-machine-api")
	assert.True(t, ns.IsNamespaced())
	assert.Equal(t, "openshift-machine-api", ns.Namespace())
	assert.True(t, strings.HasSuffix(ns.Path(), filepath.Join(NamespacesDir, "openshift-machine-api")))

	cs := root.ClusterScoped()
	assert.False(t, cs.IsNamespaced())
	assert.Empty(t, cs.Namespace())
	assert.Equal(t, filepath.Join(dir, ClusterScopedDir), cs.Path())
}
