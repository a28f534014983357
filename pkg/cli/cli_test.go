package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mgerrors "github.com/NVIDIA/mustgather/pkg/errors"
)

// writeBundle lays out a wrapped bundle with machines in one namespace, a
// deployments list document in another, and cluster-scoped nodes.
func writeBundle(t *testing.T) string {
	t.Helper()
	start := t.TempDir()
	root := filepath.Join(start, "must-gather.local.123", "sample-openshift-release")

	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "version"), []byte("4.16.0\n"), 0o644))

	machinesDir := filepath.Join(root, "namespaces", "openshift-machine-api", "machine.openshift.io", "machines")
	require.NoError(t, os.MkdirAll(machinesDir, 0o755))
	for i := 0; i < 3; i++ {
		doc := fmt.Sprintf("kind: Machine\nmetadata:\n  name: worker-%d\n", i)
		require.NoError(t, os.WriteFile(filepath.Join(machinesDir, fmt.Sprintf("worker-%d.yaml", i)), []byte(doc), 0o644))
	}

	appsDir := filepath.Join(root, "namespaces", "openshift-cluster-version", "apps")
	require.NoError(t, os.MkdirAll(appsDir, 0o755))
	list := "kind: DeploymentList\nitems:\n- kind: Deployment\n  metadata:\n    name: cvo\n"
	require.NoError(t, os.WriteFile(filepath.Join(appsDir, "deployments.yaml"), []byte(list), 0o644))

	nodesDir := filepath.Join(root, "cluster-scoped-resources", "core", "nodes")
	require.NoError(t, os.MkdirAll(nodesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(nodesDir, "node-a.yaml"),
		[]byte("kind: Node\nmetadata:\n  name: node-a\n"), 0o644))

	return start
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out.json")
	full := append([]string{"mgctl", "--format", "json", "--output", out}, args...)
	err := New().Run(context.Background(), full)
	if err != nil {
		return "", err
	}
	data, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	return string(data), nil
}

func TestGet_NamespacedKind(t *testing.T) {
	start := writeBundle(t)

	out, err := runCommand(t, "get", "machines", "--path", start, "-n", "openshift-machine-api")
	require.NoError(t, err)

	var set struct {
		Kind  string `json:"kind"`
		Count int    `json:"count"`
		Items []struct {
			Source string         `json:"source"`
			Object map[string]any `json:"object"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	assert.Equal(t, "machine", set.Kind)
	assert.Equal(t, 3, set.Count)
	require.Len(t, set.Items, 3)
	assert.Contains(t, set.Items[0].Source, "machines")
}

func TestGet_AllNamespaces(t *testing.T) {
	start := writeBundle(t)

	out, err := runCommand(t, "get", "deployments", "--path", start, "--all-namespaces")
	require.NoError(t, err)

	var sets []struct {
		Namespace string `json:"namespace"`
		Count     int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sets))
	// Only the namespace that holds deployments shows up.
	require.Len(t, sets, 1)
	assert.Equal(t, "openshift-cluster-version", sets[0].Namespace)
	assert.Equal(t, 1, sets[0].Count)
}

func TestGet_ClusterScopedKindIgnoresNamespaceFlags(t *testing.T) {
	start := writeBundle(t)

	out, err := runCommand(t, "get", "nodes", "--path", start)
	require.NoError(t, err)

	var set struct {
		Kind      string `json:"kind"`
		Namespace string `json:"namespace"`
		Count     int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	assert.Equal(t, "node", set.Kind)
	assert.Empty(t, set.Namespace)
	assert.Equal(t, 1, set.Count)
}

func TestGet_NamespacedKindRequiresNamespace(t *testing.T) {
	start := writeBundle(t)

	_, err := runCommand(t, "get", "machines", "--path", start)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--namespace or --all-namespaces")
}

func TestGet_UnknownKind(t *testing.T) {
	start := writeBundle(t)

	_, err := runCommand(t, "get", "machnies", "--path", start)
	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeUnknownKind, mgerrors.CodeOf(err))
}

func TestGet_MissingKindArgument(t *testing.T) {
	_, err := runCommand(t, "get", "--path", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing KIND")
}

func TestNamespaces(t *testing.T) {
	start := writeBundle(t)

	out, err := runCommand(t, "namespaces", "--path", start)
	require.NoError(t, err)

	var namespaces []string
	require.NoError(t, json.Unmarshal([]byte(out), &namespaces))
	assert.Equal(t, []string{"openshift-cluster-version", "openshift-machine-api"}, namespaces)
}

func TestVersion(t *testing.T) {
	start := writeBundle(t)

	out, err := runCommand(t, "version", "--path", start)
	require.NoError(t, err)

	var info struct {
		Root       string `json:"root"`
		Version    string `json:"version"`
		Namespaces int    `json:"namespaces"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "4.16.0", info.Version)
	assert.Equal(t, 2, info.Namespaces)
	assert.Contains(t, info.Root, "sample-openshift-release")
}

func TestKinds(t *testing.T) {
	out, err := runCommand(t, "kinds")
	require.NoError(t, err)

	var rows []struct {
		Kind   string `json:"kind"`
		Plural string `json:"plural"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)

	byKind := map[string]string{}
	for _, r := range rows {
		byKind[r.Kind] = r.Plural
	}
	assert.Equal(t, "machines", byKind["machine"])
	assert.Equal(t, "endpoints", byKind["endpoints"])
}

func TestGet_AmbiguousBundleRoot(t *testing.T) {
	start := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(start, "a"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(start, "b"), 0o755))

	_, err := runCommand(t, "get", "nodes", "--path", start)
	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeAmbiguousRoot, mgerrors.CodeOf(err))
}
