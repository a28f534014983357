package resource

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"

	mgerrors "github.com/NVIDIA/mustgather/pkg/errors"
	"github.com/NVIDIA/mustgather/pkg/manifest"
)

// Typed conversion helpers for callers that want API-typed objects instead
// of unstructured documents. Conversion is lossy-tolerant the same way the
// API machinery is: unknown fields are dropped, missing fields zero-valued.

// AsDeployment converts an extracted manifest into an apps/v1 Deployment.
func AsDeployment(m manifest.Manifest) (*appsv1.Deployment, error) {
	var out appsv1.Deployment
	if err := fromManifest(m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AsPod converts an extracted manifest into a core/v1 Pod.
func AsPod(m manifest.Manifest) (*corev1.Pod, error) {
	var out corev1.Pod
	if err := fromManifest(m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AsNode converts an extracted manifest into a core/v1 Node.
func AsNode(m manifest.Manifest) (*corev1.Node, error) {
	var out corev1.Node
	if err := fromManifest(m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func fromManifest(m manifest.Manifest, into any) error {
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(m.Object.Object, into); err != nil {
		return mgerrors.Wrap(mgerrors.ErrCodeUnexpectedShape, err,
			"converting manifest to typed object").WithPath(m.SourcePath)
	}
	return nil
}
